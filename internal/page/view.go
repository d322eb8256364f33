package page

import (
	"github.com/Zachkp/techfolio/internal/content"
	"github.com/Zachkp/techfolio/internal/icon"
	"github.com/Zachkp/techfolio/internal/section"
)

type BadgeVariant string

const (
	BadgeDefault   BadgeVariant = "default"
	BadgeSecondary BadgeVariant = "secondary"
	BadgeOutline   BadgeVariant = "outline"
)

type Badge struct {
	Text    string
	Variant BadgeVariant
}

// Row is one rendered record. Body is always the record's text verbatim.
type Row struct {
	Index        int
	Title        string
	Badges       []Badge
	Body         string
	Preformatted bool
	Icon         icon.Icon
	Emoji        string
	URL          string
	Copyable     bool
}

type Panel struct {
	Section section.Section
	Label   string
	Icon    icon.Icon
	Visible bool
	Rows    []Row
}

type MenuItem struct {
	Section section.Section
	Label   string
	Icon    icon.Icon
	Active  bool
}

type View struct {
	Active  section.Section
	Tabs    []MenuItem
	Panels  []Panel
	Sidebar []MenuItem
}

// SectionIcon is the icon shown next to a section on tabs and in the menu.
func SectionIcon(s section.Section) icon.Icon {
	switch s {
	case section.Code:
		return icon.Code2
	case section.Tips:
		return icon.Lightbulb
	case section.Links:
		return icon.Link
	case section.Humor:
		return icon.Smile
	}
	return 0
}

// View renders every panel; only the active one is visible.
func (p *Page) View() View {
	active := p.nav.Active()
	v := View{Active: active}
	for _, s := range section.All() {
		v.Tabs = append(v.Tabs, MenuItem{Section: s, Label: s.TabLabel(), Icon: SectionIcon(s), Active: s == active})
		v.Sidebar = append(v.Sidebar, MenuItem{Section: s, Label: s.MenuLabel(), Icon: SectionIcon(s), Active: s == active})
		v.Panels = append(v.Panels, Panel{
			Section: s,
			Label:   s.TabLabel(),
			Icon:    SectionIcon(s),
			Visible: s == active,
			Rows:    Rows(p.catalog, s),
		})
	}
	return v
}

// VisiblePanel returns the panel for the active section.
func (v View) VisiblePanel() Panel {
	for _, p := range v.Panels {
		if p.Visible {
			return p
		}
	}
	return Panel{}
}

// Rows projects the collection behind s into display rows.
func Rows(c *content.Catalog, s section.Section) []Row {
	var rows []Row
	switch s {
	case section.Code:
		for i, snip := range c.Snippets() {
			badges := make([]Badge, 0, len(snip.Tags)+1)
			badges = append(badges, Badge{Text: snip.Language, Variant: BadgeSecondary})
			for _, tag := range snip.Tags {
				badges = append(badges, Badge{Text: tag, Variant: BadgeOutline})
			}
			rows = append(rows, Row{
				Index:        i,
				Title:        snip.Title,
				Badges:       badges,
				Body:         snip.Code,
				Preformatted: true,
				Icon:         icon.Copy,
				Copyable:     true,
			})
		}
	case section.Tips:
		for i, tip := range c.Tips() {
			rows = append(rows, Row{Index: i, Title: tip.Title, Body: tip.Content, Icon: tip.Icon})
		}
	case section.Links:
		for i, l := range c.Links() {
			rows = append(rows, Row{
				Index:  i,
				Title:  l.Title,
				Badges: []Badge{{Text: l.Category, Variant: BadgeDefault}},
				Body:   l.Description,
				Icon:   icon.ExternalLink,
				URL:    l.URL,
			})
		}
	case section.Humor:
		for i, j := range c.Jokes() {
			rows = append(rows, Row{Index: i, Body: j.Text, Preformatted: true, Emoji: j.Emoji})
		}
	}
	return rows
}
