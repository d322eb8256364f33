package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Zachkp/techfolio/internal/clipboard"
	"github.com/Zachkp/techfolio/internal/icon"
	"github.com/Zachkp/techfolio/internal/page"
	"github.com/Zachkp/techfolio/internal/section"
)

const (
	sidebarWidth = 30
	defaultWidth = 110
)

var (
	ColorBlue   = lipgloss.Color("#2563EB")
	ColorSlate  = lipgloss.Color("#0F172A")
	ColorMuted  = lipgloss.Color("#64748B")
	ColorBorder = lipgloss.Color("#334155")
	ColorWhite  = lipgloss.Color("#F8FAFC")
	ColorGreen  = lipgloss.Color("#059669")
	ColorRed    = lipgloss.Color("#DC2626")

	headingStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorWhite)
	subheadingStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	tabStyle        = lipgloss.NewStyle().Padding(0, 1).Foreground(ColorMuted)
	activeTabStyle  = tabStyle.Foreground(ColorWhite).Background(ColorBlue).Bold(true)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(ColorMuted)
	codeStyle       = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	selectedCodeStyle = codeStyle.BorderForeground(ColorBlue)

	badgeStyles = map[page.BadgeVariant]lipgloss.Style{
		page.BadgeDefault:   lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorBlue).Padding(0, 1),
		page.BadgeSecondary: lipgloss.NewStyle().Foreground(ColorSlate).Background(lipgloss.Color("#CBD5E1")).Padding(0, 1),
		page.BadgeOutline:   lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1),
	}

	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			Padding(1, 2).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorBorder)
	menuStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeMenuStyle = menuStyle.Foreground(ColorWhite).Background(ColorBlue)

	toastStyles = map[clipboard.Kind]lipgloss.Style{
		clipboard.KindSuccess: lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorGreen).Padding(0, 1),
		clipboard.KindError:   lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorRed).Padding(0, 1),
	}
)

func (m *Model) View() string {
	v := m.page.View()

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	mainWidth := width - sidebarWidth - 2
	if mainWidth < 40 {
		mainWidth = 40
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(page.Heading))
	b.WriteString("\n")
	b.WriteString(subheadingStyle.Render(page.Subheading))
	b.WriteString("\n\n")
	b.WriteString(renderTabs(v.Tabs))
	b.WriteString("\n\n")
	b.WriteString(renderPanel(v.VisiblePanel(), m.cursor, mainWidth))

	main := lipgloss.NewStyle().Width(mainWidth).Render(b.String())
	body := lipgloss.JoinHorizontal(lipgloss.Top, main, m.renderSidebar(v.Sidebar))

	footer := m.help.View(m.keys)
	if m.toast != nil {
		footer = renderToast(*m.toast) + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", footer)
}

func renderTabs(tabs []page.MenuItem) string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := fmt.Sprintf("%s %s", t.Icon.Glyph(), t.Label)
		if t.Active {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderPanel renders one panel without a cursor, for non-interactive output.
func RenderPanel(p page.Panel, width int) string {
	return renderPanel(p, -1, width)
}

func renderPanel(p page.Panel, cursorAt, width int) string {
	blocks := make([]string, 0, len(p.Rows))
	for _, r := range p.Rows {
		selected := r.Index == cursorAt
		switch p.Section {
		case section.Code:
			blocks = append(blocks, renderSnippet(r, selected, width))
		case section.Tips:
			blocks = append(blocks, cursor(selected)+titleStyle.Render(r.Icon.Glyph()+" "+r.Title)+"\n  "+
				mutedStyle.Width(width-2).Render(r.Body))
		case section.Links:
			blocks = append(blocks, cursor(selected)+titleStyle.Render(r.Icon.Glyph()+" "+r.Title)+" "+renderBadges(r.Badges)+"\n  "+
				mutedStyle.Width(width-2).Render(r.Body)+"\n  "+r.URL)
		default:
			blocks = append(blocks, cursor(selected)+r.Emoji+"  "+indent(r.Body, "    "))
		}
	}
	return strings.Join(blocks, "\n\n")
}

func renderSnippet(r page.Row, selected bool, width int) string {
	head := cursor(selected) + titleStyle.Render(r.Title) + "  " + renderBadges(r.Badges)
	if selected {
		head += "  " + mutedStyle.Render(icon.Copy.Glyph()+" c")
	}
	style := codeStyle
	if selected {
		style = selectedCodeStyle
	}
	// Border and padding take four cells.
	return head + "\n" + style.Render(clipLines(r.Body, width-4))
}

// clipLines cuts lines wider than width instead of wrapping them, so every
// visible line of code is a prefix of the real one.
func clipLines(s string, width int) string {
	if width < 1 {
		width = 1
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if runewidth.StringWidth(l) > width {
			lines[i] = runewidth.Truncate(l, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

func renderBadges(badges []page.Badge) string {
	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		parts = append(parts, badgeStyles[b.Variant].Render(b.Text))
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderSidebar(items []page.MenuItem) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Меню"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Навигация по разделам"))
	b.WriteString("\n\n")
	for _, it := range items {
		label := fmt.Sprintf("%s %s", it.Icon.Glyph(), it.Label)
		if it.Active {
			b.WriteString(activeMenuStyle.Render(label))
		} else {
			b.WriteString(menuStyle.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(icon.Github.Glyph() + " GitHub"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.opts.GithubURL))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(icon.Coffee.Glyph() + " Контакты"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(icon.Mail.Glyph() + " " + m.opts.Email))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(icon.Globe.Glyph() + " " + m.opts.Website))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(page.Footer))

	return sidebarStyle.Render(b.String())
}

func renderToast(n clipboard.Notification) string {
	style, ok := toastStyles[n.Kind]
	if !ok {
		style = toastStyles[clipboard.KindError]
	}
	return style.Render(n.Message)
}

func cursor(selected bool) string {
	if selected {
		return "› "
	}
	return "  "
}

func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
