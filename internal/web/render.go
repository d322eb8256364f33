package web

import (
	"html/template"
	"strings"

	"github.com/Zachkp/techfolio/internal/icon"
	"github.com/Zachkp/techfolio/internal/page"
)

var templateFuncs = template.FuncMap{
	"iconSlug": func(i icon.Icon) string { return i.Slug() },
	"badgeClass": func(v page.BadgeVariant) string {
		switch v {
		case page.BadgeSecondary:
			return "bg-slate-200 text-slate-800"
		case page.BadgeOutline:
			return "border border-slate-300 text-slate-600"
		default:
			return "bg-blue-600 text-white"
		}
	},
	"mailto": func(email string) template.URL {
		return template.URL("mailto:" + strings.TrimSpace(email))
	},
}

type pageData struct {
	View        page.View
	Heading     string
	Subheading  string
	Footer      string
	Contacts    Contacts
	Icons       iconSet
	ToastMillis int64
}

// iconSet exposes the fixed sidebar icons to templates.
type iconSet struct {
	Github, Coffee, Mail, Globe, Users, Twitter, Linkedin, MessageCircle icon.Icon
}

var sidebarIcons = iconSet{
	Github:        icon.Github,
	Coffee:        icon.Coffee,
	Mail:          icon.Mail,
	Globe:         icon.Globe,
	Users:         icon.Users,
	Twitter:       icon.Twitter,
	Linkedin:      icon.Linkedin,
	MessageCircle: icon.MessageCircle,
}

func (s *Server) pageData(p *page.Page) pageData {
	return pageData{
		View:        p.View(),
		Heading:     page.Heading,
		Subheading:  page.Subheading,
		Footer:      page.Footer,
		Contacts:    s.opts.Contacts,
		Icons:       sidebarIcons,
		ToastMillis: s.opts.ToastDuration.Milliseconds(),
	}
}
