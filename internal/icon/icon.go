// Package icon maps the symbolic icon names used by the page to concrete
// glyphs. Unknown names are rejected instead of rendering nothing.
package icon

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type Icon int

const (
	Code2 Icon = iota + 1
	Lightbulb
	Link
	Smile
	Copy
	AlertTriangle
	Palette
	Zap
	ExternalLink
	Github
	Coffee
	Mail
	Globe
	Users
	Twitter
	Linkedin
	MessageCircle
)

var ErrUnknownIcon = errors.New("unknown icon")

type glyph struct {
	name string // symbolic name used in content files
	slug string // lucide icon name for the web page
	term string // terminal rendition
}

var glyphs = map[Icon]glyph{
	Code2:         {"Code2", "code-2", "</>"},
	Lightbulb:     {"Lightbulb", "lightbulb", "💡"},
	Link:          {"Link", "link", "🔗"},
	Smile:         {"Smile", "smile", "🙂"},
	Copy:          {"Copy", "copy", "⧉"},
	AlertTriangle: {"AlertTriangle", "alert-triangle", "⚠"},
	Palette:       {"Palette", "palette", "🎨"},
	Zap:           {"Zap", "zap", "⚡"},
	ExternalLink:  {"ExternalLink", "external-link", "↗"},
	Github:        {"Github", "github", "GH"},
	Coffee:        {"Coffee", "coffee", "☕"},
	Mail:          {"Mail", "mail", "✉"},
	Globe:         {"Globe", "globe", "🌐"},
	Users:         {"Users", "users", "👥"},
	Twitter:       {"Twitter", "twitter", "X"},
	Linkedin:      {"Linkedin", "linkedin", "in"},
	MessageCircle: {"MessageCircle", "message-circle", "💬"},
}

var byName = func() map[string]Icon {
	m := make(map[string]Icon, len(glyphs))
	for i, g := range glyphs {
		m[g.name] = i
	}
	return m
}()

// Parse resolves a symbolic name such as "Github".
func Parse(name string) (Icon, error) {
	if i, ok := byName[name]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
}

// MustParse is Parse for package-level tables.
func MustParse(name string) Icon {
	i, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return i
}

// Validate checks that every declared icon has a complete glyph entry.
func Validate() error {
	for i := Code2; i <= MessageCircle; i++ {
		g, ok := glyphs[i]
		if !ok || g.name == "" || g.slug == "" || g.term == "" {
			return fmt.Errorf("icon %d has no glyph", int(i))
		}
	}
	return nil
}

func (i Icon) Valid() bool {
	_, ok := glyphs[i]
	return ok
}

func (i Icon) String() string {
	if g, ok := glyphs[i]; ok {
		return g.name
	}
	return fmt.Sprintf("Icon(%d)", int(i))
}

// Slug is the web icon identifier (lucide naming).
func (i Icon) Slug() string { return glyphs[i].slug }

// Glyph is the terminal rendition.
func (i Icon) Glyph() string { return glyphs[i].term }

func (i *Icon) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := Parse(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*i = parsed
	return nil
}

func (i Icon) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIcon, int(i))
	}
	return []byte(i.String()), nil
}
