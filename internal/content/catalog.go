package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the read-only set of collections. Accessors hand out copies.
type Catalog struct {
	snippets []CodeSnippet
	tips     []Tip
	links    []Link
	jokes    []Joke
}

type catalogFile struct {
	Snippets []CodeSnippet `yaml:"snippets"`
	Tips     []Tip         `yaml:"tips"`
	Links    []Link        `yaml:"links"`
	Humor    []Joke        `yaml:"humor"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, decoded on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(embedded)
	})
	return defaultCatalog, defaultErr
}

// MustDefault panics if the embedded catalog is broken. The catalog is
// compiled in, so this can only fail on a bad build.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		snippets: f.Snippets,
		tips:     f.Tips,
		links:    f.Links,
		jokes:    f.Humor,
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return c, nil
}

func (c *Catalog) validate() error {
	var errs []error

	if n := len(c.snippets); n != SnippetCount {
		errs = append(errs, fmt.Errorf("want %d snippets, got %d", SnippetCount, n))
	}
	if n := len(c.tips); n != TipCount {
		errs = append(errs, fmt.Errorf("want %d tips, got %d", TipCount, n))
	}
	if n := len(c.links); n != LinkCount {
		errs = append(errs, fmt.Errorf("want %d links, got %d", LinkCount, n))
	}
	if n := len(c.jokes); n != JokeCount {
		errs = append(errs, fmt.Errorf("want %d jokes, got %d", JokeCount, n))
	}

	seen := map[string]bool{}
	for i, s := range c.snippets {
		if blank(s.Title) || blank(s.Language) || blank(s.Code) {
			errs = append(errs, fmt.Errorf("snippet %d: title, language and code are required", i))
		}
		if seen[s.Title] {
			errs = append(errs, fmt.Errorf("duplicate snippet title %q", s.Title))
		}
		seen[s.Title] = true
	}

	seen = map[string]bool{}
	for i, t := range c.tips {
		if blank(t.Title) || blank(t.Content) {
			errs = append(errs, fmt.Errorf("tip %d: title and content are required", i))
		}
		if !t.Icon.Valid() {
			errs = append(errs, fmt.Errorf("tip %d: icon is required", i))
		}
		if seen[t.Title] {
			errs = append(errs, fmt.Errorf("duplicate tip title %q", t.Title))
		}
		seen[t.Title] = true
	}

	seen = map[string]bool{}
	for i, l := range c.links {
		if blank(l.Title) || blank(l.Description) || blank(l.Category) {
			errs = append(errs, fmt.Errorf("link %d: title, description and category are required", i))
		}
		if u, err := url.Parse(l.URL); err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			errs = append(errs, fmt.Errorf("link %d: invalid url %q", i, l.URL))
		}
		if seen[l.Title] {
			errs = append(errs, fmt.Errorf("duplicate link title %q", l.Title))
		}
		seen[l.Title] = true
	}

	seen = map[string]bool{}
	for i, j := range c.jokes {
		if blank(j.Text) || blank(j.Emoji) {
			errs = append(errs, fmt.Errorf("joke %d: text and emoji are required", i))
		}
		if seen[j.Text] {
			errs = append(errs, fmt.Errorf("duplicate joke %d", i))
		}
		seen[j.Text] = true
	}

	return errors.Join(errs...)
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func (c *Catalog) Snippets() []CodeSnippet {
	out := make([]CodeSnippet, len(c.snippets))
	for i, s := range c.snippets {
		s.Tags = append([]string(nil), s.Tags...)
		out[i] = s
	}
	return out
}

func (c *Catalog) Tips() []Tip   { return append([]Tip(nil), c.tips...) }
func (c *Catalog) Links() []Link { return append([]Link(nil), c.links...) }
func (c *Catalog) Jokes() []Joke { return append([]Joke(nil), c.jokes...) }

// Snippet returns the snippet at index i.
func (c *Catalog) Snippet(i int) (CodeSnippet, bool) {
	if i < 0 || i >= len(c.snippets) {
		return CodeSnippet{}, false
	}
	s := c.snippets[i]
	s.Tags = append([]string(nil), s.Tags...)
	return s, true
}

// SnippetByTitle looks a snippet up by exact title, falling back to a
// case-insensitive match.
func (c *Catalog) SnippetByTitle(title string) (int, CodeSnippet, bool) {
	for i, s := range c.snippets {
		if s.Title == title {
			snip, _ := c.Snippet(i)
			return i, snip, true
		}
	}
	for i, s := range c.snippets {
		if strings.EqualFold(s.Title, title) {
			snip, _ := c.Snippet(i)
			return i, snip, true
		}
	}
	return -1, CodeSnippet{}, false
}
