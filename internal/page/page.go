// Package page is the portfolio page controller: it owns the active
// section, projects the catalog into panels and runs the copy action.
package page

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zachkp/techfolio/internal/clipboard"
	"github.com/Zachkp/techfolio/internal/content"
	"github.com/Zachkp/techfolio/internal/section"
)

var (
	ErrNotCopyable   = errors.New("only code snippets can be copied")
	ErrNoSuchSnippet = errors.New("no such snippet")
	ErrNoClipboard   = errors.New("page has no clipboard")
)

const (
	Heading    = "TECH PORTFOLIO"
	Subheading = "PHP • JavaScript • CSS"
	Footer     = "© 2024 Tech Portfolio"
)

type Page struct {
	catalog *content.Catalog
	nav     *section.Controller
	copier  *clipboard.Copier
}

// New builds a page showing the initial section. copier may be nil for
// renderings that never copy (the web server copies in the browser).
func New(catalog *content.Catalog, copier *clipboard.Copier) *Page {
	return &Page{
		catalog: catalog,
		nav:     section.NewController(),
		copier:  copier,
	}
}

func (p *Page) Select(s section.Section) error {
	if err := p.nav.Select(s); err != nil {
		return fmt.Errorf("select %q: %w", s, err)
	}
	return nil
}

func (p *Page) Active() section.Section { return p.nav.Active() }

func (p *Page) Next() section.Section { return p.nav.Next() }
func (p *Page) Prev() section.Section { return p.nav.Prev() }

func (p *Page) Catalog() *content.Catalog { return p.catalog }

// Copy copies the snippet at index from section s. Only the code section
// holds copyable content; anything else is rejected before the clipboard
// is touched.
func (p *Page) Copy(ctx context.Context, s section.Section, index int) (<-chan clipboard.Result, error) {
	snip, err := p.CopyTarget(s, index)
	if err != nil {
		return nil, err
	}
	if p.copier == nil {
		return nil, ErrNoClipboard
	}
	return p.copier.Copy(ctx, snip.Code, snip.Title), nil
}

// CopyActive copies from whichever section is currently visible.
func (p *Page) CopyActive(ctx context.Context, index int) (<-chan clipboard.Result, error) {
	return p.Copy(ctx, p.nav.Active(), index)
}

// CopyTarget resolves what a copy of (s, index) would place on the clipboard.
func (p *Page) CopyTarget(s section.Section, index int) (content.CodeSnippet, error) {
	if s != section.Code {
		return content.CodeSnippet{}, fmt.Errorf("%w: section %q", ErrNotCopyable, s)
	}
	snip, ok := p.catalog.Snippet(index)
	if !ok {
		return content.CodeSnippet{}, fmt.Errorf("%w: %d", ErrNoSuchSnippet, index)
	}
	return snip, nil
}
