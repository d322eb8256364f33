package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/techfolio/internal/content"
	"github.com/Zachkp/techfolio/internal/page"
	"github.com/Zachkp/techfolio/internal/section"
)

type snippetResponse struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Language string   `json:"language"`
	Code     string   `json:"code"`
	Tags     []string `json:"tags"`
}

func toSnippetResponse(i int, s content.CodeSnippet) snippetResponse {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return snippetResponse{ID: i + 1, Title: s.Title, Language: s.Language, Code: s.Code, Tags: tags}
}

func (s *Server) handleListSnippets(c *gin.Context) {
	snips := s.opts.Catalog.Snippets()
	out := make([]snippetResponse, 0, len(snips))
	for i, snip := range snips {
		out = append(out, toSnippetResponse(i, snip))
	}
	c.JSON(http.StatusOK, gin.H{"snippets": out})
}

// snippetParam resolves the 1-based :id path parameter.
func (s *Server) snippetParam(c *gin.Context) (int, content.CodeSnippet, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a number"})
		return 0, content.CodeSnippet{}, false
	}
	snip, ok := s.opts.Catalog.Snippet(id - 1)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "snippet not found"})
		return 0, content.CodeSnippet{}, false
	}
	return id - 1, snip, true
}

func (s *Server) handleGetSnippet(c *gin.Context) {
	i, snip, ok := s.snippetParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toSnippetResponse(i, snip))
}

// handleRawSnippet serves the code verbatim, e.g. for `curl ... | pbcopy`.
func (s *Server) handleRawSnippet(c *gin.Context) {
	_, snip, ok := s.snippetParam(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(snip.Code))
}

type badgeResponse struct {
	Text    string `json:"text"`
	Variant string `json:"variant"`
}

type rowResponse struct {
	Index    int             `json:"index"`
	Title    string          `json:"title,omitempty"`
	Badges   []badgeResponse `json:"badges,omitempty"`
	Body     string          `json:"body"`
	Icon     string          `json:"icon,omitempty"`
	Emoji    string          `json:"emoji,omitempty"`
	URL      string          `json:"url,omitempty"`
	Copyable bool            `json:"copyable"`
}

func (s *Server) handleSectionRows(c *gin.Context) {
	sec, err := section.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	rows := page.Rows(s.opts.Catalog, sec)
	out := make([]rowResponse, 0, len(rows))
	for _, r := range rows {
		rr := rowResponse{
			Index:    r.Index,
			Title:    r.Title,
			Body:     r.Body,
			Emoji:    r.Emoji,
			URL:      r.URL,
			Copyable: r.Copyable,
		}
		if r.Icon.Valid() {
			rr.Icon = r.Icon.String()
		}
		for _, b := range r.Badges {
			rr.Badges = append(rr.Badges, badgeResponse{Text: b.Text, Variant: string(b.Variant)})
		}
		out = append(out, rr)
	}

	c.JSON(http.StatusOK, gin.H{
		"section": sec,
		"label":   sec.TabLabel(),
		"rows":    out,
	})
}
