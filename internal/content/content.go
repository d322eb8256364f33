// Package content holds the portfolio's static collections. The catalog is
// embedded at build time, decoded once and never mutated afterwards.
package content

import (
	"github.com/Zachkp/techfolio/internal/icon"
)

type CodeSnippet struct {
	Title    string   `yaml:"title" json:"title"`
	Language string   `yaml:"language" json:"language"`
	Code     string   `yaml:"code" json:"code"`
	Tags     []string `yaml:"tags" json:"tags"`
}

type Tip struct {
	Title   string    `yaml:"title" json:"title"`
	Content string    `yaml:"content" json:"content"`
	Icon    icon.Icon `yaml:"icon" json:"icon"`
}

type Link struct {
	Title       string `yaml:"title" json:"title"`
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category"`
}

type Joke struct {
	Text  string `yaml:"text" json:"text"`
	Emoji string `yaml:"emoji" json:"emoji"`
}

// Expected collection sizes.
const (
	SnippetCount = 3
	TipCount     = 4
	LinkCount    = 4
	JokeCount    = 4
)
