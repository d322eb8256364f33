// Package section tracks which content panel of the portfolio page is visible.
package section

import (
	"errors"
	"fmt"
	"strings"
)

// Section identifies one of the four mutually exclusive content panels.
type Section string

const (
	Code  Section = "code"
	Tips  Section = "tips"
	Links Section = "links"
	Humor Section = "humor"
)

// Initial is the section shown before any selection.
const Initial = Code

var ErrUnknownSection = errors.New("unknown section")

var order = []Section{Code, Tips, Links, Humor}

// All returns the sections in tab order.
func All() []Section {
	out := make([]Section, len(order))
	copy(out, order)
	return out
}

// Parse converts an identifier into a Section.
func Parse(id string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(id)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	return s, nil
}

func (s Section) Valid() bool {
	for _, known := range order {
		if s == known {
			return true
		}
	}
	return false
}

func (s Section) String() string { return string(s) }

// Index returns the tab position of s, or -1.
func (s Section) Index() int {
	for i, known := range order {
		if s == known {
			return i
		}
	}
	return -1
}

// TabLabel is the caption used on the tab strip.
func (s Section) TabLabel() string {
	switch s {
	case Code:
		return "Код-сниппеты"
	case Tips:
		return "Советы"
	case Links:
		return "Ссылки"
	case Humor:
		return "Юмор"
	}
	return ""
}

// MenuLabel is the caption used in the sidebar menu.
func (s Section) MenuLabel() string {
	if s == Links {
		return "Полезные ссылки"
	}
	return s.TabLabel()
}
