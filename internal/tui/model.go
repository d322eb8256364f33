// Package tui is the terminal rendition of the portfolio page.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/techfolio/internal/clipboard"
	"github.com/Zachkp/techfolio/internal/page"
	"github.com/Zachkp/techfolio/internal/section"
)

type Options struct {
	ToastDuration time.Duration
	GithubURL     string
	Email         string
	Website       string
}

// Model is the Bubble Tea model. Only Update mutates the page.
type Model struct {
	page *page.Page
	opts Options
	keys KeyMap
	help help.Model

	cursor int
	width  int
	height int

	toast    *clipboard.Notification
	toastSeq int
	copying  bool
}

type copyResultMsg struct {
	result clipboard.Result
}

type toastExpiredMsg struct {
	seq int
}

func New(p *page.Page, opts Options) *Model {
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = 3 * time.Second
	}
	return &Model{
		page: p,
		opts: opts,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case copyResultMsg:
		m.copying = false
		return m, m.showToast(msg.result.Notification)

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit), key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, k.NextSection):
		m.page.Next()
		m.cursor = 0
	case key.Matches(msg, k.PrevSection):
		m.page.Prev()
		m.cursor = 0
	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, k.Down):
		if m.cursor < len(m.page.View().VisiblePanel().Rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, k.Copy):
		return m, m.copy()
	default:
		if s, ok := k.sectionFor(msg); ok {
			if s != m.page.Active() {
				m.cursor = 0
			}
			// Known sections only; Select cannot fail here.
			_ = m.page.Select(s)
		}
	}
	return m, nil
}

// copy starts a clipboard write for the snippet under the cursor. Outside
// the code section there is nothing to copy.
func (m *Model) copy() tea.Cmd {
	if m.copying {
		return nil
	}
	ch, err := m.page.CopyActive(context.Background(), m.cursor)
	switch {
	case errors.Is(err, page.ErrNotCopyable):
		return nil
	case err != nil:
		return m.showToast(clipboard.Notification{Kind: clipboard.KindError, Message: err.Error()})
	}
	m.copying = true
	return waitForCopy(ch)
}

func waitForCopy(ch <-chan clipboard.Result) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{result: <-ch}
	}
}

func (m *Model) showToast(n clipboard.Notification) tea.Cmd {
	m.toast = &n
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(m.opts.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// Active reports the visible section.
func (m *Model) Active() section.Section { return m.page.Active() }

// Toast returns the notification currently shown, if any.
func (m *Model) Toast() (clipboard.Notification, bool) {
	if m.toast == nil {
		return clipboard.Notification{}, false
	}
	return *m.toast, true
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
