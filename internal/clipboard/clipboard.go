// Package clipboard copies text to a clipboard and turns the outcome into a
// user-facing notification. A failed write never produces a success message.
package clipboard

import (
	"errors"
	"fmt"

	atotto "github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("clipboard is not available in this environment")

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

func (f WriterFunc) WriteAll(text string) error { return f(text) }

// System writes to the operating system clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if atotto.Unsupported {
		return ErrUnsupported
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// ReadAll returns the current system clipboard contents.
func (System) ReadAll() (string, error) {
	if atotto.Unsupported {
		return "", ErrUnsupported
	}
	return atotto.ReadAll()
}

// Kind distinguishes success toasts from failure toasts.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Notifier displays transient notifications.
type Notifier interface {
	Show(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Show(n Notification) { f(n) }

// NotificationFor builds the toast for a copy of label that ended with err.
func NotificationFor(label string, err error) Notification {
	if err != nil {
		return Notification{
			Kind:    KindError,
			Message: fmt.Sprintf("Не удалось скопировать «%s»: %v", label, err),
		}
	}
	return Notification{
		Kind:    KindSuccess,
		Message: fmt.Sprintf("%s скопирован!", label),
	}
}
