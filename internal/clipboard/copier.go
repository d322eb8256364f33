package clipboard

import (
	"context"

	"github.com/Zachkp/techfolio/internal/logger"
)

// Result is the observable outcome of one copy.
type Result struct {
	Text         string
	Label        string
	Err          error
	Notification Notification
}

func (r Result) OK() bool { return r.Err == nil }

type Copier struct {
	w   Writer
	n   Notifier
	log logger.Logger
}

// NewCopier builds a Copier. n may be nil when the caller consumes the
// notification from the Result instead.
func NewCopier(w Writer, n Notifier, log logger.Logger) *Copier {
	if log == nil {
		log = logger.NewNop()
	}
	return &Copier{w: w, n: n, log: log}
}

// Copy writes text in the background. The returned channel yields exactly
// one Result and is then closed; callers are free to ignore it.
func (c *Copier) Copy(ctx context.Context, text, label string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		out <- c.copy(ctx, text, label)
	}()
	return out
}

// CopySync is Copy for callers that want to block on the outcome.
func (c *Copier) CopySync(ctx context.Context, text, label string) Result {
	return <-c.Copy(ctx, text, label)
}

func (c *Copier) copy(ctx context.Context, text, label string) Result {
	err := ctx.Err()
	if err == nil {
		err = c.w.WriteAll(text)
	}

	res := Result{
		Text:         text,
		Label:        label,
		Err:          err,
		Notification: NotificationFor(label, err),
	}
	if err != nil {
		c.log.Warn("clipboard write failed",
			logger.String("label", label),
			logger.Error(err))
	} else {
		c.log.Debug("clipboard write",
			logger.String("label", label),
			logger.Int("bytes", len(text)))
	}

	if c.n != nil {
		c.n.Show(res.Notification)
	}
	return res
}
