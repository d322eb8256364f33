package web

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/techfolio/internal/analytics"
	"github.com/Zachkp/techfolio/internal/clipboard"
	"github.com/Zachkp/techfolio/internal/logger"
	"github.com/Zachkp/techfolio/internal/page"
	"github.com/Zachkp/techfolio/internal/section"
	"github.com/Zachkp/techfolio/internal/version"
)

// newPage builds a page for one request and selects id when given.
func (s *Server) newPage(id string) (*page.Page, error) {
	p := page.New(s.opts.Catalog, nil)
	if id == "" {
		return p, nil
	}
	sec, err := section.Parse(id)
	if err != nil {
		return nil, err
	}
	if err := p.Select(sec); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Server) handleIndex(c *gin.Context) {
	p, err := s.newPage(c.Query("section"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"status": http.StatusBadRequest,
			"error":  "Неизвестный раздел",
		})
		return
	}
	c.Set(sectionKey, p.Active().String())
	c.HTML(http.StatusOK, "index.html", s.pageData(p))
}

// handleSection returns the tabs, panels and menu for HTMX swaps.
func (s *Server) handleSection(c *gin.Context) {
	p, err := s.newPage(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"status": http.StatusNotFound,
			"error":  "Неизвестный раздел",
		})
		return
	}
	c.Set(sectionKey, p.Active().String())
	c.HTML(http.StatusOK, "app", s.pageData(p))
}

type copyEventRequest struct {
	Section string `json:"section" binding:"required"`
	Index   *int   `json:"index" binding:"required"`
	OK      bool   `json:"ok"`
	Reason  string `json:"reason"`
}

// handleCopyEvent receives the outcome of a browser clipboard write and
// answers with the toast to show.
func (s *Server) handleCopyEvent(c *gin.Context) {
	var req copyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.HTML(http.StatusBadRequest, "toast.html", clipboard.Notification{
			Kind:    clipboard.KindError,
			Message: "Некорректный запрос",
		})
		return
	}

	sec, err := section.Parse(req.Section)
	if err != nil {
		c.HTML(http.StatusBadRequest, "toast.html", clipboard.Notification{
			Kind:    clipboard.KindError,
			Message: "Неизвестный раздел",
		})
		return
	}

	snip, err := page.New(s.opts.Catalog, nil).CopyTarget(sec, *req.Index)
	switch {
	case errors.Is(err, page.ErrNotCopyable):
		c.HTML(http.StatusUnprocessableEntity, "toast.html", clipboard.Notification{
			Kind:    clipboard.KindError,
			Message: "Копировать можно только код-сниппеты",
		})
		return
	case errors.Is(err, page.ErrNoSuchSnippet):
		c.HTML(http.StatusNotFound, "toast.html", clipboard.Notification{
			Kind:    clipboard.KindError,
			Message: "Сниппет не найден",
		})
		return
	case err != nil:
		c.HTML(http.StatusInternalServerError, "toast.html", clipboard.NotificationFor(snip.Title, err))
		return
	}

	var copyErr error
	if !req.OK {
		copyErr = browserCopyError(req.Reason)
		s.log.Info("browser clipboard write failed",
			logger.String("snippet", snip.Title),
			logger.String("reason", req.Reason))
	}

	if s.opts.Tracker != nil {
		ev := analytics.CopyEvent{SnippetTitle: snip.Title, OK: req.OK, Reason: req.Reason}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		if err := s.opts.Tracker.RecordCopy(ctx, ev); err != nil {
			s.log.Warn("recording copy event failed", logger.Error(err))
		}
		cancel()
	}

	c.HTML(http.StatusOK, "toast.html", clipboard.NotificationFor(snip.Title, copyErr))
}

// browserCopyError turns a DOMException name into something readable.
func browserCopyError(reason string) error {
	switch reason {
	case "NotAllowedError":
		return errors.New("доступ к буферу обмена запрещён")
	case "":
		return errors.New("неизвестная ошибка")
	default:
		return errors.New(reason)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	analyticsStatus := "disabled"
	if s.opts.Tracker != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.opts.Tracker.Ping(ctx); err != nil {
			analyticsStatus = "error"
		} else {
			analyticsStatus = "ok"
		}
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(s.startTime).String(),
		"version":   version.Version,
		"commit":    version.Commit,
		"analytics": analyticsStatus,
	})
}

func (s *Server) handleNotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.Header("Access-Control-Allow-Origin", "*")
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"status": http.StatusNotFound,
		"error":  "Страница не найдена",
	})
}

func (s *Server) handlePrivacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"analytics": s.opts.Tracker != nil,
		"email":     s.opts.Contacts.Email,
	})
}
