package web

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/techfolio/internal/analytics"
	"github.com/Zachkp/techfolio/internal/logger"
)

const (
	requestIDHeader = "X-Request-ID"
	sectionKey      = "section"
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// accessLog writes one structured line per request.
func accessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http_request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Int("bytes", c.Writer.Size()),
			logger.Duration("duration", time.Since(start)),
			logger.String("request_id", c.GetString(requestIDHeader)),
		)
	}
}

// trackVisits records page views with a hashed client IP. Requests that ask
// not to be tracked, and failed requests, are skipped.
func (s *Server) trackVisits() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if s.opts.Tracker == nil || c.GetHeader("DNT") == "1" || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		v := analytics.Visit{
			HashedIP:  s.opts.Tracker.HashIP(c.ClientIP()),
			UserAgent: c.Request.UserAgent(),
			Path:      c.Request.URL.Path,
			Section:   c.GetString(sectionKey),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := s.opts.Tracker.RecordVisit(ctx, v); err != nil {
				s.log.Warn("recording visit failed", logger.Error(err))
			}
		}()
	}
}

// cors mirrors the headers the snippets API has always sent.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Next()
	}
}

func handlePreflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Header("Access-Control-Max-Age", "86400")
	c.Status(http.StatusOK)
}

func handleAPIMethodNotAllowed(c *gin.Context) {
	c.Header("Allow", "GET, OPTIONS")
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

const adminCookie = "admin_token"

// adminAuth accepts the token as a bearer header or the cookie set by the
// login form. Browser pages are sent to the login form, API calls get 401.
func adminAuth(token string, log logger.Logger, redirect bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if presented == "" {
			presented, _ = c.Cookie(adminCookie)
		}
		if token == "" || presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			log.Warn("rejected admin request", logger.String("path", c.Request.URL.Path))
			if redirect {
				c.Redirect(http.StatusFound, "/admin/login")
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
