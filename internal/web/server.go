// Package web serves the portfolio page, its HTMX fragments and the
// snippets API.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/techfolio/internal/analytics"
	"github.com/Zachkp/techfolio/internal/content"
	"github.com/Zachkp/techfolio/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Tracker records visits and copy outcomes. *analytics.Store satisfies it.
type Tracker interface {
	HashIP(ip string) string
	RecordVisit(ctx context.Context, v analytics.Visit) error
	RecordCopy(ctx context.Context, e analytics.CopyEvent) error
	Stats(ctx context.Context) (*analytics.Stats, error)
	Visitors(ctx context.Context, limit int) ([]analytics.Visit, error)
	DeleteVisitors(ctx context.Context, hashedIP string) (int64, error)
	Ping(ctx context.Context) error
}

type Contacts struct {
	GithubURL string
	Email     string
	Website   string
}

type Options struct {
	Addr          string
	Catalog       *content.Catalog
	Tracker       Tracker // nil disables analytics
	AdminToken    string
	AdminUsername string
	AdminPassword string // empty: AdminToken doubles as the password
	ToastDuration time.Duration
	Contacts      Contacts
	Logger        logger.Logger
}

type Server struct {
	opts      Options
	log       logger.Logger
	engine    *gin.Engine
	http      *http.Server
	startTime time.Time
}

func New(opts Options) (*Server, error) {
	if opts.Catalog == nil {
		return nil, errors.New("web: catalog is required")
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = 3 * time.Second
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		opts:      opts,
		log:       opts.Logger,
		startTime: time.Now(),
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(accessLog(s.log))
	s.routes(r)

	s.engine = r
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

func (s *Server) routes(r *gin.Engine) {
	r.NoRoute(s.handleNotFound)
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/healthz", s.handleHealth)

	pages := r.Group("/")
	pages.Use(s.trackVisits())
	pages.GET("/", s.handleIndex)
	pages.GET("/sections/:id", s.handleSection)
	r.POST("/copy-events", s.handleCopyEvent)

	r.GET("/privacy", s.handlePrivacy)

	api := r.Group("/api")
	api.Use(cors())
	apiRoute(api, "/snippets", s.handleListSnippets)
	apiRoute(api, "/snippets/:id", s.handleGetSnippet)
	apiRoute(api, "/snippets/:id/raw", s.handleRawSnippet)
	apiRoute(api, "/sections/:id", s.handleSectionRows)

	r.GET("/admin/login", s.handleLoginPage)
	r.POST("/admin/login", s.handleLogin)
	r.GET("/admin/logout", s.handleLogout)

	pagesAuth := adminAuth(s.opts.AdminToken, s.log, true)
	r.GET("/admin/dashboard", pagesAuth, s.handleDashboard)
	r.GET("/admin/visitors", pagesAuth, s.handleVisitors)

	admin := r.Group("/admin")
	admin.Use(adminAuth(s.opts.AdminToken, s.log, false))
	admin.GET("/api/stats", s.handleStats)
	admin.GET("/export/stats", s.handleExportStats)
	admin.POST("/privacy/delete-visitor-data", s.handleDeleteVisitorData)
}

// apiRoute registers a read-only API resource. Preflight and rejected
// methods are answered inside the group so they carry the CORS headers.
func apiRoute(g *gin.RouterGroup, path string, h gin.HandlerFunc) {
	g.GET(path, h)
	g.OPTIONS(path, handlePreflight)
	for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		g.Handle(m, path, handleAPIMethodNotAllowed)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Start listens on the configured address and serves until Stop.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	s.log.Infof("HTTP server listening on %s", ln.Addr())
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("HTTP server shutting down")
	return s.http.Shutdown(ctx)
}
