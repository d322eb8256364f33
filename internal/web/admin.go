package web

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/techfolio/internal/logger"
)

const adminSessionSeconds = 24 * 60 * 60

// clientID is what admin events are logged under. Raw IPs never reach the
// log when analytics can hash them.
func (s *Server) clientID(c *gin.Context) string {
	if s.opts.Tracker == nil {
		return "unknown"
	}
	return s.opts.Tracker.HashIP(c.ClientIP())
}

func (s *Server) handleLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", gin.H{})
}

// handleLogin checks the form credentials and issues the session cookie.
func (s *Server) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	want := s.opts.AdminPassword
	if want == "" {
		want = s.opts.AdminToken
	}

	if s.opts.AdminToken == "" || want == "" ||
		subtle.ConstantTimeCompare([]byte(username), []byte(s.opts.AdminUsername)) != 1 ||
		subtle.ConstantTimeCompare([]byte(password), []byte(want)) != 1 {
		s.log.Warn("failed admin login", logger.String("client", s.clientID(c)))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"error": "Неверные учётные данные",
		})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, s.opts.AdminToken, adminSessionSeconds, "/admin", "", c.Request.TLS != nil, true)
	s.log.Info("admin login", logger.String("client", s.clientID(c)))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) handleLogout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
	s.log.Info("admin logout", logger.String("client", s.clientID(c)))
	c.Redirect(http.StatusFound, "/admin/login")
}

func (s *Server) handleDashboard(c *gin.Context) {
	if s.opts.Tracker == nil {
		c.HTML(http.StatusServiceUnavailable, "error.html", gin.H{
			"status": http.StatusServiceUnavailable,
			"error":  "Аналитика отключена",
		})
		return
	}
	stats, err := s.opts.Tracker.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("loading stats failed", logger.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Не удалось загрузить статистику",
		})
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
}

func (s *Server) handleVisitors(c *gin.Context) {
	if s.opts.Tracker == nil {
		c.HTML(http.StatusServiceUnavailable, "error.html", gin.H{
			"status": http.StatusServiceUnavailable,
			"error":  "Аналитика отключена",
		})
		return
	}
	visitors, err := s.opts.Tracker.Visitors(c.Request.Context(), 200)
	if err != nil {
		s.log.Error("loading visitors failed", logger.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"status": http.StatusInternalServerError,
			"error":  "Не удалось загрузить посетителей",
		})
		return
	}
	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{"visitors": visitors})
}

func (s *Server) handleStats(c *gin.Context) {
	if s.opts.Tracker == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
		return
	}
	stats, err := s.opts.Tracker.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("loading stats failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleExportStats(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=techfolio-stats.json")
	s.log.Info("stats exported", logger.String("client", s.clientID(c)))
	s.handleStats(c)
}

type deleteVisitorRequest struct {
	IP       string `json:"ip"`
	HashedIP string `json:"hashed_ip"`
}

// handleDeleteVisitorData erases every visit of one visitor, identified by
// raw IP (hashed here, never stored) or by the hash shown on the visitors page.
func (s *Server) handleDeleteVisitorData(c *gin.Context) {
	if s.opts.Tracker == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
		return
	}

	var req deleteVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.IP == "") == (req.HashedIP == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of ip or hashed_ip is required"})
		return
	}

	hashed := req.HashedIP
	if req.IP != "" {
		hashed = s.opts.Tracker.HashIP(req.IP)
	}

	n, err := s.opts.Tracker.DeleteVisitors(c.Request.Context(), hashed)
	if err != nil {
		s.log.Error("deleting visitor data failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete visitor data"})
		return
	}
	s.log.Info("visitor data deleted", logger.String("hashed_ip", hashed), logger.Int64("rows", n))
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
