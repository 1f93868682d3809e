// Package http provides the campus API server, its middleware chain and the
// separate metrics server.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	announcementHTTP "github.com/allisson/campus/internal/announcement/http"
	authHTTP "github.com/allisson/campus/internal/auth/http"
	clubHTTP "github.com/allisson/campus/internal/club/http"
	commentHTTP "github.com/allisson/campus/internal/comment/http"
	"github.com/allisson/campus/internal/config"
	eventHTTP "github.com/allisson/campus/internal/event/http"
	feedbackHTTP "github.com/allisson/campus/internal/feedback/http"
	"github.com/allisson/campus/internal/httputil"
	lostfoundHTTP "github.com/allisson/campus/internal/lostfound/http"
	"github.com/allisson/campus/internal/metrics"
	notificationHTTP "github.com/allisson/campus/internal/notification/http"
	requestHTTP "github.com/allisson/campus/internal/request/http"
	resourceHTTP "github.com/allisson/campus/internal/resource/http"
	userHTTP "github.com/allisson/campus/internal/user/http"
)

// Handlers groups every module handler mounted under /api.
type Handlers struct {
	Guard        *authHTTP.Guard
	LoginLimiter *authHTTP.RateLimiter
	Session      *authHTTP.SessionHandler
	User         *userHTTP.UserHandler
	Event        *eventHTTP.EventHandler
	Club         *clubHTTP.ClubHandler
	Announcement *announcementHTTP.AnnouncementHandler
	Resource     *resourceHTTP.ResourceHandler
	LostItem     *lostfoundHTTP.LostItemHandler
	Feedback     *feedbackHTTP.FeedbackHandler
	Notification *notificationHTTP.NotificationHandler
	Comment      *commentHTTP.CommentHandler
	Request      *requestHTTP.RequestHandler
}

// Server is the campus API server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new Server. Call SetupRouter before Start.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with the middleware chain and every route.
// meterProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(cfg *config.Config, h Handlers, meterProvider metric.MeterProvider) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cfg.SecurityHeadersEnabled {
		router.Use(createSecurityMiddleware(cfg.SessionCookieSecure))
	}
	if cors := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); cors != nil {
		router.Use(cors)
	}
	if meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(meterProvider, cfg.MetricsNamespace, metrics.WithRoleLabel(roleLabel)))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	api := router.Group("/api")
	api.GET("/ping", s.pingHandler)

	authHTTP.RegisterRoutes(api.Group("/auth"), h.Session, h.Guard, h.LoginLimiter)
	userHTTP.RegisterRoutes(api.Group("/admin"), h.User, h.Guard)
	eventHTTP.RegisterRoutes(api.Group("/events"), h.Event, h.Guard)
	clubHTTP.RegisterRoutes(api.Group("/clubs"), h.Club, h.Guard)
	announcementHTTP.RegisterRoutes(api.Group("/announcements"), h.Announcement, h.Guard)
	resourceHTTP.RegisterRoutes(api.Group("/resources"), h.Resource, h.Guard)
	lostfoundHTTP.RegisterRoutes(api.Group("/lostfound"), h.LostItem, h.Guard)
	feedbackHTTP.RegisterRoutes(api.Group("/feedback"), h.Feedback, h.Guard)
	notificationHTTP.RegisterRoutes(api.Group("/notifications"), h.Notification, h.Guard)
	commentHTTP.RegisterRoutes(api.Group("/comments"), h.Comment, h.Guard)
	requestHTTP.RegisterRoutes(api.Group("/requests"), h.Request, h.Guard)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
// GET /health
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the datastore answers.
// GET /ready
func (s *Server) readinessHandler(c *gin.Context) {
	dbStatus := "ok"
	if s.db == nil {
		dbStatus = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			dbStatus = "error"
		}
	}

	if dbStatus != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": dbStatus},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": dbStatus},
	})
}

// pingHandler answers {ok:true}.
// GET /api/ping
func (s *Server) pingHandler(c *gin.Context) {
	httputil.OK(c, http.StatusOK, nil)
}

// roleLabel is the principal's role, or "anonymous" when the request carried no session.
func roleLabel(c *gin.Context) string {
	if principal := authHTTP.PrincipalFrom(c); principal != nil {
		return string(principal.Role())
	}
	return "anonymous"
}
