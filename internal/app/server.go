// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dealership_backend/internal/auth"
	"dealership_backend/internal/brand"
	"dealership_backend/internal/common"
	"dealership_backend/internal/config"
	"dealership_backend/internal/jobs"
	"dealership_backend/internal/lead"
	"dealership_backend/internal/middleware"
	"dealership_backend/internal/platform/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger
	db         *gorm.DB

	// Jobs
	leadRetentionJob *jobs.LeadRetentionJob
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	sessions *auth.SessionService,
	blocklist auth.TokenBlocklist,
	authHandler *auth.Handler,
	leadHandler *lead.Handler,
	brandHandler *brand.Handler,
	leadRetentionJob *jobs.LeadRetentionJob,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg)))

	router.NoRoute(middleware.NotFoundHandler)
	router.NoMethod(middleware.MethodNotAllowedHandler)

	authMW := middleware.AuthMiddleware(sessions, blocklist, cfg, logger.Named("AuthMiddleware"))
	adminRoleMW := middleware.RoleAuthMiddleware(common.RoleAdmin)

	// --- Setup Routes ---
	router.GET("/health", healthHandler(db))

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1, authMW)
	leadHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	brandHandler.RegisterRoutes(v1, authMW, adminRoleMW)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:       httpServer,
		router:           router,
		cfg:              cfg,
		logger:           logger,
		db:               db,
		leadRetentionJob: leadRetentionJob,
	}, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
		return corsConfig
	}
	corsConfig.AllowOrigins = origins
	// Session cookies only travel cross-origin to explicitly listed origins.
	corsConfig.AllowCredentials = true
	return corsConfig
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "UP"
		code := http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = "DEGRADED"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "message": "Dealership API"})
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Migrate brings the schema up to date.
func (s *Server) Migrate() error {
	return database.AutoMigrate(s.db, s.logger, Models()...)
}

func (s *Server) Start() error {
	if s.leadRetentionJob != nil {
		if err := s.leadRetentionJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start lead retention job", zap.Error(err))
		}
	} else {
		s.logger.Info("Lead retention job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.leadRetentionJob != nil {
		s.leadRetentionJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
