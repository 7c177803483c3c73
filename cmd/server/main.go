package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nko_site_go/config"
	"nko_site_go/handlers"
	"nko_site_go/middleware"
	"nko_site_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "nko-site"

func main() {
	cfg := config.Load()

	log, err := newLog(serviceName, cfg)
	if err != nil {
		fmt.Println("Error constructing logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log, cfg); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger, cfg *config.Config) error {
	log.Infow("startup", "status", "configuration loaded", "environment", cfg.Environment, "env_file", cfg.EnvFileLoaded)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// =========================================================================
	// Services

	leadClient := services.NewLeadClient(cfg.LeadEndpointURL, cfg.LeadRequestTimeout)
	log.Infow("startup", "status", "lead client ready", "endpoint", leadClient.Endpoint(), "timeout", cfg.LeadRequestTimeout)

	visitors := services.NewVisitorStore(leadClient, cfg.VisitorTTL, log).WithLimit(cfg.VisitorLimit)
	go visitors.Run(ctx)
	leadLimiter := middleware.NewLeadFormRateLimiter(handlers.LeadRateLimited)
	go leadLimiter.Cleanup(ctx)

	services.InitializeDocumentStore(cfg, log)
	middleware.InitAssetVersions("static", log)

	// =========================================================================
	// Router

	log.Infow("startup", "status", "initializing router")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(log))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         hstsMaxAge(cfg),
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	e.Static("/static", "static")
	e.GET("/healthz", handlers.HealthHandler(visitors))
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/documents/:slug", handlers.DocumentDownloadHandler)

	site := e.Group("")
	site.Use(middleware.CSRF(cfg))
	site.Use(middleware.CSPNonce())
	site.Use(middleware.Visitor(visitors, cfg))
	{
		site.GET("/", handlers.LandingHandler)
		site.POST("/lead", handlers.LeadSubmitHandler, leadLimiter.Middleware())
		site.POST("/lead/field", handlers.LeadFieldHandler)
		site.GET("/api/lead", handlers.LeadStateHandler)
	}

	// =========================================================================
	// Start API Server

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		log.Infow("shutdown", "status", "shutdown started")
		defer log.Infow("shutdown", "status", "shutdown complete")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}

func newLog(service string, cfg *config.Config) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	if !cfg.IsProduction() {
		config = zap.NewDevelopmentConfig()
	}
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]interface{}{
		"service": service,
	}

	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		config.Level = level
	}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}
