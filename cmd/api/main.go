// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nimbushr/catalog/internal/auth"
	"github.com/nimbushr/catalog/internal/config"
	"github.com/nimbushr/catalog/internal/email"
	"github.com/nimbushr/catalog/internal/email/mailer"
	"github.com/nimbushr/catalog/internal/handler"
	"github.com/nimbushr/catalog/internal/middleware"
	"github.com/nimbushr/catalog/internal/model"
	"github.com/nimbushr/catalog/internal/repository"
	"github.com/nimbushr/catalog/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	if err := db.AutoMigrate(&model.ConfigCatalog{}, &model.CatalogItem{}, &model.CatalogAuditLog{}); err != nil {
		return fmt.Errorf("migrating catalog tables: %w", err)
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db)
	auditRepo := repository.NewCatalogAuditLogRepository(db)
	directory := repository.NewUserDirectory(db)

	// Initialize token manager
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize optional external authorization
	var checker middleware.PermissionChecker
	if cfg.Permify.Host != "" {
		permify, err := auth.NewPermifyService(cfg.Permify.Host,
			auth.WithTenant(cfg.Permify.Tenant),
			auth.WithSchemaVersion(cfg.Permify.SchemaVersion),
		)
		if err != nil {
			return fmt.Errorf("connecting to permify: %w", err)
		}
		checker = permify
	}

	// Initialize optional change notifications
	var notifier service.ChangeNotifier
	if cfg.Sendgrid.APIKey != "" && cfg.Notify.AdminEmail != "" {
		emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
		if err != nil {
			return fmt.Errorf("initializing email service: %w", err)
		}
		notifier = mailer.NewCatalogNotifier(emailService, cfg.Notify.AdminEmail)
	}

	// Initialize cache service
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         cfg.Cache.TTL,
		CleanupFreq: cfg.Cache.CleanupFreq,
	})
	defer cacheService.Close()

	// Initialize catalog service
	catalogService := service.NewCatalogService(
		catalogRepo,
		directory,
		auditRepo,
		cacheService,
		notifier,
	)

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(catalogService)
	auditHandler := handler.NewAuditLogHandler(auditRepo)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api/system/config", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(tokenManager))

		// Read routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(
				middleware.RoleAdmin,
				middleware.RoleHR,
				middleware.RoleManager,
				middleware.RoleTeamLead,
			))

			r.Get("/", catalogHandler.GetAll)
			r.Get("/{type}", catalogHandler.GetByType)
		})

		// Write routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.RequireCatalogManage(checker))

			r.Get("/audit", auditHandler.GetAuditLogs)
			r.Get("/audit/{id}", auditHandler.GetAuditLogByID)

			r.Post("/{type}", catalogHandler.AddItem)
			r.Put("/{type}/reorder", catalogHandler.ReorderItems)
			r.Put("/{type}/{itemId}", catalogHandler.UpdateItem)
			r.Delete("/{type}/{itemId}", catalogHandler.RemoveItem)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"success":false,"message":"Internal server error","error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
