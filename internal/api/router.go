package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pressroom/pressroom-api/internal/api/handler"
	"github.com/pressroom/pressroom-api/internal/api/middleware"
	"github.com/pressroom/pressroom-api/internal/core/ports"
	"github.com/pressroom/pressroom-api/internal/core/service"
	oauthprovider "github.com/pressroom/pressroom-api/internal/infrastructure/auth"
	"github.com/pressroom/pressroom-api/internal/infrastructure/config"
	mongodb "github.com/pressroom/pressroom-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pressroom/pressroom-api/internal/infrastructure/db/redis"
	"github.com/pressroom/pressroom-api/internal/infrastructure/notify"
)

const sessionTTL = 30 * 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pressroom"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	resetStore := redisdb.NewResetTokenStore(rdb)

	// --- Notification channels (absent config disables a channel) ---
	var notifiers []ports.Notifier
	if cfg.Notify.WebhookURL != "" {
		notifiers = append(notifiers, notify.NewWebhookNotifier(cfg.Notify.WebhookURL))
	}
	var mailer ports.Notifier = notify.NewEmailNotifier(cfg.Notify.AlertEmail, log)
	if cfg.Notify.AlertEmail != "" {
		notifiers = append(notifiers, mailer)
	}

	// --- Services ---
	auditRecorder := service.NewAuditRecorder(auditRepo, notifiers, log)
	userService := service.NewUserService(userRepo, auditRecorder, log)
	authService := service.NewAuthService(userRepo, resetStore, mailer, cfg.JWTSecret, sessionTTL, cfg.BaseURL, log)
	postService := service.NewPostService(postRepo, log)

	// --- OAuth (routes registered only when configured) ---
	var oauth handler.OAuthProvider
	if cfg.OAuth.GoogleClientID != "" {
		oauth = oauthprovider.NewGoogleProvider(
			cfg.OAuth.GoogleClientID,
			cfg.OAuth.GoogleClientSecret,
			cfg.OAuth.GoogleCallbackURL,
		)
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, oauth)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	auditHandler := handler.NewAuditHandler(auditRepo)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminMW := middleware.RBAC("admin")

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/reset", authHandler.RequestReset)
	e.POST("/auth/reset/:token", authHandler.CompleteReset)
	if oauth != nil {
		e.GET("/auth/google", authHandler.OAuthStart)
		e.GET("/auth/google/callback", authHandler.OAuthCallback)
	}

	// --- Posts (reads public, writes authenticated) ---
	e.GET("/v1/posts", postHandler.List)
	e.GET("/v1/posts/:id", postHandler.Get)
	e.POST("/v1/posts", postHandler.Create, authMW)
	e.PUT("/v1/posts/:id", postHandler.Update, authMW)
	e.DELETE("/v1/posts/:id", postHandler.Delete, authMW)

	// --- Users ---
	e.GET("/v1/users/:id", userHandler.Get, authMW)

	// --- Admin panel ---
	admin := e.Group("/v1/admin", authMW, adminMW)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.PATCH("/users/role", userHandler.ChangeRole)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.GET("/audit", auditHandler.List)

	// --- Ops surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
