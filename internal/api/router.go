package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hostelhub/hostel-api/internal/api/handler"
	"github.com/hostelhub/hostel-api/internal/api/middleware"
	"github.com/hostelhub/hostel-api/internal/core/service"
	mongodb "github.com/hostelhub/hostel-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hostelhub/hostel-api/internal/infrastructure/db/redis"
	"github.com/hostelhub/hostel-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	files service.FileStore,
	mailer service.Mailer,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("hostel"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	applicationRepo := mongodb.NewApplicationRepository(db)
	complaintRepo := mongodb.NewComplaintRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	tokenStore := redisdb.NewTokenStore(rdb)

	authService := service.NewAuthService(userRepo, tokenStore, mailer, cfg.JWTSecret, cfg.AppBaseURL, log)
	applicationService := service.NewApplicationService(applicationRepo, files, log)
	feedbackService := service.NewFeedbackService(complaintRepo, contactRepo, log)
	registrationService := service.NewRegistrationService(eventRepo, log)
	adminService := service.NewAdminService(userRepo, applicationRepo, complaintRepo, contactRepo, eventRepo)

	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	applicationHandler := handler.NewApplicationHandler(applicationService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	eventHandler := handler.NewEventHandler(registrationService)
	adminHandler := handler.NewAdminHandler(adminService)

	cookieAuth := middleware.CookieAuth(cfg.JWTSecret, tokenStore)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/auth/reset-password", authHandler.ResetPassword)

	// --- Public form routes ---
	e.POST("/apply", applicationHandler.Apply)
	e.POST("/api/complaints", feedbackHandler.FileComplaint)
	e.POST("/api/contact", feedbackHandler.SendContactMessage)
	e.POST("/register-event", eventHandler.Register)
	e.GET("/events", eventHandler.List)

	// --- Admin routes (token verified server-side, admin flag required) ---
	e.GET("/admin/:resource", adminHandler.ListResource, cookieAuth, middleware.AdminOnly())

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
