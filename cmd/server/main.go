package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sudo-init-do/jobhub/internal/alerts"
	"github.com/sudo-init-do/jobhub/internal/analytics"
	"github.com/sudo-init-do/jobhub/internal/auth"
	"github.com/sudo-init-do/jobhub/internal/config"
	"github.com/sudo-init-do/jobhub/internal/db"
	"github.com/sudo-init-do/jobhub/internal/jobs"
	mware "github.com/sudo-init-do/jobhub/internal/middleware"
	"github.com/sudo-init-do/jobhub/internal/storage"
	"github.com/sudo-init-do/jobhub/internal/user"
)

func main() {
	cfg := config.Load()

	// Initialize database connection
	db.Init(cfg.DatabaseDSN)

	// Background email pipeline
	notifier := alerts.NewClient(cfg.RedisAddr)
	defer notifier.Close()
	worker := alerts.StartServer(cfg.RedisAddr, &alerts.Mailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
	defer worker.Shutdown()

	uploader, err := storage.NewS3Uploader(context.Background(),
		cfg.S3Endpoint, cfg.S3Region, cfg.S3Bucket,
		cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3PublicBaseURL)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	users := user.NewPostgresRepository(db.Conn)
	listings := jobs.NewPostgresRepository(db.Conn)

	authHandler := auth.NewHandler(users, uploader, notifier, cfg.JWTSecret, cfg.TokenTTL)
	profileHandler := user.NewProfileHandler(users, uploader)
	jobsHandler := jobs.NewHandler(listings)
	analyticsHandler := analytics.NewHandler(users)

	e := echo.New()
	e.HideBanner = true

	// Basic middleware
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	// Session cookie rides SameSite=None, so the browser client is a
	// cross-site caller and needs credentialed CORS.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowCredentials: true,
	}))

	// Health
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "service": "jobhub"})
	})
	e.GET("/ready", func(c echo.Context) error {
		if err := db.Conn.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
	})

	// Public routes
	// Auth routes with per-IP rate limiting to protect register/login from abuse
	authGroup := e.Group("")
	authGroup.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	e.GET("/jobs", jobsHandler.ListJobs)
	e.GET("/jobs/:id", jobsHandler.GetJob)
	e.GET("/analytics", analyticsHandler.Analytics)

	// Protected routes
	api := e.Group("")
	api.Use(mware.AuthGuard(cfg.JWTSecret))

	api.GET("/me", authHandler.Me)
	api.POST("/profile/update", profileHandler.UpdateProfile)
	api.POST("/jobs", jobsHandler.CreateJob, mware.RequireRoles("recruiter"))

	// Start server
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
