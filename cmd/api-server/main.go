package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"platehub/database"
	"platehub/internal/cache"
	"platehub/internal/config"
	"platehub/internal/handler"
	"platehub/internal/middleware"
	"platehub/internal/repository"
	"platehub/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.SeedData {
		if err := database.SeedData(db, logger); err != nil {
			logger.Error("seeding failed", "error", err)
			os.Exit(1)
		}
	}

	// The ratings cache is advisory. Without Redis everything still works,
	// aggregates are just computed from the database on each read.
	var ratings *cache.RatingsCache
	if cfg.RedisURL != "" {
		ratings, err = cache.NewRatingsCache(cfg.RedisURL, cfg.RedisPassword, time.Duration(cfg.CacheTTL)*time.Second)
		if err != nil {
			logger.Warn("redis unavailable, rating cache disabled", "error", err)
			ratings = nil
		} else {
			defer ratings.Close()
		}
	}

	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	dishRepo := repository.NewDishRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	restaurantService := service.NewRestaurantService(restaurantRepo, dishRepo, reviewRepo, ratings)
	dishService := service.NewDishService(dishRepo, restaurantRepo, reviewRepo, ratings)
	reviewService := service.NewReviewService(reviewRepo, restaurantRepo, dishRepo, ratings)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	handler.NewAuthHandler(authService).
		RegisterRoutes(api, middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst))
	handler.NewRestaurantHandler(restaurantService).RegisterRoutes(api, authService)
	handler.NewDishHandler(dishService).RegisterRoutes(api, authService)
	handler.NewReviewHandler(reviewService).RegisterRoutes(api, authService)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
