package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gameshelf/backend/internal/auth"
	"gameshelf/backend/internal/cache"
	"gameshelf/backend/internal/catalog"
	"gameshelf/backend/internal/config"
	"gameshelf/backend/internal/database"
	"gameshelf/backend/internal/handler"
	"gameshelf/backend/internal/hub"
	"gameshelf/backend/internal/igdb"
	"gameshelf/backend/internal/logging"
	"gameshelf/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	// Swagger imports
	_ "gameshelf/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Gameshelf API
// @version         1.0
// @description     Game collection tracker: ranked catalog browsing, per-user collections and settings.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET must be set")
	}

	// Connect to the database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("database unavailable")
	}
	st := store.New(db)

	// Upstream catalog client with its token cache
	httpClient := &http.Client{Timeout: cfg.IGDBTimeout}
	tokens := cache.NewTokenCache(
		igdb.NewTokenFetcher(httpClient, cfg.IGDBTokenURL, cfg.IGDBClientID, cfg.IGDBClientSecret),
		cache.DefaultTokenMargin,
	)
	upstream := igdb.NewClient(httpClient, cfg.IGDBBaseURL, cfg.IGDBClientID, tokens)

	var cacheOpts []cache.Option
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		cacheOpts = append(cacheOpts, cache.WithRemote(cache.NewRedisRemote(rdb, "gameshelf:catalog:")))
		logrus.WithField("addr", cfg.RedisAddr).Info("Catalog cache shared through redis.")
	}
	catalogService := catalog.NewService(
		upstream,
		cache.NewResults[[]catalog.Game]("ranked", cfg.CatalogCacheTTL, cacheOpts...),
		cache.NewResults[catalog.TagsByType]("tags", cfg.CatalogCacheTTL, cacheOpts...),
	)

	events := hub.New()
	catalogHandler := handler.NewCatalogHandler(catalogService, st)
	collectionHandler := handler.NewCollectionHandler(st, catalogService, events)
	settingsHandler := handler.NewSettingsHandler(st, events)
	userHandler := handler.NewUserHandler(st, cfg.JWTSecret)

	router := gin.New()
	router.Use(gin.Recovery(), logging.Middleware())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	requireAuth := auth.AuthMiddleware(cfg.JWTSecret)

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", userHandler.RegisterUser)
			authRoutes.POST("/login", userHandler.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(requireAuth)
		{
			userRoutes.GET("/me", userHandler.GetMe)
		}

		// Catalog routes (public, personalized when logged in)
		catalogRoutes := apiV1.Group("/catalog")
		catalogRoutes.Use(auth.OptionalAuthMiddleware(cfg.JWTSecret))
		{
			catalogRoutes.GET("/top", catalogHandler.TopGames)
			catalogRoutes.GET("/new", catalogHandler.NewReleases)
			catalogRoutes.GET("/tags", catalogHandler.GetTags)
			catalogRoutes.GET("/games/:id", catalogHandler.GetGame)
		}

		// Collection routes (protected)
		collectionRoutes := apiV1.Group("/collection")
		collectionRoutes.Use(requireAuth)
		{
			collectionRoutes.GET("", collectionHandler.ListCollection)
			collectionRoutes.GET("/events", collectionHandler.Events) // Must be before /:gameId
			collectionRoutes.GET("/:gameId", collectionHandler.GetEntry)
			collectionRoutes.POST("/:gameId", collectionHandler.AddEntry)
			collectionRoutes.PUT("/:gameId", collectionHandler.ReplaceEntry)
			collectionRoutes.PATCH("/:gameId", collectionHandler.UpdateEntry)
			collectionRoutes.DELETE("/:gameId", collectionHandler.RemoveEntry)
		}

		// Settings routes (protected)
		settingsRoutes := apiV1.Group("/settings")
		settingsRoutes.Use(requireAuth)
		{
			settingsRoutes.GET("", settingsHandler.GetSettings)
			settingsRoutes.PUT("", settingsHandler.SaveSettings)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(requireAuth, auth.AdminMiddleware(st))
		{
			adminRoutes.GET("/catalog/cache", catalogHandler.CacheStats)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("Server is running on :%s", cfg.Port)
		logrus.Infof("Swagger UI is available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
