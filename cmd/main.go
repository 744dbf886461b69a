package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/sharath018/event-registration-backend/config"
	"github.com/sharath018/event-registration-backend/database"
	"github.com/sharath018/event-registration-backend/internal/auth"
	"github.com/sharath018/event-registration-backend/internal/logger"
	"github.com/sharath018/event-registration-backend/internal/notification"
	"github.com/sharath018/event-registration-backend/middleware"
	"github.com/sharath018/event-registration-backend/routes"
)

// @title Event Registration API
// @version 1.0
// @description Events, registrations, payment lifecycle and reports for the registration dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ invalid configuration")
	}
	logger.Init(cfg.AppEnv, cfg.LogLevel)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("❌ DB AutoMigrate failed")
	}

	authSvc, err := auth.NewService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ auth init failed")
	}
	if cfg.AdminAuthRequired && cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Warn().Msg("⚠️ ADMIN_AUTH_REQUIRED is set but no admin password is configured; nobody can log in")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init Redis
	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("⚠️ Redis unreachable, live notifications disabled")
			_ = redisClient.Close()
			redisClient = nil
		} else {
			log.Info().Str("addr", cfg.RedisAddr).Msg("✅ Redis connected")
		}
	}

	// Init Kafka: the service writes to the topic and the consumer relays to Redis
	var publisher notification.Publisher = notification.NopPublisher{}
	if redisClient != nil {
		publisher = notification.NewRedisPublisher(redisClient)
	}
	if cfg.KafkaEnabled() {
		kafkaPublisher := notification.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaPublisher.Close()

		consumer := notification.NewConsumer(
			notification.NewKafkaReader(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID),
			publisher,
		)
		go func() {
			if err := consumer.Run(ctx); err != nil {
				log.Error().Err(err).Msg("❌ registration change consumer failed")
			}
		}()
		publisher = kafkaPublisher
	}
	queued := notification.NewQueuedPublisher(publisher, 256)
	publisher = queued
	log.Info().Str("publisher", notification.Describe(publisher)).Msg("📣 registration changes")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ClientIP())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Cache-Control"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, routes.Dependencies{
		Config:    cfg,
		DB:        db,
		Auth:      authSvc,
		Publisher: publisher,
		Redis:     redisClient,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Strs("origins", cfg.AllowedOrigins()).
			Bool("adminAuth", cfg.AdminAuthRequired).Msg("🚀 Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("❌ server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("🛑 shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("⚠️ graceful shutdown failed")
	}
	if err := queued.Close(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("⚠️ pending registration changes dropped")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
