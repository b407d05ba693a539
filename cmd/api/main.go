package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/db"
	"portfolio-api/internal/email"
	apihttp "portfolio-api/internal/http"
	"portfolio-api/internal/keepalive"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	messageRepo := repository.NewPgMessageRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	adminRepo := repository.NewPgAdminRepository(pool)

	guestbookSvc := service.NewGuestbookService(messageRepo)
	projectSvc := service.NewProjectService(projectRepo)
	adminSvc := service.NewAdminService(adminRepo, cfg.AdminSignupCode)

	throttleWindow := time.Duration(cfg.DeleteThrottleWindow) * time.Minute
	deleteLimiter := service.NewDeleteRateLimiter(throttleWindow, cfg.DeleteThrottleMax)

	var (
		tokenStore  service.RefreshTokenStore
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			deleteLimiter = service.NewRedisDeleteRateLimiter(redisClient, throttleWindow, cfg.DeleteThrottleMax)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	// Sin SMTP configurado no se notifica; el guestbook funciona igual.
	var notifier email.Sender
	if cfg.SMTPHost != "" && cfg.NotifyTo != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.NotifyTo, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			notifier = sender
		}
	}

	authHandler := apihttp.NewAuthHandler(logger, adminSvc, jwtSvc)
	messageHandler := apihttp.NewMessageHandler(logger, guestbookSvc, deleteLimiter, notifier)
	projectHandler := apihttp.NewProjectHandler(logger, projectSvc)
	router := apihttp.NewRouter(logger, jwtSvc, authHandler, messageHandler, projectHandler, cfg.CORSAllowOrigin)

	// El hosting gratuito suspende la base por inactividad; un ping
	// periódico la mantiene despierta.
	keepAliveCtx, stopKeepAlive := context.WithCancel(ctx)
	defer stopKeepAlive()
	go keepalive.Run(keepAliveCtx, pool, time.Duration(cfg.KeepAliveMinutes)*time.Minute, logger)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
