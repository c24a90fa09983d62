package main

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	_ "github.com/skillswap/skillswap-api/api/swagger"
	"github.com/skillswap/skillswap-api/internal/handler"
	"github.com/skillswap/skillswap-api/internal/repository"
	"github.com/skillswap/skillswap-api/internal/router"
	"github.com/skillswap/skillswap-api/internal/service"
	"github.com/skillswap/skillswap-api/pkg/cache"
	"github.com/skillswap/skillswap-api/pkg/config"
	"github.com/skillswap/skillswap-api/pkg/database"
	"github.com/skillswap/skillswap-api/pkg/logger"
	"github.com/skillswap/skillswap-api/pkg/mailer"
)

// @title SkillSwap API
// @version 1.0.0
// @description Peer-to-peer skill exchange backend
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The catalog cache is an optimisation, not a dependency.
		logr.Sugar().Warnw("redis unavailable, running without skill cache", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	mail := mailer.NewSMTP(cfg.SMTP, logr)
	metricsSvc := service.NewMetricsService()

	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	recordingRepo := repository.NewRecordingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
	})
	userSvc := service.NewUserService(userRepo, recordingRepo, validate, logr)
	skillSvc := service.NewSkillService(skillRepo, cacheRepo, cfg.Skills.CacheTTL, validate, logr, metricsSvc)
	sessionSvc := service.NewSessionService(sessionRepo, recordingRepo, mail, validate, logr)
	notificationSvc := service.NewNotificationService(notificationRepo, mail, validate, logr)

	r := router.New(cfg, logr, authSvc, metricsSvc, router.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		Users:         handler.NewUserHandler(userSvc),
		Skills:        handler.NewSkillHandler(skillSvc),
		Sessions:      handler.NewSessionHandler(sessionSvc),
		Notifications: handler.NewNotificationHandler(notificationSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
