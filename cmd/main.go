package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/adapter/judge0"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/adapter/postgres/problemrepository"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/adapter/redis/problemcache"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/config"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/services/grading"
	logger2 "github.com/Vishal-V-D/smart-hire-backend-sub000/internal/global/logger"
	http2 "github.com/Vishal-V-D/smart-hire-backend-sub000/internal/http"
)

func main() {
	initEnv()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting grading service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg)
	if err != nil {
		panic(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})

	// SECONDARY PORTS
	problemRepo := problemrepository.New(db, logger)
	problemStore := problemcache.New(redisClient, problemRepo, logger)
	judgeClient := judge0.NewClient(sysCfg.JudgeConfig, logger)

	// services
	orchestrator := grading.NewOrchestrator(judgeClient, sysCfg.JudgeConfig, logger)
	gradingSvc := grading.NewGradingService(problemStore, orchestrator, logger)
	serviceProvider := http2.NewServiceProvider(gradingSvc)

	// server
	httServer := http2.NewServer(sysCfg.HTTPPort, "gradingService", *serviceProvider, sysCfg.JwtConfig, logger)
	if err := httServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httServer.Stop(ctx)

	if err := db.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("Failed to close redis client", "error", err)
	}
	logger.Sync()

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.AppConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.PostgresConfig.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// initEnv loads "<env>.env" when an environment name is supplied as the
// first argument, otherwise falls back to a plain .env if one exists.
func initEnv() {
	if len(os.Args) >= 2 {
		if err := godotenv.Load(os.Args[1] + ".env"); err != nil {
			logger2.Warn("Failed to load env file", "file", os.Args[1]+".env", "error", err)
		}
		return
	}
	_ = godotenv.Load()
}
