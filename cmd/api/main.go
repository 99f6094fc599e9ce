package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chat-api/config"
	configMinio "chat-api/config/minio"
	configPostgre "chat-api/config/postgre"
	configRedis "chat-api/config/redis"
	"chat-api/internal/httpserver"
	messageRepo "chat-api/internal/message/repository/postgre"
	messageUC "chat-api/internal/message/usecase"
	"chat-api/internal/realtime"
	realtimeRedis "chat-api/internal/realtime/delivery/redis"
	realtimeUC "chat-api/internal/realtime/usecase"
	userRepo "chat-api/internal/user/repository/postgre"
	userUC "chat-api/internal/user/usecase"
	"chat-api/pkg/log"
	pkgRedis "chat-api/pkg/redis"
	"chat-api/pkg/scope"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting chat API service...")

	// PostgreSQL
	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to PostgreSQL: %v", err)
	}
	defer configPostgre.Disconnect(ctx, db)
	logger.Info(ctx, "PostgreSQL client initialized")

	// MinIO - attachment storage
	storage, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MinIO: %v", err)
	}
	defer configMinio.Disconnect(storage)
	logger.Info(ctx, "MinIO client initialized")

	// JWT manager
	jwtMgr := scope.New(cfg.JWT.SecretKey)
	logger.Info(ctx, "JWT manager initialized")

	// Realtime hub
	rtUC := realtimeUC.New(logger, realtime.ConnectionConfig{
		PingInterval:   cfg.WebSocket.PingInterval,
		PongWait:       cfg.WebSocket.PongWait,
		WriteWait:      cfg.WebSocket.WriteWait,
		MaxMessageSize: cfg.WebSocket.MaxMessageSize,
		MaxConnections: cfg.WebSocket.MaxConnections,
	})

	// Push delivery goes through Redis when enabled so every instance can
	// reach its local connections; otherwise straight to the local hub.
	var (
		notifier    realtime.Notifier = rtUC
		subscriber  realtimeRedis.Subscriber
		redisClient *pkgRedis.Client
	)
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Fatalf(ctx, "Failed to connect to Redis: %v", err)
		}
		defer configRedis.Disconnect(redisClient)
		logger.Info(ctx, "Redis client initialized")

		notifier = realtimeRedis.NewPublisher(redisClient, logger)
		subscriber = realtimeRedis.New(redisClient, rtUC, logger)
	}

	// Repositories
	usrRepo := userRepo.New(logger, db)
	msgRepo := messageRepo.New(logger, db)

	// Use cases
	usrUC := userUC.New(logger, usrRepo, jwtMgr)
	msgUC := messageUC.New(logger, msgRepo, usrRepo, storage, cfg.MinIO.Bucket, notifier)

	srv, err := httpserver.New(logger, httpserver.Config{
		Host:       cfg.Server.Host,
		Port:       cfg.Server.Port,
		Mode:       cfg.Server.Mode,
		RealtimeUC: rtUC,
		UserUC:     usrUC,
		MessageUC:  msgUC,
		Subscriber: subscriber,
		JWTManager: jwtMgr,
		Cookie:     cfg.Cookie,
		WebSocket:  cfg.WebSocket,
		DB:         db,
		Redis:      redisClient,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "Server stopped with error: %v", err)
	}
}
