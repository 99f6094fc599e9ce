package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"chat-api/config"
	"chat-api/internal/message"
	"chat-api/internal/realtime"
	realtimeRedis "chat-api/internal/realtime/delivery/redis"
	"chat-api/internal/user"
	"chat-api/pkg/log"
	pkgRedis "chat-api/pkg/redis"
	"chat-api/pkg/scope"
)

// HTTPServer wires the HTTP surface of the service.
// New only assembles and validates dependencies; Run (in httpserver.go)
// starts background services and serves.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int

	// Domain use cases
	realtimeUC realtime.UseCase
	userUC     user.UseCase
	messageUC  message.UseCase

	// Optional cross-instance fan-out. Nil when Redis is disabled.
	subscriber realtimeRedis.Subscriber

	// Auth & security
	jwtMgr    scope.Manager
	cookieCfg config.CookieConfig
	wsConfig  config.WebSocketConfig

	// External services, used by health checks
	db    *sql.DB
	redis *pkgRedis.Client
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Host string
	Port int
	Mode string

	RealtimeUC realtime.UseCase
	UserUC     user.UseCase
	MessageUC  message.UseCase
	Subscriber realtimeRedis.Subscriber

	JWTManager scope.Manager
	Cookie     config.CookieConfig
	WebSocket  config.WebSocketConfig

	DB    *sql.DB
	Redis *pkgRedis.Client
}

// New creates a new HTTPServer. It does not start any goroutines; call Run.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.RealtimeUC == nil || cfg.UserUC == nil || cfg.MessageUC == nil {
		return nil, errors.New("httpserver: missing use case dependency")
	}
	if cfg.JWTManager == nil {
		return nil, errors.New("httpserver: missing JWT manager")
	}
	if cfg.DB == nil {
		return nil, errors.New("httpserver: missing database handle")
	}

	switch cfg.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	return &HTTPServer{
		gin:        gin.New(),
		logger:     logger,
		host:       cfg.Host,
		port:       cfg.Port,
		realtimeUC: cfg.RealtimeUC,
		userUC:     cfg.UserUC,
		messageUC:  cfg.MessageUC,
		subscriber: cfg.Subscriber,
		jwtMgr:     cfg.JWTManager,
		cookieCfg:  cfg.Cookie,
		wsConfig:   cfg.WebSocket,
		db:         cfg.DB,
		redis:      cfg.Redis,
	}, nil
}
