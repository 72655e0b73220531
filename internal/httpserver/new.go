package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"launchpad-mattermost/internal/middleware"
	notificationHTTP "launchpad-mattermost/internal/notification/delivery/http"
	"launchpad-mattermost/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	address     string
	port        int
	mode        string
	environment string

	// Launchpad webhook
	hookPath            string
	notificationHandler notificationHTTP.Handler
	middleware          middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Address     string
	Port        int
	Mode        string
	Environment string

	// TrustedProxies may set X-Forwarded-For and X-Real-IP. Empty trusts none.
	TrustedProxies []string

	HookPath            string
	NotificationHandler notificationHTTP.Handler
	Middleware          middleware.Middleware
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		address:             cfg.Address,
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		hookPath:            cfg.HookPath,
		notificationHandler: cfg.NotificationHandler,
		middleware:          cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.notificationHandler == nil {
		return errors.New("notification handler is required")
	}
	return nil
}
