package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchpad-mattermost/config"
	_ "launchpad-mattermost/docs" // Swagger docs
	"launchpad-mattermost/internal/httpserver"
	"launchpad-mattermost/internal/middleware"
	"launchpad-mattermost/internal/notification"
	notificationHTTP "launchpad-mattermost/internal/notification/delivery/http"
	"launchpad-mattermost/internal/notification/usecase"
	"launchpad-mattermost/internal/webhook"
	"launchpad-mattermost/pkg/log"
	"launchpad-mattermost/pkg/mattermost"
)

// @title       Launchpad Mattermost Relay API
// @description Forwards Launchpad webhook events to Mattermost channels.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Launchpad Mattermost relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.Webhook.Secret == "" {
		logger.Warn(ctx, "webhook.secret is empty, X-Hub-Signature verification disabled")
	}
	if cfg.Mattermost.InsecureSkipVerify {
		logger.Warn(ctx, "mattermost.insecure_skip_verify is set, TLS certificates are not checked")
	}

	// 3. Mattermost delivery
	mmClient := mattermost.NewClient(mattermost.Config{
		Username:           cfg.Mattermost.Username,
		IconURL:            cfg.Mattermost.IconURL,
		InsecureSkipVerify: cfg.Mattermost.InsecureSkipVerify,
	})

	routes := make(map[string]notification.Target, len(cfg.Mattermost.Routes))
	for label, r := range cfg.Mattermost.Routes {
		routes[label] = notification.Target{URL: r.URL, Channel: r.Channel}
	}

	// 4. Notification domain
	notificationUC := usecase.New(logger, mmClient, usecase.Config{
		WebURL:          cfg.Launchpad.WebURL,
		CodeURL:         cfg.Launchpad.CodeURL,
		GitURL:          cfg.Launchpad.GitURL,
		Routes:          routes,
		DeliveryTimeout: cfg.Mattermost.Timeout,
	})
	notificationHandler := notificationHTTP.New(logger, notificationUC)

	mw := middleware.New(logger, webhook.NewSecurityValidator(webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	}))

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Address:             cfg.HTTPServer.Address,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		TrustedProxies:      cfg.HTTPServer.TrustedProxies,
		HookPath:            cfg.HTTPServer.HookPath,
		NotificationHandler: notificationHandler,
		Middleware:          mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	// 7. Drain deliveries dispatched before shutdown
	drainTimeout := cfg.Mattermost.Timeout
	if drainTimeout <= 0 {
		drainTimeout = usecase.DefaultDeliveryTimeout
	}
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout+time.Second)
	defer cancel()
	if err := notificationUC.Wait(drainCtx); err != nil {
		logger.Warn(context.Background(), "Shutdown: ", err)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
