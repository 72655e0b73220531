package usecase

import (
	"sync"
	"time"

	"launchpad-mattermost/internal/notification"
	pkgLog "launchpad-mattermost/pkg/log"
)

// Config is the immutable configuration shared by every request.
type Config struct {
	// WebURL is the base for people, repositories and branches.
	WebURL string
	// CodeURL is the base for merge proposals.
	CodeURL string
	// GitURL is the base for the cgit commit browser.
	GitURL string

	EventTypes      map[string]notification.Kind
	Routes          map[string]notification.Target
	DeliveryTimeout time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	notifier notification.Notifier
	cfg      Config

	// inflight tracks background deliveries so shutdown can drain them.
	inflight sync.WaitGroup
}

// Ensure implUseCase implements notification.UseCase
var _ notification.UseCase = (*implUseCase)(nil)

// New creates a new notification UseCase instance.
func New(l pkgLog.Logger, notifier notification.Notifier, cfg Config) *implUseCase {
	if cfg.WebURL == "" {
		cfg.WebURL = DefaultWebURL
	}
	if cfg.CodeURL == "" {
		cfg.CodeURL = DefaultCodeURL
	}
	if cfg.GitURL == "" {
		cfg.GitURL = DefaultGitURL
	}
	if cfg.EventTypes == nil {
		cfg.EventTypes = notification.DefaultEventTypes
	}
	if cfg.DeliveryTimeout <= 0 {
		cfg.DeliveryTimeout = DefaultDeliveryTimeout
	}
	return &implUseCase{
		l:        l,
		notifier: notifier,
		cfg:      cfg,
	}
}
