package middleware

import (
	"launchpad-mattermost/internal/webhook"
	"launchpad-mattermost/pkg/log"
)

type Middleware struct {
	l        log.Logger
	security *webhook.SecurityValidator
}

func New(l log.Logger, security *webhook.SecurityValidator) Middleware {
	return Middleware{
		l:        l,
		security: security,
	}
}
