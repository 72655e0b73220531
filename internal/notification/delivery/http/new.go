package http

import (
	"github.com/gin-gonic/gin"

	"launchpad-mattermost/internal/notification"
	"launchpad-mattermost/pkg/log"
)

// Handler is the public interface for the notification HTTP delivery layer.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc notification.UseCase
}

// New creates a new HTTP handler for Launchpad webhooks.
func New(l log.Logger, uc notification.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
