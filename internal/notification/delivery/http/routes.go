package http

import (
	"github.com/gin-gonic/gin"

	"launchpad-mattermost/internal/middleware"
)

// RegisterRoutes mounts the webhook endpoint at hookPath behind the webhook guards.
func RegisterRoutes(r gin.IRouter, hookPath string, h Handler, mw middleware.Middleware) {
	if hookPath == "" {
		hookPath = "/"
	}
	r.POST(hookPath, mw.AllowIP(), mw.RateLimit(), mw.VerifySignature(), h.HandleWebhook)
}
