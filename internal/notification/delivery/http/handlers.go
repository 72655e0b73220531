package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"launchpad-mattermost/internal/notification"
	pkgErrors "launchpad-mattermost/pkg/errors"
	"launchpad-mattermost/pkg/response"
)

// HandleWebhook receives a Launchpad webhook delivery.
// @Summary Launchpad webhook
// @Description Classifies a Launchpad event, renders it and forwards it to Mattermost.
// @Tags Webhook
// @Accept json
// @Produce plain
// @Param X-Launchpad-Event-Type header string false "Launchpad event type"
// @Param X-Hub-Signature header string false "HMAC of the body, required when a secret is configured"
// @Success 200 {string} string "Reply text; empty when there is nothing to report"
// @Failure 400 {string} string "Body is not JSON or payload is malformed"
// @Failure 401 {string} string "Invalid or missing X-Hub-Signature"
// @Failure 500 {string} string "No default Mattermost route configured"
// @Router / [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := h.processWebhookReq(c)
	if err != nil {
		h.l.Warnf(ctx, "notification handler: invalid body: %v", err)
		response.Text(c, http.StatusBadRequest, notification.ReplyInvalidJSON)
		return
	}

	eventType := c.GetHeader(notification.EventTypeHeader)
	h.l.Debugf(ctx, "notification handler: received %q: %v", eventType, payload)

	out, err := h.uc.Process(ctx, notification.ProcessInput{
		EventType: eventType,
		Payload:   payload,
	})
	if err != nil {
		httpErr := h.mapError(err)
		h.l.Errorf(ctx, "notification handler: %v", err)
		response.Text(c, pkgErrors.StatusCode(httpErr), httpErr.Error())
		return
	}

	response.Text(c, http.StatusOK, out.Reply)
}
