package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"launchpad-mattermost/internal/webhook"
	"launchpad-mattermost/pkg/response"
)

const (
	msgForbidden        = "Forbidden"
	msgRateLimited      = "Rate limit exceeded"
	msgInvalidSignature = "Invalid or missing X-Hub-Signature"
)

// AllowIP rejects callers outside the configured allow-list. The client IP
// is resolved by gin, so forwarding headers count only from trusted proxies.
func (m Middleware) AllowIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.security.ValidateIPAddress(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.AllowIP: %v", err)
			response.AbortText(c, http.StatusForbidden, msgForbidden)
			return
		}
		c.Next()
	}
}

// RateLimit throttles each client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.security.CheckRateLimit(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.AbortText(c, http.StatusTooManyRequests, msgRateLimited)
			return
		}
		c.Next()
	}
}

// VerifySignature checks the body HMAC when a secret is configured and
// passes requests through untouched otherwise.
func (m Middleware) VerifySignature() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.security.SignatureRequired() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			m.l.Errorf(ctx, "middleware.VerifySignature: failed to read body: %v", err)
			response.AbortText(c, http.StatusBadRequest, msgInvalidSignature)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if err := m.security.ValidateSignature(body, c.GetHeader(webhook.SignatureHeader)); err != nil {
			m.l.Warnf(ctx, "middleware.VerifySignature: %v", err)
			response.AbortText(c, http.StatusUnauthorized, msgInvalidSignature)
			return
		}
		c.Next()
	}
}
