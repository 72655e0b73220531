package middleware_test

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"launchpad-mattermost/internal/middleware"
	"launchpad-mattermost/internal/webhook"
	"launchpad-mattermost/pkg/log"
)

func newEngine(cfg webhook.SecurityConfig, seen *string, trustedProxies ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), webhook.NewSecurityValidator(cfg))

	engine := gin.New()
	if err := engine.SetTrustedProxies(trustedProxies); err != nil {
		panic(err)
	}
	engine.Use(mw.RequestID(), mw.AccessLog())
	engine.POST("/", mw.AllowIP(), mw.RateLimit(), mw.VerifySignature(), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		*seen = string(body) + "|" + log.RequestID(c.Request.Context())
		c.String(http.StatusOK, "ok")
	})
	return engine
}

func doPost(engine *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:1234"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	var seen string
	engine := newEngine(webhook.SecurityConfig{}, &seen)

	w := doPost(engine, "{}", nil)
	id := w.Header().Get(middleware.RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected generated uuid, got %q", id)
	}
	if !strings.HasSuffix(seen, "|"+id) {
		t.Errorf("request id not propagated to context: %q", seen)
	}

	given := uuid.NewString()
	w = doPost(engine, "{}", map[string]string{middleware.RequestIDHeader: given})
	if got := w.Header().Get(middleware.RequestIDHeader); got != given {
		t.Errorf("expected %s, got %s", given, got)
	}
}

func TestVerifySignature(t *testing.T) {
	var seen string
	engine := newEngine(webhook.SecurityConfig{Secret: "s3cret"}, &seen)
	body := `{"action":"created"}`

	mac := hmac.New(sha1.New, []byte("s3cret"))
	mac.Write([]byte(body))
	sig := "sha1=" + hex.EncodeToString(mac.Sum(nil))

	w := doPost(engine, body, map[string]string{webhook.SignatureHeader: sig})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(seen, body+"|") {
		t.Errorf("body must be readable after verification, got %q", seen)
	}

	w = doPost(engine, body, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without signature, got %d", w.Code)
	}
	if w.Body.String() != "Invalid or missing X-Hub-Signature" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestVerifySignature_Disabled(t *testing.T) {
	var seen string
	engine := newEngine(webhook.SecurityConfig{}, &seen)

	w := doPost(engine, "{}", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 without secret, got %d", w.Code)
	}
}

func TestAllowIP(t *testing.T) {
	var seen string
	engine := newEngine(webhook.SecurityConfig{AllowedIPs: []string{"192.168.0.0/16"}}, &seen)

	w := doPost(engine, "{}", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestAllowIP_ForwardedHeaders(t *testing.T) {
	var seen string
	cfg := webhook.SecurityConfig{AllowedIPs: []string{"192.168.0.0/16"}}
	forwarded := map[string]string{"X-Forwarded-For": "192.168.1.1"}

	untrusted := newEngine(cfg, &seen)
	if w := doPost(untrusted, "{}", forwarded); w.Code != http.StatusForbidden {
		t.Errorf("X-Forwarded-For from an untrusted peer must be ignored, got %d", w.Code)
	}
	if w := doPost(untrusted, "{}", map[string]string{"X-Real-IP": "192.168.1.1"}); w.Code != http.StatusForbidden {
		t.Errorf("X-Real-IP from an untrusted peer must be ignored, got %d", w.Code)
	}

	trusted := newEngine(cfg, &seen, "10.0.0.1")
	if w := doPost(trusted, "{}", forwarded); w.Code != http.StatusOK {
		t.Errorf("expected forwarded address from trusted proxy to pass, got %d", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	var seen string
	engine := newEngine(webhook.SecurityConfig{RateLimitPerMin: 1}, &seen)

	if w := doPost(engine, "{}", nil); w.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", w.Code)
	}
	if w := doPost(engine, "{}", nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}
