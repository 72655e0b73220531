package mattermost

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of an error response is kept for logging.
const maxErrorBody = 4096

// Client posts messages to Mattermost incoming webhooks.
type Client struct {
	username   string
	iconURL    string
	httpClient *http.Client
}

// NewClient creates a Client. The request deadline is taken from the context passed to Post.
func NewClient(cfg Config) *Client {
	httpClient := &http.Client{}
	if cfg.InsecureSkipVerify {
		httpClient.Transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // opt-in via config
		}
	}
	return &Client{
		username:   cfg.Username,
		iconURL:    cfg.IconURL,
		httpClient: httpClient,
	}
}

// Post sends text to the given webhook url and channel. A single attempt is made.
func (c *Client) Post(ctx context.Context, text, url, channel string) error {
	body, err := json.Marshal(PostRequest{
		Text:     text,
		Channel:  channel,
		Username: c.username,
		IconURL:  c.iconURL,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal mattermost post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create mattermost request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to mattermost: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{URL: url, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return nil
}
