package mattermost

import "fmt"

// PostRequest is the payload accepted by Mattermost incoming webhooks.
type PostRequest struct {
	Text     string `json:"text"`
	Channel  string `json:"channel"`
	Username string `json:"username"`
	IconURL  string `json:"icon_url"`
}

// Config holds the client identity and transport settings.
type Config struct {
	Username           string
	IconURL            string
	InsecureSkipVerify bool
}

// StatusError is returned when Mattermost answers with a non-200 status.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mattermost webhook %s returned status %d: %s", e.URL, e.StatusCode, e.Body)
}

// HTTPStatus returns the status Mattermost answered with.
func (e *StatusError) HTTPStatus() int {
	return e.StatusCode
}

// ResponseBody returns the (possibly truncated) response body.
func (e *StatusError) ResponseBody() string {
	return e.Body
}
