package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errNotJSON      = errors.New("request is not a JSON object")
	errTrailingData = errors.New("unexpected data after JSON object")
)

// processWebhookReq accepts application/json (or a +json subtype) whose body
// is exactly one JSON object.
func (h *handler) processWebhookReq(c *gin.Context) (map[string]any, error) {
	mediaType, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
	if err != nil {
		return nil, errNotJSON
	}
	if mediaType != "application/json" && !(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")) {
		return nil, errNotJSON
	}

	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errNotJSON
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return payload, nil
}
