package notification_test

import (
	"errors"
	"fmt"
	"testing"

	"launchpad-mattermost/internal/notification"
)

func TestRenderError(t *testing.T) {
	err := fmt.Errorf("render: %w", notification.MissingField("ref_changes"))

	if !errors.Is(err, notification.ErrMissingField) {
		t.Errorf("expected ErrMissingField, got %v", err)
	}
	if errors.Is(err, notification.ErrMalformedPayload) {
		t.Errorf("did not expect ErrMalformedPayload")
	}

	var renderErr *notification.RenderError
	if !errors.As(err, &renderErr) || renderErr.Field != "ref_changes" {
		t.Fatalf("expected RenderError for ref_changes, got %v", err)
	}
	if renderErr.Error() != "missing field: ref_changes" {
		t.Errorf("unexpected message %q", renderErr.Error())
	}

	if !errors.Is(notification.MalformedField("new"), notification.ErrMalformedPayload) {
		t.Errorf("expected ErrMalformedPayload")
	}
}

func TestMessageEmpty(t *testing.T) {
	if !(notification.Message{}).Empty() {
		t.Errorf("zero Message should be empty")
	}
	if (notification.Message{Text: "x"}).Empty() {
		t.Errorf("Message with text should not be empty")
	}
}
