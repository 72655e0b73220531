package notification

import "context"

// UseCase is the Launchpad notification flow.
type UseCase interface {
	// Classify maps an event type header value to a Kind. Unknown values yield KindUnknown.
	Classify(eventType string) Kind
	// Render turns a payload into a Message. An empty Message means nothing to report.
	Render(kind Kind, payload map[string]any) (Message, error)
	// Process classifies, renders and dispatches delivery for one webhook.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	// Wait blocks until dispatched deliveries finish or ctx is done.
	Wait(ctx context.Context) error
}

// Notifier delivers a rendered message to a chat webhook.
type Notifier interface {
	Post(ctx context.Context, text, url, channel string) error
}

// StatusReporter is implemented by Notifier errors that carry the remote
// HTTP response.
type StatusReporter interface {
	error
	HTTPStatus() int
	ResponseBody() string
}
