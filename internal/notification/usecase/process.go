package usecase

import (
	"context"
	"errors"
	"fmt"

	"launchpad-mattermost/internal/notification"
	pkgLog "launchpad-mattermost/pkg/log"
)

// Process classifies and renders one webhook delivery and, when there is
// something to report, starts delivery to the default route in the background.
// The reply does not depend on the delivery outcome.
func (uc *implUseCase) Process(ctx context.Context, input notification.ProcessInput) (notification.ProcessOutput, error) {
	kind := uc.Classify(input.EventType)
	uc.l.Debugf(ctx, "%s: event type %q classified as %s", LogPrefixProcess, input.EventType, kind)

	out := notification.ProcessOutput{Kind: kind}

	msg, err := uc.Render(kind, input.Payload)
	if err != nil {
		if errors.Is(err, notification.ErrMissingField) {
			uc.l.Warnf(ctx, "%s: %s event rejected: %v", LogPrefixProcess, kind, err)
			out.Reply = notification.ReplyInvalidEvent
			return out, nil
		}
		return out, fmt.Errorf("%s: render %s: %w", LogPrefixProcess, kind, err)
	}

	if msg.Empty() {
		uc.l.Debugf(ctx, "%s: nothing to report for %s", LogPrefixProcess, kind)
		return out, nil
	}

	target, ok := uc.cfg.Routes[notification.DefaultRoute]
	if !ok || target.URL == "" {
		return out, fmt.Errorf("%s: route %q: %w", LogPrefixProcess, notification.DefaultRoute, notification.ErrTargetNotFound)
	}

	// Detach from the request context, which is cancelled once the reply is written.
	bgCtx := pkgLog.WithRequestID(context.Background(), pkgLog.RequestID(ctx))
	uc.inflight.Add(1)
	go func() {
		defer uc.inflight.Done()
		uc.deliver(bgCtx, msg, target)
	}()

	out.Message = msg
	out.Dispatched = true
	out.Reply = notification.ReplyPosted
	return out, nil
}

// deliver makes a single delivery attempt. Failures are logged, never retried.
func (uc *implUseCase) deliver(ctx context.Context, msg notification.Message, target notification.Target) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.DeliveryTimeout)
	defer cancel()

	err := uc.notifier.Post(ctx, msg.Text, target.URL, target.Channel)
	if err == nil {
		uc.l.Infof(ctx, "%s: posted to channel %s", LogPrefixDeliver, target.Channel)
		return
	}

	var statusErr notification.StatusReporter
	if errors.As(err, &statusErr) {
		uc.l.Errorf(ctx, "%s: error posting to Mattermost URL %s, status=%d, response_body=%s",
			LogPrefixDeliver, target.URL, statusErr.HTTPStatus(), statusErr.ResponseBody())
		return
	}
	uc.l.Errorf(ctx, "%s: error posting to Mattermost URL %s: %v", LogPrefixDeliver, target.URL, err)
}

// Wait blocks until every dispatched delivery has finished or ctx is done.
func (uc *implUseCase) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: deliveries still in flight: %w", LogPrefixDeliver, ctx.Err())
	}
}
