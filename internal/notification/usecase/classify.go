package usecase

import "launchpad-mattermost/internal/notification"

// Classify maps a Launchpad event type header to a Kind.
func (uc *implUseCase) Classify(eventType string) notification.Kind {
	if kind, ok := uc.cfg.EventTypes[eventType]; ok {
		return kind
	}
	return notification.KindUnknown
}
