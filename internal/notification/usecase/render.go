package usecase

import "launchpad-mattermost/internal/notification"

// Render formats payload for kind. Kinds without a renderer produce an empty Message.
func (uc *implUseCase) Render(kind notification.Kind, payload map[string]any) (notification.Message, error) {
	if payload == nil {
		payload = map[string]any{}
	}

	switch kind {
	case notification.KindGitPush:
		return uc.renderPush(payload)
	case notification.KindMergeProposal:
		return uc.renderMergeProposal(payload)
	default:
		return notification.Message{}, nil
	}
}
