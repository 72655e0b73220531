package usecase

import (
	"fmt"

	"launchpad-mattermost/internal/notification"
)

func (uc *implUseCase) renderPush(payload map[string]any) (notification.Message, error) {
	ev, err := decodePush(payload)
	if err != nil {
		return notification.Message{}, err
	}

	branch := lastSegment(ev.Ref)
	repoURL := joinBase(uc.cfg.WebURL, ev.RepositoryPath)
	branchURL := refURL(repoURL, branch)
	commitURL := joinBase(uc.cfg.GitURL, ev.RepositoryPath) + commitQuery + ev.CommitSHA

	return notification.Message{
		Text: fmt.Sprintf("%s pushed to %s at %s",
			link("Changes", commitURL),
			codeLink(branch, branchURL),
			codeLink(ev.RepositoryPath, repoURL),
		),
	}, nil
}
