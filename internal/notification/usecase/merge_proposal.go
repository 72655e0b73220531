package usecase

import (
	"fmt"
	"strings"

	"launchpad-mattermost/internal/notification"
)

// mergeProposalFallback is sent for actions that have no dedicated format.
const mergeProposalFallback = "Merge proposal"

func (uc *implUseCase) renderMergeProposal(payload map[string]any) (notification.Message, error) {
	ev, err := decodeMergeProposal(payload)
	if err != nil {
		return notification.Message{}, err
	}

	switch ev.Action {
	case notification.ActionCreated:
		return uc.renderCreated(ev)
	case notification.ActionModified:
		return uc.renderModified(ev)
	case notification.ActionDeleted:
		if ev.MergeProposal == "" {
			return notification.Message{}, notification.MissingField("merge_proposal")
		}
		return notification.Message{Text: uc.mergeProposalURL(ev) + " has been deleted"}, nil
	default:
		return notification.Message{Text: mergeProposalFallback}, nil
	}
}

func (uc *implUseCase) renderCreated(ev mergeProposalEvent) (notification.Message, error) {
	attrs, err := ev.created()
	if err != nil {
		return notification.Message{}, err
	}

	registrantURL := joinBase(uc.cfg.WebURL, attrs.Registrant)
	sourceURL := refURL(joinBase(uc.cfg.WebURL, attrs.SourceGitRepository), lastSegment(attrs.SourceGitPath))
	targetURL := refURL(joinBase(uc.cfg.WebURL, attrs.TargetGitRepository), lastSegment(attrs.TargetGitPath))

	return notification.Message{
		Text: fmt.Sprintf("%s has %s %s into %s",
			codeLink(displayName(attrs.Registrant), registrantURL),
			link("proposed merging", uc.mergeProposalURL(ev)),
			codeLink(displayName(attrs.SourceGitRepository), sourceURL),
			codeLink(displayName(attrs.TargetGitRepository), targetURL),
		),
	}, nil
}

func (uc *implUseCase) renderModified(ev mergeProposalEvent) (notification.Message, error) {
	changes, err := ev.changes()
	if err != nil {
		return notification.Message{}, err
	}

	lines := make([]string, 0, len(changes))
	for _, ch := range changes {
		lines = append(lines, fmt.Sprintf("%s: %s -> %s", ch.Name, formatValue(ch.Old), formatValue(ch.New)))
	}

	header := mergeProposalFallback
	if ev.MergeProposal != "" {
		header = codeLink(displayName(ev.MergeProposal), uc.mergeProposalURL(ev))
	}

	// An unchanged proposal still produces the header and a bare separator.
	return notification.Message{
		Text: header + " modified: " + diffSeparator + strings.Join(lines, diffSeparator),
	}, nil
}

// mergeProposalURL is empty when the payload does not name the proposal.
func (uc *implUseCase) mergeProposalURL(ev mergeProposalEvent) string {
	if ev.MergeProposal == "" {
		return ""
	}
	return joinBase(uc.cfg.CodeURL, ev.MergeProposal)
}
