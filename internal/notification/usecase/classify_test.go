package usecase

import (
	"testing"

	"launchpad-mattermost/internal/notification"
)

func TestClassify(t *testing.T) {
	uc := newTestUseCase(newFakeNotifier())

	tests := []struct {
		header string
		want   notification.Kind
	}{
		{"git:push:0.1", notification.KindGitPush},
		{"merge-proposal:0.1", notification.KindMergeProposal},
		{"bug:0.1", notification.KindBug},
		{"bug:comment:0.1", notification.KindBugComment},
		{"", notification.KindUnknown},
		{"git:push:0.2", notification.KindUnknown},
		{"GIT:PUSH:0.1", notification.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := uc.Classify(tt.header); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.header, got, tt.want)
			}
		})
	}
}

func TestClassify_CustomTable(t *testing.T) {
	uc := New(&mockLogger{}, newFakeNotifier(), Config{
		EventTypes: map[string]notification.Kind{"snap:build:0.1": notification.KindGitPush},
	})

	if got := uc.Classify("snap:build:0.1"); got != notification.KindGitPush {
		t.Errorf("expected custom mapping, got %s", got)
	}
	if got := uc.Classify("git:push:0.1"); got != notification.KindUnknown {
		t.Errorf("expected custom table to replace defaults, got %s", got)
	}
}
