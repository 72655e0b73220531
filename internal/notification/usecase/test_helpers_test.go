package usecase

import (
	"context"
	"fmt"
	"sync"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// recordingLogger keeps Errorf lines.
type recordingLogger struct {
	mockLogger
	mu     sync.Mutex
	errors []string
}

func (r *recordingLogger) Errorf(ctx context.Context, template string, arg ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(template, arg...))
}

func (r *recordingLogger) errorLines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}

type post struct {
	text    string
	url     string
	channel string
}

// fakeNotifier records posts and signals each one on the posted channel.
type fakeNotifier struct {
	mu     sync.Mutex
	posts  []post
	err    error
	posted chan post
	// release, when set, holds every Post until it is closed.
	release chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{posted: make(chan post, 8)}
}

func (f *fakeNotifier) Post(ctx context.Context, text, url, channel string) error {
	p := post{text: text, url: url, channel: channel}
	f.mu.Lock()
	f.posts = append(f.posts, p)
	f.mu.Unlock()
	f.posted <- p
	if f.release != nil {
		<-f.release
	}
	return f.err
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.posts)
}

func newTestUseCase(n *fakeNotifier) *implUseCase {
	return New(&mockLogger{}, n, Config{})
}

// mpAttributes returns a full attribute set as Launchpad sends it.
func mpAttributes() map[string]any {
	return map[string]any{
		"registrant":                  "/~alice",
		"source_branch":               nil,
		"source_git_repository":       "/~alice/+git/x",
		"source_git_path":             "refs/heads/feature",
		"target_branch":               nil,
		"target_git_repository":       "/~bob/+git/x",
		"target_git_path":             "refs/heads/main",
		"prerequisite_branch":         nil,
		"prerequisite_git_repository": nil,
		"prerequisite_git_path":       nil,
		"queue_status":                "Work in progress",
		"commit_message":              nil,
		"whiteboard":                  nil,
		"description":                 "Adds a feature",
		"preview_diff":                "/~alice/+git/x/+merge/1/+preview-diff/1",
		"date_last_modified":          "2024-05-01T10:00:00Z",
	}
}
