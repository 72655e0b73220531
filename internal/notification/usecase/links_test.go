package usecase

import "testing"

func TestJoinBase(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		fragment string
		want     string
	}{
		{"leading slash", "https://launchpad.net", "/~alice", "https://launchpad.net/~alice"},
		{"no leading slash", "https://launchpad.net", "~alice/+git/x", "https://launchpad.net/~alice/+git/x"},
		{"trailing slash on base", "https://launchpad.net/", "/~alice", "https://launchpad.net/~alice"},
		{"doubled slashes", "https://launchpad.net//", "//~alice", "https://launchpad.net/~alice"},
		{"empty fragment", "https://launchpad.net", "", "https://launchpad.net"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinBase(tt.base, tt.fragment); got != tt.want {
				t.Errorf("joinBase(%q, %q) = %q, want %q", tt.base, tt.fragment, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if got := displayName("/~alice/+git/x"); got != "~alice/+git/x" {
		t.Errorf("unexpected %q", got)
	}
	// Only the leading slash is removed; malformed input is left intact.
	if got := displayName("~alice"); got != "~alice" {
		t.Errorf("unexpected %q", got)
	}
	if got := displayName(""); got != "" {
		t.Errorf("unexpected %q", got)
	}
}

func TestLastSegment(t *testing.T) {
	tests := map[string]string{
		"refs/heads/main":        "main",
		"refs/heads/feature/foo": "foo",
		"main":                   "main",
		"refs/heads/":            "",
	}
	for in, want := range tests {
		if got := lastSegment(in); got != want {
			t.Errorf("lastSegment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLink(t *testing.T) {
	if got := link("Changes", "https://x"); got != "[Changes](https://x)" {
		t.Errorf("unexpected %q", got)
	}
	if got := codeLink("main", "https://x"); got != "[`main`](https://x)" {
		t.Errorf("unexpected %q", got)
	}
	if got := link("proposed merging", ""); got != "proposed merging" {
		t.Errorf("expected bare text without url, got %q", got)
	}
}
