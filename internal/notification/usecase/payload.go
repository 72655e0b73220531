package usecase

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"launchpad-mattermost/internal/notification"
)

type pushEvent struct {
	RepositoryPath string
	Ref            string
	CommitSHA      string
}

type mergeProposalEvent struct {
	Action        string
	MergeProposal string
	payload       map[string]any
}

type createdAttributes struct {
	Registrant          string
	SourceGitRepository string
	SourceGitPath       string
	TargetGitRepository string
	TargetGitPath       string
}

type attributeChange struct {
	Name string
	Old  any
	New  any
}

func decodePush(payload map[string]any) (pushEvent, error) {
	var ev pushEvent

	path, err := requireString(payload, "git_repository_path", "git_repository_path")
	if err != nil {
		return ev, err
	}

	refs, err := requireObject(payload, "ref_changes", "ref_changes")
	if err != nil {
		return ev, err
	}
	if len(refs) == 0 {
		return ev, notification.MissingField("ref_changes")
	}

	// Launchpad sends one ref per push; take the smallest so output is stable otherwise.
	names := make([]string, 0, len(refs))
	for name := range refs {
		names = append(names, name)
	}
	sort.Strings(names)
	ref := names[0]

	change, err := requireObject(refs, ref, "ref_changes."+ref)
	if err != nil {
		return ev, err
	}
	newSide, err := requireObject(change, "new", "ref_changes."+ref+".new")
	if err != nil {
		return ev, err
	}
	sha, err := requireString(newSide, "commit_sha1", "ref_changes."+ref+".new.commit_sha1")
	if err != nil {
		return ev, err
	}

	ev.RepositoryPath = path
	ev.Ref = ref
	ev.CommitSHA = sha
	return ev, nil
}

func decodeMergeProposal(payload map[string]any) (mergeProposalEvent, error) {
	ev := mergeProposalEvent{payload: payload}

	action, err := optionalString(payload, "action")
	if err != nil {
		return ev, err
	}
	mp, err := optionalString(payload, "merge_proposal")
	if err != nil {
		return ev, err
	}

	ev.Action = action
	ev.MergeProposal = mp
	return ev, nil
}

func (ev mergeProposalEvent) created() (createdAttributes, error) {
	var attrs createdAttributes

	obj, err := requireObject(ev.payload, "new", "new")
	if err != nil {
		return attrs, err
	}

	fields := []struct {
		key string
		dst *string
	}{
		{"registrant", &attrs.Registrant},
		{"source_git_repository", &attrs.SourceGitRepository},
		{"source_git_path", &attrs.SourceGitPath},
		{"target_git_repository", &attrs.TargetGitRepository},
		{"target_git_path", &attrs.TargetGitPath},
	}
	for _, f := range fields {
		v, err := requireString(obj, f.key, "new."+f.key)
		if err != nil {
			return attrs, err
		}
		*f.dst = v
	}

	return attrs, nil
}

// changes compares old and new attribute by attribute, in list order.
// Every listed attribute must be present on both sides; null is a value.
func (ev mergeProposalEvent) changes() ([]attributeChange, error) {
	oldObj, err := requireObject(ev.payload, "old", "old")
	if err != nil {
		return nil, err
	}
	newObj, err := requireObject(ev.payload, "new", "new")
	if err != nil {
		return nil, err
	}

	var out []attributeChange
	for _, name := range notification.MergeProposalAttributes {
		oldVal, ok := oldObj[name]
		if !ok {
			return nil, notification.MissingField("old." + name)
		}
		newVal, ok := newObj[name]
		if !ok {
			return nil, notification.MissingField("new." + name)
		}
		if !reflect.DeepEqual(oldVal, newVal) {
			out = append(out, attributeChange{Name: name, Old: oldVal, New: newVal})
		}
	}
	return out, nil
}

func requireString(obj map[string]any, key, field string) (string, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return "", notification.MissingField(field)
	}
	s, ok := raw.(string)
	if !ok {
		return "", notification.MalformedField(field)
	}
	return s, nil
}

func optionalString(obj map[string]any, key string) (string, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", notification.MalformedField(key)
	}
	return s, nil
}

func requireObject(obj map[string]any, key, field string) (map[string]any, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil, notification.MissingField(field)
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, notification.MalformedField(field)
	}
	return m, nil
}

// formatValue renders an attribute value for a diff line.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return nullValue
	case string:
		return t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
