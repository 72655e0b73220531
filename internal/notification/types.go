package notification

// Kind is the semantic category of an inbound Launchpad event.
type Kind string

const (
	KindGitPush       Kind = "git_push"
	KindMergeProposal Kind = "merge_proposal"
	KindBug           Kind = "bug"
	KindBugComment    Kind = "bug_comment"
	KindUnknown       Kind = "unknown"
)

// EventTypeHeader carries the Launchpad event type identifier.
const EventTypeHeader = "X-Launchpad-Event-Type"

// DefaultEventTypes maps Launchpad event type identifiers to kinds.
// Bug kinds are classified but have no renderer yet.
var DefaultEventTypes = map[string]Kind{
	"git:push:0.1":       KindGitPush,
	"merge-proposal:0.1": KindMergeProposal,
	"bug:0.1":            KindBug,
	"bug:comment:0.1":    KindBugComment,
}

// Merge proposal actions.
const (
	ActionCreated  = "created"
	ActionModified = "modified"
	ActionDeleted  = "deleted"
)

// MergeProposalAttributes is the ordered list of attributes compared for
// "modified" events. Attributes outside this list are never reported.
var MergeProposalAttributes = []string{
	"registrant",
	"source_branch",
	"source_git_repository",
	"source_git_path",
	"target_branch",
	"target_git_repository",
	"target_git_path",
	"prerequisite_branch",
	"prerequisite_git_repository",
	"prerequisite_git_path",
	"queue_status",
	"commit_message",
	"whiteboard",
	"description",
	"preview_diff",
}

// Replies returned to the webhook sender.
const (
	ReplyPosted       = "Notification successfully posted to Mattermost"
	ReplyInvalidEvent = "Invalid event"
	ReplyInvalidJSON  = "Content-Type must be application/json and the request body must contain valid JSON"
)

// DefaultRoute is the route label every notification is currently sent to.
const DefaultRoute = "default"

// Message is a rendered notification. An empty Text means nothing to send.
type Message struct {
	Text string
}

// Empty reports whether there is nothing to deliver.
func (m Message) Empty() bool {
	return m.Text == ""
}

// Target is a Mattermost incoming webhook and the channel to post in.
type Target struct {
	URL     string
	Channel string
}

// ProcessInput is one inbound webhook delivery.
type ProcessInput struct {
	EventType string
	Payload   map[string]any
}

// ProcessOutput describes what Process did with a delivery.
type ProcessOutput struct {
	Kind    Kind
	Message Message
	// Dispatched is true when a delivery to Mattermost was started.
	Dispatched bool
	// Reply is the plain text body for the webhook sender.
	Reply string
}
