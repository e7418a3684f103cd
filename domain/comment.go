package domain

import "time"

type CommentStatus string

const (
	CommentStatusActive  CommentStatus = "active"
	CommentStatusHidden  CommentStatus = "hidden"
	CommentStatusDeleted CommentStatus = "deleted"
)

type CommentKind string

const (
	CommentKindTopLevel CommentKind = "top_level"
	CommentKindReply    CommentKind = "reply"
)

type ModerationAction string

const (
	ModerationActionHide    ModerationAction = "hide"
	ModerationActionDelete  ModerationAction = "delete"
	ModerationActionRestore ModerationAction = "restore"
)

// commentTransitions lists, per moderation action, the statuses it may be
// applied to and the resulting status. Deleted is terminal.
var commentTransitions = map[ModerationAction]struct {
	From []CommentStatus
	To   CommentStatus
}{
	ModerationActionHide:    {From: []CommentStatus{CommentStatusActive}, To: CommentStatusHidden},
	ModerationActionDelete:  {From: []CommentStatus{CommentStatusActive, CommentStatusHidden}, To: CommentStatusDeleted},
	ModerationActionRestore: {From: []CommentStatus{CommentStatusHidden}, To: CommentStatusActive},
}

// Transition returns the statuses the action can be applied to and the status
// it results in. ok is false for unknown actions.
func (a ModerationAction) Transition() (from []CommentStatus, to CommentStatus, ok bool) {
	t, ok := commentTransitions[a]
	if !ok {
		return nil, "", false
	}
	return t.From, t.To, true
}

type CommentFlag struct {
	CommentID string    `json:"comment_id" yaml:"comment_id"`
	User      string    `json:"user" yaml:"user"`
	Reason    string    `json:"reason" yaml:"reason"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

type Moderation struct {
	Action    ModerationAction `json:"action" yaml:"action"`
	Moderator string           `json:"moderator" yaml:"moderator"`
	Reason    string           `json:"reason" yaml:"reason"`
	At        time.Time        `json:"at" yaml:"at"`
}

type Comment struct {
	ID          string        `json:"id" yaml:"id"`
	ContentType ContentType   `json:"content_type" yaml:"content_type"`
	ContentID   string        `json:"content_id" yaml:"content_id"`
	ParentID    string        `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	CreatedBy   string        `json:"created_by" yaml:"created_by"`
	Body        string        `json:"body" yaml:"body"`
	Status      CommentStatus `json:"status" yaml:"status"`

	// ReplyCount is the number of active replies, computed when listing
	// top-level comments. Always zero for replies.
	ReplyCount int           `json:"reply_count" yaml:"reply_count"`
	Flags      []CommentFlag `json:"flags,omitempty" yaml:"flags,omitempty"`
	FlagCount  int           `json:"flag_count,omitempty" yaml:"flag_count,omitempty"`
	Moderation *Moderation   `json:"moderation,omitempty" yaml:"moderation,omitempty"`

	// ViewerReaction is the requesting user's reaction to this comment, set
	// when listing for an authenticated user.
	ViewerReaction ReactionKind `json:"viewer_reaction,omitempty" yaml:"viewer_reaction,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

func (c *Comment) Kind() CommentKind {
	if c.ParentID == "" {
		return CommentKindTopLevel
	}
	return CommentKindReply
}

func (c *Comment) IsTopLevel() bool {
	return c.Kind() == CommentKindTopLevel
}

func (c *Comment) ContentRef() ContentRef {
	return ContentRef{Type: c.ContentType, ID: c.ContentID}
}

type ListCommentsFilter struct {
	ContentType ContentType
	ContentID   string
	// ParentID lists the replies of a top-level comment. When empty only
	// top-level comments are listed.
	ParentID string
	Statuses []CommentStatus
	OrderBy  []string
}

type ListFlaggedCommentsFilter struct {
	MinFlags int
	Statuses []CommentStatus
}

type ListCommentsOptions struct {
	// IncludeHidden also lists hidden comments. Reserved for moderators.
	IncludeHidden bool
}
