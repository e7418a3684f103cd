package domain

type ReactionKind string

const (
	ReactionNone    ReactionKind = "none"
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// IsToggleable reports whether the kind can be requested by a user. None is
// a state, not an action.
func (k ReactionKind) IsToggleable() bool {
	return k == ReactionLike || k == ReactionDislike
}

type TargetKind string

const (
	TargetKindContent TargetKind = "content"
	TargetKindComment TargetKind = "comment"
)

// TargetType is the stored discriminator of a reaction target: one of the
// content types or "comment".
type TargetType string

const TargetTypeComment TargetType = "comment"

// ReactionTarget is a normalized reaction target.
type ReactionTarget struct {
	Type TargetType `json:"type" yaml:"type"`
	ID   string     `json:"id" yaml:"id"`
}

func ContentTarget(ref ContentRef) ReactionTarget {
	return ReactionTarget{Type: TargetType(ref.Type), ID: ref.ID}
}

func CommentTarget(commentID string) ReactionTarget {
	return ReactionTarget{Type: TargetTypeComment, ID: commentID}
}

func (t ReactionTarget) IsValid() bool {
	if t.ID == "" {
		return false
	}
	return t.Type == TargetTypeComment || ContentType(t.Type).IsValid()
}

// TargetRef is what callers send: a content item (by type and id) or a
// comment (by id).
type TargetRef struct {
	Kind        TargetKind  `json:"kind" yaml:"kind"`
	ContentType ContentType `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	ID          string      `json:"id" yaml:"id"`
}

type ReactionCounts struct {
	LikeCount    int64 `json:"like_count" yaml:"like_count"`
	DislikeCount int64 `json:"dislike_count" yaml:"dislike_count"`
}

type ReactionResult struct {
	ReactionCounts
	UserReaction ReactionKind `json:"user_reaction" yaml:"user_reaction"`
}
