package domain

type EngagementSummary struct {
	Content              ContentRef   `json:"content" yaml:"content"`
	LikeCount            int64        `json:"like_count" yaml:"like_count"`
	DislikeCount         int64        `json:"dislike_count" yaml:"dislike_count"`
	UserReaction         ReactionKind `json:"user_reaction" yaml:"user_reaction"`
	ViewCount            int64        `json:"view_count" yaml:"view_count"`
	TopLevelCommentCount int64        `json:"top_level_comment_count" yaml:"top_level_comment_count"`
}
