package engagement

import (
	"context"

	"github.com/Dafi-web/events-sub000/core/comment"
	"github.com/Dafi-web/events-sub000/domain"
)

// TargetResolver checks that a reaction target can receive reactions: the
// content item exists, or the comment exists and is active.
type TargetResolver struct {
	contentService contentService
	commentService commentService
}

func NewTargetResolver(contentService contentService, commentService commentService) *TargetResolver {
	return &TargetResolver{
		contentService: contentService,
		commentService: commentService,
	}
}

func (r *TargetResolver) ValidateTarget(ctx context.Context, target domain.ReactionTarget) error {
	if target.Type != domain.TargetTypeComment {
		return r.contentService.CheckExists(ctx, domain.ContentRef{Type: domain.ContentType(target.Type), ID: target.ID})
	}

	c, err := r.commentService.GetByID(ctx, target.ID)
	if err != nil {
		return err
	}
	switch c.Status {
	case domain.CommentStatusDeleted:
		return comment.ErrCommentDeleted
	case domain.CommentStatusHidden:
		return comment.ErrCommentNotFound
	}
	return nil
}
