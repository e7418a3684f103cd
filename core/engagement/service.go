package engagement

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Dafi-web/events-sub000/core/content"
	"github.com/Dafi-web/events-sub000/core/view"
	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

//go:generate mockery --name=contentService --exported --with-expecter
type contentService interface {
	CheckExists(ctx context.Context, ref domain.ContentRef) error
}

//go:generate mockery --name=commentService --exported --with-expecter
type commentService interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListTopLevel(ctx context.Context, ref domain.ContentRef, opts domain.ListCommentsOptions) ([]*domain.Comment, error)
	ListReplies(ctx context.Context, parentID string, opts domain.ListCommentsOptions) ([]*domain.Comment, error)
	CountTopLevel(ctx context.Context, ref domain.ContentRef) (int64, error)
	Flag(ctx context.Context, commentID string, actor *domain.Actor, reason string) error
	Moderate(ctx context.Context, commentID string, actor *domain.Actor, action domain.ModerationAction, reason string) (*domain.Comment, error)
	ListFlagged(ctx context.Context, actor *domain.Actor, filter domain.ListFlaggedCommentsFilter) ([]*domain.Comment, error)
}

//go:generate mockery --name=reactionService --exported --with-expecter
type reactionService interface {
	Toggle(ctx context.Context, target domain.ReactionTarget, actor *domain.Actor, kind domain.ReactionKind) (*domain.ReactionResult, error)
	GetCounts(ctx context.Context, target domain.ReactionTarget) (*domain.ReactionCounts, error)
	GetUserReaction(ctx context.Context, target domain.ReactionTarget, userID string) (domain.ReactionKind, error)
	GetUserReactions(ctx context.Context, targets []domain.ReactionTarget, userID string) (map[domain.ReactionTarget]domain.ReactionKind, error)
}

//go:generate mockery --name=viewService --exported --with-expecter
type viewService interface {
	RecordView(ctx context.Context, ref domain.ContentRef, sessionToken string) (*domain.ViewResult, error)
	GetViewCount(ctx context.Context, ref domain.ContentRef) (int64, error)
}

//go:generate mockery --name=eventService --exported --with-expecter
type eventService interface {
	List(ctx context.Context, filter *domain.ListEventsFilter) ([]*domain.Event, error)
}

// Service is the entry point of the engagement features. It normalizes
// targets, checks that content exists and applies the common authorization
// rules before delegating to the owning service.
type Service struct {
	contentService  contentService
	commentService  commentService
	reactionService reactionService
	viewService     viewService
	eventService    eventService
	logger          log.Logger
}

type ServiceDeps struct {
	ContentService  contentService
	CommentService  commentService
	ReactionService reactionService
	ViewService     viewService
	EventService    eventService
	Logger          log.Logger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		contentService:  deps.ContentService,
		commentService:  deps.CommentService,
		reactionService: deps.ReactionService,
		viewService:     deps.ViewService,
		eventService:    deps.EventService,
		logger:          deps.Logger,
	}
}

// GetEngagementSummary aggregates reactions, views and the comment count of
// a content item. actor may be nil.
func (s *Service) GetEngagementSummary(ctx context.Context, ref domain.ContentRef, actor *domain.Actor) (*domain.EngagementSummary, error) {
	if err := s.contentService.CheckExists(ctx, ref); err != nil {
		return nil, err
	}

	target := domain.ContentTarget(ref)
	summary := &domain.EngagementSummary{
		Content:      ref,
		UserReaction: domain.ReactionNone,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := s.reactionService.GetCounts(gctx, target)
		if err != nil {
			return err
		}
		summary.LikeCount = counts.LikeCount
		summary.DislikeCount = counts.DislikeCount
		return nil
	})
	if actor.IsAuthenticated() {
		g.Go(func() error {
			kind, err := s.reactionService.GetUserReaction(gctx, target, actor.ID)
			if err != nil {
				return err
			}
			summary.UserReaction = kind
			return nil
		})
	}
	g.Go(func() error {
		views, err := s.viewService.GetViewCount(gctx, ref)
		if err != nil {
			return err
		}
		summary.ViewCount = views
		return nil
	})
	g.Go(func() error {
		count, err := s.commentService.CountTopLevel(gctx, ref)
		if err != nil {
			return err
		}
		summary.TopLevelCommentCount = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("getting engagement summary of %q: %w", ref, err)
	}
	return summary, nil
}

// ToggleReaction toggles the actor's reaction on a content item or a
// comment.
func (s *Service) ToggleReaction(ctx context.Context, ref domain.TargetRef, actor *domain.Actor, kind domain.ReactionKind) (*domain.ReactionResult, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}

	target, err := NormalizeTarget(ref)
	if err != nil {
		return nil, err
	}

	return s.reactionService.Toggle(ctx, target, actor, kind)
}

// NormalizeTarget turns a caller supplied target into a reaction target.
func NormalizeTarget(ref domain.TargetRef) (domain.ReactionTarget, error) {
	switch ref.Kind {
	case domain.TargetKindContent:
		contentRef := domain.ContentRef{Type: ref.ContentType, ID: ref.ID}
		if err := content.ValidateRef(contentRef); err != nil {
			return domain.ReactionTarget{}, err
		}
		return domain.ContentTarget(contentRef), nil
	case domain.TargetKindComment:
		if ref.ID == "" {
			return domain.ReactionTarget{}, fmt.Errorf("%w: comment id can't be empty", domain.ErrValidation)
		}
		return domain.CommentTarget(ref.ID), nil
	}
	return domain.ReactionTarget{}, ErrInvalidTargetKind
}

// CreateComment posts a top-level comment, or a reply when parentID is set.
func (s *Service) CreateComment(ctx context.Context, ref domain.ContentRef, actor *domain.Actor, body, parentID string) (*domain.Comment, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	if err := s.contentService.CheckExists(ctx, ref); err != nil {
		return nil, err
	}

	c := &domain.Comment{
		ContentType: ref.Type,
		ContentID:   ref.ID,
		ParentID:    parentID,
		CreatedBy:   actor.ID,
		Body:        body,
	}
	if err := s.commentService.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListTopLevelComments lists the comments of a content item. Hidden comments
// are only included for moderators.
func (s *Service) ListTopLevelComments(ctx context.Context, ref domain.ContentRef, actor *domain.Actor, includeHidden bool) ([]*domain.Comment, error) {
	if includeHidden && !actor.CanModerate() {
		return nil, ErrModeratorRequired
	}
	if err := s.contentService.CheckExists(ctx, ref); err != nil {
		return nil, err
	}

	comments, err := s.commentService.ListTopLevel(ctx, ref, domain.ListCommentsOptions{IncludeHidden: includeHidden})
	if err != nil {
		return nil, err
	}
	if err := s.attachViewerReactions(ctx, comments, actor); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Service) ListReplies(ctx context.Context, parentID string, actor *domain.Actor, includeHidden bool) ([]*domain.Comment, error) {
	if includeHidden && !actor.CanModerate() {
		return nil, ErrModeratorRequired
	}

	replies, err := s.commentService.ListReplies(ctx, parentID, domain.ListCommentsOptions{IncludeHidden: includeHidden})
	if err != nil {
		return nil, err
	}
	if err := s.attachViewerReactions(ctx, replies, actor); err != nil {
		return nil, err
	}
	return replies, nil
}

func (s *Service) attachViewerReactions(ctx context.Context, comments []*domain.Comment, actor *domain.Actor) error {
	if !actor.IsAuthenticated() || len(comments) == 0 {
		return nil
	}

	targets := make([]domain.ReactionTarget, 0, len(comments))
	for _, c := range comments {
		targets = append(targets, domain.CommentTarget(c.ID))
	}
	reactions, err := s.reactionService.GetUserReactions(ctx, targets, actor.ID)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if kind, ok := reactions[domain.CommentTarget(c.ID)]; ok {
			c.ViewerReaction = kind
		} else {
			c.ViewerReaction = domain.ReactionNone
		}
	}
	return nil
}

func (s *Service) FlagComment(ctx context.Context, commentID string, actor *domain.Actor, reason string) error {
	if !actor.IsAuthenticated() {
		return ErrAuthenticationRequired
	}
	return s.commentService.Flag(ctx, commentID, actor, reason)
}

func (s *Service) ModerateComment(ctx context.Context, commentID string, actor *domain.Actor, action domain.ModerationAction, reason string) (*domain.Comment, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	if !actor.CanModerate() {
		return nil, ErrModeratorRequired
	}

	c, err := s.commentService.Moderate(ctx, commentID, actor, action, reason)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "comment moderated", "comment_id", c.ID, "action", action, "moderator", actor.ID, "status", c.Status)
	return c, nil
}

func (s *Service) ListFlaggedComments(ctx context.Context, actor *domain.Actor, filter domain.ListFlaggedCommentsFilter) ([]*domain.Comment, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	if !actor.CanModerate() {
		return nil, ErrModeratorRequired
	}
	return s.commentService.ListFlagged(ctx, actor, filter)
}

// ListCommentEvents returns the audit trail of a comment: creation, flags
// and moderation, newest first.
func (s *Service) ListCommentEvents(ctx context.Context, commentID string, actor *domain.Actor) ([]*domain.Event, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	if !actor.CanModerate() {
		return nil, ErrModeratorRequired
	}
	if _, err := s.commentService.GetByID(ctx, commentID); err != nil {
		return nil, err
	}

	return s.eventService.List(ctx, &domain.ListEventsFilter{
		ParentType: domain.EventParentTypeComment,
		ParentID:   commentID,
	})
}

// RecordView counts a view of an existing content item for the session.
func (s *Service) RecordView(ctx context.Context, ref domain.ContentRef, sessionToken string) (*domain.ViewResult, error) {
	if sessionToken == "" {
		return nil, view.ErrEmptySessionToken
	}
	if err := s.contentService.CheckExists(ctx, ref); err != nil {
		return nil, err
	}
	return s.viewService.RecordView(ctx, ref, sessionToken)
}
