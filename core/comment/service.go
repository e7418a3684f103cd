package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Dafi-web/events-sub000/core/content"
	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/log"
	"github.com/Dafi-web/events-sub000/pkg/slices"
	"github.com/Dafi-web/events-sub000/plugins/notifiers"
)

const (
	AuditKeyCreate   = "comment.create"
	AuditKeyModerate = "comment.moderate"
	AuditKeyFlag     = "comment.flag"

	defaultCommentOrder = "created_at:asc"
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Create(context.Context, *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	List(context.Context, domain.ListCommentsFilter) ([]*domain.Comment, error)
	CountReplies(ctx context.Context, parentIDs []string) (map[string]int, error)
	CountTopLevel(ctx context.Context, ref domain.ContentRef) (int64, error)
	AddFlag(context.Context, *domain.CommentFlag) (bool, error)
	UpdateStatus(ctx context.Context, id string, from []domain.CommentStatus, to domain.CommentStatus, moderation *domain.Moderation) (bool, error)
	ListFlagged(context.Context, domain.ListFlaggedCommentsFilter) ([]*domain.Comment, error)
}

//go:generate mockery --name=notifier --exported --with-expecter
type notifier interface {
	notifiers.Client
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

// Config holds the length bounds, in runes, applied after trimming.
type Config struct {
	MaxTopLevelLength   int `mapstructure:"max_top_level_length" default:"2000"`
	MaxReplyLength      int `mapstructure:"max_reply_length" default:"500"`
	MaxFlagReasonLength int `mapstructure:"max_flag_reason_length" default:"500"`
}

type Service struct {
	repo   repository
	config Config

	notifier    notifier
	logger      log.Logger
	auditLogger auditLogger
	now         func() time.Time
}

type ServiceDeps struct {
	Repository repository
	Config     Config

	Notifier    notifier
	Logger      log.Logger
	AuditLogger auditLogger
}

func NewService(deps ServiceDeps) *Service {
	cfg := deps.Config
	if cfg.MaxTopLevelLength <= 0 {
		cfg.MaxTopLevelLength = 2000
	}
	if cfg.MaxReplyLength <= 0 {
		cfg.MaxReplyLength = 500
	}
	if cfg.MaxFlagReasonLength <= 0 {
		cfg.MaxFlagReasonLength = 500
	}

	return &Service{
		repo:        deps.Repository,
		config:      cfg,
		notifier:    deps.Notifier,
		logger:      deps.Logger,
		auditLogger: deps.AuditLogger,
		now:         time.Now,
	}
}

// Create validates and stores a new comment. A comment with ParentID is a
// reply and must target an active top-level comment of the same content
// item.
func (s *Service) Create(ctx context.Context, c *domain.Comment) error {
	if err := content.ValidateRef(c.ContentRef()); err != nil {
		return err
	}
	if c.CreatedBy == "" {
		return ErrEmptyCommentCreator
	}

	c.Body = strings.TrimSpace(c.Body)
	if c.Body == "" {
		return ErrEmptyCommentBody
	}
	maxLength := s.config.MaxTopLevelLength
	if !c.IsTopLevel() {
		maxLength = s.config.MaxReplyLength
	}
	if utf8.RuneCountInString(c.Body) > maxLength {
		return fmt.Errorf("%w: maximum is %d characters", ErrCommentBodyTooLong, maxLength)
	}

	var parent *domain.Comment
	if !c.IsTopLevel() {
		p, err := s.repo.GetByID(ctx, c.ParentID)
		if err != nil {
			if errors.Is(err, ErrCommentNotFound) {
				return ErrParentNotFound
			}
			return fmt.Errorf("getting parent comment: %w", err)
		}
		if err := validateParent(p, c); err != nil {
			return err
		}
		parent = p
	}

	c.Status = domain.CommentStatusActive
	c.ReplyCount = 0
	c.Flags = nil
	c.Moderation = nil
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return err
		}
		return fmt.Errorf("creating comment: %w", err)
	}

	created := *c
	go func() {
		ctx := context.WithoutCancel(ctx)
		if parent != nil && parent.CreatedBy != created.CreatedBy {
			s.notify(ctx, domain.Notification{
				User: parent.CreatedBy,
				Message: domain.NotificationMessage{
					Type: domain.NotificationTypeCommentReply,
					Variables: map[string]interface{}{
						"content_type":     string(created.ContentType),
						"content_id":       created.ContentID,
						"parent_id":        parent.ID,
						"comment_id":       created.ID,
						"reply_created_by": created.CreatedBy,
						"body":             created.Body,
					},
				},
			})
		}

		if err := s.auditLogger.Log(ctx, AuditKeyCreate, map[string]interface{}{
			"comment_id":   created.ID,
			"content_type": string(created.ContentType),
			"content_id":   created.ContentID,
			"parent_id":    created.ParentID,
		}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "comment_id", created.ID)
		}
	}()

	return nil
}

func validateParent(parent, reply *domain.Comment) error {
	if !parent.IsTopLevel() {
		return ErrReplyToReply
	}
	if parent.Status != domain.CommentStatusActive {
		return ErrParentNotActive
	}
	if parent.ContentRef() != reply.ContentRef() {
		return ErrParentContentMismatch
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	if id == "" {
		return nil, ErrCommentNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListTopLevel returns the top-level comments of a content item oldest
// first, each with the number of its active replies.
func (s *Service) ListTopLevel(ctx context.Context, ref domain.ContentRef, opts domain.ListCommentsOptions) ([]*domain.Comment, error) {
	if err := content.ValidateRef(ref); err != nil {
		return nil, err
	}

	comments, err := s.repo.List(ctx, domain.ListCommentsFilter{
		ContentType: ref.Type,
		ContentID:   ref.ID,
		Statuses:    visibleStatuses(opts),
		OrderBy:     []string{defaultCommentOrder},
	})
	if err != nil {
		return nil, fmt.Errorf("listing comments of %q: %w", ref, err)
	}
	if len(comments) == 0 {
		return comments, nil
	}

	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	replyCounts, err := s.repo.CountReplies(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("counting replies: %w", err)
	}
	for _, c := range comments {
		c.ReplyCount = replyCounts[c.ID]
	}

	return comments, nil
}

// ListReplies returns the replies of a top-level comment oldest first.
func (s *Service) ListReplies(ctx context.Context, parentID string, opts domain.ListCommentsOptions) ([]*domain.Comment, error) {
	parent, err := s.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if !isVisible(parent, opts) {
		return nil, ErrCommentNotFound
	}
	if !parent.IsTopLevel() {
		return nil, ErrNotTopLevel
	}

	replies, err := s.repo.List(ctx, domain.ListCommentsFilter{
		ParentID: parent.ID,
		Statuses: visibleStatuses(opts),
		OrderBy:  []string{defaultCommentOrder},
	})
	if err != nil {
		return nil, fmt.Errorf("listing replies of %q: %w", parent.ID, err)
	}
	return replies, nil
}

// CountTopLevel returns the number of active top-level comments.
func (s *Service) CountTopLevel(ctx context.Context, ref domain.ContentRef) (int64, error) {
	if err := content.ValidateRef(ref); err != nil {
		return 0, err
	}

	count, err := s.repo.CountTopLevel(ctx, ref)
	if err != nil {
		return 0, fmt.Errorf("counting comments of %q: %w", ref, err)
	}
	return count, nil
}

// Flag reports a comment for moderation. Flagging the same comment twice is
// a no-op.
func (s *Service) Flag(ctx context.Context, commentID string, actor *domain.Actor, reason string) error {
	if !actor.IsAuthenticated() {
		return ErrEmptyActor
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyFlagReason
	}
	if utf8.RuneCountInString(reason) > s.config.MaxFlagReasonLength {
		return fmt.Errorf("%w: maximum is %d characters", ErrFlagReasonTooLong, s.config.MaxFlagReasonLength)
	}

	c, err := s.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	switch c.Status {
	case domain.CommentStatusDeleted:
		return ErrCommentDeleted
	case domain.CommentStatusHidden:
		return ErrCommentNotFound
	}

	flag := &domain.CommentFlag{
		CommentID: c.ID,
		User:      actor.ID,
		Reason:    reason,
		CreatedAt: s.now(),
	}
	added, err := s.repo.AddFlag(ctx, flag)
	if err != nil {
		return fmt.Errorf("flagging comment %q: %w", c.ID, err)
	}
	if !added {
		s.logger.Debug(ctx, "comment already flagged by user", "comment_id", c.ID, "user", actor.ID)
		return nil
	}

	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := s.auditLogger.Log(ctx, AuditKeyFlag, flag); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "comment_id", flag.CommentID)
		}
	}()

	return nil
}

// Moderate applies a moderation action. The status change happens only if
// the comment is still in a state the action applies to.
func (s *Service) Moderate(ctx context.Context, commentID string, actor *domain.Actor, action domain.ModerationAction, reason string) (*domain.Comment, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrEmptyActor
	}
	if !actor.CanModerate() {
		return nil, ErrModerationNotAllowed
	}

	from, to, ok := action.Transition()
	if !ok {
		return nil, ErrInvalidModerationAction
	}
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) > s.config.MaxFlagReasonLength {
		return nil, fmt.Errorf("%w: maximum is %d characters", ErrFlagReasonTooLong, s.config.MaxFlagReasonLength)
	}

	moderation := &domain.Moderation{
		Action:    action,
		Moderator: actor.ID,
		Reason:    reason,
		At:        s.now().UTC(),
	}
	changed, err := s.repo.UpdateStatus(ctx, commentID, from, to, moderation)
	if err != nil {
		return nil, fmt.Errorf("updating comment status: %w", err)
	}

	c, err := s.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !changed {
		if c.Status == domain.CommentStatusDeleted {
			return nil, ErrCommentDeleted
		}
		return nil, fmt.Errorf("%w: can't %s a comment that is %s", ErrInvalidTransition, action, c.Status)
	}

	moderated := *c
	go func() {
		ctx := context.WithoutCancel(ctx)
		if moderated.CreatedBy != actor.ID {
			s.notify(ctx, domain.Notification{
				User: moderated.CreatedBy,
				Message: domain.NotificationMessage{
					Type: domain.NotificationTypeCommentModerated,
					Variables: map[string]interface{}{
						"content_type": string(moderated.ContentType),
						"content_id":   moderated.ContentID,
						"comment_id":   moderated.ID,
						"action":       string(action),
						"status":       string(moderated.Status),
						"reason":       reason,
					},
				},
			})
		}

		if err := s.auditLogger.Log(ctx, AuditKeyModerate, map[string]interface{}{
			"comment_id": moderated.ID,
			"moderation": moderation,
			"status":     moderated.Status,
		}); err != nil {
			s.logger.Error(ctx, "failed to record audit log", "error", err, "comment_id", moderated.ID)
		}
	}()

	return c, nil
}

// ListFlagged returns the moderation queue: flagged comments with at least
// MinFlags flags, most flagged first.
func (s *Service) ListFlagged(ctx context.Context, actor *domain.Actor, filter domain.ListFlaggedCommentsFilter) ([]*domain.Comment, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrEmptyActor
	}
	if !actor.CanModerate() {
		return nil, ErrModerationNotAllowed
	}

	if filter.MinFlags < 1 {
		filter.MinFlags = 1
	}
	filter.Statuses = slices.GenericsStandardizeSlice(filter.Statuses)
	if len(filter.Statuses) == 0 {
		filter.Statuses = []domain.CommentStatus{domain.CommentStatusActive, domain.CommentStatusHidden}
	}

	comments, err := s.repo.ListFlagged(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing flagged comments: %w", err)
	}
	return comments, nil
}

func (s *Service) notify(ctx context.Context, notifications ...domain.Notification) {
	if s.notifier == nil || len(notifications) == 0 {
		return
	}
	if errs := s.notifier.Notify(ctx, notifications); errs != nil {
		for _, err := range errs {
			s.logger.Error(ctx, "failed to send notifications", "error", err.Error())
		}
	}
}

func visibleStatuses(opts domain.ListCommentsOptions) []domain.CommentStatus {
	if opts.IncludeHidden {
		return []domain.CommentStatus{domain.CommentStatusActive, domain.CommentStatusHidden}
	}
	return []domain.CommentStatus{domain.CommentStatusActive}
}

func isVisible(c *domain.Comment, opts domain.ListCommentsOptions) bool {
	for _, status := range visibleStatuses(opts) {
		if c.Status == status {
			return true
		}
	}
	return false
}
