package engagement_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Dafi-web/events-sub000/core/comment"
	"github.com/Dafi-web/events-sub000/domain"
)

type memoryContentRepository struct {
	items map[domain.ContentRef]bool
}

func (r *memoryContentRepository) Exists(_ context.Context, ref domain.ContentRef) (bool, error) {
	return r.items[ref], nil
}

type memoryCommentRepository struct {
	mu       sync.Mutex
	comments map[string]*domain.Comment
	flags    map[string][]domain.CommentFlag
	clock    time.Time
}

func newMemoryCommentRepository() *memoryCommentRepository {
	return &memoryCommentRepository{
		comments: map[string]*domain.Comment{},
		flags:    map[string][]domain.CommentFlag{},
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *memoryCommentRepository) Create(_ context.Context, c *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ParentID != "" {
		p, ok := r.comments[c.ParentID]
		if !ok || p.ParentID != "" || p.Status != domain.CommentStatusActive || p.ContentRef() != c.ContentRef() {
			return comment.ErrParentUnavailable
		}
	}

	r.clock = r.clock.Add(time.Second)
	c.ID = uuid.NewString()
	c.CreatedAt = r.clock
	c.UpdatedAt = r.clock
	stored := *c
	r.comments[c.ID] = &stored
	return nil
}

func (r *memoryCommentRepository) GetByID(_ context.Context, id string) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *memoryCommentRepository) List(_ context.Context, filter domain.ListCommentsFilter) ([]*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*domain.Comment{}
	for _, c := range r.comments {
		if c.ParentID != filter.ParentID {
			continue
		}
		if filter.ContentType != "" && c.ContentType != filter.ContentType {
			continue
		}
		if filter.ContentID != "" && c.ContentID != filter.ContentID {
			continue
		}
		if filter.Statuses != nil && !hasStatus(filter.Statuses, c.Status) {
			continue
		}
		copied := *c
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *memoryCommentRepository) CountReplies(_ context.Context, parentIDs []string) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := map[string]int{}
	for _, id := range parentIDs {
		for _, c := range r.comments {
			if c.ParentID == id && c.Status == domain.CommentStatusActive {
				counts[id]++
			}
		}
	}
	return counts, nil
}

func (r *memoryCommentRepository) CountTopLevel(_ context.Context, ref domain.ContentRef) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, c := range r.comments {
		if c.ParentID == "" && c.ContentRef() == ref && c.Status == domain.CommentStatusActive {
			count++
		}
	}
	return count, nil
}

func (r *memoryCommentRepository) AddFlag(_ context.Context, f *domain.CommentFlag) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.flags[f.CommentID] {
		if existing.User == f.User {
			return false, nil
		}
	}
	r.flags[f.CommentID] = append(r.flags[f.CommentID], *f)
	return true, nil
}

func (r *memoryCommentRepository) UpdateStatus(_ context.Context, id string, from []domain.CommentStatus, to domain.CommentStatus, moderation *domain.Moderation) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.comments[id]
	if !ok || !hasStatus(from, c.Status) {
		return false, nil
	}
	c.Status = to
	c.Moderation = moderation
	return true, nil
}

func (r *memoryCommentRepository) ListFlagged(_ context.Context, filter domain.ListFlaggedCommentsFilter) ([]*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*domain.Comment{}
	for id, flags := range r.flags {
		c := r.comments[id]
		if len(flags) < filter.MinFlags || !hasStatus(filter.Statuses, c.Status) {
			continue
		}
		copied := *c
		copied.Flags = append([]domain.CommentFlag{}, flags...)
		copied.FlagCount = len(flags)
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FlagCount > result[j].FlagCount })
	return result, nil
}

func hasStatus(statuses []domain.CommentStatus, status domain.CommentStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

type memoryReactionRepository struct {
	mu        sync.Mutex
	reactions map[domain.ReactionTarget]map[string]domain.ReactionKind
}

func newMemoryReactionRepository() *memoryReactionRepository {
	return &memoryReactionRepository{reactions: map[domain.ReactionTarget]map[string]domain.ReactionKind{}}
}

func (r *memoryReactionRepository) Toggle(_ context.Context, target domain.ReactionTarget, userID string, kind domain.ReactionKind) (domain.ReactionKind, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, ok := r.reactions[target]
	if !ok {
		users = map[string]domain.ReactionKind{}
		r.reactions[target] = users
	}
	if users[userID] == kind {
		delete(users, userID)
		return domain.ReactionNone, nil
	}
	users[userID] = kind
	return kind, nil
}

func (r *memoryReactionRepository) GetCounts(_ context.Context, target domain.ReactionTarget) (*domain.ReactionCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := &domain.ReactionCounts{}
	for _, kind := range r.reactions[target] {
		switch kind {
		case domain.ReactionLike:
			counts.LikeCount++
		case domain.ReactionDislike:
			counts.DislikeCount++
		}
	}
	return counts, nil
}

func (r *memoryReactionRepository) GetUserReaction(_ context.Context, target domain.ReactionTarget, userID string) (domain.ReactionKind, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if kind, ok := r.reactions[target][userID]; ok {
		return kind, nil
	}
	return domain.ReactionNone, nil
}

func (r *memoryReactionRepository) GetUserReactions(ctx context.Context, targets []domain.ReactionTarget, userID string) (map[domain.ReactionTarget]domain.ReactionKind, error) {
	result := map[domain.ReactionTarget]domain.ReactionKind{}
	for _, t := range targets {
		kind, _ := r.GetUserReaction(ctx, t, userID)
		result[t] = kind
	}
	return result, nil
}

type memoryViewRepository struct {
	mu      sync.Mutex
	markers map[string]time.Time
	views   map[domain.ContentRef]int64
}

func newMemoryViewRepository() *memoryViewRepository {
	return &memoryViewRepository{markers: map[string]time.Time{}, views: map[domain.ContentRef]int64{}}
}

func (r *memoryViewRepository) RecordView(_ context.Context, marker domain.ViewMarker) (*domain.ViewResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := marker.SessionHash + "|" + marker.Content.String()
	if expiresAt, ok := r.markers[key]; ok && expiresAt.After(marker.SeenAt) {
		return &domain.ViewResult{Counted: false, TotalViews: r.views[marker.Content]}, nil
	}
	r.markers[key] = marker.ExpiresAt
	r.views[marker.Content]++
	return &domain.ViewResult{Counted: true, TotalViews: r.views[marker.Content]}, nil
}

func (r *memoryViewRepository) GetViewCount(_ context.Context, ref domain.ContentRef) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views[ref], nil
}

func (r *memoryViewRepository) PurgeExpiredMarkers(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var purged int64
	for key, expiresAt := range r.markers {
		if !expiresAt.After(before) {
			delete(r.markers, key)
			purged++
		}
	}
	return purged, nil
}

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, []domain.Notification) []error { return nil }

type discardAuditLogger struct{}

func (discardAuditLogger) Log(context.Context, string, interface{}) error { return nil }
