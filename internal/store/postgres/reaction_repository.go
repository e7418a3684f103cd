package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/internal/store/postgres/model"
)

// toggleReactionQuery applies a toggle in one statement: a reaction of the
// same kind is removed, otherwise the user's row is inserted or switched to
// the requested kind. The (target_type, target_id, user_id) primary key
// guarantees at most one reaction per user and target.
const toggleReactionQuery = `
WITH cleared AS (
    DELETE FROM reactions
    WHERE target_type = @target_type
      AND target_id = @target_id
      AND user_id = @user_id
      AND kind = @kind
    RETURNING kind
), applied AS (
    INSERT INTO reactions (target_type, target_id, user_id, kind, created_at, updated_at)
    SELECT @target_type, @target_id, @user_id, @kind, now(), now()
    WHERE NOT EXISTS (SELECT 1 FROM cleared)
    ON CONFLICT (target_type, target_id, user_id)
    DO UPDATE SET kind = EXCLUDED.kind, updated_at = EXCLUDED.updated_at
    RETURNING kind
)
SELECT COALESCE((SELECT kind FROM applied), @none) AS user_reaction`

const reactionCountsQuery = `
SELECT
    COUNT(*) FILTER (WHERE kind = @like) AS like_count,
    COUNT(*) FILTER (WHERE kind = @dislike) AS dislike_count
FROM reactions
WHERE target_type = @target_type AND target_id = @target_id`

type ReactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db}
}

// Toggle applies the toggle and returns the user's reaction after it.
func (r *ReactionRepository) Toggle(ctx context.Context, target domain.ReactionTarget, userID string, kind domain.ReactionKind) (domain.ReactionKind, error) {
	var result struct {
		UserReaction string
	}
	if err := r.db.WithContext(ctx).Raw(toggleReactionQuery, map[string]interface{}{
		"target_type": string(target.Type),
		"target_id":   target.ID,
		"user_id":     userID,
		"kind":        string(kind),
		"none":        string(domain.ReactionNone),
	}).Scan(&result).Error; err != nil {
		return "", err
	}

	return domain.ReactionKind(result.UserReaction), nil
}

func (r *ReactionRepository) GetCounts(ctx context.Context, target domain.ReactionTarget) (*domain.ReactionCounts, error) {
	var result struct {
		LikeCount    int64
		DislikeCount int64
	}
	if err := r.db.WithContext(ctx).Raw(reactionCountsQuery, map[string]interface{}{
		"like":        string(domain.ReactionLike),
		"dislike":     string(domain.ReactionDislike),
		"target_type": string(target.Type),
		"target_id":   target.ID,
	}).Scan(&result).Error; err != nil {
		return nil, err
	}

	return &domain.ReactionCounts{
		LikeCount:    result.LikeCount,
		DislikeCount: result.DislikeCount,
	}, nil
}

func (r *ReactionRepository) GetUserReaction(ctx context.Context, target domain.ReactionTarget, userID string) (domain.ReactionKind, error) {
	var models []*model.Reaction
	if err := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ? AND user_id = ?", string(target.Type), target.ID, userID).
		Limit(1).
		Find(&models).
		Error; err != nil {
		return "", err
	}

	if len(models) == 0 {
		return domain.ReactionNone, nil
	}
	return domain.ReactionKind(models[0].Kind), nil
}

// GetUserReactions returns the user's reaction for each of the targets.
// Targets the user has not reacted to map to ReactionNone.
func (r *ReactionRepository) GetUserReactions(ctx context.Context, targets []domain.ReactionTarget, userID string) (map[domain.ReactionTarget]domain.ReactionKind, error) {
	result := make(map[domain.ReactionTarget]domain.ReactionKind, len(targets))
	if len(targets) == 0 {
		return result, nil
	}

	pairs := make([][]interface{}, 0, len(targets))
	for _, t := range targets {
		result[t] = domain.ReactionNone
		pairs = append(pairs, []interface{}{string(t.Type), t.ID})
	}

	var models []*model.Reaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("(target_type, target_id) IN ?", pairs).
		Find(&models).
		Error; err != nil {
		return nil, err
	}

	for _, m := range models {
		result[m.Target()] = domain.ReactionKind(m.Kind)
	}
	return result, nil
}
