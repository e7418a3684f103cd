package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Dafi-web/events-sub000/core/comment"
	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/internal/store/postgres/model"
)

// insertReplyQuery inserts a reply only while its parent is an active
// top-level comment of the same content item, so the nesting rule holds
// even if the parent is moderated concurrently.
const insertReplyQuery = `
INSERT INTO comments (content_type, content_id, parent_id, created_by, body, status, created_at, updated_at)
SELECT p.content_type, p.content_id, p.id, @created_by, @body, @status, @now, @now
FROM comments p
WHERE p.id = @parent_id
  AND p.parent_id IS NULL
  AND p.status = @active
  AND p.content_type = @content_type
  AND p.content_id = @content_id
RETURNING *`

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	m := &model.Comment{}
	if err := m.FromDomain(c); err != nil {
		return err
	}

	if m.ParentID != nil {
		return r.createReply(ctx, m, c)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Flags", "Moderation").Create(m).Error; err != nil {
			return err
		}

		newComment, err := m.ToDomain()
		if err != nil {
			return err
		}
		*c = *newComment

		return nil
	})
}

func (r *CommentRepository) createReply(ctx context.Context, m *model.Comment, c *domain.Comment) error {
	created := &model.Comment{}
	res := r.db.WithContext(ctx).Raw(insertReplyQuery, map[string]interface{}{
		"created_by":   m.CreatedBy,
		"body":         m.Body,
		"status":       m.Status,
		"now":          time.Now(),
		"parent_id":    *m.ParentID,
		"active":       string(domain.CommentStatusActive),
		"content_type": m.ContentType,
		"content_id":   m.ContentID,
	}).Scan(created)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return comment.ErrParentUnavailable
	}

	newComment, err := created.ToDomain()
	if err != nil {
		return err
	}
	*c = *newComment

	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return nil, comment.ErrCommentNotFound
	}

	m := new(model.Comment)
	if err := r.db.WithContext(ctx).First(m, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, err
	}

	return m.ToDomain()
}

func (r *CommentRepository) List(ctx context.Context, filter domain.ListCommentsFilter) ([]*domain.Comment, error) {
	db := r.db.WithContext(ctx)
	if filter.ParentID != "" {
		parentID, err := uuid.Parse(filter.ParentID)
		if err != nil {
			return []*domain.Comment{}, nil
		}
		db = db.Where("parent_id = ?", parentID)
	} else {
		db = db.Where("parent_id IS NULL")
	}
	if filter.ContentType != "" {
		db = db.Where("content_type = ?", string(filter.ContentType))
	}
	if filter.ContentID != "" {
		db = db.Where("content_id = ?", filter.ContentID)
	}
	if filter.Statuses != nil {
		db = db.Where("status IN ?", statusesToStrings(filter.Statuses))
	}
	for _, o := range filter.OrderBy {
		db = addOrderBy(db, o)
	}

	var models []*model.Comment
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	comments := []*domain.Comment{}
	for _, m := range models {
		c, err := m.ToDomain()
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// CountReplies returns the number of active replies per parent comment id.
// Parents without replies are absent from the result.
func (r *CommentRepository) CountReplies(ctx context.Context, parentIDs []string) (map[string]int, error) {
	result := map[string]int{}

	ids := make([]uuid.UUID, 0, len(parentIDs))
	for _, id := range parentIDs {
		if parsed, err := uuid.Parse(id); err == nil {
			ids = append(ids, parsed)
		}
	}
	if len(ids) == 0 {
		return result, nil
	}

	var rows []struct {
		ParentID uuid.UUID
		Count    int
	}
	if err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Select("parent_id, COUNT(1) AS count").
		Where("parent_id IN ?", ids).
		Where("status = ?", string(domain.CommentStatusActive)).
		Group("parent_id").
		Scan(&rows).
		Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ParentID.String()] = row.Count
	}
	return result, nil
}

func (r *CommentRepository) CountTopLevel(ctx context.Context, ref domain.ContentRef) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("content_type = ? AND content_id = ?", string(ref.Type), ref.ID).
		Where("parent_id IS NULL").
		Where("status = ?", string(domain.CommentStatusActive)).
		Count(&count).
		Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AddFlag stores the flag and reports whether it was new. A repeated flag by
// the same user is left untouched.
func (r *CommentRepository) AddFlag(ctx context.Context, f *domain.CommentFlag) (bool, error) {
	m := &model.CommentFlag{}
	if err := m.FromDomain(f); err != nil {
		return false, err
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	*f = *m.ToDomain()
	return true, nil
}

// UpdateStatus moves the comment to status "to" only if its current status
// is one of "from", in a single conditional update. It reports whether a row
// was changed.
func (r *CommentRepository) UpdateStatus(ctx context.Context, id string, from []domain.CommentStatus, to domain.CommentStatus, moderation *domain.Moderation) (bool, error) {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	updates := map[string]interface{}{
		"status":     string(to),
		"updated_at": time.Now(),
	}
	if moderation != nil {
		data, err := json.Marshal(moderation)
		if err != nil {
			return false, fmt.Errorf("marshalling moderation: %w", err)
		}
		updates["moderation"] = datatypes.JSON(data)
	}

	res := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", commentID).
		Where("status IN ?", statusesToStrings(from)).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CommentRepository) ListFlagged(ctx context.Context, filter domain.ListFlaggedCommentsFilter) ([]*domain.Comment, error) {
	db := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Select("comments.*, COUNT(comment_flags.user_id) AS flag_count").
		Joins("JOIN comment_flags ON comment_flags.comment_id = comments.id")
	if filter.Statuses != nil {
		db = db.Where("comments.status IN ?", statusesToStrings(filter.Statuses))
	}
	db = db.Group("comments.id").
		Having("COUNT(comment_flags.user_id) >= ?", filter.MinFlags).
		Order("flag_count DESC").
		Order("comments.created_at ASC").
		Preload("Flags", func(db *gorm.DB) *gorm.DB {
			return db.Order("comment_flags.created_at ASC")
		})

	var models []*model.Comment
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	comments := []*domain.Comment{}
	for _, m := range models {
		c, err := m.ToDomain()
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}
