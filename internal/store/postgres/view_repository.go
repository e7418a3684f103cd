package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/internal/store/postgres/model"
)

// recordViewQuery creates (or renews an expired) dedup marker and bumps the
// content counter in the same statement. The counter is only touched when
// the marker statement produced a row.
const recordViewQuery = `
WITH marker AS (
    INSERT INTO view_markers (session_hash, content_type, content_id, expires_at, created_at)
    VALUES (@session_hash, @content_type, @content_id, @expires_at, @now)
    ON CONFLICT (session_hash, content_type, content_id)
    DO UPDATE SET expires_at = EXCLUDED.expires_at, created_at = EXCLUDED.created_at
    WHERE view_markers.expires_at <= @now
    RETURNING 1
), counter AS (
    INSERT INTO content_views (content_type, content_id, views, updated_at)
    SELECT @content_type, @content_id, 1, @now FROM marker
    ON CONFLICT (content_type, content_id)
    DO UPDATE SET views = content_views.views + 1, updated_at = EXCLUDED.updated_at
    RETURNING views
)
SELECT
    EXISTS (SELECT 1 FROM counter) AS counted,
    COALESCE(
        (SELECT views FROM counter),
        (SELECT views FROM content_views WHERE content_type = @content_type AND content_id = @content_id),
        0
    ) AS total_views`

type ViewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) *ViewRepository {
	return &ViewRepository{db}
}

func (r *ViewRepository) RecordView(ctx context.Context, marker domain.ViewMarker) (*domain.ViewResult, error) {
	var result struct {
		Counted    bool
		TotalViews int64
	}
	if err := r.db.WithContext(ctx).Raw(recordViewQuery, map[string]interface{}{
		"session_hash": marker.SessionHash,
		"content_type": string(marker.Content.Type),
		"content_id":   marker.Content.ID,
		"expires_at":   marker.ExpiresAt,
		"now":          marker.SeenAt,
	}).Scan(&result).Error; err != nil {
		return nil, err
	}

	return &domain.ViewResult{
		Counted:    result.Counted,
		TotalViews: result.TotalViews,
	}, nil
}

func (r *ViewRepository) GetViewCount(ctx context.Context, ref domain.ContentRef) (int64, error) {
	var views []int64
	if err := r.db.WithContext(ctx).
		Model(&model.ContentView{}).
		Where("content_type = ? AND content_id = ?", string(ref.Type), ref.ID).
		Pluck("views", &views).
		Error; err != nil {
		return 0, err
	}

	if len(views) == 0 {
		return 0, nil
	}
	return views[0], nil
}

// PurgeExpiredMarkers deletes markers that expired at or before the given
// time and returns how many were removed.
func (r *ViewRepository) PurgeExpiredMarkers(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", before).
		Delete(&model.ViewMarker{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
