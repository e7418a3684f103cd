package postgres

import (
	"context"

	"github.com/goto/salt/audit"
	"gorm.io/gorm"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/internal/store/postgres/model"
)

// AuditLogRepository reads the records written by the salt audit service.
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// List returns the matching records, newest first.
func (r *AuditLogRepository) List(ctx context.Context, filter *domain.ListAuditLogFilter) ([]*audit.Log, error) {
	query := r.db.WithContext(ctx).Model(&model.AuditLog{})
	if filter != nil {
		if len(filter.Actions) > 0 {
			query = query.Where(`"action" IN ?`, filter.Actions)
		}
		if filter.CommentID != "" {
			query = query.Where(`"data" ->> 'comment_id' = ?`, filter.CommentID)
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
	}

	var rows []*model.AuditLog
	if err := query.Order(`"timestamp" DESC`).Find(&rows).Error; err != nil {
		return nil, err
	}

	logs := make([]*audit.Log, 0, len(rows))
	for _, row := range rows {
		l, err := row.ToAuditLog()
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, nil
}
