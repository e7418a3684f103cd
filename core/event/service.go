package event

import (
	"context"
	"fmt"

	"github.com/goto/salt/audit"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	List(context.Context, *domain.ListAuditLogFilter) ([]*audit.Log, error)
}

type Service struct {
	repo   repository
	logger log.Logger
}

func NewService(repo repository, logger log.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the audit events of an engagement entity, newest first.
// Records that don't describe a known entity are skipped.
func (s *Service) List(ctx context.Context, filter *domain.ListEventsFilter) ([]*domain.Event, error) {
	query := toAuditLogFilter(filter)
	records, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing audit logs: %w", err)
	}

	events := make([]*domain.Event, 0, len(records))
	for _, record := range records {
		var e domain.Event
		if err := e.FromAuditLog(record); err != nil {
			s.logger.Warn(ctx, "skipping audit log", "action", record.Action, "timestamp", record.Timestamp, "reason", err)
			continue
		}
		events = append(events, &e)
	}
	return events, nil
}

func toAuditLogFilter(filter *domain.ListEventsFilter) *domain.ListAuditLogFilter {
	query := &domain.ListAuditLogFilter{Limit: defaultLimit}
	if filter == nil {
		return query
	}

	query.Actions = filter.Types
	if filter.ParentType == domain.EventParentTypeComment {
		query.CommentID = filter.ParentID
	}
	switch {
	case filter.Limit > maxLimit:
		query.Limit = maxLimit
	case filter.Limit > 0:
		query.Limit = filter.Limit
	}
	return query
}
