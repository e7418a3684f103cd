package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dafi-web/events-sub000/domain"
)

type FlaggedCommentsReminderConfig struct {
	Moderators []string `mapstructure:"moderators"`
	MinFlags   int      `mapstructure:"min_flags"`
}

// FlaggedCommentsReminder tells the configured moderators how many flagged
// comments are waiting in the moderation queue.
func (h *handler) FlaggedCommentsReminder(ctx context.Context, c Config) error {
	var cfg FlaggedCommentsReminderConfig
	if err := c.Decode(&cfg); err != nil {
		return fmt.Errorf("invalid config for %s job: %w", TypeFlaggedCommentsReminder, err)
	}
	if len(cfg.Moderators) == 0 {
		return errors.New("at least one moderator is required")
	}
	if cfg.MinFlags <= 0 {
		cfg.MinFlags = defaultFlaggedReminderMinFlags
	}

	h.logger.Info(ctx, "retrieving flagged comments...")
	flagged, err := h.commentService.ListFlagged(ctx, &domain.Actor{ID: systemActorID, Role: domain.RoleAdmin}, domain.ListFlaggedCommentsFilter{
		MinFlags: cfg.MinFlags,
		Statuses: []domain.CommentStatus{domain.CommentStatusActive},
	})
	if err != nil {
		return fmt.Errorf("listing flagged comments: %w", err)
	}
	h.logger.Info(ctx, "retrieved flagged comments", "count", len(flagged))
	if len(flagged) == 0 {
		return nil
	}

	notifications := make([]domain.Notification, 0, len(cfg.Moderators))
	for _, moderator := range cfg.Moderators {
		notifications = append(notifications, domain.Notification{
			User: moderator,
			Message: domain.NotificationMessage{
				Type: domain.NotificationTypeFlaggedCommentsReminder,
				Variables: map[string]interface{}{
					"flagged_comments_count": len(flagged),
					"min_flags":              cfg.MinFlags,
				},
			},
		})
	}

	if errs := h.notifier.Notify(ctx, notifications); errs != nil {
		for _, e := range errs {
			h.logger.Error(ctx, "failed to send notifications", "error", e)
		}
	}

	h.logger.Info(ctx, "flagged comments reminders sent", "moderators", len(cfg.Moderators))
	return nil
}
