package jobs

import (
	"context"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/log"
	"github.com/Dafi-web/events-sub000/plugins/notifiers"
)

type Type string

const (
	TypeViewMarkerCleanup       Type = "view_marker_cleanup"
	TypeFlaggedCommentsReminder Type = "flagged_comments_reminder"
)

const (
	systemActorID                  = "system"
	defaultFlaggedReminderMinFlags = 1
)

type Job struct {
	Enabled  bool   `mapstructure:"enabled"`
	Interval string `mapstructure:"interval"`
	Config   Config `mapstructure:"config"`
}

type Config map[string]interface{}

func (c Config) Decode(v interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     v,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(c)
}

//go:generate mockery --name=viewService --exported --with-expecter
type viewService interface {
	PurgeExpiredMarkers(ctx context.Context, before time.Time) (int64, error)
}

//go:generate mockery --name=commentService --exported --with-expecter
type commentService interface {
	ListFlagged(ctx context.Context, actor *domain.Actor, filter domain.ListFlaggedCommentsFilter) ([]*domain.Comment, error)
}

//go:generate mockery --name=notifier --exported --with-expecter
type notifier interface {
	notifiers.Client
}

type handler struct {
	logger         log.Logger
	viewService    viewService
	commentService commentService
	notifier       notifier
	now            func() time.Time
}

func NewHandler(
	logger log.Logger,
	viewService viewService,
	commentService commentService,
	notifier notifier,
) *handler {
	return &handler{
		logger:         logger,
		viewService:    viewService,
		commentService: commentService,
		notifier:       notifier,
		now:            time.Now,
	}
}
