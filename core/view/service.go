package view

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Dafi-web/events-sub000/core/content"
	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

const DefaultMarkerTTL = 24 * time.Hour

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	RecordView(ctx context.Context, marker domain.ViewMarker) (*domain.ViewResult, error)
	GetViewCount(ctx context.Context, ref domain.ContentRef) (int64, error)
	PurgeExpiredMarkers(ctx context.Context, before time.Time) (int64, error)
}

type Service struct {
	repo      repository
	logger    log.Logger
	markerTTL time.Duration
	now       func() time.Time

	views metric.Int64Counter
}

type ServiceDeps struct {
	Repository repository
	Logger     log.Logger

	// MarkerTTL is how long a session stays deduplicated for a content item.
	MarkerTTL time.Duration
	// Now overrides the clock, mainly for tests.
	Now func() time.Time
}

func NewService(deps ServiceDeps) *Service {
	s := &Service{
		repo:      deps.Repository,
		logger:    deps.Logger,
		markerTTL: deps.MarkerTTL,
		now:       deps.Now,
	}
	if s.markerTTL <= 0 {
		s.markerTTL = DefaultMarkerTTL
	}
	if s.now == nil {
		s.now = time.Now
	}

	views, err := otel.Meter("engagement.view").Int64Counter(
		"content_views_recorded_total",
		metric.WithDescription("Number of view requests by whether they were counted"),
	)
	if err != nil {
		deps.Logger.Warn(context.Background(), "failed to create view counter", "error", err)
	}
	s.views = views

	return s
}

// RecordView counts a view of the content item unless the same session was
// already counted within the marker TTL.
func (s *Service) RecordView(ctx context.Context, ref domain.ContentRef, sessionToken string) (*domain.ViewResult, error) {
	if err := content.ValidateRef(ref); err != nil {
		return nil, err
	}
	if sessionToken == "" {
		return nil, ErrEmptySessionToken
	}

	now := s.now().UTC()
	result, err := s.repo.RecordView(ctx, domain.ViewMarker{
		Content:     ref,
		SessionHash: HashSessionToken(sessionToken),
		SeenAt:      now,
		ExpiresAt:   now.Add(s.markerTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("recording view of %q: %w", ref, err)
	}

	if s.views != nil {
		s.views.Add(ctx, 1, metric.WithAttributes(
			attribute.String("content_type", string(ref.Type)),
			attribute.Bool("counted", result.Counted),
		))
	}

	return result, nil
}

func (s *Service) GetViewCount(ctx context.Context, ref domain.ContentRef) (int64, error) {
	if err := content.ValidateRef(ref); err != nil {
		return 0, err
	}

	count, err := s.repo.GetViewCount(ctx, ref)
	if err != nil {
		return 0, fmt.Errorf("getting view count of %q: %w", ref, err)
	}
	return count, nil
}

// PurgeExpiredMarkers removes dedup markers that expired before the given
// time. Counters are not affected.
func (s *Service) PurgeExpiredMarkers(ctx context.Context, before time.Time) (int64, error) {
	purged, err := s.repo.PurgeExpiredMarkers(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("purging expired view markers: %w", err)
	}

	s.logger.Info(ctx, "purged expired view markers", "count", purged, "before", before)
	return purged, nil
}

// HashSessionToken returns the digest stored in place of the raw token.
func HashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
