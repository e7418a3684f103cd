package reaction

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/log"
	"github.com/Dafi-web/events-sub000/pkg/slices"
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Toggle(ctx context.Context, target domain.ReactionTarget, userID string, kind domain.ReactionKind) (domain.ReactionKind, error)
	GetCounts(ctx context.Context, target domain.ReactionTarget) (*domain.ReactionCounts, error)
	GetUserReaction(ctx context.Context, target domain.ReactionTarget, userID string) (domain.ReactionKind, error)
	GetUserReactions(ctx context.Context, targets []domain.ReactionTarget, userID string) (map[domain.ReactionTarget]domain.ReactionKind, error)
}

// targetValidator decides whether a target may receive reactions, e.g. that
// the content item exists or the comment is not deleted.
//
//go:generate mockery --name=targetValidator --exported --with-expecter
type targetValidator interface {
	ValidateTarget(ctx context.Context, target domain.ReactionTarget) error
}

type Service struct {
	repo            repository
	targetValidator targetValidator
	logger          log.Logger

	toggles metric.Int64Counter
}

type ServiceDeps struct {
	Repository      repository
	TargetValidator targetValidator
	Logger          log.Logger
}

func NewService(deps ServiceDeps) *Service {
	s := &Service{
		repo:            deps.Repository,
		targetValidator: deps.TargetValidator,
		logger:          deps.Logger,
	}

	toggles, err := otel.Meter("engagement.reaction").Int64Counter(
		"reaction_toggles_total",
		metric.WithDescription("Number of applied reaction toggles by resulting reaction"),
	)
	if err != nil {
		deps.Logger.Warn(context.Background(), "failed to create reaction toggle counter", "error", err)
	}
	s.toggles = toggles

	return s
}

// Toggle applies kind to the target on behalf of the actor. Repeating the
// user's current reaction clears it, otherwise the reaction becomes kind.
func (s *Service) Toggle(ctx context.Context, target domain.ReactionTarget, actor *domain.Actor, kind domain.ReactionKind) (*domain.ReactionResult, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	if !kind.IsToggleable() {
		return nil, ErrInvalidReactionKind
	}
	if !target.IsValid() {
		return nil, ErrInvalidTarget
	}
	if s.targetValidator != nil {
		if err := s.targetValidator.ValidateTarget(ctx, target); err != nil {
			return nil, err
		}
	}

	userReaction, err := s.repo.Toggle(ctx, target, actor.ID, kind)
	if err != nil {
		return nil, fmt.Errorf("toggling reaction: %w", err)
	}

	counts, err := s.repo.GetCounts(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("getting reaction counts: %w", err)
	}

	if s.toggles != nil {
		s.toggles.Add(ctx, 1, metric.WithAttributes(
			attribute.String("target_type", string(target.Type)),
			attribute.String("user_reaction", string(userReaction)),
		))
	}
	s.logger.Debug(ctx, "reaction toggled",
		"target_type", target.Type,
		"target_id", target.ID,
		"user", actor.ID,
		"requested", kind,
		"user_reaction", userReaction,
	)

	return &domain.ReactionResult{
		ReactionCounts: *counts,
		UserReaction:   userReaction,
	}, nil
}

func (s *Service) GetCounts(ctx context.Context, target domain.ReactionTarget) (*domain.ReactionCounts, error) {
	if !target.IsValid() {
		return nil, ErrInvalidTarget
	}

	counts, err := s.repo.GetCounts(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("getting reaction counts: %w", err)
	}
	return counts, nil
}

// GetUserReaction returns the user's reaction to the target, or
// ReactionNone for anonymous callers.
func (s *Service) GetUserReaction(ctx context.Context, target domain.ReactionTarget, userID string) (domain.ReactionKind, error) {
	if !target.IsValid() {
		return "", ErrInvalidTarget
	}
	if userID == "" {
		return domain.ReactionNone, nil
	}

	kind, err := s.repo.GetUserReaction(ctx, target, userID)
	if err != nil {
		return "", fmt.Errorf("getting user reaction: %w", err)
	}
	return kind, nil
}

// GetUserReactions resolves the user's reaction for several targets at once.
// Every requested target is present in the result.
func (s *Service) GetUserReactions(ctx context.Context, targets []domain.ReactionTarget, userID string) (map[domain.ReactionTarget]domain.ReactionKind, error) {
	targets = slices.GenericsUniqueSliceValues(targets)
	for _, t := range targets {
		if !t.IsValid() {
			return nil, ErrInvalidTarget
		}
	}

	if userID == "" || len(targets) == 0 {
		result := make(map[domain.ReactionTarget]domain.ReactionKind, len(targets))
		for _, t := range targets {
			result[t] = domain.ReactionNone
		}
		return result, nil
	}

	result, err := s.repo.GetUserReactions(ctx, targets, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user reactions: %w", err)
	}
	return result, nil
}
