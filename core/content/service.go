package content

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Exists(ctx context.Context, ref domain.ContentRef) (bool, error)
}

type Service struct {
	repo   repository
	cache  *gocache.Cache
	logger log.Logger
}

type ServiceDeps struct {
	Repository repository
	Logger     log.Logger

	// CacheTTL is how long a positive existence check is remembered. Zero
	// disables caching.
	CacheTTL time.Duration
}

func NewService(deps ServiceDeps) *Service {
	s := &Service{
		repo:   deps.Repository,
		logger: deps.Logger,
	}
	if deps.CacheTTL > 0 {
		s.cache = gocache.New(deps.CacheTTL, 2*deps.CacheTTL)
	}
	return s
}

// ValidateRef checks the shape of a content reference without touching the
// store.
func ValidateRef(ref domain.ContentRef) error {
	if !ref.Type.IsValid() {
		return ErrInvalidContentType
	}
	if ref.ID == "" {
		return ErrEmptyContentID
	}
	return nil
}

// CheckExists returns nil when the content item exists, ErrContentNotFound
// when it does not.
func (s *Service) CheckExists(ctx context.Context, ref domain.ContentRef) error {
	if err := ValidateRef(ref); err != nil {
		return err
	}

	key := ref.String()
	if s.cache != nil {
		if _, found := s.cache.Get(key); found {
			return nil
		}
	}

	exists, err := s.repo.Exists(ctx, ref)
	if err != nil {
		return fmt.Errorf("checking existence of %q: %w", key, err)
	}
	if !exists {
		s.logger.Debug(ctx, "content not found", "content_type", ref.Type, "content_id", ref.ID)
		return ErrContentNotFound
	}

	if s.cache != nil {
		s.cache.SetDefault(key, struct{}{})
	}
	return nil
}
