package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/internal/store/postgres"
	"github.com/Dafi-web/events-sub000/pkg/log"
	"github.com/Dafi-web/events-sub000/pkg/postgrestest"
)

type ViewRepositorySuite struct {
	suite.Suite
	store      *postgres.Store
	pool       *dockertest.Pool
	resource   *dockertest.Resource
	repository *postgres.ViewRepository

	content domain.ContentRef
}

func TestViewRepository(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(ViewRepositorySuite))
}

func (s *ViewRepositorySuite) SetupSuite() {
	var err error
	s.store, s.pool, s.resource, err = postgrestest.NewTestStore(log.NewNoop())
	if err != nil {
		s.T().Fatal(err)
	}

	s.repository = postgres.NewViewRepository(s.store.DB())
	s.content = domain.ContentRef{Type: domain.ContentTypeDirectory, ID: "listing-1"}
}

func (s *ViewRepositorySuite) TearDownSuite() {
	if err := s.store.Close(); err != nil {
		s.T().Fatal(err)
	}

	if err := postgrestest.PurgeTestDocker(s.pool, s.resource); err != nil {
		s.T().Fatal(err)
	}
}

func (s *ViewRepositorySuite) SetupTest() {
	s.Require().NoError(s.store.DB().Exec("TRUNCATE view_markers, content_views").Error)
}

func (s *ViewRepositorySuite) marker(session string, now time.Time) domain.ViewMarker {
	return domain.ViewMarker{
		Content:     s.content,
		SessionHash: session,
		SeenAt:      now,
		ExpiresAt:   now.Add(time.Hour),
	}
}

func (s *ViewRepositorySuite) TestRecordView() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.Run("should count the first view of a session only", func() {
		result, err := s.repository.RecordView(ctx, s.marker("session-a", now))
		s.NoError(err)
		s.Equal(&domain.ViewResult{Counted: true, TotalViews: 1}, result)

		result, err = s.repository.RecordView(ctx, s.marker("session-a", now.Add(time.Minute)))
		s.NoError(err)
		s.Equal(&domain.ViewResult{Counted: false, TotalViews: 1}, result)

		result, err = s.repository.RecordView(ctx, s.marker("session-b", now))
		s.NoError(err)
		s.Equal(&domain.ViewResult{Counted: true, TotalViews: 2}, result)
	})

	s.Run("should count again once the marker expired", func() {
		result, err := s.repository.RecordView(ctx, s.marker("session-a", now.Add(2*time.Hour)))
		s.NoError(err)
		s.Equal(&domain.ViewResult{Counted: true, TotalViews: 3}, result)

		total, err := s.repository.GetViewCount(ctx, s.content)
		s.NoError(err)
		s.Equal(int64(3), total)
	})

	s.Run("should return zero for content never viewed", func() {
		total, err := s.repository.GetViewCount(ctx, domain.ContentRef{Type: domain.ContentTypeEvent, ID: "unseen"})
		s.NoError(err)
		s.Zero(total)
	})
}

func (s *ViewRepositorySuite) TestConcurrentRecordView() {
	ctx := context.Background()
	now := time.Now().UTC()

	const requests = 20
	var wg sync.WaitGroup
	results := make(chan *domain.ViewResult, requests)
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := s.repository.RecordView(ctx, s.marker("same-session", now))
			if err == nil {
				results <- result
			}
		}()
	}
	wg.Wait()
	close(results)

	counted := 0
	for r := range results {
		if r.Counted {
			counted++
		}
	}
	s.Equal(1, counted)

	total, err := s.repository.GetViewCount(ctx, s.content)
	s.NoError(err)
	s.Equal(int64(1), total)
}

func (s *ViewRepositorySuite) TestPurgeExpiredMarkers() {
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := s.repository.RecordView(ctx, s.marker("old", now.Add(-2*time.Hour)))
	s.Require().NoError(err)
	_, err = s.repository.RecordView(ctx, s.marker("fresh", now))
	s.Require().NoError(err)

	purged, err := s.repository.PurgeExpiredMarkers(ctx, now)
	s.NoError(err)
	s.Equal(int64(1), purged)

	total, err := s.repository.GetViewCount(ctx, s.content)
	s.NoError(err)
	s.Equal(int64(2), total)
}
