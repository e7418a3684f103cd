package view_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Dafi-web/events-sub000/core/content"
	"github.com/Dafi-web/events-sub000/core/view"
	"github.com/Dafi-web/events-sub000/core/view/mocks"
	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

type ServiceTestSuite struct {
	suite.Suite
	mockRepo *mocks.Repository
	service  *view.Service

	now     time.Time
	content domain.ContentRef
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.content = domain.ContentRef{Type: domain.ContentTypeNews, ID: "news-1"}
	s.mockRepo = new(mocks.Repository)
	s.service = view.NewService(view.ServiceDeps{
		Repository: s.mockRepo,
		Logger:     log.NewNoop(),
		MarkerTTL:  30 * time.Minute,
		Now:        func() time.Time { return s.now },
	})
}

func (s *ServiceTestSuite) TestRecordView() {
	s.Run("should validate input", func() {
		_, err := s.service.RecordView(context.Background(), s.content, "")
		s.ErrorIs(err, view.ErrEmptySessionToken)
		s.ErrorIs(err, domain.ErrValidation)

		_, err = s.service.RecordView(context.Background(), domain.ContentRef{Type: "blog", ID: "1"}, "token")
		s.ErrorIs(err, content.ErrInvalidContentType)

		s.mockRepo.AssertNotCalled(s.T(), "RecordView", mock.Anything, mock.Anything)
	})

	s.Run("should store a hashed marker expiring after the ttl", func() {
		expected := &domain.ViewResult{Counted: true, TotalViews: 5}
		s.mockRepo.EXPECT().
			RecordView(mock.Anything, domain.ViewMarker{
				Content:     s.content,
				SessionHash: view.HashSessionToken("session-token"),
				SeenAt:      s.now,
				ExpiresAt:   s.now.Add(30 * time.Minute),
			}).
			Return(expected, nil).
			Once()

		actual, err := s.service.RecordView(context.Background(), s.content, "session-token")

		s.NoError(err)
		s.Equal(expected, actual)
		s.mockRepo.AssertExpectations(s.T())
	})

	s.Run("should wrap store errors", func() {
		expectedErr := errors.New("timeout")
		s.mockRepo.EXPECT().RecordView(mock.Anything, mock.Anything).Return(nil, expectedErr).Once()

		_, err := s.service.RecordView(context.Background(), s.content, "other")

		s.ErrorIs(err, expectedErr)
	})
}

func (s *ServiceTestSuite) TestHashSessionToken() {
	s.Len(view.HashSessionToken("a"), 64)
	s.Equal(view.HashSessionToken("a"), view.HashSessionToken("a"))
	s.NotEqual(view.HashSessionToken("a"), view.HashSessionToken("b"))
	s.NotContains(view.HashSessionToken("secret-token"), "secret")
}

func (s *ServiceTestSuite) TestPurgeExpiredMarkers() {
	s.mockRepo.EXPECT().PurgeExpiredMarkers(mock.Anything, s.now).Return(int64(3), nil).Once()

	purged, err := s.service.PurgeExpiredMarkers(context.Background(), s.now)

	s.NoError(err)
	s.Equal(int64(3), purged)
}
