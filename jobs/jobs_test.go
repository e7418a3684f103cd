package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/jobs/mocks"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

type JobsTestSuite struct {
	suite.Suite
	mockViewService    *mocks.ViewService
	mockCommentService *mocks.CommentService
	mockNotifier       *mocks.Notifier
	handler            *handler
	now                time.Time
}

func (s *JobsTestSuite) setup() {
	s.mockViewService = new(mocks.ViewService)
	s.mockCommentService = new(mocks.CommentService)
	s.mockNotifier = new(mocks.Notifier)
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.handler = NewHandler(log.NewNoop(), s.mockViewService, s.mockCommentService, s.mockNotifier)
	s.handler.now = func() time.Time { return s.now }
}

func (s *JobsTestSuite) SetupTest() {
	s.setup()
}

func TestJobs(t *testing.T) {
	suite.Run(t, new(JobsTestSuite))
}

func (s *JobsTestSuite) TestConfigDecode() {
	s.Run("should decode durations and slices", func() {
		var cfg struct {
			Grace      time.Duration `mapstructure:"grace"`
			Moderators []string      `mapstructure:"moderators"`
		}

		err := Config{
			"grace":      "90m",
			"moderators": []interface{}{"mod-1", "mod-2"},
		}.Decode(&cfg)

		s.NoError(err)
		s.Equal(90*time.Minute, cfg.Grace)
		s.Equal([]string{"mod-1", "mod-2"}, cfg.Moderators)
	})

	s.Run("should return error on mismatched types", func() {
		var cfg FlaggedCommentsReminderConfig

		err := Config{"min_flags": "many"}.Decode(&cfg)

		s.Error(err)
	})
}

func (s *JobsTestSuite) TestViewMarkerCleanup() {
	s.Run("should purge markers expired before now minus grace", func() {
		s.setup()
		expectedBefore := s.now.Add(-time.Hour)
		s.mockViewService.EXPECT().
			PurgeExpiredMarkers(mock.Anything, expectedBefore).
			Return(int64(12), nil).Once()

		err := s.handler.ViewMarkerCleanup(context.Background(), Config{"grace": "1h"})

		s.NoError(err)
		s.mockViewService.AssertExpectations(s.T())
	})

	s.Run("should use now when grace is not set", func() {
		s.setup()
		s.mockViewService.EXPECT().
			PurgeExpiredMarkers(mock.Anything, s.now).
			Return(int64(0), nil).Once()

		err := s.handler.ViewMarkerCleanup(context.Background(), nil)

		s.NoError(err)
	})

	s.Run("should return error if purging fails", func() {
		s.setup()
		expectedErr := errors.New("db down")
		s.mockViewService.EXPECT().
			PurgeExpiredMarkers(mock.Anything, mock.Anything).
			Return(int64(0), expectedErr).Once()

		err := s.handler.ViewMarkerCleanup(context.Background(), nil)

		s.ErrorIs(err, expectedErr)
	})

	s.Run("should return error on invalid config", func() {
		s.setup()

		err := s.handler.ViewMarkerCleanup(context.Background(), Config{"grace": "soon"})

		s.Error(err)
		s.mockViewService.AssertNotCalled(s.T(), "PurgeExpiredMarkers", mock.Anything, mock.Anything)
	})
}

func (s *JobsTestSuite) TestFlaggedCommentsReminder() {
	s.Run("should return error if no moderator is configured", func() {
		s.setup()

		err := s.handler.FlaggedCommentsReminder(context.Background(), Config{})

		s.EqualError(err, "at least one moderator is required")
	})

	s.Run("should not notify when nothing is flagged", func() {
		s.setup()
		s.mockCommentService.EXPECT().
			ListFlagged(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, nil).Once()

		err := s.handler.FlaggedCommentsReminder(context.Background(), Config{"moderators": []interface{}{"mod-1"}})

		s.NoError(err)
		s.mockNotifier.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything)
	})

	s.Run("should notify every moderator with the flagged count", func() {
		s.setup()
		flagged := []*domain.Comment{{ID: "c1", FlagCount: 3}, {ID: "c2", FlagCount: 2}}
		s.mockCommentService.EXPECT().
			ListFlagged(mock.Anything, mock.MatchedBy(func(a *domain.Actor) bool {
				return a.ID == systemActorID && a.CanModerate()
			}), domain.ListFlaggedCommentsFilter{
				MinFlags: 2,
				Statuses: []domain.CommentStatus{domain.CommentStatusActive},
			}).
			Return(flagged, nil).Once()

		var sent []domain.Notification
		s.mockNotifier.EXPECT().
			Notify(mock.Anything, mock.Anything).
			Run(func(_ context.Context, n []domain.Notification) { sent = n }).
			Return(nil).Once()

		err := s.handler.FlaggedCommentsReminder(context.Background(), Config{
			"moderators": []interface{}{"mod-1", "mod-2"},
			"min_flags":  2,
		})

		s.NoError(err)
		s.Require().Len(sent, 2)
		s.Equal("mod-1", sent[0].User)
		s.Equal("mod-2", sent[1].User)
		s.Equal(domain.NotificationTypeFlaggedCommentsReminder, sent[0].Message.Type)
		s.Equal(2, sent[0].Message.Variables["flagged_comments_count"])
		s.Equal(2, sent[0].Message.Variables["min_flags"])
	})

	s.Run("should default min flags to one", func() {
		s.setup()
		s.mockCommentService.EXPECT().
			ListFlagged(mock.Anything, mock.Anything, mock.MatchedBy(func(f domain.ListFlaggedCommentsFilter) bool {
				return f.MinFlags == 1
			})).
			Return(nil, nil).Once()

		err := s.handler.FlaggedCommentsReminder(context.Background(), Config{"moderators": []interface{}{"mod-1"}})

		s.NoError(err)
		s.mockCommentService.AssertExpectations(s.T())
	})

	s.Run("should not fail the job when notifications fail", func() {
		s.setup()
		s.mockCommentService.EXPECT().
			ListFlagged(mock.Anything, mock.Anything, mock.Anything).
			Return([]*domain.Comment{{ID: "c1"}}, nil).Once()
		s.mockNotifier.EXPECT().
			Notify(mock.Anything, mock.Anything).
			Return([]error{errors.New("webhook down")}).Once()

		err := s.handler.FlaggedCommentsReminder(context.Background(), Config{"moderators": []interface{}{"mod-1"}})

		s.NoError(err)
	})

	s.Run("should return error if listing fails", func() {
		s.setup()
		expectedErr := errors.New("db down")
		s.mockCommentService.EXPECT().
			ListFlagged(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, expectedErr).Once()

		err := s.handler.FlaggedCommentsReminder(context.Background(), Config{"moderators": []interface{}{"mod-1"}})

		s.ErrorIs(err, expectedErr)
	})
}
