package engagement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Dafi-web/events-sub000/core/comment"
	"github.com/Dafi-web/events-sub000/core/content"
	"github.com/Dafi-web/events-sub000/core/engagement"
	"github.com/Dafi-web/events-sub000/core/engagement/mocks"
	"github.com/Dafi-web/events-sub000/core/view"
	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

type ServiceTestSuite struct {
	suite.Suite
	mockContentService  *mocks.ContentService
	mockCommentService  *mocks.CommentService
	mockReactionService *mocks.ReactionService
	mockViewService     *mocks.ViewService
	mockEventService    *mocks.EventService
	service             *engagement.Service

	ref   domain.ContentRef
	user  *domain.Actor
	admin *domain.Actor
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockContentService = new(mocks.ContentService)
	s.mockCommentService = new(mocks.CommentService)
	s.mockReactionService = new(mocks.ReactionService)
	s.mockViewService = new(mocks.ViewService)
	s.mockEventService = new(mocks.EventService)
	s.service = engagement.NewService(engagement.ServiceDeps{
		ContentService:  s.mockContentService,
		CommentService:  s.mockCommentService,
		ReactionService: s.mockReactionService,
		ViewService:     s.mockViewService,
		EventService:    s.mockEventService,
		Logger:          log.NewNoop(),
	})

	s.ref = domain.ContentRef{Type: domain.ContentTypeNews, ID: "news-1"}
	s.user = &domain.Actor{ID: "user-1", Role: domain.RoleUser}
	s.admin = &domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
}

func (s *ServiceTestSuite) TestGetEngagementSummary() {
	s.Run("should return not found for missing content", func() {
		s.mockContentService.EXPECT().CheckExists(mock.Anything, s.ref).Return(content.ErrContentNotFound).Once()

		_, err := s.service.GetEngagementSummary(context.Background(), s.ref, nil)

		s.ErrorIs(err, domain.ErrNotFound)
	})

	s.Run("should skip the user reaction for anonymous callers", func() {
		s.SetupTest()
		target := domain.ContentTarget(s.ref)
		s.mockContentService.EXPECT().CheckExists(mock.Anything, s.ref).Return(nil).Once()
		s.mockReactionService.EXPECT().GetCounts(mock.Anything, target).Return(&domain.ReactionCounts{LikeCount: 4, DislikeCount: 2}, nil).Once()
		s.mockViewService.EXPECT().GetViewCount(mock.Anything, s.ref).Return(int64(10), nil).Once()
		s.mockCommentService.EXPECT().CountTopLevel(mock.Anything, s.ref).Return(int64(3), nil).Once()

		actual, err := s.service.GetEngagementSummary(context.Background(), s.ref, nil)

		s.NoError(err)
		s.Equal(&domain.EngagementSummary{
			Content:              s.ref,
			LikeCount:            4,
			DislikeCount:         2,
			UserReaction:         domain.ReactionNone,
			ViewCount:            10,
			TopLevelCommentCount: 3,
		}, actual)
		s.mockReactionService.AssertNotCalled(s.T(), "GetUserReaction", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("should fail when one of the reads fails", func() {
		s.SetupTest()
		expectedErr := errors.New("views unavailable")
		s.mockContentService.EXPECT().CheckExists(mock.Anything, s.ref).Return(nil).Once()
		s.mockReactionService.EXPECT().GetCounts(mock.Anything, mock.Anything).Return(&domain.ReactionCounts{}, nil).Maybe()
		s.mockReactionService.EXPECT().GetUserReaction(mock.Anything, mock.Anything, s.user.ID).Return(domain.ReactionLike, nil).Maybe()
		s.mockViewService.EXPECT().GetViewCount(mock.Anything, s.ref).Return(int64(0), expectedErr).Once()
		s.mockCommentService.EXPECT().CountTopLevel(mock.Anything, s.ref).Return(int64(0), nil).Maybe()

		_, err := s.service.GetEngagementSummary(context.Background(), s.ref, s.user)

		s.ErrorIs(err, expectedErr)
	})
}

func (s *ServiceTestSuite) TestToggleReaction() {
	s.Run("should require an authenticated actor", func() {
		_, err := s.service.ToggleReaction(context.Background(), domain.TargetRef{Kind: domain.TargetKindComment, ID: "c1"}, nil, domain.ReactionLike)

		s.ErrorIs(err, engagement.ErrAuthenticationRequired)
		s.ErrorIs(err, domain.ErrUnauthorized)
	})

	s.Run("should normalize targets", func() {
		testCases := []struct {
			name     string
			ref      domain.TargetRef
			expected domain.ReactionTarget
		}{
			{"content", domain.TargetRef{Kind: domain.TargetKindContent, ContentType: domain.ContentTypeDirectory, ID: "d1"}, domain.ReactionTarget{Type: "directory", ID: "d1"}},
			{"comment", domain.TargetRef{Kind: domain.TargetKindComment, ID: "c1"}, domain.ReactionTarget{Type: domain.TargetTypeComment, ID: "c1"}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.SetupTest()
				expected := &domain.ReactionResult{UserReaction: domain.ReactionLike}
				s.mockReactionService.EXPECT().Toggle(mock.Anything, tc.expected, s.user, domain.ReactionLike).Return(expected, nil).Once()

				actual, err := s.service.ToggleReaction(context.Background(), tc.ref, s.user, domain.ReactionLike)

				s.NoError(err)
				s.Equal(expected, actual)
			})
		}
	})

	s.Run("should reject invalid targets", func() {
		testCases := []domain.TargetRef{
			{Kind: "video", ID: "1"},
			{Kind: domain.TargetKindContent, ContentType: "video", ID: "1"},
			{Kind: domain.TargetKindContent, ContentType: domain.ContentTypeEvent},
			{Kind: domain.TargetKindComment},
		}
		for _, ref := range testCases {
			_, err := s.service.ToggleReaction(context.Background(), ref, s.user, domain.ReactionLike)

			s.ErrorIs(err, domain.ErrValidation)
		}
	})
}

func (s *ServiceTestSuite) TestCreateComment() {
	s.Run("should require an authenticated actor", func() {
		_, err := s.service.CreateComment(context.Background(), s.ref, &domain.Actor{}, "hi", "")

		s.ErrorIs(err, domain.ErrUnauthorized)
	})

	s.Run("should check that the content exists", func() {
		s.SetupTest()
		s.mockContentService.EXPECT().CheckExists(mock.Anything, s.ref).Return(content.ErrContentNotFound).Once()

		_, err := s.service.CreateComment(context.Background(), s.ref, s.user, "hi", "")

		s.ErrorIs(err, domain.ErrNotFound)
		s.mockCommentService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})

	s.Run("should create the comment as the actor", func() {
		s.SetupTest()
		s.mockContentService.EXPECT().CheckExists(mock.Anything, s.ref).Return(nil).Once()
		s.mockCommentService.EXPECT().Create(mock.Anything, &domain.Comment{
			ContentType: s.ref.Type,
			ContentID:   s.ref.ID,
			ParentID:    "parent-1",
			CreatedBy:   s.user.ID,
			Body:        "hi",
		}).Return(nil).Once()

		actual, err := s.service.CreateComment(context.Background(), s.ref, s.user, "hi", "parent-1")

		s.NoError(err)
		s.Equal(s.user.ID, actual.CreatedBy)
	})
}

func (s *ServiceTestSuite) TestListComments() {
	s.Run("should forbid hidden comments for regular users", func() {
		_, err := s.service.ListTopLevelComments(context.Background(), s.ref, s.user, true)
		s.ErrorIs(err, domain.ErrForbidden)

		_, err = s.service.ListReplies(context.Background(), "c1", nil, true)
		s.ErrorIs(err, domain.ErrForbidden)
	})

	s.Run("should attach the viewer reactions", func() {
		s.SetupTest()
		comments := []*domain.Comment{{ID: "c1"}, {ID: "c2"}}
		s.mockContentService.EXPECT().CheckExists(mock.Anything, s.ref).Return(nil).Once()
		s.mockCommentService.EXPECT().ListTopLevel(mock.Anything, s.ref, domain.ListCommentsOptions{}).Return(comments, nil).Once()
		s.mockReactionService.EXPECT().
			GetUserReactions(mock.Anything, []domain.ReactionTarget{domain.CommentTarget("c1"), domain.CommentTarget("c2")}, s.user.ID).
			Return(map[domain.ReactionTarget]domain.ReactionKind{domain.CommentTarget("c2"): domain.ReactionDislike}, nil).
			Once()

		actual, err := s.service.ListTopLevelComments(context.Background(), s.ref, s.user, false)

		s.NoError(err)
		s.Equal(domain.ReactionNone, actual[0].ViewerReaction)
		s.Equal(domain.ReactionDislike, actual[1].ViewerReaction)
	})
}

func (s *ServiceTestSuite) TestModerateComment() {
	s.Run("should require a moderator", func() {
		_, err := s.service.ModerateComment(context.Background(), "c1", nil, domain.ModerationActionHide, "")
		s.ErrorIs(err, domain.ErrUnauthorized)

		_, err = s.service.ModerateComment(context.Background(), "c1", s.user, domain.ModerationActionHide, "")
		s.ErrorIs(err, engagement.ErrModeratorRequired)

		_, err = s.service.ListFlaggedComments(context.Background(), s.user, domain.ListFlaggedCommentsFilter{})
		s.ErrorIs(err, domain.ErrForbidden)
	})

	s.Run("should pass through moderation errors", func() {
		s.SetupTest()
		s.mockCommentService.EXPECT().Moderate(mock.Anything, "c1", s.admin, domain.ModerationActionRestore, "").Return(nil, comment.ErrCommentDeleted).Once()

		_, err := s.service.ModerateComment(context.Background(), "c1", s.admin, domain.ModerationActionRestore, "")

		s.ErrorIs(err, domain.ErrConflict)
	})
}

func (s *ServiceTestSuite) TestRecordView() {
	s.Run("should require a session token", func() {
		_, err := s.service.RecordView(context.Background(), s.ref, "")

		s.ErrorIs(err, view.ErrEmptySessionToken)
		s.mockContentService.AssertNotCalled(s.T(), "CheckExists", mock.Anything, mock.Anything)
	})

	s.Run("should record views of existing content", func() {
		s.SetupTest()
		expected := &domain.ViewResult{Counted: true, TotalViews: 1}
		s.mockContentService.EXPECT().CheckExists(mock.Anything, s.ref).Return(nil).Once()
		s.mockViewService.EXPECT().RecordView(mock.Anything, s.ref, "S1").Return(expected, nil).Once()

		actual, err := s.service.RecordView(context.Background(), s.ref, "S1")

		s.NoError(err)
		s.Equal(expected, actual)
	})
}

func (s *ServiceTestSuite) TestTargetResolver() {
	resolver := engagement.NewTargetResolver(s.mockContentService, s.mockCommentService)

	testCases := []struct {
		name        string
		status      domain.CommentStatus
		expectedErr error
	}{
		{"active", domain.CommentStatusActive, nil},
		{"hidden", domain.CommentStatusHidden, domain.ErrNotFound},
		{"deleted", domain.CommentStatusDeleted, domain.ErrConflict},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCommentService.EXPECT().GetByID(mock.Anything, "c-"+string(tc.status)).Return(&domain.Comment{Status: tc.status}, nil).Once()

			err := resolver.ValidateTarget(context.Background(), domain.CommentTarget("c-"+string(tc.status)))

			if tc.expectedErr == nil {
				s.NoError(err)
			} else {
				s.ErrorIs(err, tc.expectedErr)
			}
		})
	}

	s.Run("content target", func() {
		ref := domain.ContentRef{Type: domain.ContentTypeEvent, ID: "e1"}
		s.mockContentService.EXPECT().CheckExists(mock.Anything, ref).Return(content.ErrContentNotFound).Once()

		err := resolver.ValidateTarget(context.Background(), domain.ContentTarget(ref))

		s.ErrorIs(err, domain.ErrNotFound)
	})
}

func (s *ServiceTestSuite) TestListCommentEvents() {
	s.Run("should require a moderator", func() {
		_, err := s.service.ListCommentEvents(context.Background(), "c1", s.user)

		s.ErrorIs(err, domain.ErrForbidden)
	})

	s.Run("should return not found for unknown comments", func() {
		s.SetupTest()
		s.mockCommentService.EXPECT().GetByID(mock.Anything, "c1").Return(nil, comment.ErrCommentNotFound).Once()

		_, err := s.service.ListCommentEvents(context.Background(), "c1", s.admin)

		s.ErrorIs(err, domain.ErrNotFound)
	})

	s.Run("should list the events of the comment", func() {
		s.SetupTest()
		expected := []*domain.Event{{ParentType: domain.EventParentTypeComment, ParentID: "c1", Type: comment.AuditKeyCreate}}
		s.mockCommentService.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Comment{ID: "c1"}, nil).Once()
		s.mockEventService.EXPECT().
			List(mock.Anything, &domain.ListEventsFilter{ParentType: domain.EventParentTypeComment, ParentID: "c1"}).
			Return(expected, nil).Once()

		actual, err := s.service.ListCommentEvents(context.Background(), "c1", s.admin)

		s.NoError(err)
		s.Equal(expected, actual)
	})
}
