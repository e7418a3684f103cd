package v1beta1_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Dafi-web/events-sub000/api/handler/v1beta1"
	"github.com/Dafi-web/events-sub000/api/handler/v1beta1/mocks"
	"github.com/Dafi-web/events-sub000/core/comment"
	"github.com/Dafi-web/events-sub000/core/engagement"
	"github.com/Dafi-web/events-sub000/core/view"
	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/auth"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type HandlerSuite struct {
	suite.Suite
	engagementService *mocks.EngagementService
	router            *gin.Engine

	user  *domain.Actor
	admin *domain.Actor
	ref   domain.ContentRef
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) setup() {
	s.engagementService = new(mocks.EngagementService)
	s.router = gin.New()
	handler := v1beta1.NewHandler(s.engagementService, log.NewNoop(), "")
	handler.RegisterRoutes(s.router.Group("/api/v1beta1"))

	s.user = &domain.Actor{ID: "user-1", Role: domain.RoleUser}
	s.admin = &domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	s.ref = domain.ContentRef{Type: domain.ContentTypeEvent, ID: "event-1"}
}

func (s *HandlerSuite) serve(method, path, body string, actor *domain.Actor, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/v1beta1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	if actor != nil {
		req = req.WithContext(auth.WithActor(req.Context(), actor))
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerSuite) decode(w *httptest.ResponseRecorder, v interface{}) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v))
}

func (s *HandlerSuite) TestErrorMapping() {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"unauthenticated", engagement.ErrAuthenticationRequired, http.StatusUnauthorized},
		{"forbidden", engagement.ErrModeratorRequired, http.StatusForbidden},
		{"not found", comment.ErrCommentNotFound, http.StatusNotFound},
		{"validation", comment.ErrEmptyCommentBody, http.StatusBadRequest},
		{"conflict", comment.ErrCommentDeleted, http.StatusConflict},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.setup()
			s.engagementService.EXPECT().
				FlagComment(mock.Anything, "c1", s.user, "spam").
				Return(tc.err).Once()

			w := s.serve(http.MethodPost, "/comments/c1/flags", `{"reason":"spam"}`, s.user)

			s.Equal(tc.expectedCode, w.Code)
			if tc.expectedCode == http.StatusInternalServerError {
				s.NotContains(w.Body.String(), "connection refused")
			}
		})
	}
}

func (s *HandlerSuite) TestGetEngagementSummary() {
	s.Run("should return the summary for anonymous callers", func() {
		s.setup()
		expected := &domain.EngagementSummary{
			Content:      s.ref,
			LikeCount:    2,
			UserReaction: domain.ReactionNone,
			ViewCount:    7,
		}
		s.engagementService.EXPECT().
			GetEngagementSummary(mock.Anything, s.ref, (*domain.Actor)(nil)).
			Return(expected, nil).Once()

		w := s.serve(http.MethodGet, "/contents/event/event-1/engagement", "", nil)

		s.Equal(http.StatusOK, w.Code)
		var actual domain.EngagementSummary
		s.decode(w, &actual)
		s.Equal(*expected, actual)
	})
}

func (s *HandlerSuite) TestToggleReaction() {
	s.Run("should toggle a content reaction", func() {
		s.setup()
		expected := &domain.ReactionResult{
			ReactionCounts: domain.ReactionCounts{LikeCount: 1},
			UserReaction:   domain.ReactionLike,
		}
		s.engagementService.EXPECT().
			ToggleReaction(mock.Anything, domain.TargetRef{Kind: domain.TargetKindContent, ContentType: domain.ContentTypeEvent, ID: "event-1"}, s.user, domain.ReactionLike).
			Return(expected, nil).Once()

		w := s.serve(http.MethodPost, "/contents/event/event-1/reactions", `{"kind":"like"}`, s.user)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"like_count":1,"dislike_count":0,"user_reaction":"like"}`, w.Body.String())
	})

	s.Run("should toggle a comment reaction", func() {
		s.setup()
		s.engagementService.EXPECT().
			ToggleReaction(mock.Anything, domain.TargetRef{Kind: domain.TargetKindComment, ID: "c1"}, s.user, domain.ReactionDislike).
			Return(&domain.ReactionResult{UserReaction: domain.ReactionDislike}, nil).Once()

		w := s.serve(http.MethodPost, "/comments/c1/reactions", `{"kind":"dislike"}`, s.user)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("should reject a missing kind", func() {
		s.setup()

		w := s.serve(http.MethodPost, "/comments/c1/reactions", `{}`, s.user)

		s.Equal(http.StatusBadRequest, w.Code)
		s.engagementService.AssertNotCalled(s.T(), "ToggleReaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *HandlerSuite) TestComments() {
	s.Run("should create a reply", func() {
		s.setup()
		created := &domain.Comment{ID: "c2", ParentID: "c1", Body: "me too", CreatedBy: s.user.ID, Status: domain.CommentStatusActive}
		s.engagementService.EXPECT().
			CreateComment(mock.Anything, s.ref, s.user, "me too", "c1").
			Return(created, nil).Once()

		w := s.serve(http.MethodPost, "/contents/event/event-1/comments", `{"text":"me too","parent_id":"c1"}`, s.user)

		s.Equal(http.StatusCreated, w.Code)
		var actual struct {
			Comment domain.Comment `json:"comment"`
		}
		s.decode(w, &actual)
		s.Equal("c2", actual.Comment.ID)
	})

	s.Run("should reject malformed bodies", func() {
		s.setup()

		w := s.serve(http.MethodPost, "/contents/event/event-1/comments", `{"text":`, s.user)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("should list top-level comments with hidden ones on request", func() {
		s.setup()
		s.engagementService.EXPECT().
			ListTopLevelComments(mock.Anything, s.ref, s.admin, true).
			Return(nil, nil).Once()

		w := s.serve(http.MethodGet, "/contents/event/event-1/comments?include_hidden=true", "", s.admin)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"comments":[]}`, w.Body.String())
	})

	s.Run("should reject a non boolean include_hidden", func() {
		s.setup()

		w := s.serve(http.MethodGet, "/comments/c1/replies?include_hidden=maybe", "", nil)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("should list replies", func() {
		s.setup()
		s.engagementService.EXPECT().
			ListReplies(mock.Anything, "c1", (*domain.Actor)(nil), false).
			Return([]*domain.Comment{{ID: "c2", ParentID: "c1"}}, nil).Once()

		w := s.serve(http.MethodGet, "/comments/c1/replies", "", nil)

		s.Equal(http.StatusOK, w.Code)
		var actual struct {
			Comments []*domain.Comment `json:"comments"`
		}
		s.decode(w, &actual)
		s.Len(actual.Comments, 1)
	})

	s.Run("should moderate a comment", func() {
		s.setup()
		s.engagementService.EXPECT().
			ModerateComment(mock.Anything, "c1", s.admin, domain.ModerationActionHide, "off topic").
			Return(&domain.Comment{ID: "c1", Status: domain.CommentStatusHidden}, nil).Once()

		w := s.serve(http.MethodPost, "/comments/c1/moderation", `{"action":"hide","reason":"off topic"}`, s.admin)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("should list flagged comments", func() {
		s.setup()
		s.engagementService.EXPECT().
			ListFlaggedComments(mock.Anything, s.admin, domain.ListFlaggedCommentsFilter{
				MinFlags: 2,
				Statuses: []domain.CommentStatus{domain.CommentStatusActive, domain.CommentStatusHidden},
			}).
			Return([]*domain.Comment{{ID: "c1", FlagCount: 2}}, nil).Once()

		w := s.serve(http.MethodGet, "/moderation/flagged?min_flags=2&statuses=active,hidden", "", s.admin)

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("should reject an invalid min_flags", func() {
		s.setup()

		w := s.serve(http.MethodGet, "/moderation/flagged?min_flags=-1", "", s.admin)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HandlerSuite) TestListCommentEvents() {
	s.Run("should list the audit trail", func() {
		s.setup()
		s.engagementService.EXPECT().
			ListCommentEvents(mock.Anything, "c1", s.admin).
			Return(nil, nil).Once()

		w := s.serve(http.MethodGet, "/comments/c1/events", "", s.admin)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"events":[]}`, w.Body.String())
	})
}

func (s *HandlerSuite) TestRecordView() {
	s.Run("should pass the session header", func() {
		s.setup()
		s.engagementService.EXPECT().
			RecordView(mock.Anything, s.ref, "session-1").
			Return(&domain.ViewResult{Counted: true, TotalViews: 1}, nil).Once()

		w := s.serve(http.MethodPost, "/contents/event/event-1/views", "", nil, v1beta1.DefaultSessionHeader, "session-1")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"counted":true,"total_views":1}`, w.Body.String())
	})

	s.Run("should reject a missing session", func() {
		s.setup()
		s.engagementService.EXPECT().
			RecordView(mock.Anything, s.ref, "").
			Return(nil, view.ErrEmptySessionToken).Once()

		w := s.serve(http.MethodPost, "/contents/event/event-1/views", "", nil)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}
