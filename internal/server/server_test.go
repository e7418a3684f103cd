package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Dafi-web/events-sub000/core/engagement"
	"github.com/Dafi-web/events-sub000/core/engagement/mocks"
	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/internal/server"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(contentService *mocks.ContentService, commentService *mocks.CommentService) *gin.Engine {
	cfg := &server.Config{
		Auth:    server.Auth{UserIDHeader: "X-User-Id", RoleHeader: "X-User-Role"},
		Session: server.Session{Header: "X-Session-Token"},
	}
	svc := engagement.NewService(engagement.ServiceDeps{
		ContentService:  contentService,
		CommentService:  commentService,
		ReactionService: new(mocks.ReactionService),
		ViewService:     new(mocks.ViewService),
		EventService:    new(mocks.EventService),
		Logger:          log.NewNoop(),
	})
	return server.NewRouter(cfg, log.NewNoop(), svc)
}

func TestNewRouter(t *testing.T) {
	ref := domain.ContentRef{Type: domain.ContentTypeNews, ID: "n1"}

	t.Run("should answer ping", func(t *testing.T) {
		router := newTestRouter(new(mocks.ContentService), new(mocks.CommentService))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should authenticate moderators from headers", func(t *testing.T) {
		contentService := new(mocks.ContentService)
		commentService := new(mocks.CommentService)
		contentService.EXPECT().CheckExists(mock.Anything, ref).Return(nil).Once()
		commentService.EXPECT().
			ListTopLevel(mock.Anything, ref, domain.ListCommentsOptions{IncludeHidden: true}).
			Return([]*domain.Comment{}, nil).Once()
		router := newTestRouter(contentService, commentService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1beta1/contents/news/n1/comments?include_hidden=true", nil)
		req.Header.Set("X-User-Id", "admin-1")
		req.Header.Set("X-User-Role", "admin")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		commentService.AssertExpectations(t)
	})

	t.Run("should treat requests without identity as anonymous", func(t *testing.T) {
		router := newTestRouter(new(mocks.ContentService), new(mocks.CommentService))

		req := httptest.NewRequest(http.MethodPost, "/api/v1beta1/comments/c1/flags", nil)
		req.Header.Set("Content-Type", "application/json")
		req.Body = http.NoBody
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		req = httptest.NewRequest(http.MethodGet, "/api/v1beta1/contents/news/n1/comments?include_hidden=true", nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("should require redis addresses for the redis view store", func(t *testing.T) {
		cfg := server.Config{View: server.View{Store: server.ViewStoreRedis}}

		assert.Error(t, cfg.Validate())
	})

	t.Run("should reject unknown view stores", func(t *testing.T) {
		cfg := server.Config{View: server.View{Store: "memcached"}}

		assert.Error(t, cfg.Validate())
	})

	t.Run("should accept the postgres view store", func(t *testing.T) {
		cfg := server.Config{View: server.View{Store: server.ViewStorePostgres}}

		assert.NoError(t, cfg.Validate())
	})
}
