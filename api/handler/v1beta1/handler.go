package v1beta1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dafi-web/events-sub000/domain"
	"github.com/Dafi-web/events-sub000/pkg/auth"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

const DefaultSessionHeader = "X-Session-Token"

//go:generate mockery --name=engagementService --exported --with-expecter
type engagementService interface {
	GetEngagementSummary(ctx context.Context, ref domain.ContentRef, actor *domain.Actor) (*domain.EngagementSummary, error)
	ToggleReaction(ctx context.Context, ref domain.TargetRef, actor *domain.Actor, kind domain.ReactionKind) (*domain.ReactionResult, error)
	CreateComment(ctx context.Context, ref domain.ContentRef, actor *domain.Actor, body, parentID string) (*domain.Comment, error)
	ListTopLevelComments(ctx context.Context, ref domain.ContentRef, actor *domain.Actor, includeHidden bool) ([]*domain.Comment, error)
	ListReplies(ctx context.Context, parentID string, actor *domain.Actor, includeHidden bool) ([]*domain.Comment, error)
	FlagComment(ctx context.Context, commentID string, actor *domain.Actor, reason string) error
	ModerateComment(ctx context.Context, commentID string, actor *domain.Actor, action domain.ModerationAction, reason string) (*domain.Comment, error)
	ListFlaggedComments(ctx context.Context, actor *domain.Actor, filter domain.ListFlaggedCommentsFilter) ([]*domain.Comment, error)
	RecordView(ctx context.Context, ref domain.ContentRef, sessionToken string) (*domain.ViewResult, error)
	ListCommentEvents(ctx context.Context, commentID string, actor *domain.Actor) ([]*domain.Event, error)
}

type Handler struct {
	engagementService engagementService
	logger            log.Logger
	sessionHeader     string
}

func NewHandler(engagementService engagementService, logger log.Logger, sessionHeader string) *Handler {
	if sessionHeader == "" {
		sessionHeader = DefaultSessionHeader
	}
	return &Handler{
		engagementService: engagementService,
		logger:            logger,
		sessionHeader:     sessionHeader,
	}
}

// RegisterRoutes mounts the engagement endpoints on r. The caller identity is
// read from the request context, see auth.WithActor.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	contents := r.Group("/contents/:type/:id")
	{
		contents.GET("/engagement", h.GetEngagementSummary)
		contents.GET("/comments", h.ListTopLevelComments)
		contents.POST("/comments", h.CreateComment)
		contents.POST("/reactions", h.ToggleContentReaction)
		contents.POST("/views", h.RecordView)
	}

	comments := r.Group("/comments/:id")
	{
		comments.GET("/replies", h.ListReplies)
		comments.POST("/reactions", h.ToggleCommentReaction)
		comments.POST("/flags", h.FlagComment)
		comments.POST("/moderation", h.ModerateComment)
		comments.GET("/events", h.ListCommentEvents)
	}

	r.GET("/moderation/flagged", h.ListFlaggedComments)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func actorFromRequest(c *gin.Context) *domain.Actor {
	return auth.ActorFromContext(c.Request.Context())
}

func contentRefFromPath(c *gin.Context) domain.ContentRef {
	return domain.ContentRef{
		Type: domain.ContentType(c.Param("type")),
		ID:   c.Param("id"),
	}
}

func (h *Handler) invalidArgument(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Code: "invalid_argument", Message: err.Error()})
}

// handleError maps an error class to its status code. Unclassified errors
// are logged and reported as internal errors without details.
func (h *Handler) handleError(c *gin.Context, err error, msg string) {
	var status int
	var code string
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, domain.ErrForbidden):
		status, code = http.StatusForbidden, "permission_denied"
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrValidation):
		status, code = http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, domain.ErrConflict):
		status, code = http.StatusConflict, "conflict"
	default:
		h.logger.Error(c.Request.Context(), msg, "error", err, "path", c.FullPath())
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Code: "internal", Message: msg})
		return
	}
	c.AbortWithStatusJSON(status, errorResponse{Code: code, Message: err.Error()})
}
