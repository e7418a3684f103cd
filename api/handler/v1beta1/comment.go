package v1beta1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Dafi-web/events-sub000/domain"
)

type createCommentRequest struct {
	Text     string `json:"text"`
	ParentID string `json:"parent_id,omitempty"`
}

type flagCommentRequest struct {
	Reason string `json:"reason"`
}

type moderateCommentRequest struct {
	Action domain.ModerationAction `json:"action" binding:"required"`
	Reason string                  `json:"reason"`
}

type listCommentsResponse struct {
	Comments []*domain.Comment `json:"comments"`
}

type commentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

func newListCommentsResponse(comments []*domain.Comment) listCommentsResponse {
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return listCommentsResponse{Comments: comments}
}

func (h *Handler) ListTopLevelComments(c *gin.Context) {
	includeHidden, err := parseBoolQuery(c, "include_hidden")
	if err != nil {
		h.invalidArgument(c, err)
		return
	}

	comments, err := h.engagementService.ListTopLevelComments(c.Request.Context(), contentRefFromPath(c), actorFromRequest(c), includeHidden)
	if err != nil {
		h.handleError(c, err, "failed to list comments")
		return
	}

	c.JSON(http.StatusOK, newListCommentsResponse(comments))
}

func (h *Handler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidArgument(c, err)
		return
	}

	comment, err := h.engagementService.CreateComment(c.Request.Context(), contentRefFromPath(c), actorFromRequest(c), req.Text, req.ParentID)
	if err != nil {
		h.handleError(c, err, "failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, commentResponse{Comment: comment})
}

func (h *Handler) ListReplies(c *gin.Context) {
	includeHidden, err := parseBoolQuery(c, "include_hidden")
	if err != nil {
		h.invalidArgument(c, err)
		return
	}

	replies, err := h.engagementService.ListReplies(c.Request.Context(), c.Param("id"), actorFromRequest(c), includeHidden)
	if err != nil {
		h.handleError(c, err, "failed to list replies")
		return
	}

	c.JSON(http.StatusOK, newListCommentsResponse(replies))
}

func (h *Handler) FlagComment(c *gin.Context) {
	var req flagCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidArgument(c, err)
		return
	}

	if err := h.engagementService.FlagComment(c.Request.Context(), c.Param("id"), actorFromRequest(c), req.Reason); err != nil {
		h.handleError(c, err, "failed to flag comment")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ModerateComment(c *gin.Context) {
	var req moderateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidArgument(c, err)
		return
	}

	comment, err := h.engagementService.ModerateComment(c.Request.Context(), c.Param("id"), actorFromRequest(c), req.Action, req.Reason)
	if err != nil {
		h.handleError(c, err, "failed to moderate comment")
		return
	}

	c.JSON(http.StatusOK, commentResponse{Comment: comment})
}

func (h *Handler) ListFlaggedComments(c *gin.Context) {
	filter := domain.ListFlaggedCommentsFilter{}
	if v := c.Query("min_flags"); v != "" {
		minFlags, err := strconv.Atoi(v)
		if err != nil || minFlags < 0 {
			h.invalidArgument(c, errInvalidMinFlags)
			return
		}
		filter.MinFlags = minFlags
	}
	for _, s := range parseCommaSeparatedValues(c.QueryArray("statuses")) {
		filter.Statuses = append(filter.Statuses, domain.CommentStatus(s))
	}

	comments, err := h.engagementService.ListFlaggedComments(c.Request.Context(), actorFromRequest(c), filter)
	if err != nil {
		h.handleError(c, err, "failed to list flagged comments")
		return
	}

	c.JSON(http.StatusOK, newListCommentsResponse(comments))
}

type listEventsResponse struct {
	Events []*domain.Event `json:"events"`
}

func (h *Handler) ListCommentEvents(c *gin.Context) {
	events, err := h.engagementService.ListCommentEvents(c.Request.Context(), c.Param("id"), actorFromRequest(c))
	if err != nil {
		h.handleError(c, err, "failed to list comment events")
		return
	}

	if events == nil {
		events = []*domain.Event{}
	}
	c.JSON(http.StatusOK, listEventsResponse{Events: events})
}
