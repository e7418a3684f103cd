package v1beta1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dafi-web/events-sub000/domain"
)

type toggleReactionRequest struct {
	Kind domain.ReactionKind `json:"kind" binding:"required"`
}

func (h *Handler) ToggleContentReaction(c *gin.Context) {
	ref := contentRefFromPath(c)
	h.toggleReaction(c, domain.TargetRef{
		Kind:        domain.TargetKindContent,
		ContentType: ref.Type,
		ID:          ref.ID,
	})
}

func (h *Handler) ToggleCommentReaction(c *gin.Context) {
	h.toggleReaction(c, domain.TargetRef{
		Kind: domain.TargetKindComment,
		ID:   c.Param("id"),
	})
}

func (h *Handler) toggleReaction(c *gin.Context, target domain.TargetRef) {
	var req toggleReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidArgument(c, err)
		return
	}

	result, err := h.engagementService.ToggleReaction(c.Request.Context(), target, actorFromRequest(c), req.Kind)
	if err != nil {
		h.handleError(c, err, "failed to toggle reaction")
		return
	}

	c.JSON(http.StatusOK, result)
}
