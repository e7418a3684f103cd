package v1beta1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetEngagementSummary(c *gin.Context) {
	summary, err := h.engagementService.GetEngagementSummary(c.Request.Context(), contentRefFromPath(c), actorFromRequest(c))
	if err != nil {
		h.handleError(c, err, "failed to get engagement summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// RecordView counts a view for the session identified by the session header.
func (h *Handler) RecordView(c *gin.Context) {
	result, err := h.engagementService.RecordView(c.Request.Context(), contentRefFromPath(c), c.GetHeader(h.sessionHeader))
	if err != nil {
		h.handleError(c, err, "failed to record view")
		return
	}

	c.JSON(http.StatusOK, result)
}
