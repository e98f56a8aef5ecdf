package api

import (
	"alcyxob/trainer-console/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConfirmationHandler answers the prompts parked by delete requests.
type ConfirmationHandler struct {
	confirmations service.ConfirmationBroker
	log           *zap.SugaredLogger
}

func NewConfirmationHandler(confirmations service.ConfirmationBroker, log *zap.SugaredLogger) *ConfirmationHandler {
	return &ConfirmationHandler{confirmations: confirmations, log: log}
}

type ResolveConfirmationRequest struct {
	Confirm *bool `json:"confirm" binding:"required"`
}

type ResolveConfirmationResponse struct {
	Confirmed bool `json:"confirmed"`
}

// ResolveConfirmation godoc
// @Summary Answer a pending confirmation
// @Description {"confirm": true} performs the parked deletion, false drops it.
// @Tags Confirmations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param confirmationId path string true "Confirmation ID"
// @Param answer body ResolveConfirmationRequest true "Answer"
// @Success 200 {object} ResolveConfirmationResponse
// @Failure 404 {object} gin.H "Unknown or expired confirmation"
// @Router /confirmations/{confirmationId} [post]
func (h *ConfirmationHandler) ResolveConfirmation(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}
	var req ResolveConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	done, err := h.confirmations.Resolve(c.Request.Context(), userID, c.Param("confirmationId"), *req.Confirm)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ResolveConfirmationResponse{Confirmed: done})
}
