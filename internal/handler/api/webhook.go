package api

import (
	"errors"
	"net/http"

	reqdto "enroll-ledger/internal/handler/dto/request"
	resdto "enroll-ledger/internal/handler/dto/response"
	"enroll-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	reconcileCommands commands.ReconcileCommands
}

func NewWebhookHandler(reconcileCommands commands.ReconcileCommands) *WebhookHandler {
	return &WebhookHandler{
		reconcileCommands: reconcileCommands,
	}
}

// @Summary Payment confirmation webhook
// @Description Reconcile a completed payment into a confirmed or waitlisted enrollment
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentWebhookRequest true "Payment notification"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *WebhookHandler) ReconcilePayment(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reconcileCommands.ReconcilePayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSectionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Section not found",
			})
		case errors.Is(err, commands.ErrInvalidPlan):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid enrollment plan",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Duplicate deliveries land here too: the provider retries until it sees 200.
	c.JSON(http.StatusOK, resdto.FromReconcileResult(result))
}
