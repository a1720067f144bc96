package api

import (
	"errors"
	"net/http"

	reqdto "enroll-ledger/internal/handler/dto/request"
	resdto "enroll-ledger/internal/handler/dto/response"
	"enroll-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Initiate checkout
// @Description Start a payment session for a section enrollment
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) InitiateCheckout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkoutCommands.InitiateCheckout(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSectionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Section not found",
			})
		case errors.Is(err, commands.ErrSectionFull):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Section is at capacity",
			})
		case errors.Is(err, commands.ErrInvalidPlan):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid enrollment plan",
			})
		case errors.Is(err, commands.ErrCheckoutNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Checkout is not available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}
