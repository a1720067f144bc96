package api

import (
	"errors"
	"net/http"

	reqdto "enroll-ledger/internal/handler/dto/request"
	resdto "enroll-ledger/internal/handler/dto/response"
	"enroll-ledger/internal/usecase/commands"
	"enroll-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	sectionCommands  commands.SectionCommands
	waitlistCommands commands.WaitlistCommands
	waitlistQueries  queries.WaitlistQueries
}

func NewAdminHandler(
	sectionCommands commands.SectionCommands,
	waitlistCommands commands.WaitlistCommands,
	waitlistQueries queries.WaitlistQueries,
) *AdminHandler {
	return &AdminHandler{
		sectionCommands:  sectionCommands,
		waitlistCommands: waitlistCommands,
		waitlistQueries:  waitlistQueries,
	}
}

// @Summary Create section
// @Description Create a new enrollable section
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSectionRequest true "Section definition"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/sections [post]
func (h *AdminHandler) CreateSection(c *gin.Context) {
	var req reqdto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.sectionCommands.CreateSection(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSectionValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid section definition",
			})
		case errors.Is(err, commands.ErrDuplicateSection):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Section already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List section waitlist
// @Description List waitlisted enrollments for a section in promotion order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Success 200 {object} resdto.WaitlistResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/sections/{id}/waitlist [get]
func (h *AdminHandler) ListWaitlist(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid section ID format",
		})
		return
	}

	entries, err := h.waitlistQueries.ListBySection(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSectionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Section not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWaitlistEntries(entries))
}

// @Summary Promote waitlisted enrollment
// @Description Promote a waitlisted enrollment into a confirmed seat
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Success 200 {object} resdto.PromoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/enrollments/{id}/promote [post]
func (h *AdminHandler) PromoteEnrollment(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid enrollment ID format",
		})
		return
	}

	result, err := h.waitlistCommands.Promote(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEnrollmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Enrollment not found",
			})
		case errors.Is(err, commands.ErrNotWaitlisted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Enrollment is not waitlisted",
			})
		case errors.Is(err, commands.ErrSectionFull):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Section is at capacity",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromoteResult(result))
}
