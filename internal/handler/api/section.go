package api

import (
	"errors"
	"net/http"

	resdto "enroll-ledger/internal/handler/dto/response"
	"enroll-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SectionHandler struct {
	sectionQueries queries.SectionQueries
}

func NewSectionHandler(sectionQueries queries.SectionQueries) *SectionHandler {
	return &SectionHandler{
		sectionQueries: sectionQueries,
	}
}

// @Summary List sections
// @Description List all sections with their occupancy
// @Tags sections
// @Produce json
// @Success 200 {object} resdto.SectionListResponse
// @Router /sections [get]
func (h *SectionHandler) ListSections(c *gin.Context) {
	views, err := h.sectionQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSectionViews(views))
}

// @Summary Get section
// @Description Get a section by ID
// @Tags sections
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} resdto.SectionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sections/{id} [get]
func (h *SectionHandler) GetSection(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid section ID format",
		})
		return
	}

	view, err := h.sectionQueries.GetByID(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, resdto.FromSectionView(view))
}
