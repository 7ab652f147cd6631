package handlers

import (
	"net/http"
	"time"

	"github.com/Avis17/karunya-draw-tracker/internal/models"
	"github.com/Avis17/karunya-draw-tracker/internal/services"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the authenticated result management endpoints. These
// return raw rows: the disclosure policy applies to viewers, not admins.
type AdminHandler struct {
	resultService services.ResultService
	loc           *time.Location
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(resultService services.ResultService, loc *time.Location) *AdminHandler {
	return &AdminHandler{
		resultService: resultService,
		loc:           loc,
	}
}

// GetResults handles GET /results?date=YYYY-MM-DD
func (h *AdminHandler) GetResults(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
		return
	}

	results, err := h.resultService.GetResultsForDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// UpsertResult handles POST /results
func (h *AdminHandler) UpsertResult(c *gin.Context) {
	var req models.UpsertResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdBy := c.GetString("userEmail")
	result, err := h.resultService.UpsertResult(c.Request.Context(), &req, createdBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteResult handles DELETE /results/:id
func (h *AdminHandler) DeleteResult(c *gin.Context) {
	if err := h.resultService.DeleteResult(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Result deleted"})
}
