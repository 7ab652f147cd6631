package handlers

import (
	"net/http"
	"time"

	"github.com/Avis17/karunya-draw-tracker/internal/services"
	"github.com/gin-gonic/gin"
)

// ResultHandler serves the viewer-facing board endpoints.
type ResultHandler struct {
	resultService services.ResultService
	loc           *time.Location
}

// NewResultHandler creates a new ResultHandler
func NewResultHandler(resultService services.ResultService, loc *time.Location) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
		loc:           loc,
	}
}

// GetHomeBoard handles GET /results/home — today's and yesterday's boards.
func (h *ResultHandler) GetHomeBoard(c *gin.Context) {
	home, err := h.resultService.GetHomeBoard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, home)
}

// GetBoard handles GET /results/board?date=YYYY-MM-DD (default: today).
func (h *ResultHandler) GetBoard(c *gin.Context) {
	date := time.Now().In(h.loc)
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
			return
		}
		date = parsed
	}

	board, err := h.resultService.GetBoard(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}
