package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Avis17/karunya-draw-tracker/internal/models"
	"github.com/Avis17/karunya-draw-tracker/internal/policy"
	"github.com/Avis17/karunya-draw-tracker/internal/repositories/memory"
	"github.com/Avis17/karunya-draw-tracker/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newBoardRouter(t *testing.T, repo *memory.ResultRepository, now time.Time) *gin.Engine {
	t.Helper()
	slots, err := policy.ParseSlots([]string{"10:20", "12:20", "14:20", "16:20", "18:20"})
	require.NoError(t, err)
	svc := services.NewResultServiceWithClock(repo, slots, time.UTC, func() time.Time { return now })
	handler := NewResultHandler(svc, time.UTC)

	router := gin.New()
	router.GET("/api/v1/results/board", handler.GetBoard)
	router.GET("/api/v1/results/home", handler.GetHomeBoard)
	return router
}

func TestGetBoardDisclosesOnlyElapsedSlots(t *testing.T) {
	repo := memory.NewResultRepository()
	_, err := repo.Upsert(context.Background(), &models.LotteryResult{
		DrawDate: "2024-06-01", SlotTime: "10:20", ResultNumber: "123456",
	})
	require.NoError(t, err)
	_, err = repo.Upsert(context.Background(), &models.LotteryResult{
		DrawDate: "2024-06-01", SlotTime: "12:20", ResultNumber: "777777",
	})
	require.NoError(t, err)

	now := time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC)
	router := newBoardRouter(t, repo, now)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/results/board?date=2024-06-01", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var board models.Board
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Equal(t, "2024-06-01", board.Date)
	require.Len(t, board.Slots, 5)

	byTime := make(map[string]models.BoardSlot)
	for _, slot := range board.Slots {
		byTime[slot.SlotTime] = slot
	}
	assert.Equal(t, models.SlotStatePublished, byTime["10:20"].State)
	assert.Equal(t, "123456", byTime["10:20"].ResultNumber)
	assert.Equal(t, models.SlotStateHidden, byTime["12:20"].State)
	assert.Empty(t, byTime["12:20"].ResultNumber)

	// The raw JSON must not contain the undisclosed digits anywhere
	assert.NotContains(t, w.Body.String(), "777777")
}

func TestGetBoardRejectsBadDate(t *testing.T) {
	router := newBoardRouter(t, memory.NewResultRepository(), time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/results/board?date=junk", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHomeBoardReturnsTodayAndYesterday(t *testing.T) {
	repo := memory.NewResultRepository()
	_, err := repo.Upsert(context.Background(), &models.LotteryResult{
		DrawDate: "2024-05-31", SlotTime: "18:20", ResultNumber: "424242",
	})
	require.NoError(t, err)

	now := time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC)
	router := newBoardRouter(t, repo, now)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/results/home", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var home models.HomeBoard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &home))
	assert.Equal(t, "2024-06-01", home.Today.Date)
	assert.Equal(t, "2024-05-31", home.Yesterday.Date)
	assert.Contains(t, w.Body.String(), "424242")
}
