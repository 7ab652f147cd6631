// Package memory provides mutex-guarded in-memory implementations of the
// repository interfaces, used as test doubles and for running the API
// without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Avis17/karunya-draw-tracker/internal/models"
	"github.com/Avis17/karunya-draw-tracker/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResultRepository stores results keyed by (drawDate, slotTime).
type ResultRepository struct {
	mu      sync.Mutex
	results map[string]*models.LotteryResult
}

var _ repositories.ResultRepository = (*ResultRepository)(nil)

// NewResultRepository creates an empty in-memory result repository.
func NewResultRepository() *ResultRepository {
	return &ResultRepository{
		results: make(map[string]*models.LotteryResult),
	}
}

func key(date, slot string) string {
	return date + "|" + slot
}

// EnsureIndexes is a no-op; the map key already enforces uniqueness.
func (r *ResultRepository) EnsureIndexes(_ context.Context) error {
	return nil
}

// FindByDate returns copies of all results for the day, ordered by slot time.
func (r *ResultRepository) FindByDate(_ context.Context, date string) ([]*models.LotteryResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := []*models.LotteryResult{}
	for _, stored := range r.results {
		if stored.DrawDate == date {
			clone := *stored
			results = append(results, &clone)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].SlotTime < results[j].SlotTime
	})
	return results, nil
}

// FindByDateAndSlot returns a copy of the result for the pair, if any.
func (r *ResultRepository) FindByDateAndSlot(_ context.Context, date, slot string) (*models.LotteryResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.results[key(date, slot)]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *stored
	return &clone, nil
}

// Upsert inserts or replaces the result for the pair under one lock, mirroring
// the atomic upsert of the mongo implementation.
func (r *ResultRepository) Upsert(_ context.Context, result *models.LotteryResult) (*models.LotteryResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	k := key(result.DrawDate, result.SlotTime)
	if existing, ok := r.results[k]; ok {
		existing.ResultNumber = result.ResultNumber
		existing.CreatedBy = result.CreatedBy
		existing.UpdatedAt = now
		clone := *existing
		return &clone, nil
	}

	stored := &models.LotteryResult{
		ID:           primitive.NewObjectID(),
		DrawDate:     result.DrawDate,
		SlotTime:     result.SlotTime,
		ResultNumber: result.ResultNumber,
		CreatedBy:    result.CreatedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.results[k] = stored
	clone := *stored
	return &clone, nil
}

// Delete removes a result by ID.
func (r *ResultRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k, stored := range r.results {
		if stored.ID == id {
			delete(r.results, k)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// Count reports the number of stored rows. Tests use it to assert that
// invalid writes never reach the store.
func (r *ResultRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}
