package repositories

import (
	"context"
	"errors"

	"github.com/Avis17/karunya-draw-tracker/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a lookup matches no document. Implementations
// translate their driver's sentinel into this one.
var ErrNotFound = errors.New("not found")

// ResultRepository defines the interface for lottery result data operations
type ResultRepository interface {
	// FindByDate returns all results for the canonical YYYY-MM-DD day,
	// ordered by slot time ascending.
	FindByDate(ctx context.Context, date string) ([]*models.LotteryResult, error)
	FindByDateAndSlot(ctx context.Context, date, slot string) (*models.LotteryResult, error)
	// Upsert atomically inserts or replaces the result for the
	// (drawDate, slotTime) pair and returns the stored row. The pair is
	// unique at the storage layer, so concurrent writes cannot duplicate it.
	Upsert(ctx context.Context, result *models.LotteryResult) (*models.LotteryResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// EnsureIndexes creates the unique (drawDate, slotTime) index. Called
	// once at startup.
	EnsureIndexes(ctx context.Context) error
}

// AdminUserRepository defines the interface for admin user data operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
}
