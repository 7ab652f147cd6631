package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Avis17/karunya-draw-tracker/internal/models"
	"github.com/Avis17/karunya-draw-tracker/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUserRepository stores admin users keyed by email.
type AdminUserRepository struct {
	mu    sync.Mutex
	users map[string]*models.AdminUser
}

var _ repositories.AdminUserRepository = (*AdminUserRepository)(nil)

// NewAdminUserRepository creates an empty in-memory admin user repository.
func NewAdminUserRepository() *AdminUserRepository {
	return &AdminUserRepository{
		users: make(map[string]*models.AdminUser),
	}
}

// Create inserts a new admin user.
func (r *AdminUserRepository) Create(_ context.Context, adminUser *models.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	adminUser.ID = primitive.NewObjectID()
	adminUser.CreatedAt = time.Now()
	adminUser.UpdatedAt = time.Now()
	clone := *adminUser
	r.users[adminUser.Email] = &clone
	return nil
}

// FindByEmail finds an admin user by email.
func (r *AdminUserRepository) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *stored
	return &clone, nil
}

// FindByID finds an admin user by ID.
func (r *AdminUserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, stored := range r.users {
		if stored.ID == id {
			clone := *stored
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}
