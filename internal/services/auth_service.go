package services

import (
	"context"
	"errors"
	"time"

	"github.com/Avis17/karunya-draw-tracker/internal/config"
	"github.com/Avis17/karunya-draw-tracker/internal/models"
	"github.com/Avis17/karunya-draw-tracker/internal/repositories"
	"github.com/Avis17/karunya-draw-tracker/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService defines the interface for admin authentication operations
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	CreateAdmin(ctx context.Context, name, email, password, role string) (*models.AdminUser, error)
}

type authService struct {
	adminRepo repositories.AdminUserRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(adminRepo repositories.AdminUserRepository, cfg *config.Config) AuthService {
	return &authService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Login verifies admin credentials and issues a JWT session token.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Same message as a bad password so the response does not reveal
			// which accounts exist.
			return nil, &models.AuthError{Message: "invalid credentials"}
		}
		return nil, &models.StoreError{Op: "read", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, &models.AuthError{Message: "invalid credentials"}
	}

	token, err := jwt.Generate(admin.ID.Hex(), admin.Email, admin.Role, s.cfg.JWT.Secret, s.cfg.JWT.ExpiresIn)
	if err != nil {
		return nil, err
	}

	admin.Password = ""
	return &models.LoginResponse{Token: token, User: admin}, nil
}

// CreateAdmin creates an admin account with a bcrypt-hashed password.
func (s *authService) CreateAdmin(ctx context.Context, name, email, password, role string) (*models.AdminUser, error) {
	if _, err := s.adminRepo.FindByEmail(ctx, email); err == nil {
		return nil, models.NewValidationError("admin with email %s already exists", email)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, &models.StoreError{Op: "read", Err: err}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &models.AdminUser{
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, &models.StoreError{Op: "write", Err: err}
	}

	admin.Password = ""
	return admin, nil
}
