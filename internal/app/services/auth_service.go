package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studentrecords/backend/internal/app/models"
	"github.com/studentrecords/backend/internal/app/repositories"
	"github.com/studentrecords/backend/internal/pkg/apperrors"
	"github.com/studentrecords/backend/internal/pkg/auth"
	"github.com/studentrecords/backend/internal/pkg/validation"
)

// AdminRules is the declarative rule table for admin registration
var AdminRules = &validation.RuleSet{
	Resource: "Admin",
	Rules: []validation.Rule{
		{Field: "email", Required: true, Normalizers: []validation.Normalizer{validation.Trim, validation.Lowercase}, Unique: true},
		{Field: "password", Required: true},
	},
}

// AuthService handles admin registration and login. Login establishes no
// session and issues no token; it is a bare credential check.
type AuthService struct {
	adminRepo repositories.IAdminRepository
	logger    zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminRepo repositories.IAdminRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Register creates a new admin account with a bcrypt-hashed password
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	candidate := map[string]any{
		"email":    email,
		"password": password,
	}

	fields, err := AdminRules.Apply(ctx, candidate, s.adminRepo)
	if err != nil {
		var dup *apperrors.DuplicateError
		if errors.As(err, &dup) {
			return apperrors.NewAlreadyExistsError("Admin already exists")
		}
		return err
	}

	hash, err := auth.HashPassword(fields["password"].(string))
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Email:    fields["email"].(string),
		Password: hash,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		var dup *apperrors.DuplicateError
		if errors.As(err, &dup) {
			return apperrors.NewAlreadyExistsError("Admin already exists")
		}
		return err
	}

	s.logger.Info().Str("email", admin.Email).Msg("Admin registered")
	return nil
}

// Login verifies admin credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return apperrors.ErrInvalidCredentials
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrInvalidCredentials
		}
		return err
	}

	if !auth.CheckPassword(admin.Password, password) {
		return apperrors.ErrInvalidCredentials
	}

	return nil
}
