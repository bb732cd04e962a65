package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studentrecords/backend/internal/app/models"
	"github.com/studentrecords/backend/internal/app/models/dto"
	"github.com/studentrecords/backend/internal/app/repositories"
	"github.com/studentrecords/backend/internal/pkg/apperrors"
	"github.com/studentrecords/backend/internal/pkg/auth"
	"github.com/studentrecords/backend/internal/pkg/validation"
)

// StudentRules is the declarative rule table for student registration.
// Normalizers run before validation and before every uniqueness check.
var StudentRules = &validation.RuleSet{
	Resource: "Student",
	Rules: []validation.Rule{
		{Field: "name", Required: true, Normalizers: []validation.Normalizer{validation.Trim}},
		{Field: "rollNumber", Required: true, Normalizers: []validation.Normalizer{validation.Trim}, Unique: true},
		{Field: "email", Required: true, Normalizers: []validation.Normalizer{validation.Trim, validation.Lowercase}, Unique: true},
		{Field: "phoneNumber", Required: true, Normalizers: []validation.Normalizer{validation.Trim}},
		{Field: "currentSemester", Required: true, Min: 1, Max: 8},
		{Field: "program", Required: true, Normalizers: []validation.Normalizer{validation.Trim}, Enum: models.Programs()},
	},
}

// StudentService handles roster operations over validated student records
type StudentService struct {
	studentRepo     repositories.IStudentRepository
	defaultPassword string
	logger          zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository, defaultPassword string, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo:     studentRepo,
		defaultPassword: defaultPassword,
		logger:          logger,
	}
}

// Create validates the candidate against StudentRules and persists it. The
// rule engine's uniqueness pre-check is check-then-act; the repository maps
// the unique index rejection to the same DuplicateError, so a race between
// two creates still resolves to one winner.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	fields, err := StudentRules.Apply(ctx, req.Candidate(), s.studentRepo)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(s.defaultPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	student := &models.Student{
		Name:            fields["name"].(string),
		RollNumber:      fields["rollNumber"].(string),
		Email:           fields["email"].(string),
		PhoneNumber:     fields["phoneNumber"].(string),
		CurrentSemester: fields["currentSemester"].(int),
		Program:         models.Program(fields["program"].(string)),
		Password:        hash,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("rollNumber", student.RollNumber).Msg("Student registered")
	return student, nil
}

// List returns all students ordered by name ascending
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetByID fetches a single student; a malformed or unknown id is reported
// the same way, as not found
func (s *StudentService) GetByID(ctx context.Context, id string) (*models.Student, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("Student not found")
	}

	student, err := s.studentRepo.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Student not found")
		}
		return nil, err
	}
	return student, nil
}

// Delete removes a student and returns the deleted id
func (s *StudentService) Delete(ctx context.Context, id string) (string, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", apperrors.NewNotFoundError("Student not found")
	}

	if err := s.studentRepo.Delete(ctx, objectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewNotFoundError("Student not found")
		}
		return "", err
	}

	s.logger.Info().Str("id", id).Msg("Student removed")
	return id, nil
}

// Login authenticates a student by normalized email and password. Whether
// the email is unknown or the password wrong, the caller only learns that
// the credentials were invalid.
func (s *StudentService) Login(ctx context.Context, email, password string) (*models.Student, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(student.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return student, nil
}

// Clear wipes the roster. Debug helper kept off the documented surface.
func (s *StudentService) Clear(ctx context.Context) (int64, error) {
	count, err := s.studentRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Warn().Int64("count", count).Msg("All students cleared from database")
	return count, nil
}
