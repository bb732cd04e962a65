package services

import (
	"context"
	"errors"
	"strings"

	"github.com/studentrecords/backend/internal/app/models"
	"github.com/studentrecords/backend/internal/app/repositories"
	"github.com/studentrecords/backend/internal/pkg/apperrors"
)

// ResultService serves read-only result sheet lookups
type ResultService struct {
	resultRepo repositories.IResultRepository
}

// NewResultService creates a new result service instance
func NewResultService(resultRepo repositories.IResultRepository) *ResultService {
	return &ResultService{
		resultRepo: resultRepo,
	}
}

// GetByStudentID fetches the result sheet keyed by student identifier
func (s *ResultService) GetByStudentID(ctx context.Context, studentID string) (*models.Result, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, apperrors.NewNotFoundError("Results not found for this student")
	}

	result, err := s.resultRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Results not found for this student")
		}
		return nil, err
	}
	return result, nil
}
