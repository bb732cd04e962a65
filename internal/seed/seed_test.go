package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studentrecords/backend/internal/app/models"
	"github.com/studentrecords/backend/internal/pkg/apperrors"
)

type memResultRepo struct {
	results []models.Result
}

func (m *memResultRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (m *memResultRepo) Create(ctx context.Context, result *models.Result) error {
	for _, r := range m.results {
		if r.StudentID == result.StudentID {
			return &apperrors.DuplicateError{Resource: "Result", Field: "studentId"}
		}
	}
	result.ID = primitive.NewObjectID()
	m.results = append(m.results, *result)
	return nil
}

func (m *memResultRepo) GetByStudentID(ctx context.Context, studentID string) (*models.Result, error) {
	for _, r := range m.results {
		if r.StudentID == studentID {
			result := r
			return &result, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memResultRepo) Exists(ctx context.Context, field, value string) (bool, error) {
	for _, r := range m.results {
		if field == "studentId" && r.StudentID == value {
			return true, nil
		}
	}
	return false, nil
}

const seedFile = `[
  {"studentId": "CS101", "subjects": [{"name": "Data Structures", "marks": 82}], "totalMarks": 82, "percentage": 82, "grade": "A"},
  {"studentId": "CS102", "subjects": [{"name": "Data Structures", "marks": 64}], "totalMarks": 64, "percentage": 64, "grade": "C+"},
  {"subjects": [], "totalMarks": 0, "percentage": 0, "grade": "F"}
]`

func TestLoadResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte(seedFile), 0o644))

	repo := &memResultRepo{
		// CS101 already present; seeding must not duplicate it
		results: []models.Result{{StudentID: "CS101", Grade: "A"}},
	}

	err := LoadResults(context.Background(), path, repo, zerolog.Nop())
	require.NoError(t, err)

	// CS102 added, CS101 untouched, the entry without studentId skipped
	require.Len(t, repo.results, 2)
	assert.Equal(t, "CS101", repo.results[0].StudentID)
	assert.Equal(t, "CS102", repo.results[1].StudentID)
}

func TestLoadResults_EmptyPathIsNoop(t *testing.T) {
	repo := &memResultRepo{}
	require.NoError(t, LoadResults(context.Background(), "", repo, zerolog.Nop()))
	assert.Empty(t, repo.results)
}

func TestLoadResults_MissingFile(t *testing.T) {
	repo := &memResultRepo{}
	err := LoadResults(context.Background(), filepath.Join(t.TempDir(), "absent.json"), repo, zerolog.Nop())
	assert.Error(t, err)
}
