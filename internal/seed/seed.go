// Package seed loads externally produced result sheets into the results
// collection at startup. The API itself never writes results.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/studentrecords/backend/internal/app/models"
	"github.com/studentrecords/backend/internal/app/repositories"
	"github.com/studentrecords/backend/internal/pkg/apperrors"
)

// LoadResults reads a JSON array of result documents from path and inserts
// the ones whose studentId is not already present. A missing or empty path
// disables seeding. Individual insert conflicts are logged and skipped so a
// re-run with the same file is harmless.
func LoadResults(ctx context.Context, path string, resultRepo repositories.IResultRepository, lgr zerolog.Logger) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read results seed file: %w", err)
	}

	var results []models.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return fmt.Errorf("failed to parse results seed file: %w", err)
	}

	seeded := 0
	for i := range results {
		result := results[i]
		if result.StudentID == "" {
			lgr.Warn().Int("index", i).Msg("Skipping seed result without studentId")
			continue
		}

		exists, err := resultRepo.Exists(ctx, "studentId", result.StudentID)
		if err != nil {
			return fmt.Errorf("failed to check existing result for %s: %w", result.StudentID, err)
		}
		if exists {
			continue
		}

		if err := resultRepo.Create(ctx, &result); err != nil {
			// Lost a race with a concurrent seeder; the record is there
			if errors.Is(err, apperrors.ErrAlreadyExists) {
				continue
			}
			return fmt.Errorf("failed to seed result for %s: %w", result.StudentID, err)
		}
		seeded++
	}

	lgr.Info().Int("seeded", seeded).Int("total", len(results)).Str("file", path).Msg("Result seeding complete")
	return nil
}
