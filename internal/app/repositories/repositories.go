// Package repositories holds the MongoDB persistence accessors. Each
// repository owns one collection and exposes context-first operations;
// unique indexes are created at startup and remain the durable guard
// against duplicate writes under concurrent requests.
package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names
const (
	StudentCollection = "students"
	AdminCollection   = "admins"
	ResultCollection  = "results"
)

// Repositories is the container for all repository instances, built once per
// process and passed by reference to services.
type Repositories struct {
	StudentRepository IStudentRepository
	AdminRepository   IAdminRepository
	ResultRepository  IResultRepository
}

// NewRepositories creates all repositories backed by the given database
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		AdminRepository:   NewAdminRepository(db),
		ResultRepository:  NewResultRepository(db),
	}
}

// EnsureIndexes creates the unique indexes every repository relies on.
// Index creation is idempotent on the server side.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	if err := r.StudentRepository.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("student indexes: %w", err)
	}
	if err := r.AdminRepository.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("admin indexes: %w", err)
	}
	if err := r.ResultRepository.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("result indexes: %w", err)
	}
	return nil
}
