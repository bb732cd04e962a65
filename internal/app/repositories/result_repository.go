package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studentrecords/backend/internal/app/models"
	"github.com/studentrecords/backend/internal/pkg/apperrors"
	"github.com/studentrecords/backend/internal/pkg/dberrors"
)

// IResultRepository defines database operations for result sheets. The API
// only reads results; Create exists for the external seeding path.
type IResultRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, result *models.Result) error
	GetByStudentID(ctx context.Context, studentID string) (*models.Result, error)
	Exists(ctx context.Context, field, value string) (bool, error)
}

// ResultRepository handles database operations for results
type ResultRepository struct {
	collection *mongo.Collection
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{
		collection: db.Collection(ResultCollection),
	}
}

// EnsureIndexes creates the unique index on studentId
func (r *ResultRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "studentId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create inserts a result sheet
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	res, err := r.collection.InsertOne(ctx, result)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return &apperrors.DuplicateError{Resource: "Result", Field: "studentId"}
		}
		return fmt.Errorf("error inserting result: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = id
	}
	return nil
}

// GetByStudentID retrieves the result sheet for one student
func (r *ResultRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Result, error) {
	var result models.Result
	err := r.collection.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving result: %w", err)
	}
	return &result, nil
}

// Exists checks whether any result holds the given field value
func (r *ResultRepository) Exists(ctx context.Context, field, value string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{field: value}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking result existence: %w", err)
	}
	return count > 0, nil
}
