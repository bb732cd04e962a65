package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studentrecords/backend/internal/app/models"
	"github.com/studentrecords/backend/internal/pkg/apperrors"
	"github.com/studentrecords/backend/internal/pkg/dberrors"
)

// IStudentRepository defines database operations for student records
type IStudentRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, student *models.Student) error
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) (int64, error)
	Exists(ctx context.Context, field, value string) (bool, error)
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{
		collection: db.Collection(StudentCollection),
	}
}

// EnsureIndexes creates the unique indexes on rollNumber and email
func (r *StudentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "rollNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

// Create inserts a new student record. A duplicate-key rejection from the
// unique index is mapped to DuplicateError; the index, not the caller's
// pre-check, is the final word on uniqueness.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			field := dberrors.DuplicateKeyField(err)
			if field == "" {
				field = "rollNumber"
			}
			return &apperrors.DuplicateError{Resource: "Student", Field: field}
		}
		return fmt.Errorf("error inserting student: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		student.ID = id
	}
	return nil
}

// GetAll retrieves all students ordered by name ascending
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("error fetching students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}

	return students, nil
}

// GetByID retrieves a student by internal id
func (r *StudentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// GetByEmail retrieves a student by normalized email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}
	return &student, nil
}

// Delete removes a student by id
func (r *StudentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAll wipes the collection and returns the number of removed records
func (r *StudentRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error clearing students: %w", err)
	}
	return res.DeletedCount, nil
}

// Exists checks whether any student holds the given field value
func (r *StudentRepository) Exists(ctx context.Context, field, value string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{field: value}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return count > 0, nil
}
