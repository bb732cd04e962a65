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

// IAdminRepository defines database operations for admin accounts
type IAdminRepository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Exists(ctx context.Context, field, value string) (bool, error)
}

// AdminRepository handles database operations for admins
type AdminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{
		collection: db.Collection(AdminCollection),
	}
}

// EnsureIndexes creates the unique index on email
func (r *AdminRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create inserts a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	res, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return &apperrors.DuplicateError{Resource: "Admin", Field: "email"}
		}
		return fmt.Errorf("error inserting admin: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		admin.ID = id
	}
	return nil
}

// GetByEmail retrieves an admin by normalized email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return &admin, nil
}

// Exists checks whether any admin holds the given field value
func (r *AdminRepository) Exists(ctx context.Context, field, value string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{field: value}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}
	return count > 0, nil
}
