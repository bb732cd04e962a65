package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin defines an administrator account in the 'admins' collection.
// email carries a unique index; records are immutable after registration.
type Admin struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
}
