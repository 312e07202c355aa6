package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RestaurantColName = "restaurants"

// Restaurant is maintained by another subsystem. The event subsystem only
// ever checks existence and projects contact fields, it never mutates one.
type Restaurant struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Address   string             `bson:"address" json:"address" validate:"required"`
	Phone     string             `bson:"phone" json:"phone"`
	Email     string             `bson:"email" json:"email" validate:"email"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// RestaurantRepo is the lookup capability the event handlers need. Kept to a
// single read so tests can swap in a double.
type RestaurantRepo interface {
	GetRestaurantByID(ctx context.Context, id primitive.ObjectID) (*Restaurant, error)
}
