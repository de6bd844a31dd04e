package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base contains common fields for all documents
type Base struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt" validate:"required"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt" validate:"required,gtefield=CreatedAt"`
}

// Stamp sets both timestamps, keeping updatedAt at or after createdAt.
func (b *Base) Stamp(createdAt, updatedAt time.Time) {
	if updatedAt.Before(createdAt) {
		updatedAt = createdAt
	}
	b.CreatedAt = createdAt
	b.UpdatedAt = updatedAt
}

// Meta exposes the embedded Base of any document.
func (b *Base) Meta() *Base {
	return b
}
