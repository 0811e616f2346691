package model

import (
	"time"

	"github.com/google/uuid"
)

// Base contains the identity and bookkeeping fields shared by stored
// entities. Entities are never deleted, so there is no deletion marker.
type Base struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
