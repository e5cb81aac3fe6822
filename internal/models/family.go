package models

import (
	"time"

	"github.com/google/uuid"
)

// FamilyLinkDB represents a directed family_links edge: user_id linked
// themselves to family_id. No reciprocal edge is created.
type FamilyLinkDB struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	FamilyID  uuid.UUID `json:"family_id" db:"family_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FamilyMember is an account on the other end of a family link.
type FamilyMember struct {
	UserID   uuid.UUID `json:"id" db:"user_id"`
	Username string    `json:"username" db:"username"`
}
