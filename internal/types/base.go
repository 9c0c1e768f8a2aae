package types

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity, lifecycle timestamps and soft-delete state
// shared by every entity. Identity is the uuid: two entities are the same
// entity iff their IDs are equal, independent of field values.
type Base struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"not null" json:"updatedAt"`
	IsDeleted bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *Base) GetID() uuid.UUID { return b.ID }

func (b *Base) Touch() { b.UpdatedAt = time.Now().UTC() }

func (b *Base) Deleted() bool { return b.IsDeleted }

// MarkDeleted flags the entity as soft-deleted. Already-deleted entities
// are left untouched so DeletedAt never moves on repeated calls.
func (b *Base) MarkDeleted() {
	if b.IsDeleted {
		return
	}
	b.IsDeleted = true
	now := time.Now().UTC()
	b.DeletedAt = &now
	b.Touch()
}

// ClearDeleted reverses a soft delete.
func (b *Base) ClearDeleted() {
	if !b.IsDeleted {
		return
	}
	b.IsDeleted = false
	b.DeletedAt = nil
	b.Touch()
}

// SameEntity reports identity equality by ID.
func SameEntity(a, b interface{ GetID() uuid.UUID }) bool {
	if a == nil || b == nil {
		return false
	}
	return a.GetID() == b.GetID()
}
