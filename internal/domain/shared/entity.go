package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OwnedEntity extends BaseEntity with per-user ownership. Every query
// against an owned entity must filter by OwnerID.
type OwnedEntity struct {
	BaseEntity
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// GetOwnerID returns the owning user's ID
func (e *OwnedEntity) GetOwnerID() uuid.UUID {
	return e.OwnerID
}

// BelongsTo reports whether the entity is owned by the given user
func (e *OwnedEntity) BelongsTo(ownerID uuid.UUID) bool {
	return e.OwnerID == ownerID
}

// NewOwnedEntity creates a new entity scoped to the given owner
func NewOwnedEntity(ownerID uuid.UUID) OwnedEntity {
	return OwnedEntity{
		BaseEntity: NewBaseEntity(),
		OwnerID:    ownerID,
	}
}
