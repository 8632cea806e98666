package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/quantivo/backend/internal/domain/shared"
)

// ItemRepository defines the interface for catalog item persistence.
// FindByID is unscoped and exists so callers can distinguish a missing
// item from one owned by another user.
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Item, error)
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Item, error)
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}
