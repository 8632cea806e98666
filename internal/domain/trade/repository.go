package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/quantivo/backend/internal/domain/shared"
)

// StockDeduction describes an atomic stock decrement applied when an
// order settles. The decrement is conditional: it only applies when the
// item still belongs to the owner and still has at least Quantity in stock.
type StockDeduction struct {
	ItemID   uuid.UUID
	OwnerID  uuid.UUID
	Quantity int64
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Settle persists the order and applies all stock deductions in a
	// single transaction. If any deduction cannot be applied the whole
	// transaction rolls back and ErrInsufficientStock is returned.
	Settle(ctx context.Context, order *Order, deductions []StockDeduction) error

	// FindByIDForOwner finds an order with its lines for a specific owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Order, error)

	// FindByID finds an order by ID regardless of owner
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAllForOwner returns the owner's orders with lines, filtered and paginated
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Order, error)

	// ListAllForOwner returns every order with lines for the owner, oldest first.
	// Used by report aggregation.
	ListAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]Order, error)

	// CountForOwner counts the owner's orders
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}
