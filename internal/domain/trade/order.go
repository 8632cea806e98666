package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/quantivo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderLine is a settled line on an order. Name, price, and cost are
// snapshots taken at settlement time so the line keeps rendering after
// the catalog item changes or is deleted.
type OrderLine struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null"`
	ItemName  string          `gorm:"size:120;not null"`
	Quantity  int64           `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (OrderLine) TableName() string {
	return "order_lines"
}

// Amount returns quantity * unit price for the line
func (l *OrderLine) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Order is a settled order owned by a single user.
type Order struct {
	shared.OwnedEntity
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Lines       []OrderLine     `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates an order with the given lines. The total amount is
// recorded as supplied by the caller and is not recomputed from the lines.
func NewOrder(ownerID uuid.UUID, totalAmount decimal.Decimal, lines []OrderLine) (*Order, error) {
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_REQUEST", "Order must contain at least one line")
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_REQUEST", "Total amount cannot be negative")
	}

	order := &Order{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
		TotalAmount: totalAmount,
	}

	now := time.Now()
	for i := range lines {
		lines[i].ID = uuid.New()
		lines[i].OrderID = order.ID
		lines[i].CreatedAt = now
	}
	order.Lines = lines

	return order, nil
}

// LinesTotal returns the sum of line amounts, independent of TotalAmount
func (o *Order) LinesTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Lines {
		total = total.Add(o.Lines[i].Amount())
	}
	return total
}
