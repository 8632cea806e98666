package catalog

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quantivo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const maxItemNameLength = 120

// Item represents a tracked inventory item in a user's catalog.
type Item struct {
	shared.OwnedEntity
	Name         string          `gorm:"size:120;not null"`
	Quantity     int64           `gorm:"not null;default:0"`
	CostPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ImageRef     string          `gorm:"size:500"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "inventory_items"
}

// NewItem creates a new catalog item scoped to the given owner
func NewItem(ownerID uuid.UUID, name string, quantity int64, costPrice, sellingPrice decimal.Decimal, imageRef string) (*Item, error) {
	item := &Item{
		OwnedEntity: shared.NewOwnedEntity(ownerID),
	}

	if err := item.SetName(name); err != nil {
		return nil, err
	}
	if err := item.SetQuantity(quantity); err != nil {
		return nil, err
	}
	if err := item.SetPrices(costPrice, sellingPrice); err != nil {
		return nil, err
	}
	if err := item.SetImageRef(imageRef); err != nil {
		return nil, err
	}

	return item, nil
}

// SetName sets the item name
func (i *Item) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_REQUEST", "Item name cannot be empty")
	}
	if len(name) > maxItemNameLength {
		return shared.NewDomainError("INVALID_REQUEST", "Item name cannot exceed 120 characters")
	}

	i.Name = name
	i.UpdatedAt = time.Now()

	return nil
}

// SetQuantity sets the stock quantity
func (i *Item) SetQuantity(quantity int64) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_REQUEST", "Quantity cannot be negative")
	}

	i.Quantity = quantity
	i.UpdatedAt = time.Now()

	return nil
}

// SetPrices sets the cost and selling prices together
func (i *Item) SetPrices(costPrice, sellingPrice decimal.Decimal) error {
	if costPrice.IsNegative() {
		return shared.NewDomainError("INVALID_REQUEST", "Cost price cannot be negative")
	}
	if sellingPrice.IsNegative() {
		return shared.NewDomainError("INVALID_REQUEST", "Selling price cannot be negative")
	}

	i.CostPrice = costPrice
	i.SellingPrice = sellingPrice
	i.UpdatedAt = time.Now()

	return nil
}

// SetImageRef sets the optional image reference URL
func (i *Item) SetImageRef(imageRef string) error {
	imageRef = strings.TrimSpace(imageRef)
	if imageRef != "" {
		if len(imageRef) > 500 {
			return shared.NewDomainError("INVALID_REQUEST", "Image reference cannot exceed 500 characters")
		}
		if _, err := url.ParseRequestURI(imageRef); err != nil {
			return shared.NewDomainError("INVALID_REQUEST", "Image reference must be a valid URL")
		}
	}

	i.ImageRef = imageRef
	i.UpdatedAt = time.Now()

	return nil
}

// CanFulfill reports whether the item has enough stock for the requested
// quantity. The decrement itself happens through a conditional update in
// the settlement transaction, never by mutating the loaded entity.
func (i *Item) CanFulfill(quantity int64) bool {
	return quantity > 0 && i.Quantity >= quantity
}

// InventoryValue returns costPrice multiplied by the current quantity
func (i *Item) InventoryValue() decimal.Decimal {
	return i.CostPrice.Mul(decimal.NewFromInt(i.Quantity))
}
