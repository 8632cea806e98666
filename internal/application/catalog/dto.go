package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/quantivo/backend/internal/domain/catalog"
	"github.com/quantivo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreateItemRequest represents a request to create a catalog item
type CreateItemRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=120"`
	Quantity     int64           `json:"quantity" binding:"min=0"`
	CostPrice    decimal.Decimal `json:"costPrice" binding:"required"`
	SellingPrice decimal.Decimal `json:"sellingPrice" binding:"required"`
	ImageRef     string          `json:"imageRef" binding:"omitempty,max=500"`
}

// UpdateItemRequest represents a partial update to a catalog item
type UpdateItemRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=120"`
	Quantity     *int64           `json:"quantity" binding:"omitempty,min=0"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"`
	ImageRef     *string          `json:"imageRef" binding:"omitempty,max=500"`
}

// ItemResponse represents a catalog item in API responses
type ItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Quantity     int64           `json:"quantity"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	ImageRef     string          `json:"imageRef,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ItemListResult is a page of items with pagination info
type ItemListResult = shared.Paginated[ItemResponse]

// ToItemResponse converts a domain item to an API response
func ToItemResponse(item *catalog.Item) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Quantity:     item.Quantity,
		CostPrice:    item.CostPrice,
		SellingPrice: item.SellingPrice,
		ImageRef:     item.ImageRef,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
