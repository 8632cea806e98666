package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/quantivo/backend/internal/domain/shared"
	"github.com/quantivo/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderLineRequest is one line of a settlement request
type OrderLineRequest struct {
	ItemID   uuid.UUID `json:"itemId" binding:"required"`
	Quantity int64     `json:"quantity" binding:"required"`
}

// CreateOrderRequest represents a request to settle an order. The total
// is supplied by the caller and recorded as-is.
type CreateOrderRequest struct {
	TotalAmount decimal.Decimal    `json:"totalAmount" binding:"required"`
	Lines       []OrderLineRequest `json:"lines" binding:"required,gt=0,dive"`
}

// OrderLineResponse is one settled line in API responses
type OrderLineResponse struct {
	ItemID    uuid.UUID       `json:"itemId"`
	ItemName  string          `json:"itemName"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	UnitCost  decimal.Decimal `json:"unitCost"`
}

// OrderResponse represents a settled order in API responses
type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Lines       []OrderLineResponse `json:"lines"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// OrderListResult is a page of orders with pagination info
type OrderListResult = shared.Paginated[OrderResponse]

// ToOrderResponse converts a domain order to an API response
func ToOrderResponse(order *trade.Order) OrderResponse {
	lines := make([]OrderLineResponse, len(order.Lines))
	for i := range order.Lines {
		lines[i] = OrderLineResponse{
			ItemID:    order.Lines[i].ItemID,
			ItemName:  order.Lines[i].ItemName,
			Quantity:  order.Lines[i].Quantity,
			UnitPrice: order.Lines[i].UnitPrice,
			UnitCost:  order.Lines[i].UnitCost,
		}
	}
	return OrderResponse{
		ID:          order.ID,
		TotalAmount: order.TotalAmount,
		Lines:       lines,
		CreatedAt:   order.CreatedAt,
	}
}
