package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quantivo/backend/internal/domain/catalog"
	"github.com/quantivo/backend/internal/domain/shared"
	"github.com/quantivo/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// SettlementService validates and settles orders against the owner's
// catalog. Validation walks the lines in order and reports the first
// failure; the stock decrement itself happens transactionally in the
// repository, so a concurrent settlement cannot oversell.
type SettlementService struct {
	orderRepo trade.OrderRepository
	itemRepo  catalog.ItemRepository
	logger    *zap.Logger
}

// NewSettlementService creates a new SettlementService
func NewSettlementService(
	orderRepo trade.OrderRepository,
	itemRepo catalog.ItemRepository,
	logger *zap.Logger,
) *SettlementService {
	return &SettlementService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		logger:    logger,
	}
}

// Settle validates every line, then writes the order and decrements
// stock in one transaction
func (s *SettlementService) Settle(ctx context.Context, ownerID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	if len(req.Lines) == 0 {
		return nil, shared.NewDomainError("INVALID_REQUEST", "Order must contain at least one line")
	}

	lines := make([]trade.OrderLine, 0, len(req.Lines))
	deductions := make([]trade.StockDeduction, 0, len(req.Lines))

	for _, lineReq := range req.Lines {
		if lineReq.ItemID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_REQUEST", "Line item id is required")
		}
		if lineReq.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_REQUEST", "Line quantity must be positive").
				WithDetails(map[string]interface{}{
					"itemId":   lineReq.ItemID.String(),
					"quantity": lineReq.Quantity,
				})
		}

		item, err := s.itemRepo.FindByID(ctx, lineReq.ItemID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.ErrNotFound.WithDetails(map[string]interface{}{
					"itemId": lineReq.ItemID.String(),
				})
			}
			s.logger.Error("Failed to load item during settlement",
				zap.String("item_id", lineReq.ItemID.String()),
				zap.Error(err))
			return nil, shared.ErrInternal
		}

		if !item.BelongsTo(ownerID) {
			s.logger.Warn("Settlement against another owner's item",
				zap.String("item_id", item.ID.String()),
				zap.String("owner_id", ownerID.String()))
			return nil, shared.ErrForbidden
		}

		if !item.CanFulfill(lineReq.Quantity) {
			return nil, shared.ErrInsufficientStock.WithDetails(map[string]interface{}{
				"itemId":    item.ID.String(),
				"itemName":  item.Name,
				"available": item.Quantity,
				"requested": lineReq.Quantity,
			})
		}

		lines = append(lines, trade.OrderLine{
			ItemID:    item.ID,
			ItemName:  item.Name,
			Quantity:  lineReq.Quantity,
			UnitPrice: item.SellingPrice,
			UnitCost:  item.CostPrice,
		})
		deductions = append(deductions, trade.StockDeduction{
			ItemID:   item.ID,
			OwnerID:  ownerID,
			Quantity: lineReq.Quantity,
		})
	}

	order, err := trade.NewOrder(ownerID, req.TotalAmount, lines)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Settle(ctx, order, deductions); err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "INSUFFICIENT_STOCK" {
			// Stock moved between validation and the decrement.
			return nil, err
		}
		s.logger.Error("Failed to settle order",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}

	s.logger.Info("Order settled",
		zap.String("order_id", order.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.Int("lines", len(order.Lines)),
		zap.String("total", order.TotalAmount.String()))

	resp := ToOrderResponse(order)
	return &resp, nil
}

// Get returns one of the owner's orders
func (s *SettlementService) Get(ctx context.Context, ownerID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByIDForOwner(ctx, ownerID, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// Distinguish a foreign order from a missing one.
			if _, findErr := s.orderRepo.FindByID(ctx, orderID); findErr == nil {
				return nil, shared.ErrForbidden
			}
			return nil, shared.ErrNotFound.WithDetails(map[string]interface{}{
				"orderId": orderID.String(),
			})
		}
		s.logger.Error("Failed to load order",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// List returns a page of the owner's orders
func (s *SettlementService) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (*OrderListResult, error) {
	orders, err := s.orderRepo.FindAllForOwner(ctx, ownerID, filter)
	if err != nil {
		s.logger.Error("Failed to list orders",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}

	total, err := s.orderRepo.CountForOwner(ctx, ownerID, filter)
	if err != nil {
		s.logger.Error("Failed to count orders",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}

	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}
