package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quantivo/backend/internal/domain/catalog"
	"github.com/quantivo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ItemService handles catalog item operations for an owner's inventory
type ItemService struct {
	itemRepo catalog.ItemRepository
	logger   *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo catalog.ItemRepository, logger *zap.Logger) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// Create adds a new item to the owner's catalog
func (s *ItemService) Create(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*ItemResponse, error) {
	item, err := catalog.NewItem(ownerID, req.Name, req.Quantity, req.CostPrice, req.SellingPrice, req.ImageRef)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.logger.Error("Failed to create item",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}

	s.logger.Info("Item created",
		zap.String("item_id", item.ID.String()),
		zap.String("owner_id", ownerID.String()))

	resp := ToItemResponse(item)
	return &resp, nil
}

// Get returns a single item from the owner's catalog
func (s *ItemService) Get(ctx context.Context, ownerID, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.findOwned(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	resp := ToItemResponse(item)
	return &resp, nil
}

// List returns a page of the owner's items
func (s *ItemService) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (*ItemListResult, error) {
	items, err := s.itemRepo.FindAllForOwner(ctx, ownerID, filter)
	if err != nil {
		s.logger.Error("Failed to list items",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}

	total, err := s.itemRepo.CountForOwner(ctx, ownerID, filter)
	if err != nil {
		s.logger.Error("Failed to count items",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}

	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}

	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update applies a partial update to an item in the owner's catalog
func (s *ItemService) Update(ctx context.Context, ownerID, itemID uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.findOwned(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := item.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Quantity != nil {
		if err := item.SetQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.CostPrice != nil || req.SellingPrice != nil {
		cost := item.CostPrice
		selling := item.SellingPrice
		if req.CostPrice != nil {
			cost = *req.CostPrice
		}
		if req.SellingPrice != nil {
			selling = *req.SellingPrice
		}
		if err := item.SetPrices(cost, selling); err != nil {
			return nil, err
		}
	}
	if req.ImageRef != nil {
		if err := item.SetImageRef(*req.ImageRef); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		s.logger.Error("Failed to update item",
			zap.String("item_id", itemID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}

	s.logger.Info("Item updated", zap.String("item_id", itemID.String()))

	resp := ToItemResponse(item)
	return &resp, nil
}

// Delete removes an item from the owner's catalog. Orders that already
// settled keep their line snapshots, so history is unaffected.
func (s *ItemService) Delete(ctx context.Context, ownerID, itemID uuid.UUID) error {
	if _, err := s.findOwned(ctx, ownerID, itemID); err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, ownerID, itemID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrNotFound
		}
		s.logger.Error("Failed to delete item",
			zap.String("item_id", itemID.String()),
			zap.Error(err))
		return shared.ErrInternal
	}

	s.logger.Info("Item deleted",
		zap.String("item_id", itemID.String()),
		zap.String("owner_id", ownerID.String()))
	return nil
}

// findOwned loads an item and maps a missing row to NOT_FOUND and a row
// owned by someone else to FORBIDDEN.
func (s *ItemService) findOwned(ctx context.Context, ownerID, itemID uuid.UUID) (*catalog.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound.WithDetails(map[string]interface{}{
				"itemId": itemID.String(),
			})
		}
		s.logger.Error("Failed to load item",
			zap.String("item_id", itemID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}

	if !item.BelongsTo(ownerID) {
		s.logger.Warn("Cross-owner item access denied",
			zap.String("item_id", itemID.String()),
			zap.String("owner_id", ownerID.String()))
		return nil, shared.ErrForbidden
	}

	return item, nil
}
