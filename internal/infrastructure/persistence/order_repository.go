package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quantivo/backend/internal/domain/catalog"
	"github.com/quantivo/backend/internal/domain/shared"
	"github.com/quantivo/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Settle persists the order with its lines and applies every stock
// deduction in a single transaction. Each deduction is a conditional
// relative update, so a concurrent settlement can never drive stock
// negative: if the guarded decrement matches no row the item no longer
// has enough stock and the whole transaction rolls back.
func (r *GormOrderRepository) Settle(ctx context.Context, order *trade.Order, deductions []trade.StockDeduction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lines").Create(order).Error; err != nil {
			return err
		}

		for i := range order.Lines {
			order.Lines[i].OrderID = order.ID
			if err := tx.Create(&order.Lines[i]).Error; err != nil {
				return err
			}
		}

		for _, d := range deductions {
			result := tx.Model(&catalog.Item{}).
				Where("id = ? AND owner_id = ? AND quantity >= ?", d.ItemID, d.OwnerID, d.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", d.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return shared.ErrInsufficientStock.WithDetails(map[string]interface{}{
					"itemId":    d.ItemID.String(),
					"requested": d.Quantity,
				})
			}
		}

		return nil
	})
}

// FindByID finds an order by ID regardless of owner
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByIDForOwner finds an order with its lines for a specific owner
func (r *GormOrderRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAllForOwner returns the owner's orders with lines, filtered and paginated
func (r *GormOrderRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	var orders []trade.Order
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&trade.Order{}).
			Preload("Lines").
			Where("owner_id = ?", ownerID),
		filter,
	)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAllForOwner returns every order with lines for the owner, oldest
// first. Report aggregation walks the full history.
func (r *GormOrderRepository) ListAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]trade.Order, error) {
	var orders []trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CountForOwner counts the owner's orders
func (r *GormOrderRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.Order{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, OrderSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}
