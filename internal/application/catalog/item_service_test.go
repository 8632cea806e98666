package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/quantivo/backend/internal/domain/catalog"
	"github.com/quantivo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockItemRepository is a mock implementation of catalog.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]catalog.Item, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newTestItem(t *testing.T, ownerID uuid.UUID) *catalog.Item {
	item, err := catalog.NewItem(ownerID, "Espresso Beans 1kg", 40,
		decimal.RequireFromString("4.50"), decimal.RequireFromString("9.99"), "")
	require.NoError(t, err)
	return item
}

func TestItemService_Create(t *testing.T) {
	t.Run("creates a valid item", func(t *testing.T) {
		repo := new(MockItemRepository)
		service := NewItemService(repo, zap.NewNop())
		ownerID := uuid.New()

		repo.On("Create", mock.Anything, mock.AnythingOfType("*catalog.Item")).Return(nil)

		resp, err := service.Create(context.Background(), ownerID, CreateItemRequest{
			Name:         "Espresso Beans 1kg",
			Quantity:     40,
			CostPrice:    decimal.RequireFromString("4.50"),
			SellingPrice: decimal.RequireFromString("9.99"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Espresso Beans 1kg", resp.Name)
		assert.Equal(t, int64(40), resp.Quantity)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid input before touching the repository", func(t *testing.T) {
		repo := new(MockItemRepository)
		service := NewItemService(repo, zap.NewNop())

		_, err := service.Create(context.Background(), uuid.New(), CreateItemRequest{
			Name:         "",
			Quantity:     -1,
			CostPrice:    decimal.Zero,
			SellingPrice: decimal.Zero,
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_REQUEST", domainErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestItemService_Get(t *testing.T) {
	t.Run("returns the owner's item", func(t *testing.T) {
		repo := new(MockItemRepository)
		service := NewItemService(repo, zap.NewNop())
		ownerID := uuid.New()
		item := newTestItem(t, ownerID)

		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)

		resp, err := service.Get(context.Background(), ownerID, item.ID)

		require.NoError(t, err)
		assert.Equal(t, item.ID, resp.ID)
	})

	t.Run("maps a missing item to not found", func(t *testing.T) {
		repo := new(MockItemRepository)
		service := NewItemService(repo, zap.NewNop())
		itemID := uuid.New()

		repo.On("FindByID", mock.Anything, itemID).Return(nil, shared.ErrNotFound)

		_, err := service.Get(context.Background(), uuid.New(), itemID)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("maps another owner's item to forbidden", func(t *testing.T) {
		repo := new(MockItemRepository)
		service := NewItemService(repo, zap.NewNop())
		item := newTestItem(t, uuid.New())

		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)

		_, err := service.Get(context.Background(), uuid.New(), item.ID)

		assert.Equal(t, shared.ErrForbidden, err)
	})
}

func TestItemService_List(t *testing.T) {
	t.Run("returns a paginated page", func(t *testing.T) {
		repo := new(MockItemRepository)
		service := NewItemService(repo, zap.NewNop())
		ownerID := uuid.New()
		filter := shared.DefaultFilter()

		repo.On("FindAllForOwner", mock.Anything, ownerID, filter).
			Return([]catalog.Item{*newTestItem(t, ownerID)}, nil)
		repo.On("CountForOwner", mock.Anything, ownerID, filter).Return(int64(41), nil)

		result, err := service.List(context.Background(), ownerID, filter)

		require.NoError(t, err)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, int64(41), result.Total)
		assert.Equal(t, 3, result.TotalPages)
	})
}

func TestItemService_Update(t *testing.T) {
	t.Run("applies only provided fields", func(t *testing.T) {
		repo := new(MockItemRepository)
		service := NewItemService(repo, zap.NewNop())
		ownerID := uuid.New()
		item := newTestItem(t, ownerID)

		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
		repo.On("Update", mock.Anything, item).Return(nil)

		newQty := int64(12)
		resp, err := service.Update(context.Background(), ownerID, item.ID, UpdateItemRequest{
			Quantity: &newQty,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(12), resp.Quantity)
		assert.Equal(t, "Espresso Beans 1kg", resp.Name)
		repo.AssertExpectations(t)
	})

	t.Run("rejects updates to another owner's item", func(t *testing.T) {
		repo := new(MockItemRepository)
		service := NewItemService(repo, zap.NewNop())
		item := newTestItem(t, uuid.New())

		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)

		name := "Renamed"
		_, err := service.Update(context.Background(), uuid.New(), item.ID, UpdateItemRequest{
			Name: &name,
		})

		assert.Equal(t, shared.ErrForbidden, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestItemService_Delete(t *testing.T) {
	t.Run("deletes the owner's item", func(t *testing.T) {
		repo := new(MockItemRepository)
		service := NewItemService(repo, zap.NewNop())
		ownerID := uuid.New()
		item := newTestItem(t, ownerID)

		repo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
		repo.On("Delete", mock.Anything, ownerID, item.ID).Return(nil)

		err := service.Delete(context.Background(), ownerID, item.ID)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("maps a missing item to not found", func(t *testing.T) {
		repo := new(MockItemRepository)
		service := NewItemService(repo, zap.NewNop())
		itemID := uuid.New()

		repo.On("FindByID", mock.Anything, itemID).Return(nil, shared.ErrNotFound)

		err := service.Delete(context.Background(), uuid.New(), itemID)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}
