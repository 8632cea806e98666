package report

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/quantivo/backend/internal/domain/catalog"
	"github.com/quantivo/backend/internal/domain/report"
	"github.com/quantivo/backend/internal/domain/shared"
	"github.com/quantivo/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReportService computes business reports from the owner's order history
// and current catalog. Reports are computed live on each request: revenue
// sums the recorded order totals, and cost is looked up from the catalog
// at report time, so a line whose item was since deleted still counts its
// revenue but contributes nothing to cost.
type ReportService struct {
	orderRepo trade.OrderRepository
	itemRepo  catalog.ItemRepository
	logger    *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	orderRepo trade.OrderRepository,
	itemRepo catalog.ItemRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		logger:    logger,
	}
}

// SummaryResponse represents the business summary response
type SummaryResponse struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	InventoryValue decimal.Decimal `json:"inventoryValue"`
	TotalOrders    int64           `json:"totalOrders"`
	TotalItems     int64           `json:"totalItems"`
}

// ChartPointResponse is one day in the chart series
type ChartPointResponse struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// Summary computes the owner's totals across all orders and the current
// catalog. Revenue sums the recorded order totals; profit is revenue
// minus the current catalog cost of every line sold; inventory value
// comes from current stock.
func (s *ReportService) Summary(ctx context.Context, ownerID uuid.UUID) (*SummaryResponse, error) {
	orders, err := s.orderRepo.ListAllForOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to load orders for summary",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}

	items, err := s.itemRepo.FindAllForOwner(ctx, ownerID, unpaginated())
	if err != nil {
		s.logger.Error("Failed to load items for summary",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}
	costs := costByItem(items)

	summary := report.BusinessSummary{
		TotalOrders: int64(len(orders)),
		TotalItems:  int64(len(items)),
	}
	totalCost := decimal.Zero
	for i := range orders {
		summary.TotalRevenue = summary.TotalRevenue.Add(orders[i].TotalAmount)
		totalCost = totalCost.Add(orderCost(&orders[i], costs))
	}
	summary.TotalProfit = summary.TotalRevenue.Sub(totalCost)
	for i := range items {
		summary.InventoryValue = summary.InventoryValue.Add(items[i].InventoryValue())
	}

	return &SummaryResponse{
		TotalRevenue:   summary.TotalRevenue.Round(2),
		TotalProfit:    summary.TotalProfit.Round(2),
		InventoryValue: summary.InventoryValue.Round(2),
		TotalOrders:    summary.TotalOrders,
		TotalItems:     summary.TotalItems,
	}, nil
}

// Chart computes the daily revenue/profit series. Orders are grouped by
// their UTC calendar date; days without orders are absent from the
// series, and the series is sorted ascending by date.
func (s *ReportService) Chart(ctx context.Context, ownerID uuid.UUID) ([]ChartPointResponse, error) {
	orders, err := s.orderRepo.ListAllForOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to load orders for chart",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}

	items, err := s.itemRepo.FindAllForOwner(ctx, ownerID, unpaginated())
	if err != nil {
		s.logger.Error("Failed to load items for chart",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err))
		return nil, shared.ErrInternal
	}
	costs := costByItem(items)

	byDay := make(map[string]*report.DailyPoint)
	for i := range orders {
		day := orders[i].CreatedAt.UTC().Format("2006-01-02")
		point, ok := byDay[day]
		if !ok {
			point = &report.DailyPoint{Date: day}
			byDay[day] = point
		}
		point.Revenue = point.Revenue.Add(orders[i].TotalAmount)
		point.Profit = point.Profit.Add(orders[i].TotalAmount.Sub(orderCost(&orders[i], costs)))
	}

	series := make([]ChartPointResponse, 0, len(byDay))
	for _, point := range byDay {
		series = append(series, ChartPointResponse{
			Date:    point.Date,
			Revenue: point.Revenue.Round(2),
			Profit:  point.Profit.Round(2),
		})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })

	return series, nil
}

// unpaginated returns a filter that loads the full catalog in one pass
func unpaginated() shared.Filter {
	return shared.Filter{OrderBy: "created_at", OrderDir: "asc"}
}

// costByItem indexes the current catalog cost price by item id
func costByItem(items []catalog.Item) map[uuid.UUID]decimal.Decimal {
	costs := make(map[uuid.UUID]decimal.Decimal, len(items))
	for i := range items {
		costs[items[i].ID] = items[i].CostPrice
	}
	return costs
}

// orderCost sums the current catalog cost of the order's lines. A line
// whose item no longer exists in the catalog contributes nothing.
func orderCost(order *trade.Order, costs map[uuid.UUID]decimal.Decimal) decimal.Decimal {
	cost := decimal.Zero
	for i := range order.Lines {
		unitCost, ok := costs[order.Lines[i].ItemID]
		if !ok {
			continue
		}
		cost = cost.Add(unitCost.Mul(decimal.NewFromInt(order.Lines[i].Quantity)))
	}
	return cost
}
