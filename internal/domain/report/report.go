package report

import "github.com/shopspring/decimal"

// BusinessSummary is a read model aggregating a single owner's business
// figures. Monetary values are rounded to 2 decimal places at the edge.
type BusinessSummary struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	TotalOrders    int64           `json:"total_orders"`
	TotalItems     int64           `json:"total_items"`
}

// DailyPoint is one day of the revenue/profit chart series. Date is the
// UTC calendar day in YYYY-MM-DD form. Days without orders are absent
// from the series.
type DailyPoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}
