package gateway

import (
	"context"
	"time"
)

// DashboardStats is the server-aggregated home-screen summary.
type DashboardStats struct {
	TodaySales     float64 `json:"today_sales"`
	MonthSales     float64 `json:"month_sales"`
	TotalDue       float64 `json:"total_due"`
	TotalCustomers int     `json:"total_customers"`
	TotalProducts  int     `json:"total_products"`
	LowStockCount  int     `json:"low_stock_count"`
	PendingJobs    int     `json:"pending_jobs"`
}

// SalesSummaryRow is one day's aggregated sales figures.
type SalesSummaryRow struct {
	Date         string  `json:"date"`
	InvoiceCount int     `json:"invoice_count"`
	TotalAmount  float64 `json:"total_amount"`
	Discount     float64 `json:"discount"`
	Collected    float64 `json:"collected"`
	Due          float64 `json:"due"`
}

// ProductPerformanceRow is one product's aggregated sales figures.
type ProductPerformanceRow struct {
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// ProfitLoss is the server-computed profit-and-loss statement.
type ProfitLoss struct {
	Revenue     float64 `json:"revenue"`
	CostOfGoods float64 `json:"cost_of_goods"`
	Expenses    float64 `json:"expenses"`
	NetProfit   float64 `json:"net_profit"`
}

// ReportGateway covers the server-side report aggregation endpoints. All
// aggregation happens on the store API; the terminal only renders and, for
// the sales summary, exports.
type ReportGateway interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	SalesSummary(ctx context.Context, from, to time.Time) ([]SalesSummaryRow, error)
	ProductPerformance(ctx context.Context, from, to time.Time) ([]ProductPerformanceRow, error)
	ProfitLoss(ctx context.Context, from, to time.Time) (*ProfitLoss, error)
}
