package backend

import (
	"context"
	"net/url"
	"time"

	"github.com/opticore/optipos/internal/domain/gateway"
)

type reportGateway struct {
	client *Client
}

// NewReportGateway creates the store API report gateway
func NewReportGateway(client *Client) gateway.ReportGateway {
	return &reportGateway{client: client}
}

func rangeQuery(from, to time.Time) url.Values {
	q := url.Values{}
	q.Set("start_date", from.Format("2006-01-02"))
	q.Set("end_date", to.Format("2006-01-02"))
	return q
}

func (g *reportGateway) DashboardStats(ctx context.Context) (*gateway.DashboardStats, error) {
	var stats gateway.DashboardStats
	if err := g.client.get(ctx, "/reports/dashboard-stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (g *reportGateway) SalesSummary(ctx context.Context, from, to time.Time) ([]gateway.SalesSummaryRow, error) {
	var rows []gateway.SalesSummaryRow
	if err := g.client.get(ctx, "/reports/sales-summary", rangeQuery(from, to), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (g *reportGateway) ProductPerformance(ctx context.Context, from, to time.Time) ([]gateway.ProductPerformanceRow, error) {
	var rows []gateway.ProductPerformanceRow
	if err := g.client.get(ctx, "/reports/product-performance", rangeQuery(from, to), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (g *reportGateway) ProfitLoss(ctx context.Context, from, to time.Time) (*gateway.ProfitLoss, error) {
	var pl gateway.ProfitLoss
	if err := g.client.get(ctx, "/reports/profit-loss", rangeQuery(from, to), &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}
