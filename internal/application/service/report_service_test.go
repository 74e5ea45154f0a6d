package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/opticore/optipos/internal/domain/gateway"
)

type fakeReportGateway struct {
	rows []gateway.SalesSummaryRow
}

func (f *fakeReportGateway) DashboardStats(ctx context.Context) (*gateway.DashboardStats, error) {
	return &gateway.DashboardStats{TodaySales: 4500}, nil
}

func (f *fakeReportGateway) SalesSummary(ctx context.Context, from, to time.Time) ([]gateway.SalesSummaryRow, error) {
	return f.rows, nil
}

func (f *fakeReportGateway) ProductPerformance(ctx context.Context, from, to time.Time) ([]gateway.ProductPerformanceRow, error) {
	return nil, nil
}

func (f *fakeReportGateway) ProfitLoss(ctx context.Context, from, to time.Time) (*gateway.ProfitLoss, error) {
	return &gateway.ProfitLoss{Revenue: 10000, Expenses: 4000, NetProfit: 6000}, nil
}

func TestExportSalesSummary(t *testing.T) {
	svc := NewReportService(&fakeReportGateway{rows: []gateway.SalesSummaryRow{
		{Date: "2026-03-01", InvoiceCount: 3, TotalAmount: 4500, Discount: 200, Collected: 4000, Due: 500},
		{Date: "2026-03-02", InvoiceCount: 1, TotalAmount: 1200, Collected: 1200},
	}})

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	data, filename, err := svc.ExportSalesSummary(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, "sales-summary_2026-03-01_2026-03-31.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := "Sales Summary"
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	date, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", date)

	totalLabel, err := f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total", totalLabel)

	total, err := f.GetCellValue(sheet, "C4")
	require.NoError(t, err)
	assert.Equal(t, "5700", total)
}

func TestExportSalesSummaryEmptyRange(t *testing.T) {
	svc := NewReportService(&fakeReportGateway{})

	data, _, err := svc.ExportSalesSummary(context.Background(), time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue("Sales Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Total", label)
}
