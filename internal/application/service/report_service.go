package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/opticore/optipos/internal/domain/gateway"
)

// ReportService fronts the server-side report aggregations and renders the
// sales summary as a spreadsheet for export.
type ReportService struct {
	reports gateway.ReportGateway
}

// NewReportService creates a new report service
func NewReportService(reports gateway.ReportGateway) *ReportService {
	return &ReportService{reports: reports}
}

func (s *ReportService) DashboardStats(ctx context.Context) (*gateway.DashboardStats, error) {
	return s.reports.DashboardStats(ctx)
}

func (s *ReportService) SalesSummary(ctx context.Context, from, to time.Time) ([]gateway.SalesSummaryRow, error) {
	return s.reports.SalesSummary(ctx, from, to)
}

func (s *ReportService) ProductPerformance(ctx context.Context, from, to time.Time) ([]gateway.ProductPerformanceRow, error) {
	return s.reports.ProductPerformance(ctx, from, to)
}

func (s *ReportService) ProfitLoss(ctx context.Context, from, to time.Time) (*gateway.ProfitLoss, error) {
	return s.reports.ProfitLoss(ctx, from, to)
}

// ExportSalesSummary renders the sales summary for the range as an XLSX
// workbook and returns the file bytes plus a suggested filename.
func (s *ReportService) ExportSalesSummary(ctx context.Context, from, to time.Time) ([]byte, string, error) {
	rows, err := s.reports.SalesSummary(ctx, from, to)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sales Summary"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Invoices", "Total", "Discount", "Collected", "Due"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	var totalAmount, totalCollected, totalDue float64
	for i, row := range rows {
		values := []interface{}{
			row.Date,
			row.InvoiceCount,
			row.TotalAmount,
			row.Discount,
			row.Collected,
			row.Due,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
		totalAmount += row.TotalAmount
		totalCollected += row.Collected
		totalDue += row.Due
	}

	totalRow := len(rows) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), totalAmount)
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), totalCollected)
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), totalDue)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("sales-summary_%s_%s.xlsx",
		from.Format("2006-01-02"), to.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
