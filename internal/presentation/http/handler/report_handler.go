package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// ReportHandler handles the reports screen
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Dashboard returns the home-screen summary
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.reports.DashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard stats retrieved", stats)
}

// SalesSummary returns per-day aggregated sales figures
func (h *ReportHandler) SalesSummary(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		response.BadRequest(c, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	rows, err := h.reports.SalesSummary(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales summary retrieved", rows)
}

// ExportSalesSummary downloads the sales summary as an XLSX workbook
func (h *ReportHandler) ExportSalesSummary(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		response.BadRequest(c, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	data, filename, err := h.reports.ExportSalesSummary(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ProductPerformance returns per-product aggregated sales figures
func (h *ReportHandler) ProductPerformance(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		response.BadRequest(c, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	rows, err := h.reports.ProductPerformance(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product performance retrieved", rows)
}

// ProfitLoss returns the profit-and-loss statement
func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		response.BadRequest(c, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	pl, err := h.reports.ProfitLoss(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profit and loss retrieved", pl)
}
