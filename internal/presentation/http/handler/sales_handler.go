package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// SalesHandler handles the sales/invoices screen
type SalesHandler struct {
	sales gateway.SalesGateway
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(sales gateway.SalesGateway) *SalesHandler {
	return &SalesHandler{sales: sales}
}

// List returns invoices in a date range
func (h *SalesHandler) List(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		response.BadRequest(c, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	invoices, err := h.sales.ListByDateRange(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoices retrieved", invoices)
}

// Get returns one invoice
func (h *SalesHandler) Get(c *gin.Context) {
	invoice, err := h.sales.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice retrieved", invoice)
}

// Update edits an invoice's items, discount or note
func (h *SalesHandler) Update(c *gin.Context) {
	var req gateway.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.sales.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice updated", invoice)
}

// Delete removes an invoice
func (h *SalesHandler) Delete(c *gin.Context) {
	if err := h.sales.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
