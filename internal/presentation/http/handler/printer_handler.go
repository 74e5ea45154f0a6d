package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printing and the printer surface
type PrinterHandler struct {
	receipts *service.ReceiptService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(receipts *service.ReceiptService) *PrinterHandler {
	return &PrinterHandler{receipts: receipts}
}

func cashierName(c *gin.Context) string {
	if user := GetUser(c); user != nil {
		return user.Name
	}
	return ""
}

// Print renders and prints the receipt for an invoice. The mode query
// parameter selects text or raster output; raster is the default.
func (h *PrinterHandler) Print(c *gin.Context) {
	err := h.receipts.Print(c.Request.Context(), c.Param("id"), cashierName(c), c.Query("mode"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed", nil)
}

// Preview returns the composed receipt as JSON for the on-screen preview
func (h *PrinterHandler) Preview(c *gin.Context) {
	receipt, err := h.receipts.BuildReceipt(c.Request.Context(), c.Param("id"), cashierName(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt composed", receipt)
}

// PNG returns the rasterized receipt as a PNG image
func (h *PrinterHandler) PNG(c *gin.Context) {
	data, err := h.receipts.RenderPNG(c.Request.Context(), c.Param("id"), cashierName(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

// TestPrint sends a short test page
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	if err := h.receipts.TestPrint(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Test page printed", nil)
}

// Status reports printer connectivity
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status", h.receipts.Status())
}
