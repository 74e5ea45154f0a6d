package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// PaymentHandler handles the due-collection screen: payments against
// invoices, payment history and legacy invoices
type PaymentHandler struct {
	payments *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// ListDue returns invoices carrying an outstanding balance
func (h *PaymentHandler) ListDue(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		response.BadRequest(c, "Invalid date range, expected YYYY-MM-DD")
		return
	}

	invoices, err := h.payments.ListDue(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Due invoices retrieved", invoices)
}

type recordPaymentRequest struct {
	Amount         float64 `json:"amount" binding:"required"`
	PaymentMethod  string  `json:"payment_method" binding:"required"`
	Notes          string  `json:"notes"`
	ConfirmOverpay bool    `json:"confirm_overpayment"`
}

// Record appends a payment to an invoice
func (h *PaymentHandler) Record(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Amount and payment method are required")
		return
	}

	invoice, err := h.payments.RecordPayment(c.Request.Context(), c.Param("id"), &service.RecordPaymentInput{
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
		Notes:          req.Notes,
		ConfirmOverpay: req.ConfirmOverpay,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment recorded", invoice)
}

type amendPaymentRequest struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
	Password      string  `json:"password"`
}

// Update amends a payment row; requires the account password
func (h *PaymentHandler) Update(c *gin.Context) {
	var req amendPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.payments.UpdatePayment(c.Request.Context(), GetSessionID(c), c.Param("id"), &service.AmendPaymentInput{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Password:      req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment updated", nil)
}

type deletePaymentRequest struct {
	Password string `json:"password"`
}

// Delete removes a payment row; requires the account password
func (h *PaymentHandler) Delete(c *gin.Context) {
	var req deletePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.payments.DeletePayment(c.Request.Context(), GetSessionID(c), c.Param("id"), req.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// History returns payment rows across invoices
func (h *PaymentHandler) History(c *gin.Context) {
	history, err := h.payments.History(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment history retrieved", history)
}

// CreateLegacy registers a pre-existing paper invoice
func (h *PaymentHandler) CreateLegacy(c *gin.Context) {
	var req gateway.LegacySaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.payments.CreateLegacy(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Legacy invoice registered", invoice)
}
