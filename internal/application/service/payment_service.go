package service

import (
	"context"
	"time"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/enum"
	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/pkg/apperror"
)

// PaymentService handles due collection against existing invoices: recording
// payments, amending or deleting payment rows, and registering legacy paper
// invoices so their dues flow through the same pipeline.
type PaymentService struct {
	sales    gateway.SalesGateway
	sessions *SessionService
}

// NewPaymentService creates a new payment service
func NewPaymentService(sales gateway.SalesGateway, sessions *SessionService) *PaymentService {
	return &PaymentService{sales: sales, sessions: sessions}
}

// RecordPaymentInput represents a payment against an invoice
type RecordPaymentInput struct {
	Amount         float64
	PaymentMethod  string
	Notes          string
	ConfirmOverpay bool
}

// RecordPayment appends a payment row to an invoice. A payment exceeding the
// outstanding due is rejected before any request leaves the terminal, unless
// the caller explicitly confirmed the overpayment.
func (s *PaymentService) RecordPayment(ctx context.Context, saleID string, input *RecordPaymentInput) (*entity.Invoice, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}
	if !enum.PaymentMethod(input.PaymentMethod).Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	invoice, err := s.sales.Get(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if input.Amount > invoice.RawDue() && !input.ConfirmOverpay {
		return nil, apperror.ErrOverpayNotConfirmed
	}

	req := &gateway.PaymentRequest{
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}
	if err := s.sales.RecordPayment(ctx, saleID, req); err != nil {
		return nil, err
	}

	return s.sales.Get(ctx, saleID)
}

// AmendPaymentInput represents a privileged payment mutation. The account
// password is required; editing history changes a recorded invoice's due.
type AmendPaymentInput struct {
	Amount        float64
	PaymentMethod string
	Notes         string
	Password      string
}

// UpdatePayment amends an existing payment row after re-authorization.
func (s *PaymentService) UpdatePayment(ctx context.Context, sessionID, paymentID string, input *AmendPaymentInput) error {
	if err := s.sessions.Reauthorize(ctx, sessionID, input.Password); err != nil {
		return err
	}
	if input.Amount <= 0 {
		return apperror.NewBadRequestError("Payment amount must be positive")
	}

	req := &gateway.PaymentRequest{
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}
	return s.sales.UpdatePayment(ctx, paymentID, req)
}

// DeletePayment removes a payment row after re-authorization.
func (s *PaymentService) DeletePayment(ctx context.Context, sessionID, paymentID, password string) error {
	if err := s.sessions.Reauthorize(ctx, sessionID, password); err != nil {
		return err
	}
	return s.sales.DeletePayment(ctx, paymentID)
}

// History returns the payment rows across invoices.
func (s *PaymentService) History(ctx context.Context, params gateway.ListParams) ([]entity.PaymentHistory, error) {
	return s.sales.PaymentHistory(ctx, params)
}

// CreateLegacy registers a pre-existing paper invoice so its remaining due
// can be collected through the regular flow.
func (s *PaymentService) CreateLegacy(ctx context.Context, req *gateway.LegacySaleRequest) (*entity.Invoice, error) {
	if req.InvoiceNumber == "" {
		return nil, apperror.NewBadRequestError("Invoice number is required")
	}
	if req.FinalAmount <= 0 {
		return nil, apperror.NewBadRequestError("Final amount must be positive")
	}
	if req.PaidAmount < 0 || req.PaidAmount > req.FinalAmount {
		return nil, apperror.NewBadRequestError("Paid amount must be between zero and the final amount")
	}
	return s.sales.CreateLegacy(ctx, req)
}

// ListDue returns the invoices in the range that still carry an outstanding
// balance.
func (s *PaymentService) ListDue(ctx context.Context, from, to time.Time) ([]entity.Invoice, error) {
	invoices, err := s.sales.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	due := make([]entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Due() > 0 {
			due = append(due, inv)
		}
	}
	return due, nil
}
