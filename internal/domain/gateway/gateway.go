// Package gateway defines the terminal's view of the remote store API. Every
// persistence concern lives behind one of these interfaces; the HTTP
// implementation sits in internal/infrastructure/backend and tests use
// in-memory fakes. The terminal trusts the API's responses: after each
// mutation callers re-fetch rather than patch local state.
package gateway

import (
	"context"
	"time"

	"github.com/opticore/optipos/internal/domain/entity"
)

// LoginResult is the store API's response to a credential exchange.
type LoginResult struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// AuthGateway exchanges credentials for a bearer token and resolves the
// authenticated profile.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Me(ctx context.Context) (*entity.User, error)
}

// ListParams carries the common list-screen query parameters, forwarded to
// the store API verbatim; pagination and filtering are server concerns.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
}

// ProductGateway covers the inventory endpoints.
type ProductGateway interface {
	List(ctx context.Context, params ListParams) ([]entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, id string, p *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
	// IncrementStock sends an additive delta so concurrent restocks at two
	// terminals cannot overwrite each other.
	IncrementStock(ctx context.Context, id string, additional int) (*entity.Product, error)
}

// CustomerGateway covers the customer endpoints.
type CustomerGateway interface {
	List(ctx context.Context, params ListParams) ([]entity.Customer, error)
	Search(ctx context.Context, query string) ([]entity.Customer, error)
	Get(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	Update(ctx context.Context, id string, c *entity.Customer) (*entity.Customer, error)
	Delete(ctx context.Context, id string) error
}

// CreateSaleRequest is the checkout payload. Line subtotals and the overall
// totals are computed client-side; the API re-derives status.
type CreateSaleRequest struct {
	CustomerID    string               `json:"customer_id,omitempty"`
	Items         []entity.InvoiceItem `json:"items"`
	TotalAmount   float64              `json:"total_amount"`
	Discount      float64              `json:"discount"`
	PaidAmount    float64              `json:"paid_amount"`
	PaymentMethod string               `json:"payment_method"`
	Note          string               `json:"note,omitempty"`
}

// UpdateSaleRequest mutates an existing invoice's editable fields.
type UpdateSaleRequest struct {
	Items    []entity.InvoiceItem `json:"items,omitempty"`
	Discount *float64             `json:"discount,omitempty"`
	Note     *string              `json:"note,omitempty"`
}

// PaymentRequest records or amends a payment row.
type PaymentRequest struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes,omitempty"`
}

// LegacySaleRequest registers a pre-existing paper invoice so its due can be
// collected through the regular payment flow.
type LegacySaleRequest struct {
	InvoiceNumber string  `json:"invoice_number"`
	CustomerID    string  `json:"customer_id,omitempty"`
	FinalAmount   float64 `json:"final_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	Note          string  `json:"note,omitempty"`
}

// SalesGateway covers the sale/invoice and payment endpoints.
type SalesGateway interface {
	Create(ctx context.Context, req *CreateSaleRequest) (*entity.Invoice, error)
	Get(ctx context.Context, id string) (*entity.Invoice, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Invoice, error)
	Update(ctx context.Context, id string, req *UpdateSaleRequest) (*entity.Invoice, error)
	Delete(ctx context.Context, id string) error
	CreateLegacy(ctx context.Context, req *LegacySaleRequest) (*entity.Invoice, error)

	RecordPayment(ctx context.Context, saleID string, req *PaymentRequest) error
	UpdatePayment(ctx context.Context, paymentID string, req *PaymentRequest) error
	DeletePayment(ctx context.Context, paymentID string) error
	PaymentHistory(ctx context.Context, params ListParams) ([]entity.PaymentHistory, error)
}

// JobCardGateway covers the lab-order endpoints.
type JobCardGateway interface {
	List(ctx context.Context, params ListParams) ([]entity.JobCard, error)
	Get(ctx context.Context, id string) (*entity.JobCard, error)
	Create(ctx context.Context, jc *entity.JobCard) (*entity.JobCard, error)
	Update(ctx context.Context, id string, jc *entity.JobCard) (*entity.JobCard, error)
	Delete(ctx context.Context, id string) error
}

// UserGateway covers user/permission administration.
type UserGateway interface {
	List(ctx context.Context, params ListParams) ([]entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User, password string) (*entity.User, error)
	Update(ctx context.Context, id string, u *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	// Permissions returns the full catalog of assignable permission codes.
	Permissions(ctx context.Context) ([]string, error)
}

// SettingsGateway covers the global invoice-settings record.
type SettingsGateway interface {
	Get(ctx context.Context) (*entity.InvoiceSettings, error)
	Update(ctx context.Context, s *entity.InvoiceSettings) (*entity.InvoiceSettings, error)
	UploadLogo(ctx context.Context, filename string, data []byte) (string, error)
}

// AuditGateway covers audit-log viewing; the terminal reads and deletes only.
type AuditGateway interface {
	List(ctx context.Context, params ListParams) ([]entity.AuditLog, error)
	Delete(ctx context.Context, id string) error
	DeleteMine(ctx context.Context) error
}

// BankGateway covers the bank/cash book endpoints.
type BankGateway interface {
	ListTransactions(ctx context.Context, params ListParams) ([]entity.BankTransaction, error)
	CreateTransaction(ctx context.Context, t *entity.BankTransaction) (*entity.BankTransaction, error)
	UpdateTransaction(ctx context.Context, id string, t *entity.BankTransaction) (*entity.BankTransaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	Summary(ctx context.Context) (*entity.BankSummary, error)
}

// ExpenseGateway covers expense tracking.
type ExpenseGateway interface {
	List(ctx context.Context, params ListParams) ([]entity.Expense, error)
	Create(ctx context.Context, e *entity.Expense) (*entity.Expense, error)
	Update(ctx context.Context, id string, e *entity.Expense) (*entity.Expense, error)
}
