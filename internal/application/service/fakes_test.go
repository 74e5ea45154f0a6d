package service

import (
	"context"
	"time"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/pkg/apperror"
)

// fakeProductGateway serves a fixed product catalog.
type fakeProductGateway struct {
	products map[string]entity.Product
}

func (f *fakeProductGateway) List(ctx context.Context, params gateway.ListParams) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductGateway) Get(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Product")
	}
	return &p, nil
}

func (f *fakeProductGateway) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	return p, nil
}

func (f *fakeProductGateway) Update(ctx context.Context, id string, p *entity.Product) (*entity.Product, error) {
	return p, nil
}

func (f *fakeProductGateway) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeProductGateway) IncrementStock(ctx context.Context, id string, additional int) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Product")
	}
	p.StockQuantity += additional
	f.products[id] = p
	return &p, nil
}

// fakeCustomerGateway serves a fixed customer list.
type fakeCustomerGateway struct {
	customers map[string]entity.Customer
}

func (f *fakeCustomerGateway) List(ctx context.Context, params gateway.ListParams) ([]entity.Customer, error) {
	out := make([]entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerGateway) Search(ctx context.Context, query string) ([]entity.Customer, error) {
	return f.List(ctx, gateway.ListParams{})
}

func (f *fakeCustomerGateway) Get(ctx context.Context, id string) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return &c, nil
}

func (f *fakeCustomerGateway) Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	return c, nil
}

func (f *fakeCustomerGateway) Update(ctx context.Context, id string, c *entity.Customer) (*entity.Customer, error) {
	return c, nil
}

func (f *fakeCustomerGateway) Delete(ctx context.Context, id string) error { return nil }

// fakeSalesGateway records every mutation it receives.
type fakeSalesGateway struct {
	invoice     *entity.Invoice
	createdReqs []*gateway.CreateSaleRequest
	payments    []*gateway.PaymentRequest
	updated     []*gateway.PaymentRequest
	deleted     []string
}

func (f *fakeSalesGateway) Create(ctx context.Context, req *gateway.CreateSaleRequest) (*entity.Invoice, error) {
	f.createdReqs = append(f.createdReqs, req)
	return f.invoice, nil
}

func (f *fakeSalesGateway) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	if f.invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return f.invoice, nil
}

func (f *fakeSalesGateway) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Invoice, error) {
	if f.invoice == nil {
		return nil, nil
	}
	return []entity.Invoice{*f.invoice}, nil
}

func (f *fakeSalesGateway) Update(ctx context.Context, id string, req *gateway.UpdateSaleRequest) (*entity.Invoice, error) {
	return f.invoice, nil
}

func (f *fakeSalesGateway) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeSalesGateway) CreateLegacy(ctx context.Context, req *gateway.LegacySaleRequest) (*entity.Invoice, error) {
	return f.invoice, nil
}

func (f *fakeSalesGateway) RecordPayment(ctx context.Context, saleID string, req *gateway.PaymentRequest) error {
	f.payments = append(f.payments, req)
	return nil
}

func (f *fakeSalesGateway) UpdatePayment(ctx context.Context, paymentID string, req *gateway.PaymentRequest) error {
	f.updated = append(f.updated, req)
	return nil
}

func (f *fakeSalesGateway) DeletePayment(ctx context.Context, paymentID string) error {
	f.deleted = append(f.deleted, paymentID)
	return nil
}

func (f *fakeSalesGateway) PaymentHistory(ctx context.Context, params gateway.ListParams) ([]entity.PaymentHistory, error) {
	return nil, nil
}

// fakeAuthGateway accepts one credential pair.
type fakeAuthGateway struct {
	email    string
	password string
	user     entity.User
}

func (f *fakeAuthGateway) Login(ctx context.Context, email, password string) (*gateway.LoginResult, error) {
	if email != f.email || password != f.password {
		return nil, apperror.ErrInvalidCredentials
	}
	return &gateway.LoginResult{Token: "remote-token", User: f.user}, nil
}

func (f *fakeAuthGateway) Me(ctx context.Context) (*entity.User, error) {
	return &f.user, nil
}

// fakeSettingsGateway serves one settings record.
type fakeSettingsGateway struct {
	settings *entity.InvoiceSettings
	err      error
}

func (f *fakeSettingsGateway) Get(ctx context.Context) (*entity.InvoiceSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

func (f *fakeSettingsGateway) Update(ctx context.Context, s *entity.InvoiceSettings) (*entity.InvoiceSettings, error) {
	f.settings = s
	return s, nil
}

func (f *fakeSettingsGateway) UploadLogo(ctx context.Context, filename string, data []byte) (string, error) {
	return "/uploads/" + filename, nil
}
