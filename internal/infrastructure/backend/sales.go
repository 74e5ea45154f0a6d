package backend

import (
	"context"
	"net/url"
	"time"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
)

type salesGateway struct {
	client *Client
}

// NewSalesGateway creates the store API sales gateway
func NewSalesGateway(client *Client) gateway.SalesGateway {
	return &salesGateway{client: client}
}

func (g *salesGateway) Create(ctx context.Context, req *gateway.CreateSaleRequest) (*entity.Invoice, error) {
	var invoice entity.Invoice
	if err := g.client.post(ctx, "/sales", req, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (g *salesGateway) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	if err := g.client.get(ctx, "/sales/"+id, nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (g *salesGateway) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	q := url.Values{
		"start_date": []string{from.Format("2006-01-02")},
		"end_date":   []string{to.Format("2006-01-02")},
	}
	if err := g.client.get(ctx, "/sales/date-range", q, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (g *salesGateway) Update(ctx context.Context, id string, req *gateway.UpdateSaleRequest) (*entity.Invoice, error) {
	var invoice entity.Invoice
	if err := g.client.put(ctx, "/sales/"+id, req, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (g *salesGateway) Delete(ctx context.Context, id string) error {
	return g.client.delete(ctx, "/sales/"+id)
}

func (g *salesGateway) CreateLegacy(ctx context.Context, req *gateway.LegacySaleRequest) (*entity.Invoice, error) {
	var invoice entity.Invoice
	if err := g.client.post(ctx, "/sales/legacy", req, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (g *salesGateway) RecordPayment(ctx context.Context, saleID string, req *gateway.PaymentRequest) error {
	return g.client.post(ctx, "/sales/"+saleID+"/payment", req, nil)
}

func (g *salesGateway) UpdatePayment(ctx context.Context, paymentID string, req *gateway.PaymentRequest) error {
	return g.client.put(ctx, "/sales/payments/"+paymentID, req, nil)
}

func (g *salesGateway) DeletePayment(ctx context.Context, paymentID string) error {
	return g.client.delete(ctx, "/sales/payments/"+paymentID)
}

func (g *salesGateway) PaymentHistory(ctx context.Context, params gateway.ListParams) ([]entity.PaymentHistory, error) {
	var history []entity.PaymentHistory
	q := listQuery(params.Page, params.PerPage, params.Search)
	if err := g.client.get(ctx, "/sales/payments/history", q, &history); err != nil {
		return nil, err
	}
	return history, nil
}
