package backend

import (
	"context"
	"net/url"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
)

type customerGateway struct {
	client *Client
}

// NewCustomerGateway creates the store API customer gateway
func NewCustomerGateway(client *Client) gateway.CustomerGateway {
	return &customerGateway{client: client}
}

func (g *customerGateway) List(ctx context.Context, params gateway.ListParams) ([]entity.Customer, error) {
	var customers []entity.Customer
	q := listQuery(params.Page, params.PerPage, params.Search)
	if err := g.client.get(ctx, "/customers", q, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (g *customerGateway) Search(ctx context.Context, query string) ([]entity.Customer, error) {
	var customers []entity.Customer
	q := url.Values{"q": []string{query}}
	if err := g.client.get(ctx, "/customers/search", q, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (g *customerGateway) Get(ctx context.Context, id string) (*entity.Customer, error) {
	var customer entity.Customer
	if err := g.client.get(ctx, "/customers/"+id, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (g *customerGateway) Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	var created entity.Customer
	if err := g.client.post(ctx, "/customers", c, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *customerGateway) Update(ctx context.Context, id string, c *entity.Customer) (*entity.Customer, error) {
	var updated entity.Customer
	if err := g.client.put(ctx, "/customers/"+id, c, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *customerGateway) Delete(ctx context.Context, id string) error {
	return g.client.delete(ctx, "/customers/"+id)
}
