package backend

import (
	"context"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
)

type productGateway struct {
	client *Client
}

// NewProductGateway creates the store API product gateway
func NewProductGateway(client *Client) gateway.ProductGateway {
	return &productGateway{client: client}
}

func (g *productGateway) List(ctx context.Context, params gateway.ListParams) ([]entity.Product, error) {
	var products []entity.Product
	q := listQuery(params.Page, params.PerPage, params.Search)
	if err := g.client.get(ctx, "/products", q, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (g *productGateway) Get(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	if err := g.client.get(ctx, "/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (g *productGateway) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	var created entity.Product
	if err := g.client.post(ctx, "/products", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *productGateway) Update(ctx context.Context, id string, p *entity.Product) (*entity.Product, error) {
	var updated entity.Product
	if err := g.client.put(ctx, "/products/"+id, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *productGateway) Delete(ctx context.Context, id string) error {
	return g.client.delete(ctx, "/products/"+id)
}

func (g *productGateway) IncrementStock(ctx context.Context, id string, additional int) (*entity.Product, error) {
	var updated entity.Product
	body := entity.StockIncrement{AdditionalStock: additional}
	if err := g.client.put(ctx, "/products/"+id+"/stock", body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
