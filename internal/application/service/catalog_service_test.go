package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opticore/optipos/internal/domain/entity"
)

func TestProductServiceValidation(t *testing.T) {
	products := &fakeProductGateway{products: map[string]entity.Product{
		"p1": {ID: "p1", Name: "Frame", Price: 1200, StockQuantity: 5},
	}}
	svc := NewProductService(products)
	ctx := context.Background()

	_, err := svc.Create(ctx, &entity.Product{Price: 100})
	assert.Error(t, err)

	_, err = svc.Create(ctx, &entity.Product{Name: "Cleaner", Price: -1})
	assert.Error(t, err)

	created, err := svc.Create(ctx, &entity.Product{Name: "Cleaner", Price: 150})
	require.NoError(t, err)
	assert.Equal(t, "Cleaner", created.Name)
}

func TestProductServiceIncrementStock(t *testing.T) {
	products := &fakeProductGateway{products: map[string]entity.Product{
		"p1": {ID: "p1", Name: "Frame", Price: 1200, StockQuantity: 5},
	}}
	svc := NewProductService(products)
	ctx := context.Background()

	_, err := svc.IncrementStock(ctx, "p1", 0)
	assert.Error(t, err)
	_, err = svc.IncrementStock(ctx, "p1", -3)
	assert.Error(t, err)

	p, err := svc.IncrementStock(ctx, "p1", 10)
	require.NoError(t, err)
	assert.Equal(t, 15, p.StockQuantity)
}

func TestCustomerServiceValidation(t *testing.T) {
	svc := NewCustomerService(&fakeCustomerGateway{customers: map[string]entity.Customer{}})
	ctx := context.Background()

	_, err := svc.Create(ctx, &entity.Customer{Phone: "9876543210"})
	assert.Error(t, err)

	_, err = svc.Create(ctx, &entity.Customer{Name: "Asha"})
	assert.Error(t, err)

	c, err := svc.Create(ctx, &entity.Customer{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", c.Name)
}

func TestCustomerServiceSearchEmptyQuery(t *testing.T) {
	svc := NewCustomerService(&fakeCustomerGateway{customers: map[string]entity.Customer{
		"c1": {ID: "c1", Name: "Asha", Phone: "9876543210"},
	}})

	// An empty query returns an empty result without hitting the store API.
	results, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = svc.Search(context.Background(), "ash")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
