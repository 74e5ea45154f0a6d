package service

import (
	"context"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/pkg/apperror"
)

// ProductService fronts the inventory endpoints with input validation; the
// store API owns the records.
type ProductService struct {
	products gateway.ProductGateway
}

// NewProductService creates a new product service
func NewProductService(products gateway.ProductGateway) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context, params gateway.ListParams) ([]entity.Product, error) {
	return s.products.List(ctx, params)
}

func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if p.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if p.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}
	return s.products.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, id string, p *entity.Product) (*entity.Product, error) {
	if p.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}
	return s.products.Update(ctx, id, p)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// IncrementStock sends an additive restock delta.
func (s *ProductService) IncrementStock(ctx context.Context, id string, additional int) (*entity.Product, error) {
	if additional <= 0 {
		return nil, apperror.NewBadRequestError("Additional stock must be positive")
	}
	return s.products.IncrementStock(ctx, id, additional)
}

// CustomerService fronts the customer endpoints.
type CustomerService struct {
	customers gateway.CustomerGateway
}

// NewCustomerService creates a new customer service
func NewCustomerService(customers gateway.CustomerGateway) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) List(ctx context.Context, params gateway.ListParams) ([]entity.Customer, error) {
	return s.customers.List(ctx, params)
}

func (s *CustomerService) Search(ctx context.Context, query string) ([]entity.Customer, error) {
	if query == "" {
		return []entity.Customer{}, nil
	}
	return s.customers.Search(ctx, query)
}

func (s *CustomerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	return s.customers.Get(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if c.Name == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	if c.Phone == "" {
		return nil, apperror.NewBadRequestError("Customer phone is required")
	}
	return s.customers.Create(ctx, c)
}

func (s *CustomerService) Update(ctx context.Context, id string, c *entity.Customer) (*entity.Customer, error) {
	return s.customers.Update(ctx, id, c)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}
