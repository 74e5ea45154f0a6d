package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/enum"
	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/internal/domain/store"
	"github.com/opticore/optipos/pkg/apperror"
	"github.com/opticore/optipos/pkg/pricing"
	"github.com/opticore/optipos/pkg/utils"
)

// CartService owns the in-progress sale at each terminal session: line items,
// customer selection, adjustments, hold/recall and checkout. Carts live in
// process memory; held snapshots go to the local store so they survive a
// restart when Redis backs it.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*entity.Cart

	holds      store.HoldStore
	sales      gateway.SalesGateway
	products   gateway.ProductGateway
	customers  gateway.CustomerGateway
	terminalID string
}

// NewCartService creates a new cart service
func NewCartService(
	holds store.HoldStore,
	sales gateway.SalesGateway,
	products gateway.ProductGateway,
	customers gateway.CustomerGateway,
	terminalID string,
) *CartService {
	return &CartService{
		carts:      make(map[string]*entity.Cart),
		holds:      holds,
		sales:      sales,
		products:   products,
		customers:  customers,
		terminalID: terminalID,
	}
}

// cart returns the session's cart, creating it on first use. Callers must
// hold s.mu.
func (s *CartService) cart(sessionID string) *entity.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = entity.NewCart()
		s.carts[sessionID] = c
	}
	return c
}

// CartView is the cart plus its derived totals, returned by every mutation so
// the client re-renders from one response.
type CartView struct {
	Cart   entity.Cart    `json:"cart"`
	Totals pricing.Totals `json:"totals"`
}

func (s *CartService) view(c *entity.Cart) *CartView {
	return &CartView{Cart: *c, Totals: c.Totals()}
}

// Get returns the session's current cart and totals.
func (s *CartService) Get(ctx context.Context, sessionID string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.cart(sessionID)), nil
}

// AddProduct resolves the product from the store API and adds one line. The
// unit price is captured at add time; later catalog changes do not touch
// lines already in the cart.
func (s *CartService) AddProduct(ctx context.Context, sessionID, productID string, quantity int, rx *entity.PrescriptionData) (*CartView, error) {
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	item := entity.CartItem{
		ProductID:    product.ID,
		Name:         product.Name,
		Quantity:     quantity,
		UnitPrice:    decimal.NewFromFloat(product.Price),
		Prescription: rx,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.AddItem(item)
	return s.view(c), nil
}

// RemoveItem deletes one line by index.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, index int) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.RemoveItem(index)
	return s.view(c), nil
}

// SetCustomer assigns the cart's customer; an empty ID clears the selection.
func (s *CartService) SetCustomer(ctx context.Context, sessionID, customerID string) (*CartView, error) {
	var customer *entity.Customer
	if customerID != "" {
		var err error
		customer, err = s.customers.Get(ctx, customerID)
		if err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.SetCustomer(customer)
	return s.view(c), nil
}

// SetDiscount parses and applies the invoice-level discount.
func (s *CartService) SetDiscount(ctx context.Context, sessionID, amount string) (*CartView, error) {
	d, err := pricing.ParseAmount(amount)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid discount amount")
	}
	if d.IsNegative() {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Discount = d
	return s.view(c), nil
}

// SetPaid parses and applies the amount tendered.
func (s *CartService) SetPaid(ctx context.Context, sessionID, amount string) (*CartView, error) {
	p, err := pricing.ParseAmount(amount)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid paid amount")
	}
	if p.IsNegative() {
		return nil, apperror.NewBadRequestError("Paid amount cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.PaidAmount = p
	return s.view(c), nil
}

// SetPaymentMethod records how the sale will be settled.
func (s *CartService) SetPaymentMethod(ctx context.Context, sessionID string, method enum.PaymentMethod) (*CartView, error) {
	if !method.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.PaymentMethod = method
	return s.view(c), nil
}

// SetNote attaches a free-text note to the sale.
func (s *CartService) SetNote(ctx context.Context, sessionID, note string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Note = note
	return s.view(c), nil
}

// Clear empties the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Clear()
	return s.view(c), nil
}

// Hold snapshots the cart into the local store and empties it. The snapshot
// ID is the hold timestamp in unix milliseconds. Snapshot and clear happen
// under one lock so a concurrent mutation lands in the fresh cart instead of
// being wiped; if the store rejects the snapshot the cart is restored.
func (s *CartService) Hold(ctx context.Context, sessionID string) (*entity.HeldTransaction, error) {
	s.mu.Lock()
	c := s.cart(sessionID)
	if c.IsEmpty() {
		s.mu.Unlock()
		return nil, apperror.NewBadRequestError("Cannot hold an empty cart")
	}
	held := c.Snapshot(utils.NewHoldID(), time.Now())
	c.Clear()
	s.mu.Unlock()

	if err := s.holds.Put(ctx, s.terminalID, held); err != nil {
		s.mu.Lock()
		s.cart(sessionID).Restore(held)
		s.mu.Unlock()
		return nil, err
	}
	return held, nil
}

// ListHeld returns the terminal's held transactions, newest first.
func (s *CartService) ListHeld(ctx context.Context) ([]entity.HeldTransaction, error) {
	held, err := s.holds.List(ctx, s.terminalID)
	if err != nil {
		return nil, err
	}
	sort.Slice(held, func(i, j int) bool { return held[i].ID > held[j].ID })
	return held, nil
}

// Recall removes a held snapshot from the store and restores it into the
// session's cart. Whatever was in the cart is replaced.
func (s *CartService) Recall(ctx context.Context, sessionID string, id int64) (*CartView, error) {
	held, err := s.holds.Take(ctx, s.terminalID, id)
	if err != nil {
		return nil, err
	}
	if held == nil {
		return nil, apperror.NewNotFoundError("Held transaction")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Restore(held)
	return s.view(c), nil
}

// DeleteHeld discards a held snapshot without restoring it.
func (s *CartService) DeleteHeld(ctx context.Context, id int64) error {
	return s.holds.Delete(ctx, s.terminalID, id)
}

// Checkout submits the cart as a sale. Line subtotals and totals are computed
// client-side; the created invoice is re-fetched so the caller sees exactly
// what the store API persisted. The cart is cleared only after the sale
// lands.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*entity.Invoice, error) {
	s.mu.Lock()
	c := s.cart(sessionID)
	if c.IsEmpty() {
		s.mu.Unlock()
		return nil, apperror.NewBadRequestError("Cannot check out an empty cart")
	}
	req := buildSaleRequest(c)
	s.mu.Unlock()

	created, err := s.sales.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	invoice, err := s.sales.Get(ctx, created.ID)
	if err != nil {
		// The sale exists; fall back to the creation response.
		invoice = created
	}

	s.mu.Lock()
	s.cart(sessionID).Clear()
	s.mu.Unlock()
	return invoice, nil
}

func buildSaleRequest(c *entity.Cart) *gateway.CreateSaleRequest {
	items := make([]entity.InvoiceItem, len(c.Items))
	for i, item := range c.Items {
		sub := pricing.LineSubtotal(pricing.LineItem{Quantity: item.Quantity, UnitPrice: item.UnitPrice})
		items[i] = entity.InvoiceItem{
			ItemName:     item.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice.InexactFloat64(),
			Subtotal:     sub.InexactFloat64(),
			Prescription: item.Prescription,
		}
	}

	totals := c.Totals()
	req := &gateway.CreateSaleRequest{
		Items:         items,
		TotalAmount:   totals.SubTotal.InexactFloat64(),
		Discount:      c.Discount.InexactFloat64(),
		PaidAmount:    c.PaidAmount.InexactFloat64(),
		PaymentMethod: string(c.PaymentMethod),
		Note:          c.Note,
	}
	if c.Customer != nil {
		req.CustomerID = c.Customer.ID
	}
	return req
}
