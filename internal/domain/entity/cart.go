package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opticore/optipos/internal/domain/enum"
	"github.com/opticore/optipos/pkg/pricing"
)

// CartItem is one in-progress sale line. Money is decimal until checkout,
// when the wire DTO is built.
type CartItem struct {
	ProductID    string            `json:"product_id"`
	Name         string            `json:"name"`
	Quantity     int               `json:"quantity"`
	UnitPrice    decimal.Decimal   `json:"unit_price"`
	Prescription *PrescriptionData `json:"prescription_data,omitempty"`
}

// Cart is the state of an in-progress sale at one terminal session. All
// mutation happens under the owning service's lock; the struct itself is
// not synchronized.
type Cart struct {
	Items         []CartItem         `json:"items"`
	Customer      *Customer          `json:"customer,omitempty"`
	Discount      decimal.Decimal    `json:"discount"`
	PaidAmount    decimal.Decimal    `json:"paid_amount"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Note          string             `json:"note,omitempty"`
}

// NewCart returns an empty cart with zeroed adjustments.
func NewCart() *Cart {
	return &Cart{
		Discount:      decimal.Zero,
		PaidAmount:    decimal.Zero,
		PaymentMethod: enum.PaymentMethodCash,
	}
}

// AddItem appends a line, merging quantity into an existing line for the
// same product. Lines carrying a prescription are never merged; each
// prescription belongs to exactly one line.
func (c *Cart) AddItem(item CartItem) {
	if item.Prescription == nil {
		for i := range c.Items {
			if c.Items[i].ProductID == item.ProductID && c.Items[i].Prescription == nil {
				c.Items[i].Quantity += item.Quantity
				return
			}
		}
	}
	c.Items = append(c.Items, item)
}

// RemoveItem deletes the line at index; out-of-range indexes are ignored.
func (c *Cart) RemoveItem(index int) {
	if index < 0 || index >= len(c.Items) {
		return
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
}

// SetCustomer assigns the single active customer slot. Re-selecting the
// same customer is a no-op; selecting another replaces the slot.
func (c *Cart) SetCustomer(customer *Customer) {
	if customer == nil {
		c.Customer = nil
		return
	}
	if c.Customer != nil && c.Customer.ID == customer.ID {
		return
	}
	c.Customer = customer
}

// Totals derives subtotal, net total and due from the current lines.
func (c *Cart) Totals() pricing.Totals {
	lines := make([]pricing.LineItem, len(c.Items))
	for i, item := range c.Items {
		lines[i] = pricing.LineItem{Quantity: item.Quantity, UnitPrice: item.UnitPrice}
	}
	return pricing.Compute(lines, c.Discount, c.PaidAmount)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clear resets the cart to its initial state.
func (c *Cart) Clear() {
	*c = *NewCart()
}

// HeldTransaction is a cashier-suspended sale snapshot. The ID is generated
// client-side (unix milliseconds) and has no relation to any server record
// until checkout.
type HeldTransaction struct {
	ID         int64           `json:"id"`
	Date       time.Time       `json:"date"`
	Customer   *Customer       `json:"customer,omitempty"`
	Items      []CartItem      `json:"cart"`
	Discount   decimal.Decimal `json:"discount"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
}

// Snapshot captures the cart into a held transaction with the given ID.
func (c *Cart) Snapshot(id int64, at time.Time) *HeldTransaction {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return &HeldTransaction{
		ID:         id,
		Date:       at,
		Customer:   c.Customer,
		Items:      items,
		Discount:   c.Discount,
		PaidAmount: c.PaidAmount,
	}
}

// Restore replaces the cart's state with a held snapshot.
func (c *Cart) Restore(h *HeldTransaction) {
	c.Clear()
	c.Items = make([]CartItem, len(h.Items))
	copy(c.Items, h.Items)
	c.Customer = h.Customer
	c.Discount = h.Discount
	c.PaidAmount = h.PaidAmount
}
