package entity

import (
	"encoding/json"
	"log"
	"time"

	"github.com/opticore/optipos/internal/domain/enum"
)

// InvoiceItem is one sale line. The subtotal is computed client-side
// (quantity x unit price) before submission; the store API persists it
// verbatim.
type InvoiceItem struct {
	ItemName     string            `json:"item_name"`
	Quantity     int               `json:"quantity"`
	UnitPrice    float64           `json:"unit_price"`
	Subtotal     float64           `json:"subtotal"`
	Prescription *PrescriptionData `json:"prescription_data,omitempty"`
}

// invoiceItemWire tolerates the two shapes prescription_data arrives in
// (object or JSON-encoded string).
type invoiceItemWire struct {
	ItemName     string          `json:"item_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    float64         `json:"unit_price"`
	Subtotal     float64         `json:"subtotal"`
	Prescription json.RawMessage `json:"prescription_data"`
}

// UnmarshalJSON decodes a line item, normalizing the prescription payload.
// A malformed prescription is logged and dropped for that item only; the
// invoice itself still decodes.
func (i *InvoiceItem) UnmarshalJSON(data []byte) error {
	var wire invoiceItemWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	i.ItemName = wire.ItemName
	i.Quantity = wire.Quantity
	i.UnitPrice = wire.UnitPrice
	i.Subtotal = wire.Subtotal

	rx, err := ParsePrescription(wire.Prescription)
	if err != nil {
		log.Printf("invoice item %q: malformed prescription data: %v", wire.ItemName, err)
		return nil
	}
	i.Prescription = rx
	return nil
}

// Invoice mirrors the store API's sale record. final_amount and status are
// derived server-side; the terminal recomputes totals only for display and
// never submits a status.
type Invoice struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	CustomerID    string             `json:"customer_id,omitempty"`
	Customer      *Customer          `json:"customer,omitempty"`
	Items         []InvoiceItem      `json:"items"`
	TotalAmount   float64            `json:"total_amount"`
	Discount      float64            `json:"discount"`
	FinalAmount   float64            `json:"final_amount"`
	PaidAmount    float64            `json:"paid_amount"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Note          string             `json:"note,omitempty"`
	Status        enum.InvoiceStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	Payments      []PaymentHistory   `json:"payments,omitempty"`
}

// Due returns the outstanding balance, clamped at zero for display.
func (inv *Invoice) Due() float64 {
	due := inv.FinalAmount - inv.PaidAmount
	if due < 0 {
		return 0
	}
	return due
}

// RawDue returns the unclamped balance; negative means overpayment.
func (inv *Invoice) RawDue() float64 {
	return inv.FinalAmount - inv.PaidAmount
}

// HasPrescription reports whether any line carries prescription values.
func (inv *Invoice) HasPrescription() bool {
	for i := range inv.Items {
		if inv.Items[i].Prescription.HasValues() {
			return true
		}
	}
	return false
}

// PaymentHistory is one append-only payment row against an invoice. Editing
// or deleting a row is a privileged operation that implicitly changes the
// parent invoice's due.
type PaymentHistory struct {
	ID            string             `json:"id"`
	InvoiceID     string             `json:"invoice_id"`
	Amount        float64            `json:"amount"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	PaymentDate   time.Time          `json:"payment_date"`
	Notes         string             `json:"notes,omitempty"`
	ProcessedBy   string             `json:"processed_by,omitempty"`
}
