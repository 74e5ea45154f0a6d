package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceDue(t *testing.T) {
	inv := Invoice{FinalAmount: 1000, PaidAmount: 400}
	assert.InDelta(t, 600.0, inv.Due(), 1e-9)
	assert.InDelta(t, 600.0, inv.RawDue(), 1e-9)

	// Overpayment: the display due clamps at zero, the raw due goes negative.
	over := Invoice{FinalAmount: 1000, PaidAmount: 1200}
	assert.InDelta(t, 0.0, over.Due(), 1e-9)
	assert.InDelta(t, -200.0, over.RawDue(), 1e-9)
}

func TestInvoiceHasPrescription(t *testing.T) {
	plain := Invoice{Items: []InvoiceItem{{ItemName: "Frame"}}}
	assert.False(t, plain.HasPrescription())

	empty := Invoice{Items: []InvoiceItem{{ItemName: "Lens", Prescription: &PrescriptionData{LensType: "CR-39"}}}}
	assert.False(t, empty.HasPrescription())

	withRx := Invoice{Items: []InvoiceItem{
		{ItemName: "Frame"},
		{ItemName: "Lens", Prescription: &PrescriptionData{Right: EyePrescription{Distance: RxValues{Sph: "-1.00"}}}},
	}}
	assert.True(t, withRx.HasPrescription())
}
