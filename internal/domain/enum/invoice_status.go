package enum

// InvoiceStatus is the server-derived payment status of an invoice. The
// terminal never sets it directly; it re-reads the invoice after each
// mutation and renders whatever the store API derived.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusPartial InvoiceStatus = "Partial"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPartial, InvoiceStatusPaid:
		return true
	}
	return false
}
