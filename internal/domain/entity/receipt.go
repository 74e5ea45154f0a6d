package entity

// ReceiptHeader holds the business header printed at the top of a receipt,
// sourced from the invoice settings record.
type ReceiptHeader struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// ReceiptItem is a single printed line item, optionally carrying the
// prescription that drives the Rx sub-table.
type ReceiptItem struct {
	Name         string            `json:"name"`
	Quantity     int               `json:"quantity"`
	UnitPrice    float64           `json:"unit_price"`
	Total        float64           `json:"total"`
	Prescription *PrescriptionData `json:"prescription_data,omitempty"`
}

// Receipt is a value object composed from invoice, customer, serving user
// and settings at print time. It is never persisted.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	Ref           string        `json:"ref"`
	InvoiceNo     string        `json:"invoice_no"`
	Date          string        `json:"date"`
	Cashier       string        `json:"cashier,omitempty"`
	Customer      string        `json:"customer,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Items         []ReceiptItem `json:"items"`
	SubTotal      float64       `json:"sub_total"`
	Discount      float64       `json:"discount"`
	NetTotal      float64       `json:"net_total"`
	Paid          float64       `json:"paid"`
	Due           float64       `json:"due"`
	AmountInWords string        `json:"amount_in_words,omitempty"`
	Note          string        `json:"note,omitempty"`
	FooterText    string        `json:"footer_text,omitempty"`
	PaperWidthMM  float64       `json:"paper_width_mm"`
}

// HasPrescription reports whether any printed line carries Rx values; the
// sub-table is rendered only in that case.
func (r *Receipt) HasPrescription() bool {
	for i := range r.Items {
		if r.Items[i].Prescription.HasValues() {
			return true
		}
	}
	return false
}
