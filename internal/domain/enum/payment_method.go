package enum

// PaymentMethod is the tender type accepted at the counter.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "Cash"
	PaymentMethodCard   PaymentMethod = "Card"
	PaymentMethodMFS    PaymentMethod = "MFS" // mobile financial service
	PaymentMethodCheque PaymentMethod = "Cheque"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMFS, PaymentMethodCheque:
		return true
	}
	return false
}
