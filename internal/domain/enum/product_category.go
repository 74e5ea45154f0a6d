package enum

// ProductCategory classifies shop inventory.
type ProductCategory string

const (
	CategoryFrames      ProductCategory = "FRAMES"
	CategoryLens        ProductCategory = "LENS"
	CategoryAccessories ProductCategory = "ACCESSORIES"
)

// CustomerType segments customers for pricing and reporting.
type CustomerType string

const (
	CustomerRegular   CustomerType = "regular"
	CustomerVIP       CustomerType = "vip"
	CustomerWholesale CustomerType = "wholesale"
)

// BankTransactionType classifies bank book entries.
type BankTransactionType string

const (
	BankDeposit    BankTransactionType = "deposit"
	BankWithdrawal BankTransactionType = "withdrawal"
	BankTransfer   BankTransactionType = "transfer"
)

func (t BankTransactionType) Valid() bool {
	switch t {
	case BankDeposit, BankWithdrawal, BankTransfer:
		return true
	}
	return false
}
