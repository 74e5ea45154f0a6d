package entity

import (
	"time"

	"github.com/opticore/optipos/internal/domain/enum"
)

// BankTransaction is one bank/cash book entry. The running balance is
// computed server-side.
type BankTransaction struct {
	ID              string                   `json:"id"`
	TransactionDate time.Time                `json:"transaction_date"`
	TransactionType enum.BankTransactionType `json:"transaction_type"`
	Amount          float64                  `json:"amount"`
	BalanceAfter    float64                  `json:"balance_after"`
	Category        string                   `json:"category,omitempty"`
	Description     string                   `json:"description,omitempty"`
}

// BankSummary is the server-aggregated bank book overview.
type BankSummary struct {
	Balance          float64 `json:"balance"`
	TotalDeposits    float64 `json:"total_deposits"`
	TotalWithdrawals float64 `json:"total_withdrawals"`
}

// Expense is one expense record.
type Expense struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	ExpenseDate time.Time `json:"expense_date"`
	CreatedBy   string    `json:"created_by,omitempty"`
}

// AuditLog is one audit trail row; the terminal only reads and deletes.
type AuditLog struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	PerformedBy string    `json:"performedBy"`
	Details     string    `json:"details,omitempty"`
	IPAddress   string    `json:"ipAddress,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
