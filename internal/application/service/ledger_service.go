package service

import (
	"context"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/pkg/apperror"
)

// BankService fronts the bank/cash book endpoints.
type BankService struct {
	bank gateway.BankGateway
}

// NewBankService creates a new bank service
func NewBankService(bank gateway.BankGateway) *BankService {
	return &BankService{bank: bank}
}

func (s *BankService) ListTransactions(ctx context.Context, params gateway.ListParams) ([]entity.BankTransaction, error) {
	return s.bank.ListTransactions(ctx, params)
}

func (s *BankService) CreateTransaction(ctx context.Context, t *entity.BankTransaction) (*entity.BankTransaction, error) {
	if !t.TransactionType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid transaction type")
	}
	if t.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}
	return s.bank.CreateTransaction(ctx, t)
}

func (s *BankService) UpdateTransaction(ctx context.Context, id string, t *entity.BankTransaction) (*entity.BankTransaction, error) {
	if t.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}
	return s.bank.UpdateTransaction(ctx, id, t)
}

func (s *BankService) DeleteTransaction(ctx context.Context, id string) error {
	return s.bank.DeleteTransaction(ctx, id)
}

func (s *BankService) Summary(ctx context.Context) (*entity.BankSummary, error) {
	return s.bank.Summary(ctx)
}

// ExpenseService fronts the expense endpoints.
type ExpenseService struct {
	expenses gateway.ExpenseGateway
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenses gateway.ExpenseGateway) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

func (s *ExpenseService) List(ctx context.Context, params gateway.ListParams) ([]entity.Expense, error) {
	return s.expenses.List(ctx, params)
}

func (s *ExpenseService) Create(ctx context.Context, e *entity.Expense) (*entity.Expense, error) {
	if e.Category == "" {
		return nil, apperror.NewBadRequestError("Expense category is required")
	}
	if e.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}
	return s.expenses.Create(ctx, e)
}

func (s *ExpenseService) Update(ctx context.Context, id string, e *entity.Expense) (*entity.Expense, error) {
	if e.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}
	return s.expenses.Update(ctx, id, e)
}

// AuditService fronts the audit-log endpoints; the terminal reads and
// deletes only.
type AuditService struct {
	audit gateway.AuditGateway
}

// NewAuditService creates a new audit service
func NewAuditService(audit gateway.AuditGateway) *AuditService {
	return &AuditService{audit: audit}
}

func (s *AuditService) List(ctx context.Context, params gateway.ListParams) ([]entity.AuditLog, error) {
	return s.audit.List(ctx, params)
}

func (s *AuditService) Delete(ctx context.Context, id string) error {
	return s.audit.Delete(ctx, id)
}

func (s *AuditService) DeleteMine(ctx context.Context) error {
	return s.audit.DeleteMine(ctx)
}
