package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// BankHandler handles the bank/cash book screen
type BankHandler struct {
	bank *service.BankService
}

// NewBankHandler creates a new bank handler
func NewBankHandler(bank *service.BankService) *BankHandler {
	return &BankHandler{bank: bank}
}

func (h *BankHandler) List(c *gin.Context) {
	txns, err := h.bank.ListTransactions(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transactions retrieved", txns)
}

func (h *BankHandler) Create(c *gin.Context) {
	var txn entity.BankTransaction
	if err := c.ShouldBindJSON(&txn); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.bank.CreateTransaction(c.Request.Context(), &txn)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Transaction created", created)
}

func (h *BankHandler) Update(c *gin.Context) {
	var txn entity.BankTransaction
	if err := c.ShouldBindJSON(&txn); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.bank.UpdateTransaction(c.Request.Context(), c.Param("id"), &txn)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction updated", updated)
}

func (h *BankHandler) Delete(c *gin.Context) {
	if err := h.bank.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (h *BankHandler) Summary(c *gin.Context) {
	summary, err := h.bank.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bank summary retrieved", summary)
}

// ExpenseHandler handles the expense screen
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenses.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expenses retrieved", expenses)
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var expense entity.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.expenses.Create(c.Request.Context(), &expense)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Expense created", created)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var expense entity.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.expenses.Update(c.Request.Context(), c.Param("id"), &expense)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense updated", updated)
}

// AuditHandler handles the audit-log screen
type AuditHandler struct {
	audit *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(audit *service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

func (h *AuditHandler) List(c *gin.Context) {
	logs, err := h.audit.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Audit logs retrieved", logs)
}

func (h *AuditHandler) Delete(c *gin.Context) {
	if err := h.audit.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// DeleteMine clears the audit rows belonging to the authenticated user
func (h *AuditHandler) DeleteMine(c *gin.Context) {
	if err := h.audit.DeleteMine(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
