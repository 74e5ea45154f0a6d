// Package menu holds the static navigation table: one record per screen,
// carrying the permission code that gates it. Route registration and the
// /menu endpoint both read from this table, so a screen can never be
// reachable under one permission and listed under another.
package menu

import "github.com/opticore/optipos/internal/domain/entity"

// Permission codes gating the terminal's screens.
const (
	PermPOS           = "POS"
	PermSales         = "SALES"
	PermDueCollection = "DUE_COLLECTION"
	PermProducts      = "PRODUCTS"
	PermCustomers     = "CUSTOMERS"
	PermJobCards      = "JOB_CARDS"
	PermReports       = "REPORTS"
	PermUsers         = "USERS"
	PermSettings      = "SETTINGS"
	PermAuditLogs     = "AUDIT_LOGS"
	PermBank          = "BANK"
	PermExpenses      = "EXPENSES"
)

// Entry is one navigation record.
type Entry struct {
	ID         string `json:"id"`
	Path       string `json:"path"`
	Title      string `json:"title"`
	Permission string `json:"permission"`
}

// Entries is the full navigation table in display order.
var Entries = []Entry{
	{ID: "pos", Path: "/pos", Title: "Point of Sale", Permission: PermPOS},
	{ID: "sales", Path: "/sales", Title: "Sales & Invoices", Permission: PermSales},
	{ID: "due-collection", Path: "/due-collection", Title: "Due Collection", Permission: PermDueCollection},
	{ID: "products", Path: "/products", Title: "Products", Permission: PermProducts},
	{ID: "customers", Path: "/customers", Title: "Customers", Permission: PermCustomers},
	{ID: "job-cards", Path: "/job-cards", Title: "Job Cards", Permission: PermJobCards},
	{ID: "reports", Path: "/reports", Title: "Reports", Permission: PermReports},
	{ID: "users", Path: "/users", Title: "Users", Permission: PermUsers},
	{ID: "settings", Path: "/settings", Title: "Invoice Settings", Permission: PermSettings},
	{ID: "audit-logs", Path: "/audit-logs", Title: "Audit Logs", Permission: PermAuditLogs},
	{ID: "bank", Path: "/bank", Title: "Bank Book", Permission: PermBank},
	{ID: "expenses", Path: "/expenses", Title: "Expenses", Permission: PermExpenses},
}

// VisibleTo returns the entries the user may open.
func VisibleTo(user *entity.User) []Entry {
	if user == nil {
		return nil
	}
	visible := make([]Entry, 0, len(Entries))
	for _, e := range Entries {
		if user.HasPermission(e.Permission) {
			visible = append(visible, e)
		}
	}
	return visible
}
