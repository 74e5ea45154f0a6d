package backend

import (
	"context"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
)

// --- Job cards ---

type jobCardGateway struct {
	client *Client
}

// NewJobCardGateway creates the store API job-card gateway
func NewJobCardGateway(client *Client) gateway.JobCardGateway {
	return &jobCardGateway{client: client}
}

func (g *jobCardGateway) List(ctx context.Context, params gateway.ListParams) ([]entity.JobCard, error) {
	var cards []entity.JobCard
	q := listQuery(params.Page, params.PerPage, params.Search)
	if err := g.client.get(ctx, "/job-cards", q, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (g *jobCardGateway) Get(ctx context.Context, id string) (*entity.JobCard, error) {
	var card entity.JobCard
	if err := g.client.get(ctx, "/job-cards/"+id, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (g *jobCardGateway) Create(ctx context.Context, jc *entity.JobCard) (*entity.JobCard, error) {
	var created entity.JobCard
	if err := g.client.post(ctx, "/job-cards", jc, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *jobCardGateway) Update(ctx context.Context, id string, jc *entity.JobCard) (*entity.JobCard, error) {
	var updated entity.JobCard
	if err := g.client.put(ctx, "/job-cards/"+id, jc, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *jobCardGateway) Delete(ctx context.Context, id string) error {
	return g.client.delete(ctx, "/job-cards/"+id)
}

// --- Users ---

type userGateway struct {
	client *Client
}

// NewUserGateway creates the store API user gateway
func NewUserGateway(client *Client) gateway.UserGateway {
	return &userGateway{client: client}
}

func (g *userGateway) List(ctx context.Context, params gateway.ListParams) ([]entity.User, error) {
	var users []entity.User
	q := listQuery(params.Page, params.PerPage, params.Search)
	if err := g.client.get(ctx, "/users", q, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *userGateway) Get(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := g.client.get(ctx, "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *userGateway) Create(ctx context.Context, u *entity.User, password string) (*entity.User, error) {
	body := struct {
		entity.User
		Password string `json:"password"`
	}{User: *u, Password: password}

	var created entity.User
	if err := g.client.post(ctx, "/users", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *userGateway) Update(ctx context.Context, id string, u *entity.User) (*entity.User, error) {
	var updated entity.User
	if err := g.client.put(ctx, "/users/"+id, u, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *userGateway) Delete(ctx context.Context, id string) error {
	return g.client.delete(ctx, "/users/"+id)
}

func (g *userGateway) Permissions(ctx context.Context) ([]string, error) {
	var codes []string
	if err := g.client.get(ctx, "/users/permissions", nil, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// --- Invoice settings ---

type settingsGateway struct {
	client *Client
}

// NewSettingsGateway creates the store API invoice-settings gateway
func NewSettingsGateway(client *Client) gateway.SettingsGateway {
	return &settingsGateway{client: client}
}

func (g *settingsGateway) Get(ctx context.Context) (*entity.InvoiceSettings, error) {
	var settings entity.InvoiceSettings
	if err := g.client.get(ctx, "/invoice-settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (g *settingsGateway) Update(ctx context.Context, s *entity.InvoiceSettings) (*entity.InvoiceSettings, error) {
	var updated entity.InvoiceSettings
	if err := g.client.put(ctx, "/invoice-settings", s, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *settingsGateway) UploadLogo(ctx context.Context, filename string, data []byte) (string, error) {
	var result struct {
		Logo string `json:"logo"`
	}
	if err := g.client.doMultipart(ctx, "/invoice-settings/logo", "logo", filename, data, &result); err != nil {
		return "", err
	}
	return result.Logo, nil
}

// --- Audit logs ---

type auditGateway struct {
	client *Client
}

// NewAuditGateway creates the store API audit-log gateway
func NewAuditGateway(client *Client) gateway.AuditGateway {
	return &auditGateway{client: client}
}

func (g *auditGateway) List(ctx context.Context, params gateway.ListParams) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	q := listQuery(params.Page, params.PerPage, params.Search)
	if err := g.client.get(ctx, "/audit-logs", q, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (g *auditGateway) Delete(ctx context.Context, id string) error {
	return g.client.delete(ctx, "/audit-logs/"+id)
}

func (g *auditGateway) DeleteMine(ctx context.Context) error {
	return g.client.delete(ctx, "/audit-logs/my-logs")
}

// --- Bank/cash book ---

type bankGateway struct {
	client *Client
}

// NewBankGateway creates the store API bank gateway
func NewBankGateway(client *Client) gateway.BankGateway {
	return &bankGateway{client: client}
}

func (g *bankGateway) ListTransactions(ctx context.Context, params gateway.ListParams) ([]entity.BankTransaction, error) {
	var txns []entity.BankTransaction
	q := listQuery(params.Page, params.PerPage, params.Search)
	if err := g.client.get(ctx, "/bank/transactions", q, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (g *bankGateway) CreateTransaction(ctx context.Context, t *entity.BankTransaction) (*entity.BankTransaction, error) {
	var created entity.BankTransaction
	if err := g.client.post(ctx, "/bank/transactions", t, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *bankGateway) UpdateTransaction(ctx context.Context, id string, t *entity.BankTransaction) (*entity.BankTransaction, error) {
	var updated entity.BankTransaction
	if err := g.client.put(ctx, "/bank/transactions/"+id, t, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *bankGateway) DeleteTransaction(ctx context.Context, id string) error {
	return g.client.delete(ctx, "/bank/transactions/"+id)
}

func (g *bankGateway) Summary(ctx context.Context) (*entity.BankSummary, error) {
	var summary entity.BankSummary
	if err := g.client.get(ctx, "/bank/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// --- Expenses ---

type expenseGateway struct {
	client *Client
}

// NewExpenseGateway creates the store API expense gateway
func NewExpenseGateway(client *Client) gateway.ExpenseGateway {
	return &expenseGateway{client: client}
}

func (g *expenseGateway) List(ctx context.Context, params gateway.ListParams) ([]entity.Expense, error) {
	var expenses []entity.Expense
	q := listQuery(params.Page, params.PerPage, params.Search)
	if err := g.client.get(ctx, "/expenses", q, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (g *expenseGateway) Create(ctx context.Context, e *entity.Expense) (*entity.Expense, error) {
	var created entity.Expense
	if err := g.client.post(ctx, "/expenses", e, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *expenseGateway) Update(ctx context.Context, id string, e *entity.Expense) (*entity.Expense, error) {
	var updated entity.Expense
	if err := g.client.put(ctx, "/expenses/"+id, e, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
