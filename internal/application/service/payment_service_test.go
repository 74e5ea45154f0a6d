package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/enum"
	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/internal/infrastructure/localstore"
	"github.com/opticore/optipos/pkg/apperror"
	"github.com/opticore/optipos/pkg/utils"
)

func newTestSessionService(t *testing.T) (*SessionService, string) {
	t.Helper()
	auth := &fakeAuthGateway{
		email:    "cashier@example.com",
		password: "s3cret-pass",
		user: entity.User{
			ID:          "u1",
			Name:        "Cashier",
			Email:       "cashier@example.com",
			Role:        enum.RoleSalesperson,
			Permissions: entity.PermissionList{"POS", "SALES", "DUE_COLLECTION"},
		},
	}
	svc := NewSessionService(auth, localstore.NewMemorySessionStore(), utils.NewJWTManager("test-secret", time.Hour), time.Hour)

	out, err := svc.Login(context.Background(), &LoginInput{Email: "cashier@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	return svc, out.Session.ID
}

func newTestPaymentService(t *testing.T, due float64) (*PaymentService, *fakeSalesGateway, string) {
	t.Helper()
	sessions, sessionID := newTestSessionService(t)
	sales := &fakeSalesGateway{
		invoice: &entity.Invoice{
			ID:          "inv-1",
			FinalAmount: 1000,
			PaidAmount:  1000 - due,
		},
	}
	return NewPaymentService(sales, sessions), sales, sessionID
}

func TestRecordPayment(t *testing.T) {
	svc, sales, _ := newTestPaymentService(t, 400)

	invoice, err := svc.RecordPayment(context.Background(), "inv-1", &RecordPaymentInput{
		Amount:        400,
		PaymentMethod: "Cash",
	})
	require.NoError(t, err)
	assert.Equal(t, "inv-1", invoice.ID)
	require.Len(t, sales.payments, 1)
	assert.InDelta(t, 400.0, sales.payments[0].Amount, 1e-9)
}

func TestRecordPaymentValidation(t *testing.T) {
	svc, sales, _ := newTestPaymentService(t, 400)
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, "inv-1", &RecordPaymentInput{Amount: 0, PaymentMethod: "Cash"})
	assert.Error(t, err)

	_, err = svc.RecordPayment(ctx, "inv-1", &RecordPaymentInput{Amount: 100, PaymentMethod: "Gold"})
	assert.Error(t, err)

	assert.Empty(t, sales.payments)
}

func TestRecordPaymentOverpayNeedsConfirmation(t *testing.T) {
	svc, sales, _ := newTestPaymentService(t, 400)
	ctx := context.Background()

	// Exceeding the due without confirmation is rejected before any
	// request reaches the store API.
	_, err := svc.RecordPayment(ctx, "inv-1", &RecordPaymentInput{
		Amount:        500,
		PaymentMethod: "Cash",
	})
	assert.ErrorIs(t, err, apperror.ErrOverpayNotConfirmed)
	assert.Empty(t, sales.payments)

	// The same amount goes through once confirmed.
	_, err = svc.RecordPayment(ctx, "inv-1", &RecordPaymentInput{
		Amount:         500,
		PaymentMethod:  "Cash",
		ConfirmOverpay: true,
	})
	require.NoError(t, err)
	assert.Len(t, sales.payments, 1)
}

func TestUpdatePaymentRequiresReauth(t *testing.T) {
	svc, sales, sessionID := newTestPaymentService(t, 400)
	ctx := context.Background()

	input := &AmendPaymentInput{Amount: 200, PaymentMethod: "Cash", Password: "wrong"}
	err := svc.UpdatePayment(ctx, sessionID, "pay-1", input)
	assert.ErrorIs(t, err, apperror.ErrReauthRequired)
	assert.Empty(t, sales.updated)

	input.Password = ""
	err = svc.UpdatePayment(ctx, sessionID, "pay-1", input)
	assert.ErrorIs(t, err, apperror.ErrReauthRequired)
	assert.Empty(t, sales.updated)

	input.Password = "s3cret-pass"
	err = svc.UpdatePayment(ctx, sessionID, "pay-1", input)
	require.NoError(t, err)
	assert.Len(t, sales.updated, 1)
}

func TestDeletePaymentRequiresReauth(t *testing.T) {
	svc, sales, sessionID := newTestPaymentService(t, 400)
	ctx := context.Background()

	err := svc.DeletePayment(ctx, sessionID, "pay-1", "nope")
	assert.ErrorIs(t, err, apperror.ErrReauthRequired)
	assert.Empty(t, sales.deleted)

	err = svc.DeletePayment(ctx, sessionID, "pay-1", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, []string{"pay-1"}, sales.deleted)
}

func TestCreateLegacyValidation(t *testing.T) {
	svc, _, _ := newTestPaymentService(t, 0)
	ctx := context.Background()

	cases := []struct {
		name string
		req  gateway.LegacySaleRequest
	}{
		{"missing invoice number", gateway.LegacySaleRequest{FinalAmount: 100}},
		{"zero final amount", gateway.LegacySaleRequest{InvoiceNumber: "L-1"}},
		{"negative paid", gateway.LegacySaleRequest{InvoiceNumber: "L-1", FinalAmount: 100, PaidAmount: -1}},
		{"paid above final", gateway.LegacySaleRequest{InvoiceNumber: "L-1", FinalAmount: 100, PaidAmount: 150}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateLegacy(ctx, &tc.req)
			assert.Error(t, err)
		})
	}

	_, err := svc.CreateLegacy(ctx, &gateway.LegacySaleRequest{
		InvoiceNumber: "L-1",
		FinalAmount:   100,
		PaidAmount:    40,
	})
	assert.NoError(t, err)
}

func TestListDueFiltersSettledInvoices(t *testing.T) {
	sessions, _ := newTestSessionService(t)

	settled := &fakeSalesGateway{invoice: &entity.Invoice{ID: "inv-1", FinalAmount: 500, PaidAmount: 500}}
	svc := NewPaymentService(settled, sessions)
	due, err := svc.ListDue(context.Background(), time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)
	assert.Empty(t, due)

	open := &fakeSalesGateway{invoice: &entity.Invoice{ID: "inv-2", FinalAmount: 500, PaidAmount: 200}}
	svc = NewPaymentService(open, sessions)
	due, err = svc.ListDue(context.Background(), time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "inv-2", due[0].ID)
}
