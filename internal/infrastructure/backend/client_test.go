package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opticore/optipos/internal/domain/gateway"
	"github.com/opticore/optipos/pkg/apperror"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":"inv-1"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	sales := NewSalesGateway(client)

	ctx := WithToken(context.Background(), "remote-token")
	invoice, err := sales.Get(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "inv-1", invoice.ID)
	assert.Equal(t, "Bearer remote-token", gotAuth)
}

func TestClientSurfacesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Insufficient stock"}`))
	}))
	defer srv.Close()

	sales := NewSalesGateway(NewClient(srv.URL, time.Second))
	_, err := sales.Create(context.Background(), &gateway.CreateSaleRequest{})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, "Insufficient stock", appErr.Message)
}

func TestClientUnreachableBackend(t *testing.T) {
	sales := NewSalesGateway(NewClient("http://127.0.0.1:1", time.Second))
	_, err := sales.Get(context.Background(), "inv-1")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperror.GetAppError(err).Code)
}

func TestSalesGatewayPaths(t *testing.T) {
	type seen struct {
		method string
		path   string
		query  string
		body   []byte
	}
	var last seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		last = seen{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: body}
		if r.URL.Path == "/sales/date-range" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	sales := NewSalesGateway(NewClient(srv.URL, time.Second))
	ctx := context.Background()

	_, err := sales.ListByDateRange(ctx,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "/sales/date-range", last.path)
	assert.Contains(t, last.query, "start_date=2026-03-01")
	assert.Contains(t, last.query, "end_date=2026-03-31")

	require.NoError(t, sales.RecordPayment(ctx, "inv-1", &gateway.PaymentRequest{Amount: 100, PaymentMethod: "Cash"}))
	assert.Equal(t, http.MethodPost, last.method)
	assert.Equal(t, "/sales/inv-1/payment", last.path)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(last.body, &payload))
	assert.InDelta(t, 100.0, payload["amount"], 1e-9)

	require.NoError(t, sales.DeletePayment(ctx, "pay-1"))
	assert.Equal(t, http.MethodDelete, last.method)
	assert.Equal(t, "/sales/payments/pay-1", last.path)
}

func TestListQuery(t *testing.T) {
	q := listQuery(2, 25, "lens")
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "25", q.Get("per_page"))
	assert.Equal(t, "lens", q.Get("search"))

	assert.Empty(t, listQuery(0, 0, ""))
}
