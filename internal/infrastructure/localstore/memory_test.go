package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/store"
)

func TestMemoryHoldStore(t *testing.T) {
	s := NewMemoryHoldStore()
	ctx := context.Background()

	held := &entity.HeldTransaction{
		ID:       1700000000000,
		Date:     time.Now(),
		Items:    []entity.CartItem{{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromInt(250)}},
		Discount: decimal.NewFromInt(50),
	}
	require.NoError(t, s.Put(ctx, "terminal-1", held))

	list, err := s.List(ctx, "terminal-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, held.ID, list[0].ID)

	// Holds are scoped per terminal.
	other, err := s.List(ctx, "terminal-2")
	require.NoError(t, err)
	assert.Empty(t, other)

	got, err := s.Take(ctx, "terminal-1", held.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "p1", got.Items[0].ProductID)

	// Take consumes the hold.
	gone, err := s.Take(ctx, "terminal-1", held.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	require.NoError(t, s.Put(ctx, "terminal-1", held))
	require.NoError(t, s.Delete(ctx, "terminal-1", held.ID))
	list, err = s.List(ctx, "terminal-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemorySessionStore(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	sess := &entity.Session{ID: "s1", Token: "remote-token"}
	require.NoError(t, s.Save(ctx, sess, time.Hour))

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "remote-token", got.Token)

	missing, err := s.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, s.Delete(ctx, "s1"))
	got, err = s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &entity.Session{ID: "s1"}, -time.Second))
	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryIdempotencyStore(t *testing.T) {
	s := NewMemoryIdempotencyStore()
	ctx := context.Background()

	state, cached, err := s.Claim(ctx, "k1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, store.ClaimFresh, state)
	assert.Nil(t, cached)

	// A second claim before the response lands is pending, not a replay.
	state, cached, err = s.Claim(ctx, "k1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, store.ClaimPending, state)
	assert.Nil(t, cached)

	require.NoError(t, s.StoreResponse(ctx, "k1", []byte(`{"id":"inv-1"}`), time.Hour))
	state, cached, err = s.Claim(ctx, "k1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, store.ClaimReplay, state)
	assert.Equal(t, []byte(`{"id":"inv-1"}`), cached)

	// An expired claim can be taken again.
	state, _, err = s.Claim(ctx, "k2", -time.Second)
	require.NoError(t, err)
	assert.Equal(t, store.ClaimFresh, state)
	state, _, err = s.Claim(ctx, "k2", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, store.ClaimFresh, state)
}

func TestMemoryIdempotencyStoreRelease(t *testing.T) {
	s := NewMemoryIdempotencyStore()
	ctx := context.Background()

	state, _, err := s.Claim(ctx, "k1", time.Hour)
	require.NoError(t, err)
	require.Equal(t, store.ClaimFresh, state)

	require.NoError(t, s.Release(ctx, "k1"))

	// A released key is claimable again.
	state, _, err = s.Claim(ctx, "k1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, store.ClaimFresh, state)
}
