// Package store defines the terminal-local persistence interfaces: held
// transactions, sessions and idempotency keys. These hold state that the
// remote store API never sees. The Redis implementation lives in
// internal/infrastructure/localstore, with an in-memory implementation for
// tests. Access is last-write-wins; the store is scoped to a single
// terminal and never shared across devices.
package store

import (
	"context"
	"time"

	"github.com/opticore/optipos/internal/domain/entity"
)

// HoldStore persists cashier-suspended sale snapshots. Snapshots survive
// until recalled or deleted; recall is destructive (Take removes the
// snapshot).
type HoldStore interface {
	Put(ctx context.Context, terminalID string, h *entity.HeldTransaction) error
	List(ctx context.Context, terminalID string) ([]entity.HeldTransaction, error)
	// Take removes and returns the snapshot, or nil when absent.
	Take(ctx context.Context, terminalID string, id int64) (*entity.HeldTransaction, error)
	Delete(ctx context.Context, terminalID string, id int64) error
}

// SessionStore persists terminal sessions keyed by session ID.
type SessionStore interface {
	Save(ctx context.Context, s *entity.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}

// ClaimState is the outcome of claiming an idempotency key.
type ClaimState int

const (
	// ClaimFresh means the key was unseen; the caller owns it and runs
	// the request.
	ClaimFresh ClaimState = iota
	// ClaimPending means another request claimed the key but has not
	// stored its response yet.
	ClaimPending
	// ClaimReplay means a stored response is available.
	ClaimReplay
)

// IdempotencyStore remembers checkout idempotency keys with their stored
// response so a double-submitted checkout returns the first result instead
// of creating a second sale.
type IdempotencyStore interface {
	// Claim records the key if unseen. ClaimReplay carries the stored
	// response body.
	Claim(ctx context.Context, key string, ttl time.Duration) (ClaimState, []byte, error)
	// StoreResponse attaches the response body to a claimed key, making
	// it replayable. The body must be non-empty.
	StoreResponse(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release abandons a claim so the key can be used again.
	Release(ctx context.Context, key string) error
}
