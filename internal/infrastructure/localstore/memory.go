package localstore

import (
	"context"
	"sync"
	"time"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/store"
)

// MemoryHoldStore keeps held transactions in process memory. Holds do not
// survive a restart, which matches a terminal running without Redis.
type MemoryHoldStore struct {
	mu   sync.Mutex
	held map[string]map[int64]entity.HeldTransaction
}

var _ store.HoldStore = (*MemoryHoldStore)(nil)

func NewMemoryHoldStore() *MemoryHoldStore {
	return &MemoryHoldStore{held: make(map[string]map[int64]entity.HeldTransaction)}
}

func (s *MemoryHoldStore) Put(ctx context.Context, terminalID string, h *entity.HeldTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.held[terminalID] == nil {
		s.held[terminalID] = make(map[int64]entity.HeldTransaction)
	}
	s.held[terminalID][h.ID] = *h
	return nil
}

func (s *MemoryHoldStore) List(ctx context.Context, terminalID string) ([]entity.HeldTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	held := make([]entity.HeldTransaction, 0, len(s.held[terminalID]))
	for _, h := range s.held[terminalID] {
		held = append(held, h)
	}
	return held, nil
}

func (s *MemoryHoldStore) Take(ctx context.Context, terminalID string, id int64) (*entity.HeldTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.held[terminalID][id]
	if !ok {
		return nil, nil
	}
	delete(s.held[terminalID], id)
	return &h, nil
}

func (s *MemoryHoldStore) Delete(ctx context.Context, terminalID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.held[terminalID], id)
	return nil
}

type sessionEntry struct {
	session entity.Session
	expires time.Time
}

// MemorySessionStore keeps sessions in process memory with TTL expiry.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
}

var _ store.SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]sessionEntry)}
}

func (s *MemorySessionStore) Save(ctx context.Context, sess *entity.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sessionEntry{session: *sess, expires: time.Now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expires) {
		delete(s.sessions, id)
		return nil, nil
	}
	sess := entry.session
	return &sess, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type idemEntry struct {
	response []byte
	done     bool
	expires  time.Time
}

// MemoryIdempotencyStore remembers idempotency keys in process memory.
type MemoryIdempotencyStore struct {
	mu   sync.Mutex
	keys map[string]idemEntry
}

var _ store.IdempotencyStore = (*MemoryIdempotencyStore)(nil)

func NewMemoryIdempotencyStore() *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{keys: make(map[string]idemEntry)}
}

func (s *MemoryIdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (store.ClaimState, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.keys[key]
	if ok && time.Now().Before(entry.expires) {
		if entry.done {
			return store.ClaimReplay, entry.response, nil
		}
		return store.ClaimPending, nil, nil
	}
	s.keys[key] = idemEntry{expires: time.Now().Add(ttl)}
	return store.ClaimFresh, nil, nil
}

func (s *MemoryIdempotencyStore) StoreResponse(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = idemEntry{response: response, done: true, expires: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryIdempotencyStore) Release(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
	return nil
}
