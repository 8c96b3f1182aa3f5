// Package memory implements the request store in process memory. It backs
// single-instance deployments and tests: transactions are serialized by one
// mutex and their writes are staged until the callback returns nil.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// Store keeps requests in a map. It is both the request repository and the
// transaction manager for that repository.
type Store struct {
	txMu sync.Mutex

	mu       sync.RWMutex
	requests map[uuid.UUID]*domain.Request
}

// New creates an empty Store.
func New() *Store {
	return &Store{requests: make(map[uuid.UUID]*domain.Request)}
}

type txCtxKey struct{}

type txState struct {
	pending map[uuid.UUID]*domain.Request
}

func txFromCtx(ctx context.Context) (*txState, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(*txState)
	return tx, ok
}

// RunInTx runs fn while holding the store's transaction lock. Writes made
// through the tx context become visible only after fn returns nil. A nested
// call joins the outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	tx := &txState{pending: make(map[uuid.UUID]*domain.Request)}
	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}

	s.mu.Lock()
	for id, r := range tx.pending {
		s.requests[id] = r
	}
	s.mu.Unlock()
	return nil
}

// lookup returns the current version of a request as seen from ctx, without cloning.
func (s *Store) lookup(ctx context.Context, id uuid.UUID) (*domain.Request, bool) {
	if tx, ok := txFromCtx(ctx); ok {
		if r, ok := tx.pending[id]; ok {
			return r, true
		}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[id]
	return r, ok
}

func (s *Store) put(ctx context.Context, r *domain.Request) {
	if tx, ok := txFromCtx(ctx); ok {
		tx.pending[r.ID] = r
		return
	}
	s.mu.Lock()
	s.requests[r.ID] = r
	s.mu.Unlock()
}

// GetByID returns a copy of the request.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	r, ok := s.lookup(ctx, id)
	if !ok {
		return nil, fmt.Errorf("request %s: %w", id, domain.ErrNotFound)
	}
	return r.Clone(), nil
}

// GetByIDForUpdate is GetByID; the transaction lock already excludes other writers.
func (s *Store) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	return s.GetByID(ctx, id)
}

// Create stores a new request with version 1.
func (s *Store) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	if _, ok := s.lookup(ctx, req.ID); ok {
		return nil, fmt.Errorf("request %s: %w", req.ID, domain.ErrAlreadyExists)
	}
	c := req.Clone()
	c.Version = 1
	s.put(ctx, c)
	return c.Clone(), nil
}

// Save replaces the stored request if req.Version matches and bumps the version.
func (s *Store) Save(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	cur, ok := s.lookup(ctx, req.ID)
	if !ok {
		return nil, fmt.Errorf("request %s: %w", req.ID, domain.ErrNotFound)
	}
	if cur.Version != req.Version {
		return nil, fmt.Errorf("request %s: version %d is stale: %w", req.ID, req.Version, domain.ErrConflict)
	}
	c := req.Clone()
	c.Version = cur.Version + 1
	s.put(ctx, c)
	return c.Clone(), nil
}

// List returns committed requests matching filter, newest first.
func (s *Store) List(_ context.Context, filter domain.RequestFilter) ([]*domain.Request, int, error) {
	s.mu.RLock()
	matched := make([]*domain.Request, 0, len(s.requests))
	for _, r := range s.requests {
		if filter.Kind != nil && r.Kind != *filter.Kind {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		matched = append(matched, r)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	total := len(matched)
	start := min(filter.Offset, total)
	end := total
	if filter.Limit > 0 {
		end = min(start+filter.Limit, total)
	}

	out := make([]*domain.Request, 0, end-start)
	for _, r := range matched[start:end] {
		out = append(out, r.Clone())
	}
	return out, total, nil
}

// Ping reports the store as always reachable.
func (s *Store) Ping(context.Context) error { return nil }
