// Package memory provides an in-memory QuoteStore implementation.
// It is the default backend: a single mutex serializes all mutations, which
// gives the linearizability the store contract requires without a database.
package memory

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/quotastic/quotastic/internal/domain"
)

// Store holds quotes in process memory. The zero value is not usable; create
// instances with New.
//
// All methods return copies of stored quotes, so callers can never mutate
// state the store owns.
type Store struct {
	mu     sync.RWMutex
	quotes map[int64]*domain.Quote
	order  []int64 // live ids in creation order
	nextID int64

	// now is swappable for tests.
	now func() time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		quotes: make(map[int64]*domain.Quote),
		now:    time.Now,
	}
}

// Add creates a new quote with a fresh id, zero views, and the current time.
// Ids increase monotonically and are never reused, even after deletion.
func (s *Store) Add(ctx context.Context, sub domain.Submission) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	quote := &domain.Quote{
		ID:        s.nextID,
		Text:      sub.Text,
		Author:    sub.Author,
		Views:     0,
		CreatedAt: s.now(),
	}

	s.quotes[quote.ID] = quote
	s.order = append(s.order, quote.ID)

	out := *quote

	return &out, nil
}

// Random picks uniformly among live quotes and increments the winner's view
// counter. Selection and increment happen under one critical section, so a
// concurrent delete can never leave a phantom increment, and concurrent
// random reads never lose updates. An empty store yields (nil, nil).
func (s *Store) Random(ctx context.Context) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) == 0 {
		return nil, nil
	}

	id := s.order[rand.IntN(len(s.order))]
	quote := s.quotes[id]
	quote.Views++

	out := *quote

	return &out, nil
}

// List returns all live quotes in creation order. The result is a snapshot:
// later writes do not disturb it.
func (s *Store) List(ctx context.Context) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Quote, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.quotes[id])
	}

	return out, nil
}

// Delete removes the quote if present and reports whether it existed.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quotes[id]; !ok {
		return false, nil
	}

	delete(s.quotes, id)

	for i, liveID := range s.order {
		if liveID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return true, nil
}

// Stats returns the live count and total views at the moment of the call.
func (s *Store) Stats(ctx context.Context) (domain.StoreStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.StoreStats{
		TotalQuotes: int64(len(s.order)),
	}
	for _, quote := range s.quotes {
		stats.TotalViews += quote.Views
	}

	return stats, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "quote-store"
}

// Check implements ports.HealthChecker. An in-memory store is healthy as
// long as its internal indexes agree.
func (s *Store) Check(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) != len(s.quotes) {
		return domain.NewUnavailableError("quote-store", "index out of sync")
	}

	return nil
}
