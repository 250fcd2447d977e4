// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never adapter DTOs or infrastructure types
//   - Error returns use domain error types (ErrUnavailable, ErrNotFound, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/quotastic/quotastic/internal/domain"
)

// QuoteStore is the persistence capability for quotes. It exclusively owns
// all quote records and is the sole mutator of their view counters.
//
// Implementations must make conflicting operations linearizable: concurrent
// Random calls on the same quote never lose view increments, and a Delete
// racing a Random never leaves a deleted row's counter updated. Storage-layer
// failures surface as domain.ErrUnavailable errors, never as silent "no data".
type QuoteStore interface {
	// Add creates a new quote from an accepted submission, assigning a fresh
	// monotonically increasing id, zero views, and the current timestamp.
	Add(ctx context.Context, sub domain.Submission) (*domain.Quote, error)

	// Random selects uniformly at random among all live quotes and
	// atomically increments the winner's view counter by exactly one.
	// An empty store yields (nil, nil): a normal outcome, not a fault.
	Random(ctx context.Context) (*domain.Quote, error)

	// List returns all live quotes ordered by creation time ascending,
	// with snapshot-at-call semantics: concurrent writes elsewhere do not
	// disturb the returned sequence.
	List(ctx context.Context) ([]domain.Quote, error)

	// Delete removes the quote if present and reports whether a deletion
	// occurred. Deleting a missing id is not an error, just false.
	Delete(ctx context.Context, id int64) (bool, error)

	// Stats returns the live quote count and the sum of views across all
	// live quotes at the moment of the call.
	Stats(ctx context.Context) (domain.StoreStats, error)
}
