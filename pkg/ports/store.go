package ports

import (
	"context"

	"github.com/aretw0/tradein/pkg/domain"
)

// SessionStore defines the interface for persisting wizard sessions.
type SessionStore interface {
	// Save persists the session under its ID.
	Save(ctx context.Context, sessionID string, session *domain.Session) error

	// Load retrieves the session for a given ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Session, error)

	// Delete removes the session for a given ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of the stored sessions.
	List(ctx context.Context) ([]string, error)
}

// ResultStore persists the published trade-in state, one value per shopper.
// A Put replaces the whole value, which keeps flag, amount and detail record in step.
type ResultStore interface {
	// Get returns the state for the shopper; a zero state if none was published.
	Get(ctx context.Context, shopper string) (domain.TradeInState, error)

	// Put replaces the state for the shopper.
	Put(ctx context.Context, shopper string, state domain.TradeInState) error

	// Delete clears the state for the shopper.
	Delete(ctx context.Context, shopper string) error
}

// BlobStore is a simple key-value string store (the cart persistence boundary).
type BlobStore interface {
	// Get returns the stored value. Returns domain.ErrNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
