// Package publish holds the shared trade-in state read by product and cart
// views, and the publisher that commits wizard results into it.
package publish

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/tradein/internal/logging"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/ports"
)

// Container is the shared trade-in state. It exposes only Commit and Clear,
// so the active flag, the value and the detail record always change together.
type Container struct {
	store  ports.ResultStore
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[string]map[chan domain.TradeInState]struct{}
}

// NewContainer creates a container over a result store.
func NewContainer(store ports.ResultStore, logger *slog.Logger) *Container {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Container{
		store:       store,
		logger:      logger,
		subscribers: make(map[string]map[chan domain.TradeInState]struct{}),
	}
}

// Commit activates the trade-in for a shopper with the given value and item.
func (c *Container) Commit(ctx context.Context, shopper string, value domain.Amount, item domain.TradeInItem) (domain.TradeInState, error) {
	state := domain.TradeInState{
		Active:     true,
		FinalValue: value,
		Item:       &item,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := c.store.Put(ctx, shopper, state); err != nil {
		return domain.TradeInState{}, fmt.Errorf("failed to publish trade-in: %w", err)
	}
	c.broadcast(shopper, state)
	return state, nil
}

// Clear deactivates the trade-in for a shopper.
func (c *Container) Clear(ctx context.Context, shopper string) error {
	if err := c.store.Delete(ctx, shopper); err != nil {
		return fmt.Errorf("failed to clear trade-in: %w", err)
	}
	c.broadcast(shopper, domain.TradeInState{UpdatedAt: time.Now().UTC()})
	return nil
}

// Snapshot returns the current state for a shopper.
func (c *Container) Snapshot(ctx context.Context, shopper string) (domain.TradeInState, error) {
	state, err := c.store.Get(ctx, shopper)
	if err != nil {
		return domain.TradeInState{}, fmt.Errorf("failed to read trade-in: %w", err)
	}
	return state, nil
}

// Subscribe registers for state changes of a shopper.
// The returned function unsubscribes and closes the channel.
func (c *Container) Subscribe(shopper string) (<-chan domain.TradeInState, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan domain.TradeInState, 10)
	if _, ok := c.subscribers[shopper]; !ok {
		c.subscribers[shopper] = make(map[chan domain.TradeInState]struct{})
	}
	c.subscribers[shopper][ch] = struct{}{}

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if subs, ok := c.subscribers[shopper]; ok {
			if _, ok := subs[ch]; !ok {
				return
			}
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(c.subscribers, shopper)
			}
		}
	}
}

func (c *Container) broadcast(shopper string, state domain.TradeInState) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for ch := range c.subscribers[shopper] {
		select {
		case ch <- state:
		default:
			// Drop update if the subscriber is slow
			c.logger.Warn("Subscriber buffer full, dropping update", "shopper", shopper)
		}
	}
}
