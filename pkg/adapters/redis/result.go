package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/tradein/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// ResultStore implements ports.ResultStore. Each shopper's state is a single
// JSON value, so a Put replaces flag, value and item in one SET.
type ResultStore struct {
	client *backend.Client
	prefix string
}

// NewResultStore creates a result store under prefix.
func NewResultStore(client *backend.Client, prefix string) *ResultStore {
	return &ResultStore{client: client, prefix: prefix}
}

func (r *ResultStore) key(shopper string) string {
	return r.prefix + "result:" + shopper
}

// Get returns the published state, or a zero state.
func (r *ResultStore) Get(ctx context.Context, shopper string) (domain.TradeInState, error) {
	data, err := r.client.Get(ctx, r.key(shopper)).Bytes()
	if errors.Is(err, backend.Nil) {
		return domain.TradeInState{}, nil
	}
	if err != nil {
		return domain.TradeInState{}, fmt.Errorf("failed to read trade-in from redis: %w", err)
	}
	var state domain.TradeInState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.TradeInState{}, fmt.Errorf("failed to unmarshal trade-in: %w", err)
	}
	return state, nil
}

// Put replaces the published state.
func (r *ResultStore) Put(ctx context.Context, shopper string, state domain.TradeInState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal trade-in: %w", err)
	}
	if err := r.client.Set(ctx, r.key(shopper), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write trade-in to redis: %w", err)
	}
	return nil
}

// Delete clears the published state.
func (r *ResultStore) Delete(ctx context.Context, shopper string) error {
	if err := r.client.Del(ctx, r.key(shopper)).Err(); err != nil {
		return fmt.Errorf("failed to delete trade-in from redis: %w", err)
	}
	return nil
}
