package memory

import (
	"context"
	"sync"

	"github.com/aretw0/tradein/pkg/domain"
)

// ResultStore implements ports.ResultStore in memory.
type ResultStore struct {
	data map[string]domain.TradeInState
	mu   sync.RWMutex
}

// NewResultStore creates an empty in-memory result store.
func NewResultStore() *ResultStore {
	return &ResultStore{data: make(map[string]domain.TradeInState)}
}

// Get returns the published state, or a zero state.
func (s *ResultStore) Get(ctx context.Context, shopper string) (domain.TradeInState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.data[shopper]), nil
}

// Put replaces the published state.
func (s *ResultStore) Put(ctx context.Context, shopper string, state domain.TradeInState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[shopper] = copyState(state)
	return nil
}

// Delete clears the published state.
func (s *ResultStore) Delete(ctx context.Context, shopper string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, shopper)
	return nil
}

func copyState(state domain.TradeInState) domain.TradeInState {
	if state.Item != nil {
		item := *state.Item
		if item.Details.Extra != nil {
			extra := make(map[string]string, len(item.Details.Extra))
			for k, v := range item.Details.Extra {
				extra[k] = v
			}
			item.Details.Extra = extra
		}
		state.Item = &item
	}
	return state
}
