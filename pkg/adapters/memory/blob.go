package memory

import (
	"context"
	"sync"

	"github.com/aretw0/tradein/pkg/domain"
)

// BlobStore implements ports.BlobStore in memory.
type BlobStore struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewBlobStore creates an empty in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{data: make(map[string]string)}
}

// Get returns the stored value or domain.ErrNotFound.
func (s *BlobStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

// Set stores the value.
func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Delete removes the key.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
