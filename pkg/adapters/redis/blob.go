package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/tradein/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// BlobStore implements ports.BlobStore with plain Redis strings.
type BlobStore struct {
	client *backend.Client
	prefix string
}

// NewBlobStore creates a blob store; keys are stored as prefix+key.
func NewBlobStore(client *backend.Client, prefix string) *BlobStore {
	return &BlobStore{client: client, prefix: prefix}
}

// Get returns the value or domain.ErrNotFound.
func (b *BlobStore) Get(ctx context.Context, key string) (string, error) {
	v, err := b.client.Get(ctx, b.prefix+key).Result()
	if errors.Is(err, backend.Nil) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read blob from redis: %w", err)
	}
	return v, nil
}

// Set stores the value without expiry.
func (b *BlobStore) Set(ctx context.Context, key, value string) error {
	if err := b.client.Set(ctx, b.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write blob to redis: %w", err)
	}
	return nil
}

// Delete removes the key.
func (b *BlobStore) Delete(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, b.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete blob from redis: %w", err)
	}
	return nil
}
