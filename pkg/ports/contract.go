package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/tradein/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSessionStoreContract runs a suite of tests to verify that a SessionStore implementation
// adheres to the defined interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		session := domain.NewSession(sessionID, "shopper-1")
		session.Console = &domain.Console{ID: "ps5", Name: "PS5", BasePrice: domain.Units(400)}
		session.Catalog = domain.Catalog{
			{ID: "q1", Step: 1, Options: []domain.Option{{Value: "good", Label: "Good", Deduction: -10}}},
		}
		session.Step = 1
		session.Answers["q1"] = "good"

		err := store.Save(ctx, sessionID, session)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, session.Step, loaded.Step)
		assert.Equal(t, "good", loaded.Answers["q1"])
		require.NotNil(t, loaded.Console)
		assert.Equal(t, domain.Units(400), loaded.Console.BasePrice)
		require.Len(t, loaded.Catalog, 1)
		assert.Equal(t, -10, loaded.Catalog[0].Options[0].Deduction)
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		loaded.Answers["q1"] = "mutated"

		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "good", again.Answers["q1"])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewSession(sessionID, "shopper-1"))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.NewSession(id1, "a"))
		_ = store.Save(ctx, id2, domain.NewSession(id2, "b"))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}

// RunResultStoreContract verifies a ResultStore implementation.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	shopper := "contract-shopper-" + time.Now().Format("20060102150405")

	t.Run("Get Empty", func(t *testing.T) {
		state, err := store.Get(ctx, shopper)
		require.NoError(t, err)
		assert.False(t, state.Active)
		assert.Equal(t, domain.Amount(0), state.FinalValue)
		assert.Nil(t, state.Item)
	})

	t.Run("Put and Get", func(t *testing.T) {
		err := store.Put(ctx, shopper, domain.TradeInState{
			Active:     true,
			FinalValue: domain.Units(420),
			Item: &domain.TradeInItem{
				ProductName: "PS5",
				ImagePath:   "/img/ps5.png",
				Details:     domain.Breakdown{Condition: "Good", ControllerCount: 2},
			},
		})
		require.NoError(t, err)

		state, err := store.Get(ctx, shopper)
		require.NoError(t, err)
		assert.True(t, state.Active)
		assert.Equal(t, domain.Units(420), state.FinalValue)
		require.NotNil(t, state.Item)
		assert.Equal(t, "PS5", state.Item.ProductName)
		assert.Equal(t, 2, state.Item.Details.ControllerCount)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, shopper))

		state, err := store.Get(ctx, shopper)
		require.NoError(t, err)
		assert.False(t, state.Active)
		assert.Nil(t, state.Item)
	})
}

// RunBlobStoreContract verifies a BlobStore implementation.
func RunBlobStoreContract(t *testing.T, store BlobStore) {
	ctx := context.Background()
	key := "contract-blob-" + time.Now().Format("20060102150405")

	t.Run("Get Missing", func(t *testing.T) {
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, `[{"productId":"p1","quantity":1}]`))
		val, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, `[{"productId":"p1","quantity":1}]`, val)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, key))
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, store.Delete(ctx, key), "deleting twice is not an error")
	})
}
