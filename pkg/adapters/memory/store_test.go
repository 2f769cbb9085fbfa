package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/tradein/pkg/adapters/memory"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunSessionStoreContract(t, memory.NewStore())
}

func TestMemoryResultStore_Contract(t *testing.T) {
	ports.RunResultStoreContract(t, memory.NewResultStore())
}

func TestMemoryBlobStore_Contract(t *testing.T) {
	ports.RunBlobStoreContract(t, memory.NewBlobStore())
}

func TestSource(t *testing.T) {
	ctx := context.Background()
	src := memory.NewSource([]domain.Product{
		{ID: "1", Slug: "ps5", Name: "PS5", Platform: domain.PlatformPlaystation, OfferPrice: domain.Units(400), Images: []string{"ps5.png"}},
		{ID: "2", Slug: "ps4", Name: "PS4", Platform: domain.PlatformPlaystation, OfferPrice: domain.Units(150)},
		{ID: "3", Slug: "xsx", Name: "Series X", Platform: domain.PlatformXbox, OfferPrice: domain.Units(350)},
	}, map[string]domain.Catalog{
		"1": {{ID: "q", Text: "Q", Step: 1, Options: []domain.Option{{Value: "v", Label: "V"}}}},
	})

	consoles, err := src.Consoles(ctx, domain.PlatformPlaystation, 0)
	require.NoError(t, err)
	require.Len(t, consoles, 2)
	assert.Equal(t, "PS4", consoles[0].Name)
	assert.Equal(t, "ps5.png", consoles[1].ImageRef)

	limited, err := src.Consoles(ctx, domain.PlatformPlaystation, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	all, err := src.Consoles(ctx, domain.PlatformUnknown, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	c, err := src.Console(ctx, "xsx")
	require.NoError(t, err)
	assert.Equal(t, domain.Units(350), c.BasePrice)

	_, err = src.Console(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cat, err := src.Catalog(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, cat, 1)

	_, err = src.Catalog(ctx, "2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
