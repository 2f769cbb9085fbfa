package publish_test

import (
	"context"
	"testing"

	"github.com/aretw0/tradein/internal/wizard"
	"github.com/aretw0/tradein/pkg/adapters/memory"
	"github.com/aretw0/tradein/pkg/cart"
	"github.com/aretw0/tradein/pkg/catalog"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/publish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summarySession(t *testing.T, nav *wizard.Navigator) *domain.Session {
	t.Helper()
	ctx := context.Background()
	s := domain.NewSession("s1", "alice")
	s, token := nav.SelectConsole(ctx, s, domain.Console{
		ID: "ps5", Name: "PS5", BasePrice: domain.Units(400), ImageRef: "/img/ps5.png",
		Platform: domain.PlatformPlaystation,
	})
	s, _ = nav.ResolveCatalog(ctx, s, token, catalog.Default(), domain.CatalogSourceDefault)
	s, _ = nav.Advance(ctx, s)
	for _, v := range []string{"good", "si_perfetta", "si_completi", "due", "1tb", "si_scatola"} {
		var err error
		s, err = nav.Answer(ctx, s, "", v)
		require.NoError(t, err)
		s, _ = nav.Advance(ctx, s)
	}
	require.Equal(t, domain.PhaseSummary, s.Phase())
	return s
}

func TestPublish_IsAtomic(t *testing.T) {
	ctx := context.Background()
	nav := wizard.New()
	container := publish.NewContainer(memory.NewResultStore(), nil)
	pub := publish.NewPublisher(container)

	s := summarySession(t, nav)
	offer, ok := nav.Offer(s)
	require.True(t, ok)

	updates, unsubscribe := container.Subscribe("alice")
	defer unsubscribe()

	state, err := pub.Publish(ctx, s, offer)
	require.NoError(t, err)
	assert.True(t, state.Active)
	assert.Equal(t, domain.Units(420), state.FinalValue)
	assert.Equal(t, nav.Calculator().Calculate(s.Console.BasePrice, s.Answers, s.Catalog), state.FinalValue)
	require.NotNil(t, state.Item)
	assert.Equal(t, "PS5", state.Item.ProductName)
	assert.Equal(t, "/img/ps5.png", state.Item.ImagePath)
	assert.Equal(t, 2, state.Item.Details.ControllerCount)

	got := <-updates
	assert.True(t, got.Active)
	assert.Equal(t, domain.Units(420), got.FinalValue)

	snap, err := pub.Snapshot(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, snap.Active)
	assert.Equal(t, state.FinalValue, snap.FinalValue)

	require.NoError(t, pub.Remove(ctx, "alice"))
	cleared := <-updates
	assert.False(t, cleared.Active)
	assert.Zero(t, cleared.FinalValue)

	snap, err = pub.Snapshot(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, snap.Active)
	assert.Zero(t, snap.FinalValue)
	assert.Nil(t, snap.Item)
}

func TestPublish_RequiresSummary(t *testing.T) {
	pub := publish.NewPublisher(publish.NewContainer(memory.NewResultStore(), nil))

	_, err := pub.Publish(context.Background(), domain.NewSession("s1", "alice"), domain.Offer{})
	assert.ErrorIs(t, err, domain.ErrNotAtSummary)
}

func TestRemove_DetachesCart(t *testing.T) {
	ctx := context.Background()
	carts := cart.NewService(memory.NewBlobStore())
	pub := publish.NewPublisher(
		publish.NewContainer(memory.NewResultStore(), nil),
		publish.WithCart(carts),
	)

	_, err := carts.Add(ctx, "alice", domain.CartLine{
		ProductID: "p1",
		TradeIn:   &domain.TradeInItem{ProductName: "PS4"},
	})
	require.NoError(t, err)

	require.NoError(t, pub.Remove(ctx, "alice"))

	c, err := carts.Get(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Nil(t, c.Lines[0].TradeIn)
}

func TestSubscribe_UnsubscribeClosesChannel(t *testing.T) {
	container := publish.NewContainer(memory.NewResultStore(), nil)
	ch, unsubscribe := container.Subscribe("alice")
	unsubscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)
}
