package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/tradein/pkg/adapters/memory"
	"github.com/aretw0/tradein/pkg/cart"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddMergesIdenticalConfiguration(t *testing.T) {
	var c cart.Cart
	line := domain.CartLine{ProductID: "p1", Model: "Slim", Memory: "1TB", Condition: "new"}

	c.Add(line)
	c.Add(line)
	c.Add(domain.CartLine{ProductID: "p1", Model: "Pro"})

	require.Len(t, c.Lines, 2)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, 1, c.Lines[1].Quantity)
	assert.Equal(t, 3, c.Quantity("p1"))
}

func TestCart_IncreaseDecrease(t *testing.T) {
	var c cart.Cart
	c.Add(domain.CartLine{ProductID: "p1"})

	require.NoError(t, c.Increase("p1"))
	assert.Equal(t, 2, c.Quantity("p1"))

	require.NoError(t, c.Decrease("p1"))
	require.NoError(t, c.Decrease("p1"))
	assert.Equal(t, 1, c.Quantity("p1"), "never below one")

	assert.ErrorIs(t, c.Increase("nope"), domain.ErrLineNotFound)
	assert.ErrorIs(t, c.Remove("nope"), domain.ErrLineNotFound)

	require.NoError(t, c.Remove("p1"))
	assert.Empty(t, c.Lines)
}

func TestCart_EncodeDecode(t *testing.T) {
	c, err := cart.Decode("")
	require.NoError(t, err)
	assert.Empty(t, c.Lines)

	raw, err := c.Encode()
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	c, err = cart.Decode(`[{"productId":"p1","quantity":2,"tradeIn":{"productName":"PS4","imagePath":"","details":{"condition":"Good","technicalDefects":"","accessories":"","controllerCount":1}},"model":"","controller":"1","memory":"","condition":""}]`)
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	require.NotNil(t, c.Lines[0].TradeIn)
	assert.Equal(t, "PS4", c.Lines[0].TradeIn.ProductName)

	assert.True(t, c.DetachTradeIn())
	assert.False(t, c.DetachTradeIn())

	_, err = cart.Decode("{broken")
	assert.Error(t, err)
}

func TestCart_Totals(t *testing.T) {
	var c cart.Cart
	c.Add(domain.CartLine{ProductID: "p1", Quantity: 2})
	c.Add(domain.CartLine{ProductID: "p2"})
	c.Add(domain.CartLine{ProductID: "unknown"})

	totals := c.Totals(map[string]domain.Amount{
		"p1": domain.Units(100),
		"p2": domain.Units(50),
	}, domain.Units(5))

	assert.Equal(t, 4, totals.Items)
	assert.Equal(t, domain.Units(250), totals.Subtotal)
	assert.Equal(t, domain.Units(255), totals.Total)
}

func TestService(t *testing.T) {
	ctx := context.Background()
	blobs := memory.NewBlobStore()
	products := memory.NewSource([]domain.Product{
		{ID: "p1", Slug: "ps5", Name: "PS5", OfferPrice: domain.Units(450)},
	}, nil)
	svc := cart.NewService(blobs, cart.WithProducts(products))

	trade := &domain.TradeInItem{ProductName: "PS4"}
	_, err := svc.Add(ctx, "alice", domain.CartLine{ProductID: "p1", TradeIn: trade})
	require.NoError(t, err)
	c, err := svc.Increase(ctx, "alice", "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Quantity("p1"))

	raw, err := blobs.Get(ctx, cart.Key("alice"))
	require.NoError(t, err)
	assert.Contains(t, raw, `"productId":"p1"`)

	_, totals, err := svc.Totals(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.Units(900), totals.Total)

	require.NoError(t, svc.DetachTradeIn(ctx, "alice"))
	c, err = svc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, c.Lines[0].TradeIn)

	_, err = svc.Add(ctx, "alice", domain.CartLine{})
	assert.ErrorIs(t, err, domain.ErrInvalidLine)

	require.NoError(t, svc.Clear(ctx, "alice"))
	c, err = svc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
}

func TestService_CorruptBlobIsEmpty(t *testing.T) {
	ctx := context.Background()
	blobs := memory.NewBlobStore()
	require.NoError(t, blobs.Set(ctx, cart.Key("bob"), "not json"))

	svc := cart.NewService(blobs)
	c, err := svc.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
}

func TestService_AddFunc(t *testing.T) {
	ctx := context.Background()
	svc := cart.NewService(memory.NewBlobStore())

	c, err := svc.AddFunc(ctx, "alice", func(ctx context.Context) (domain.CartLine, error) {
		return domain.CartLine{ProductID: "p1", TradeIn: &domain.TradeInItem{ProductName: "PS4"}}, nil
	})
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "PS4", c.Lines[0].TradeIn.ProductName)

	_, err = svc.AddFunc(ctx, "alice", func(ctx context.Context) (domain.CartLine, error) {
		return domain.CartLine{}, nil
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLine)

	boom := errors.New("trade-in unavailable")
	_, err = svc.AddFunc(ctx, "alice", func(ctx context.Context) (domain.CartLine, error) {
		return domain.CartLine{}, boom
	})
	assert.ErrorIs(t, err, boom)

	c, err = svc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, c.Lines, 1, "failed builds leave the cart untouched")
}
