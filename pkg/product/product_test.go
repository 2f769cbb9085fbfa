package product_test

import (
	"testing"

	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var xbox = domain.Product{
	ID:         "x1",
	Slug:       "series-x",
	Name:       "Xbox Series X",
	Platform:   domain.PlatformXbox,
	OfferPrice: domain.Units(399),
	Models:     []domain.PricedOption{{Name: "Standard"}, {Name: "Digital", Price: domain.Units(-50)}},
	Memories:   []domain.PricedOption{{Name: "1TB"}, {Name: "2TB", Price: domain.Units(80)}},
}

func TestPrice(t *testing.T) {
	q, err := product.Price(xbox, product.Selection{
		Model:       "Digital",
		Memory:      "2TB",
		Condition:   "eccellente",
		Controllers: 2,
	}, domain.TradeInState{})
	require.NoError(t, err)

	assert.Equal(t, domain.Units(-50), q.Model)
	assert.Equal(t, domain.Units(80), q.Memory)
	assert.Equal(t, domain.Units(30), q.Condition)
	assert.Equal(t, domain.Units(60), q.Controllers)
	assert.Equal(t, domain.Units(519), q.Configured)
	assert.Equal(t, q.Configured, q.AfterTradeIn)
	assert.Zero(t, q.TradeIn)
}

func TestPrice_WithTradeIn(t *testing.T) {
	active := domain.TradeInState{Active: true, FinalValue: domain.Units(420)}

	q, err := product.Price(xbox, product.Selection{}, active)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(399), q.Configured)
	assert.Equal(t, domain.Units(420), q.TradeIn)
	assert.Equal(t, domain.Amount(0), q.AfterTradeIn, "never negative")

	q, err = product.Price(xbox, product.Selection{Condition: "new"}, domain.TradeInState{Active: true, FinalValue: domain.Units(100)})
	require.NoError(t, err)
	assert.Equal(t, domain.Units(369), q.AfterTradeIn)

	inactive := domain.TradeInState{FinalValue: domain.Units(100)}
	q, err = product.Price(xbox, product.Selection{}, inactive)
	require.NoError(t, err)
	assert.Equal(t, domain.Units(399), q.AfterTradeIn)
}

func TestPrice_UnknownOptions(t *testing.T) {
	for _, sel := range []product.Selection{
		{Model: "Elite"},
		{Memory: "4TB"},
		{Condition: "mint"},
		{Controllers: 3},
		{Controllers: -1},
	} {
		_, err := product.Price(xbox, sel, domain.TradeInState{})
		assert.ErrorIs(t, err, product.ErrUnknownOption, "%+v", sel)
	}
}

func TestControllerOptions(t *testing.T) {
	ps := product.ControllerOptions(domain.PlatformPlaystation)
	require.Len(t, ps, 3)
	assert.Equal(t, domain.Units(80), ps[2].ExtraCost)

	nin := product.ControllerOptions(domain.PlatformNintendo)
	assert.Equal(t, domain.Amount(0), nin[2].ExtraCost)
}

func TestSelection_Line(t *testing.T) {
	line := product.Selection{Model: "Digital", Controllers: 1}.Line("x1", nil)
	assert.Equal(t, "1", line.Controller)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "x1", line.ProductID)
}
