package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/tradein/pkg/catalog"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsWellFormed(t *testing.T) {
	c := catalog.Default()
	require.NoError(t, catalog.Validate(c))
	assert.Equal(t, 5, c.Steps())
	assert.Len(t, c.ForStep(1), 2)
	assert.Empty(t, catalog.Gaps(c))
}

func TestDefault_ReturnsCopy(t *testing.T) {
	c := catalog.Default()
	c[0].Options[0].Label = "mutated"

	assert.NotEqual(t, "mutated", catalog.Default()[0].Options[0].Label)
}

func TestValidate_ReportsProblems(t *testing.T) {
	bad := domain.Catalog{
		{ID: "a", Text: "A", Step: 1, Options: []domain.Option{{Value: "x", Label: "X"}, {Value: "x", Label: "X2"}}},
		{ID: "a", Text: "", Step: 3},
	}

	err := catalog.Validate(bad)
	require.Error(t, err)

	var verr *catalog.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	assert.Contains(t, verr.Problems, `duplicate question id "a"`)
	assert.Contains(t, verr.Problems, `question a has duplicate option value "x"`)
	assert.Contains(t, verr.Problems, "question a has no options")
	assert.Contains(t, verr.Problems, "step 2 has no questions")
}

func TestGaps_SparseSteps(t *testing.T) {
	opt := []domain.Option{{Value: "x", Label: "X"}}
	c := domain.Catalog{
		{ID: "a", Text: "A", Step: 1, Options: opt},
		{ID: "b", Text: "B", Step: 3, Options: opt},
		{ID: "c", Text: "C", Step: 1_000_000, Options: opt},
	}

	assert.Equal(t, []catalog.StepRange{{From: 2, To: 2}, {From: 4, To: 999_999}}, catalog.Gaps(c))

	var verr *catalog.ValidationError
	require.True(t, errors.As(catalog.Validate(c), &verr))
	assert.Contains(t, verr.Problems, "step 2 has no questions")
	assert.Contains(t, verr.Problems, "steps 4-999999 have no questions")
}

func TestValidate_Empty(t *testing.T) {
	assert.Error(t, catalog.Validate(nil))
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
console: ps5
questions:
  - id: cond
    text: Condition?
    step: 1
    field: condition
    options:
      - value: ok
        label: OK
      - value: bad
        label: Bad
        deduction: -25
`)
	c, err := catalog.Parse(data, ".yaml")
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.Equal(t, domain.FieldCondition, c[0].Field)
	assert.Equal(t, -25, c[0].Options[1].Deduction)
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"questions":[{"id":"q","text":"Q","step":1,"options":[{"value":"v","label":"V","deduction":5}]}]}`)
	c, err := catalog.Parse(data, ".JSON")
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.Equal(t, 5, c[0].Options[0].Deduction)
}

type stubSource struct {
	catalog domain.Catalog
	err     error
}

func (s stubSource) Catalog(ctx context.Context, consoleID string) (domain.Catalog, error) {
	return s.catalog, s.err
}

func TestResolver_TwoTierLookup(t *testing.T) {
	ctx := context.Background()
	own := domain.Catalog{{ID: "only", Text: "Only", Step: 1, Options: []domain.Option{{Value: "v", Label: "V"}}}}

	tests := []struct {
		name       string
		source     stubSource
		wantSource string
		wantLen    int
	}{
		{"per console", stubSource{catalog: own}, domain.CatalogSourceConsole, 1},
		{"not found", stubSource{err: domain.ErrNotFound}, domain.CatalogSourceDefault, 6},
		{"empty", stubSource{}, domain.CatalogSourceDefault, 6},
		{"network error", stubSource{err: errors.New("boom")}, domain.CatalogSourceDefault, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := catalog.NewResolver(tt.source)
			c, src := r.Resolve(ctx, "ps5")
			assert.Equal(t, tt.wantSource, src)
			assert.Len(t, c, tt.wantLen)
		})
	}
}

func TestResolver_NilSource(t *testing.T) {
	r := catalog.NewResolver(nil)
	c, src := r.Resolve(context.Background(), "anything")
	assert.Equal(t, domain.CatalogSourceDefault, src)
	assert.Equal(t, catalog.Default(), c)
}

func TestResolver_WithFallback(t *testing.T) {
	fb := domain.Catalog{{ID: "f", Text: "F", Step: 1, Options: []domain.Option{{Value: "v", Label: "V"}}}}
	r := catalog.NewResolver(nil, catalog.WithFallback(fb))
	c, _ := r.Resolve(context.Background(), "x")
	assert.Equal(t, fb, c)
}
