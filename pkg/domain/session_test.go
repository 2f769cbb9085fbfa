package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCatalog() Catalog {
	return Catalog{
		{ID: "a", Step: 1, Options: []Option{{Value: "x", Label: "X"}}},
		{ID: "b", Step: 1, Options: []Option{{Value: "y", Label: "Y"}}},
		{ID: "c", Step: 3, Options: []Option{{Value: "z", Label: "Z"}}},
	}
}

func TestCatalog_Lookups(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, 3, c.Steps())
	assert.Equal(t, []int{1, 3}, c.StepNumbers())
	assert.Len(t, c.ForStep(1), 2)
	assert.Empty(t, c.ForStep(2))

	q, ok := c.Question("c")
	assert.True(t, ok)
	opt, ok := q.Option("z")
	assert.True(t, ok)
	assert.Equal(t, "Z", opt.Label)

	_, ok = c.Question("missing")
	assert.False(t, ok)
}

func TestSession_Phase(t *testing.T) {
	s := NewSession("s1", "shopper")
	assert.Equal(t, PhaseSelectConsole, s.Phase())

	s.Catalog = testCatalog()
	s.Step = 2
	assert.Equal(t, PhaseQuestion, s.Phase())

	s.Step = s.FinalStep()
	assert.Equal(t, 4, s.Step)
	assert.Equal(t, PhaseSummary, s.Phase())

	s.Closed = true
	assert.Equal(t, PhaseClosed, s.Phase())
}

func TestSession_CloneIsDeep(t *testing.T) {
	s := NewSession("s1", "shopper")
	s.Console = &Console{ID: "ps5", Name: "PS5"}
	s.Catalog = testCatalog()
	s.Answers["a"] = "x"

	cp := s.Clone()
	cp.Console.Name = "changed"
	cp.Answers["a"] = "changed"
	cp.Catalog[0].Options[0].Label = "changed"

	assert.Equal(t, "PS5", s.Console.Name)
	assert.Equal(t, "x", s.Answers["a"])
	assert.Equal(t, "X", s.Catalog[0].Options[0].Label)
}
