// Package pricing derives trade-in offers from a base price and an answer set.
package pricing

import "github.com/aretw0/tradein/pkg/domain"

// DefaultFloor is the minimum trade-in offer in whole currency units.
const DefaultFloor = 50

// Calculator applies option deductions to a base price.
// The zero value uses a floor of zero.
type Calculator struct {
	Floor domain.Amount
}

// New creates a calculator with the given floor in whole units.
// A negative floor is treated as zero.
func New(floorUnits int) Calculator {
	if floorUnits < 0 {
		floorUnits = 0
	}
	return Calculator{Floor: domain.Units(floorUnits)}
}

// Adjustments resolves every answer against the catalog and returns the
// deductions that apply, ordered by catalog position.
// Answers pointing at unknown questions or options contribute nothing.
func Adjustments(answers domain.AnswerSet, catalog domain.Catalog) []domain.Adjustment {
	out := []domain.Adjustment{}
	for _, q := range catalog {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := q.Option(value)
		if !ok || opt.Deduction == 0 {
			continue
		}
		out = append(out, domain.Adjustment{
			QuestionID: q.ID,
			Value:      value,
			Amount:     domain.Units(opt.Deduction),
		})
	}
	return out
}

// Raw returns basePrice plus the sum of all applicable deductions, unfloored.
func Raw(base domain.Amount, answers domain.AnswerSet, catalog domain.Catalog) domain.Amount {
	total := base
	for _, adj := range Adjustments(answers, catalog) {
		total += adj.Amount
	}
	return total
}

// Calculate returns max(Floor, basePrice + Σ deductions).
func (c Calculator) Calculate(base domain.Amount, answers domain.AnswerSet, catalog domain.Catalog) domain.Amount {
	return domain.MaxAmount(c.floor(), Raw(base, answers, catalog))
}

// Offer computes the price together with the applied adjustments.
// Breakdown and display lines are filled in by the summary formatter.
func (c Calculator) Offer(base domain.Amount, answers domain.AnswerSet, catalog domain.Catalog) domain.Offer {
	adjs := Adjustments(answers, catalog)
	raw := base
	for _, adj := range adjs {
		raw += adj.Amount
	}
	floor := c.floor()
	return domain.Offer{
		BasePrice:   base,
		FinalPrice:  domain.MaxAmount(floor, raw),
		Floored:     raw < floor,
		Adjustments: adjs,
	}
}

func (c Calculator) floor() domain.Amount {
	if c.Floor < 0 {
		return 0
	}
	return c.Floor
}
