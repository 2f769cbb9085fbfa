package catalog

import (
	"fmt"
	"strings"

	"github.com/aretw0/tradein/pkg/domain"
)

// ValidationError aggregates every problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog: %s", strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidCatalog
}

// Validate checks the structural invariants of a catalog:
// unique question IDs, steps contiguous from 1, at least one option per
// question and unique option values within a question.
func Validate(c domain.Catalog) error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(c) == 0 {
		return &ValidationError{Problems: []string{"catalog has no questions"}}
	}

	ids := make(map[string]bool)
	for i, q := range c {
		ref := q.ID
		if ref == "" {
			ref = fmt.Sprintf("#%d", i)
			addf("question %s has no id", ref)
		} else if ids[q.ID] {
			addf("duplicate question id %q", q.ID)
		}
		ids[q.ID] = true

		if strings.TrimSpace(q.Text) == "" {
			addf("question %s has no text", ref)
		}
		if q.Step < 1 {
			addf("question %s has step %d (steps start at 1)", ref, q.Step)
		}
		if len(q.Options) == 0 {
			addf("question %s has no options", ref)
		}

		values := make(map[string]bool)
		for _, opt := range q.Options {
			if opt.Value == "" {
				addf("question %s has an option without value", ref)
				continue
			}
			if values[opt.Value] {
				addf("question %s has duplicate option value %q", ref, opt.Value)
			}
			values[opt.Value] = true
			if opt.Label == "" {
				addf("question %s option %q has no label", ref, opt.Value)
			}
		}
	}

	for _, gap := range Gaps(c) {
		if gap.From == gap.To {
			addf("%s has no questions", gap)
		} else {
			addf("%s have no questions", gap)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// StepRange is an inclusive run of step numbers.
type StepRange struct {
	From, To int
}

func (r StepRange) String() string {
	if r.From == r.To {
		return fmt.Sprintf("step %d", r.From)
	}
	return fmt.Sprintf("steps %d-%d", r.From, r.To)
}

// Gaps returns the runs of step numbers in 1..N that have no question.
// It only looks at the steps in use, so sparse numbering stays cheap.
func Gaps(c domain.Catalog) []StepRange {
	var gaps []StepRange
	prev := 0
	for _, step := range c.StepNumbers() {
		if step < 1 {
			continue
		}
		if step > prev+1 {
			gaps = append(gaps, StepRange{From: prev + 1, To: step - 1})
		}
		prev = step
	}
	return gaps
}
