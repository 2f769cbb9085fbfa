package domain

import "sort"

// BreakdownField names the slot of the valuation breakdown a question feeds.
type BreakdownField string

const (
	FieldCondition        BreakdownField = "condition"
	FieldTechnicalDefects BreakdownField = "technical_defects"
	FieldAccessories      BreakdownField = "accessories"
	FieldControllers      BreakdownField = "controllers"
	FieldMemory           BreakdownField = "memory"
	FieldBox              BreakdownField = "box"
)

// Option is one selectable answer of a Question.
type Option struct {
	Value       string `json:"value" yaml:"value" mapstructure:"value"`
	Label       string `json:"label" yaml:"label" mapstructure:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`

	// Deduction is a signed price adjustment in whole currency units.
	// Zero (or absent) means the option does not change the price.
	Deduction int `json:"deduction,omitempty" yaml:"deduction,omitempty" mapstructure:"deduction"`
}

// Question is a single prompt of the wizard.
type Question struct {
	ID          string         `json:"id" yaml:"id" mapstructure:"id"`
	Text        string         `json:"text" yaml:"text" mapstructure:"text"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Step        int            `json:"step" yaml:"step" mapstructure:"step"`
	Field       BreakdownField `json:"field,omitempty" yaml:"field,omitempty" mapstructure:"field"`
	Options     []Option       `json:"options" yaml:"options" mapstructure:"options"`
}

// Option looks up an option by value.
func (q Question) Option(value string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// Catalog is the ordered question set of a wizard.
type Catalog []Question

// Question looks up a question by ID.
func (c Catalog) Question(id string) (Question, bool) {
	for _, q := range c {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// ForStep returns the questions of a step, preserving catalog order.
func (c Catalog) ForStep(step int) []Question {
	var out []Question
	for _, q := range c {
		if q.Step == step {
			out = append(out, q)
		}
	}
	return out
}

// Steps returns N, the highest step number referenced by the catalog.
func (c Catalog) Steps() int {
	n := 0
	for _, q := range c {
		if q.Step > n {
			n = q.Step
		}
	}
	return n
}

// StepNumbers returns the distinct step numbers used, sorted.
func (c Catalog) StepNumbers() []int {
	seen := make(map[int]bool)
	var steps []int
	for _, q := range c {
		if !seen[q.Step] {
			seen[q.Step] = true
			steps = append(steps, q.Step)
		}
	}
	sort.Ints(steps)
	return steps
}

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for i, q := range c {
		out[i] = q
		out[i].Options = append([]Option(nil), q.Options...)
	}
	return out
}

// AnswerSet maps a question ID to the selected option value.
type AnswerSet map[string]string

// Clone returns a copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
