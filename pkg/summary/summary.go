// Package summary turns raw answers into human-readable valuation details.
package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/tradein/pkg/domain"
)

// legacyFields maps well-known question IDs to their breakdown slot for
// catalogs that do not declare a field.
var legacyFields = map[string]domain.BreakdownField{
	"q1_condizione_estetica": domain.FieldCondition,
	"q2_difetti_tecnici":     domain.FieldTechnicalDefects,
	"q3_accessori_originali": domain.FieldAccessories,
	"q4_numero_controller":   domain.FieldControllers,
	"q5_memoria":             domain.FieldMemory,
	"q6_scatola_originale":   domain.FieldBox,
}

// FieldOf returns the breakdown slot fed by a question, or "" if none.
func FieldOf(q domain.Question) domain.BreakdownField {
	if q.Field != "" {
		return q.Field
	}
	return legacyFields[q.ID]
}

// Label returns the display label of the selected option, or the raw value
// when the question or option is unknown. It never returns "" for a non-empty value.
func Label(catalog domain.Catalog, questionID, value string) string {
	q, ok := catalog.Question(questionID)
	if !ok {
		return value
	}
	opt, ok := q.Option(value)
	if !ok || opt.Label == "" {
		return value
	}
	return opt.Label
}

// Decorated returns the label as shown in the summary, prefixed or suffixed
// according to the question's breakdown slot.
func Decorated(catalog domain.Catalog, questionID, value string) string {
	label := Label(catalog, questionID, value)
	field := legacyFields[questionID]
	if q, ok := catalog.Question(questionID); ok {
		field = FieldOf(q)
	}
	switch field {
	case domain.FieldTechnicalDefects:
		return "Difetti tecnici: " + label
	case domain.FieldAccessories:
		return "Accessori originali: " + label
	case domain.FieldControllers:
		return label + " Controller"
	case domain.FieldBox:
		return "Scatola originale: " + label
	default:
		return label
	}
}

// Build derives the structured breakdown from the answer set.
// Answers to questions without a breakdown slot land in Extra, keyed by question ID.
func Build(catalog domain.Catalog, answers domain.AnswerSet) domain.Breakdown {
	var b domain.Breakdown
	for _, q := range catalog {
		value, ok := answers[q.ID]
		if !ok || value == "" {
			continue
		}
		label := Label(catalog, q.ID, value)
		switch FieldOf(q) {
		case domain.FieldCondition:
			b.Condition = label
		case domain.FieldTechnicalDefects:
			b.TechnicalDefects = label
		case domain.FieldAccessories:
			b.Accessories = label
		case domain.FieldControllers:
			b.ControllerCount = controllerCount(label, value)
		case domain.FieldMemory:
			b.Memory = label
		case domain.FieldBox:
			b.Box = label
		default:
			if b.Extra == nil {
				b.Extra = make(map[string]string)
			}
			b.Extra[q.ID] = label
		}
	}
	return b
}

func controllerCount(label, value string) int {
	for _, s := range []string{label, value} {
		fields := strings.Fields(s)
		if len(fields) == 0 {
			continue
		}
		if n, err := strconv.Atoi(fields[0]); err == nil && n >= 0 {
			return n
		}
	}
	return 0
}

// Lines returns the summary rows in display order:
// condition, "memory | controllers", defects, accessories, box, then any
// remaining answered questions. Unanswered slots are omitted.
func Lines(catalog domain.Catalog, answers domain.AnswerSet) []string {
	bySlot := make(map[domain.BreakdownField]string)
	var extra []string
	for _, q := range catalog {
		value, ok := answers[q.ID]
		if !ok || value == "" {
			continue
		}
		text := Decorated(catalog, q.ID, value)
		field := FieldOf(q)
		if field == "" {
			extra = append(extra, text)
			continue
		}
		if _, dup := bySlot[field]; dup {
			extra = append(extra, text)
			continue
		}
		bySlot[field] = text
	}

	var lines []string
	add := func(s string) {
		if s != "" {
			lines = append(lines, s)
		}
	}
	add(bySlot[domain.FieldCondition])

	var main []string
	for _, f := range []domain.BreakdownField{domain.FieldMemory, domain.FieldControllers} {
		if s := bySlot[f]; s != "" {
			main = append(main, s)
		}
	}
	add(strings.Join(main, " | "))

	add(bySlot[domain.FieldTechnicalDefects])
	add(bySlot[domain.FieldAccessories])
	add(bySlot[domain.FieldBox])
	lines = append(lines, extra...)
	return lines
}

// Complete fills the breakdown and display lines of an offer.
func Complete(offer domain.Offer, catalog domain.Catalog, answers domain.AnswerSet) domain.Offer {
	offer.Breakdown = Build(catalog, answers)
	offer.Lines = Lines(catalog, answers)
	return offer
}

// Markdown renders the offer as a markdown document for terminal display.
func Markdown(console *domain.Console, offer domain.Offer, currency string) string {
	var sb strings.Builder
	sb.WriteString("# Il tuo prezzo Trade-in\n\n")
	if console != nil {
		fmt.Fprintf(&sb, "## %s\n\n", console.Name)
	}
	for _, line := range offer.Lines {
		fmt.Fprintf(&sb, "- %s\n", line)
	}
	if len(offer.Lines) > 0 {
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "**La nostra offerta:** %s%s\n", currency, offer.FinalPrice)
	if offer.Floored {
		sb.WriteString("\n_Offerta minima garantita._\n")
	}
	return sb.String()
}
