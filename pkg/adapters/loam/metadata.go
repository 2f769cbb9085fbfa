package loam

import (
	"github.com/aretw0/tradein/pkg/domain"
)

// CatalogMetadata is the frontmatter of a per-console catalog document.
//
//	---
//	console: ps5
//	questions:
//	  - id: q1_condizione_estetica
//	    text: Condizione estetica?
//	    step: 1
//	    options:
//	      - {value: good, label: Good, deduction: -10}
//	---
//	Free-form notes shown by `tradein catalog show`.
type CatalogMetadata struct {
	// Console, when set, must match the document name.
	Console   string            `json:"console" mapstructure:"console"`
	Questions []domain.Question `json:"questions" mapstructure:"questions"`
}
