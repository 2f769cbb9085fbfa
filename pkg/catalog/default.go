package catalog

import "github.com/aretw0/tradein/pkg/domain"

// Question IDs of the default catalog.
const (
	QuestionCondition   = "q1_condizione_estetica"
	QuestionDefects     = "q2_difetti_tecnici"
	QuestionAccessories = "q3_accessori_originali"
	QuestionControllers = "q4_numero_controller"
	QuestionMemory      = "q5_memoria"
	QuestionBox         = "q6_scatola_originale"
)

var defaultCatalog = domain.Catalog{
	{
		ID:    QuestionCondition,
		Text:  "In che condizioni è la tua console?",
		Step:  1,
		Field: domain.FieldCondition,
		Options: []domain.Option{
			{Value: "brand_new", Label: "Brand New"},
			{Value: "good", Label: "Good", Deduction: -10},
			{Value: "not_bad", Label: "Not Bad", Deduction: -40},
		},
	},
	{
		ID:    QuestionDefects,
		Text:  "La console è priva di difetti tecnici?",
		Step:  1,
		Field: domain.FieldTechnicalDefects,
		Options: []domain.Option{
			{Value: "si_perfetta", Label: "Sì"},
			{Value: "no_difetti", Label: "No", Deduction: -80},
		},
	},
	{
		ID:    QuestionAccessories,
		Text:  "Sono compresi gli accessori originali?",
		Step:  2,
		Field: domain.FieldAccessories,
		Options: []domain.Option{
			{Value: "si_completi", Label: "Sì"},
			{Value: "no_mancano", Label: "No", Deduction: -15},
		},
	},
	{
		ID:    QuestionControllers,
		Text:  "Quanti controller ci invierai?",
		Step:  3,
		Field: domain.FieldControllers,
		Options: []domain.Option{
			{Value: "zero", Label: "0"},
			{Value: "uno", Label: "1", Deduction: 15},
			{Value: "due", Label: "2", Deduction: 30},
		},
	},
	{
		ID:    QuestionMemory,
		Text:  "Memoria di archiviazione del dispositivo?",
		Step:  4,
		Field: domain.FieldMemory,
		Options: []domain.Option{
			{Value: "1tb", Label: "1 Terabyte"},
			{Value: "500gb", Label: "500 Gigabyte", Deduction: -20},
		},
	},
	{
		ID:    QuestionBox,
		Text:  "Possiedi la scatola e l'imballo originale?",
		Step:  5,
		Field: domain.FieldBox,
		Options: []domain.Option{
			{Value: "si_scatola", Label: "Sì"},
			{Value: "no_scatola", Label: "No", Deduction: -10},
		},
	},
}

// Default returns a copy of the built-in questionnaire.
func Default() domain.Catalog {
	return defaultCatalog.Clone()
}
