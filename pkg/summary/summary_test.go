package summary_test

import (
	"testing"

	"github.com/aretw0/tradein/pkg/catalog"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/pricing"
	"github.com/aretw0/tradein/pkg/summary"
	"github.com/stretchr/testify/assert"
)

func TestLabel_Fallback(t *testing.T) {
	cat := catalog.Default()

	assert.Equal(t, "Good", summary.Label(cat, catalog.QuestionCondition, "good"))
	assert.Equal(t, "mint", summary.Label(cat, catalog.QuestionCondition, "mint"))
	assert.Equal(t, "raw", summary.Label(cat, "unknown", "raw"))
	assert.Equal(t, "raw", summary.Label(nil, "unknown", "raw"))
}

func TestDecorated(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		id, value, want string
	}{
		{catalog.QuestionCondition, "not_bad", "Not Bad"},
		{catalog.QuestionDefects, "si_perfetta", "Difetti tecnici: Sì"},
		{catalog.QuestionAccessories, "no_mancano", "Accessori originali: No"},
		{catalog.QuestionControllers, "due", "2 Controller"},
		{catalog.QuestionMemory, "1tb", "1 Terabyte"},
		{catalog.QuestionBox, "no_scatola", "Scatola originale: No"},
		{catalog.QuestionBox, "broken", "Scatola originale: broken"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, summary.Decorated(cat, tt.id, tt.value))
	}
}

func TestBuild(t *testing.T) {
	cat := append(catalog.Default(), domain.Question{
		ID: "q7_color", Text: "Colore?", Step: 6,
		Options: []domain.Option{{Value: "white", Label: "Bianco"}},
	})
	answers := domain.AnswerSet{
		catalog.QuestionCondition:   "good",
		catalog.QuestionDefects:     "si_perfetta",
		catalog.QuestionAccessories: "si_completi",
		catalog.QuestionControllers: "uno",
		catalog.QuestionMemory:      "500gb",
		catalog.QuestionBox:         "si_scatola",
		"q7_color":                  "white",
		"q_stale":                   "x",
	}

	b := summary.Build(cat, answers)
	assert.Equal(t, domain.Breakdown{
		Condition:        "Good",
		TechnicalDefects: "Sì",
		Accessories:      "Sì",
		Memory:           "500 Gigabyte",
		ControllerCount:  1,
		Box:              "Sì",
		Extra:            map[string]string{"q7_color": "Bianco"},
	}, b)
}

func TestBuild_LegacyIDsWithoutField(t *testing.T) {
	cat := catalog.Default()
	for i := range cat {
		cat[i].Field = ""
	}
	b := summary.Build(cat, domain.AnswerSet{catalog.QuestionControllers: "due"})
	assert.Equal(t, 2, b.ControllerCount)
}

func TestLines(t *testing.T) {
	cat := catalog.Default()
	answers := domain.AnswerSet{
		catalog.QuestionCondition:   "good",
		catalog.QuestionControllers: "due",
		catalog.QuestionMemory:      "1tb",
		catalog.QuestionDefects:     "no_difetti",
	}

	assert.Equal(t, []string{
		"Good",
		"1 Terabyte | 2 Controller",
		"Difetti tecnici: No",
	}, summary.Lines(cat, answers))

	assert.Empty(t, summary.Lines(cat, domain.AnswerSet{}))
}

func TestMarkdown(t *testing.T) {
	cat := catalog.Default()
	answers := domain.AnswerSet{catalog.QuestionCondition: "good", catalog.QuestionControllers: "due"}
	offer := summary.Complete(pricing.New(50).Offer(domain.Units(400), answers, cat), cat, answers)

	md := summary.Markdown(&domain.Console{Name: "PS5"}, offer, "€")
	assert.Contains(t, md, "## PS5")
	assert.Contains(t, md, "- Good")
	assert.Contains(t, md, "**La nostra offerta:** €420.00")
	assert.NotContains(t, md, "minima")
}
