package wizard

import "github.com/aretw0/tradein/pkg/domain"

// Render computes what the host should display for a session.
func (n *Navigator) Render(s *domain.Session) domain.View {
	v := domain.View{
		SessionID:      s.ID,
		Shopper:        s.Shopper,
		Phase:          s.Phase(),
		Platform:       s.Platform,
		Theme:          s.Platform.Theme(),
		Console:        s.Console,
		Step:           s.Step,
		FinalStep:      s.FinalStep(),
		QuestionIndex:  s.QuestionIndex,
		CatalogPending: s.CatalogPending,
		CanContinue:    n.CanAdvance(s),
	}

	switch v.Phase {
	case domain.PhaseSelectConsole:
		v.ContinueLabel = domain.ContinueLabel
	case domain.PhaseQuestion:
		qs := s.Catalog.ForStep(s.Step)
		v.QuestionCount = len(qs)
		if q := n.CurrentQuestion(s); q != nil {
			v.Question = q
			v.Selected = s.Answers[q.ID]
		}
		v.ContinueLabel = domain.ContinueLabel
		if s.QuestionIndex >= len(qs)-1 && n.isLastQuestionStep(s) {
			v.ContinueLabel = domain.SeeValueLabel
		}
	case domain.PhaseSummary:
		v.ContinueLabel = domain.AddTradeInText
		if offer, ok := n.Offer(s); ok {
			v.Offer = &offer
		}
	}
	return v
}

// isLastQuestionStep reports whether no later step has questions.
func (n *Navigator) isLastQuestionStep(s *domain.Session) bool {
	for _, step := range s.Catalog.StepNumbers() {
		if step > s.Step {
			return false
		}
	}
	return true
}
