/*
Package domain contains the core domain models of the trade-in valuation wizard.

It defines the entities the wizard works with, such as Questions, Answer Sets,
the wizard Session and the published trade-in result. This package is kept pure
and free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Question / Catalog: the ordered questionnaire, grouped into steps.
  - AnswerSet: the selected option value per question.
  - Session: the runtime snapshot of one wizard (step, question index, console, answers).
  - Offer: the derived valuation (base price, final price, breakdown).
  - TradeInState: the published result read by product and cart views.
  - View: a structural representation of what the host should render.
*/
package domain
