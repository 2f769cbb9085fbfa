package tradein_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/tradein"
	"github.com/aretw0/tradein/pkg/adapters/memory"
	"github.com/aretw0/tradein/pkg/domain"
)

// ExampleNew values a PlayStation 5 against the built-in questionnaire,
// using in-memory stores and a fixed console list.
func ExampleNew() {
	consoles := memory.NewFromConsoles(domain.Console{
		ID:        "ps5",
		Name:      "PlayStation 5",
		BasePrice: domain.Units(400),
		Platform:  domain.PlatformPlaystation,
	})

	svc, err := tradein.New(
		tradein.WithConsoleSource(consoles),
		tradein.WithCatalogSource(consoles),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	view, err := svc.Open(ctx, "alice")
	if err != nil {
		log.Fatal(err)
	}
	id := view.SessionID

	if _, err := svc.SelectConsole(ctx, id, "ps5"); err != nil {
		log.Fatal(err)
	}
	if _, err := svc.Advance(ctx, id); err != nil {
		log.Fatal(err)
	}

	// One answer per question, in catalog order.
	for _, value := range []string{"good", "si_perfetta", "si_completi", "due", "1tb", "si_scatola"} {
		if _, err := svc.Answer(ctx, id, "", value); err != nil {
			log.Fatal(err)
		}
		if view, err = svc.Advance(ctx, id); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Println(view.Phase == domain.PhaseSummary)

	state, err := svc.Commit(ctx, id)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(state.Active, state.FinalValue)
	// Output:
	// true
	// true 420.00
}
