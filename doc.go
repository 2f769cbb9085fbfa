/*
Package tradein is a trade-in valuation wizard for a storefront of refurbished game consoles.

A shopper picks the console they want to trade in, answers a short questionnaire grouped
into ordered steps (cosmetic condition, technical defects, accessories, controllers,
memory, box) and receives a deduction-based offer. Committing the offer publishes it to
shared pricing state that product and cart views read to discount the purchase.

# Concept

The wizard is a forward-only state machine: step 0 selects a console, steps 1..N ask
questions, and step N+1 shows the summary. The navigator is pure; the Service wraps it
with persistence, per-session locking, catalog resolution and result publishing, so the
same rules apply to every front end (HTTP, MCP, the line runner and the full-screen TUI).

# Usage

	svc, err := tradein.New(
		tradein.WithConsoleSource(memory.NewFromConsoles(consoles...)),
	)
	if err != nil {
		log.Fatal(err)
	}

	view, _ := svc.Open(ctx, "shopper-1")
	view, _ = svc.SelectConsole(ctx, view.SessionID, "ps5")
	view, _ = svc.Advance(ctx, view.SessionID)
	view, _ = svc.Answer(ctx, view.SessionID, "", "good")
	// ...
	state, _ := svc.Commit(ctx, view.SessionID)
	fmt.Println(state.FinalValue)

# Pricing

The offer is the console base price plus the signed deductions of the selected options,
never below a floor (50 currency units by default). Unknown answers contribute nothing.
*/
package tradein
