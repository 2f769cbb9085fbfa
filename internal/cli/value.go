package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/tradein/internal/presentation/tui"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/runner"
)

// ValueOptions configures a line-based valuation.
type ValueOptions struct {
	Shopper string
	JSON    bool

	// Interactive enables the banner and markdown rendering of the summary.
	Interactive bool

	In  io.Reader
	Out io.Writer
}

// RunValue drives one valuation over text or JSON lines. Interruptions are
// not errors.
func RunValue(ctx context.Context, app *App, opts ValueOptions) (domain.TradeInState, error) {
	var handler runner.IOHandler
	if opts.JSON {
		handler = runner.NewJSONHandler(opts.In, opts.Out)
	} else {
		var textOpts []runner.TextHandlerOption
		if opts.Interactive {
			tui.PrintBanner(opts.Out, Version())
			textOpts = append(textOpts, runner.WithTextHandlerRenderer(tui.NewRenderer(0)))
		}
		handler = runner.NewTextHandler(opts.In, opts.Out, textOpts...)
	}

	r := runner.New(app.Service,
		runner.WithInputHandler(handler),
		runner.WithLogger(app.Logger),
		runner.WithShopper(shopperOrGuest(opts.Shopper)),
		runner.WithCurrency(app.Config.Symbol()),
		runner.WithSignals(false),
	)

	result, err := r.Run(ctx)
	if err != nil {
		return domain.TradeInState{}, handleExecutionError(err)
	}
	logCompletion(app, result)
	return result, nil
}

// RunTUI drives one valuation in the full-screen wizard.
func RunTUI(ctx context.Context, app *App, shopper string) (domain.TradeInState, error) {
	result, err := tui.Run(ctx, app.Service,
		tui.WithShopper(shopperOrGuest(shopper)),
		tui.WithCurrency(app.Config.Symbol()),
		tui.WithMarkdownRenderer(tui.NewRenderer(72)),
	)
	if err != nil {
		return domain.TradeInState{}, handleExecutionError(err)
	}
	logCompletion(app, result)
	return result, nil
}

// PrintResult reports a finished valuation on w.
func PrintResult(w io.Writer, result domain.TradeInState, currency string, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(result)
	}
	if !result.Active {
		printSystemMessage(w, "No trade-in added")
		return nil
	}
	printSystemMessage(w, "Trade-in added: %s", Describe(result, currency))
	return nil
}

func logCompletion(app *App, result domain.TradeInState) {
	if result.Active {
		app.Logger.Info("Valuation completed", "value", result.FinalValue.String())
		return
	}
	app.Logger.Debug("Valuation ended without a trade-in")
}

func shopperOrGuest(s string) string {
	if s == "" {
		return "guest"
	}
	return s
}

// Describe formats a valuation result for humans.
func Describe(result domain.TradeInState, currency string) string {
	if result.Item == nil {
		return fmt.Sprintf("%s%s", currency, result.FinalValue)
	}
	return fmt.Sprintf("%s: %s%s", result.Item.ProductName, currency, result.FinalValue)
}
