/*
Package runner drives a trade-in wizard from a line-based terminal or a JSON-lines pipe.

The runner owns the interaction loop: it renders the current wizard view through an
IOHandler, reads one command, and applies it to the wizard. It never decides what a
command means for the valuation itself; every transition goes through the Wizard
(normally a *tradein.Service), so the same forward-only rules apply as over HTTP.

# Key Components

  - Runner: the interaction loop, interruptible by SIGINT/SIGTERM.
  - IOHandler: decouples presentation (TextHandler for humans, JSONHandler for hosts).
  - SanitizeInput: bounds and cleans every line read from the user.

# Commands

	<n>                  select console n (step 0) or option n (questions)
	playstation|xbox|nintendo   switch the console list (step 0)
	c, enter             continue
	a                    add the trade-in (summary)
	s                    skip the trade-in (summary)
	q                    quit and discard the valuation

# Usage

	r := runner.New(svc,
		runner.WithShopper("alice"),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)
	result, err := r.Run(ctx)
*/
package runner
