package main

import (
	"context"
	"os"

	"github.com/aretw0/tradein/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Value a console interactively",
	Long: `Runs one valuation over standard input and output.

Type a number to pick a console or an answer, a platform name to switch the
console list, c to continue, a to add the trade-in, s to skip it and q to quit.
With --json every screen is one JSON object per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		shopper, _ := cmd.Flags().GetString("shopper")
		jsonMode, _ := cmd.Flags().GetBool("json")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		result, err := cli.RunValue(ctx, app, cli.ValueOptions{
			Shopper:     shopper,
			JSON:        jsonMode,
			Interactive: isTerminal(),
			In:          cmd.InOrStdin(),
			Out:         cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}
		if ctx.Signal() != nil {
			return nil
		}
		return cli.PrintResult(cmd.OutOrStdout(), result, app.Config.Symbol(), jsonMode)
	},
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.AddCommand(valueCmd)
	valueCmd.Flags().String("shopper", "guest", "Shopper the trade-in is published for")
	valueCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")

	// value is the default when no command is given.
	rootCmd.RunE = valueCmd.RunE
	rootCmd.Flags().AddFlagSet(valueCmd.Flags())
}
