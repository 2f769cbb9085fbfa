package main

import (
	"context"

	"github.com/aretw0/tradein/internal/cli"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Value a console in a full-screen wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		shopper, _ := cmd.Flags().GetString("shopper")
		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		result, err := cli.RunTUI(ctx, app, shopper)
		if err != nil {
			return err
		}
		return cli.PrintResult(cmd.OutOrStdout(), result, app.Config.Symbol(), false)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().String("shopper", "guest", "Shopper the trade-in is published for")
}
