package main

import (
	"context"

	"github.com/aretw0/tradein/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Starts the valuation wizard as a JSON API over HTTP, with the trade-in
event stream at /events and the API contract at /openapi.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		port := app.Config.HTTP.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}
		withMetrics := app.Config.Metrics.Enabled
		if cmd.Flags().Changed("metrics") {
			withMetrics, _ = cmd.Flags().GetBool("metrics")
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()
		return cli.RunServe(ctx, app, port, withMetrics)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().Bool("metrics", false, "Expose Prometheus metrics at /metrics")
}
