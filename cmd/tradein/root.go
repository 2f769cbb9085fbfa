package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tradein/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradein",
	Short: "Console trade-in valuation wizard",
	Long: `tradein values a used game console through a short questionnaire and
publishes the offer so it can be applied to a cart.

Run it interactively (value, tui), as an HTTP API (serve) or as an MCP
server for agents (mcp).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML configuration file")
	flags.String("env-file", "", "Path to a .env file (default \".env\")")
	flags.Bool("debug", false, "Enable debug logging of wizard events")
	flags.String("log-format", "", "Log format: text or json")
	flags.String("api-url", "", "Storefront API base URL (demo catalog when empty)")
	flags.String("catalog-dir", "", "Directory of per-console question catalogs")
	flags.String("redis", "", "Redis address for sessions and trade-ins (memory when empty)")
}

// appOptions collects the persistent flags.
func appOptions(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	var opts cli.Options
	opts.ConfigPath, _ = flags.GetString("config")
	opts.EnvFile, _ = flags.GetString("env-file")
	opts.Debug, _ = flags.GetBool("debug")
	opts.LogFormat, _ = flags.GetString("log-format")
	opts.APIURL, _ = flags.GetString("api-url")
	opts.CatalogDir, _ = flags.GetString("catalog-dir")
	opts.RedisAddr, _ = flags.GetString("redis")
	return opts
}

// newApp builds the application from the persistent flags.
func newApp(cmd *cobra.Command) (*cli.App, error) {
	return cli.NewApp(appOptions(cmd))
}
