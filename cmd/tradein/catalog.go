package main

import (
	"context"
	"fmt"

	"github.com/aretw0/tradein/internal/cli"
	"github.com/aretw0/tradein/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect question catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file|dir>",
	Short: "Check catalog files for structural problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ValidateCatalogs(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [console]",
	Short: "Print the catalog a console resolves to",
	Long: `Prints the questions a console would be asked, taken from its catalog
document in --catalog-dir (or the storefront API) or from the default catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		console := ""
		if len(args) == 1 {
			console = args[0]
		}
		md := cli.CatalogMarkdown(context.Background(), app, console)

		raw, _ := cmd.Flags().GetBool("raw")
		if !raw && isTerminal() {
			if rendered, err := tui.NewRenderer(0)(md); err == nil {
				md = rendered
			}
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), md)
		return err
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogValidateCmd, catalogShowCmd)
	catalogShowCmd.Flags().Bool("raw", false, "Print markdown without terminal rendering")
}
