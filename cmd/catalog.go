package cmd

import (
	"github.com/spf13/cobra"

	"github.com/duartefontes/pedidozap/internal/display"
	"github.com/duartefontes/pedidozap/internal/logger"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List and validate the product catalog",
	Long:  "Load the catalog from a file or URL, validate it and list the products the parser will match against.",
	Example: `  pedidozap catalog --catalog catalogo.json
  pedidozap catalog -c catalogo.toml --json`,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	products, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}

	if flagJSON {
		return display.PrintCatalogJSON(cmd.OutOrStdout(), products)
	}
	display.PrintCatalog(cmd.OutOrStdout(), products)
	return nil
}
