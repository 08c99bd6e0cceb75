package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/maxdeal/storefront/internal/catalog"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maxdeal",
		Short: "Storefront catalog tooling with AI-powered asset upgrades",
		Long: `MaxDeal is the storefront backend: product catalog, AI asset upgrade
pipeline, and the multilingual shopping assistant.

It scans catalog images against studio quality standards, regenerates
failing assets through a generative image model, and serves the review
dashboard and chat assistant over HTTP.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newUpgradeCmd())
	cmd.AddCommand(newReportCmd())

	return cmd
}

// loadCatalog resolves the product catalog: the --catalog flag first,
// then MAXDEAL_CATALOG, then the built-in demo set. An http(s) source
// is fetched from the remote catalog endpoint.
func loadCatalog(path string) (*catalog.Catalog, string, error) {
	if path == "" {
		path = os.Getenv("MAXDEAL_CATALOG")
	}
	if path == "" {
		return catalog.Default(), "(built-in)", nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		client := catalog.NewClient(path, os.Getenv("MAXDEAL_CATALOG_TOKEN"))
		cat, err := client.Fetch(context.Background())
		if err != nil {
			return nil, "", err
		}
		return cat, path, nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cat, path, nil
}
