package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxdeal/storefront/internal/assets"
	"github.com/maxdeal/storefront/internal/dashboard"
	"github.com/maxdeal/storefront/internal/gemini"
)

func newUpgradeCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "upgrade [id]",
		Short: "Regenerate catalog images that fail studio quality checks",
		Long: `Scans the catalog and runs the regeneration pipeline: every upgrade
candidate is re-rendered through the generative image model. With an ID
argument only that record is upgraded.

Requires GEMINI_API_KEY.`,
		Example: `  # Batch-upgrade every candidate in the demo catalog
  maxdeal upgrade

  # Upgrade a single product from a catalog file
  maxdeal upgrade p1 --catalog products.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, source, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			dash := dashboard.New(gemini.NewImageClient(), nil)
			if err := dash.Scan(cat.Items); err != nil {
				return err
			}
			fmt.Printf("Catalog: %s (%d products)\n", source, len(cat.Items))

			if len(args) == 1 {
				rec, err := dash.Upgrade(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printOutcome(rec)
				return nil
			}

			if err := dash.UpgradeAll(cmd.Context()); err != nil {
				return err
			}
			for _, rec := range dash.Records() {
				printOutcome(rec)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "Path to a catalog YAML file")

	return cmd
}

func printOutcome(rec *assets.Record) {
	switch rec.Status {
	case assets.StatusSuccess:
		fmt.Printf("✅ %s upgraded to studio quality (%s %s %s)\n",
			rec.Name, rec.Resolution, rec.SizeEstimate, rec.Format)
	case assets.StatusOptimized:
		fmt.Printf("   %s already optimized\n", rec.Name)
	default:
		fmt.Printf("❌ %s failed, keeping original asset\n", rec.Name)
	}
}
