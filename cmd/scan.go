package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxdeal/storefront/internal/assets"
)

func newScanCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan catalog images against studio quality standards",
		Long: `Classifies every catalog image against the studio quality checks and
prints the results. Images that fail any check are flagged as upgrade
candidates; nothing is regenerated.`,
		Example: `  # Scan the built-in demo catalog
  maxdeal scan

  # Scan a catalog file
  maxdeal scan --catalog products.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, source, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			records := assets.Scan(cat.Items)

			fmt.Printf("Catalog: %s (%d products)\n\n", source, len(records))

			candidates := 0
			for _, rec := range records {
				fmt.Printf("%-4s %-28s %-10s %s %s %s\n",
					rec.ID, rec.Name, rec.Status, rec.Resolution, rec.SizeEstimate, rec.Format)
				if rec.Status == assets.StatusPending {
					candidates++
					var failed []string
					for _, kind := range rec.FailedChecks() {
						failed = append(failed, kind.Label())
					}
					fmt.Printf("     failing: %s\n", strings.Join(failed, ", "))
				}
			}

			fmt.Printf("\nFound %d candidates for studio rendering.\n", candidates)
			return nil
		},
	}

	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "Path to a catalog YAML file")

	return cmd
}
