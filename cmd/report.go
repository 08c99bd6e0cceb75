package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxdeal/storefront/internal/assets"
	"github.com/maxdeal/storefront/internal/gemini"
	"github.com/maxdeal/storefront/internal/report"
)

func newReportCmd() *cobra.Command {
	var catalogPath string
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a catalog asset audit report",
		Long: `Scans the catalog and writes an audit report with one row per product
image: status, failing checks, and asset metadata. The output format is
picked from the file extension (.yaml or .parquet).`,
		Example: `  # Write a YAML audit for the demo catalog
  maxdeal report

  # Write a Parquet audit for a catalog file
  maxdeal report --catalog products.yaml --output reports/audit.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, source, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("reports/audit-%s.yaml",
					time.Now().Format("2006-01-02_15-04-05"))
			}

			audit := report.Build(gemini.NewImageClient().Model(), source, assets.Scan(cat.Items))
			if err := audit.Save(output); err != nil {
				return err
			}

			fmt.Printf("Audit report saved to %s (%d records, %d candidates)\n",
				output, audit.Config.Records, audit.Config.Candidates)
			return nil
		},
	}

	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "Path to a catalog YAML file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Report path (.yaml or .parquet)")

	return cmd
}
