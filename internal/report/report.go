// Package report exports asset audit reports for the catalog compliance
// review, as YAML for humans and Parquet for downstream tooling.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"

	"github.com/maxdeal/storefront/internal/assets"
)

// Config represents the configuration section of the audit report
type Config struct {
	Model      string `yaml:"model"`
	Catalog    string `yaml:"catalog"`
	Records    int    `yaml:"records"`
	Candidates int    `yaml:"candidates"`
	Timestamp  string `yaml:"timestamp"`
}

// Row is one catalog image's audit line
type Row struct {
	ID           string `yaml:"id" parquet:"id"`
	Name         string `yaml:"name" parquet:"name"`
	Category     string `yaml:"category" parquet:"category"`
	Status       string `yaml:"status" parquet:"status"`
	FailedChecks string `yaml:"failedchecks,omitempty" parquet:"failed_checks"`
	OriginalURL  string `yaml:"originalurl" parquet:"original_url"`
	ResolvedURL  string `yaml:"resolvedurl,omitempty" parquet:"resolved_url"`
	Resolution   string `yaml:"resolution" parquet:"resolution"`
	SizeEstimate string `yaml:"sizeestimate" parquet:"size_estimate"`
	Format       string `yaml:"format" parquet:"format"`
	Upgraded     bool   `yaml:"upgraded" parquet:"upgraded"`
}

// Audit is the complete report: run configuration plus one row per record
type Audit struct {
	Config Config `yaml:"config"`
	Rows   []Row  `yaml:"records"`
}

// Build assembles an audit report from the dashboard's record snapshots
func Build(model, catalogPath string, records []*assets.Record) Audit {
	audit := Audit{
		Config: Config{
			Model:     model,
			Catalog:   catalogPath,
			Records:   len(records),
			Timestamp: time.Now().Format("2006-01-02_15-04-05"),
		},
		Rows: make([]Row, 0, len(records)),
	}

	for _, rec := range records {
		if rec.Eligible() {
			audit.Config.Candidates++
		}

		var failed []string
		for _, kind := range rec.FailedChecks() {
			failed = append(failed, kind.Label())
		}

		audit.Rows = append(audit.Rows, Row{
			ID:           rec.ID,
			Name:         rec.Name,
			Category:     rec.Category,
			Status:       string(rec.Status),
			FailedChecks: strings.Join(failed, ", "),
			OriginalURL:  rec.OriginalURL,
			ResolvedURL:  rec.ResolvedURL,
			Resolution:   rec.Resolution,
			SizeEstimate: rec.SizeEstimate,
			Format:       rec.Format,
			Upgraded:     rec.Status == assets.StatusSuccess,
		})
	}

	return audit
}

// Save writes the audit report, picking the format from the file
// extension (.yaml/.yml or .parquet)
func (a Audit) Save(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return a.SaveYAML(path)
	case ".parquet":
		return a.SaveParquet(path)
	default:
		return fmt.Errorf("unsupported report format: %s (supported: .yaml, .parquet)", ext)
	}
}

// SaveYAML writes the full report, config section included
func (a Audit) SaveYAML(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := yaml.Marshal(&a)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}

	return nil
}

// SaveParquet writes the audit rows. The config section has no columnar
// shape, so Parquet output carries rows only.
func (a Audit) SaveParquet(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Row](file)
	if _, err := writer.Write(a.Rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	return nil
}

// LoadParquet reads audit rows back from a Parquet report
func LoadParquet(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[Row](pf)
	defer reader.Close()

	var rows []Row
	batch := make([]Row, 64)
	for {
		n, err := reader.Read(batch)
		if n > 0 {
			rows = append(rows, batch[:n]...)
		}
		if err != nil {
			break
		}
	}

	return rows, nil
}
