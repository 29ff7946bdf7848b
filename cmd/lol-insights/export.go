package main

import (
	"fmt"

	"github.com/soloqlab/lol-insights/internal/analysis"
	"github.com/soloqlab/lol-insights/internal/config"
	"github.com/soloqlab/lol-insights/internal/export"
)

// runExportCommand writes every statistical view to disk in the
// requested format.
func runExportCommand(session *analysis.Session, cfg *config.Config, format string) error {
	var exportFormat export.Format
	switch format {
	case "json":
		exportFormat = export.FormatJSON
	case "csv":
		exportFormat = export.FormatCSV
	default:
		return fmt.Errorf("unsupported format: %s (use json or csv)", format)
	}

	exporter := export.NewExporter(export.Options{
		Format:     exportFormat,
		OutputDir:  cfg.Charts.OutputDir,
		PrettyJSON: true,
	})

	paths, err := exporter.Export(export.BuildTables(session))
	if err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}
