package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/HashiniGamage/CareerNexusModel/internal/export"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	exportIndustry   string
	exportExperience string
	exportDir        string
	exportSeed       int64
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write forecast artifacts to disk",
	Long:  `Run a forecast and write all three artifacts (CSV table, model JSON, Streamlit script) into a directory.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportIndustry, "industry", "", "Industry key (e.g. technology)")
	exportCmd.Flags().StringVar(&exportExperience, "experience", "", "Experience level (e.g. entry, mid, senior, executive)")
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "Output directory")
	exportCmd.Flags().Int64Var(&exportSeed, "seed", 0, "Random seed for reproducible output (0 uses the clock)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	industry, experience, err := resolveTarget(exportIndustry, exportExperience)
	if err != nil {
		return err
	}

	forecasts, err := newEngine(exportSeed).Predict(industry, experience)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	run := export.Run{
		Industry:   industry,
		Experience: experience,
		Forecasts:  forecasts,
	}

	// The three renderers only read the run, so they can write in parallel.
	var g errgroup.Group

	g.Go(func() error {
		out, err := export.CSV(run)
		if err != nil {
			return err
		}
		return writeArtifact(export.CSVFilename, []byte(out))
	})
	g.Go(func() error {
		out, err := export.ModelJSON(run)
		if err != nil {
			return err
		}
		return writeArtifact(export.ModelFilename, out)
	})
	g.Go(func() error {
		out, err := export.Script(run)
		if err != nil {
			return err
		}
		return writeArtifact(export.ScriptFilename, []byte(out))
	})

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Wrote %s, %s and %s to %s\n",
		export.CSVFilename, export.ModelFilename, export.ScriptFilename, exportDir)
	return nil
}

func writeArtifact(name string, data []byte) error {
	path := filepath.Join(exportDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
