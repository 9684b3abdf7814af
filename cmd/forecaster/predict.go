package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/HashiniGamage/CareerNexusModel/internal/config"
	"github.com/HashiniGamage/CareerNexusModel/internal/forecast"
	"github.com/spf13/cobra"
)

var (
	predictIndustry   string
	predictExperience string
	predictSeed       int64
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Print a ranked job demand forecast",
	Long:  `Synthesize a 24-month demand forecast for every job title in an industry and print the ranked results.`,
	RunE:  runPredict,
}

func init() {
	predictCmd.Flags().StringVar(&predictIndustry, "industry", "", "Industry key (e.g. technology)")
	predictCmd.Flags().StringVar(&predictExperience, "experience", "", "Experience level (e.g. entry, mid, senior, executive)")
	predictCmd.Flags().Int64Var(&predictSeed, "seed", 0, "Random seed for reproducible output (0 uses the clock)")
	rootCmd.AddCommand(predictCmd)
}

// newEngine builds a forecast engine, seeded when --seed is set so repeated
// runs produce identical output.
func newEngine(seed int64) *forecast.Engine {
	if seed != 0 {
		return forecast.NewEngineWithRand(rand.New(rand.NewSource(seed)))
	}
	return forecast.NewEngine()
}

// resolveTarget fills industry and experience from the config file when the
// flags were not given.
func resolveTarget(industry, experience string) (string, string, error) {
	cfg := config.Config{Industry: industry, Experience: experience}
	merged := cfg.MergeWithDefaults(fileConfig)
	if merged.Industry == "" {
		return "", "", fmt.Errorf("--industry is required (or set industry in the config file)")
	}
	if merged.Experience == "" {
		return "", "", fmt.Errorf("--experience is required (or set experience in the config file)")
	}
	return merged.Industry, merged.Experience, nil
}

func runPredict(_ *cobra.Command, _ []string) error {
	industry, experience, err := resolveTarget(predictIndustry, predictExperience)
	if err != nil {
		return err
	}

	forecasts, err := newEngine(predictSeed).Predict(industry, experience)
	if err != nil {
		return err
	}

	fmt.Printf("Forecast for %s (%s), %d-month horizon\n\n", industry, experience, len(forecasts[0].MonthlyPoints))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tJOB TITLE\tDEMAND\tY1 GROWTH\tY2 GROWTH\tTOTAL\tCONFIDENCE\tSALARY RANGE")
	for i, f := range forecasts {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d%%\t%d%%\t%d%%\t%d%%\t%s\n",
			i+1, f.JobTitle, f.CurrentDemand, f.Year1GrowthPct, f.Year2GrowthPct,
			f.TotalGrowthPct, f.ConfidenceScore, f.SalaryRange)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	for _, f := range forecasts {
		fmt.Printf("%s skills: %s\n", f.JobTitle, strings.Join(f.RequiredSkills, ", "))
	}

	if verbose || fileConfig.Verbose {
		fmt.Println()
		for _, f := range forecasts {
			fmt.Printf("%s monthly demand:\n", f.JobTitle)
			for _, p := range f.MonthlyPoints {
				fmt.Printf("  %-7s %d\n", p.Label, p.DemandIndex)
			}
		}
	}

	return nil
}
