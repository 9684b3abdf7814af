package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// csvHeader is the fixed column contract for the predictions CSV.
var csvHeader = []string{
	"Job Title",
	"Current Demand",
	"Predicted Growth (%)",
	"Confidence Score (%)",
	"Salary Range",
	"Skills Required",
}

// CSV renders one row per forecast under the fixed header. Skills are joined
// with ", "; quoting is handled by the CSV writer.
func CSV(run Run) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, f := range run.Forecasts {
		row := []string{
			f.JobTitle,
			strconv.Itoa(f.CurrentDemand),
			strconv.Itoa(f.TotalGrowthPct),
			strconv.Itoa(f.ConfidenceScore),
			f.SalaryRange,
			strings.Join(f.RequiredSkills, ", "),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row for %s: %w", f.JobTitle, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	return sb.String(), nil
}
