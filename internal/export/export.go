// Package export serializes forecast runs into the downloadable artifacts:
// a CSV of predictions, a versioned model JSON document, and a generated
// Streamlit dashboard script. Exporters consume forecasts read-only and
// impose no invariants of their own.
package export

import (
	"github.com/HashiniGamage/CareerNexusModel/internal/types"
)

// Default artifact filenames, matching what the dashboard offers for download.
const (
	CSVFilename    = "job_predictions.csv"
	ModelFilename  = "job_forecaster_model.json"
	ScriptFilename = "job_forecaster_app.py"
)

// Run is one completed forecast computation together with the selection that
// produced it.
type Run struct {
	Industry   string
	Experience string
	Forecasts  []types.JobForecast
}
