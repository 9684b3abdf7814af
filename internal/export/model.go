package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/HashiniGamage/CareerNexusModel/internal/catalog"
	"github.com/HashiniGamage/CareerNexusModel/internal/forecast"
	"github.com/HashiniGamage/CareerNexusModel/internal/schemas"
	"github.com/HashiniGamage/CareerNexusModel/internal/types"
)

// ModelParameters describes the model configuration advertised in the export
// document.
type ModelParameters struct {
	Algorithm           string  `json:"algorithm"`
	TrainingDataSize    int     `json:"training_data_size"`
	ValidationAccuracy  float64 `json:"validation_accuracy"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
}

// IndustryMapping is one industry's reference data as embedded in the export.
type IndustryMapping struct {
	Jobs          []string              `json:"jobs"`
	Skills        []string              `json:"skills"`
	GrowthFactors catalog.GrowthFactors `json:"growth_factors"`
}

// ModelDocument is the versioned model-export JSON: metadata, the full
// industry mapping table, and the forecasts from the current run.
type ModelDocument struct {
	Version          string                     `json:"version"`
	Timestamp        time.Time                  `json:"timestamp"`
	Industry         string                     `json:"industry"`
	Experience       string                     `json:"experience"`
	ModelParameters  ModelParameters            `json:"model_parameters"`
	IndustryMappings map[string]IndustryMapping `json:"industry_mappings"`
	Predictions      []types.JobForecast        `json:"predictions"`
	ModelInfo        forecast.ModelInfo         `json:"model_info"`
}

// ModelJSON builds the model-export document for a run, validates it against
// the document schema, and returns it pretty-printed.
func ModelJSON(run Run) ([]byte, error) {
	doc := ModelDocument{
		Version:    forecast.ModelVersion,
		Timestamp:  time.Now().UTC(),
		Industry:   run.Industry,
		Experience: run.Experience,
		ModelParameters: ModelParameters{
			Algorithm:           forecast.AlgorithmType,
			TrainingDataSize:    5000,
			ValidationAccuracy:  forecast.ModelAccuracy,
			ConfidenceThreshold: 0.85,
		},
		IndustryMappings: industryMappings(),
		Predictions:      run.Forecasts,
		ModelInfo:        forecast.Info(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model document: %w", err)
	}

	if err := schemas.ValidateJSONString(schemas.ForecastModelSchema, string(data)); err != nil {
		return nil, fmt.Errorf("model document failed schema validation: %w", err)
	}

	return data, nil
}

// industryMappings snapshots the full catalog into export form.
func industryMappings() map[string]IndustryMapping {
	mappings := make(map[string]IndustryMapping)
	for _, ind := range catalog.Industries() {
		profile, _ := catalog.Lookup(ind)
		mappings[string(ind)] = IndustryMapping{
			Jobs:          profile.Jobs,
			Skills:        catalog.Skills(ind),
			GrowthFactors: profile.Growth,
		}
	}
	return mappings
}
