// Package server provides the HTTP REST API for the career forecaster.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/HashiniGamage/CareerNexusModel/internal/catalog"
	"github.com/HashiniGamage/CareerNexusModel/internal/export"
	"github.com/HashiniGamage/CareerNexusModel/internal/forecast"
)

// handleForecasts synthesizes a ranked forecast for the industry and
// experience level given as query parameters.
func (s *Server) handleForecasts(w http.ResponseWriter, r *http.Request) {
	industry := r.URL.Query().Get("industry")
	experience := r.URL.Query().Get("experience")

	if industry == "" {
		s.errorResponse(w, http.StatusBadRequest, "industry query parameter is required")
		return
	}
	if experience == "" {
		s.errorResponse(w, http.StatusBadRequest, "experience query parameter is required")
		return
	}

	forecasts, err := s.newEngine().Predict(industry, experience)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"industry":    industry,
		"experience":  experience,
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
		"forecasts":   forecasts,
	})
}

// handleExport renders a forecast run as a downloadable artifact. The format
// query parameter selects csv, model or script output.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	industry := r.URL.Query().Get("industry")
	experience := r.URL.Query().Get("experience")
	format := r.URL.Query().Get("format")

	if industry == "" || experience == "" {
		s.errorResponse(w, http.StatusBadRequest, "industry and experience query parameters are required")
		return
	}
	if format == "" {
		format = "csv"
	}

	forecasts, err := s.newEngine().Predict(industry, experience)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	run := export.Run{
		Industry:   industry,
		Experience: experience,
		Forecasts:  forecasts,
	}

	var (
		body        []byte
		contentType string
		filename    string
	)

	switch format {
	case "csv":
		out, err := export.CSV(run)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to render CSV export")
			return
		}
		body, contentType, filename = []byte(out), "text/csv", export.CSVFilename
	case "model":
		out, err := export.ModelJSON(run)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to render model export")
			return
		}
		body, contentType, filename = out, "application/json", export.ModelFilename
	case "script":
		out, err := export.Script(run)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to render script export")
			return
		}
		body, contentType, filename = []byte(out), "text/x-python", export.ScriptFilename
	default:
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unsupported export format: %s", format))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// handleListIndustries returns the supported industries and experience levels.
func (s *Server) handleListIndustries(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"industries":       catalog.Industries(),
		"experienceLevels": catalog.ExperienceLevels(),
	})
}

// handleModelInfo returns model metadata.
func (s *Server) handleModelInfo(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, forecast.Info())
}
