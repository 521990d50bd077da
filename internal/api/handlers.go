package api

import (
	"encoding/json"
	"net/http"

	"github.com/lexecon/lost-earnings-calculator/internal/calculation"
	"github.com/lexecon/lost-earnings-calculator/internal/config"
	"github.com/lexecon/lost-earnings-calculator/internal/domain"
)

// Handler holds the dependencies for the HTTP handlers.
type Handler struct {
	Engine  *calculation.LossEngine
	Parser  *config.InputParser
	Version string

	// AuthName is echoed by the health endpoint so operators can confirm
	// which scheme is active.
	AuthName string
}

// NewHandler creates a handler around a fresh engine and parser.
func NewHandler(version string) *Handler {
	return &Handler{
		Engine:  calculation.NewLossEngine(),
		Parser:  config.NewInputParser(),
		Version: version,
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.Version,
		Auth:    h.AuthName,
	})
}

// RunAnalysis accepts a case file as JSON and returns the full analysis:
// both schedules, the AEF ledger, and summary totals.
func (h *Handler) RunAnalysis(w http.ResponseWriter, r *http.Request) {
	var c domain.CaseFile
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.Parser.ValidateCase(&c); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid case file", err)
		return
	}

	analysis, err := h.Engine.RunAnalysis(r.Context(), &c)
	if err != nil {
		if domain.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, "Invalid case file", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Analysis failed", err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// ComposeAEF composes a factor list into its combined multiplier without
// running a schedule. Useful for checking a factor stack in isolation.
func (h *Handler) ComposeAEF(w http.ResponseWriter, r *http.Request) {
	var req AEFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	for _, f := range req.Factors {
		if f.Label == "" {
			writeError(w, http.StatusBadRequest, "Invalid factor list",
				domain.NewValidationError("factors", "every factor needs a label"))
			return
		}
	}

	final, steps := calculation.ComposeFactors(req.Factors)
	writeJSON(w, http.StatusOK, AEFResponse{
		FinalAEF:  final,
		Breakdown: calculation.BuildBreakdown(steps, final),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
