package api

import (
	"github.com/shopspring/decimal"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
)

// AEFRequest is the body for POST /api/aef: a bare factor list, composed
// without a schedule.
type AEFRequest struct {
	Factors []domain.Factor `json:"factors"`
}

// AEFResponse returns the composed multiplier with its disclosure ledger.
type AEFResponse struct {
	FinalAEF  decimal.Decimal     `json:"final_aef"`
	Breakdown domain.AEFBreakdown `json:"breakdown"`
}

// HealthResponse reports service liveness and the active auth scheme.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Auth    string `json:"auth"`
}

// ErrorResponse is the JSON error envelope for all non-2xx replies.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
