package output

import (
	"encoding/json"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
)

// JSONFormatter serializes the loss analysis as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(analysis *domain.LossAnalysis) ([]byte, error) {
	return json.MarshalIndent(analysis, "", "  ")
}
