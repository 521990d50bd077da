package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names no formatter claims.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// extensionFor maps canonical formatter names to file extensions.
func extensionFor(name string) string {
	switch name {
	case "console":
		return "txt"
	default:
		return name
	}
}

// GenerateReport formats the analysis and writes it to a timestamped report
// file, returning the filename.
func GenerateReport(analysis *domain.LossAnalysis, format string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "))
	}
	return WriteFormatted(f, analysis, extensionFor(f.Name()))
}
