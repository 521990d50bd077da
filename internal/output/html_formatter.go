package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	// curr accepts both values and the nullable PV pointer column.
	"curr": func(v any) string {
		switch d := v.(type) {
		case decimal.Decimal:
			return FormatCurrency(d)
		case *decimal.Decimal:
			if d == nil {
				return ""
			}
			return FormatCurrency(*d)
		}
		return ""
	},
	"pct": FormatPercentage,
	"date": FormatDate,
	"aefPct": func(d decimal.Decimal) string {
		return FormatPercentage(d.Mul(hundred).Round(2))
	},
	"fixed": func(places int32, d decimal.Decimal) string {
		return d.StringFixed(places)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(analysis *domain.LossAnalysis) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, analysis); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
