// Package transform converts imperial measurements to metric.
package transform

import (
	"strconv"
	"strings"

	"github.com/kvoronov/metric_etl/internal/domain"
)

const (
	inchesToMeters    = 0.0254
	poundsToKilograms = 0.453592
)

var outputColumns = []string{"name", "height", "weight"}

// Apply converts height (inches) to meters and weight (pounds) to kilograms
// and projects the table onto exactly the name, height and weight columns.
// Cells that do not coerce to a number become null; rows are never dropped,
// a null name included. The input table is left untouched.
func Apply(t *domain.Table) *domain.Table {
	out := domain.NewTable()
	out.AddColumns(outputColumns...)

	for _, row := range t.Rows {
		converted := make(domain.Row, len(outputColumns))

		if name, ok := row["name"]; ok {
			converted["name"] = name
		}
		if h, ok := toNumber(row["height"]); ok {
			converted["height"] = h * inchesToMeters
		}
		if w, ok := toNumber(row["weight"]); ok {
			converted["weight"] = w * poundsToKilograms
		}

		out.Append(converted)
	}

	return out
}

// toNumber coerces a cell to float64. Absent cells and unparseable values
// yield false, never an error.
func toNumber(cell any) (float64, bool) {
	switch v := cell.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
