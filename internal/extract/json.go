package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kvoronov/metric_etl/internal/domain"
)

// JSONExtractor parses newline-delimited JSON: one object per line, not a
// top-level array. Blank lines are skipped, so an empty file yields an empty
// table rather than an error.
type JSONExtractor struct{}

func (JSONExtractor) Extract(path string) (*domain.Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}

	table, err := parseNDJSON(content)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}

	return table, nil
}

func parseNDJSON(content []byte) (*domain.Table, error) {
	table := domain.NewTable()

	for i, line := range bytes.Split(content, []byte{'\n'}) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var row domain.Row
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("malformed record on line %d: %w", i+1, err)
		}

		table.Append(row)
	}

	return table, nil
}
