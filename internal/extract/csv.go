package extract

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kvoronov/metric_etl/internal/domain"
)

// CSVExtractor parses comma-delimited files. The header row defines the
// column set and every data row must match its width.
type CSVExtractor struct{}

func (CSVExtractor) Extract(path string) (*domain.Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}

	table, err := parseCSV(bytes.NewReader(content))
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}

	return table, nil
}

func parseCSV(r io.Reader) (*domain.Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	table := domain.NewTable()
	table.AddColumns(header...)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse record #%d: %w", table.NumRows()+1, err)
		}

		row := make(domain.Row, len(header))
		for i, name := range header {
			row[name] = record[i]
		}

		table.Append(row)
	}

	return table, nil
}
