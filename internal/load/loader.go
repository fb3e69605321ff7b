// Package load serializes the final table to the destination file.
package load

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jszwec/csvutil"
	"github.com/kvoronov/metric_etl/internal/domain"
)

// record is the output file contract: header name,height,weight, empty
// cell for null.
type record struct {
	Name   *string  `csv:"name"`
	Height *float64 `csv:"height"`
	Weight *float64 `csv:"weight"`
}

type Loader struct {
	log         *slog.Logger
	destination string
}

func NewLoader(log *slog.Logger, destination string) *Loader {
	return &Loader{
		log:         log,
		destination: destination,
	}
}

// Load writes the table as CSV. The file is staged next to the destination
// and renamed into place, so a failed run never leaves a partial file and a
// re-run fully overwrites the previous output.
func (l *Loader) Load(table *domain.Table) error {
	dir := filepath.Dir(l.destination)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(l.destination)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create staging file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := writeRecords(tmp, table); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close staging file: %w", err)
	}

	// CreateTemp opens the staging file 0600; the published output is a
	// regular data file.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}

	if err := os.Rename(tmp.Name(), l.destination); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	l.log.Info("wrote output file",
		slog.String("path", l.destination),
		slog.Int("row_count", table.NumRows()),
	)

	return nil
}

func writeRecords(f *os.File, table *domain.Table) error {
	writer := csv.NewWriter(f)
	enc := csvutil.NewEncoder(writer)

	if table.NumRows() == 0 {
		if err := enc.EncodeHeader(record{}); err != nil {
			return fmt.Errorf("failed to encode header: %w", err)
		}
	}

	for _, row := range table.Rows {
		rec := record{
			Name:   cellString(row["name"]),
			Height: cellFloat(row["height"]),
			Weight: cellFloat(row["weight"]),
		}

		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func cellString(cell any) *string {
	switch v := cell.(type) {
	case string:
		return &v
	case float64:
		s := strconv.FormatFloat(v, 'G', -1, 64)
		return &s
	default:
		return nil
	}
}

func cellFloat(cell any) *float64 {
	if f, ok := cell.(float64); ok {
		return &f
	}
	return nil
}
