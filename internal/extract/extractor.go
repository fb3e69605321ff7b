// Package extract converts raw input files into tables. One extractor per
// supported format; Resolve picks the extractor for a file extension.
package extract

import (
	"fmt"

	"github.com/kvoronov/metric_etl/internal/domain"
)

// Extractor converts one file into a table. Extraction is all-or-nothing: on
// error no table is returned, never a partially populated one.
type Extractor interface {
	Extract(path string) (*domain.Table, error)
}

// UnsupportedTypeError reports an extension no extractor handles.
type UnsupportedTypeError struct {
	Ext string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q", e.Ext)
}

// ExtractionError carries the cause of a failed extraction of one file.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %q: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Resolve maps a file extension to its extractor. Matching is exact: no
// leading dot, no case folding.
func Resolve(ext string) (Extractor, error) {
	switch ext {
	case "csv":
		return CSVExtractor{}, nil
	case "json":
		return JSONExtractor{}, nil
	case "xml":
		return XMLExtractor{}, nil
	default:
		return nil, &UnsupportedTypeError{Ext: ext}
	}
}
