package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/kvoronov/metric_etl/internal/checksum"
	"github.com/kvoronov/metric_etl/internal/domain"
)

// Discover lists the input directory (non-recursive) and returns one
// descriptor per entry, sorted by path for deterministic processing order.
// Nothing is filtered out: directories and extensionless names are kept, as
// their failure belongs to the extraction task, and files carrying the same
// content as an earlier entry still contribute their rows to the batch.
// Checksums are recorded for provenance only.
func Discover(log *slog.Logger, dir string) ([]domain.FileDescriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	seen := make(map[string]string, len(entries))

	var descs []domain.FileDescriptor
	for _, entry := range entries {
		desc := domain.NewFileDescriptor(filepath.Join(dir, entry.Name()))

		if entry.Type().IsRegular() {
			sum, err := checksum.File(desc.Path)
			switch {
			case err != nil:
				// Not fatal here: the extraction task will surface the
				// real read error as a per-file failure.
				log.Warn("failed to checksum file",
					slog.String("path", desc.Path),
					slog.String("err", err.Error()),
				)
			case seen[sum] != "":
				desc.Checksum = sum
				log.Info("discovered duplicate file content",
					slog.String("path", desc.Path),
					slog.String("duplicate_of", seen[sum]),
				)
			default:
				seen[sum] = desc.Path
				desc.Checksum = sum
			}
		}

		descs = append(descs, desc)
	}

	sort.Slice(descs, func(i, j int) bool { return descs[i].Path < descs[j].Path })

	return descs, nil
}
