package pipeline_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/kvoronov/metric_etl/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover_SortedDescriptors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "z.csv", "name\nZed\n")
	writeInput(t, dir, "a.json", `{"name":"Ann"}`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	log := slog.New(slog.DiscardHandler)

	descs, err := pipeline.Discover(log, dir)
	require.NoError(t, err)

	// Directories are kept; their failure belongs to the extraction task.
	require.Len(t, descs, 3)
	assert.Equal(t, filepath.Join(dir, "a.json"), descs[0].Path)
	assert.Equal(t, "json", descs[0].Ext)
	assert.Equal(t, filepath.Join(dir, "subdir"), descs[1].Path)
	assert.Equal(t, filepath.Join(dir, "z.csv"), descs[2].Path)
	assert.NotEmpty(t, descs[0].Checksum)
	assert.Empty(t, descs[1].Checksum)
}

func TestDiscover_KeepsDuplicateContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "a.csv", "name\nBob\n")
	writeInput(t, dir, "b.csv", "name\nBob\n")
	writeInput(t, dir, "c.csv", "name\nAlice\n")

	log := slog.New(slog.DiscardHandler)

	descs, err := pipeline.Discover(log, dir)
	require.NoError(t, err)

	// Identical content under a second name is still its own entry.
	require.Len(t, descs, 3)
	assert.Equal(t, filepath.Join(dir, "a.csv"), descs[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.csv"), descs[1].Path)
	assert.Equal(t, filepath.Join(dir, "c.csv"), descs[2].Path)
	assert.Equal(t, descs[0].Checksum, descs[1].Checksum)
	assert.NotEqual(t, descs[0].Checksum, descs[2].Checksum)
}

func TestDiscover_EmptyDirectory(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	descs, err := pipeline.Discover(log, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, descs)
}

func TestDiscover_MissingDirectory(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	descs, err := pipeline.Discover(log, filepath.Join(t.TempDir(), "absent"))
	assert.Nil(t, descs)
	require.Error(t, err)
}

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
