package extract_test

import (
	"path/filepath"
	"testing"

	"github.com/kvoronov/metric_etl/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExtractor_Extract_HappyPath(t *testing.T) {
	t.Parallel()

	path := createFile(t, "people.csv", "name,height,weight\nBob,70,180\nAlice,65,130\n")

	table, err := extract.CSVExtractor{}.Extract(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "height", "weight"}, table.Columns)
	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, "Bob", table.Rows[0]["name"])
	assert.Equal(t, "70", table.Rows[0]["height"])
	assert.Equal(t, "130", table.Rows[1]["weight"])
}

func TestCSVExtractor_Extract_RaggedRow(t *testing.T) {
	t.Parallel()

	path := createFile(t, "ragged.csv", "name,height\nBob\n")

	table, err := extract.CSVExtractor{}.Extract(path)
	assert.Nil(t, table)

	var extractionErr *extract.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, path, extractionErr.Path)
}

func TestCSVExtractor_Extract_EmptyFile(t *testing.T) {
	t.Parallel()

	path := createFile(t, "empty.csv", "")

	table, err := extract.CSVExtractor{}.Extract(path)
	assert.Nil(t, table)
	require.ErrorContains(t, err, "missing header row")
}

func TestCSVExtractor_Extract_HeaderOnly(t *testing.T) {
	t.Parallel()

	path := createFile(t, "header.csv", "name,height,weight\n")

	table, err := extract.CSVExtractor{}.Extract(path)
	require.NoError(t, err)

	assert.Zero(t, table.NumRows())
	assert.Equal(t, []string{"name", "height", "weight"}, table.Columns)
}

func TestCSVExtractor_Extract_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.csv")

	table, err := extract.CSVExtractor{}.Extract(path)
	assert.Nil(t, table)

	var extractionErr *extract.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
}
