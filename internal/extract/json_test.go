package extract_test

import (
	"testing"

	"github.com/kvoronov/metric_etl/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONExtractor_Extract_HappyPath(t *testing.T) {
	t.Parallel()

	content := `{"name":"Bob","height":70,"weight":180}
{"name":"Alice","height":"65"}
`
	path := createFile(t, "people.json", content)

	table, err := extract.JSONExtractor{}.Extract(path)
	require.NoError(t, err)

	require.Equal(t, 2, table.NumRows())
	assert.ElementsMatch(t, []string{"name", "height", "weight"}, table.Columns)

	// JSON numbers decode as float64, quoted numbers stay strings.
	assert.Equal(t, float64(70), table.Rows[0]["height"])
	assert.Equal(t, "65", table.Rows[1]["height"])

	// The second record never produced a weight cell.
	_, ok := table.Rows[1]["weight"]
	assert.False(t, ok)
}

func TestJSONExtractor_Extract_MalformedLine(t *testing.T) {
	t.Parallel()

	content := `{"name":"Bob"}
{"name":
`
	path := createFile(t, "broken.json", content)

	table, err := extract.JSONExtractor{}.Extract(path)
	assert.Nil(t, table)

	var extractionErr *extract.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.ErrorContains(t, err, "line 2")
}

func TestJSONExtractor_Extract_TopLevelArray(t *testing.T) {
	t.Parallel()

	// The format is one object per line, not a JSON array.
	path := createFile(t, "array.json", `[{"name":"Bob"}]`)

	table, err := extract.JSONExtractor{}.Extract(path)
	assert.Nil(t, table)
	require.Error(t, err)
}

func TestJSONExtractor_Extract_EmptyFile(t *testing.T) {
	t.Parallel()

	path := createFile(t, "empty.json", "")

	table, err := extract.JSONExtractor{}.Extract(path)
	require.NoError(t, err)
	assert.Zero(t, table.NumRows())
}

func TestJSONExtractor_Extract_BlankLines(t *testing.T) {
	t.Parallel()

	path := createFile(t, "blank.json", "\n{\"name\":\"Bob\"}\n\n")

	table, err := extract.JSONExtractor{}.Extract(path)
	require.NoError(t, err)
	require.Equal(t, 1, table.NumRows())
	assert.Equal(t, "Bob", table.Rows[0]["name"])
}
