package extract

import (
	"encoding/xml"
	"os"

	"github.com/kvoronov/metric_etl/internal/domain"
)

// XMLExtractor maps a flat XML document onto a table: the root's direct
// children are rows, and each grandchild contributes a column keyed by its
// tag with its text content as the cell value. A row element with no
// children yields a row with no cells.
type XMLExtractor struct{}

type xmlNode struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []xmlNode `xml:",any"`
}

func (XMLExtractor) Extract(path string) (*domain.Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}

	var root xmlNode
	if err := xml.Unmarshal(content, &root); err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}

	table := domain.NewTable()
	for _, elem := range root.Children {
		row := make(domain.Row, len(elem.Children))
		for _, child := range elem.Children {
			row[child.XMLName.Local] = child.Text
		}

		table.Append(row)
	}

	return table, nil
}
