package domain

// Row maps column names to cell values. A cell holds a string or a float64;
// an absent key is a null cell.
type Row map[string]any

// Table is the uniform tabular representation passed between pipeline
// stages. Columns keeps first-seen order. Each stage builds its own table
// and never mutates one it received.
type Table struct {
	Columns []string
	Rows    []Row

	colSet map[string]struct{}
}

func NewTable() *Table {
	return &Table{colSet: make(map[string]struct{})}
}

// AddColumns registers columns without adding rows. Names already present
// are ignored.
func (t *Table) AddColumns(names ...string) {
	if t.colSet == nil {
		t.colSet = make(map[string]struct{}, len(names))
	}

	for _, name := range names {
		if _, ok := t.colSet[name]; ok {
			continue
		}
		t.colSet[name] = struct{}{}
		t.Columns = append(t.Columns, name)
	}
}

// Append adds a row, extending the column set with any names not seen
// before. Iteration order of a map is not stable, so rows with brand-new
// columns register them in unspecified relative order; consumers rely on
// the column set, not on cross-file column positions.
func (t *Table) Append(row Row) {
	for name := range row {
		t.AddColumns(name)
	}
	t.Rows = append(t.Rows, row)
}

func (t *Table) NumRows() int { return len(t.Rows) }

func (t *Table) HasColumn(name string) bool {
	_, ok := t.colSet[name]
	return ok
}

// Concat builds a fresh table holding every row of every input, in input
// order. Column sets are unioned; a row keeps only the cells it had, so
// cells under columns its source never produced stay null.
func Concat(tables ...*Table) *Table {
	out := NewTable()
	for _, t := range tables {
		out.AddColumns(t.Columns...)
		out.Rows = append(out.Rows, t.Rows...)
	}
	return out
}
