// dataset holds categorical example tables in memory and selects subsets of
// their rows. A table is a set of equally long named columns of string
// cells; one of them is the target the examples are labelled by.
package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrNoColumn   = errors.New("no such column")
	ErrShape      = errors.New("row does not match table columns")
	ErrOutOfRange = errors.New("row index out of range")
)

// Table is a column oriented table of categorical values. A Table is safe
// for concurrent reads once no more rows are added.
type Table struct {
	names  []string
	index  map[string]int
	cols   [][]string
	target int
}

// New returns an empty table with the given column names. The first column
// is the target until SetTarget says otherwise.
func New(names ...string) (*Table, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: table needs at least one column", ErrShape)
	}

	t := &Table{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
		cols:  make([][]string, len(names)),
	}
	for i, name := range names {
		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrShape, name)
		}
		t.names[i] = name
		t.index[name] = i
	}

	return t, nil
}

// AddRow appends one example; row must hold one cell per column.
func (t *Table) AddRow(row []string) error {
	if len(row) != len(t.cols) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrShape, len(row), len(t.cols))
	}
	for i, v := range row {
		t.cols[i] = append(t.cols[i], v)
	}
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.cols[0])
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Target returns the name of the target column.
func (t *Table) Target() string {
	return t.names[t.target]
}

// SetTarget makes name the target column.
func (t *Table) SetTarget(name string) error {
	i, ok := t.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoColumn, name)
	}
	t.target = i
	return nil
}

// Features returns every column name except the target's.
func (t *Table) Features() []string {
	var features []string
	for i, name := range t.names {
		if i != t.target {
			features = append(features, name)
		}
	}
	return features
}

// Column returns the cells of the named column. The returned slice is
// shared with the table and must not be modified.
func (t *Table) Column(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, name)
	}
	return t.cols[i], nil
}
