package dataset

import "fmt"

// Partition selects a subset of the rows of a table by index.
type Partition []int

// All returns the partition holding every one of n rows.
func All(n int) Partition {
	p := make(Partition, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Mask converts a boolean row filter into a partition of the rows whose
// mask entry is true.
func Mask(mask []bool) Partition {
	var p Partition
	for i, in := range mask {
		if in {
			p = append(p, i)
		}
	}
	return p
}

// Select returns the values of col picked by p, in partition order.
func Select[T any](col []T, p Partition) ([]T, error) {
	out := make([]T, len(p))
	for i, r := range p {
		if r < 0 || r >= len(col) {
			return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, r, len(col))
		}
		out[i] = col[r]
	}
	return out, nil
}

// Where returns the rows whose column holds value.
func (t *Table) Where(column, value string) (Partition, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	p := Partition{}
	for i, v := range col {
		if v == value {
			p = append(p, i)
		}
	}
	return p, nil
}

// GroupBy partitions the rows by the distinct values of column. Values are
// returned in the order they first appear, values[i] labelling groups[i].
// The groups are disjoint and cover every row.
func (t *Table) GroupBy(column string) (groups []Partition, values []string, err error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, nil, err
	}

	ids := make(map[string]int)
	for i, v := range col {
		id, ok := ids[v]
		if !ok {
			id = len(values)
			ids[v] = id
			values = append(values, v)
			groups = append(groups, Partition{})
		}
		groups[id] = append(groups[id], i)
	}
	return groups, values, nil
}
