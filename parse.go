package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lpalum/machine-learning/dataset"
)

// parse csv file of categorical examples. The first row holds the column
// names unless noHeader is set, in which case the columns are named
// Y, X1, X2,...Xn with Y as the target.
func parseCSV(r io.Reader, noHeader bool) (*dataset.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	// grab first row
	row, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("no rows in input")
	}
	if err != nil {
		return nil, err
	}

	var names []string
	if noHeader {
		names = defaultNames(len(row))
	} else {
		names, err = parseHeader(row)
		if err != nil {
			return nil, err
		}
	}

	t, err := dataset.New(names...)
	if err != nil {
		return nil, err
	}

	if noHeader {
		if err := t.AddRow(row); err != nil {
			return nil, err
		}
	}

	// keep reading rows until EOF
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return t, err
		}

		if err := t.AddRow(row); err != nil {
			line, _ := reader.FieldPos(0)
			return t, fmt.Errorf("line %d: %w", line, err)
		}
	}

	return t, nil
}

func parseHeader(row []string) ([]string, error) {
	names := make([]string, len(row))
	for i, val := range row {
		name := strings.TrimSpace(val)
		if name == "" {
			return nil, fmt.Errorf("header: column %d has no name", i+1)
		}
		names[i] = name
	}
	return names, nil
}

// use Y, X1, X2,...Xn for var names
func defaultNames(n int) []string {
	names := make([]string, n)
	if n == 0 {
		return names
	}
	names[0] = "Y"
	for i := 1; i < n; i++ {
		names[i] = fmt.Sprintf("X%d", i)
	}
	return names
}

// split a comma separated flag value, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
