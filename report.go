package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lpalum/machine-learning/gain"
)

type reportHeader struct {
	target  string
	measure string
	base    float64
	rows    int
	parent  float64
}

func writeReport(w io.Writer, h reportHeader, scores []gain.Score, maxVars int) {
	fmt.Fprintf(w, "Target: %s (%d examples)\n", h.target, h.rows)
	fmt.Fprintf(w, "Parent %s: %.4f (base %g)\n", h.measure, h.parent, h.base)
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "%-15s  %-10s %-10s %s\n", "Feature", "Gain", "Ratio", "Values")
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 50))

	// only show top n
	if maxVars <= 0 || maxVars > len(scores) {
		maxVars = len(scores)
	}

	for _, s := range scores[:maxVars] {
		fmt.Fprintf(w, "%-15s: %-10.4f %-10.4f %d\n", s.Feature, s.Gain, s.Ratio, len(s.Values))
	}

	fmt.Fprintf(w, "\n")
}

func saveScores(w io.Writer, scores []gain.Score) error {
	writer := csv.NewWriter(w)

	err := writer.Write([]string{"feature", "gain", "ratio", "values"})
	if err != nil {
		return err
	}

	for _, s := range scores {
		err := writer.Write([]string{
			s.Feature,
			strconv.FormatFloat(s.Gain, 'f', -1, 64),
			strconv.FormatFloat(s.Ratio, 'f', -1, 64),
			strconv.Itoa(len(s.Values)),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
