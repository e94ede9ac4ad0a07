package gain

import (
	"fmt"

	"github.com/lpalum/machine-learning/dataset"
	"github.com/lpalum/machine-learning/impurity"
)

// SplitInfo returns the entropy of the split sizes relative to a table of
// total rows, the intrinsic information of the split itself.
func SplitInfo(splits []dataset.Partition, total int, options ...Option) (float64, error) {
	s, err := newSettings(options)
	if err != nil {
		return 0, err
	}
	if total < 0 {
		return 0, fmt.Errorf("%w: negative row count %d", ErrInvalidArgument, total)
	}
	return splitInfo(splits, total, s.base)
}

func splitInfo(splits []dataset.Partition, total int, base float64) (float64, error) {
	ct := make([]int, len(splits))
	for i, p := range splits {
		ct[i] = len(p)
	}
	return impurity.EntropyCounts(total, ct, impurity.Base(base))
}

// Ratio returns the C4.5 gain ratio: the information gain of splits divided
// by their split information. A split with no split information (everything
// on one side) has ratio 0.
func Ratio(parent float64, splits []dataset.Partition, t Table, options ...Option) (float64, error) {
	s, err := newSettings(options)
	if err != nil {
		return 0, err
	}

	labels, err := s.labels(t)
	if err != nil {
		return 0, err
	}
	if err := validate(splits, len(labels), s.strict); err != nil {
		return 0, err
	}

	g, err := s.gain(parent, splits, labels)
	if err != nil {
		return 0, err
	}
	return s.ratio(g, splits, len(labels))
}

func (s *settings) ratio(g float64, splits []dataset.Partition, total int) (float64, error) {
	si, err := splitInfo(splits, total, s.base)
	if err != nil {
		return 0, err
	}
	if si == 0 {
		return 0, nil
	}
	return g / si, nil
}
