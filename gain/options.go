package gain

import (
	"fmt"

	"github.com/lpalum/machine-learning/impurity"
)

type settings struct {
	target   string
	base     float64
	measure  impurity.Measure
	strict   bool
	workers  int
	features []string
}

// Option configures InformationGain, Ratio, SplitInfo and Rank. Options that
// only make sense for ranking are ignored elsewhere.
type Option func(*settings)

// Target selects the label column. If not provided the table's own target
// column is used.
func Target(name string) Option {
	return func(s *settings) {
		s.target = name
	}
}

// Base sets the logarithm base of the entropies, 2 if not provided.
func Base(b float64) Option {
	return func(s *settings) {
		s.base = b
	}
}

// Impurity sets the measure applied to each partition. Shannon entropy, the
// default, gives information gain; Gini gives the Gini decrease.
func Impurity(m impurity.Measure) Option {
	return func(s *settings) {
		s.measure = m
	}
}

// Strict requires the partitions to be pairwise disjoint and to cover every
// row of the table.
func Strict() Option {
	return func(s *settings) {
		s.strict = true
	}
}

// NumWorkers sets the number of columns Rank scores at once.
func NumWorkers(n int) Option {
	return func(s *settings) {
		s.workers = n
	}
}

// Features limits Rank to the named columns.
func Features(names ...string) Option {
	return func(s *settings) {
		s.features = names
	}
}

func newSettings(options []Option) (*settings, error) {
	s := &settings{
		base:    impurity.DefaultBase,
		measure: impurity.Shannon,
		workers: 1,
	}
	for _, opt := range options {
		opt(s)
	}

	if err := impurity.CheckBase(s.base); err != nil {
		return nil, err
	}
	if s.workers < 1 {
		s.workers = 1
	}
	return s, nil
}

// labels resolves the label column of t.
func (s *settings) labels(t Table) ([]string, error) {
	name := s.target
	if name == "" {
		name = t.Target()
	}

	col, err := t.Column(name)
	if err != nil {
		return nil, fmt.Errorf("%w: label column: %w", ErrInvalidArgument, err)
	}
	if len(col) != t.Len() {
		return nil, fmt.Errorf("%w: label column %q has %d rows, table has %d",
			ErrInvalidArgument, name, len(col), t.Len())
	}
	return col, nil
}

// impurityOf returns the impurity of the labels picked by p. p must already
// be validated against labels.
func (s *settings) impurityOf(labels []string, p []int) (float64, error) {
	var tally impurity.Tally[string]
	for _, r := range p {
		tally.Add(labels[r])
	}
	return s.measure.Counts(tally.N, tally.Counts, impurity.Base(s.base))
}
