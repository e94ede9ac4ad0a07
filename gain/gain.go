// gain scores candidate splits of a labelled table by how much they reduce
// the uncertainty of the label, the criterion ID3 and C4.5 use to choose the
// feature a decision tree node splits on.
package gain

import (
	"github.com/lpalum/machine-learning/dataset"
	"github.com/lpalum/machine-learning/impurity"
)

// ErrInvalidArgument is wrapped by errors about malformed partitions,
// labels or options.
var ErrInvalidArgument = impurity.ErrInvalidArgument

// Table is a labelled table of examples. *dataset.Table implements it.
type Table interface {
	Len() int
	Target() string
	Column(name string) ([]string, error)
}

// InformationGain returns the reduction of the parent entropy achieved by
// splitting t into splits:
//
//	parent - sum over i |split_i|/|t| * entropy(labels in split_i)
//
// When t has at most one row, or fewer than two splits hold any rows, the
// split divides nothing and parent is returned unchanged. Splits are not
// checked for overlap or coverage unless the Strict option is given; any
// index outside t is an error.
func InformationGain(parent float64, splits []dataset.Partition, t Table, options ...Option) (float64, error) {
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

	return s.gain(parent, splits, labels)
}

func (s *settings) gain(parent float64, splits []dataset.Partition, labels []string) (float64, error) {
	total := len(labels)
	if total <= 1 {
		return parent, nil
	}

	fracs := make([]float64, len(splits))
	nWeighted := 0
	for i, p := range splits {
		fracs[i] = float64(len(p)) / float64(total)
		if fracs[i] > 0 {
			nWeighted++
		}
	}

	if nWeighted < 2 {
		return parent, nil
	}

	weighted := 0.0
	for i, p := range splits {
		if fracs[i] == 0 {
			continue
		}
		e, err := s.impurityOf(labels, p)
		if err != nil {
			return 0, err
		}
		weighted += fracs[i] * e
	}

	return parent - weighted, nil
}
