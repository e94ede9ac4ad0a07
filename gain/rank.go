package gain

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lpalum/machine-learning/dataset"
)

// Score is the result of splitting a table on every distinct value of one
// feature column.
type Score struct {
	Feature string
	Values  []string // distinct feature values, one partition each
	Sizes   []int
	Gain    float64
	Ratio   float64
}

// Rank scores each feature column of t by the information gain of grouping
// the rows on its values, and returns the scores best first. The parent
// entropy is that of the whole label column. Columns are scored by up to
// NumWorkers goroutines; the first error, or the cancellation of ctx, stops
// the ranking.
func Rank(ctx context.Context, t *dataset.Table, options ...Option) ([]Score, error) {
	s, err := newSettings(options)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	labels, err := s.labels(t)
	if err != nil {
		return nil, err
	}
	target := s.target
	if target == "" {
		target = t.Target()
	}

	features := s.features
	if len(features) == 0 {
		features = t.Features()
		if target != t.Target() {
			features = append(features, t.Target())
		}
	}

	parent, err := s.impurityOf(labels, dataset.All(len(labels)))
	if err != nil {
		return nil, err
	}

	scores := make([]Score, 0, len(features))
	for _, name := range features {
		if name == target {
			if len(s.features) > 0 {
				return nil, fmt.Errorf("%w: feature %q is the label column", ErrInvalidArgument, name)
			}
			continue
		}
		scores = append(scores, Score{Feature: name})
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range scores {
		sc := &scores[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.score(sc, t, parent, labels)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Stable(sort.Reverse(byGain(scores)))
	return scores, nil
}

// score fills in sc for the feature it names. Each worker owns its Score.
func (s *settings) score(sc *Score, t *dataset.Table, parent float64, labels []string) error {
	groups, values, err := t.GroupBy(sc.Feature)
	if err != nil {
		return fmt.Errorf("%w: feature: %w", ErrInvalidArgument, err)
	}

	g, err := s.gain(parent, groups, labels)
	if err != nil {
		return err
	}
	r, err := s.ratio(g, groups, len(labels))
	if err != nil {
		return err
	}

	sc.Values = values
	sc.Sizes = make([]int, len(groups))
	for i, p := range groups {
		sc.Sizes[i] = len(p)
	}
	sc.Gain = g
	sc.Ratio = r
	return nil
}

type byGain []Score

func (b byGain) Len() int           { return len(b) }
func (b byGain) Less(i, j int) bool { return b[i].Gain < b[j].Gain }
func (b byGain) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
