// impurity measures how mixed the labels of a set of examples are. Shannon
// entropy is what information gain is built on; Gini impurity is the cheaper
// alternative CART splitters use.
package impurity

import (
	"fmt"
	"math"
	"strings"
)

// DefaultBase is the logarithm base used when no Base option is given, so
// entropy is reported in bits unless asked otherwise.
const DefaultBase = 2.0

type Measure int

const (
	Shannon Measure = iota
	Gini
)

var measureNames = map[string]Measure{
	"entropy": Shannon,
	"shannon": Shannon,
	"gini":    Gini,
}

// ParseMeasure looks up a measure by name ("entropy" or "gini").
func ParseMeasure(name string) (Measure, error) {
	m, ok := measureNames[strings.ToLower(name)]
	if !ok {
		return Shannon, fmt.Errorf("%w: unknown impurity measure %q", ErrInvalidArgument, name)
	}
	return m, nil
}

func (m Measure) String() string {
	switch m {
	case Shannon:
		return "entropy"
	case Gini:
		return "gini"
	default:
		return fmt.Sprintf("Measure(%d)", int(m))
	}
}

// Counts returns the impurity of n examples distributed over classes with the
// given counts. The base option only affects Shannon; it is still validated
// for Gini so a bad base is never silently accepted.
func (m Measure) Counts(n int, ct []int, options ...Option) (float64, error) {
	o, err := newOptions(options)
	if err != nil {
		return 0, err
	}
	switch m {
	case Shannon:
		return entropy(n, ct, o.base), nil
	case Gini:
		return gini(n, ct), nil
	default:
		return 0, fmt.Errorf("%w: unknown impurity measure %d", ErrInvalidArgument, int(m))
	}
}

type options struct {
	base float64
}

// Option configures an impurity computation.
type Option func(*options)

// Base sets the logarithm base of the entropy: 2 for bits, e for nats,
// 10 for bans. The base must be positive, finite and different from 1.
func Base(b float64) Option {
	return func(o *options) {
		o.base = b
	}
}

var (
	Bits = Base(2)
	Nats = Base(math.E)
	Bans = Base(10)
)

func newOptions(opts []Option) (options, error) {
	o := options{base: DefaultBase}
	for _, opt := range opts {
		opt(&o)
	}
	return o, CheckBase(o.base)
}

// CheckBase reports whether b is a usable logarithm base.
func CheckBase(b float64) error {
	if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 || b == 1 {
		return fmt.Errorf("%w: undefined logarithm base %v", ErrInvalidArgument, b)
	}
	return nil
}

// EntropyCounts returns the Shannon entropy of n examples with the given
// class counts.
func EntropyCounts(n int, ct []int, options ...Option) (float64, error) {
	return Shannon.Counts(n, ct, options...)
}

// GiniCounts returns the Gini impurity of n examples with the given class
// counts.
func GiniCounts(n int, ct []int) float64 {
	return gini(n, ct)
}

// entropy
// e_t = -sum over k p(c_k|t) log_b p(c_k|t)
//
// zero counts are skipped rather than relying on 0 log 0 = 0
func entropy(n int, ct []int, base float64) float64 {
	if n <= 1 || numClasses(ct) <= 1 {
		return 0
	}

	logb := logFunc(base)
	e := 0.0
	for _, c := range ct {
		if c > 0 {
			p := float64(c) / float64(n)
			e -= p * logb(p)
		}
	}
	return e
}

// gini impurity
// i_t = sum over k p(c_k|t) (1 - p(c_k|t))
func gini(n int, ct []int) float64 {
	if n == 0 {
		return 0
	}
	g := 0.0
	for _, c := range ct {
		if c > 0 {
			p := float64(c) / float64(n)
			g += p * p
		}
	}
	return 1.0 - g
}

func logFunc(base float64) func(float64) float64 {
	switch base {
	case 2:
		return math.Log2
	case 10:
		return math.Log10
	case math.E:
		return math.Log
	}
	lb := math.Log(base)
	return func(x float64) float64 {
		return math.Log(x) / lb
	}
}
