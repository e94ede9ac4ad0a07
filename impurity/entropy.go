package impurity

// Entropy returns the Shannon entropy of the empirical label distribution of
// seq, in bits unless a Base option says otherwise.
//
// Sequences with fewer than two labels, and sequences holding a single
// distinct label, carry no information and have entropy 0. The result lies
// in [0, log_base(number of distinct labels)].
func Entropy[T comparable](seq []T, options ...Option) (float64, error) {
	o, err := newOptions(options)
	if err != nil {
		return 0, err
	}

	if len(seq) <= 1 {
		return 0, nil
	}

	t := NewTally(seq)
	return entropy(t.N, t.Counts, o.base), nil
}

// GiniOf returns the Gini impurity of the empirical label distribution of
// seq.
func GiniOf[T comparable](seq []T) float64 {
	if len(seq) <= 1 {
		return 0
	}
	t := NewTally(seq)
	return gini(t.N, t.Counts)
}
