package impurity

// Tally counts the occurrences of each label in a sequence. Labels are
// recoded to integer class ids in the order they are first seen, so
// Classes[i] is the label counted by Counts[i].
type Tally[T comparable] struct {
	Classes []T
	Counts  []int
	N       int
	ids     map[T]int
}

// NewTally returns the tally of seq. A nil seq gives an empty tally.
func NewTally[T comparable](seq []T) *Tally[T] {
	t := &Tally[T]{ids: make(map[T]int)}
	for _, label := range seq {
		t.Add(label)
	}
	return t
}

// Add counts one more occurrence of label.
func (t *Tally[T]) Add(label T) {
	if t.ids == nil {
		t.ids = make(map[T]int)
	}
	id, ok := t.ids[label]
	if !ok {
		id = len(t.Classes)
		t.ids[label] = id
		t.Classes = append(t.Classes, label)
		t.Counts = append(t.Counts, 0)
	}
	t.Counts[id]++
	t.N++
}

// Count returns how many times label was seen.
func (t *Tally[T]) Count(label T) int {
	id, ok := t.ids[label]
	if !ok {
		return 0
	}
	return t.Counts[id]
}

// Probs returns the empirical probability of each class, aligned with
// Classes. An empty tally has no probabilities.
func (t *Tally[T]) Probs() []float64 {
	p := make([]float64, len(t.Counts))
	if t.N == 0 {
		return p
	}
	for i, c := range t.Counts {
		p[i] = float64(c) / float64(t.N)
	}
	return p
}

// NumClasses returns the number of classes with a strictly positive count.
func (t *Tally[T]) NumClasses() int {
	return numClasses(t.Counts)
}

func numClasses(ct []int) int {
	n := 0
	for _, c := range ct {
		if c > 0 {
			n++
		}
	}
	return n
}
