package impurity

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntropyShortSequences(t *testing.T) {
	for _, seq := range [][]int{nil, {}, {1}, {0}} {
		e, err := Entropy(seq)
		require.NoError(t, err)
		assert.Equal(t, 0.0, e, "sequence %v", seq)
	}
}

func TestEntropySingleClass(t *testing.T) {
	e, err := Entropy([]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, Base(2))
	require.NoError(t, err)
	assert.Equal(t, 0.0, e)

	e, err = Entropy([]string{"a", "a", "a"}, Nats)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e)
}

func TestEntropyEvenSplit(t *testing.T) {
	e, err := Entropy([]int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}, Base(2))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, e, 1e-12)
}

func TestEntropyUnevenSplit(t *testing.T) {
	e, err := Entropy([]int{0, 0, 0, 1, 1, 1, 1, 1, 1, 1}, Base(2))
	require.NoError(t, err)
	assert.InDelta(t, 0.8813, e, 1e-4)
}

func TestEntropyDefaultBaseIsBits(t *testing.T) {
	seq := []int{0, 0, 0, 1, 1, 1, 1, 1, 1, 1}
	def, err := Entropy(seq)
	require.NoError(t, err)
	bits, err := Entropy(seq, Bits)
	require.NoError(t, err)
	assert.Equal(t, bits, def)
}

func TestEntropyNats(t *testing.T) {
	e, err := Entropy([]bool{true, false, true, false}, Nats)
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2, e, 1e-12)

	e, err = Entropy([]string{"a", "b", "c", "d", "e"}, Base(5))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, e, 1e-12)
}

func TestEntropyUpperBound(t *testing.T) {
	seq := []string{"a", "b", "c", "a", "b", "c", "a"}
	e, err := Entropy(seq)
	require.NoError(t, err)
	assert.Greater(t, e, 0.0)
	assert.LessOrEqual(t, e, math.Log2(3))
}

func TestEntropyRelabeling(t *testing.T) {
	seq := []int{0, 0, 0, 1, 1, 2, 2, 2, 2, 2}
	relabeled := make([]string, len(seq))
	names := map[int]string{0: "died", 1: "survived", 2: "unknown"}
	for i, v := range seq {
		relabeled[i] = names[v]
	}

	e1, err := Entropy(seq)
	require.NoError(t, err)
	e2, err := Entropy(relabeled)
	require.NoError(t, err)
	assert.InDelta(t, e1, e2, 1e-12)
}

func TestEntropyReordering(t *testing.T) {
	seq := []int{0, 0, 0, 1, 1, 2, 2, 2, 2, 2, 3}
	want, err := Entropy(seq)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]int(nil), seq...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got, err := Entropy(shuffled)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12)
	}
}

func TestEntropyInvalidBase(t *testing.T) {
	for _, b := range []float64{0, 1, -2, math.NaN(), math.Inf(1)} {
		_, err := Entropy([]int{0, 1}, Base(b))
		assert.True(t, errors.Is(err, ErrInvalidArgument), "base %v", b)

		// reported even when the sequence is degenerate
		_, err = Entropy([]int{}, Base(b))
		assert.True(t, errors.Is(err, ErrInvalidArgument), "base %v", b)
	}
}

func TestEntropyCounts(t *testing.T) {
	e, err := EntropyCounts(10, []int{3, 0, 7})
	require.NoError(t, err)
	assert.InDelta(t, 0.8813, e, 1e-4)

	e, err = EntropyCounts(10, []int{0, 10, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, e)
}

func TestGini(t *testing.T) {
	// matches the node impurity used in the tree splitter tests
	assert.InDelta(t, 0.48, GiniCounts(10, []int{6, 4}), 1e-12)
	assert.Equal(t, 0.0, GiniCounts(0, nil))
	assert.Equal(t, 0.0, GiniOf([]int{1, 1, 1}))
	assert.InDelta(t, 0.5, GiniOf([]string{"x", "y"}), 1e-12)

	g, err := Gini.Counts(10, []int{6, 4}, Nats)
	require.NoError(t, err)
	assert.InDelta(t, 0.48, g, 1e-12)
}

func TestParseMeasure(t *testing.T) {
	m, err := ParseMeasure("Gini")
	require.NoError(t, err)
	assert.Equal(t, Gini, m)

	m, err = ParseMeasure("entropy")
	require.NoError(t, err)
	assert.Equal(t, Shannon, m)
	assert.Equal(t, "entropy", m.String())

	_, err = ParseMeasure("variance")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func BenchmarkEntropy(b *testing.B) {
	seq := make([]int, 10000)
	r := rand.New(rand.NewSource(1))
	for i := range seq {
		seq[i] = r.Intn(5)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Entropy(seq)
	}
}
