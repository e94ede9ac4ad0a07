package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passengers(t *testing.T) *Table {
	tbl, err := New("Survived", "Sex", "Pclass")
	require.NoError(t, err)

	rows := [][]string{
		{"0", "male", "3"},
		{"1", "female", "1"},
		{"1", "female", "3"},
		{"1", "female", "1"},
		{"0", "male", "3"},
		{"0", "male", "2"},
	}
	for _, row := range rows {
		require.NoError(t, tbl.AddRow(row))
	}
	return tbl
}

func TestNewRejectsBadNames(t *testing.T) {
	_, err := New()
	assert.ErrorIs(t, err, ErrShape)

	_, err = New("a", "b", "a")
	assert.ErrorIs(t, err, ErrShape)
}

func TestAddRowShape(t *testing.T) {
	tbl := passengers(t)
	assert.ErrorIs(t, tbl.AddRow([]string{"1", "female"}), ErrShape)
	assert.Equal(t, 6, tbl.Len())
}

func TestTargetAndFeatures(t *testing.T) {
	tbl := passengers(t)
	assert.Equal(t, "Survived", tbl.Target())
	assert.Equal(t, []string{"Sex", "Pclass"}, tbl.Features())

	require.NoError(t, tbl.SetTarget("Sex"))
	assert.Equal(t, "Sex", tbl.Target())
	assert.Equal(t, []string{"Survived", "Pclass"}, tbl.Features())

	assert.ErrorIs(t, tbl.SetTarget("Fare"), ErrNoColumn)
	assert.Equal(t, "Sex", tbl.Target())
}

func TestColumn(t *testing.T) {
	tbl := passengers(t)
	col, err := tbl.Column("Sex")
	require.NoError(t, err)
	assert.Equal(t, []string{"male", "female", "female", "female", "male", "male"}, col)

	_, err = tbl.Column("Age")
	assert.ErrorIs(t, err, ErrNoColumn)
}

func TestNamesIsACopy(t *testing.T) {
	tbl := passengers(t)
	names := tbl.Names()
	names[0] = "changed"
	assert.Equal(t, "Survived", tbl.Target())
}
