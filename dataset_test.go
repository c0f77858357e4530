package rulekit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildToyDataset(t *testing.T) *Dataset {
	t.Helper()

	decision := NewNominalAttribute("class", []string{"neg", "pos"})
	ds := NewDataset("toy", decision)

	require.NoError(t, ds.AddDecisionColumn([]float64{0, 0, 1, 1, 1, 0}))

	x0 := NewNumericalAttribute("x0")
	require.NoError(t, ds.AddAttribute([]float64{1, 2, 8, 9, 10, 3}, x0))

	x1 := NewNominalAttribute("x1", []string{"a", "b"})
	require.NoError(t, ds.AddAttribute([]float64{0, 0, 1, 1, 0, 1}, x1))

	return ds
}

func TestDataset_ShapeMismatch(t *testing.T) {
	ds := buildToyDataset(t)

	err := ds.AddAttribute([]float64{1, 2, 3}, NewNumericalAttribute("short"))
	assert.ErrorIs(t, err, ShapeMismatch)
}

func TestDataset_GetWeightDefaultsToOne(t *testing.T) {
	ds := buildToyDataset(t)

	assert.Equal(t, 1.0, ds.GetWeight(0))
}

func TestView_MinusAndFilterByClass(t *testing.T) {
	ds := buildToyDataset(t)
	full := ds.Full()

	pos := full.FilterByClass(1)
	assert.Equal(t, 3, pos.Size())

	rest := full.Minus(pos)
	assert.Equal(t, 3, rest.Size())

	for _, row := range rest.Indices {
		assert.NotEqual(t, 1.0, ds.GetDecision(row))
	}
}

func TestView_DistinctClassesSorted(t *testing.T) {
	ds := buildToyDataset(t)

	assert.Equal(t, []float64{0, 1}, ds.Full().DistinctClasses())
}

func TestView_StratifiedFolds(t *testing.T) {
	ds := buildToyDataset(t)
	full := ds.Full()

	folds, err := full.StratifiedFolds(2, false, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Len(t, folds, 2)

	total := 0
	for _, f := range folds {
		total += f.Size()
	}
	assert.Equal(t, full.Size(), total)
}

func TestView_StratifiedFolds_InvalidK(t *testing.T) {
	ds := buildToyDataset(t)
	full := ds.Full()

	_, err := full.StratifiedFolds(1, false, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, InvalidArgument)

	_, err = full.StratifiedFolds(100, false, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, InvalidArgument)
}
