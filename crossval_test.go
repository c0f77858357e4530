package rulekit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossValidateFolds_ProducesOneFoldResultPerFold(t *testing.T) {
	ds := buildSeparableDataset(t)

	results, err := CrossValidateFolds(ds.Full(), Cn2(), C2(), 4, 2, false, true, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, run := range results {
		assert.Len(t, run.Folds, 4)

		for _, fold := range run.Folds {
			assert.NotNil(t, fold.Predict)
		}
	}
}

func TestCrossValidateFolds_InvalidFoldCount(t *testing.T) {
	ds := buildToyDataset(t)

	_, err := CrossValidateFolds(ds.Full(), Cn2(), C2(), 1, 1, false, true, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, InvalidArgument)
}
