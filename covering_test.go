package rulekit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSeparableDataset(t *testing.T) *Dataset {
	t.Helper()

	decision := NewNominalAttribute("class", []string{"neg", "pos"})
	ds := NewDataset("separable", decision)

	n := 40
	x := make([]float64, n)
	y := make([]float64, n)

	for i := 0; i < n; i++ {
		x[i] = float64(i)
		if i >= n/2 {
			y[i] = 1
		}
	}

	require.NoError(t, ds.AddDecisionColumn(y))
	require.NoError(t, ds.AddAttribute(x, NewNumericalAttribute("x0")))

	return ds
}

func TestEngine_GenerateRules_CoversSeparableData(t *testing.T) {
	ds := buildSeparableDataset(t)
	engine := NewEngine(rand.New(rand.NewSource(7)))

	rules, stats, err := engine.GenerateRules(ds.Full(), Cn2(), C2())
	require.NoError(t, err)
	require.NotEmpty(t, rules)
	assert.Equal(t, len(rules), len(stats))

	classifier := NewRuleClassifier(rules)

	for i := ds.NRows() / 2; i < ds.NRows(); i++ {
		assert.Equal(t, 1.0, classifier.Classify(ds, i))
	}
}

func TestEngine_GenerateRules_EmptyViewProducesNoRules(t *testing.T) {
	decision := NewNominalAttribute("class", []string{"neg", "pos"})
	ds := NewDataset("empty", decision)
	require.NoError(t, ds.AddDecisionColumn(nil))
	require.NoError(t, ds.AddAttribute(nil, NewNumericalAttribute("x0")))

	engine := NewEngine(rand.New(rand.NewSource(1)))

	rules, _, err := engine.GenerateRules(ds.Full(), Cn2(), C2())
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestEngine_GenerateRules_NominalAttribute(t *testing.T) {
	ds := buildToyDataset(t)
	engine := NewEngine(rand.New(rand.NewSource(3)))

	rules, _, err := engine.GenerateRules(ds.Full(), Cn2(), C2())
	require.NoError(t, err)
	assert.NotEmpty(t, rules)
}
