package rulekit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecisionAndCoverage(t *testing.T) {
	r := RuleEvaluationResult{P: 10, p: 8, N: 10, n: 2}

	assert.InDelta(t, 0.8, Precision().EvaluateFromResult(r), 1e-9)
	assert.InDelta(t, 0.8, Coverage().EvaluateFromResult(r), 1e-9)
}

func TestRSS(t *testing.T) {
	r := RuleEvaluationResult{P: 10, p: 8, N: 10, n: 1}

	assert.InDelta(t, 0.8-0.1, RSS().EvaluateFromResult(r), 1e-9)
}

func TestCorrelation_PerfectRule(t *testing.T) {
	r := RuleEvaluationResult{P: 10, p: 10, N: 10, n: 0}

	assert.InDelta(t, 1.0, Correlation().EvaluateFromResult(r), 1e-9)
}

func TestEvaluateRule_WeightsAccumulate(t *testing.T) {
	ds := buildToyDataset(t)
	r := NewRule(1)
	r.AddCondition(NewElementaryCondition(0, OpGE, 8))

	rer := EvaluateRule(ds.Full(), r)
	assert.Equal(t, 3.0, rer.P)
	assert.Equal(t, 3.0, rer.N)
	assert.Equal(t, 3.0, rer.p)
	assert.Equal(t, 0.0, rer.n)
}

func TestEntropy_PureViewIsZero(t *testing.T) {
	ds := buildToyDataset(t)
	pure := ds.Full().FilterByClass(1)

	assert.InDelta(t, 0.0, Entropy(pure), 1e-9)
}

func TestEntropy_BalancedViewIsOne(t *testing.T) {
	decision := NewNominalAttribute("class", []string{"neg", "pos"})
	ds := NewDataset("balanced", decision)
	_ = ds.AddDecisionColumn([]float64{0, 1})

	assert.InDelta(t, 1.0, Entropy(ds.Full()), 1e-9)
}

func TestPvalue_WarnsOnNonIntegralCounts(t *testing.T) {
	r := RuleEvaluationResult{P: 10.5, p: 8, N: 10, n: 2}

	m := Pvalue()
	_ = m.EvaluateFromResult(r)
	assert.True(t, m.Warning)
}

func TestNegConditionalEntropy_FromResultIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(NegConditionalEntropy{}.EvaluateFromResult(RuleEvaluationResult{})))
}

func TestCustomMeasure(t *testing.T) {
	m := Custom("half-precision", func(P, p, N, n float64) float64 { return p / (p + n) / 2 })

	assert.Equal(t, "half-precision", m.Name())
	assert.InDelta(t, 0.4, m.EvaluateFromResult(RuleEvaluationResult{P: 10, p: 8, N: 10, n: 2}), 1e-9)
}
