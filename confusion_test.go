package rulekit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfusionMatrix_BasicCounts(t *testing.T) {
	cm := NewConfusionMatrix([]float64{0, 1})

	cm.Add(0, 0, 1)
	cm.Add(0, 1, 1)
	cm.Add(1, 1, 1)
	cm.Add(1, math.NaN(), 1)

	assert.Equal(t, 1.0, cm.TruePositives(0))
	assert.Equal(t, 1.0, cm.FalseNegatives(0))
	assert.Equal(t, 1.0, cm.TruePositives(1))
	assert.Equal(t, 1.0, cm.Unclassified[1])

	// FalseNegatives must not include Unclassified.
	assert.Equal(t, 0.0, cm.FalseNegatives(1))

	assert.Equal(t, 4.0, cm.SumOfExamples())
	assert.InDelta(t, 0.5, cm.Accuracy(), 1e-9)
}

func TestConfusionMatrix_CoverageAndBalancedAccuracy(t *testing.T) {
	cm := NewConfusionMatrix([]float64{0, 1})

	cm.Add(0, 0, 3)
	cm.Add(1, 1, 2)
	cm.Add(1, math.NaN(), 1)

	assert.InDelta(t, 1.0, cm.ClassAccuracy(0), 1e-9)
	assert.InDelta(t, 2.0/3.0, cm.ClassAccuracy(1), 1e-9)
	assert.InDelta(t, 5.0/6.0, cm.BalancedAccuracy(), 1e-9)
	assert.InDelta(t, 1-1.0/6.0, cm.Coverage(), 1e-9)
}
