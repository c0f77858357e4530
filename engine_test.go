package rulekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toyParams() *Params {
	return &Params{
		Y:       []float64{1, 1, 2, 2, 2, 1},
		YName:   "class",
		YLevels: []string{"neg", "pos"},
		X: [][]float64{
			{1, 2, 8, 9, 10, 3},
			{1, 1, 2, 2, 1, 2},
		},
		XTypes:  []AttributeType{Numerical, Nominal},
		XNames:  []string{"x0", "x1"},
		XLevels: [][]string{nil, {"a", "b"}},
		Q:       "c2",
		QSplit:  "entropy",
		Seed:    0.5,
	}
}

func TestGenerateRules_FractionalSeedInUnitInterval(t *testing.T) {
	p := toyParams()
	p.Seed = 0.5

	result, err := GenerateRules(p)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Rules)
}

func TestGenerateRules_RecognizedMeasures(t *testing.T) {
	p := toyParams()

	result, err := GenerateRules(p)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Rules)
	assert.Equal(t, len(result.Rules), len(result.RuleText))
}

func TestGenerateRules_UnrecognizedMeasure(t *testing.T) {
	p := toyParams()
	p.Q = "not-a-measure"

	_, err := GenerateRules(p)
	assert.ErrorIs(t, err, InvalidArgument)
}

func TestGenerateRules_CustomExpression(t *testing.T) {
	p := toyParams()
	p.Q = ""
	p.QExpr = "p / (p + n)"

	result, err := GenerateRules(p)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Rules)
}

func TestPredict_FromGeneratedRules(t *testing.T) {
	p := toyParams()

	generated, err := GenerateRules(p)
	require.NoError(t, err)

	result, err := Predict(p, generated.Rules, true)
	require.NoError(t, err)
	assert.Len(t, result.Predictions, 6)
}

func TestCrossValidate_RunsFolds(t *testing.T) {
	p := toyParams()
	p.Folds = 2
	p.Runs = 1
	p.UseWeightsInPrediction = true

	results, err := CrossValidate(p)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Folds, 2)
}
