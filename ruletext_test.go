package rulekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_StringAndParseRoundTrip(t *testing.T) {
	ds := buildToyDataset(t)

	r := NewRule(1)
	r.AddConditionAndOptimize(NewElementaryCondition(0, OpGE, 5))
	r.AddConditionAndOptimize(NewElementaryCondition(0, OpLT, 10))
	r.AddCondition(NewElementaryCondition(1, OpEQ, 1))

	text := r.String(ds)
	assert.Contains(t, text, "x0 in [5 ; 10)")
	assert.Contains(t, text, "x1 = b")
	assert.Contains(t, text, "THEN pos")

	parsed, err := ParseRule(ds, text)
	require.NoError(t, err)

	assert.Equal(t, r.DecisionClass, parsed.DecisionClass)
	assert.ElementsMatch(t, r.Conditions(), parsed.Conditions())
}

func TestParseRule_UnknownAttribute(t *testing.T) {
	ds := buildToyDataset(t)

	_, err := ParseRule(ds, "IF bogus = 1 THEN pos")
	assert.ErrorIs(t, err, ParseError)
}

func TestParseRule_BadClass(t *testing.T) {
	ds := buildToyDataset(t)

	_, err := ParseRule(ds, "IF x0 >= 5 THEN unknown")
	assert.ErrorIs(t, err, ParseError)
}
