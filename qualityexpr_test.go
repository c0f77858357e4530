package rulekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileQualityExpr_Arithmetic(t *testing.T) {
	fn, err := CompileQualityExpr("p / (p + n)")
	require.NoError(t, err)

	assert.InDelta(t, 0.8, fn(10, 8, 10, 2), 1e-9)
}

func TestCompileQualityExpr_Functions(t *testing.T) {
	fn, err := CompileQualityExpr("max(p, n) - min(p, n)")
	require.NoError(t, err)

	assert.InDelta(t, 6.0, fn(10, 8, 10, 2), 1e-9)
}

func TestCompileQualityExpr_If(t *testing.T) {
	fn, err := CompileQualityExpr("if(p > n, 1, 0)")
	require.NoError(t, err)

	assert.Equal(t, 1.0, fn(10, 8, 10, 2))
	assert.Equal(t, 0.0, fn(10, 1, 10, 2))
}

func TestCompileQualityExpr_SyntaxError(t *testing.T) {
	_, err := CompileQualityExpr("p + * n")
	assert.ErrorIs(t, err, ParseError)
}
