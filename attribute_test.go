package rulekit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttribute_EncodeDecodeNumerical(t *testing.T) {
	a := NewNumericalAttribute("age")

	v, err := a.Encode("42.5")
	assert.NoError(t, err)
	assert.Equal(t, 42.5, v)
	assert.Equal(t, "42.5", a.Decode(v))

	m, err := a.Encode("?")
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(m))
	assert.Equal(t, "?", a.Decode(m))

	_, err = a.Encode("not-a-number")
	assert.ErrorIs(t, err, SchemaMismatch)
}

func TestAttribute_EncodeDecodeNominal(t *testing.T) {
	a := NewNominalAttribute("color", []string{"red", "green", "blue"})

	v, err := a.Encode("green")
	assert.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, "green", a.Decode(v))

	_, err = a.Encode("purple")
	assert.ErrorIs(t, err, SchemaMismatch)

	assert.Equal(t, "?", a.Decode(99))
}
