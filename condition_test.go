package rulekit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperator_Apply(t *testing.T) {
	assert.True(t, OpEQ.Apply(1, 1))
	assert.False(t, OpEQ.Apply(1, 2))
	assert.True(t, OpLT.Apply(1, 2))
	assert.True(t, OpGE.Apply(2, 2))
	assert.True(t, OpGT.Apply(3, 2))
	assert.True(t, OpLE.Apply(2, 2))
	assert.True(t, OpNE.Apply(1, 2))

	assert.False(t, OpEQ.Apply(math.NaN(), 1))
	assert.False(t, OpNE.Apply(math.NaN(), 1))
}

func TestElementaryCondition_IsSatisfied(t *testing.T) {
	c := NewElementaryCondition(0, OpGE, 10)

	assert.True(t, c.IsSatisfied(10))
	assert.True(t, c.IsSatisfied(15))
	assert.False(t, c.IsSatisfied(9.9))
	assert.False(t, c.IsSatisfied(math.NaN()))
}

func TestElementaryCondition_Equal(t *testing.T) {
	a := NewElementaryCondition(1, OpLT, 5)
	b := NewElementaryCondition(1, OpLT, 5)
	c := NewElementaryCondition(1, OpLT, 6)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
