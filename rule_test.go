package rulekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRule_AddConditionAndOptimize_Tightens(t *testing.T) {
	r := NewRule(1)

	r.AddConditionAndOptimize(NewElementaryCondition(0, OpGE, 5))
	r.AddConditionAndOptimize(NewElementaryCondition(0, OpGE, 8))
	r.AddConditionAndOptimize(NewElementaryCondition(0, OpGE, 3))

	conds := r.ConditionsForAttribute(0)
	assert.Len(t, conds, 1)
	assert.Equal(t, 8.0, conds[0].Value)
}

func TestRule_AddConditionAndOptimize_KeepsBothBounds(t *testing.T) {
	r := NewRule(1)

	r.AddConditionAndOptimize(NewElementaryCondition(0, OpGE, 5))
	r.AddConditionAndOptimize(NewElementaryCondition(0, OpLT, 10))

	assert.Len(t, r.ConditionsForAttribute(0), 2)
}

func TestRule_Covers(t *testing.T) {
	ds := buildToyDataset(t)

	r := NewRule(1)
	r.AddCondition(NewElementaryCondition(0, OpGE, 8))

	assert.False(t, r.Covers(ds, 0))
	assert.True(t, r.Covers(ds, 2))
}

func TestRule_RemoveCondition(t *testing.T) {
	r := NewRule(1)
	c := NewElementaryCondition(0, OpGE, 5)
	r.AddCondition(c)

	assert.True(t, r.RemoveCondition(c))
	assert.Equal(t, 0, r.NumConditions())
	assert.False(t, r.RemoveCondition(c))
}

func TestRule_Clone_IsIndependent(t *testing.T) {
	r := NewRule(1)
	r.AddCondition(NewElementaryCondition(0, OpGE, 5))

	clone := r.Clone()
	clone.AddCondition(NewElementaryCondition(1, OpEQ, 0))

	assert.Equal(t, 1, r.NumConditions())
	assert.Equal(t, 2, clone.NumConditions())
}

func TestRule_EmptyRuleCoversEverything(t *testing.T) {
	ds := buildToyDataset(t)
	r := NewRule(1)

	for i := 0; i < ds.NRows(); i++ {
		assert.True(t, r.Covers(ds, i))
	}
}
