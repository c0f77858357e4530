package rulekit

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledge_RestrictsCandidateToAllowedBoundary(t *testing.T) {
	ds := buildSeparableDataset(t)

	knowledge := NewKnowledge()
	knowledge.UseSpecifiedOnly = true
	knowledge.AllowedConditions[1] = &SetOfConditions{
		DecisionClass: 1,
		Conditions:    []KnowledgeCondition{NewNumericalKnowledgeCondition(0, 20, math.Inf(1), false, false)},
	}

	engine := NewEngine(rand.New(rand.NewSource(1)))

	rules, _, err := engine.GenerateRulesWithKnowledge(ds.Full(), Cn2(), C2(), knowledge)
	require.NoError(t, err)
	require.NotEmpty(t, rules)

	for _, r := range rules {
		assert.Equal(t, 1.0, r.DecisionClass)

		conds := r.ConditionsForAttribute(0)
		require.NotEmpty(t, conds)
		assert.Equal(t, OpGE, conds[0].Op)
		assert.GreaterOrEqual(t, conds[0].Value, 20.0)
	}
}

func TestKnowledge_RestrictsCandidateWithoutGlobalUseSpecifiedOnly(t *testing.T) {
	ds := buildSeparableDataset(t)

	knowledge := NewKnowledge()
	knowledge.AllowedConditions[1] = &SetOfConditions{
		DecisionClass: 1,
		Conditions:    []KnowledgeCondition{NewNumericalKnowledgeCondition(0, 20, math.Inf(1), false, false)},
	}

	engine := NewEngine(rand.New(rand.NewSource(1)))

	rules, _, err := engine.GenerateRulesWithKnowledge(ds.Full(), Cn2(), C2(), knowledge)
	require.NoError(t, err)
	require.NotEmpty(t, rules)

	for _, r := range rules {
		assert.Equal(t, 1.0, r.DecisionClass)

		conds := r.ConditionsForAttribute(0)
		require.NotEmpty(t, conds)
		assert.Equal(t, OpGE, conds[0].Op)
		assert.GreaterOrEqual(t, conds[0].Value, 20.0)
	}
}

func TestKnowledge_SkipsClassesWithoutEntriesUnlessGenerateOthers(t *testing.T) {
	ds := buildToyDataset(t)

	knowledge := NewKnowledge()
	knowledge.AllowedConditions[1] = &SetOfConditions{
		DecisionClass: 1,
		Conditions:    []KnowledgeCondition{NewNumericalKnowledgeCondition(0, 5, math.Inf(1), false, false)},
	}

	engine := NewEngine(rand.New(rand.NewSource(2)))

	rules, _, err := engine.GenerateRulesWithKnowledge(ds.Full(), Cn2(), C2(), knowledge)
	require.NoError(t, err)

	for _, r := range rules {
		assert.Equal(t, 1.0, r.DecisionClass)
	}

	knowledge.GenerateRulesForOtherClasses = true

	rulesAll, _, err := engine.GenerateRulesWithKnowledge(ds.Full(), Cn2(), C2(), knowledge)
	require.NoError(t, err)

	var sawClassZero bool
	for _, r := range rulesAll {
		if r.DecisionClass == 0 {
			sawClassZero = true
		}
	}
	assert.True(t, sawClassZero)
}

func TestKnowledgeRule_Materialize(t *testing.T) {
	kr := &KnowledgeRule{
		DecisionClass: 1,
		Conditions: []KnowledgeCondition{
			NewNumericalKnowledgeCondition(0, 5, 10, false, false),
			NewNominalKnowledgeCondition(1, 1, false, false),
		},
	}

	r := kr.Materialize()

	assert.Equal(t, 1.0, r.DecisionClass)
	assert.Len(t, r.ConditionsForAttribute(0), 2)
	assert.Len(t, r.ConditionsForAttribute(1), 1)
}
