package rulekit

import (
	"math"
	"sort"
)

// KnowledgeCondition is a preference-layer constraint on a single attribute:
// a Nominal condition has From == To == the specified value; a Numerical
// one has From <= To, with +/-Inf as open bounds. Fixed requires an exact
// bound match to be considered "specified"; Required marks a condition that
// must survive pruning.
type KnowledgeCondition struct {
	AttributeIndex int
	From, To       float64
	Fixed          bool
	Required       bool
	AttributeType  AttributeType
}

// NewNumericalKnowledgeCondition builds a Numerical KnowledgeCondition.
func NewNumericalKnowledgeCondition(attrIdx int, from, to float64, fixed, required bool) KnowledgeCondition {
	return KnowledgeCondition{AttributeIndex: attrIdx, From: from, To: to, Fixed: fixed, Required: required, AttributeType: Numerical}
}

// NewNominalKnowledgeCondition builds a Nominal KnowledgeCondition.
func NewNominalKnowledgeCondition(attrIdx int, value float64, fixed, required bool) KnowledgeCondition {
	return KnowledgeCondition{AttributeIndex: attrIdx, From: value, To: value, Fixed: fixed, Required: required, AttributeType: Nominal}
}

// DefaultKnowledgeCondition builds an unconstrained (+/-Inf bound)
// Numerical KnowledgeCondition for attrIdx.
func DefaultKnowledgeCondition(attrIdx int) KnowledgeCondition {
	return KnowledgeCondition{AttributeIndex: attrIdx, From: math.Inf(-1), To: math.Inf(1), AttributeType: Numerical}
}

// Value returns From if From == To (a fixed point), else NaN.
func (k KnowledgeCondition) Value() float64 {
	if k.From == k.To {
		return k.From
	}

	return math.NaN()
}

// SetOfConditions is the per-class collection of allowed or forbidden
// KnowledgeConditions, plus the controls the preference layer reads during
// generation.
type SetOfConditions struct {
	Conditions    []KnowledgeCondition
	DecisionClass float64
	Expandable    bool
	RulesAtLeast  int
	Forbidden     bool
}

// GetConditionsForAttribute returns the conditions constraining attrIdx.
func (s *SetOfConditions) GetConditionsForAttribute(attrIdx int) []KnowledgeCondition {
	if s == nil {
		return nil
	}

	var out []KnowledgeCondition

	for _, c := range s.Conditions {
		if c.AttributeIndex == attrIdx {
			out = append(out, c)
		}
	}

	return out
}

// KnowledgeRule is an allowed- or forbidden-rule template for a class: a set
// of KnowledgeConditions plus whether the engine may expand it via grow/
// prune after materializing it.
type KnowledgeRule struct {
	Conditions    []KnowledgeCondition
	DecisionClass float64
	Expandable    bool
}

// Materialize expands a KnowledgeRule's conditions into a concrete Rule:
// a Numerical condition becomes >=From (if finite) and/or <To (if finite);
// a Nominal one becomes =Value.
func (kr *KnowledgeRule) Materialize() *Rule {
	rule := NewRule(kr.DecisionClass)

	for _, kc := range kr.Conditions {
		if kc.AttributeType == Nominal {
			rule.AddCondition(NewElementaryCondition(kc.AttributeIndex, OpEQ, kc.Value()))

			continue
		}

		if !math.IsInf(kc.From, -1) {
			rule.AddCondition(NewElementaryCondition(kc.AttributeIndex, OpGE, kc.From))
		}

		if !math.IsInf(kc.To, 1) {
			rule.AddCondition(NewElementaryCondition(kc.AttributeIndex, OpLT, kc.To))
		}
	}

	return rule
}

// Knowledge is the preference layer's domain-constraint object: per-class
// allowed/forbidden rule templates and allowed/forbidden condition sets,
// plus the two global switches controlling how strictly they are enforced.
type Knowledge struct {
	NumClasses                  int
	GenerateRulesForOtherClasses bool
	UseSpecifiedOnly             bool
	AllowedRules                 map[float64][]*KnowledgeRule
	ForbiddenRules                map[float64][]*KnowledgeRule
	AllowedConditions             map[float64]*SetOfConditions
	ForbiddenConditions           map[float64]*SetOfConditions
}

// NewKnowledge builds an empty Knowledge object.
func NewKnowledge() *Knowledge {
	return &Knowledge{
		AllowedRules:        make(map[float64][]*KnowledgeRule),
		ForbiddenRules:       make(map[float64][]*KnowledgeRule),
		AllowedConditions:    make(map[float64]*SetOfConditions),
		ForbiddenConditions:  make(map[float64]*SetOfConditions),
	}
}

func (k *Knowledge) hasEntriesFor(class float64) bool {
	if len(k.AllowedRules[class]) > 0 || len(k.ForbiddenRules[class]) > 0 {
		return true
	}

	if sc := k.AllowedConditions[class]; sc != nil && len(sc.Conditions) > 0 {
		return true
	}

	if sc := k.ForbiddenConditions[class]; sc != nil && len(sc.Conditions) > 0 {
		return true
	}

	return false
}

// GenerateRulesWithKnowledge is the preference-layer extension of
// (*Engine).GenerateRules: for each class present in view, it consults
// knowledge to restrict, seed, and filter rule generation as described by
// the preference layer's contract.
func (e *Engine) GenerateRulesWithKnowledge(view *View, rg, rp Measure, knowledge *Knowledge) ([]*Rule, []RuleStats, error) {
	var rules []*Rule
	var stats []RuleStats

	for _, c := range view.DistinctClasses() {
		if !knowledge.hasEntriesFor(c) && !knowledge.GenerateRulesForOtherClasses {
			continue
		}

		var classRules []*Rule
		var classStats []RuleStats

		if knowledge.hasEntriesFor(c) {
			classRules, classStats = e.generateForClassWithKnowledge(view, rg, rp, c, knowledge)
		} else {
			classRules, classStats = e.generateForClass(view, rg, rp, c)
		}

		rules = append(rules, classRules...)
		stats = append(stats, classStats...)
	}

	return rules, stats, nil
}

func (e *Engine) generateForClassWithKnowledge(view *View, rg, rp Measure, class float64, knowledge *Knowledge) ([]*Rule, []RuleStats) {
	uncoveredPositives := view.FilterByClass(class)
	P := uncoveredPositives.SumOfWeights()
	N := view.SumOfWeights() - P
	apriori := P / (P + N)

	sc := knowledge.AllowedConditions[class]
	rulesAtLeast := 0
	if sc != nil {
		rulesAtLeast = sc.RulesAtLeast
	}

	useSpecifiedOnly := sc != nil && len(sc.Conditions) > 0
	allowed := knowledge.AllowedRules[class]

	var rules []*Rule
	var stats []RuleStats
	specifiedCount := 0

	for _, kr := range allowed {
		rule := kr.Materialize()

		if kr.Expandable {
			var injected []int
			if sc != nil {
				injected = sc.injectTemp(kr.Conditions)
			}

			candidate := rule.Clone()
			e.growWithKnowledge(candidate, view, uncoveredPositives, rg, class, knowledge, useSpecifiedOnly, kr)

			coveredCandidate := candidate.CoveredBy(view)
			rer := EvaluateRule(coveredCandidate, candidate)

			if rer.p+rer.n > 0 && rer.p/(rer.p+rer.n) > apriori {
				e.pruneWithKnowledge(candidate, view, rp, apriori, class, knowledge)
				candidate.ConfidenceDegree = EvaluateRuleQuality(rp, view, candidate)
				rule = candidate
			} else {
				if specifiedCount >= rulesAtLeast && !knowledge.UseSpecifiedOnly {
					useSpecifiedOnly = false
				}

				rule.ConfidenceDegree = EvaluateRuleQuality(rp, view, rule)
			}

			if sc != nil {
				sc.removeTemp(injected)
			}
		} else {
			rule.ConfidenceDegree = EvaluateRuleQuality(rp, view, rule)
		}

		rules = append(rules, rule)
		stats = append(stats, ruleStatsFor(view, rule))
		specifiedCount++
		uncoveredPositives = uncoveredPositives.Minus(rule.CoveredBy(view))
	}

	if len(allowed) > 0 && useSpecifiedOnly {
		return rules, stats
	}

	for uncoveredPositives.SumOfWeights() > 0 {
		rule := NewRule(class)

		e.growWithKnowledge(rule, view, uncoveredPositives, rg, class, knowledge, useSpecifiedOnly, nil)

		covered := rule.CoveredBy(view)
		rer := EvaluateRule(covered, rule)

		if rer.p+rer.n == 0 || rer.p/(rer.p+rer.n) <= apriori {
			if useSpecifiedOnly && specifiedCount >= rulesAtLeast {
				useSpecifiedOnly = false

				continue
			}

			break
		}

		e.pruneWithKnowledge(rule, view, rp, apriori, class, knowledge)
		rule.ConfidenceDegree = EvaluateRuleQuality(rp, view, rule)

		rules = append(rules, rule)
		stats = append(stats, ruleStatsFor(view, rule))

		uncoveredPositives = uncoveredPositives.Minus(rule.CoveredBy(view))
	}

	return rules, stats
}

func ruleStatsFor(view *View, rule *Rule) RuleStats {
	rer := EvaluateRule(view, rule)
	pv := Pvalue()
	pvalue := pv.EvaluateFromResult(rer)

	return RuleStats{
		NumConditions: rule.NumConditions(),
		Precision:     rer.p / (rer.p + rer.n),
		Coverage:      rer.p / rer.P,
		Pvalue:        pvalue,
		PvalueWarning: pv.Warning,
	}
}

// injectTemp temporarily appends conds to s.Conditions, returning their
// indices so removeTemp can strip exactly them back out again.
func (s *SetOfConditions) injectTemp(conds []KnowledgeCondition) []int {
	start := len(s.Conditions)
	s.Conditions = append(s.Conditions, conds...)

	idx := make([]int, len(conds))
	for i := range conds {
		idx[i] = start + i
	}

	return idx
}

func (s *SetOfConditions) removeTemp(idx []int) {
	if len(idx) == 0 {
		return
	}

	s.Conditions = s.Conditions[:idx[0]]
}

// growWithKnowledge is the preference-aware growth loop: identical to
// (*Engine).grow except candidate generation is filtered by
// findBestConditionWithKnowledge.
func (e *Engine) growWithKnowledge(rule *Rule, covered, uncoveredPositives *View, rqm Measure, class float64, knowledge *Knowledge, useSpecifiedOnly bool, knowRule *KnowledgeRule) {
	prevCoveredCount := -1.0

	for {
		best, ok := e.findBestConditionWithKnowledge(rule, class, covered, uncoveredPositives, rqm, knowledge, useSpecifiedOnly, knowRule)
		if !ok {
			if useSpecifiedOnly {
				sc := knowledge.AllowedConditions[class]
				if sc != nil && sc.Expandable && !knowledge.UseSpecifiedOnly {
					best, ok = e.findBestConditionWithKnowledge(rule, class, covered, uncoveredPositives, rqm, knowledge, false, knowRule)
				}
			}

			if !ok {
				return
			}
		}

		rer := EvaluateCondition(covered, best, class)
		if rer.n == 0 {
			rule.AddConditionAndOptimize(best)

			return
		}

		if rer.p+rer.n == prevCoveredCount {
			return
		}

		covered = conditionCoveredBy(best, covered)
		uncoveredPositives = conditionCoveredBy(best, uncoveredPositives)
		prevCoveredCount = rer.p + rer.n
		rule.AddConditionAndOptimize(best)
	}
}

func (e *Engine) findBestConditionWithKnowledge(rule *Rule, class float64, covered, uncoveredPositives *View, rqm Measure, knowledge *Knowledge, useSpecifiedOnly bool, knowRule *KnowledgeRule) (ElementaryCondition, bool) {
	_, isEntropy := rqm.(NegConditionalEntropy)

	bestQuality := math.Inf(-1)
	var equallyBest []ElementaryCondition

	numAttrs := covered.Dataset.NConditionalAttributes()

	for i := 0; i < numAttrs; i++ {
		if knowRule != nil && fixedRequiredConditionExists(knowRule.Conditions, i) {
			continue
		}

		switch covered.Dataset.AttributeType(i) {
		case Numerical:
			e.findBestNumericalKnown(class, covered, uncoveredPositives, rqm, isEntropy, i, knowledge, useSpecifiedOnly, &equallyBest, &bestQuality)
		case Nominal:
			e.findBestNominalKnown(class, covered, uncoveredPositives, rqm, isEntropy, i, knowledge, useSpecifiedOnly, &equallyBest, &bestQuality)
		}
	}

	equallyBest = filterForbiddenCompletions(rule, equallyBest, class, knowledge)

	switch len(equallyBest) {
	case 0:
		return ElementaryCondition{}, false
	case 1:
		return equallyBest[0], true
	default:
		return e.chooseAmongEqual(equallyBest, uncoveredPositives), true
	}
}

func fixedRequiredConditionExists(conds []KnowledgeCondition, attrIdx int) bool {
	for _, c := range conds {
		if c.AttributeIndex == attrIdx && c.Fixed && c.Required {
			return true
		}
	}

	return false
}

func (e *Engine) findBestNumericalKnown(class float64, covered, uncoveredPositives *View, rqm Measure, isEntropy bool, attrIdx int, knowledge *Knowledge, useSpecifiedOnly bool, equallyBest *[]ElementaryCondition, bestQuality *float64) {
	allowed := knowledge.AllowedConditions[class].GetConditionsForAttribute(attrIdx)

	var entries []numEntry

	var totalP, totalN float64

	for _, row := range covered.Indices {
		v := covered.Dataset.GetAttribute(row, attrIdx)
		if math.IsNaN(v) {
			continue
		}

		dec := covered.Dataset.GetDecision(row)
		w := covered.Dataset.GetWeight(row)

		entries = append(entries, numEntry{value: v, decision: dec, weight: w})

		if dec == class {
			totalP += w
		} else {
			totalN += w
		}
	}

	if len(entries) == 0 {
		return
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].value < entries[j].value })

	var uncValues []float64
	for _, row := range uncoveredPositives.Indices {
		v := uncoveredPositives.Dataset.GetAttribute(row, attrIdx)
		if !math.IsNaN(v) {
			uncValues = append(uncValues, v)
		}
	}

	if len(uncValues) == 0 {
		return
	}

	sort.Float64s(uncValues)
	minUnc, maxUnc := uncValues[0], uncValues[len(uncValues)-1]

	rerGE := RuleEvaluationResult{P: totalP, N: totalN, p: totalP, n: totalN}
	rerLT := RuleEvaluationResult{P: totalP, N: totalN}

	prevVal := entries[0].value
	prevClass := math.NaN()

	considerAt := func(mean float64) {
		isGEAllowed, isLTAllowed := true, true

		if useSpecifiedOnly {
			isGEAllowed = isNumericConditionSpecified(mean, true, allowed, false)
			isLTAllowed = isNumericConditionSpecified(mean, false, allowed, false)

			if !isGEAllowed && !isLTAllowed {
				return
			}
		}

		forbidden := knowledge.ForbiddenConditions[class].GetConditionsForAttribute(attrIdx)
		isGEAllowed = isGEAllowed && !isNumericConditionSpecified(mean, true, forbidden, false)
		isLTAllowed = isLTAllowed && !isNumericConditionSpecified(mean, false, forbidden, false)

		if !isGEAllowed && !isLTAllowed {
			return
		}

		quality, ltQuality := math.Inf(-1), math.Inf(-1)

		if !isEntropy {
			if mean <= maxUnc && isGEAllowed {
				quality = rqm.EvaluateFromResult(rerGE)
			}

			if mean > minUnc && isLTAllowed {
				ltQuality = rqm.EvaluateFromResult(rerLT)
			}
		} else {
			entrLTP := countLess(uncValues, mean)
			entrGEP := len(uncValues) - entrLTP

			switch {
			case mean <= maxUnc && entrGEP > entrLTP && isGEAllowed:
				quality = ComputeQualityForTwoGroups(rerLT.p, rerLT.n, rerGE.p, rerGE.n)
			case mean > minUnc && isLTAllowed:
				ltQuality = ComputeQualityForTwoGroups(rerLT.p, rerLT.n, rerGE.p, rerGE.n)
			default:
				return
			}
		}

		if quality < *bestQuality && ltQuality < *bestQuality {
			return
		}

		if quality > *bestQuality || ltQuality > *bestQuality {
			*bestQuality = math.Max(quality, ltQuality)
			*equallyBest = nil
		}

		if quality >= ltQuality && quality == *bestQuality {
			*equallyBest = append(*equallyBest, NewElementaryCondition(attrIdx, OpGE, mean))
		}

		if ltQuality >= quality && ltQuality == *bestQuality {
			*equallyBest = append(*equallyBest, NewElementaryCondition(attrIdx, OpLT, mean))
		}
	}

	// Specified-interval boundaries are always considered as threshold
	// candidates, even absent a matching example value. They are merged
	// into the real-value sweep in sorted order so each is evaluated
	// against the accumulator state that actually corresponds to a split
	// at that value (not the pre- or post-sweep extremes).
	var synthetic []float64
	for _, kc := range allowed {
		if !math.IsInf(kc.From, 0) {
			synthetic = append(synthetic, kc.From)
		}
		if !math.IsInf(kc.To, 0) {
			synthetic = append(synthetic, kc.To)
		}
	}
	sort.Float64s(synthetic)

	si := 0

	flushSyntheticUpTo := func(value float64) {
		for si < len(synthetic) && synthetic[si] <= value {
			considerAt(synthetic[si])
			si++
		}
	}

	for _, ent := range entries {
		flushSyntheticUpTo(ent.value)

		currClass := ent.decision
		shouldSkip := currClass == prevClass || prevVal == ent.value
		mean := (prevVal + ent.value) / 2
		prevVal = ent.value
		prevClass = currClass

		if !shouldSkip {
			considerAt(mean)
		}

		if currClass == class {
			rerLT.p += ent.weight
			rerGE.p -= ent.weight
		} else {
			rerLT.n += ent.weight
			rerGE.n -= ent.weight
		}
	}

	for ; si < len(synthetic); si++ {
		considerAt(synthetic[si])
	}
}

func (e *Engine) findBestNominalKnown(class float64, covered, uncoveredPositives *View, rqm Measure, isEntropy bool, attrIdx int, knowledge *Knowledge, useSpecifiedOnly bool, equallyBest *[]ElementaryCondition, bestQuality *float64) {
	allowed := knowledge.AllowedConditions[class].GetConditionsForAttribute(attrIdx)
	forbidden := knowledge.ForbiddenConditions[class].GetConditionsForAttribute(attrIdx)

	uncValues := make(map[float64]bool)
	for _, row := range uncoveredPositives.Indices {
		v := uncoveredPositives.Dataset.GetAttribute(row, attrIdx)
		if !math.IsNaN(v) {
			uncValues[v] = true
		}
	}

	seen := make(map[float64]bool)

	for _, row := range covered.Indices {
		v := covered.Dataset.GetAttribute(row, attrIdx)
		if math.IsNaN(v) || seen[v] || !uncValues[v] {
			continue
		}

		seen[v] = true

		if useSpecifiedOnly && !isNominalValueSpecified(v, allowed) {
			continue
		}

		if isNominalValueSpecified(v, forbidden) {
			continue
		}

		cond := NewElementaryCondition(attrIdx, OpEQ, v)

		var quality float64
		if isEntropy {
			quality = EvaluateConditionQuality(NegConditionalEntropy{}, covered, cond, class)
		} else {
			rer := EvaluateCondition(covered, cond, class)
			quality = rqm.EvaluateFromResult(rer)
		}

		if quality < *bestQuality {
			continue
		}

		if quality > *bestQuality {
			*bestQuality = quality
			*equallyBest = nil
		}

		*equallyBest = append(*equallyBest, cond)
	}
}

func isNominalValueSpecified(v float64, conds []KnowledgeCondition) bool {
	for _, c := range conds {
		if c.Value() == v {
			return true
		}
	}

	return false
}

// isNumericConditionSpecified reports whether a candidate threshold mean,
// in the direction greaterEqual (true for ">=", false for "<"), is
// specified by any of conditions. A Fixed condition requires an exact
// bound match; a non-fixed one requires the candidate half-line to
// intersect [From,To)/(From,To] respectively. When andRequired is set, a
// match additionally requires the condition to be Required.
func isNumericConditionSpecified(mean float64, greaterEqual bool, conditions []KnowledgeCondition, andRequired bool) bool {
	for _, c := range conditions {
		var match bool

		if c.Fixed {
			match = (greaterEqual && mean == c.From) || (!greaterEqual && mean == c.To)
		} else {
			match = (greaterEqual && mean >= c.From && mean < c.To) ||
				(!greaterEqual && mean > c.From && mean <= c.To)
		}

		if !match {
			continue
		}

		if andRequired && !c.Required {
			continue
		}

		return true
	}

	return false
}

// filterForbiddenCompletions drops any candidate that would complete a
// forbidden rule template for class if added to rule.
func filterForbiddenCompletions(rule *Rule, candidates []ElementaryCondition, class float64, knowledge *Knowledge) []ElementaryCondition {
	if len(knowledge.ForbiddenRules[class]) == 0 {
		return candidates
	}

	out := make([]ElementaryCondition, 0, len(candidates))

	for _, c := range candidates {
		if !isConditionForbiddenInRule(rule, c, class, knowledge) {
			out = append(out, c)
		}
	}

	return out
}

// isConditionForbiddenInRule reports whether adding cond to rule would
// complete some forbidden rule template in full for class (every other
// condition of the template already present in the rule).
func isConditionForbiddenInRule(rule *Rule, cond ElementaryCondition, class float64, knowledge *Knowledge) bool {
	for _, kr := range knowledge.ForbiddenRules[class] {
		allPresent := true

		matchesThisCond := false

		for _, kc := range kr.Conditions {
			if kc.AttributeIndex == cond.AttributeIndex && kc.Value() == cond.Value {
				matchesThisCond = true

				continue
			}

			found := false

			for _, rc := range rule.ConditionsForAttribute(kc.AttributeIndex) {
				if rc.Value == kc.Value() {
					found = true

					break
				}
			}

			if !found {
				allPresent = false

				break
			}
		}

		if allPresent && matchesThisCond {
			return true
		}
	}

	return false
}

// pruneWithKnowledge prunes rule like (*Engine).prune, but refuses to
// remove a condition marked Required in knowledge's allowed conditions for
// class unless another Required, compatible, same-direction condition on
// the same attribute remains.
func (e *Engine) pruneWithKnowledge(rule *Rule, view *View, rqm Measure, apriori float64, class float64, knowledge *Knowledge) {
	sc := knowledge.AllowedConditions[class]

	bestQ := EvaluateRuleQuality(rqm, view, rule)

	for {
		conds := rule.Conditions()
		if len(conds) == 0 {
			return
		}

		var equallyWorst []ElementaryCondition
		newBest := math.Inf(-1)

		for _, c := range conds {
			if sc != nil && conditionIsProtectedRequired(c, rule, sc) {
				continue
			}

			tmp := rule.Clone()
			tmp.RemoveCondition(c)

			prec := EvaluateRule(view, tmp)
			if prec.p+prec.n == 0 || prec.p/(prec.p+prec.n) <= apriori {
				continue
			}

			q := EvaluateRuleQuality(rqm, view, tmp)
			if q >= bestQ {
				if q > newBest {
					newBest = q
					equallyWorst = []ElementaryCondition{c}
				} else if q == newBest {
					equallyWorst = append(equallyWorst, c)
				}
			}
		}

		if len(equallyWorst) == 0 {
			return
		}

		chosen := equallyWorst[e.RNG.Intn(len(equallyWorst))]
		rule.RemoveCondition(chosen)
		bestQ = newBest
	}
}

// conditionIsProtectedRequired reports whether c is marked Required by sc
// and no other Required, compatible, same-direction condition on the same
// attribute remains in the rule - i.e. removing c would lose the only
// surviving required constraint on that attribute/direction.
func conditionIsProtectedRequired(c ElementaryCondition, rule *Rule, sc *SetOfConditions) bool {
	isRequired := false

	for _, kc := range sc.GetConditionsForAttribute(c.AttributeIndex) {
		if !kc.Required {
			continue
		}

		if kc.AttributeType == Nominal && kc.Value() == c.Value {
			isRequired = true
		}

		if kc.AttributeType == Numerical && isNumericConditionSpecified(c.Value, c.Op == OpGE, []KnowledgeCondition{kc}, true) {
			isRequired = true
		}
	}

	if !isRequired {
		return false
	}

	for _, other := range rule.ConditionsForAttribute(c.AttributeIndex) {
		if other.Equal(c) || other.Op != c.Op {
			continue
		}

		for _, kc := range sc.GetConditionsForAttribute(c.AttributeIndex) {
			if !kc.Required {
				continue
			}

			if isNumericConditionSpecified(other.Value, other.Op == OpGE, []KnowledgeCondition{kc}, true) {
				return false
			}
		}
	}

	return true
}
