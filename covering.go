package rulekit

import (
	"math"
	"math/rand"
	"sort"
)

// Engine runs the (preference-free) sequential covering algorithm: for each
// distinct class in a view, it repeatedly grows and prunes rules until
// every positive example of that class is covered, or until a newly grown
// rule's precision is no longer above the class's apriori frequency.
type Engine struct {
	RNG *rand.Rand
}

// NewEngine builds an Engine with the given RNG. Per the concurrency model,
// the RNG is injected explicitly rather than relying on a process-wide
// global.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{RNG: rng}
}

// RuleStats accompanies each rule returned by GenerateRules with the
// per-rule statistics the engine call surface reports: condition count,
// precision, coverage, and p-value (with its approximation-warning flag).
type RuleStats struct {
	NumConditions int
	Precision     float64
	Coverage      float64
	Pvalue        float64
	PvalueWarning bool
}

// GenerateRules runs the sequential covering algorithm over view using
// rqmGrow to guide growth and rqmPrune to guide pruning (and as the source
// of the rule's confidence degree), producing one rule set per distinct
// class found in view.
func (e *Engine) GenerateRules(view *View, rqmGrow, rqmPrune Measure) ([]*Rule, []RuleStats, error) {
	var rules []*Rule
	var stats []RuleStats

	for _, c := range view.DistinctClasses() {
		classRules, classStats := e.generateForClass(view, rqmGrow, rqmPrune, c)
		rules = append(rules, classRules...)
		stats = append(stats, classStats...)
	}

	return rules, stats, nil
}

func (e *Engine) generateForClass(view *View, rg, rp Measure, class float64) ([]*Rule, []RuleStats) {
	uncoveredPositives := view.FilterByClass(class)
	P := uncoveredPositives.SumOfWeights()
	N := view.SumOfWeights() - P
	apriori := P / (P + N)

	var rules []*Rule
	var stats []RuleStats

	for uncoveredPositives.SumOfWeights() > 0 {
		rule := NewRule(class)
		covered := view

		e.grow(rule, covered, uncoveredPositives, rg)

		covered = rule.CoveredBy(view)
		rer := EvaluateRule(covered, rule)

		if rer.p+rer.n == 0 || rer.p/(rer.p+rer.n) <= apriori {
			break
		}

		e.prune(rule, view, rp, apriori)

		rule.ConfidenceDegree = EvaluateRuleQuality(rp, view, rule)

		rules = append(rules, rule)

		finalCovered := rule.CoveredBy(view)
		stats = append(stats, ruleStatsFor(view, rule))

		uncoveredPositives = uncoveredPositives.Minus(finalCovered)
	}

	return rules, stats
}

// grow greedily extends rule with the best elementary condition found by
// findBestCondition until no improving condition exists, the covered set
// stops shrinking, or a perfectly discriminating condition is found.
func (e *Engine) grow(rule *Rule, covered, uncoveredPositives *View, rqm Measure) {
	prevCoveredCount := -1.0

	for {
		best, ok := e.findBestCondition(rule.DecisionClass, covered, uncoveredPositives, rqm)
		if !ok {
			return
		}

		rer := EvaluateCondition(covered, best, rule.DecisionClass)
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

// prune greedily removes conditions from rule while the quality measure rqm
// does not worsen, subject to the canonical apriori-gated admission guard:
// a condition may only be removed if doing so keeps the rule's precision
// over view strictly above apriori.
func (e *Engine) prune(rule *Rule, view *View, rqm Measure, apriori float64) {
	bestQ := EvaluateRuleQuality(rqm, view, rule)

	for {
		conds := rule.Conditions()
		if len(conds) == 0 {
			return
		}

		var equallyWorst []ElementaryCondition
		var newBest float64 = math.Inf(-1)

		for _, c := range conds {
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

// findBestCondition scans every conditional attribute, proposing candidate
// conditions restricted to values actually present in covered, and returns
// the quality-maximizing one (with the tie-break policy of the Design
// Notes), or ok=false if no attribute yields any candidate.
func (e *Engine) findBestCondition(decClass float64, covered, uncoveredPositives *View, rqm Measure) (ElementaryCondition, bool) {
	_, isEntropy := rqm.(NegConditionalEntropy)

	bestQuality := math.Inf(-1)
	var equallyBest []ElementaryCondition

	numAttrs := covered.Dataset.NConditionalAttributes()

	for i := 0; i < numAttrs; i++ {
		switch covered.Dataset.AttributeType(i) {
		case Numerical:
			e.findBestNumerical(decClass, covered, uncoveredPositives, rqm, isEntropy, i, &equallyBest, &bestQuality)
		case Nominal:
			e.findBestNominal(decClass, covered, uncoveredPositives, rqm, isEntropy, i, &equallyBest, &bestQuality)
		}
	}

	switch len(equallyBest) {
	case 0:
		return ElementaryCondition{}, false
	case 1:
		return equallyBest[0], true
	default:
		return e.chooseAmongEqual(equallyBest, uncoveredPositives), true
	}
}

type numEntry struct {
	value    float64
	decision float64
	weight   float64
}

func (e *Engine) findBestNumerical(decClass float64, covered, uncoveredPositives *View, rqm Measure, isEntropy bool, attrIdx int, equallyBest *[]ElementaryCondition, bestQuality *float64) {
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

		if dec == decClass {
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

	for _, ent := range entries {
		currClass := ent.decision
		shouldSkip := currClass == prevClass || prevVal == ent.value
		mean := (prevVal + ent.value) / 2
		prevVal = ent.value
		prevClass = currClass

		if !shouldSkip {
			e.considerNumericCandidate(attrIdx, mean, rerGE, rerLT, uncValues, minUnc, maxUnc, rqm, isEntropy, equallyBest, bestQuality)
		}

		if currClass == decClass {
			rerLT.p += ent.weight
			rerGE.p -= ent.weight
		} else {
			rerLT.n += ent.weight
			rerGE.n -= ent.weight
		}
	}
}

func (e *Engine) considerNumericCandidate(attrIdx int, mean float64, rerGE, rerLT RuleEvaluationResult, uncValues []float64, minUnc, maxUnc float64, rqm Measure, isEntropy bool, equallyBest *[]ElementaryCondition, bestQuality *float64) {
	quality := math.Inf(-1)
	ltQuality := math.Inf(-1)

	if !isEntropy {
		if mean <= maxUnc {
			quality = rqm.EvaluateFromResult(rerGE)
		}

		if mean > minUnc {
			ltQuality = rqm.EvaluateFromResult(rerLT)
		}
	} else {
		entrLTP := countLess(uncValues, mean)
		entrGEP := len(uncValues) - entrLTP

		switch {
		case mean <= maxUnc && entrGEP > entrLTP:
			quality = ComputeQualityForTwoGroups(rerLT.p, rerLT.n, rerGE.p, rerGE.n)
		case mean > minUnc:
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

func countLess(sorted []float64, x float64) int {
	return sort.SearchFloat64s(sorted, x)
}

func (e *Engine) findBestNominal(decClass float64, covered, uncoveredPositives *View, rqm Measure, isEntropy bool, attrIdx int, equallyBest *[]ElementaryCondition, bestQuality *float64) {
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

		cond := NewElementaryCondition(attrIdx, OpEQ, v)

		var quality float64
		if isEntropy {
			quality = EvaluateConditionQuality(NegConditionalEntropy{}, covered, cond, decClass)
		} else {
			rer := EvaluateCondition(covered, cond, decClass)
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

func (e *Engine) chooseAmongEqual(candidates []ElementaryCondition, uncoveredPositives *View) ElementaryCondition {
	bestP := math.Inf(-1)
	var best []ElementaryCondition

	for _, c := range candidates {
		covered := conditionCoveredBy(c, uncoveredPositives)
		p := covered.SumOfWeights()

		if p > bestP {
			bestP = p
			best = []ElementaryCondition{c}
		} else if p == bestP {
			best = append(best, c)
		}
	}

	return best[e.RNG.Intn(len(best))]
}
