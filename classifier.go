package rulekit

import "math"

// RuleClassifier predicts a class for an example by summing the confidence
// degree of every covering rule per class (voting) and returning the
// argmax, with a first-occurrence-in-Rules-order tie-break.
type RuleClassifier struct {
	Rules []*Rule
}

// NewRuleClassifier builds a classifier from an induced rule set.
func NewRuleClassifier(rules []*Rule) *RuleClassifier {
	return &RuleClassifier{Rules: rules}
}

// AddRule appends a rule to the classifier.
func (rc *RuleClassifier) AddRule(r *Rule) {
	rc.Rules = append(rc.Rules, r)
}

// CoveringRules returns every rule in rc that covers example row of ds.
func (rc *RuleClassifier) CoveringRules(ds *Dataset, row int) []*Rule {
	var out []*Rule

	for _, r := range rc.Rules {
		if r.Covers(ds, row) {
			out = append(out, r)
		}
	}

	return out
}

// Classify returns the predicted class for example row of ds, or NaN if no
// rule covers it. Ties among classes with equal vote totals are broken by
// first occurrence in rc.Rules order, per the classifier's deterministic
// tie-break contract.
func (rc *RuleClassifier) Classify(ds *Dataset, row int) float64 {
	covering := rc.CoveringRules(ds, row)

	if len(covering) == 0 {
		return math.NaN()
	}

	if len(covering) == 1 {
		return covering[0].DecisionClass
	}

	votes := make(map[float64]float64)
	order := make([]float64, 0)

	for _, r := range covering {
		if _, ok := votes[r.DecisionClass]; !ok {
			order = append(order, r.DecisionClass)
		}

		votes[r.DecisionClass] += r.ConfidenceDegree
	}

	bestClass := order[0]
	bestVote := votes[order[0]]

	for _, c := range order[1:] {
		if votes[c] > bestVote {
			bestVote = votes[c]
			bestClass = c
		}
	}

	return bestClass
}

// ClassifyView returns the predicted class for every example in view, in
// view order.
func (rc *RuleClassifier) ClassifyView(view *View) []float64 {
	out := make([]float64, view.Size())

	for i, row := range view.Indices {
		out[i] = rc.Classify(view.Dataset, row)
	}

	return out
}

// PredictResult is the output of Predict: confusion matrix plus the
// derived aggregate metrics the engine call surface's predict() reports.
type PredictResult struct {
	Predictions     []float64
	ConfusionMatrix *ConfusionMatrix
	Accuracy        float64
	BalancedAcc     float64
	Coverage        float64
}

// Predict classifies every example of view and, when view's decision
// column carries ground truth, computes the confusion matrix and aggregate
// metrics (Accuracy/BalancedAcc are NaN without ground truth). classes
// fixes the class universe for the confusion matrix (the training classes,
// which may exceed those observed in view).
func (rc *RuleClassifier) Predict(view *View, classes []float64, hasGroundTruth bool) *PredictResult {
	preds := rc.ClassifyView(view)

	res := &PredictResult{Predictions: preds, Accuracy: math.NaN(), BalancedAcc: math.NaN(), Coverage: math.NaN()}

	if !hasGroundTruth {
		return res
	}

	cm := NewConfusionMatrix(classes)

	for i, row := range view.Indices {
		actual := view.Dataset.GetDecision(row)
		weight := view.Dataset.GetWeight(row)
		cm.Add(actual, preds[i], weight)
	}

	res.ConfusionMatrix = cm
	res.Accuracy = cm.Accuracy()
	res.BalancedAcc = cm.BalancedAccuracy()
	res.Coverage = cm.Coverage()

	return res
}
