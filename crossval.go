package rulekit

import (
	"fmt"
	"math/rand"
)

// FoldResult is the outcome of training and evaluating on a single fold.
type FoldResult struct {
	Rules   []*Rule
	Stats   []RuleStats
	Predict *PredictResult
}

// RunResult is one of the `runs` independent cross-validation rounds.
type RunResult struct {
	Folds []FoldResult
}

// CrossValidateFolds performs stratified k-fold cross-validation over view,
// repeated for `runs` independent rounds. Each fold trains a plain
// (preference-free) Engine on view-minus-fold and evaluates on fold. Per
// RInterface.cpp's crossValidation, per-fold training always uses the
// plain engine, never the preference-layer variant, even when the caller
// supplies a Knowledge object to the top-level call surface (engine.go);
// CrossValidateFolds itself takes no Knowledge parameter, matching that.
func CrossValidateFolds(view *View, rqmGrow, rqmPrune Measure, k, runs int, everyClassInFold bool, useWeightsInPrediction bool, rng *rand.Rand) ([]RunResult, error) {
	if k <= 1 || k > view.Size() {
		return nil, wrapf(InvalidArgument, "CrossValidateFolds: invalid fold count %d for view of size %d", k, view.Size())
	}

	if runs <= 0 {
		return nil, Wrapper(InvalidArgument, "CrossValidateFolds: runs must be positive")
	}

	classes := view.DistinctClasses()

	results := make([]RunResult, runs)

	for r := 0; r < runs; r++ {
		folds, err := view.StratifiedFolds(k, everyClassInFold, rng)
		if err != nil {
			return nil, err
		}

		run := RunResult{Folds: make([]FoldResult, k)}

		for j := 0; j < k; j++ {
			testSet := folds[j]
			trainSet := view.Minus(testSet)

			engine := NewEngine(rng)

			rules, stats, _ := engine.GenerateRules(trainSet, rqmGrow, rqmPrune)

			classifier := NewRuleClassifier(rules)

			pred := classifier.Predict(testSet, classes, true)
			if !useWeightsInPrediction {
				pred = predictUnweighted(classifier, testSet, classes)
			}

			run.Folds[j] = FoldResult{Rules: rules, Stats: stats, Predict: pred}
		}

		results[r] = run

		if Verbose {
			fmt.Printf("rulekit: cross-validation run %d/%d complete\n", r+1, runs)
		}
	}

	return results, nil
}

// predictUnweighted recomputes Predict's confusion matrix using unit counts
// instead of example weights, for the useWeightsInPrediction=false case.
func predictUnweighted(rc *RuleClassifier, view *View, classes []float64) *PredictResult {
	preds := rc.ClassifyView(view)

	cm := NewConfusionMatrix(classes)

	for i, row := range view.Indices {
		actual := view.Dataset.GetDecision(row)
		cm.Add(actual, preds[i], 1.0)
	}

	return &PredictResult{
		Predictions:     preds,
		ConfusionMatrix: cm,
		Accuracy:        cm.Accuracy(),
		BalancedAcc:     cm.BalancedAccuracy(),
		Coverage:        cm.Coverage(),
	}
}
