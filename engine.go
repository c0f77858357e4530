package rulekit

import (
	"fmt"
	"math"
	"math/rand"
)

// Params mirrors the recognized parameter set of the external call surface:
// a single struct carries the raw data, schema, quality-measure selection,
// preference layer, and run controls for GenerateRules, Predict, and
// CrossValidate.
type Params struct {
	// Y is the raw decision value for each example, as 1-based nominal level
	// indices into YLevels (matching the host-language binding convention).
	Y      []float64
	YName  string
	YLevels []string

	// X holds one column per conditional attribute, X[j][i] is the value of
	// attribute j for example i. Nominal columns are 1-based level indices
	// into XLevels[j]; XTypes[j] selects Numerical or Nominal.
	X       [][]float64
	XTypes  []AttributeType
	XNames  []string
	XLevels [][]string

	Weights []float64

	// Rules, when non-empty, seeds a RuleClassifier directly from rule text
	// instead of training (used by Predict without a prior GenerateRules
	// call). ConfidenceDegrees must have the same length when supplied.
	Rules             []string
	ConfidenceDegrees []float64

	// Q and QSplit select the named quality measure used for, respectively,
	// pruning (and the rule's confidence degree) and the growth search (pass
	// the same name for both to use one measure throughout). Recognized names:
	// "g2", "lift", "ls", "rss", "corr", "s", "c1", "c2", "entropy", "cn2",
	// "gain", "precision", "coverage", "cohen", "mutualsupport", "pvalue".
	// An empty Q/QSplit falls back to QFun/QSplitFun; if those are also nil,
	// a scalar expression in terms of P,p,N,n may be supplied instead (see
	// CompileQualityExpr).
	Q         string
	QSplit    string
	QFun      func(P, p, N, n float64) float64
	QSplitFun func(P, p, N, n float64) float64
	QExpr      string
	QSplitExpr string

	Knowledge *Knowledge

	// Seed is a value in [0,1] mapped to the injected generator's source at
	// each call, matching the host-language binding's srand(seed*UINT_MAX)
	// convention.
	Seed float64
	Runs int
	Folds int
	EveryClassInFold       bool
	UseWeightsInPrediction bool
}

// buildDataset constructs a Dataset from Params' raw column data. The
// decision attribute is always attribute index 0 in the returned dataset's
// Decision slot (not among Attributes). 1-based host-language level indices
// are decremented to Go's 0-based convention.
func buildDataset(p *Params) (*Dataset, error) {
	decision := NewNominalAttribute(p.YName, p.YLevels)
	ds := NewDataset("rulekit", decision)

	y := make([]float64, len(p.Y))
	for i, v := range p.Y {
		y[i] = oneBasedToZero(v)
	}

	if err := ds.AddDecisionColumn(y); err != nil {
		return nil, Wrapper(err, "buildDataset: decision column")
	}

	if len(p.Weights) > 0 {
		if err := ds.AddWeights(p.Weights); err != nil {
			return nil, Wrapper(err, "buildDataset: weights")
		}
	}

	for j, col := range p.X {
		name := fmt.Sprintf("x%d", j)
		if j < len(p.XNames) && p.XNames[j] != "" {
			name = p.XNames[j]
		}

		var attr *Attribute
		var values []float64

		if j < len(p.XTypes) && p.XTypes[j] == Nominal {
			var levels []string
			if j < len(p.XLevels) {
				levels = p.XLevels[j]
			}

			attr = NewNominalAttribute(name, levels)
			values = make([]float64, len(col))

			for i, v := range col {
				values[i] = oneBasedToZero(v)
			}
		} else {
			attr = NewNumericalAttribute(name)
			values = col
		}

		if err := ds.AddAttribute(values, attr); err != nil {
			return nil, wrapf(err, "buildDataset: attribute %s", name)
		}
	}

	return ds, nil
}

// oneBasedToZero converts a 1-based nominal level index to 0-based, leaving
// NaN (missing) untouched.
func oneBasedToZero(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}

	return v - 1
}

// resolveMeasure looks up name in the recognized quality-measure dispatch
// table, falling back to fn (a caller callback) and then expr (a compiled
// scalar expression) when name is empty.
func resolveMeasure(name string, fn func(P, p, N, n float64) float64, expr string) (Measure, error) {
	if name != "" {
		if m, ok := namedMeasure(name); ok {
			return m, nil
		}

		return nil, wrapf(InvalidArgument, "resolveMeasure: unrecognized quality measure %q", name)
	}

	if fn != nil {
		return Custom("custom", fn), nil
	}

	if expr != "" {
		compiled, err := CompileQualityExpr(expr)
		if err != nil {
			return nil, Wrapper(err, "resolveMeasure: compiling expression")
		}

		return Custom("expr", compiled), nil
	}

	return nil, Wrapper(InvalidArgument, "resolveMeasure: no quality measure, callback, or expression supplied")
}

func namedMeasure(name string) (Measure, bool) {
	switch name {
	case "g2":
		return TwoMeasure(), true
	case "lift":
		return Lift(), true
	case "ls":
		return LogicalSufficiency(), true
	case "rss":
		return RSS(), true
	case "corr":
		return Correlation(), true
	case "s":
		return SBayesConfirmation(), true
	case "c1":
		return C1(), true
	case "c2":
		return C2(), true
	case "entropy":
		return NegConditionalEntropy{}, true
	case "cn2":
		return Cn2(), true
	case "gain":
		return Gain(), true
	case "precision":
		return Precision(), true
	case "coverage":
		return Coverage(), true
	case "cohen":
		return CohenMeasure(), true
	case "mutualsupport":
		return MutualSupport(), true
	case "pvalue":
		return Pvalue(), true
	}

	return nil, false
}

// GeneratedRuleSet is the return value of GenerateRules: the induced rules,
// their textual form, their per-rule stats, the Dataset built from the
// call's Params, and a RuleClassifier over the rules.
type GeneratedRuleSet struct {
	Rules     []*Rule
	RuleText  []string
	Stats     []RuleStats
	Dataset   *Dataset
	Classifier *RuleClassifier
}

// GenerateRules is the package's external call surface for rule induction:
// it builds a Dataset from p, resolves the growth/pruning quality measures,
// and runs the (preference-free or preference-layer) sequential covering
// engine, according to whether p.Knowledge is set.
func GenerateRules(p *Params) (*GeneratedRuleSet, error) {
	ds, err := buildDataset(p)
	if err != nil {
		return nil, err
	}

	rg, err := resolveMeasure(p.QSplit, p.QSplitFun, p.QSplitExpr)
	if err != nil {
		return nil, wrapf(err, "GenerateRules: growth measure")
	}

	rp, err := resolveMeasure(p.Q, p.QFun, p.QExpr)
	if err != nil {
		return nil, wrapf(err, "GenerateRules: pruning measure")
	}

	rng := newSeededRand(p.Seed)
	engine := NewEngine(rng)

	var rules []*Rule
	var stats []RuleStats

	if p.Knowledge != nil {
		rules, stats, err = engine.GenerateRulesWithKnowledge(ds.Full(), rg, rp, p.Knowledge)
	} else {
		rules, stats, err = engine.GenerateRules(ds.Full(), rg, rp)
	}

	if err != nil {
		return nil, Wrapper(err, "GenerateRules: covering engine")
	}

	text := make([]string, len(rules))
	for i, r := range rules {
		text[i] = r.String(ds)
	}

	if Verbose {
		fmt.Printf("rulekit: induced %d rules\n", len(rules))
	}

	return &GeneratedRuleSet{
		Rules:      rules,
		RuleText:   text,
		Stats:      stats,
		Dataset:    ds,
		Classifier: NewRuleClassifier(rules),
	}, nil
}

// Predict is the external call surface for classification: it builds a
// Dataset from p (typically lacking reliable Y, in which case hasGroundTruth
// should be false), a RuleClassifier from p.Rules (parsed rule text, with
// ConfidenceDegrees applied positionally) or from rules if supplied
// directly, and classifies every example.
func Predict(p *Params, rules []*Rule, hasGroundTruth bool) (*PredictResult, error) {
	ds, err := buildDataset(p)
	if err != nil {
		return nil, err
	}

	if rules == nil {
		rules, err = parseRuleSet(ds, p.Rules, p.ConfidenceDegrees)
		if err != nil {
			return nil, Wrapper(err, "Predict: parsing rule set")
		}
	}

	classifier := NewRuleClassifier(rules)
	view := ds.Full()
	classes := view.DistinctClasses()

	var result *PredictResult
	if p.UseWeightsInPrediction {
		result = classifier.Predict(view, classes, hasGroundTruth)
	} else if hasGroundTruth {
		result = predictUnweighted(classifier, view, classes)
	} else {
		result = classifier.Predict(view, classes, false)
	}

	return result, nil
}

// parseRuleSet parses each rule text against ds's schema and applies
// confidenceDegrees positionally: rule i gets confidenceDegrees[i] when that
// entry exists, and rules beyond its length keep a zero confidence degree.
func parseRuleSet(ds *Dataset, texts []string, confidenceDegrees []float64) ([]*Rule, error) {
	rules := make([]*Rule, len(texts))

	for i, t := range texts {
		r, err := ParseRule(ds, t)
		if err != nil {
			return nil, wrapf(err, "parseRuleSet: rule %d", i)
		}

		if i < len(confidenceDegrees) {
			r.ConfidenceDegree = confidenceDegrees[i]
		}

		rules[i] = r
	}

	return rules, nil
}

// CrossValidate is the external call surface for stratified k-fold
// cross-validation. Per the cross-validator's documented contract, a
// Knowledge object on p is accepted for interface symmetry but never
// applied per-fold; every fold always trains a plain Engine.
func CrossValidate(p *Params) ([]RunResult, error) {
	ds, err := buildDataset(p)
	if err != nil {
		return nil, err
	}

	rg, err := resolveMeasure(p.QSplit, p.QSplitFun, p.QSplitExpr)
	if err != nil {
		return nil, wrapf(err, "CrossValidate: growth measure")
	}

	rp, err := resolveMeasure(p.Q, p.QFun, p.QExpr)
	if err != nil {
		return nil, wrapf(err, "CrossValidate: pruning measure")
	}

	runs := p.Runs
	if runs <= 0 {
		runs = 1
	}

	rng := newSeededRand(p.Seed)

	return CrossValidateFolds(ds.Full(), rg, rp, p.Folds, runs, p.EveryClassInFold, p.UseWeightsInPrediction, rng)
}

// newSeededRand builds the package's RNG from a caller seed in [0,1], scaling
// it the way the host-language binding does (srand(seed*UINT_MAX)) to spread
// a fractional seed across the generator's state space.
func newSeededRand(seed float64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed * math.MaxUint32)))
}
