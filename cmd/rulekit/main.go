// Command rulekit is a thin CLI over the rulekit package's call surface:
// it reads an ARFF dataset and a quality-measure name, induces rules, and
// prints the results (or cross-validates, or classifies against an
// existing rule set).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/invertedv/rulekit"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "predict":
		err = runPredict(os.Args[2:])
	case "xval":
		err = runXval(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "rulekit:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: rulekit <generate|predict|xval> [flags]")
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	data := fs.String("data", "", "path to an ARFF dataset")
	q := fs.String("q", "c2", "pruning/confidence quality measure name")
	qsplit := fs.String("qsplit", "entropy", "growth quality measure name")
	seed := fs.Float64("seed", 0.5, "RNG seed in [0,1]")
	plotPath := fs.String("plot", "", "if set, render a precision-vs-coverage scatter to this HTML file")
	showPlot := fs.Bool("show", false, "open the rendered plot in a browser")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *data == "" {
		return rulekit.Wrapper(rulekit.InvalidArgument, "generate: -data is required")
	}

	f, err := os.Open(*data)
	if err != nil {
		return rulekit.Wrapper(rulekit.ErrLoad, err.Error())
	}
	defer f.Close()

	ds, err := rulekit.LoadARFF(f)
	if err != nil {
		return err
	}

	p, err := datasetToParams(ds)
	if err != nil {
		return err
	}

	p.Q = *q
	p.QSplit = *qsplit
	p.Seed = *seed

	result, err := rulekit.GenerateRules(p)
	if err != nil {
		return err
	}

	if *plotPath != "" || *showPlot {
		diags, _ := rulekit.DiagnoseRuleSet(result.Dataset.Full(), result.Dataset, result.Rules)
		fig := rulekit.PrecisionCoverageScatter(diags)

		if err := rulekit.Plotter(fig, nil, &rulekit.PlotDef{
			Title:    "rulekit: precision vs coverage",
			XTitle:   "coverage",
			YTitle:   "precision",
			FileName: *plotPath,
			Show:     *showPlot,
		}); err != nil {
			return rulekit.Wrapper(err, "generate: rendering plot")
		}
	}

	return json.NewEncoder(os.Stdout).Encode(struct {
		Rules []string           `json:"rules"`
		Stats []rulekit.RuleStats `json:"stats"`
	}{result.RuleText, result.Stats})
}

func runPredict(args []string) error {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	data := fs.String("data", "", "path to an ARFF dataset")
	rulesPath := fs.String("rules", "", "path to a JSON array of rule-text strings")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *data == "" || *rulesPath == "" {
		return rulekit.Wrapper(rulekit.InvalidArgument, "predict: -data and -rules are required")
	}

	f, err := os.Open(*data)
	if err != nil {
		return rulekit.Wrapper(rulekit.ErrLoad, err.Error())
	}
	defer f.Close()

	ds, err := rulekit.LoadARFF(f)
	if err != nil {
		return err
	}

	rulesFile, err := os.Open(*rulesPath)
	if err != nil {
		return rulekit.Wrapper(rulekit.ErrLoad, err.Error())
	}
	defer rulesFile.Close()

	var ruleText []string
	if err := json.NewDecoder(rulesFile).Decode(&ruleText); err != nil {
		return rulekit.Wrapper(rulekit.ParseError, err.Error())
	}

	p, err := datasetToParams(ds)
	if err != nil {
		return err
	}

	p.Rules = ruleText

	result, err := rulekit.Predict(p, nil, true)
	if err != nil {
		return err
	}

	return json.NewEncoder(os.Stdout).Encode(struct {
		Predictions []float64 `json:"predictions"`
		Accuracy    float64   `json:"accuracy"`
		Coverage    float64   `json:"coverage"`
	}{result.Predictions, result.Accuracy, result.Coverage})
}

func runXval(args []string) error {
	fs := flag.NewFlagSet("xval", flag.ExitOnError)
	data := fs.String("data", "", "path to an ARFF dataset")
	q := fs.String("q", "c2", "pruning/confidence quality measure name")
	qsplit := fs.String("qsplit", "entropy", "growth quality measure name")
	folds := fs.Int("folds", 5, "number of cross-validation folds")
	runs := fs.Int("runs", 1, "number of cross-validation runs")
	seed := fs.Float64("seed", 0.5, "RNG seed in [0,1]")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *data == "" {
		return rulekit.Wrapper(rulekit.InvalidArgument, "xval: -data is required")
	}

	f, err := os.Open(*data)
	if err != nil {
		return rulekit.Wrapper(rulekit.ErrLoad, err.Error())
	}
	defer f.Close()

	ds, err := rulekit.LoadARFF(f)
	if err != nil {
		return err
	}

	p, err := datasetToParams(ds)
	if err != nil {
		return err
	}

	p.Q = *q
	p.QSplit = *qsplit
	p.Folds = *folds
	p.Runs = *runs
	p.Seed = *seed
	p.UseWeightsInPrediction = true

	results, err := rulekit.CrossValidate(p)
	if err != nil {
		return err
	}

	type foldSummary struct {
		Accuracy    float64 `json:"accuracy"`
		BalancedAcc float64 `json:"balanced_accuracy"`
		Coverage    float64 `json:"coverage"`
	}

	var out []foldSummary
	for _, run := range results {
		for _, fold := range run.Folds {
			out = append(out, foldSummary{fold.Predict.Accuracy, fold.Predict.BalancedAcc, fold.Predict.Coverage})
		}
	}

	return json.NewEncoder(os.Stdout).Encode(out)
}

// datasetToParams round-trips a Dataset already built by an ARFF load back
// into a Params, so the demonstrated call surface is exactly engine.go's
// GenerateRules/Predict/CrossValidate rather than a second data path.
func datasetToParams(ds *rulekit.Dataset) (*rulekit.Params, error) {
	n := ds.NRows()

	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = ds.GetDecision(i) + 1
	}

	x := make([][]float64, ds.NConditionalAttributes())
	xtypes := make([]rulekit.AttributeType, ds.NConditionalAttributes())
	xnames := make([]string, ds.NConditionalAttributes())
	xlevels := make([][]string, ds.NConditionalAttributes())

	for j := 0; j < ds.NConditionalAttributes(); j++ {
		col := make([]float64, n)

		attr := ds.Attributes[j]

		for i := 0; i < n; i++ {
			v := ds.GetAttribute(i, j)
			if attr.Type == rulekit.Nominal {
				v++
			}

			col[i] = v
		}

		x[j] = col
		xtypes[j] = attr.Type
		xnames[j] = attr.Name
		xlevels[j] = attr.Levels
	}

	return &rulekit.Params{
		Y:       y,
		YName:   ds.Decision.Name,
		YLevels: ds.Decision.Levels,
		X:       x,
		XTypes:  xtypes,
		XNames:  xnames,
		XLevels: xlevels,
	}, nil
}
