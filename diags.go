package rulekit

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
	"gonum.org/v1/gonum/stat"
)

// RuleDiagnostic summarizes one induced rule's quality distribution versus
// the dataset baseline: its confidence degree, its weighted precision and
// coverage, and the z-score of its precision relative to the apriori class
// frequency (a quick significance sanity check, not a substitute for the
// Pvalue measure).
type RuleDiagnostic struct {
	RuleText      string
	ConfidenceDegree float64
	Precision        float64
	Coverage         float64
	ZScore           float64
}

// DiagnoseRuleSet computes a RuleDiagnostic for every rule in rules against
// view, plus summary statistics (mean/stddev of precision and coverage
// across the rule set) via gonum/stat.
func DiagnoseRuleSet(view *View, ds *Dataset, rules []*Rule) ([]RuleDiagnostic, RuleSetSummary) {
	diags := make([]RuleDiagnostic, len(rules))

	precisions := make([]float64, len(rules))
	coverages := make([]float64, len(rules))

	for i, r := range rules {
		rer := EvaluateRule(view, r)

		apriori := rer.P / (rer.P + rer.N)
		precision := rer.p / (rer.p + rer.n)
		coverage := rer.p / rer.P

		n := rer.p + rer.n
		se := 0.0
		if n > 0 && apriori > 0 && apriori < 1 {
			se = math.Sqrt(apriori * (1 - apriori) / n)
		}

		z := 0.0
		if se > 0 {
			z = (precision - apriori) / se
		}

		diags[i] = RuleDiagnostic{
			RuleText:         r.String(ds),
			ConfidenceDegree: r.ConfidenceDegree,
			Precision:        precision,
			Coverage:         coverage,
			ZScore:           z,
		}

		precisions[i] = precision
		coverages[i] = coverage
	}

	summary := RuleSetSummary{}
	if len(rules) > 0 {
		summary.MeanPrecision, summary.StdDevPrecision = stat.MeanStdDev(precisions, nil)
		summary.MeanCoverage, summary.StdDevCoverage = stat.MeanStdDev(coverages, nil)
	}

	return diags, summary
}

// RuleSetSummary aggregates a rule set's precision/coverage distribution.
type RuleSetSummary struct {
	MeanPrecision   float64
	StdDevPrecision float64
	MeanCoverage    float64
	StdDevCoverage  float64
}

// PrecisionCoverageScatter builds a go-plotly scatter figure of coverage
// (x) versus precision (y) across a rule set's diagnostics, one point per
// rule, for interactive inspection of the precision/coverage tradeoff.
func PrecisionCoverageScatter(diags []RuleDiagnostic) *grob.Fig {
	sorted := append([]RuleDiagnostic(nil), diags...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Coverage < sorted[j].Coverage })

	x := make([]float64, len(sorted))
	y := make([]float64, len(sorted))
	text := make([]string, len(sorted))

	for i, d := range sorted {
		x[i] = d.Coverage
		y[i] = d.Precision
		text[i] = d.RuleText
	}

	fig := &grob.Fig{
		Data: grob.Traces{
			&grob.Scatter{
				Type: grob.TraceTypeScatter,
				X:    x,
				Y:    y,
				Text: text,
				Mode: grob.ScatterModeMarkers,
			},
		},
		Layout: &grob.Layout{
			Title:  &grob.LayoutTitle{Text: "Rule precision vs coverage"},
			Xaxis:  &grob.LayoutXaxis{Title: &grob.LayoutXaxisTitle{Text: "coverage"}},
			Yaxis:  &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: "precision"}},
		},
	}

	return fig
}

// PlotDef specifies the Layout features a diagnostic plot commonly needs.
type PlotDef struct {
	Show     bool    // Show - true = show graph in browser
	Title    string  // Title - plot title
	XTitle   string  // XTitle - x-axis title
	YTitle   string  // YTitle - y-axis title
	STitle   string  // STitle - sub-title (under the x-axis)
	Legend   bool    // Legend - true = show legend
	Height   float64 // Height - height of graph, in pixels
	Width    float64 // Width - width of graph, in pixels
	FileName string  // FileName - output file for graph (in html)
}

// Plotter renders fig to an HTML file and/or opens it in Browser, applying
// the layout conventions in pd. lay can be pre-populated with any additional
// layout options; nil is fine.
func Plotter(fig *grob.Fig, lay *grob.Layout, pd *PlotDef) error {
	pd.Title = strings.ReplaceAll(pd.Title, "\n", "<br>")
	pd.STitle = strings.ReplaceAll(pd.STitle, "\n", "<br>")
	pd.XTitle = strings.ReplaceAll(pd.XTitle, "\n", "<br>")
	pd.YTitle = strings.ReplaceAll(pd.YTitle, "\n", "<br>")

	if lay == nil {
		lay = &grob.Layout{}
	}

	if pd.Title != "" {
		lay.Title = &grob.LayoutTitle{Text: pd.Title}
	}

	if pd.YTitle != "" {
		if lay.Yaxis == nil {
			lay.Yaxis = &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: pd.YTitle}}
		} else {
			lay.Yaxis.Title = &grob.LayoutYaxisTitle{Text: pd.YTitle}
		}
		lay.Yaxis.Showline = grob.True
	}

	if pd.XTitle != "" {
		xTitle := pd.XTitle
		if pd.STitle != "" {
			xTitle += fmt.Sprintf("<br>%s", pd.STitle)
		}

		if lay.Xaxis == nil {
			lay.Xaxis = &grob.LayoutXaxis{Title: &grob.LayoutXaxisTitle{Text: xTitle}}
		} else {
			lay.Xaxis.Title = &grob.LayoutXaxisTitle{Text: xTitle}
		}
	}

	if !pd.Legend {
		lay.Showlegend = grob.False
	}

	if pd.Width > 0.0 {
		lay.Width = pd.Width
	}

	if pd.Height > 0.0 {
		lay.Height = pd.Height
	}

	fig.Layout = lay

	if pd.FileName != "" {
		offline.ToHtml(fig, pd.FileName)
	}

	if pd.Show {
		tmp := false
		if pd.FileName == "" {
			tmp = true
			pd.FileName = fmt.Sprintf("%s/rulekit-plot-%d.html", os.TempDir(), rand.Uint32())
		}

		offline.ToHtml(fig, pd.FileName)
		cmd := exec.Command(Browser, "-url", pd.FileName)

		if e := cmd.Start(); e != nil {
			return e
		}
		time.Sleep(time.Second)

		if tmp {
			if e := os.Remove(pd.FileName); e != nil {
				return e
			}
		}
	}

	return nil
}
