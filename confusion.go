package rulekit

import "math"

// ConfusionMatrix holds weighted actual-vs-predicted counts plus a
// strictly separate per-class unclassified count. Unlike the source, which
// intermixes unclassified into some false-negative helpers, Unclassified is
// never folded into FalseNegatives here (the spec.md corrected behavior).
type ConfusionMatrix struct {
	Classes      []float64
	M            [][]float64 // M[actual][predicted]
	Unclassified []float64   // Unclassified[actual]
}

// NewConfusionMatrix allocates an empty matrix over classes.
func NewConfusionMatrix(classes []float64) *ConfusionMatrix {
	m := make([][]float64, len(classes))
	for i := range m {
		m[i] = make([]float64, len(classes))
	}

	return &ConfusionMatrix{Classes: classes, M: m, Unclassified: make([]float64, len(classes))}
}

func (cm *ConfusionMatrix) classIndex(c float64) int {
	for i, v := range cm.Classes {
		if v == c {
			return i
		}
	}

	return -1
}

// Add records one example: actual class actual, predicted predicted (NaN
// for unclassified), weighted by weight.
func (cm *ConfusionMatrix) Add(actual, predicted, weight float64) {
	ai := cm.classIndex(actual)
	if ai < 0 {
		return
	}

	if math.IsNaN(predicted) {
		cm.Unclassified[ai] += weight

		return
	}

	pi := cm.classIndex(predicted)
	if pi < 0 {
		return
	}

	cm.M[ai][pi] += weight
}

// SumOfExamples returns the total weighted example count, including
// unclassified.
func (cm *ConfusionMatrix) SumOfExamples() float64 {
	var sum float64

	for i := range cm.Classes {
		sum += cm.SumOfExamplesForClass(i) + cm.Unclassified[i]
	}

	return sum
}

// SumOfExamplesForClass returns the weighted count of actual examples of
// class index i, excluding unclassified.
func (cm *ConfusionMatrix) SumOfExamplesForClass(i int) float64 {
	var sum float64

	for _, v := range cm.M[i] {
		sum += v
	}

	return sum
}

// SumOfCorrectlyClassified returns the weighted count on the diagonal.
func (cm *ConfusionMatrix) SumOfCorrectlyClassified() float64 {
	var sum float64

	for i := range cm.Classes {
		sum += cm.M[i][i]
	}

	return sum
}

// TruePositives returns M[i][i] for class index i.
func (cm *ConfusionMatrix) TruePositives(i int) float64 { return cm.M[i][i] }

// FalseNegatives returns the weighted count of class-i examples predicted
// as something else (NOT including unclassified, per the spec.md fix).
func (cm *ConfusionMatrix) FalseNegatives(i int) float64 {
	return cm.SumOfExamplesForClass(i) - cm.M[i][i]
}

// FalsePositives returns the weighted count of other-class examples
// predicted as class i.
func (cm *ConfusionMatrix) FalsePositives(i int) float64 {
	var sum float64

	for j := range cm.Classes {
		if j != i {
			sum += cm.M[j][i]
		}
	}

	return sum
}

// TrueNegatives returns everything neither actual nor predicted as class i.
func (cm *ConfusionMatrix) TrueNegatives(i int) float64 {
	return cm.SumOfExamples() - cm.TruePositives(i) - cm.FalseNegatives(i) - cm.FalsePositives(i) - cm.Unclassified[i]
}

// SumOfUncovered returns the total weighted unclassified count.
func (cm *ConfusionMatrix) SumOfUncovered() float64 {
	var sum float64
	for _, u := range cm.Unclassified {
		sum += u
	}

	return sum
}

// Accuracy returns Sum(diag)/Sum(all, incl. unclassified).
func (cm *ConfusionMatrix) Accuracy() float64 {
	total := cm.SumOfExamples()
	if total == 0 {
		return math.NaN()
	}

	return cm.SumOfCorrectlyClassified() / total
}

// ClassAccuracy returns M[i][i] / (Sum of class-i examples + unclassified),
// NaN if the class is absent.
func (cm *ConfusionMatrix) ClassAccuracy(i int) float64 {
	denom := cm.SumOfExamplesForClass(i) + cm.Unclassified[i]
	if denom == 0 {
		return math.NaN()
	}

	return cm.M[i][i] / denom
}

// BalancedAccuracy returns the mean of the non-NaN per-class accuracies.
func (cm *ConfusionMatrix) BalancedAccuracy() float64 {
	var sum float64
	var n int

	for i := range cm.Classes {
		a := cm.ClassAccuracy(i)
		if math.IsNaN(a) {
			continue
		}

		sum += a
		n++
	}

	if n == 0 {
		return math.NaN()
	}

	return sum / float64(n)
}

// Coverage returns 1 - (unclassified weight / total weight).
func (cm *ConfusionMatrix) Coverage() float64 {
	total := cm.SumOfExamples()
	if total == 0 {
		return math.NaN()
	}

	return 1 - cm.SumOfUncovered()/total
}
