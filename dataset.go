package rulekit

import (
	"fmt"
	"math/rand"
	"sort"
)

// Dataset owns the columnar storage of a labeled tabular dataset: one
// column per conditional attribute, a decision column, and an optional
// weight column (default weight 1.0 when absent). The decision attribute
// is always Nominal.
type Dataset struct {
	Name       string
	Attributes []*Attribute // conditional attributes, in column order
	Decision   *Attribute

	columns  [][]float64 // columns[i][row] = value of Attributes[i] at row
	decision []float64
	weights  []float64
	nRows    int
	rowsSet  bool
}

// NewDataset creates an empty dataset with the given decision attribute.
func NewDataset(name string, decision *Attribute) *Dataset {
	return &Dataset{Name: name, Decision: decision}
}

// AddAttribute appends a new conditional column. The first column added (to
// either the conditional or decision slot) establishes the dataset's row
// count; every subsequent addition must agree or AddAttribute fails with
// ShapeMismatch.
func (ds *Dataset) AddAttribute(values []float64, attr *Attribute) error {
	if err := ds.checkRows(len(values)); err != nil {
		return wrapf(err, "(*Dataset).AddAttribute: attribute %s", attr.Name)
	}

	ds.Attributes = append(ds.Attributes, attr)
	ds.columns = append(ds.columns, values)

	return nil
}

// AddDecisionColumn sets the decision column's values.
func (ds *Dataset) AddDecisionColumn(values []float64) error {
	if err := ds.checkRows(len(values)); err != nil {
		return wrapf(err, "(*Dataset).AddDecisionColumn")
	}

	ds.decision = values

	return nil
}

// AddWeights sets the per-example weight column. Fails with ShapeMismatch
// if len(weights) disagrees with the established row count.
func (ds *Dataset) AddWeights(weights []float64) error {
	if err := ds.checkRows(len(weights)); err != nil {
		return wrapf(err, "(*Dataset).AddWeights")
	}

	ds.weights = weights

	return nil
}

func (ds *Dataset) checkRows(n int) error {
	if !ds.rowsSet {
		ds.nRows = n
		ds.rowsSet = true

		return nil
	}

	if n != ds.nRows {
		return Wrapper(ShapeMismatch, fmt.Sprintf("expected %d rows, got %d", ds.nRows, n))
	}

	return nil
}

// NRows returns the dataset's row count.
func (ds *Dataset) NRows() int {
	return ds.nRows
}

// NConditionalAttributes returns the number of conditional (non-decision)
// attribute columns.
func (ds *Dataset) NConditionalAttributes() int {
	return len(ds.Attributes)
}

// GetAttribute returns the value of conditional attribute attrIndex at row.
func (ds *Dataset) GetAttribute(row, attrIndex int) float64 {
	return ds.columns[attrIndex][row]
}

// GetDecision returns the decision value at row.
func (ds *Dataset) GetDecision(row int) float64 {
	return ds.decision[row]
}

// GetWeight returns the weight at row, defaulting to 1.0 when no weight
// column was supplied.
func (ds *Dataset) GetWeight(row int) float64 {
	if ds.weights == nil {
		return 1.0
	}

	return ds.weights[row]
}

// AttributeType returns the AttributeType of conditional attribute i.
func (ds *Dataset) AttributeType(i int) AttributeType {
	return ds.Attributes[i].Type
}

// Full returns a View over every row of the dataset, in row order.
func (ds *Dataset) Full() *View {
	idx := make([]int, ds.nRows)
	for i := range idx {
		idx[i] = i
	}

	return &View{Dataset: ds, Indices: idx}
}

// View is a borrowed, lightweight reference to a Dataset plus an ordered
// list of example indices. Views never own example data; mutating the
// underlying Dataset invalidates a view's semantics but not its memory.
type View struct {
	Dataset *Dataset
	Indices []int
}

// NewView builds a View over an explicit index list.
func NewView(ds *Dataset, indices []int) *View {
	return &View{Dataset: ds, Indices: indices}
}

// Size returns the number of examples in the view.
func (v *View) Size() int {
	return len(v.Indices)
}

// At returns the dataset row index for the i-th example in the view.
func (v *View) At(i int) int {
	return v.Indices[i]
}

// Minus returns v - other: the examples in v whose index does not appear in
// other, computed by sort + sorted-merge set difference. Both views must
// reference the same Dataset. The result is NOT order-preserving, matching
// the source's std::set_difference-based implementation.
func (v *View) Minus(other *View) *View {
	a := append([]int(nil), v.Indices...)
	b := append([]int(nil), other.Indices...)
	sort.Ints(a)
	sort.Ints(b)

	out := make([]int, 0, len(a))

	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && b[j] < a[i] {
			j++
		}

		if j < len(b) && b[j] == a[i] {
			i++

			continue
		}

		out = append(out, a[i])
		i++
	}

	return &View{Dataset: v.Dataset, Indices: out}
}

// FilterByClass returns the subview whose decision value equals c.
func (v *View) FilterByClass(c float64) *View {
	out := make([]int, 0)

	for _, row := range v.Indices {
		if v.Dataset.GetDecision(row) == c {
			out = append(out, row)
		}
	}

	return &View{Dataset: v.Dataset, Indices: out}
}

// DistinctClasses returns the sorted list of decision values present in the
// view.
func (v *View) DistinctClasses() []float64 {
	seen := make(map[float64]bool)

	for _, row := range v.Indices {
		seen[v.Dataset.GetDecision(row)] = true
	}

	out := make([]float64, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}

	sort.Float64s(out)

	return out
}

// SumOfWeights returns the sum of example weights in the view.
func (v *View) SumOfWeights() float64 {
	var sum float64

	for _, row := range v.Indices {
		sum += v.Dataset.GetWeight(row)
	}

	return sum
}

// Shuffle randomizes the order of the view's index list in place.
func (v *View) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(v.Indices), func(i, j int) {
		v.Indices[i], v.Indices[j] = v.Indices[j], v.Indices[i]
	})
}

// StratifiedFolds splits the view into k folds, stratified by class: for
// each class, the class-indexed subview is shuffled then round-robin
// distributed into the k buckets sharing one running counter across all
// classes (matching the source's createStratifiedFolds). If
// everyClassInFold is true and a class has fewer examples than k, the
// scarce class is cycled (possibly repeating examples) so every fold gets
// at least one example of it. Fails with InvalidArgument when k > |v| or
// k <= 1.
func (v *View) StratifiedFolds(k int, everyClassInFold bool, rng *rand.Rand) ([]*View, error) {
	if k <= 1 || k > v.Size() {
		return nil, Wrapper(InvalidArgument, fmt.Sprintf("StratifiedFolds: invalid fold count %d for view of size %d", k, v.Size()))
	}

	folds := make([][]int, k)
	exNr := 0

	for _, c := range v.DistinctClasses() {
		classView := v.FilterByClass(c)
		classView.Shuffle(rng)

		n := classView.Size()
		if everyClassInFold && n < k {
			for j := 0; j < k; j++ {
				row := classView.At(j % n)
				folds[exNr%k] = append(folds[exNr%k], row)
				exNr++
			}

			continue
		}

		for j := 0; j < n; j++ {
			folds[exNr%k] = append(folds[exNr%k], classView.At(j))
			exNr++
		}
	}

	out := make([]*View, k)
	for i, idx := range folds {
		out[i] = &View{Dataset: v.Dataset, Indices: idx}
	}

	return out, nil
}
