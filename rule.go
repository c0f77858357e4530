package rulekit

// Rule is a conjunction of elementary conditions, grouped into one bucket
// per conditional attribute index (a bucket may be empty or absent),
// implying DecisionClass. A rule with no conditions covers every example.
type Rule struct {
	DecisionClass    float64
	ConfidenceDegree float64

	// buckets[attributeIndex] holds the conditions on that attribute, in
	// the order they were added.
	buckets map[int][]ElementaryCondition
	// order preserves the sequence in which attribute indices were first
	// touched, so NumConditions/ for-each iteration is deterministic.
	order []int
}

// NewRule creates an empty rule for decisionClass.
func NewRule(decisionClass float64) *Rule {
	return &Rule{DecisionClass: decisionClass, buckets: make(map[int][]ElementaryCondition)}
}

// Clone returns a deep copy of r.
func (r *Rule) Clone() *Rule {
	out := NewRule(r.DecisionClass)
	out.ConfidenceDegree = r.ConfidenceDegree
	out.order = append([]int(nil), r.order...)

	for attrIdx, conds := range r.buckets {
		out.buckets[attrIdx] = append([]ElementaryCondition(nil), conds...)
	}

	return out
}

// AddCondition appends c to the bucket for c.AttributeIndex, unconditionally.
func (r *Rule) AddCondition(c ElementaryCondition) {
	if _, ok := r.buckets[c.AttributeIndex]; !ok {
		r.order = append(r.order, c.AttributeIndex)
	}

	r.buckets[c.AttributeIndex] = append(r.buckets[c.AttributeIndex], c)
}

// AddConditionAndOptimize appends c, folding redundant `<`/`>=` conditions:
// if the bucket already holds a same-operator condition d with
// op(d.Value, c.Value) == true, d is stricter and is kept (c is discarded);
// if op(c.Value, d.Value) == true, c is stricter and replaces d; otherwise
// c is appended. Equality conditions are never coalesced.
func (r *Rule) AddConditionAndOptimize(c ElementaryCondition) {
	if c.Op != OpLT && c.Op != OpGE {
		r.AddCondition(c)

		return
	}

	conds := r.buckets[c.AttributeIndex]
	for i, d := range conds {
		if d.Op != c.Op {
			continue
		}

		if c.Op.Apply(d.Value, c.Value) {
			// d is at least as strict as c; keep d.
			return
		}

		if c.Op.Apply(c.Value, d.Value) {
			conds[i] = c

			return
		}
	}

	r.AddCondition(c)
}

// RemoveCondition removes the first condition equal to c. Reports whether
// a condition was removed.
func (r *Rule) RemoveCondition(c ElementaryCondition) bool {
	conds := r.buckets[c.AttributeIndex]

	for i, d := range conds {
		if d.Equal(c) {
			r.buckets[c.AttributeIndex] = append(conds[:i], conds[i+1:]...)
			if len(r.buckets[c.AttributeIndex]) == 0 {
				delete(r.buckets, c.AttributeIndex)
				r.removeFromOrder(c.AttributeIndex)
			}

			return true
		}
	}

	return false
}

func (r *Rule) removeFromOrder(attrIdx int) {
	for i, idx := range r.order {
		if idx == attrIdx {
			r.order = append(r.order[:i], r.order[i+1:]...)

			return
		}
	}
}

// Conditions returns every condition in the rule, attribute-bucket order
// then insertion order within a bucket.
func (r *Rule) Conditions() []ElementaryCondition {
	out := make([]ElementaryCondition, 0, len(r.order))

	for _, attrIdx := range r.order {
		out = append(out, r.buckets[attrIdx]...)
	}

	return out
}

// ConditionsForAttribute returns the conditions on attrIndex.
func (r *Rule) ConditionsForAttribute(attrIndex int) []ElementaryCondition {
	return r.buckets[attrIndex]
}

// NumConditions returns the total number of elementary conditions in r.
func (r *Rule) NumConditions() int {
	n := 0
	for _, attrIdx := range r.order {
		n += len(r.buckets[attrIdx])
	}

	return n
}

// ContainsCondition reports whether r already has a condition equal to c.
func (r *Rule) ContainsCondition(c ElementaryCondition) bool {
	for _, d := range r.buckets[c.AttributeIndex] {
		if d.Equal(c) {
			return true
		}
	}

	return false
}

// Covers reports whether example row in ds satisfies every condition of r
// (logical AND across buckets and conditions). A rule with no conditions
// covers everything.
func (r *Rule) Covers(ds *Dataset, row int) bool {
	for _, attrIdx := range r.order {
		x := ds.GetAttribute(row, attrIdx)

		for _, c := range r.buckets[attrIdx] {
			if !c.IsSatisfied(x) {
				return false
			}
		}
	}

	return true
}

// CoveredBy returns the subview of v whose examples satisfy r.
func (r *Rule) CoveredBy(v *View) *View {
	out := make([]int, 0)

	for _, row := range v.Indices {
		if r.Covers(v.Dataset, row) {
			out = append(out, row)
		}
	}

	return &View{Dataset: v.Dataset, Indices: out}
}
