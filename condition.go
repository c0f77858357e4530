package rulekit

import "math"

// Operator is the closed set of relational operators an ElementaryCondition
// may carry, replacing the source's base-class-plus-subclass operator
// hierarchy with a tagged enum (per the Design Notes).
type Operator int

const (
	OpEQ Operator = iota
	OpLT
	OpGE
	OpGT
	OpLE
	OpNE
)

//go:generate stringer -type=Operator

// String renders the operator using the canonical symbol from the rule
// text grammar.
func (op Operator) String() string {
	switch op {
	case OpEQ:
		return "="
	case OpLT:
		return "<"
	case OpGE:
		return ">="
	case OpGT:
		return ">"
	case OpLE:
		return "<="
	case OpNE:
		return "!="
	default:
		return "?"
	}
}

// Apply evaluates op(x, value). NaN on either side always yields false.
func (op Operator) Apply(x, value float64) bool {
	if math.IsNaN(x) || math.IsNaN(value) {
		return false
	}

	switch op {
	case OpEQ:
		return x == value
	case OpLT:
		return x < value
	case OpGE:
		return x >= value
	case OpGT:
		return x > value
	case OpLE:
		return x <= value
	case OpNE:
		return x != value
	}

	return false
}

// ElementaryCondition is a predicate attributeIndex OP value on a single
// conditional attribute column. Two conditions are equal iff all three
// fields match (value-type equality, not pointer/operator identity).
type ElementaryCondition struct {
	AttributeIndex int
	Op             Operator
	Value          float64
}

// NewElementaryCondition builds an ElementaryCondition.
func NewElementaryCondition(attributeIndex int, op Operator, value float64) ElementaryCondition {
	return ElementaryCondition{AttributeIndex: attributeIndex, Op: op, Value: value}
}

// Equal reports field-wise equality.
func (c ElementaryCondition) Equal(other ElementaryCondition) bool {
	return c.AttributeIndex == other.AttributeIndex && c.Op == other.Op && c.Value == other.Value
}

// IsSatisfied returns op(x, c.Value); x is the value of the example's
// AttributeIndex-th conditional attribute.
func (c ElementaryCondition) IsSatisfied(x float64) bool {
	return c.Op.Apply(x, c.Value)
}

// conditionCoveredBy returns the subview of v whose examples satisfy c.
func conditionCoveredBy(c ElementaryCondition, v *View) *View {
	out := make([]int, 0)

	for _, row := range v.Indices {
		if c.IsSatisfied(v.Dataset.GetAttribute(row, c.AttributeIndex)) {
			out = append(out, row)
		}
	}

	return &View{Dataset: v.Dataset, Indices: out}
}
