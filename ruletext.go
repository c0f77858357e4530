package rulekit

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders r using the rule textual grammar:
//
//	IF <cond> [ AND <cond> ]* THEN <class>
//	<cond> := <attrName> <op> <value> | <attrName> in [ <low> ; <high> )
//
// For a Numerical attribute bucket holding both a >= and a < condition, the
// pair is rendered as the "in [low;high)" sugar; every other bucket/
// condition is rendered individually. Numeric values use Go's default
// float formatting; nominal values use the decoded level string.
func (r *Rule) String(ds *Dataset) string {
	var parts []string

	for _, attrIdx := range r.order {
		attr := ds.Attributes[attrIdx]
		conds := r.buckets[attrIdx]

		if attr.Type == Numerical {
			ge, lt, hasGE, hasLT := findGELT(conds)
			if hasGE && hasLT && len(conds) == 2 {
				parts = append(parts, fmt.Sprintf("%s in [%s ; %s)", attr.Name,
					attr.Decode(ge), attr.Decode(lt)))

				continue
			}
		}

		for _, c := range conds {
			parts = append(parts, fmt.Sprintf("%s %s %s", attr.Name, c.Op.String(), attr.Decode(c.Value)))
		}
	}

	return fmt.Sprintf("IF %s THEN %s", strings.Join(parts, " AND "), ds.Decision.Decode(r.DecisionClass))
}

func findGELT(conds []ElementaryCondition) (ge, lt float64, hasGE, hasLT bool) {
	for _, c := range conds {
		switch c.Op {
		case OpGE:
			ge, hasGE = c.Value, true
		case OpLT:
			lt, hasLT = c.Value, true
		}
	}

	return
}

// ParseRule parses text in the rule textual grammar against ds's schema,
// returning a Rule equal (modulo "in [;)" canonicalization) to the one that
// produced it via String. Fails with ParseError for an unknown attribute
// name, operator, or value.
func ParseRule(ds *Dataset, text string) (*Rule, error) {
	toks := tokenizeRule(text)

	i := 0
	if i >= len(toks) || toks[i] != "IF" {
		return nil, Wrapper(ParseError, "ParseRule: expected leading IF")
	}

	i++

	rule := NewRule(0)

	for {
		if i >= len(toks) {
			return nil, Wrapper(ParseError, "ParseRule: unexpected end of input")
		}

		attrName := toks[i]
		i++

		attrIdx, attr := findAttribute(ds, attrName)
		if attr == nil {
			return nil, wrapf(ParseError, "ParseRule: unknown attribute %q", attrName)
		}

		if i < len(toks) && toks[i] == "in" {
			i++

			var err error
			if i, err = expectToken(toks, i, "["); err != nil {
				return nil, err
			}

			low, err := strconv.ParseFloat(toks[i], 64)
			if err != nil {
				return nil, wrapf(ParseError, "ParseRule: bad low bound %q", toks[i])
			}
			i++

			if i, err = expectToken(toks, i, ";"); err != nil {
				return nil, err
			}

			high, err := strconv.ParseFloat(toks[i], 64)
			if err != nil {
				return nil, wrapf(ParseError, "ParseRule: bad high bound %q", toks[i])
			}
			i++

			if i, err = expectToken(toks, i, ")"); err != nil {
				return nil, err
			}

			rule.AddCondition(NewElementaryCondition(attrIdx, OpGE, low))
			rule.AddCondition(NewElementaryCondition(attrIdx, OpLT, high))
		} else {
			if i >= len(toks) {
				return nil, Wrapper(ParseError, "ParseRule: expected operator")
			}

			opStr := toks[i]
			i++

			op, ok := parseOperatorSymbol(opStr)
			if !ok {
				return nil, wrapf(ParseError, "ParseRule: unknown operator %q", opStr)
			}

			if i >= len(toks) {
				return nil, Wrapper(ParseError, "ParseRule: expected value")
			}

			valueStr := toks[i]
			i++

			value, err := attr.Encode(valueStr)
			if err != nil {
				return nil, wrapf(ParseError, "ParseRule: bad value %q for attribute %s", valueStr, attrName)
			}

			rule.AddCondition(NewElementaryCondition(attrIdx, op, value))
		}

		if i >= len(toks) {
			return nil, Wrapper(ParseError, "ParseRule: expected AND or THEN")
		}

		switch toks[i] {
		case "AND":
			i++

			continue
		case "THEN":
			i++
		default:
			return nil, wrapf(ParseError, "ParseRule: expected AND or THEN, got %q", toks[i])
		}

		break
	}

	if i >= len(toks) {
		return nil, Wrapper(ParseError, "ParseRule: expected class")
	}

	classValue, err := ds.Decision.Encode(toks[i])
	if err != nil {
		return nil, wrapf(ParseError, "ParseRule: bad class %q", toks[i])
	}

	rule.DecisionClass = classValue

	return rule, nil
}

func expectToken(toks []string, i int, want string) (int, error) {
	if i >= len(toks) || toks[i] != want {
		return i, wrapf(ParseError, "ParseRule: expected %q", want)
	}

	return i + 1, nil
}

func parseOperatorSymbol(s string) (Operator, bool) {
	switch s {
	case "=":
		return OpEQ, true
	case "<":
		return OpLT, true
	case ">=":
		return OpGE, true
	}

	return 0, false
}

func findAttribute(ds *Dataset, name string) (int, *Attribute) {
	for i, a := range ds.Attributes {
		if a.Name == name {
			return i, a
		}
	}

	return -1, nil
}

func tokenizeRule(s string) []string {
	replacer := strings.NewReplacer("[", " [ ", ";", " ; ", ")", " ) ")

	return strings.Fields(replacer.Replace(s))
}
