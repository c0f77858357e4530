package rulekit

import (
	"bufio"
	"io"
	"strings"
)

// LoadARFF parses a Weka-style ARFF text stream into a Dataset, with the
// final declared attribute treated as the decision attribute. Supported
// grammar:
//
//	% comment lines, anywhere
//	@RELATION <name>
//	@ATTRIBUTE <name> {<level>,<level>,...}   -- nominal
//	@ATTRIBUTE <name> numeric                 -- numerical
//	@DATA
//	<value>,<value>,...                       -- one row per line, "?"/NA missing
//
// Directive keywords are matched case-insensitively.
func LoadARFF(r io.Reader) (*Dataset, error) {
	scanner := bufio.NewScanner(r)

	var relation string
	var names []string
	var types []AttributeType
	var levels [][]string
	var rows [][]string
	inData := false

	for scanner.Scan() {
		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}

		if inData {
			rows = append(rows, splitARFFRow(line))

			continue
		}

		switch {
		case hasDirective(line, "@relation"):
			relation = strings.TrimSpace(line[len("@relation"):])
		case hasDirective(line, "@attribute"):
			name, typ, lvls, err := parseARFFAttribute(line)
			if err != nil {
				return nil, err
			}

			names = append(names, name)
			types = append(types, typ)
			levels = append(levels, lvls)
		case hasDirective(line, "@data"):
			inData = true
		default:
			return nil, wrapf(ParseError, "LoadARFF: unrecognized line %q", line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, Wrapper(ParseError, "LoadARFF: reading input")
	}

	if len(names) < 1 {
		return nil, Wrapper(ParseError, "LoadARFF: no attributes declared")
	}

	return buildARFFDataset(relation, names, types, levels, rows)
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '%'); i >= 0 {
		line = line[:i]
	}

	return strings.TrimSpace(line)
}

func hasDirective(line, directive string) bool {
	return len(line) >= len(directive) && strings.EqualFold(line[:len(directive)], directive)
}

func parseARFFAttribute(line string) (name string, typ AttributeType, levels []string, err error) {
	fields := strings.Fields(line[len("@attribute"):])
	if len(fields) < 2 {
		return "", 0, nil, wrapf(ParseError, "LoadARFF: malformed @ATTRIBUTE line %q", line)
	}

	name = fields[0]
	rest := strings.TrimSpace(strings.Join(fields[1:], " "))

	if strings.EqualFold(rest, "numeric") || strings.EqualFold(rest, "real") || strings.EqualFold(rest, "integer") {
		return name, Numerical, nil, nil
	}

	if !strings.HasPrefix(rest, "{") || !strings.HasSuffix(rest, "}") {
		return "", 0, nil, wrapf(ParseError, "LoadARFF: unrecognized attribute type %q for %s", rest, name)
	}

	inner := rest[1 : len(rest)-1]

	var lvls []string
	for _, l := range strings.Split(inner, ",") {
		lvls = append(lvls, strings.TrimSpace(l))
	}

	return name, Nominal, lvls, nil
}

func splitARFFRow(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields
}

func buildARFFDataset(relation string, names []string, types []AttributeType, levels [][]string, rows [][]string) (*Dataset, error) {
	n := len(names)
	decisionCol := n - 1

	decision := NewNominalAttribute(names[decisionCol], levels[decisionCol])
	ds := NewDataset(relation, decision)

	columns := make([][]float64, n)
	for i := range columns {
		columns[i] = make([]float64, len(rows))
	}

	for r, row := range rows {
		if len(row) != n {
			return nil, wrapf(ParseError, "LoadARFF: row %d has %d fields, expected %d", r, len(row), n)
		}

		for c := 0; c < n; c++ {
			attr := &Attribute{Name: names[c], Type: types[c], Levels: levels[c]}

			v, err := attr.Encode(row[c])
			if err != nil {
				return nil, wrapf(err, "LoadARFF: row %d, attribute %s", r, names[c])
			}

			columns[c][r] = v
		}
	}

	if err := ds.AddDecisionColumn(columns[decisionCol]); err != nil {
		return nil, Wrapper(err, "LoadARFF: decision column")
	}

	for i := 0; i < decisionCol; i++ {
		attr := NewNumericalAttribute(names[i])
		if types[i] == Nominal {
			attr = NewNominalAttribute(names[i], levels[i])
		}

		if err := ds.AddAttribute(columns[i], attr); err != nil {
			return nil, wrapf(err, "LoadARFF: attribute %s", names[i])
		}
	}

	return ds, nil
}
