package rulekit

import (
	"fmt"

	"github.com/invertedv/chutils"
	"github.com/invertedv/chutils/file"
	"github.com/invertedv/utilities"
)

// LoadSpec describes how to map a chutils-readable source's fields onto a
// Dataset's schema: which field is the decision, which fields are nominal
// (and therefore need their distinct values collected into Levels), and
// which should be skipped entirely.
type LoadSpec struct {
	DecisionField string
	NominalFields map[string]bool
	SkipFields    map[string]bool
	WeightField   string
}

// LoadFromCSV builds a Dataset by reading a delimited file through chutils'
// file reader. A field named in spec.NominalFields becomes a Nominal
// attribute, whose distinct string values are encoded into a level table as
// they are discovered (first-seen order); every other field becomes a
// Numerical attribute. The decision field is always encoded as Nominal.
func LoadFromCSV(path string, spec *LoadSpec) (*Dataset, error) {
	rdr, err := file.NewReader(path, ',', '\n', '"', 0, 1, 0, "", 0)
	if err != nil {
		return nil, wrapf(ErrLoad, "LoadFromCSV: opening %s: %v", path, err)
	}
	defer rdr.Close()

	if err := rdr.Init("", chutils.MergeTree); err != nil {
		return nil, wrapf(ErrLoad, "LoadFromCSV: inferring schema for %s: %v", path, err)
	}

	fieldNames := rdr.TableSpec().FieldList()

	decisionIdx := -1
	weightIdx := -1
	var condIdx []int
	var nominal []bool

	for i, name := range fieldNames {
		switch {
		case name == spec.DecisionField:
			decisionIdx = i
		case spec.WeightField != "" && name == spec.WeightField:
			weightIdx = i
		case spec.SkipFields[name]:
			continue
		default:
			condIdx = append(condIdx, i)
			nominal = append(nominal, spec.NominalFields[name])
		}
	}

	if decisionIdx < 0 {
		return nil, wrapf(ErrLoad, "LoadFromCSV: decision field %q not found", spec.DecisionField)
	}

	levelTables := make([]map[string]int, len(condIdx))
	for i, isNom := range nominal {
		if isNom {
			levelTables[i] = make(map[string]int)
		}
	}

	decisionLevels := make(map[string]int)

	var decisionValues []float64
	condValues := make([][]float64, len(condIdx))
	var weights []float64

	for {
		row, valid, err := rdr.Read(1, false)
		if err != nil {
			return nil, wrapf(ErrLoad, "LoadFromCSV: reading %s: %v", path, err)
		}

		if len(row) == 0 {
			break
		}

		for _, r := range row {
			decisionValues = append(decisionValues, encodeField(fmt.Sprint(r[decisionIdx]), decisionLevels))

			for i, idx := range condIdx {
				raw := fmt.Sprint(r[idx])

				if nominal[i] {
					condValues[i] = append(condValues[i], encodeField(raw, levelTables[i]))
				} else {
					condValues[i] = append(condValues[i], utilities.Str2Float(raw))
				}
			}

			if weightIdx >= 0 {
				weights = append(weights, utilities.Str2Float(fmt.Sprint(r[weightIdx])))
			}
		}

		if !valid {
			break
		}
	}

	decisionAttr := NewNominalAttribute(fieldNames[decisionIdx], levelsFromTable(decisionLevels))
	ds := NewDataset(path, decisionAttr)

	if err := ds.AddDecisionColumn(decisionValues); err != nil {
		return nil, Wrapper(err, "LoadFromCSV: decision column")
	}

	if len(weights) > 0 {
		if err := ds.AddWeights(weights); err != nil {
			return nil, Wrapper(err, "LoadFromCSV: weights")
		}
	}

	for i, idx := range condIdx {
		name := fieldNames[idx]

		var attr *Attribute
		if nominal[i] {
			attr = NewNominalAttribute(name, levelsFromTable(levelTables[i]))
		} else {
			attr = NewNumericalAttribute(name)
		}

		if err := ds.AddAttribute(condValues[i], attr); err != nil {
			return nil, wrapf(err, "LoadFromCSV: attribute %s", name)
		}
	}

	return ds, nil
}

// encodeField returns the integer level index of raw within table,
// assigning it the next index on first occurrence.
func encodeField(raw string, table map[string]int) float64 {
	if idx, ok := table[raw]; ok {
		return float64(idx)
	}

	idx := len(table)
	table[raw] = idx

	return float64(idx)
}

// levelsFromTable renders a raw->index table back into an ordered level
// slice indexable by the encoded float64 values.
func levelsFromTable(table map[string]int) []string {
	out := make([]string, len(table))
	for raw, idx := range table {
		out[idx] = raw
	}

	return out
}
