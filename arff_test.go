package rulekit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toyARFF = `% a toy relation
@RELATION toy

@ATTRIBUTE x0 numeric
@ATTRIBUTE x1 {a,b}
@ATTRIBUTE class {neg,pos}

@DATA
1,a,neg
2,a,neg
8,b,pos
9,b,pos
`

func TestLoadARFF_ParsesAttributesAndRows(t *testing.T) {
	ds, err := LoadARFF(strings.NewReader(toyARFF))
	require.NoError(t, err)

	view := ds.Full()
	assert.Equal(t, 4, view.Size())
	assert.Equal(t, []float64{0, 1}, view.DistinctClasses())
}

func TestLoadARFF_AcceptsWhitespaceDelimitedRows(t *testing.T) {
	whitespaceARFF := `@RELATION toy

@ATTRIBUTE x0 numeric
@ATTRIBUTE x1 {a,b}
@ATTRIBUTE class {neg,pos}

@DATA
1 a neg
2 a neg
8 b pos
9 b pos
`

	ds, err := LoadARFF(strings.NewReader(whitespaceARFF))
	require.NoError(t, err)

	view := ds.Full()
	assert.Equal(t, 4, view.Size())
	assert.Equal(t, []float64{0, 1}, view.DistinctClasses())
}

func TestLoadARFF_RejectsRowWithWrongFieldCount(t *testing.T) {
	bad := toyARFF + "1,a\n"

	_, err := LoadARFF(strings.NewReader(bad))
	assert.ErrorIs(t, err, ParseError)
}

func TestLoadARFF_RejectsUnrecognizedDirective(t *testing.T) {
	_, err := LoadARFF(strings.NewReader("@NONSENSE foo\n"))
	assert.ErrorIs(t, err, ParseError)
}
