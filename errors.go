package rulekit

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel error kinds, per-component. Use errors.Is against these after
// unwrapping with Wrapper.
var (
	ErrAttribute  = errors.New("attribute error")
	ErrDataset    = errors.New("dataset error")
	ErrCondition  = errors.New("condition error")
	ErrRule       = errors.New("rule error")
	ErrQuality    = errors.New("quality measure error")
	ErrCovering   = errors.New("covering engine error")
	ErrKnowledge  = errors.New("knowledge error")
	ErrClassifier = errors.New("classifier error")
	ErrCrossVal   = errors.New("cross-validation error")
	ErrLoad       = errors.New("dataset load error")
	ErrDiags      = errors.New("diagnostics error")

	// SchemaMismatch, ShapeMismatch, ParseError and InvalidArgument are the
	// four error kinds surfaced to callers, per the error handling design.
	SchemaMismatch  = errors.New("schema mismatch")
	ShapeMismatch   = errors.New("shape mismatch")
	ParseError      = errors.New("parse error")
	InvalidArgument = errors.New("invalid argument")
)

// Wrapper annotates err with context, attributing it to one of the sentinel
// error kinds above so callers can test with errors.Is.
func Wrapper(err error, context string) error {
	if err == nil {
		return nil
	}

	return errors.Wrap(err, context)
}

// wrapf is a convenience for Wrapper with a formatted context string.
func wrapf(err error, format string, args ...any) error {
	return Wrapper(err, fmt.Sprintf(format, args...))
}
