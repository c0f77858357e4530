// Package rulekit induces human-readable classification rules from labeled
// tabular data using sequential-covering rule induction, and applies the
// resulting rule sets to classify new examples.
package rulekit

// Verbose, when true, makes GenerateRules print the number of induced rules
// and CrossValidateFolds print a line after each completed run.
var Verbose = false

// Browser is the command used to open a rendered diagnostic plot (see
// Plotter in diags.go).
var Browser = "firefox"
