package sema

import (
	"fmt"
	"strings"

	"github.com/tpl-lang/tpl/loc"
)

// An ErrorKind classifies a diagnostic.
type ErrorKind int

// The diagnostic kinds.
const (
	UnknownBuiltin ErrorKind = iota + 1
	ArityMismatch
	ArityTooFew
	IncorrectArgumentType
	NotASQLAggregate
	BadEqualityFunctionShape
	BadComparisonFunctionShape
	BadScanFunctionShape
	BadCastTarget
	BadHashArgument
	InvalidSQLConversion
	UnresolvedExpression
)

var errorKindNames = map[ErrorKind]string{
	UnknownBuiltin:             "UnknownBuiltin",
	ArityMismatch:              "ArityMismatch",
	ArityTooFew:                "ArityTooFew",
	IncorrectArgumentType:      "IncorrectArgumentType",
	NotASQLAggregate:           "NotASQLAggregate",
	BadEqualityFunctionShape:   "BadEqualityFunctionShape",
	BadComparisonFunctionShape: "BadComparisonFunctionShape",
	BadScanFunctionShape:       "BadScanFunctionShape",
	BadCastTarget:              "BadCastTarget",
	BadHashArgument:            "BadHashArgument",
	InvalidSQLConversion:       "InvalidSQLConversion",
	UnresolvedExpression:       "UnresolvedExpression",
}

func (k ErrorKind) String() string {
	if n, ok := errorKindNames[k]; ok {
		return n
	}
	panic("impossible")
}

// A Diagnostic is a single positioned error.
// Diagnostics never abort checking; they accumulate in the reporter
// in source-traversal order.
type Diagnostic struct {
	Pos  loc.Pos
	Kind ErrorKind
	Msg  string
}

func (d *Diagnostic) Error() string {
	return d.Pos.String() + ": " + d.Msg
}

// An ErrorReporter accumulates diagnostics for one compilation unit.
/// It is append-only: diagnostics are never mutated or removed, and
// their order is the order they were reported in.
type ErrorReporter struct {
	diags []Diagnostic
}

// NewErrorReporter returns a new, empty reporter.
func NewErrorReporter() *ErrorReporter {
	return &ErrorReporter{}
}

// Report appends a diagnostic.
func (r *ErrorReporter) Report(pos loc.Pos, kind ErrorKind, f string, vs ...interface{}) {
	r.diags = append(r.diags, Diagnostic{
		Pos:  pos,
		Kind: kind,
		Msg:  fmt.Sprintf(f, vs...),
	})
}

// HasErrors reports whether any diagnostic was reported.
func (r *ErrorReporter) HasErrors() bool { return len(r.diags) > 0 }

// Diagnostics returns the accumulated diagnostics in report order.
func (r *ErrorReporter) Diagnostics() []Diagnostic { return r.diags }

// Errors returns the diagnostics as errors, in report order.
func (r *ErrorReporter) Errors() []error {
	var errs []error
	for i := range r.diags {
		errs = append(errs, &r.diags[i])
	}
	return errs
}

func (r *ErrorReporter) String() string {
	var s strings.Builder
	for i := range r.diags {
		s.WriteString(r.diags[i].Error())
		s.WriteRune('\n')
	}
	return s.String()
}
