// Package sema implements semantic checking of builtin intrinsic
// calls: calls that bind to the vectorized runtime primitives
// (table scanners, hash tables, sorters, thread-local state) rather
// than to user-defined functions.
//
// Checking a call either stamps its resolved type or reports exactly
// one diagnostic and leaves the type unresolved. Checking never
// aborts the compilation unit.
package sema

import (
	"fmt"

	"github.com/tpl-lang/tpl/ast"
	"github.com/tpl-lang/tpl/types"
)

// Config are configuration parameters for the checker.
type Config struct {
	// Trace is whether to enable debug tracing.
	Trace bool
}

// A Checker type-checks builtin calls against one compilation unit's
// type context, accumulating diagnostics in its reporter.
// It is single-threaded and non-reentrant.
type Checker struct {
	ctx    *types.Context
	errs   *ErrorReporter
	cfg    Config
	indent string
}

// NewChecker returns a checker over the given type context,
// reporting into errs.
func NewChecker(ctx *types.Context, errs *ErrorReporter, cfg Config) *Checker {
	return &Checker{ctx: ctx, errs: errs, cfg: cfg}
}

// Context returns the checker's type context.
func (x *Checker) Context() *types.Context { return x.ctx }

// Reporter returns the checker's error reporter.
func (x *Checker) Reporter() *ErrorReporter { return x.errs }

func (x *Checker) builtinType(k types.Kind) types.Type {
	return x.ctx.Builtin(k)
}

func (x *Checker) pointerTo(k types.Kind) types.Type {
	return x.ctx.PointerTo(x.ctx.Builtin(k))
}

// Resolve resolves an expression's type, reporting a diagnostic and
// returning nil on failure. An already-stamped expression resolves
// to its stamped type; resolution is otherwise limited to the shapes
// a builtin call argument can take (the general expression checker
// owns everything else).
func (x *Checker) Resolve(e ast.Expr) types.Type {
	if e.Type() != nil {
		return e.Type()
	}
	defer x.tr("Resolve(%T)", e)()
	switch e := e.(type) {
	case *ast.BoolLit:
		e.SetType(x.builtinType(types.Bool))
	case *ast.IntLit:
		e.SetType(x.builtinType(types.Int32))
	case *ast.FloatLit:
		e.SetType(x.builtinType(types.Float32))
	case *ast.StringLit:
		e.SetType(x.ctx.StringType())
	case *ast.UnaryExpr:
		return x.resolveUnary(e)
	case *ast.PointerRepr:
		return x.resolvePointerRepr(e)
	case *ast.Ident:
		// An unbound identifier. Binding is the general checker's
		// job; by the time a builtin call is checked every identifier
		// argument is either bound or an error.
		x.errs.Report(e.Pos(), UnresolvedExpression,
			"undefined: %s", e.Name)
		return nil
	default:
		x.errs.Report(e.Pos(), UnresolvedExpression,
			"cannot resolve expression")
		return nil
	}
	return e.Type()
}

func (x *Checker) resolveUnary(e *ast.UnaryExpr) types.Type {
	switch e.Op {
	case ast.Addr:
		t := x.Resolve(e.X)
		if t == nil {
			return nil
		}
		e.SetType(x.ctx.PointerTo(t))
	case ast.Deref:
		t := x.Resolve(e.X)
		if t == nil {
			return nil
		}
		p := types.Pointee(t)
		if p == nil {
			x.errs.Report(e.Pos(), UnresolvedExpression,
				"cannot dereference non-pointer type %s", t)
			return nil
		}
		e.SetType(p)
	case ast.Not:
		t := x.Resolve(e.X)
		if t == nil {
			return nil
		}
		if !types.IsBool(t) {
			x.errs.Report(e.Pos(), UnresolvedExpression,
				"operator ! expects a bool, got %s", t)
			return nil
		}
		e.SetType(t)
	case ast.Neg:
		t := x.Resolve(e.X)
		if t == nil {
			return nil
		}
		if !types.IsInteger(t) && !types.IsFloat(t) {
			x.errs.Report(e.Pos(), UnresolvedExpression,
				"operator - expects a number, got %s", t)
			return nil
		}
		e.SetType(t)
	default:
		panic("impossible")
	}
	return e.Type()
}

// resolvePointerRepr resolves a pointer type written in expression
// position. The element must be an identifier naming a builtin type.
func (x *Checker) resolvePointerRepr(e *ast.PointerRepr) types.Type {
	id, ok := e.Elem.(*ast.Ident)
	if !ok {
		x.errs.Report(e.Pos(), BadCastTarget,
			"cast target is not a type name")
		return nil
	}
	t := x.ctx.Lookup(id.Name)
	if t == nil {
		x.errs.Report(e.Pos(), BadCastTarget,
			"%s is not a type", id.Name)
		return nil
	}
	id.SetType(t)
	e.SetType(x.ctx.PointerTo(t))
	return e.Type()
}

// checkArgCount reports an ArityMismatch unless the call has exactly
// n arguments.
func (x *Checker) checkArgCount(call *ast.CallExpr, n int) bool {
	if call.NumArgs() != n {
		x.errs.Report(call.Pos(), ArityMismatch,
			"%s expects %d arguments, got %d",
			call.Callee(), n, call.NumArgs())
		return false
	}
	return true
}

// checkArgCountAtLeast reports an ArityTooFew unless the call has at
// least n arguments.
func (x *Checker) checkArgCountAtLeast(call *ast.CallExpr, n int) bool {
	if call.NumArgs() < n {
		x.errs.Report(call.Pos(), ArityTooFew,
			"%s expects at least %d arguments, got %d",
			call.Callee(), n, call.NumArgs())
		return false
	}
	return true
}

// reportIncorrectArg reports an IncorrectArgumentType for argument
// idx. expected is a types.Type or a descriptive string.
func (x *Checker) reportIncorrectArg(call *ast.CallExpr, idx int, expected interface{}) {
	x.errs.Report(call.Pos(), IncorrectArgumentType,
		"%s expects argument %d to be of type %v, got %s",
		call.Callee(), idx, expected, call.Arg(idx).Type())
}

// implCastToType wraps e in an implicit cast to t.
func (x *Checker) implCastToType(e ast.Expr, kind ast.CastKind, t types.Type) ast.Expr {
	return ast.NewImplicitCast(e.Pos(), kind, e, t)
}

func isPointerToSQLValue(t types.Type) bool {
	if p := types.Pointee(t); p != nil {
		return types.IsSQLValue(p)
	}
	return false
}

func isPointerToAggregatorValue(t types.Type) bool {
	if p := types.Pointee(t); p != nil {
		return types.IsSQLAggregate(p)
	}
	return false
}

func allFunctions(ts ...types.Type) bool {
	for _, t := range ts {
		if !types.IsFunction(t) {
			return false
		}
	}
	return true
}

// The argument to the returned function, if any, is ignored; tr
// exists to bracket a checking step in the trace output.
func (x *Checker) tr(f string, vs ...interface{}) func(...interface{}) {
	if !x.cfg.Trace {
		return func(...interface{}) {}
	}
	x.log(f, vs...)
	olddent := x.indent
	x.indent += "---"
	return func(...interface{}) { x.indent = olddent }
}

func (x *Checker) log(f string, vs ...interface{}) {
	if !x.cfg.Trace {
		return
	}
	fmt.Print(x.indent)
	fmt.Printf(f, vs...)
	fmt.Println("")
}
