package sema

import (
	"testing"

	"github.com/eaburns/pretty"

	"github.com/tpl-lang/tpl/ast"
	"github.com/tpl-lang/tpl/loc"
	"github.com/tpl-lang/tpl/types"
)

// A fixture holds a checker over a fresh compilation unit and builds
// argument expressions with pre-resolved types, standing in for the
// declarations a full program would provide.
type fixture struct {
	ctx  *types.Context
	errs *ErrorReporter
	x    *Checker
	line int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := types.NewContext()
	errs := NewErrorReporter()
	return &fixture{
		ctx:  ctx,
		errs: errs,
		x:    NewChecker(ctx, errs, Config{}),
	}
}

func (f *fixture) pos() loc.Pos {
	f.line++
	return loc.Pos{Path: "test.tpl", Line: f.line, Col: 1}
}

// ident returns an identifier already bound to the given type.
func (f *fixture) ident(name string, t types.Type) *ast.Ident {
	id := ast.NewIdent(f.pos(), name)
	id.SetType(t)
	return id
}

// ptr returns an expression of type pointer-to-k.
func (f *fixture) ptr(k types.Kind) ast.Expr {
	return f.ident("p", f.ctx.PointerTo(f.ctx.Builtin(k)))
}

// val returns an expression of builtin type k.
func (f *fixture) val(k types.Kind) ast.Expr {
	return f.ident("v", f.ctx.Builtin(k))
}

// fn returns an expression of function type with the given parameter
// types and return type.
func (f *fixture) fn(ret types.Type, params ...types.Type) ast.Expr {
	ps := make([]types.Param, len(params))
	for i, p := range params {
		ps[i] = types.Param{Name: "", Type: p}
	}
	return f.ident("fn", f.ctx.Function(ps, ret))
}

func (f *fixture) str(s string) *ast.StringLit {
	return ast.NewStringLit(f.pos(), s)
}

func (f *fixture) intLit(v int64) ast.Expr {
	return ast.NewIntLit(f.pos(), v)
}

// byteArg returns an opaque *uint8 argument.
func (f *fixture) byteArg() ast.Expr {
	return f.ident("buf", f.ctx.PointerTo(f.ctx.Builtin(types.Uint8)))
}

func (f *fixture) nilArg() ast.Expr {
	return f.ident("nil", f.ctx.Builtin(types.Nil))
}

// deref returns *elem, the syntactic form a pointer type takes in
// argument position.
func (f *fixture) deref(elem string) ast.Expr {
	return ast.NewUnary(f.pos(), ast.Deref, ast.NewIdent(f.pos(), elem))
}

func (f *fixture) call(name string, args ...ast.Expr) *ast.CallExpr {
	return ast.NewCall(f.pos(), ast.NewIdent(f.pos(), name), args)
}

// check runs the builtin checker on a call to name.
func (f *fixture) check(name string, args ...ast.Expr) *ast.CallExpr {
	call := f.call(name, args...)
	f.x.CheckBuiltinCall(call)
	return call
}

// wantOK fails the test unless the call checked cleanly with the
// given result type.
func (f *fixture) wantOK(t *testing.T, call *ast.CallExpr, want types.Type) {
	t.Helper()
	if f.errs.HasErrors() {
		t.Fatalf("%s: unexpected diagnostics:\n%s", call.Callee(), f.errs)
	}
	if call.Type() != want {
		t.Log("call:\n", pretty.String(call))
		t.Errorf("%s: type=%v, want %v", call.Callee(), call.Type(), want)
	}
}

// wantErr fails the test unless exactly one diagnostic of the given
// kind was reported and the call's type stayed unresolved.
func (f *fixture) wantErr(t *testing.T, call *ast.CallExpr, kind ErrorKind) {
	t.Helper()
	diags := f.errs.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("%s: got %d diagnostics, want 1:\n%s",
			call.Callee(), len(diags), f.errs)
	}
	if diags[0].Kind != kind {
		t.Errorf("%s: diagnostic kind=%s, want %s",
			call.Callee(), diags[0].Kind, kind)
	}
	if call.Type() != nil {
		t.Errorf("%s: type=%v, want unresolved", call.Callee(), call.Type())
	}
}

func (f *fixture) builtin(k types.Kind) types.Type {
	return f.ctx.Builtin(k)
}

func (f *fixture) pointer(k types.Kind) types.Type {
	return f.ctx.PointerTo(f.ctx.Builtin(k))
}

func (f *fixture) byteP() types.Type {
	return f.pointer(types.Uint8)
}
