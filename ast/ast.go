// Package ast defines the syntax tree nodes the semantic checker
// operates on.
//
// The checker borrows nodes from the enclosing tree: it may stamp an
// expression's resolved type, and it may replace a call argument
// (the two documented rewrites: the ptrCast target and the pciMatch
// implicit cast), but it never creates or frees whole subtrees.
package ast

import (
	"github.com/tpl-lang/tpl/loc"
	"github.com/tpl-lang/tpl/types"
)

// A Node is a node of the syntax tree with location information.
type Node interface {
	Pos() loc.Pos
}

// An Expr is an expression node.
// Type returns nil until the expression is resolved;
// on success the checker stamps it exactly once.
type Expr interface {
	Node
	Type() types.Type
	SetType(types.Type)
}

type expr struct {
	pos loc.Pos
	typ types.Type
}

func (e *expr) Pos() loc.Pos         { return e.pos }
func (e *expr) Type() types.Type     { return e.typ }
func (e *expr) SetType(t types.Type) { e.typ = t }

// An Ident is a use of a name.
type Ident struct {
	expr
	Name string
}

// NewIdent returns a new identifier expression.
func NewIdent(pos loc.Pos, name string) *Ident {
	return &Ident{expr: expr{pos: pos}, Name: name}
}

// A CallExpr is a call with a callee name and ordered arguments.
type CallExpr struct {
	expr
	Fun  *Ident
	Args []Expr
}

// NewCall returns a new call expression.
func NewCall(pos loc.Pos, fun *Ident, args []Expr) *CallExpr {
	return &CallExpr{expr: expr{pos: pos}, Fun: fun, Args: args}
}

// Callee returns the callee name.
func (c *CallExpr) Callee() string { return c.Fun.Name }

// NumArgs returns the number of arguments.
func (c *CallExpr) NumArgs() int { return len(c.Args) }

// Arg returns the i'th argument.
func (c *CallExpr) Arg(i int) Expr { return c.Args[i] }

// SetArg replaces the i'th argument.
func (c *CallExpr) SetArg(i int, e Expr) { c.Args[i] = e }

// A BoolLit is a boolean literal.
type BoolLit struct {
	expr
	Val bool
}

// NewBoolLit returns a new boolean literal.
func NewBoolLit(pos loc.Pos, val bool) *BoolLit {
	return &BoolLit{expr: expr{pos: pos}, Val: val}
}

// An IntLit is an integer literal.
type IntLit struct {
	expr
	Val int64
}

// NewIntLit returns a new integer literal.
func NewIntLit(pos loc.Pos, val int64) *IntLit {
	return &IntLit{expr: expr{pos: pos}, Val: val}
}

// A FloatLit is a floating-point literal.
type FloatLit struct {
	expr
	Val float64
}

// NewFloatLit returns a new floating-point literal.
func NewFloatLit(pos loc.Pos, val float64) *FloatLit {
	return &FloatLit{expr: expr{pos: pos}, Val: val}
}

// A StringLit is a string literal.
type StringLit struct {
	expr
	Val string
}

// NewStringLit returns a new string literal.
func NewStringLit(pos loc.Pos, val string) *StringLit {
	return &StringLit{expr: expr{pos: pos}, Val: val}
}

// An Op is a unary operator.
type Op int

// The unary operators.
const (
	Deref Op = iota + 1
	Addr
	Neg
	Not
)

func (o Op) String() string {
	switch o {
	case Deref:
		return "*"
	case Addr:
		return "&"
	case Neg:
		return "-"
	case Not:
		return "!"
	default:
		panic("impossible")
	}
}

// A UnaryExpr is a unary operator applied to an operand.
//
// The call-argument grammar only admits expressions, so a pointer
// type written as an argument (the ptrCast target) parses as a
// Deref UnaryExpr; the checker rewrites it to a PointerRepr.
type UnaryExpr struct {
	expr
	Op Op
	X  Expr
}

// NewUnary returns a new unary expression.
func NewUnary(pos loc.Pos, op Op, x Expr) *UnaryExpr {
	return &UnaryExpr{expr: expr{pos: pos}, Op: op, X: x}
}

// A PointerRepr is the representation of a pointer type appearing in
// expression position. The checker substitutes it for the parsed
// Deref expression in a ptrCast call; it never comes from the parser.
type PointerRepr struct {
	expr
	Elem Expr
}

// NewPointerRepr returns a new pointer type representation.
func NewPointerRepr(pos loc.Pos, elem Expr) *PointerRepr {
	return &PointerRepr{expr: expr{pos: pos}, Elem: elem}
}

// A CastKind identifies an implicit conversion.
type CastKind int

// The implicit conversions.
const (
	// SQLBoolToBool converts a SQL Boolean value to a native bool.
	SQLBoolToBool CastKind = iota + 1
)

func (k CastKind) String() string {
	switch k {
	case SQLBoolToBool:
		return "SqlBoolToBool"
	default:
		panic("impossible")
	}
}

// An ImplicitCast is a conversion inserted by the checker.
type ImplicitCast struct {
	expr
	Cast CastKind
	X    Expr
}

// NewImplicitCast returns a new implicit cast of x to t.
func NewImplicitCast(pos loc.Pos, kind CastKind, x Expr, t types.Type) *ImplicitCast {
	c := &ImplicitCast{expr: expr{pos: pos}, Cast: kind, X: x}
	c.SetType(t)
	return c
}
