// Package types defines the type representation of the TPL compiler.
//
// Every Type is interned by a Context, so two types are equal
// if and only if they are the same pointer.
package types

import "strings"

// A Type is the semantic type of an expression.
type Type interface {
	// String returns a human-readable representation of the type.
	String() string

	isType()
}

// A BuiltinType is a type known to the compiler by its Kind:
// a native primitive, a SQL value or aggregator type,
// or an opaque runtime kind.
type BuiltinType struct {
	kind Kind
}

func (t *BuiltinType) Kind() Kind     { return t.kind }
func (t *BuiltinType) String() string { return t.kind.String() }
func (t *BuiltinType) isType()        {}

// A StringType is the type of a string literal.
type StringType struct{}

func (t *StringType) String() string { return "string" }
func (t *StringType) isType()        {}

// A PointerType is a pointer to some element type.
type PointerType struct {
	elem Type
}

// Elem returns the pointed-to type. It is never nil.
func (t *PointerType) Elem() Type     { return t.elem }
func (t *PointerType) String() string { return "*" + t.elem.String() }
func (t *PointerType) isType()        {}

// A Param is a single parameter of a function type.
type Param struct {
	Name string
	Type Type
}

// A FunctionType is the type of a function:
// an ordered list of parameters and a return type.
type FunctionType struct {
	params []Param
	ret    Type
}

func (t *FunctionType) NumParams() int { return len(t.params) }
func (t *FunctionType) Params() []Param { return t.params }
func (t *FunctionType) Ret() Type       { return t.ret }

func (t *FunctionType) String() string {
	var s strings.Builder
	s.WriteString("func(")
	for i, p := range t.params {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(p.Type.String())
	}
	s.WriteString(") ")
	s.WriteString(t.ret.String())
	return s.String()
}

func (t *FunctionType) isType() {}

// A Field is a single field of a struct type.
type Field struct {
	Name string
	Type Type
}

// A StructType is an ordered collection of named fields.
// Struct types pass through the builtin checker unmodified.
type StructType struct {
	fields []Field
}

func (t *StructType) Fields() []Field { return t.fields }

func (t *StructType) String() string {
	var s strings.Builder
	s.WriteString("struct{")
	for i, f := range t.fields {
		if i > 0 {
			s.WriteString("; ")
		}
		s.WriteString(f.Name)
		s.WriteString(" ")
		s.WriteString(f.Type.String())
	}
	s.WriteString("}")
	return s.String()
}

func (t *StructType) isType() {}

// Pointee returns the pointed-to type if t is a pointer,
// and nil otherwise.
func Pointee(t Type) Type {
	if p, ok := t.(*PointerType); ok {
		return p.Elem()
	}
	return nil
}

// IsBuiltin reports whether t is the builtin type of kind k.
func IsBuiltin(t Type, k Kind) bool {
	b, ok := t.(*BuiltinType)
	return ok && b.kind == k
}

// IsPointerTo reports whether t is a pointer to the builtin type
// of kind k.
func IsPointerTo(t Type, k Kind) bool {
	p := Pointee(t)
	return p != nil && IsBuiltin(p, k)
}

// IsPointer reports whether t is any pointer type.
func IsPointer(t Type) bool {
	_, ok := t.(*PointerType)
	return ok
}

// IsFunction reports whether t is a function type.
func IsFunction(t Type) bool {
	_, ok := t.(*FunctionType)
	return ok
}

// IsString reports whether t is the string type.
func IsString(t Type) bool {
	_, ok := t.(*StringType)
	return ok
}

// IsInteger reports whether t is a native integer type.
func IsInteger(t Type) bool {
	b, ok := t.(*BuiltinType)
	return ok && b.kind.IsInteger()
}

// IsFloat reports whether t is a native floating-point type.
func IsFloat(t Type) bool {
	b, ok := t.(*BuiltinType)
	return ok && b.kind.IsFloat()
}

// IsBool reports whether t is the native bool type.
func IsBool(t Type) bool { return IsBuiltin(t, Bool) }

// IsNil reports whether t is the nil type.
func IsNil(t Type) bool { return IsBuiltin(t, Nil) }

// IsSQLValue reports whether t is a SQL value type.
func IsSQLValue(t Type) bool {
	b, ok := t.(*BuiltinType)
	return ok && b.kind.IsSQLValue()
}

// IsSQLAggregate reports whether t is a SQL aggregator value type.
func IsSQLAggregate(t Type) bool {
	b, ok := t.(*BuiltinType)
	return ok && b.kind.IsSQLAggregate()
}
