package types

import "strconv"

// A Context owns and interns all types for one compilation unit.
// Its lifetime is the lifetime of the unit; it is not safe for
// concurrent use while types are still being created.
type Context struct {
	builtins [numKinds]BuiltinType
	str      StringType
	ptrs     map[Type]*PointerType
	funcs    map[string]*FunctionType
}

// NewContext returns a new, empty Context.
func NewContext() *Context {
	x := &Context{
		ptrs:  make(map[Type]*PointerType),
		funcs: make(map[string]*FunctionType),
	}
	for k := Kind(1); k < numKinds; k++ {
		x.builtins[k] = BuiltinType{kind: k}
	}
	return x
}

// Builtin returns the canonical instance of the builtin type
// of the given kind.
func (x *Context) Builtin(k Kind) *BuiltinType {
	if k <= 0 || k >= numKinds {
		panic("bad kind " + strconv.Itoa(int(k)))
	}
	return &x.builtins[k]
}

// StringType returns the canonical string type.
func (x *Context) StringType() *StringType { return &x.str }

// PointerTo returns the canonical pointer type with element type elem.
func (x *Context) PointerTo(elem Type) *PointerType {
	if p, ok := x.ptrs[elem]; ok {
		return p
	}
	p := &PointerType{elem: elem}
	x.ptrs[elem] = p
	return p
}

// Function returns the canonical function type with the given
// parameters and return type.
func (x *Context) Function(params []Param, ret Type) *FunctionType {
	t := &FunctionType{params: params, ret: ret}
	key := t.String()
	if f, ok := x.funcs[key]; ok {
		return f
	}
	x.funcs[key] = t
	return t
}

// Struct returns a new struct type with the given fields.
// Struct types are not interned; each call returns a distinct type.
func (x *Context) Struct(fields []Field) *StructType {
	return &StructType{fields: fields}
}

// Lookup returns the type with the given name, or nil if the name
// does not name a builtin type.
func (x *Context) Lookup(name string) Type {
	if name == "string" {
		return x.StringType()
	}
	if k, ok := kindByName[name]; ok {
		return x.Builtin(k)
	}
	return nil
}
