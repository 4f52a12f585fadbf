// Copyright (C) 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

// Type is implemented by every entity that denotes a C++ type: builtins,
// pointers, references, arrays, function types, typedefs, dependent names
// and records. A Record implements Type directly rather than owning a
// separate record_type entity the way the original does through virtual
// inheritance; see the "record type merge" note in the design ledger for
// why that simplification is safe in Go.
type Type interface {
	Entity

	// TypeName returns a human-readable spelling of the type, built
	// recursively from its constituents (e.g. "const Foo *").
	TypeName() string

	isType()
}

// typeBase is embedded by every concrete Type so that isType is
// unexported and the Type interface cannot be satisfied from outside this
// package.
type typeBase struct {
	base
}

func (*typeBase) isType() {}

// BuiltinKind enumerates the fixed set of fundamental C++ types. Unlike
// every other Type, builtins are not created by a converter; the
// CodeModel constructs exactly one instance of each on construction and
// hands out shared pointers to them, since they have no substructure to
// deduplicate.
type BuiltinKind int

const (
	BuiltinVoid BuiltinKind = iota
	BuiltinBool
	BuiltinChar
	BuiltinSignedChar
	BuiltinUnsignedChar
	BuiltinShort
	BuiltinUnsignedShort
	BuiltinInt
	BuiltinUnsignedInt
	BuiltinLong
	BuiltinUnsignedLong
	BuiltinLongLong
	BuiltinUnsignedLongLong
	BuiltinFloat
	BuiltinDouble
	BuiltinLongDouble
	BuiltinNullptr
)

var builtinNames = map[BuiltinKind]string{
	BuiltinVoid:              "void",
	BuiltinBool:              "bool",
	BuiltinChar:              "char",
	BuiltinSignedChar:        "signed char",
	BuiltinUnsignedChar:      "unsigned char",
	BuiltinShort:             "short",
	BuiltinUnsignedShort:     "unsigned short",
	BuiltinInt:               "int",
	BuiltinUnsignedInt:       "unsigned int",
	BuiltinLong:              "long",
	BuiltinUnsignedLong:      "unsigned long",
	BuiltinLongLong:          "long long",
	BuiltinUnsignedLongLong:  "unsigned long long",
	BuiltinFloat:             "float",
	BuiltinDouble:            "double",
	BuiltinLongDouble:        "long double",
	BuiltinNullptr:           "decltype(nullptr)",
}

// Builtin is a fundamental type such as int or bool.
type Builtin struct {
	typeBase
	Kind BuiltinKind
}

// TypeName implements Type.
func (b *Builtin) TypeName() string { return builtinNames[b.Kind] }

// CVQualifiers records the const/volatile qualifiers a QualType adds on
// top of an unqualified Type.
type CVQualifiers struct {
	Const    bool
	Volatile bool
}

// None reports whether neither qualifier is set.
func (q CVQualifiers) None() bool { return !q.Const && !q.Volatile }

// QualType pairs an unqualified Type with cv-qualifiers, the way every
// reference to a type inside the model is actually stored (as a field,
// parameter, return type, pointee, ...). QualType itself is a value type,
// not an Entity: the qualifiers belong to the place the type is used, not
// to the type being referred to.
type QualType struct {
	Base  Type
	Quals CVQualifiers
}

// Unqualified builds a QualType with no cv-qualifiers.
func Unqualified(t Type) QualType { return QualType{Base: t} }

// TypeName renders the qualified spelling, e.g. "const int".
func (q QualType) TypeName() string {
	name := ""
	if q.Quals.Const {
		name += "const "
	}
	if q.Quals.Volatile {
		name += "volatile "
	}
	if q.Base != nil {
		name += q.Base.TypeName()
	}
	return name
}

// Pointer is a pointee-qualified pointer type: `T *` or `const T *`.
type Pointer struct {
	typeBase
	Pointee QualType
}

func (p *Pointer) TypeName() string { return p.Pointee.TypeName() + " *" }

// LValueReference is `T &`.
type LValueReference struct {
	typeBase
	Referee QualType
}

func (r *LValueReference) TypeName() string { return r.Referee.TypeName() + " &" }

// RValueReference is `T &&`.
type RValueReference struct {
	typeBase
	Referee QualType
}

func (r *RValueReference) TypeName() string { return r.Referee.TypeName() + " &&" }

// Array is a constant-bound array type `T[N]`. A value of -1 for Size
// denotes an incomplete array bound (`T[]`).
type Array struct {
	typeBase
	Element QualType
	Size    int64
}

func (a *Array) TypeName() string {
	name := a.Element.TypeName() + "["
	if a.Size >= 0 {
		name += itoa(a.Size)
	}
	return name + "]"
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// FunctionType is the type of a function: its parameter and return types,
// independent of any particular named function or method that has this
// type. Used for function pointers and for std::function-like contexts.
type FunctionType struct {
	typeBase
	Return     QualType
	Params     []QualType
	Variadic   bool
}

func (f *FunctionType) TypeName() string {
	name := f.Return.TypeName() + "("
	for i, p := range f.Params {
		if i > 0 {
			name += ", "
		}
		name += p.TypeName()
	}
	if f.Variadic {
		if len(f.Params) > 0 {
			name += ", "
		}
		name += "..."
	}
	return name + ")"
}

// Typedef is a named alias for another type (`typedef`/`using`). It is a
// NamedEntity as well as a Type: a typedef both denotes a type (its
// Underlying) and is itself declared into a context under a name.
type Typedef struct {
	typeBase
	Named
	Underlying QualType
}

func (t *Typedef) TypeName() string { return t.Name() }

// NewTypedef creates and declares a typedef named name under parent,
// aliasing underlying.
func NewTypedef(cm *CodeModel, parent Context, name string, underlying QualType) *Typedef {
	t := &Typedef{Named: Named(name), Underlying: underlying}
	t.id = cm.nextID()
	adopt(parent, t)
	use(t, underlying.Base)
	return t
}

// DecltypeType carries an opaque expression token the front-end could not
// (or was not asked to) resolve to a concrete type. It is a dependent
// placeholder that keeps the spelled expression text verbatim in Expr;
// the model never interprets that text.
type DecltypeType struct {
	typeBase
	Expr string
}

func (d *DecltypeType) TypeName() string { return "decltype(" + d.Expr + ")" }

// DependentNameType stands for a type that names something dependent on a
// template parameter and cannot be resolved until the template is
// instantiated, e.g. `typename T::value_type`. It carries enough
// information to re-resolve itself once a concrete T is substituted in.
type DependentNameType struct {
	typeBase
	Qualifier QualType
	Member    string
}

func (d *DependentNameType) TypeName() string { return d.Qualifier.TypeName() + "::" + d.Member }

// NewDependentNameType creates a dependent-name type parented on parent.
// Dependent name types are not interned by structure (spec §4.2): each
// occurrence the converter encounters gets its own entity, parented
// anonymously since it has no declared name of its own to look up.
func NewDependentNameType(cm *CodeModel, parent Context, qualifier QualType, member string) *DependentNameType {
	d := &DependentNameType{Qualifier: qualifier, Member: member}
	d.id = cm.nextID()
	adoptAnonymous(parent, d)
	use(d, qualifier.Base)
	return d
}

// NewDecltypeType creates a decltype placeholder type parented on parent.
func NewDecltypeType(cm *CodeModel, parent Context, expr string) *DecltypeType {
	d := &DecltypeType{Expr: expr}
	d.id = cm.nextID()
	adoptAnonymous(parent, d)
	return d
}
