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

package frontend

// DeclKind enumerates the declaration kinds the converter dispatches on
// (spec §4.6). Front-ends map their own richer taxonomy down onto this
// set; anything not listed here is reported as DeclOther, which the
// converter ignores.
type DeclKind int

const (
	DeclNamespace DeclKind = iota
	DeclRecord
	DeclTypedef
	DeclFunction
	DeclMethod
	DeclVariable
	DeclField
	DeclClassTemplate
	DeclClassTemplatePartialSpecialization
	DeclClassTemplateSpecialization
	DeclFunctionTemplate
	DeclLinkageSpec
	DeclTemplateTypeParam
	DeclTemplateValueParam
	DeclOther
)

// TranslationUnit is the single entry point a front-end exposes: the
// top-level declarations of one compiled source file.
type TranslationUnit interface {
	// Decls returns the translation unit's top-level declarations in
	// source order.
	Decls() []Decl
}

// Decl is any front-end declaration node. Every other front-end interface
// in this package (RecordDecl, FunctionDecl, ...) is implemented by the
// same concrete node alongside Decl; convert type-asserts to the richer
// interface once Kind indicates it is safe to.
type Decl interface {
	Kind() DeclKind

	// Name is the declared name, or "" for an anonymous record/union.
	Name() string

	// Location is an opaque, front-end-defined source location, used
	// only for the source model overlay and diagnostics; the converter
	// never interprets it.
	Location() string

	// Canonical returns the front-end's chosen unique representative
	// among all redeclarations of this entity. Converting any
	// redeclaration must look up or register the model entity keyed on
	// Canonical(), not on the Decl itself.
	Canonical() Decl

	// Parent returns the enclosing declaration context (namespace,
	// record, or nil at the translation unit's top level).
	Parent() Decl

	// TemplateParams returns the declaration's own template parameter
	// list (for a template declaration), or nil otherwise. Each entry is
	// itself a Decl (of kind DeclTemplateTypeParam or
	// DeclTemplateValueParam) so that a TypeNode of kind
	// TypeTemplateParameter can name one via TemplateParam() using the
	// same Decl identity the decl-map already keys on.
	TemplateParams() []TemplateParamDecl

	// IsImplicit reports whether the front-end synthesised this
	// declaration (e.g. an implicitly-declared copy constructor).
	IsImplicit() bool
}

// TemplateParamDecl is implemented by a Decl of kind
// DeclTemplateTypeParam or DeclTemplateValueParam.
type TemplateParamDecl interface {
	Decl

	// Pack marks a parameter pack; only the last parameter may set it.
	Pack() bool

	// ValueType is the parameter's type for a value template parameter
	// (Kind() == DeclTemplateValueParam); unused for a type parameter.
	ValueType() TypeNode
}

// SpecializationDecl is implemented by a Decl of kind
// DeclClassTemplatePartialSpecialization or DeclClassTemplateSpecialization:
// the additional facts needed to bind it back to its primary template
// (spec §4.3). A partial specialization additionally has its own
// TemplateParams() (inherited from Decl) that Arguments() may reference; a
// full (explicit) specialization's TemplateParams() is empty.
type SpecializationDecl interface {
	Decl

	// Primary is the declaration of the template being specialised.
	Primary() Decl

	// Arguments is the argument list this specialisation binds the
	// primary template's parameters to.
	Arguments() []TemplateArgument
}

// RecordDecl is implemented by a Decl of kind DeclRecord: the additional
// facts the converter needs to populate a class/struct/union (spec §4.7).
type RecordDecl interface {
	Decl

	RecordTag() RecordTag

	// IsComplete reports whether this is the defining declaration
	// (bases and Members are only meaningful when true).
	IsComplete() bool

	// IsAnonymous reports whether this record has no name of its own
	// (an anonymous struct/union whose members the front-end flags for
	// promotion into the enclosing record).
	IsAnonymous() bool

	Bases() []BaseDecl

	// Members returns the record's direct member declarations in
	// source order.
	Members() []Decl
}

// RecordTag mirrors model.RecordKind at the front-end boundary.
type RecordTag int

const (
	RecordTagClass RecordTag = iota
	RecordTagStruct
	RecordTagUnion
)

// BaseDecl is one entry of a RecordDecl's base-class list.
type BaseDecl struct {
	Type      TypeNode
	Access    AccessTag
	IsVirtual bool
}

// AccessTag mirrors model.Access at the front-end boundary.
type AccessTag int

const (
	AccessTagPrivate AccessTag = iota
	AccessTagProtected
	AccessTagPublic
)

// FunctionDecl is implemented by a Decl of kind DeclFunction or
// DeclMethod: the additional facts needed to populate a function or
// method (spec §4.8).
type FunctionDecl interface {
	Decl

	ReturnType() TypeNode
	Params() []ParamDecl

	Inline() bool
	Static() bool
	Extern() bool
	Constexpr() bool
	Defined() bool

	// IsMethod reports whether this declaration is a non-static member
	// function; when true, CVQualifiers/RefQualifier/Virtual/Pure are
	// meaningful.
	IsMethod() bool
	CVQualifiers() (isConst, isVolatile bool)
	RefQualifier() RefTag
	Virtual() bool
	Pure() bool
}

// RefTag mirrors model.RefQualifier at the front-end boundary.
type RefTag int

const (
	RefTagNone RefTag = iota
	RefTagLValue
	RefTagRValue
)

// ParamDecl describes one function parameter.
type ParamDecl struct {
	Name       string
	Type       TypeNode
	HasDefault bool
}

// TypeKind enumerates the structural type shapes the converter peels
// (spec §4.5).
type TypeKind int

const (
	TypeBuiltin TypeKind = iota
	TypePointer
	TypeLValueReference
	TypeRValueReference
	TypeArray
	TypeFunction
	TypeRecord
	TypeTypedef
	TypeTemplateParameter
	TypeTemplateSpecialization
	TypeDependentName
	TypeDecltype
	TypeElaborated
)

// TypeNode is a front-end type reference: the kind enumeration plus
// whatever structural children that kind implies. Not every accessor is
// meaningful for every Kind; the converter only calls the accessor that
// matches Kind().
type TypeNode interface {
	Kind() TypeKind

	// Const and Volatile are this specific reference's cv-qualifiers
	// (spec's "qualified type" pair); they describe the use site, not
	// the underlying type.
	Const() bool
	Volatile() bool

	// Builtin is valid when Kind() == TypeBuiltin.
	Builtin() BuiltinTag

	// Pointee is valid when Kind() is TypePointer, TypeLValueReference,
	// TypeRValueReference or TypeArray (the array element).
	Pointee() TypeNode

	// ArraySize is valid when Kind() == TypeArray; -1 means an
	// incomplete bound.
	ArraySize() int64

	// ReturnType and Params are valid when Kind() == TypeFunction.
	ReturnType() TypeNode
	Params() []TypeNode
	Variadic() bool

	// Record is valid when Kind() == TypeRecord: the (possibly
	// forward) declaration this type names.
	Record() Decl

	// Typedef is valid when Kind() == TypeTypedef.
	Typedef() Decl

	// TemplateParam is valid when Kind() == TypeTemplateParameter: the
	// declaration of the parameter this type refers to.
	TemplateParam() Decl

	// Specialization is valid when Kind() ==
	// TypeTemplateSpecialization.
	Specialization() TemplateSpecializationNode

	// DependentScope and DependentMember are valid when Kind() ==
	// TypeDependentName.
	DependentScope() TypeNode
	DependentMember() string

	// DecltypeExpr is valid when Kind() == TypeDecltype: an opaque
	// spelling of the expression, recorded verbatim.
	DecltypeExpr() string

	// Elaborated is valid when Kind() == TypeElaborated: the type this
	// elaborated spelling (`struct X`, `typename T::U`) unwraps to.
	Elaborated() TypeNode
}

// BuiltinTag is the front-end's own builtin-type tag, mapped onto
// model.BuiltinKind by convert according to Options.BuiltinSet.
type BuiltinTag int

// TemplateSpecializationNode is implemented by a TypeNode of kind
// TypeTemplateSpecialization: the primary template plus its argument list.
type TemplateSpecializationNode interface {
	// Primary is the declaration of the template being specialised. It
	// may itself be a dependent template name rather than a concrete
	// template declaration (spec §4.5).
	Primary() Decl

	Arguments() []TemplateArgument
}

// TemplateArgument is one argument of a template-specialization node.
type TemplateArgument interface {
	// IsType reports whether this argument binds a type parameter; if
	// false it binds a value parameter.
	IsType() bool

	Type() TypeNode

	// Value is the value argument's canonical spelling, already
	// rendered by the front-end.
	Value() string

	// Dependent reports whether this argument mentions a template
	// parameter from an enclosing scope (spec §4.5's dependent-argument
	// rule).
	Dependent() bool
}
