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

package convert

import (
	"github.com/aesilevich/cm-sub001/frontend"
	"github.com/aesilevich/cm-sub001/model"
)

// The types in this file are a minimal in-memory frontend.* implementation
// used only by this package's tests: a fixture a real front-end binding
// (libclang cgo, a protobuf AST service) would replace, built just rich
// enough to drive the end-to-end scenarios spec §8 names.

const (
	fakeBuiltinVoid frontend.BuiltinTag = iota
	fakeBuiltinBool
	fakeBuiltinInt
)

func init() {
	RegisterBuiltinTag(fakeBuiltinVoid, model.BuiltinVoid)
	RegisterBuiltinTag(fakeBuiltinBool, model.BuiltinBool)
	RegisterBuiltinTag(fakeBuiltinInt, model.BuiltinInt)
}

// fakeDecl implements frontend.Decl plus every richer sub-interface
// (RecordDecl, FunctionDecl, TemplateParamDecl, SpecializationDecl) a test
// fixture needs; only the fields relevant to one fixture's Kind are set.
type fakeDecl struct {
	kind      frontend.DeclKind
	name      string
	loc       string
	parent    frontend.Decl
	canonical frontend.Decl
	tparams   []frontend.TemplateParamDecl
	implicit  bool

	// RecordDecl
	recordTag frontend.RecordTag
	complete  bool
	anonymous bool
	bases     []frontend.BaseDecl
	members   []frontend.Decl

	// FunctionDecl
	returnType  frontend.TypeNode
	params      []frontend.ParamDecl
	inlineF     bool
	staticF     bool
	externF     bool
	constexprF  bool
	definedF    bool
	isMethod    bool
	constF      bool
	volatileF   bool
	refQual     frontend.RefTag
	virtualF    bool
	pureF       bool

	// Typedef / Variable / Field
	underlying frontend.TypeNode
	varType    frontend.TypeNode

	// TemplateParamDecl
	pack      bool
	valueType frontend.TypeNode

	// SpecializationDecl
	primary   frontend.Decl
	arguments []frontend.TemplateArgument
}

func (d *fakeDecl) Kind() frontend.DeclKind { return d.kind }
func (d *fakeDecl) Name() string            { return d.name }
func (d *fakeDecl) Location() string        { return d.loc }
func (d *fakeDecl) Canonical() frontend.Decl {
	if d.canonical != nil {
		return d.canonical
	}
	return d
}
func (d *fakeDecl) Parent() frontend.Decl                          { return d.parent }
func (d *fakeDecl) TemplateParams() []frontend.TemplateParamDecl   { return d.tparams }
func (d *fakeDecl) IsImplicit() bool                               { return d.implicit }

func (d *fakeDecl) RecordTag() frontend.RecordTag { return d.recordTag }
func (d *fakeDecl) IsComplete() bool               { return d.complete }
func (d *fakeDecl) IsAnonymous() bool               { return d.anonymous }
func (d *fakeDecl) Bases() []frontend.BaseDecl      { return d.bases }
func (d *fakeDecl) Members() []frontend.Decl        { return d.members }

func (d *fakeDecl) ReturnType() frontend.TypeNode        { return d.returnType }
func (d *fakeDecl) Params() []frontend.ParamDecl          { return d.params }
func (d *fakeDecl) Inline() bool                          { return d.inlineF }
func (d *fakeDecl) Static() bool                          { return d.staticF }
func (d *fakeDecl) Extern() bool                          { return d.externF }
func (d *fakeDecl) Constexpr() bool                       { return d.constexprF }
func (d *fakeDecl) Defined() bool                         { return d.definedF }
func (d *fakeDecl) IsMethod() bool                        { return d.isMethod }
func (d *fakeDecl) CVQualifiers() (bool, bool)            { return d.constF, d.volatileF }
func (d *fakeDecl) RefQualifier() frontend.RefTag         { return d.refQual }
func (d *fakeDecl) Virtual() bool                         { return d.virtualF }
func (d *fakeDecl) Pure() bool                             { return d.pureF }

func (d *fakeDecl) Underlying() frontend.TypeNode { return d.underlying }
func (d *fakeDecl) Type() frontend.TypeNode        { return d.varType }

func (d *fakeDecl) Pack() bool                      { return d.pack }
func (d *fakeDecl) ValueType() frontend.TypeNode    { return d.valueType }

func (d *fakeDecl) Primary() frontend.Decl                     { return d.primary }
func (d *fakeDecl) Arguments() []frontend.TemplateArgument      { return d.arguments }

// fakeType implements frontend.TypeNode.
type fakeType struct {
	kind            frontend.TypeKind
	constF          bool
	volatileF       bool
	builtin         frontend.BuiltinTag
	pointee         frontend.TypeNode
	arraySize       int64
	returnType      frontend.TypeNode
	params          []frontend.TypeNode
	variadic        bool
	record          frontend.Decl
	typedef         frontend.Decl
	templateParam   frontend.Decl
	specialization  frontend.TemplateSpecializationNode
	dependentScope  frontend.TypeNode
	dependentMember string
	decltypeExpr    string
	elaborated      frontend.TypeNode
}

func (t *fakeType) Kind() frontend.TypeKind                           { return t.kind }
func (t *fakeType) Const() bool                                       { return t.constF }
func (t *fakeType) Volatile() bool                                    { return t.volatileF }
func (t *fakeType) Builtin() frontend.BuiltinTag                      { return t.builtin }
func (t *fakeType) Pointee() frontend.TypeNode                        { return t.pointee }
func (t *fakeType) ArraySize() int64                                  { return t.arraySize }
func (t *fakeType) ReturnType() frontend.TypeNode                     { return t.returnType }
func (t *fakeType) Params() []frontend.TypeNode                       { return t.params }
func (t *fakeType) Variadic() bool                                    { return t.variadic }
func (t *fakeType) Record() frontend.Decl                             { return t.record }
func (t *fakeType) Typedef() frontend.Decl                            { return t.typedef }
func (t *fakeType) TemplateParam() frontend.Decl                      { return t.templateParam }
func (t *fakeType) Specialization() frontend.TemplateSpecializationNode { return t.specialization }
func (t *fakeType) DependentScope() frontend.TypeNode                 { return t.dependentScope }
func (t *fakeType) DependentMember() string                           { return t.dependentMember }
func (t *fakeType) DecltypeExpr() string                               { return t.decltypeExpr }
func (t *fakeType) Elaborated() frontend.TypeNode                     { return t.elaborated }

func builtinType(tag frontend.BuiltinTag) *fakeType {
	return &fakeType{kind: frontend.TypeBuiltin, builtin: tag}
}

func pointerType(pointee frontend.TypeNode) *fakeType {
	return &fakeType{kind: frontend.TypePointer, pointee: pointee}
}

func recordRefType(decl frontend.Decl) *fakeType {
	return &fakeType{kind: frontend.TypeRecord, record: decl}
}

func templateParamType(decl frontend.Decl) *fakeType {
	return &fakeType{kind: frontend.TypeTemplateParameter, templateParam: decl}
}

func specializationType(spec frontend.TemplateSpecializationNode) *fakeType {
	return &fakeType{kind: frontend.TypeTemplateSpecialization, specialization: spec}
}

func dependentNameType(scope frontend.TypeNode, member string) *fakeType {
	return &fakeType{kind: frontend.TypeDependentName, dependentScope: scope, dependentMember: member}
}

// fakeSpecialization implements frontend.TemplateSpecializationNode.
type fakeSpecialization struct {
	primary frontend.Decl
	args    []frontend.TemplateArgument
}

func (s *fakeSpecialization) Primary() frontend.Decl                { return s.primary }
func (s *fakeSpecialization) Arguments() []frontend.TemplateArgument { return s.args }

// fakeArg implements frontend.TemplateArgument.
type fakeArg struct {
	isTypeArg bool
	typ       frontend.TypeNode
	value     string
	dependent bool
}

func (a *fakeArg) IsType() bool           { return a.isTypeArg }
func (a *fakeArg) Type() frontend.TypeNode { return a.typ }
func (a *fakeArg) Value() string           { return a.value }
func (a *fakeArg) Dependent() bool         { return a.dependent }

func typeArg(t frontend.TypeNode) *fakeArg { return &fakeArg{isTypeArg: true, typ: t} }

// fakeTU implements frontend.TranslationUnit.
type fakeTU struct {
	decls []frontend.Decl
}

func (tu *fakeTU) Decls() []frontend.Decl { return tu.decls }
