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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aesilevich/cm-sub001/frontend"
	"github.com/aesilevich/cm-sub001/model"
)

// TestSimpleNamespace covers end-to-end scenario 1: `namespace ns { int
// x; }` produces one namespace child holding one variable of type int.
func TestSimpleNamespace(t *testing.T) {
	ns := &fakeDecl{kind: frontend.DeclNamespace, name: "ns"}
	x := &fakeDecl{kind: frontend.DeclVariable, name: "x", parent: ns, varType: builtinType(fakeBuiltinInt)}
	ns.members = []frontend.Decl{x}

	c := New(Options{}, nil, nil)
	require.NoError(t, c.Convert(&fakeTU{decls: []frontend.Decl{ns}}))

	nsEnt, ok := c.Model.Find("ns").(*model.Namespace)
	require.True(t, ok)

	xEnt, ok := nsEnt.Find("x").(*model.Variable)
	require.True(t, ok)
	assert.Same(t, c.Model.Builtin(model.BuiltinInt), xEnt.Type.Base)
}

// TestForwardThenDefine covers end-to-end scenario 2: a forward-declared
// record followed by its definition converts to exactly one complete
// record entity.
func TestForwardThenDefine(t *testing.T) {
	fwd := &fakeDecl{kind: frontend.DeclRecord, name: "S", recordTag: frontend.RecordTagStruct, complete: false}
	def := &fakeDecl{kind: frontend.DeclRecord, name: "S", recordTag: frontend.RecordTagStruct, complete: true, canonical: fwd}
	a := &fakeDecl{kind: frontend.DeclField, name: "a", parent: def, varType: builtinType(fakeBuiltinInt)}
	def.members = []frontend.Decl{a}

	c := New(Options{}, nil, nil)
	require.NoError(t, c.Convert(&fakeTU{decls: []frontend.Decl{fwd, def}}))

	rec, ok := c.Model.Find("S").(*model.Record)
	require.True(t, ok)
	assert.True(t, rec.Complete)
	require.Len(t, rec.Fields, 1)
	assert.Equal(t, "a", rec.Fields[0].Name())
	assert.Same(t, c.Model.Builtin(model.BuiltinInt), rec.Fields[0].Type.Base)
}

// TestPointerInterning covers end-to-end scenario 3: two unrelated `int *`
// variables converge on the same pointee-type entity.
func TestPointerInterning(t *testing.T) {
	p := &fakeDecl{kind: frontend.DeclVariable, name: "p", varType: pointerType(builtinType(fakeBuiltinInt))}
	q := &fakeDecl{kind: frontend.DeclVariable, name: "q", varType: pointerType(builtinType(fakeBuiltinInt))}

	c := New(Options{}, nil, nil)
	require.NoError(t, c.Convert(&fakeTU{decls: []frontend.Decl{p, q}}))

	pEnt, ok := c.Model.Find("p").(*model.Variable)
	require.True(t, ok)
	qEnt, ok := c.Model.Find("q").(*model.Variable)
	require.True(t, ok)

	pPtr, ok := pEnt.Type.Base.(*model.Pointer)
	require.True(t, ok)
	qPtr, ok := qEnt.Type.Base.(*model.Pointer)
	require.True(t, ok)
	assert.Same(t, pPtr, qPtr)
	assert.Same(t, pPtr.Pointee.Base, qPtr.Pointee.Base)
}

// TestClassTemplateInstantiation covers end-to-end scenario 4: a class
// template instantiated with a concrete argument produces a record whose
// field types have the parameter substituted, not left referring to it.
func TestClassTemplateInstantiation(t *testing.T) {
	tParam := &fakeDecl{kind: frontend.DeclTemplateTypeParam, name: "T"}
	vTmpl := &fakeDecl{
		kind: frontend.DeclClassTemplate, name: "V", recordTag: frontend.RecordTagStruct,
		complete: true, tparams: []frontend.TemplateParamDecl{tParam},
	}
	p := &fakeDecl{kind: frontend.DeclField, name: "p", parent: vTmpl, varType: pointerType(templateParamType(tParam))}
	vTmpl.members = []frontend.Decl{p}

	spec := &fakeSpecialization{primary: vTmpl, args: []frontend.TemplateArgument{typeArg(builtinType(fakeBuiltinInt))}}
	vVar := &fakeDecl{kind: frontend.DeclVariable, name: "v", varType: specializationType(spec)}

	c := New(Options{}, nil, nil)
	require.NoError(t, c.Convert(&fakeTU{decls: []frontend.Decl{vTmpl, vVar}}))

	tmpl, ok := c.Model.Find("V").(*model.Template)
	require.True(t, ok)
	require.Len(t, tmpl.TemplateParams(), 1)
	assert.Equal(t, "T", tmpl.TemplateParams()[0].Name())
	require.Len(t, tmpl.Substitutions(), 1)
	assert.Equal(t, model.SubstitutionInstantiation, tmpl.Substitutions()[0].Kind)

	vEnt, ok := c.Model.Find("v").(*model.Variable)
	require.True(t, ok)
	rec, ok := vEnt.Type.Base.(*model.Record)
	require.True(t, ok)
	require.Len(t, rec.Fields, 1)

	fieldPtr, ok := rec.Fields[0].Type.Base.(*model.Pointer)
	require.True(t, ok)
	assert.Same(t, c.Model.Builtin(model.BuiltinInt), fieldPtr.Pointee.Base)
}

// TestPartialSpecialization covers end-to-end scenario 5: a primary
// template with two parameters gains one partial specialisation with its
// own (narrower) parameter list and a two-element argument list.
func TestPartialSpecialization(t *testing.T) {
	aParam := &fakeDecl{kind: frontend.DeclTemplateTypeParam, name: "A"}
	bParam := &fakeDecl{kind: frontend.DeclTemplateTypeParam, name: "B"}
	primary := &fakeDecl{
		kind: frontend.DeclClassTemplate, name: "P", recordTag: frontend.RecordTagStruct,
		complete: false, tparams: []frontend.TemplateParamDecl{aParam, bParam},
	}

	xParam := &fakeDecl{kind: frontend.DeclTemplateTypeParam, name: "X"}
	partial := &fakeDecl{
		kind: frontend.DeclClassTemplatePartialSpecialization, name: "P", recordTag: frontend.RecordTagStruct,
		complete: true, tparams: []frontend.TemplateParamDecl{xParam},
		primary:   primary,
		arguments: []frontend.TemplateArgument{typeArg(templateParamType(xParam)), typeArg(builtinType(fakeBuiltinInt))},
	}

	c := New(Options{}, nil, nil)
	require.NoError(t, c.Convert(&fakeTU{decls: []frontend.Decl{primary, partial}}))

	tmpl, ok := c.Model.Find("P").(*model.Template)
	require.True(t, ok)
	assert.Len(t, tmpl.TemplateParams(), 2)
	require.Len(t, tmpl.PartialSpecializations(), 1)

	part := tmpl.PartialSpecializations()[0]
	require.Len(t, part.TemplateParams(), 1)
	assert.Equal(t, "X", part.TemplateParams()[0].Name())
	require.Len(t, part.Args, 2)
	assert.True(t, part.Args[1].IsType())
	assert.Same(t, c.Model.Builtin(model.BuiltinInt), part.Args[1].Type().Base)
}

// TestDependentMemberType covers end-to-end scenario 6: a field naming a
// dependent member of a template parameter converts to a pointer whose
// pointee is a dependent-name type scoped on the parameter.
func TestDependentMemberType(t *testing.T) {
	tParam := &fakeDecl{kind: frontend.DeclTemplateTypeParam, name: "T"}
	dTmpl := &fakeDecl{
		kind: frontend.DeclClassTemplate, name: "D", recordTag: frontend.RecordTagStruct,
		complete: true, tparams: []frontend.TemplateParamDecl{tParam},
	}
	p := &fakeDecl{
		kind: frontend.DeclField, name: "p", parent: dTmpl,
		varType: pointerType(dependentNameType(templateParamType(tParam), "inner")),
	}
	dTmpl.members = []frontend.Decl{p}

	c := New(Options{}, nil, nil)
	require.NoError(t, c.Convert(&fakeTU{decls: []frontend.Decl{dTmpl}}))

	tmpl, ok := c.Model.Find("D").(*model.Template)
	require.True(t, ok)
	require.NotNil(t, tmpl.PrimaryRecord)
	require.Len(t, tmpl.PrimaryRecord.Fields, 1)

	fieldPtr, ok := tmpl.PrimaryRecord.Fields[0].Type.Base.(*model.Pointer)
	require.True(t, ok)
	dep, ok := fieldPtr.Pointee.Base.(*model.DependentNameType)
	require.True(t, ok)
	assert.Equal(t, "inner", dep.Member)

	scopeParam, ok := dep.Qualifier.Base.(*model.TypeTemplateParameter)
	require.True(t, ok)
	assert.Equal(t, "T", scopeParam.Name())
}

// TestConvertDeclIsIdempotent exercises the decl-map's core promise: converting
// the same canonical declaration twice (as a later redeclaration would) does
// not create a second entity.
func TestConvertDeclIsIdempotent(t *testing.T) {
	d := &fakeDecl{kind: frontend.DeclVariable, name: "x", varType: builtinType(fakeBuiltinInt)}

	c := New(Options{}, nil, nil)
	require.NoError(t, c.Convert(&fakeTU{decls: []frontend.Decl{d, d}}))

	assert.Len(t, model.EntitiesOfKind[*model.Variable](c.Model), 1)
}

// TestDeterministicConversion covers testable property 5: converting the
// same input twice into fresh models produces structurally equal results
// (here, equal in shape rather than identity, since identity is
// per-CodeModel by construction).
func TestDeterministicConversion(t *testing.T) {
	build := func() *fakeDecl {
		ns := &fakeDecl{kind: frontend.DeclNamespace, name: "ns"}
		x := &fakeDecl{kind: frontend.DeclVariable, name: "x", parent: ns, varType: builtinType(fakeBuiltinInt)}
		ns.members = []frontend.Decl{x}
		return ns
	}

	c1 := New(Options{}, nil, nil)
	require.NoError(t, c1.Convert(&fakeTU{decls: []frontend.Decl{build()}}))
	c2 := New(Options{}, nil, nil)
	require.NoError(t, c2.Convert(&fakeTU{decls: []frontend.Decl{build()}}))

	ns1 := c1.Model.Find("ns").(*model.Namespace)
	ns2 := c2.Model.Find("ns").(*model.Namespace)
	assert.Equal(t, ns1.ID(), ns2.ID())

	x1 := ns1.Find("x").(*model.Variable)
	x2 := ns2.Find("x").(*model.Variable)
	assert.Equal(t, x1.ID(), x2.ID())
}

// TestSourceOverlayOptIn ensures the overlay is nil unless explicitly
// requested, and populated once it is.
func TestSourceOverlayOptIn(t *testing.T) {
	d := &fakeDecl{kind: frontend.DeclVariable, name: "x", loc: "x.cpp:1", varType: builtinType(fakeBuiltinInt)}

	off := New(Options{}, nil, nil)
	require.NoError(t, off.Convert(&fakeTU{decls: []frontend.Decl{d}}))
	assert.Nil(t, off.Source)

	on := New(Options{IncludeSourceModel: true}, nil, nil)
	require.NoError(t, on.Convert(&fakeTU{decls: []frontend.Decl{d}}))
	require.NotNil(t, on.Source)
	assert.Equal(t, 1, on.Source.Len())

	xEnt := on.Model.Find("x")
	node := on.Source.NodeFor(xEnt)
	require.NotNil(t, node)
	assert.Equal(t, "x.cpp:1", node.Location)
}
