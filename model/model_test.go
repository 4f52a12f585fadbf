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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCodeModelBuiltinsAreDeterministic covers testable property 5 at
// the builtin-construction level: two independent CodeModels must assign
// identical EntityIDs to identical builtins, which only holds if
// construction order is fixed rather than ranging over builtinNames.
func TestNewCodeModelBuiltinsAreDeterministic(t *testing.T) {
	a := NewCodeModel()
	b := NewCodeModel()
	for kind := BuiltinVoid; kind <= BuiltinNullptr; kind++ {
		assert.Equal(t, a.Builtin(kind).ID(), b.Builtin(kind).ID(), "builtin %v", kind)
	}
}

// TestAdoptRegistersNamedChild covers testable property 1 for a named
// entity: parent.Children() must contain the child, and the child must be
// reachable by name.
func TestAdoptRegistersNamedChild(t *testing.T) {
	cm := NewCodeModel()
	ns := cm.NewNamespace(cm, "ns")

	v := NewVariable(cm, ns, "x", Unqualified(cm.Builtin(BuiltinInt)))

	assert.Same(t, ns, v.Parent())
	assert.Contains(t, ns.Children(), Entity(v))
	assert.Same(t, NamedEntity(v), ns.Find("x"))
}

// TestAdoptAnonymousRegistersChildWithoutName covers testable property 1
// for an unnamed entity (a function parameter): it must still appear in
// its parent's Children(), even though it has no name to look up by.
func TestAdoptAnonymousRegistersChildWithoutName(t *testing.T) {
	cm := NewCodeModel()
	ns := cm.NewNamespace(cm, "ns")

	fn := NewFunction(cm, ns, "f")
	fn.SetType(cm.GetFunctionType(Unqualified(cm.Builtin(BuiltinVoid)), nil, false))
	p := NewParameter(cm, "", Unqualified(cm.Builtin(BuiltinInt)), false)
	fn.AddParameter(p)

	assert.Contains(t, ns.Children(), Entity(p))
}

// TestUseRegistersReciprocalEdge covers testable property 2: every use
// edge (u -> v) must appear as v.Users().contains(u) as well as
// u.Uses().contains(v).
func TestUseRegistersReciprocalEdge(t *testing.T) {
	cm := NewCodeModel()
	ns := cm.NewNamespace(cm, "ns")
	td := NewTypedef(cm, ns, "Int", Unqualified(cm.Builtin(BuiltinInt)))

	assert.Contains(t, td.Uses(), Entity(cm.Builtin(BuiltinInt)))
	assert.Contains(t, cm.Builtin(BuiltinInt).Users(), Entity(td))
}

// TestPointerInterning covers testable property 3 and end-to-end scenario
// 3: two requests for the same pointee must return the identical *Pointer.
func TestPointerInterning(t *testing.T) {
	cm := NewCodeModel()
	p1 := cm.GetPointerType(Unqualified(cm.Builtin(BuiltinInt)))
	p2 := cm.GetPointerType(Unqualified(cm.Builtin(BuiltinInt)))
	assert.Same(t, p1, p2)

	p3 := cm.GetPointerType(Unqualified(cm.Builtin(BuiltinBool)))
	assert.NotSame(t, p1, p3)
}

// TestFunctionTypeInterningRespectsVariadic ensures the interning key
// includes the variadic flag, not just return/parameter types.
func TestFunctionTypeInterningRespectsVariadic(t *testing.T) {
	cm := NewCodeModel()
	ret := Unqualified(cm.Builtin(BuiltinVoid))
	f1 := cm.GetFunctionType(ret, nil, false)
	f2 := cm.GetFunctionType(ret, nil, true)
	assert.NotSame(t, f1, f2)
}

// TestFindSubstitutionAtMostOne covers testable property 4: a given
// argument list matches at most one non-partial substitution, and
// CreateInstantiation refuses to create a second one.
func TestFindSubstitutionAtMostOne(t *testing.T) {
	cm := NewCodeModel()
	tmpl := NewTemplate(cm, cm, "V", false)
	tmpl.AddTypeParam(cm, "T")

	args := []TemplateArgument{TypeArgument(Unqualified(cm.Builtin(BuiltinInt)))}
	require.Nil(t, tmpl.FindSubstitution(args))

	subst := cm.CreateInstantiation(tmpl, args, SubstitutionInstantiation)
	require.NotNil(t, subst)
	assert.Same(t, subst, tmpl.FindSubstitution(args))

	assert.Panics(t, func() {
		cm.CreateInstantiation(tmpl, args, SubstitutionInstantiation)
	})
}

// TestTemplateArgumentEquality exercises the argument-equality rule the
// "round-trip" property relies on: type arguments compare by underlying
// type identity, value arguments by string.
func TestTemplateArgumentEquality(t *testing.T) {
	cm := NewCodeModel()
	a := TypeArgument(Unqualified(cm.Builtin(BuiltinInt)))
	b := TypeArgument(Unqualified(cm.Builtin(BuiltinInt)))
	assert.True(t, a.Equal(b))

	c := ValueArgument(IntValue(3))
	d := ValueArgument(IntValue(3))
	assert.True(t, c.Equal(d))
	assert.False(t, a.Equal(c))
}

// TestQualTypeSelfEquality covers the "qt == qt" round-trip law: QualType
// is a plain value type, so Go's built-in == already gives this for free
// once Base is compared by identity.
func TestQualTypeSelfEquality(t *testing.T) {
	cm := NewCodeModel()
	qt := Unqualified(cm.Builtin(BuiltinInt))
	assert.True(t, qualEqual(qt, qt))
}

// TestRecordPatchKindRejectsMismatch exercises the internal-inconsistency
// path: redefining an already-complete record under a different record
// tag is reported, not silently accepted.
func TestRecordPatchKindRejectsMismatch(t *testing.T) {
	old := Strict
	Strict = false
	defer func() { Strict = old }()

	cm := NewCodeModel()
	r := NewRecord(cm, cm, "S", RecordStruct)
	r.MarkComplete()

	err := r.PatchKind(RecordUnion)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalInconsistency)
}

// TestEntitiesOfKind exercises the generic type-switch walk helper.
func TestEntitiesOfKind(t *testing.T) {
	cm := NewCodeModel()
	ns := cm.NewNamespace(cm, "ns")
	NewVariable(cm, ns, "a", Unqualified(cm.Builtin(BuiltinInt)))
	NewVariable(cm, ns, "b", Unqualified(cm.Builtin(BuiltinBool)))
	NewRecord(cm, ns, "S", RecordStruct)

	vars := EntitiesOfKind[*Variable](ns)
	assert.Len(t, vars, 2)

	recs := EntitiesOfKind[*Record](ns)
	assert.Len(t, recs, 1)
}
