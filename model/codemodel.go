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

// CodeModel is the arena that owns every entity produced while converting
// one or more translation units: it is the root Context (the global
// namespace), the home of every composite-type interning table, and the
// sole source of EntityIDs. There is no per-entity destruction; an entity
// is reclaimed only when the whole CodeModel is dropped.
type CodeModel struct {
	contextBase

	idCounter EntityID

	builtins map[BuiltinKind]*Builtin

	pointers      []*Pointer
	lvalueRefs    []*LValueReference
	rvalueRefs    []*RValueReference
	arrays        []*Array
	functionTypes []*FunctionType
}

// NewCodeModel constructs an empty model with the fixed set of builtin
// types already materialised.
func NewCodeModel() *CodeModel {
	cm := &CodeModel{builtins: map[BuiltinKind]*Builtin{}}
	// Builtins are created in a fixed order (not by ranging over the
	// builtinNames map, whose iteration order is randomised) so that two
	// independent conversions of the same input assign identical
	// EntityIDs to identical builtins, preserving the determinism
	// property.
	for kind := BuiltinVoid; kind <= BuiltinNullptr; kind++ {
		b := &Builtin{Kind: kind}
		b.id = cm.nextID()
		adoptAnonymous(cm, b)
		cm.builtins[kind] = b
	}
	return cm
}

func (cm *CodeModel) nextID() EntityID {
	cm.idCounter++
	return cm.idCounter
}

// Builtin returns the shared instance of the given builtin kind.
func (cm *CodeModel) Builtin(kind BuiltinKind) *Builtin { return cm.builtins[kind] }

// NewNamespace creates and declares a namespace named name directly under
// parent. If a namespace of that name already exists there, the existing
// namespace is returned instead (namespaces, unlike records and functions,
// reopen rather than redefine), matching the "no redefinition diagnostic
// for reopened namespaces" edge case.
func (cm *CodeModel) NewNamespace(parent Context, name string) *Namespace {
	if existing := parent.Find(name); existing != nil {
		if ns, ok := existing.(*Namespace); ok {
			return ns
		}
	}
	ns := &Namespace{Named: Named(name)}
	ns.id = cm.nextID()
	adopt(parent, ns)
	return ns
}
