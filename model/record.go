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

// RecordKind distinguishes the three record-introducing keywords.
type RecordKind int

const (
	RecordClass RecordKind = iota
	RecordStruct
	RecordUnion
)

// Access is a base-class or member access specifier.
type Access int

const (
	AccessPrivate Access = iota
	AccessProtected
	AccessPublic
)

// BaseSpecifier is one entry in a record's base-class list.
type BaseSpecifier struct {
	Base    QualType
	Access  Access
	Virtual bool
}

// Record is a class, struct or union. It is simultaneously a Context
// (holding nested declarations in source order), a Type (so references to
// it elsewhere in the model point straight at the *Record instead of at a
// separate record-type wrapper) and, for incomplete forward declarations,
// an otherwise-empty shell awaiting its defining declaration.
//
// Merging the type-system role into Record is a deliberate Go
// simplification of the original's separate record/record_type pair,
// which existed only to let a record participate in two C++ base-class
// hierarchies at once; see the design ledger for the corresponding note.
type Record struct {
	contextBase
	Named

	Kind       RecordKind
	Complete   bool
	Anonymous  bool
	Bases      []BaseSpecifier
	Fields     []*Field
}

func (*Record) isType() {}

// TypeName implements Type.
func (r *Record) TypeName() string { return r.Name() }

// NewRecord creates and declares a record named name (possibly empty, for
// an anonymous record/union) under parent. The returned record starts
// incomplete (Complete is false, with no bases or fields); the converter
// fills it in and sets Complete to true when the defining declaration is
// visited, per spec §4.7. Calling NewRecord a second time for the same
// canonical declaration is a converter bug: the decl-map lookup, not a
// second NewRecord call, is how the converter re-finds an existing forward
// declaration to patch (spec §4.6).
func NewRecord(cm *CodeModel, parent Context, name string, kind RecordKind) *Record {
	r := &Record{Named: Named(name), Kind: kind}
	r.id = cm.nextID()
	adopt(parent, r)
	return r
}

// MarkComplete marks r as fully defined, the precondition spec invariant 5
// requires for a non-empty context: set bases and fields first, then call
// MarkComplete.
func (r *Record) MarkComplete() { r.Complete = true }

// PatchKind updates a forward-declared record's kind when its defining
// declaration is visited: an incomplete record takes the new kind as is.
// Changing the kind of an already-complete record (`struct S {};`
// followed by `union S {};`) is an internal inconsistency: the front-end's
// own canonical-decl map should never hand the converter two definitions
// of the same entity with different kind tags.
func (r *Record) PatchKind(kind RecordKind) error {
	if r.Complete && r.Kind != kind {
		return inconsistency("record redefined with a different kind tag")
	}
	r.Kind = kind
	return nil
}

// AddBase appends a base specifier in declaration order.
func (r *Record) AddBase(b BaseSpecifier) {
	r.Bases = append(r.Bases, b)
	use(r, b.Base.Base)
}

// Field is a data member of a record.
type Field struct {
	base
	Named
	Type QualType
}

// NewField creates and declares a field named name with the given type
// under record.
func NewField(cm *CodeModel, record *Record, name string, t QualType) *Field {
	f := &Field{Named: Named(name), Type: t}
	f.id = cm.nextID()
	adopt(record, f)
	record.Fields = append(record.Fields, f)
	use(f, t.Base)
	return f
}
