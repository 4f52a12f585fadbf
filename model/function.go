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

// RefQualifier is a method's trailing ref-qualifier (`&` or `&&`), or
// RefNone for a method with no ref-qualifier.
type RefQualifier int

const (
	RefNone RefQualifier = iota
	RefLValue
	RefRValue
)

// StorageClass records a declaration's storage/linkage specifiers.
type StorageClass struct {
	Inline    bool
	Static    bool
	Extern    bool
	Constexpr bool
}

// Function is a free function, a static or non-static method, a
// constructor, destructor or operator overload. Methods additionally set
// Enclosing, CVQuals and RefQual; free functions leave them at their zero
// values.
type Function struct {
	base
	Named

	Type     *FunctionType
	Params   []*Parameter
	Storage  StorageClass
	Defined  bool

	Enclosing *Record
	CVQuals   CVQualifiers
	RefQual   RefQualifier
	Virtual   bool
	Pure      bool
}

// NewFunction creates and declares a function named name under scope
// (a *Namespace or *Record). The function type is filled in by the
// caller via SetType once parameter and return types are known, mirroring
// the two-pass population the converter performs (spec §4.8: return and
// parameter types are converted before names are patched in).
func NewFunction(cm *CodeModel, scope Context, name string) *Function {
	f := &Function{Named: Named(name)}
	f.id = cm.nextID()
	adopt(scope, f)
	if rec, ok := scope.(*Record); ok {
		f.Enclosing = rec
	}
	return f
}

// SetType assigns the function's type, registering the corresponding use
// edge.
func (f *Function) SetType(t *FunctionType) {
	f.Type = t
	use(f, t)
}

// AddParameter appends a named parameter in declaration order. The
// parameter is parented on the same context as the function itself (a
// Parameter is not a Context, so it cannot own children the way a Function
// body would in a richer model); it is still registered there via
// adoptAnonymous so invariant 1 (every entity appears in its parent's
// Children) holds for parameters too.
func (f *Function) AddParameter(p *Parameter) {
	f.Params = append(f.Params, p)
	adoptAnonymous(f.Parent(), p)
	use(f, p.Type.Base)
}

// Parameter is a function parameter. It is a named entity but, per spec
// §4.8, it is not itself declared into the enclosing scope's symbol table
// the way a Field or a top-level Variable is: it is only reachable through
// its owning Function's Params slice.
type Parameter struct {
	base
	Named
	Type       QualType
	HasDefault bool
}

// NewParameter constructs a parameter value; callers attach it to a
// Function with Function.AddParameter.
func NewParameter(cm *CodeModel, name string, t QualType, hasDefault bool) *Parameter {
	p := &Parameter{Named: Named(name), Type: t, HasDefault: hasDefault}
	p.id = cm.nextID()
	return p
}
