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

// Context is an entity that can own child entities: a CodeModel, a
// Namespace, a Record, a Template or a PartialSpecialization. It is the Go analogue of the
// original's `context` mixin and of gapid's Owner/members pair, collapsed
// into a single capability since Go has no multiple inheritance to keep
// them separate.
type Context interface {
	Entity

	// Members returns every named entity declared directly in this
	// context, in declaration order.
	Members() []NamedEntity

	// Find returns the first named entity declared under name in this
	// context, or nil. It does not search parent contexts: qualified and
	// unqualified name resolution is a converter concern, not a model
	// one.
	Find(name string) NamedEntity

	// FindAll returns every named entity declared under name in this
	// context, in declaration order. Used to resolve overload sets and
	// to detect redefinitions.
	FindAll(name string) []NamedEntity

	// Children returns every entity parented directly on this context,
	// named or not (e.g. a template's substitutions), in the order they
	// were registered. This is the set invariant 1 quantifies over: for
	// every entity e, e.Parent().Children() contains e.
	Children() []Entity

	declare(e NamedEntity)
	adoptChild(e Entity)
}

// contextBase is embedded in every concrete Context implementation.
type contextBase struct {
	base
	syms     symbols
	children []Entity
}

func (c *contextBase) Members() []NamedEntity { return c.syms.all() }

func (c *contextBase) Find(name string) NamedEntity { return c.syms.find(name) }

func (c *contextBase) FindAll(name string) []NamedEntity { return c.syms.findAll(name) }

func (c *contextBase) Children() []Entity { return c.children }

func (c *contextBase) declare(e NamedEntity) {
	c.syms.add(e)
}

func (c *contextBase) adoptChild(e Entity) {
	c.children = append(c.children, e)
}

// adopt registers child as a named member of parent: it sets child's
// parent pointer, indexes it by name, and records it in parent's child
// list. Every entity constructor that declares a named entity into a
// Context calls adopt exactly once, so that invariant 1 (every entity
// other than the root CodeModel has exactly one parent context, and
// appears in that parent's children) holds unconditionally.
func adopt(parent Context, child NamedEntity) {
	child.setParent(parent)
	parent.declare(child)
	parent.adoptChild(child)
}

// adoptAnonymous registers child as a member of parent's child list
// without indexing it by name: used for entities that are parented but not
// name-looked-up, such as template substitutions and function parameters.
func adoptAnonymous(parent Context, child Entity) {
	child.setParent(parent)
	parent.adoptChild(child)
}
