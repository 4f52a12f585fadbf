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

// EntityID is a stable, arena-local identity for an entity. It is distinct
// from any identity the front-end assigns to the declaration the entity was
// converted from, and is never reused within a CodeModel's lifetime.
type EntityID uint64

// Entity is the root capability every node in the code model graph
// implements: identity, an optional parent context, and the use/user
// cross-reference edges described in spec §3.
//
// Entity is deliberately not implementable from outside this package (its
// method set includes unexported methods): entities are created exclusively
// through a Context's factory methods, never fabricated directly by
// callers, matching the "Lifecycles" invariant in spec §3.
type Entity interface {
	// ID returns this entity's stable arena-local identity.
	ID() EntityID

	// Parent returns the context that owns this entity, or nil for the
	// root CodeModel, which has no parent.
	Parent() Context

	// Uses returns the entities this entity refers to (e.g. a pointer
	// type's pointee), in the order the edges were registered.
	Uses() []Entity

	// Users returns the entities that refer to this entity, the reverse
	// of Uses.
	Users() []Entity

	setParent(Context)
	addUse(Entity)
	addUser(Entity)
	removeUse(Entity)
	removeUser(Entity)
}

// NamedEntity is an Entity that carries a name. The name may be empty for
// anonymous entities (e.g. an anonymous record or union).
type NamedEntity interface {
	Entity
	Name() string
}

// base is embedded (by value) in every concrete entity type in this
// package. It is the Go realisation of the C++ original's `entity` base
// class: one flat struct instead of a virtual-inheritance diamond, per the
// capability-mixin design note (spec §9).
type base struct {
	id     EntityID
	parent Context
	uses   []Entity
	users  []Entity
}

func (b *base) ID() EntityID    { return b.id }
func (b *base) Parent() Context { return b.parent }
func (b *base) Uses() []Entity  { return b.uses }
func (b *base) Users() []Entity { return b.users }

func (b *base) setParent(c Context) { b.parent = c }

func (b *base) addUse(e Entity) {
	b.uses = append(b.uses, e)
}

func (b *base) addUser(e Entity) {
	b.users = append(b.users, e)
}

func (b *base) removeUse(e Entity) {
	b.uses = removeEntity(b.uses, e)
}

func (b *base) removeUser(e Entity) {
	b.users = removeEntity(b.users, e)
}

func removeEntity(s []Entity, e Entity) []Entity {
	for i, o := range s {
		if o == e {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// use registers a directed use/user edge pair: user refers to used. Every
// constructor that stores a reference to another entity (pointer→pointee,
// function→return type, substitution→template, argument→type, ...) must
// call use so that invariant 2 (every use edge has a matching user edge)
// holds from the moment the entity is constructed.
func use(user, used Entity) {
	if used == nil {
		return
	}
	user.addUse(used)
	used.addUser(user)
}

// unuse removes a previously registered use/user edge pair. It exists for
// the rare case where a converter needs to retract a provisional edge (e.g.
// replacing a forward-declared placeholder use with the real entity); it is
// not exercised by the normal conversion path, which only ever adds edges.
func unuse(user, used Entity) {
	if used == nil {
		return
	}
	user.removeUse(used)
	used.removeUser(user)
}

// Named is mixed into concrete entity types to implement NamedEntity.Name.
// It mirrors gapil/semantic.Named, down to being a plain string conversion
// with no behaviour beyond the accessor.
type Named string

// Name implements NamedEntity.
func (n Named) Name() string { return string(n) }
