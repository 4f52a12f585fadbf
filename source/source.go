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

package source

import (
	"github.com/aesilevich/cm-sub001/frontend"
	"github.com/aesilevich/cm-sub001/model"
)

// Node is the source-text fact the front-end reported for one code-model
// entity: its location (opaque, front-end-defined, the same string
// frontend.Decl.Location returns) and the declaration it was converted
// from, kept so a caller can walk back to the AST side without the
// converter having to carry that reference on the entity itself.
type Node struct {
	Location string
	Decl     frontend.Decl
}

// Overlay is the twin ASTToSemantic/SemanticToAST map pair a
// convert.Converter populates when Options.IncludeSourceModel is set: one
// direction from a model entity to its source fact, the other from that
// fact back to the entity. Kept as a dedicated package, not a field on
// model.CodeModel, so that every caller not asking for source fidelity
// never allocates it.
type Overlay struct {
	entityToNode map[model.Entity]*Node
	nodeToEntity map[*Node]model.Entity
}

// NewOverlay returns an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{
		entityToNode: map[model.Entity]*Node{},
		nodeToEntity: map[*Node]model.Entity{},
	}
}

// Record associates e with the source fact described by decl, returning
// the Node so the caller can thread it further (e.g. attach diagnostics).
// Recording the same entity twice replaces its prior Node; the reverse map
// is kept in sync so an older Node pointer no longer resolves.
func (o *Overlay) Record(e model.Entity, decl frontend.Decl) *Node {
	n := &Node{Location: decl.Location(), Decl: decl}
	if old, ok := o.entityToNode[e]; ok {
		delete(o.nodeToEntity, old)
	}
	o.entityToNode[e] = n
	o.nodeToEntity[n] = e
	return n
}

// NodeFor returns the source fact recorded for e, or nil if none was.
func (o *Overlay) NodeFor(e model.Entity) *Node {
	return o.entityToNode[e]
}

// EntityFor returns the entity n was recorded for, or nil if n is not (or
// is no longer) part of this overlay.
func (o *Overlay) EntityFor(n *Node) model.Entity {
	return o.nodeToEntity[n]
}

// Len reports how many entities carry a recorded source fact.
func (o *Overlay) Len() int {
	return len(o.entityToNode)
}
