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

// symbols is an ordered, append-only table of named entities sharing a
// context. Unlike gapid's semantic.Symbols, which sorts entries by name for
// binary-search lookup, symbols preserves insertion order: Members must
// enumerate declarations in source order, and Find must return the first
// declaration with a given name (the one visible to an unqualified lookup
// at the point a later redeclaration or overload is added), not whichever
// entry happens to sort first.
type symbols struct {
	entries []NamedEntity
	byName  map[string][]int
}

// add appends entry to the table, indexing it under its current name. The
// name is captured at insertion time; entries are never renamed after
// being added.
func (s *symbols) add(entry NamedEntity) {
	if s.byName == nil {
		s.byName = map[string][]int{}
	}
	idx := len(s.entries)
	s.entries = append(s.entries, entry)
	name := entry.Name()
	s.byName[name] = append(s.byName[name], idx)
}

// all returns every entry in insertion order.
func (s *symbols) all() []NamedEntity {
	return s.entries
}

// find returns the first entry added under name, or nil if none exists.
func (s *symbols) find(name string) NamedEntity {
	idxs := s.byName[name]
	if len(idxs) == 0 {
		return nil
	}
	return s.entries[idxs[0]]
}

// findAll returns every entry added under name, in insertion order.
func (s *symbols) findAll(name string) []NamedEntity {
	idxs := s.byName[name]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]NamedEntity, len(idxs))
	for i, idx := range idxs {
		out[i] = s.entries[idx]
	}
	return out
}

// remove deletes entry from the table. It is O(n); no code in this
// package calls it, since the conversion path only ever appends.
func (s *symbols) remove(entry NamedEntity) {
	for i, e := range s.entries {
		if e == entry {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.reindex()
}

// reindex rebuilds byName after a removal shifts indices.
func (s *symbols) reindex() {
	s.byName = map[string][]int{}
	for i, e := range s.entries {
		name := e.Name()
		s.byName[name] = append(s.byName[name], i)
	}
}
