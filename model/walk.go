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

// EntitiesOfKind returns every direct child of ctx whose concrete type is
// T, in the context's insertion order. It is the Go replacement for the
// original's `entities_of_kind<T>()` member-template and for the
// `dynamic_cast` filtering gapid's resolver does by hand: a type parameter
// plus a type switch stand in for C++ RTTI.
func EntitiesOfKind[T Entity](ctx Context) []T {
	var out []T
	for _, c := range ctx.Children() {
		if t, ok := c.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// Walk visits every entity reachable from ctx through Children,
// depth-first in insertion order, calling visit once per entity; ctx
// itself is not visited. It gives a canonical traversal order for the
// determinism property (spec §8, property 5): two models produced from the
// same input yield identical visit sequences.
func Walk(ctx Context, visit func(Entity)) {
	for _, c := range ctx.Children() {
		visit(c)
		if child, ok := c.(Context); ok {
			Walk(child, visit)
		}
	}
}
