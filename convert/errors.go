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
	"fmt"

	"github.com/aesilevich/cm-sub001/frontend"
)

// UnsupportedConstructError reports a front-end construct the converter
// does not handle: an unrecognised type kind, a builtin tag outside the
// recognised set, a template argument the front-end could not render.
// When it is recorded as a Diagnostic, conversion of the enclosing
// declaration is abandoned and the rest of the translation unit still
// converts (spec §7). When a decl-map entry has the wrong entity kind for
// the declaration being converted, it is instead returned as an error and
// Convert stops.
type UnsupportedConstructError struct {
	// Node identifies the offending front-end node. It is either a
	// frontend.Decl or a frontend.TypeNode.
	Node   interface{}
	Reason string
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported construct: %s", e.Reason)
}

// RedefinitionError reports a second definition of an already-complete
// record or a second definition of a non-inline function. The existing
// entity is always kept; the error is informational, recorded as a
// Diagnostic rather than aborting conversion.
type RedefinitionError struct {
	Name   string
	Reason string
}

func (e *RedefinitionError) Error() string {
	return fmt.Sprintf("redefinition of %q: %s", e.Name, e.Reason)
}

// DiagnosticKind classifies a Diagnostic for callers that want to filter
// or count without inspecting the wrapped error's concrete type.
type DiagnosticKind int

const (
	DiagnosticUnsupportedConstruct DiagnosticKind = iota
	DiagnosticRedefinition
)

// Diagnostic is one non-fatal problem recorded during conversion.
type Diagnostic struct {
	Kind     DiagnosticKind
	Err      error
	Decl     frontend.Decl
	DeclKind frontend.DeclKind
}

// Diagnostics accumulates the non-fatal problems a Converter records across
// all of its Convert calls. It is the authoritative, testable record spec §7 promises
// alongside the (also logged) Warn-level log lines.
type Diagnostics []Diagnostic

// HasErrors reports whether any diagnostic was recorded.
func (d Diagnostics) HasErrors() bool { return len(d) > 0 }

// Count returns how many recorded diagnostics have the given kind.
func (d Diagnostics) Count(kind DiagnosticKind) int {
	n := 0
	for _, diag := range d {
		if diag.Kind == kind {
			n++
		}
	}
	return n
}
