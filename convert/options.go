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

// BuiltinSetPolicy governs what happens when the front-end reports a
// builtin type tag this repo's model.BuiltinKind enumeration does not
// recognise.
type BuiltinSetPolicy int

const (
	// FailOnUnknownBuiltin reports an UnsupportedConstructError for the
	// enclosing declaration and skips it.
	FailOnUnknownBuiltin BuiltinSetPolicy = iota
	// MapToUnknownSentinel silently maps an unrecognised builtin tag to
	// model.BuiltinVoid, recording no diagnostic, and lets the rest of
	// the declaration convert.
	MapToUnknownSentinel
)

// Options configures one call to New/Convert.
type Options struct {
	// IncludeImplicit includes compiler-synthesised declarations (an
	// implicit copy constructor, an implicit destructor) in the model.
	// Off by default: most callers only care about user-written code.
	IncludeImplicit bool

	// IncludeFunctionBodies is accepted but not read by the converter:
	// function bodies are recorded neither in the code model nor in the
	// source model overlay, whatever its value.
	IncludeFunctionBodies bool

	// BuiltinSet selects how an unrecognised builtin tag is handled.
	BuiltinSet BuiltinSetPolicy

	// IncludeSourceModel additionally builds a *source.Overlay
	// alongside the code model (spec §4.9).
	IncludeSourceModel bool
}
