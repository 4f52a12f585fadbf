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

import "strconv"

// Value is a compile-time constant as the front-end's canonicalizer
// rendered it: a non-type template argument, an enumerator, an array
// bound. The model never evaluates or type-checks a Value; it only stores
// the canonical string the front-end produced and compares values by that
// string, mirroring the original's cm::value, which likewise keeps only a
// string representation and a hash derived from it.
type Value struct {
	str string
}

// NewValue wraps the canonical string representation s, as already
// normalised by the front-end (e.g. "42", "true", "&x").
func NewValue(s string) Value { return Value{str: s} }

// IntValue wraps the canonical decimal representation of v.
func IntValue(v int64) Value { return Value{str: strconv.FormatInt(v, 10)} }

// UintValue wraps the canonical decimal representation of v.
func UintValue(v uint64) Value { return Value{str: strconv.FormatUint(v, 10)} }

// StringValue wraps s as its own canonical representation, quoted the way
// the front-end renders a string-literal template argument or enumerator
// initializer.
func StringValue(s string) Value { return Value{str: strconv.Quote(s)} }

// String returns the canonical string representation.
func (v Value) String() string { return v.str }

// Equal reports whether v and other have the same canonical
// representation.
func (v Value) Equal(other Value) bool { return v.str == other.str }
