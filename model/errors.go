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

import "github.com/pkg/errors"

// ErrInternalInconsistency is the sentinel wrapped by every model-invariant
// violation: a missing parent on a child that requires one, a mismatched
// entity kind when patching a forward declaration, a corrupted use/user
// edge. Callers compare against it with errors.Is; the wrapped error
// carries the specific detail via errors.Wrap.
var ErrInternalInconsistency = errors.New("model: internal inconsistency")

// Strict controls whether an invariant violation panics immediately
// (Strict == true, the default) or is returned wrapping
// ErrInternalInconsistency for the caller to handle (Strict == false). It
// is a package variable rather than a build tag or a field on CodeModel so
// that tests can flip it and assert on the returned error instead of
// recovering from a panic (see TestRecordPatchKindRejectsMismatch).
var Strict = true

// inconsistency reports an invariant violation at the point it is
// detected: it panics when Strict is set, otherwise returns an error
// wrapping ErrInternalInconsistency with reason as context.
func inconsistency(reason string) error {
	err := errors.Wrap(ErrInternalInconsistency, reason)
	if Strict {
		panic(err)
	}
	return err
}
