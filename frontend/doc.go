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

// Package frontend declares the oracle interface the convert package walks
// to build a code model: a small set of capability interfaces over an
// opaque C++ front-end's AST. Nothing in this package parses C++ itself;
// it only states what convert needs from whatever front-end a caller
// plugs in (libclang via cgo, a clang-c binding, a protobuf-based AST
// service, or an in-memory test fixture).
package frontend
