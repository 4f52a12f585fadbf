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

// Package model holds the language-neutral, in-memory code model: the
// hierarchical object graph of namespaces, records, functions, typedefs,
// variables and templates that an AST-to-model converter (package convert)
// materialises from a C++ translation unit.
//
// The model never imports a front-end. It only knows about entities,
// contexts, types and templates; nothing in this package parses C++ or
// walks a compiler AST.
package model
