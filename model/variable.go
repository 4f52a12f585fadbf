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

// Variable is a free or namespace-scoped variable declaration.
type Variable struct {
	base
	Named

	Type    QualType
	Storage StorageClass
}

// NewVariable creates and declares a variable named name under scope with
// the given type.
func NewVariable(cm *CodeModel, scope Context, name string, t QualType) *Variable {
	v := &Variable{Named: Named(name), Type: t}
	v.id = cm.nextID()
	adopt(scope, v)
	use(v, t.Base)
	return v
}
