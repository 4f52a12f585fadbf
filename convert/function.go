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
	"github.com/aesilevich/cm-sub001/frontend"
	"github.com/aesilevich/cm-sub001/model"
)

// convertFunction implements spec §4.6's Function row and §4.8's
// two-pass population: return and parameter types are converted first,
// then names are patched in a second pass keyed by positional index,
// because a later redeclaration (the defining one) may carry richer name
// information than an earlier one.
func (c *Converter) convertFunction(d frontend.Decl) error {
	fd, ok := d.(frontend.FunctionDecl)
	if !ok {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(),
			Err: &UnsupportedConstructError{Node: d, Reason: "function declaration does not implement frontend.FunctionDecl"}})
		return nil
	}

	if existing := c.lookup(d); existing != nil {
		fn, ok := existing.(*model.Function)
		if !ok {
			return &UnsupportedConstructError{Node: d, Reason: "canonical decl did not convert to a function"}
		}
		if fd.Defined() && fn.Defined && !fn.Storage.Inline && !fd.Inline() {
			// Second definition of a non-inline function: the existing
			// entity is kept and the redefinition diagnosed.
			c.diagnose(Diagnostic{Kind: DiagnosticRedefinition, Decl: d, DeclKind: d.Kind(),
				Err: &RedefinitionError{Name: fn.Name(), Reason: "function already defined"}})
			return nil
		}
		return c.patchParameterNames(fn, fd)
	}

	ret, err := c.convertType(fd.ReturnType())
	if err != nil {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(), Err: err})
		return nil
	}

	paramTypes := make([]model.QualType, 0, len(fd.Params()))
	for _, p := range fd.Params() {
		pt, err := c.convertType(p.Type)
		if err != nil {
			c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(), Err: err})
			return nil
		}
		paramTypes = append(paramTypes, pt)
	}

	// Variadic is always false here: frontend.FunctionDecl exposes no
	// variadic flag, so a variadic function declaration gets a
	// non-variadic function type.
	funcType := c.Model.GetFunctionType(ret, paramTypes, false)

	fn := model.NewFunction(c.Model, c.curCtx, d.Name())
	fn.SetType(funcType)
	fn.Storage = model.StorageClass{
		Inline:    fd.Inline(),
		Static:    fd.Static(),
		Extern:    fd.Extern(),
		Constexpr: fd.Constexpr(),
	}
	fn.Defined = fd.Defined()

	if fd.IsMethod() {
		isConst, isVolatile := fd.CVQualifiers()
		fn.CVQuals = model.CVQualifiers{Const: isConst, Volatile: isVolatile}
		fn.RefQual = refTagToRefQualifier(fd.RefQualifier())
		fn.Virtual = fd.Virtual()
		fn.Pure = fd.Pure()
	}

	for i, p := range fd.Params() {
		param := model.NewParameter(c.Model, p.Name, paramTypes[i], p.HasDefault)
		fn.AddParameter(param)
	}

	c.register(d, fn, "function")
	return nil
}

// patchParameterNames re-applies parameter names from a later
// redeclaration that carries richer information (spec §4.8).
func (c *Converter) patchParameterNames(fn *model.Function, fd frontend.FunctionDecl) error {
	params := fd.Params()
	for i, p := range params {
		if i >= len(fn.Params) {
			break
		}
		if p.Name != "" && fn.Params[i].Name() == "" {
			fn.Params[i].Named = model.Named(p.Name)
		}
	}
	if fd.Defined() {
		fn.Defined = true
	}
	return nil
}

func refTagToRefQualifier(r frontend.RefTag) model.RefQualifier {
	switch r {
	case frontend.RefTagLValue:
		return model.RefLValue
	case frontend.RefTagRValue:
		return model.RefRValue
	default:
		return model.RefNone
	}
}
