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

// convertDecl is the top-level dispatch table of spec §4.6. The handlers
// it dispatches to consult the decl-map first (namespaces are instead
// reopened by name), so that converting the same canonical declaration
// twice adds no second entity (the idempotence requirement).
func (c *Converter) convertDecl(d frontend.Decl) error {
	if !c.opts.IncludeImplicit && d.IsImplicit() {
		return nil
	}

	switch d.Kind() {
	case frontend.DeclNamespace:
		return c.convertNamespace(d)
	case frontend.DeclRecord:
		return c.convertRecord(d)
	case frontend.DeclTypedef:
		return c.convertTypedef(d)
	case frontend.DeclFunction, frontend.DeclMethod:
		return c.convertFunction(d)
	case frontend.DeclVariable, frontend.DeclField:
		return c.convertVariable(d)
	case frontend.DeclClassTemplate, frontend.DeclFunctionTemplate:
		return c.convertTemplate(d)
	case frontend.DeclClassTemplatePartialSpecialization:
		return c.convertPartialSpecialization(d)
	case frontend.DeclClassTemplateSpecialization:
		return c.convertExplicitSpecialization(d)
	case frontend.DeclLinkageSpec:
		return c.convertLinkageSpec(d)
	default:
		// Friends, using-directives, static_assert and anything else
		// not named in the dispatch table are silently ignored (spec
		// §4.6, "Others").
		return nil
	}
}

func (c *Converter) convertNamespace(d frontend.Decl) error {
	ns := c.Model.NewNamespace(c.curCtx, d.Name())
	setter := c.with(ns, d)
	defer setter.Close()

	members, err := c.namespaceMembers(d)
	if err != nil {
		return err
	}
	for _, m := range members {
		if err := c.convertDecl(m); err != nil {
			return err
		}
	}
	return nil
}

// namespaceMembers resolves a namespace declaration's members. The
// frontend.Decl interface itself does not carry a member list (only
// frontend.RecordDecl does); a front-end binding exposes namespace
// members by having its namespace-decl type additionally implement the
// same Members() accessor the record case uses. A namespace without that
// accessor is treated as introducing an empty scope. Parent() is not
// consulted: a declaration passed through the translation unit's
// top-level Decls() is converted in the global namespace.
func (c *Converter) namespaceMembers(d frontend.Decl) ([]frontend.Decl, error) {
	type memberLister interface {
		Members() []frontend.Decl
	}
	if ml, ok := d.(memberLister); ok {
		return ml.Members(), nil
	}
	return nil, nil
}

func (c *Converter) convertTypedef(d frontend.Decl) error {
	if existing := c.lookup(d); existing != nil {
		return nil
	}
	td, ok := d.(interface{ Underlying() frontend.TypeNode })
	if !ok {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(),
			Err: &UnsupportedConstructError{Node: d, Reason: "typedef declaration missing underlying type"}})
		return nil
	}
	underlying, err := c.convertType(td.Underlying())
	if err != nil {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(), Err: err})
		return nil
	}
	t := model.NewTypedef(c.Model, c.curCtx, d.Name(), underlying)
	c.register(d, t, "typedef")
	return nil
}

func (c *Converter) convertVariable(d frontend.Decl) error {
	if existing := c.lookup(d); existing != nil {
		return nil
	}
	vd, ok := d.(interface{ Type() frontend.TypeNode })
	if !ok {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(),
			Err: &UnsupportedConstructError{Node: d, Reason: "variable/field declaration missing a type"}})
		return nil
	}
	qt, err := c.convertType(vd.Type())
	if err != nil {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(), Err: err})
		return nil
	}
	if d.Kind() == frontend.DeclField {
		rec, ok := c.curCtx.(*model.Record)
		if !ok {
			c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(),
				Err: &UnsupportedConstructError{Node: d, Reason: "field declared outside a record context"}})
			return nil
		}
		f := model.NewField(c.Model, rec, d.Name(), qt)
		c.register(d, f, "field")
		return nil
	}
	v := model.NewVariable(c.Model, c.curCtx, d.Name(), qt)
	c.register(d, v, "variable")
	return nil
}

func (c *Converter) convertLinkageSpec(d frontend.Decl) error {
	// Transparent: recurse without changing the current context (spec
	// §4.6, `extern "C"` is "transparent; recurse").
	members, err := c.namespaceMembers(d)
	if err != nil {
		return err
	}
	for _, m := range members {
		if err := c.convertDecl(m); err != nil {
			return err
		}
	}
	return nil
}
