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

// convertTemplate implements spec §4.6's ClassTemplate/FunctionTemplate
// rows: create-or-find the Template by canonical declaration, declare its
// parameters, and populate its uninstantiated primary body (a class
// template's member list, or a function template's signature) the same way
// an ordinary record or function is populated.
func (c *Converter) convertTemplate(d frontend.Decl) error {
	tmpl, isNew, err := c.findOrCreateTemplate(d)
	if err != nil {
		return err
	}
	if isNew {
		if err := c.populateTemplateParams(tmpl, d); err != nil {
			return err
		}
	}
	if tmpl.IsFunctionTemplate {
		return c.convertTemplatedFunction(tmpl, d)
	}
	return c.convertTemplatedRecord(tmpl, d)
}

func (c *Converter) findOrCreateTemplate(d frontend.Decl) (*model.Template, bool, error) {
	if existing := c.lookup(d); existing != nil {
		t, ok := existing.(*model.Template)
		if !ok {
			return nil, false, &UnsupportedConstructError{Node: d, Reason: "canonical decl did not convert to a template"}
		}
		return t, false, nil
	}
	t := model.NewTemplate(c.Model, c.curCtx, d.Name(), d.Kind() == frontend.DeclFunctionTemplate)
	c.register(d, t, "template")
	return t, true, nil
}

// populateTemplateParams declares t's parameter list from d.TemplateParams(),
// registering each parameter declaration in the decl-map so that a later
// TypeNode of kind TypeTemplateParameter can resolve it via
// c.lookup(node.TemplateParam()) the same way any other type reference
// resolves a declaration.
func (c *Converter) populateTemplateParams(t *model.Template, d frontend.Decl) error {
	for _, pd := range d.TemplateParams() {
		switch pd.Kind() {
		case frontend.DeclTemplateTypeParam:
			p := t.AddTypeParam(c.Model, pd.Name())
			c.register(pd, p, "template_type_param")
		case frontend.DeclTemplateValueParam:
			vt, err := c.convertType(pd.ValueType())
			if err != nil {
				c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: pd, DeclKind: pd.Kind(), Err: err})
				continue
			}
			p := t.AddValueParam(c.Model, pd.Name(), vt)
			c.register(pd, p, "template_value_param")
		default:
			c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: pd, DeclKind: pd.Kind(),
				Err: &UnsupportedConstructError{Node: pd, Reason: "unrecognised template parameter kind"}})
			continue
		}
		if pd.Pack() {
			t.SetVariadic(true)
		}
	}
	return nil
}

// convertTemplatedRecord populates a class template's uninstantiated
// primary record from its own defining declaration, mirroring
// convertRecord's population algorithm (spec §4.7) but storing the result
// on Template.PrimaryRecord rather than under the decl-map directly: the
// template's name, not the primary record's, is what the decl-map keys the
// template declaration to.
func (c *Converter) convertTemplatedRecord(t *model.Template, d frontend.Decl) error {
	rd, ok := d.(frontend.RecordDecl)
	if !ok {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(),
			Err: &UnsupportedConstructError{Node: d, Reason: "class template declaration does not implement frontend.RecordDecl"}})
		return nil
	}

	if t.PrimaryRecord == nil {
		t.PrimaryRecord = model.NewRecord(c.Model, t, d.Name(), recordTagToKind(rd.RecordTag()))
	}
	rec := t.PrimaryRecord

	if err := rec.PatchKind(recordTagToKind(rd.RecordTag())); err != nil {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(), Err: err})
		return nil
	}

	if !rd.IsComplete() || rec.Complete {
		return nil
	}

	return c.populateRecordBody(rec, rd, d)
}

// convertTemplatedFunction populates a function template's uninstantiated
// signature, mirroring convertFunction (spec §4.8) but storing the result
// on Template.PrimaryFunction.
func (c *Converter) convertTemplatedFunction(t *model.Template, d frontend.Decl) error {
	if t.PrimaryFunction != nil {
		return nil
	}

	fd, ok := d.(frontend.FunctionDecl)
	if !ok {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(),
			Err: &UnsupportedConstructError{Node: d, Reason: "function template declaration does not implement frontend.FunctionDecl"}})
		return nil
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

	funcType := c.Model.GetFunctionType(ret, paramTypes, false)

	fn := model.NewFunction(c.Model, t, d.Name())
	fn.SetType(funcType)
	fn.Storage = model.StorageClass{
		Inline:    fd.Inline(),
		Static:    fd.Static(),
		Extern:    fd.Extern(),
		Constexpr: fd.Constexpr(),
	}
	fn.Defined = fd.Defined()

	for i, p := range fd.Params() {
		param := model.NewParameter(c.Model, p.Name, paramTypes[i], p.HasDefault)
		fn.AddParameter(param)
	}

	t.PrimaryFunction = fn
	return nil
}

// convertPartialSpecialization implements spec §4.6's
// ClassTemplatePartialSpecialization row: resolve the primary template,
// bind the specialisation's own argument list, and declare its own
// (possibly narrower) parameter list.
func (c *Converter) convertPartialSpecialization(d frontend.Decl) error {
	if existing := c.lookup(d); existing != nil {
		return nil
	}

	sd, ok := d.(frontend.SpecializationDecl)
	if !ok {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(),
			Err: &UnsupportedConstructError{Node: d, Reason: "partial specialization does not implement frontend.SpecializationDecl"}})
		return nil
	}

	tmpl, err := c.resolvePrimaryTemplate(d, sd)
	if err != nil {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(), Err: err})
		return nil
	}

	// The specialisation's own parameters (e.g. X in `template <class X>
	// struct P<X, int>`) must be declared and registered before the
	// argument list is converted, since the argument list may itself name
	// them.
	part := c.Model.AddPartialSpecialization(tmpl)
	for _, pd := range d.TemplateParams() {
		switch pd.Kind() {
		case frontend.DeclTemplateTypeParam:
			p := part.AddTypeParam(c.Model, pd.Name())
			c.register(pd, p, "template_type_param")
		case frontend.DeclTemplateValueParam:
			vt, err := c.convertType(pd.ValueType())
			if err != nil {
				c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: pd, DeclKind: pd.Kind(), Err: err})
				continue
			}
			p := part.AddValueParam(c.Model, pd.Name(), vt)
			c.register(pd, p, "template_value_param")
		}
		if pd.Pack() {
			part.SetVariadic(true)
		}
	}

	args, _, err := c.convertTemplateArguments(sd.Arguments())
	if err != nil {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(), Err: err})
		return nil
	}
	part.SetArgs(args)

	c.register(d, part, "partial_specialization")
	return nil
}

// convertExplicitSpecialization implements spec §4.6's
// ClassTemplateSpecialization row: a full (explicit) specialisation is an
// instantiation substitution whose body is authored directly rather than
// derived from the primary template by substitution (spec §4.3).
func (c *Converter) convertExplicitSpecialization(d frontend.Decl) error {
	if existing := c.lookup(d); existing != nil {
		return nil
	}

	sd, ok := d.(frontend.SpecializationDecl)
	if !ok {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(),
			Err: &UnsupportedConstructError{Node: d, Reason: "explicit specialization does not implement frontend.SpecializationDecl"}})
		return nil
	}

	tmpl, err := c.resolvePrimaryTemplate(d, sd)
	if err != nil {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(), Err: err})
		return nil
	}

	args, _, err := c.convertTemplateArguments(sd.Arguments())
	if err != nil {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(), Err: err})
		return nil
	}

	subst := tmpl.FindSubstitution(args)
	if subst == nil {
		subst = c.Model.CreateInstantiation(tmpl, args, model.SubstitutionFullSpecialization)
	}

	if tmpl.IsFunctionTemplate {
		if fd, ok := d.(frontend.FunctionDecl); ok && subst.Function == nil {
			fn, err := c.convertExplicitSpecializationFunction(fd, d)
			if err != nil {
				c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(), Err: err})
			} else {
				subst.Function = fn
			}
		}
	} else if rd, ok := d.(frontend.RecordDecl); ok && subst.Record == nil && rd.IsComplete() {
		rec := model.NewRecord(c.Model, tmpl.Parent(), tmpl.Name(), recordTagToKind(rd.RecordTag()))
		if err := c.populateRecordBody(rec, rd, d); err != nil {
			return err
		}
		subst.Record = rec
	}

	c.register(d, subst, "template_full_specialization")
	return nil
}

func (c *Converter) convertExplicitSpecializationFunction(fd frontend.FunctionDecl, d frontend.Decl) (*model.Function, error) {
	ret, err := c.convertType(fd.ReturnType())
	if err != nil {
		return nil, err
	}
	paramTypes := make([]model.QualType, 0, len(fd.Params()))
	for _, p := range fd.Params() {
		pt, err := c.convertType(p.Type)
		if err != nil {
			return nil, err
		}
		paramTypes = append(paramTypes, pt)
	}
	funcType := c.Model.GetFunctionType(ret, paramTypes, false)
	fn := model.NewFunction(c.Model, c.curCtx, d.Name())
	fn.SetType(funcType)
	fn.Defined = fd.Defined()
	for i, p := range fd.Params() {
		param := model.NewParameter(c.Model, p.Name, paramTypes[i], p.HasDefault)
		fn.AddParameter(param)
	}
	return fn, nil
}

// resolvePrimaryTemplate looks up a (partial or explicit) specialisation's
// primary template declaration in the decl-map; the primary must already
// have been converted, since a specialisation always comes lexically after
// its template (spec §4.3).
func (c *Converter) resolvePrimaryTemplate(d frontend.Decl, sd frontend.SpecializationDecl) (*model.Template, error) {
	ent := c.lookup(sd.Primary())
	if ent == nil {
		return nil, &UnsupportedConstructError{Node: d, Reason: "specialization's primary template referenced before its declaration was converted"}
	}
	tmpl, ok := ent.(*model.Template)
	if !ok {
		return nil, &UnsupportedConstructError{Node: d, Reason: "canonical decl did not convert to a template"}
	}
	return tmpl, nil
}

// convertTemplateArguments converts a front-end specialisation's argument
// list into the model's tagged-union TemplateArgument slice, reporting
// whether any argument mentions a template parameter from an enclosing
// scope (spec §4.5's dependent-argument rule).
func (c *Converter) convertTemplateArguments(fargs []frontend.TemplateArgument) ([]model.TemplateArgument, bool, error) {
	args := make([]model.TemplateArgument, 0, len(fargs))
	anyDependent := false
	for _, fa := range fargs {
		if fa.Dependent() {
			anyDependent = true
		}
		if fa.IsType() {
			qt, err := c.convertType(fa.Type())
			if err != nil {
				return nil, false, err
			}
			args = append(args, model.TypeArgument(qt))
		} else {
			args = append(args, model.ValueArgument(model.NewValue(fa.Value())))
		}
	}
	return args, anyDependent, nil
}

// convertSpecialization implements spec §4.5's template-specialization type
// case, called from convertUnqualified for a TypeNode of kind
// TypeTemplateSpecialization. A concrete specialisation (primary resolves
// to a Template, no dependent arguments) finds-or-creates an instantiation
// and materialises its Record by substituting the primary template's body;
// anything dependent produces a dependent-instantiation substitution, which
// stands in as the Type itself since no concrete entity can be materialised
// yet.
func (c *Converter) convertSpecialization(spec frontend.TemplateSpecializationNode) (model.Type, error) {
	if spec == nil {
		return nil, &UnsupportedConstructError{Reason: "template specialization type with no node"}
	}

	args, anyDependent, err := c.convertTemplateArguments(spec.Arguments())
	if err != nil {
		return nil, err
	}

	primaryEnt := c.lookup(spec.Primary())
	tmpl, isTemplate := primaryEnt.(*model.Template)

	if !isTemplate || anyDependent {
		var name model.TemplateName
		if isTemplate {
			name = tmpl
		} else {
			name = model.NewDependentTemplateName(c.Model, c.curCtx, spec.Primary().Name(), model.QualType{})
		}
		return c.Model.CreateDependentInstantiation(c.curCtx, name, args), nil
	}

	subst := tmpl.FindSubstitution(args)
	if subst == nil {
		subst = c.Model.CreateInstantiation(tmpl, args, model.SubstitutionInstantiation)
	}

	if tmpl.IsFunctionTemplate {
		if subst.Function == nil {
			subst.Function = c.instantiateFunction(tmpl, subst)
		}
		return nil, &UnsupportedConstructError{Node: spec, Reason: "function template specialization used as a type"}
	}

	if subst.Record == nil {
		subst.Record = c.instantiateRecord(tmpl, subst)
	}
	return subst.Record, nil
}

// instantiateRecord materialises a class template instantiation's Record
// by substituting tmpl's own template parameters, wherever they occur in
// the primary body's base and field types, with the bound arguments.
func (c *Converter) instantiateRecord(tmpl *model.Template, subst *model.TemplateSubstitution) *model.Record {
	primary := tmpl.PrimaryRecord
	if primary == nil {
		// The template has no primary body (its declaration did not
		// implement frontend.RecordDecl): an empty, complete shell stands
		// in. A forward-declared template does have a PrimaryRecord, an
		// incomplete one with no fields, so instantiating it before its
		// body is reached also yields a record with no fields; a later
		// convertTemplate call does not revisit already-materialised
		// instantiations.
		rec := model.NewRecord(c.Model, tmpl.Parent(), tmpl.Name(), model.RecordStruct)
		rec.MarkComplete()
		return rec
	}

	rec := model.NewRecord(c.Model, tmpl.Parent(), tmpl.Name(), primary.Kind)
	rec.Anonymous = primary.Anonymous
	for _, b := range primary.Bases {
		rec.AddBase(model.BaseSpecifier{
			Base:    c.substituteQualType(b.Base, tmpl, subst.Args),
			Access:  b.Access,
			Virtual: b.Virtual,
		})
	}
	for _, f := range primary.Fields {
		model.NewField(c.Model, rec, f.Name(), c.substituteQualType(f.Type, tmpl, subst.Args))
	}
	rec.MarkComplete()
	return rec
}

// instantiateFunction materialises a function template instantiation's
// Function the same way instantiateRecord does for a class template.
func (c *Converter) instantiateFunction(tmpl *model.Template, subst *model.TemplateSubstitution) *model.Function {
	primary := tmpl.PrimaryFunction
	if primary == nil {
		return model.NewFunction(c.Model, tmpl.Parent(), tmpl.Name())
	}

	paramTypes := make([]model.QualType, len(primary.Params))
	for i, p := range primary.Params {
		paramTypes[i] = c.substituteQualType(p.Type, tmpl, subst.Args)
	}
	ret := c.substituteQualType(primary.Type.Return, tmpl, subst.Args)
	funcType := c.Model.GetFunctionType(ret, paramTypes, primary.Type.Variadic)

	fn := model.NewFunction(c.Model, tmpl.Parent(), tmpl.Name())
	fn.SetType(funcType)
	fn.Storage = primary.Storage
	fn.Defined = primary.Defined
	for i, p := range primary.Params {
		param := model.NewParameter(c.Model, p.Name(), paramTypes[i], p.HasDefault)
		fn.AddParameter(param)
	}
	return fn
}

// substituteQualType rebuilds qt with every occurrence of one of tmpl's own
// template parameters replaced by the corresponding bound argument,
// re-interning any composite type so the result still participates in the
// model's structural-equality guarantees.
func (c *Converter) substituteQualType(qt model.QualType, tmpl *model.Template, args []model.TemplateArgument) model.QualType {
	return model.QualType{Base: c.substituteType(qt.Base, tmpl, args), Quals: qt.Quals}
}

func (c *Converter) substituteType(t model.Type, tmpl *model.Template, args []model.TemplateArgument) model.Type {
	if t == nil {
		return nil
	}
	if p, ok := t.(model.TemplateParameter); ok {
		for i, param := range tmpl.TemplateParams() {
			if param == p && i < len(args) && args[i].IsType() {
				return args[i].Type().Base
			}
		}
		return t
	}

	switch v := t.(type) {
	case *model.Pointer:
		return c.Model.GetPointerType(c.substituteQualType(v.Pointee, tmpl, args))
	case *model.LValueReference:
		return c.Model.GetLValueReferenceType(c.substituteQualType(v.Referee, tmpl, args))
	case *model.RValueReference:
		return c.Model.GetRValueReferenceType(c.substituteQualType(v.Referee, tmpl, args))
	case *model.Array:
		return c.Model.GetArrayType(c.substituteQualType(v.Element, tmpl, args), v.Size)
	case *model.FunctionType:
		ret := c.substituteQualType(v.Return, tmpl, args)
		params := make([]model.QualType, len(v.Params))
		for i, p := range v.Params {
			params[i] = c.substituteQualType(p, tmpl, args)
		}
		return c.Model.GetFunctionType(ret, params, v.Variadic)
	default:
		// Everything else passes through unchanged. Builtins,
		// non-dependent records and typedefs carry no reference to
		// tmpl's parameters; dependent-name types and dependent
		// instantiations are not rewritten, so they keep referring to
		// tmpl's parameters.
		return t
	}
}
