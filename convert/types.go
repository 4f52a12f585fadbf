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

var builtinTagTable = map[frontend.BuiltinTag]model.BuiltinKind{}

// RegisterBuiltinTag lets a front-end binding declare how its own builtin
// tag enumeration maps onto model.BuiltinKind. Call it during program
// initialisation, before any Converter is used; the table is process-wide
// because a front-end's tag set is a fixed property of that binding, not
// of any one conversion.
func RegisterBuiltinTag(tag frontend.BuiltinTag, kind model.BuiltinKind) {
	builtinTagTable[tag] = kind
}

// convertType converts a front-end qualified type reference into a
// model.QualType, peeling one level of structure and recursing, per
// spec §4.5.
func (c *Converter) convertType(t frontend.TypeNode) (model.QualType, error) {
	base, err := c.convertUnqualified(t)
	if err != nil {
		return model.QualType{}, err
	}
	return model.QualType{
		Base: base,
		Quals: model.CVQualifiers{
			Const:    t.Const(),
			Volatile: t.Volatile(),
		},
	}, nil
}

func (c *Converter) convertUnqualified(t frontend.TypeNode) (model.Type, error) {
	switch t.Kind() {
	case frontend.TypeBuiltin:
		return c.convertBuiltin(t)

	case frontend.TypePointer:
		pointee, err := c.convertType(t.Pointee())
		if err != nil {
			return nil, err
		}
		return c.Model.GetPointerType(pointee), nil

	case frontend.TypeLValueReference:
		referee, err := c.convertType(t.Pointee())
		if err != nil {
			return nil, err
		}
		return c.Model.GetLValueReferenceType(referee), nil

	case frontend.TypeRValueReference:
		referee, err := c.convertType(t.Pointee())
		if err != nil {
			return nil, err
		}
		return c.Model.GetRValueReferenceType(referee), nil

	case frontend.TypeArray:
		elem, err := c.convertType(t.Pointee())
		if err != nil {
			return nil, err
		}
		return c.Model.GetArrayType(elem, t.ArraySize()), nil

	case frontend.TypeFunction:
		ret, err := c.convertType(t.ReturnType())
		if err != nil {
			return nil, err
		}
		params := make([]model.QualType, 0, len(t.Params()))
		for _, p := range t.Params() {
			pt, err := c.convertType(p)
			if err != nil {
				return nil, err
			}
			params = append(params, pt)
		}
		return c.Model.GetFunctionType(ret, params, t.Variadic()), nil

	case frontend.TypeRecord:
		return c.findOrCreateRecordShell(t.Record())

	case frontend.TypeTypedef:
		ent := c.lookup(t.Typedef())
		if ent == nil {
			return nil, &UnsupportedConstructError{Node: t, Reason: "typedef referenced before its declaration was converted"}
		}
		td, ok := ent.(model.Type)
		if !ok {
			return nil, &UnsupportedConstructError{Node: t, Reason: "canonical decl did not convert to a type"}
		}
		return td, nil

	case frontend.TypeTemplateParameter:
		ent := c.lookup(t.TemplateParam())
		if ent == nil {
			return nil, &UnsupportedConstructError{Node: t, Reason: "template parameter referenced before its declaration was converted"}
		}
		tp, ok := ent.(model.Type)
		if !ok {
			return nil, &UnsupportedConstructError{Node: t, Reason: "canonical decl did not convert to a type template parameter"}
		}
		return tp, nil

	case frontend.TypeTemplateSpecialization:
		return c.convertSpecialization(t.Specialization())

	case frontend.TypeDependentName:
		scope, err := c.convertType(t.DependentScope())
		if err != nil {
			return nil, err
		}
		return model.NewDependentNameType(c.Model, c.curCtx, scope, t.DependentMember()), nil

	case frontend.TypeDecltype:
		return model.NewDecltypeType(c.Model, c.curCtx, t.DecltypeExpr()), nil

	case frontend.TypeElaborated:
		// Elaborated types (`struct X`, `typename T::U`) are unwrapped
		// to their underlying type; the spelling is recorded at the
		// source-model layer only (spec §4.5 edge case).
		return c.convertUnqualified(t.Elaborated())

	default:
		return nil, &UnsupportedConstructError{Node: t, Reason: "unrecognised type kind"}
	}
}

func (c *Converter) convertBuiltin(t frontend.TypeNode) (model.Type, error) {
	kind, ok := builtinTagTable[t.Builtin()]
	if !ok {
		switch c.opts.BuiltinSet {
		case MapToUnknownSentinel:
			return c.Model.Builtin(model.BuiltinVoid), nil
		default:
			return nil, &UnsupportedConstructError{Node: t, Reason: "unsupported_builtin"}
		}
	}
	return c.Model.Builtin(kind), nil
}

// findOrCreateRecordShell resolves decl to its model.Record, materialising
// an empty, incomplete shell if the record has not been converted yet
// (spec §4.5: "materialise an empty entity ... it will be filled when its
// declaration is visited").
func (c *Converter) findOrCreateRecordShell(decl frontend.Decl) (*model.Record, error) {
	if decl == nil {
		return nil, &UnsupportedConstructError{Reason: "record type with no declaration"}
	}
	if ent := c.lookup(decl); ent != nil {
		rec, ok := ent.(*model.Record)
		if !ok {
			return nil, &UnsupportedConstructError{Node: decl, Reason: "canonical decl did not convert to a record"}
		}
		return rec, nil
	}
	kind := model.RecordStruct
	if rd, ok := decl.(frontend.RecordDecl); ok {
		kind = recordTagToKind(rd.RecordTag())
	}
	rec := model.NewRecord(c.Model, c.curCtx, decl.Name(), kind)
	c.register(decl, rec, "record")
	return rec, nil
}

func recordTagToKind(tag frontend.RecordTag) model.RecordKind {
	switch tag {
	case frontend.RecordTagClass:
		return model.RecordClass
	case frontend.RecordTagUnion:
		return model.RecordUnion
	default:
		return model.RecordStruct
	}
}
