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

// convertRecord implements spec §4.6's Record row and §4.7's population
// algorithm: create-or-find the record by canonical declaration, and if
// this is the defining declaration, populate bases, fields and nested
// declarations with the current context swapped to the record.
func (c *Converter) convertRecord(d frontend.Decl) error {
	rd, ok := d.(frontend.RecordDecl)
	if !ok {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(),
			Err: &UnsupportedConstructError{Node: d, Reason: "record declaration does not implement frontend.RecordDecl"}})
		return nil
	}

	rec, isNew, err := c.findOrCreateRecordDecl(rd)
	if err != nil {
		return err
	}

	if err := rec.PatchKind(recordTagToKind(rd.RecordTag())); err != nil {
		c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(), Err: err})
		return nil
	}

	if !rd.IsComplete() {
		return nil
	}

	if rec.Complete {
		if !isNew {
			// Second definition of an already-complete record: kept
			// per spec §7, diagnosed, nothing else happens.
			c.diagnose(Diagnostic{Kind: DiagnosticRedefinition, Decl: d, DeclKind: d.Kind(),
				Err: &RedefinitionError{Name: rec.Name(), Reason: "record already completely defined"}})
		}
		return nil
	}

	return c.populateRecordBody(rec, rd, d)
}

// populateRecordBody fills in a record shell's bases, fields and nested
// declarations from its defining declaration rd, and marks it complete.
// Shared between an ordinary record (convertRecord) and a class template's
// uninstantiated primary body (convertTemplatedRecord), since both follow
// the same §4.7 population algorithm once a record shell and its defining
// RecordDecl are in hand.
func (c *Converter) populateRecordBody(rec *model.Record, rd frontend.RecordDecl, d frontend.Decl) error {
	rec.Anonymous = rd.IsAnonymous()

	setter := c.with(rec, d)
	defer setter.Close()

	for _, b := range rd.Bases() {
		baseType, err := c.convertType(b.Type)
		if err != nil {
			c.diagnose(Diagnostic{Kind: DiagnosticUnsupportedConstruct, Decl: d, DeclKind: d.Kind(), Err: err})
			continue
		}
		rec.AddBase(model.BaseSpecifier{
			Base:    baseType,
			Access:  accessTagToAccess(b.Access),
			Virtual: b.IsVirtual,
		})
	}

	for _, m := range rd.Members() {
		if err := c.convertDecl(m); err != nil {
			return err
		}
		// Anonymous-union/struct member promotion: the front-end flags
		// an anonymous nested record, and the converter mirrors that
		// flag by re-declaring its fields into the enclosing record,
		// rather than independently guessing which records qualify
		// (spec §4.7, open question in spec §9).
		if mrd, ok := m.(frontend.RecordDecl); ok && mrd.IsAnonymous() {
			if nested := c.lookup(m); nested != nil {
				if nestedRec, ok := nested.(*model.Record); ok {
					for _, f := range nestedRec.Fields {
						model.NewField(c.Model, rec, f.Name(), f.Type)
					}
				}
			}
		}
	}

	rec.MarkComplete()
	return nil
}

// findOrCreateRecordDecl resolves d to its model.Record via the decl-map,
// creating a new incomplete shell if this is the first time d's canonical
// declaration is seen. It reports whether the shell was freshly created.
func (c *Converter) findOrCreateRecordDecl(d frontend.Decl) (*model.Record, bool, error) {
	if existing := c.lookup(d); existing != nil {
		rec, ok := existing.(*model.Record)
		if !ok {
			return nil, false, &UnsupportedConstructError{Node: d, Reason: "canonical decl did not convert to a record"}
		}
		return rec, false, nil
	}
	rec := model.NewRecord(c.Model, c.curCtx, d.Name(), model.RecordStruct)
	c.register(d, rec, "record")
	return rec, true, nil
}

func accessTagToAccess(a frontend.AccessTag) model.Access {
	switch a {
	case frontend.AccessTagPrivate:
		return model.AccessPrivate
	case frontend.AccessTagProtected:
		return model.AccessProtected
	default:
		return model.AccessPublic
	}
}
