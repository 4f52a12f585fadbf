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

// Package convert walks a frontend.TranslationUnit and materialises a
// model.CodeModel from it: one Converter per model, single-threaded,
// holding a current code-model context and a current front-end
// declaration context that are always moved in lock-step (spec §4.4).
package convert

import (
	"log/slog"

	"github.com/aesilevich/cm-sub001/frontend"
	"github.com/aesilevich/cm-sub001/model"
	"github.com/aesilevich/cm-sub001/source"
)

// Converter walks one or more translation units into a single
// model.CodeModel. It is not safe for concurrent use: the current-context
// bookkeeping is inherently sequential, matching the single-threaded
// concurrency model of spec §5.
type Converter struct {
	Model *model.CodeModel

	// Source is the optional source-code-model overlay, non-nil only when
	// Options.IncludeSourceModel was set at construction (spec §4.9).
	Source *source.Overlay

	opts    Options
	log     *slog.Logger
	metrics *Metrics

	diagnostics Diagnostics

	// decls maps a front-end canonical declaration to the model entity
	// already converted from it, so that a redeclaration (forward
	// reference, later redefinition) is patched in place rather than
	// duplicated (spec §4.4, §4.6).
	decls map[frontend.Decl]model.Entity

	curCtx  model.Context
	curDecl frontend.Decl
}

// New constructs a Converter that will populate a fresh model.CodeModel.
// A nil logger defaults to slog.Default(); a nil *Metrics disables metrics
// entirely.
func New(opts Options, log *slog.Logger, metrics *Metrics) *Converter {
	if log == nil {
		log = slog.Default()
	}
	cm := model.NewCodeModel()
	c := &Converter{
		Model:   cm,
		opts:    opts,
		log:     log,
		metrics: metrics,
		decls:   map[frontend.Decl]model.Entity{},
		curCtx:  cm,
	}
	if opts.IncludeSourceModel {
		c.Source = source.NewOverlay()
	}
	return c
}

// Diagnostics returns every non-fatal problem recorded so far.
func (c *Converter) Diagnostics() Diagnostics { return c.diagnostics }

func (c *Converter) diagnose(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
	switch d.Kind {
	case DiagnosticUnsupportedConstruct:
		c.metrics.unsupportedConstruct()
		c.log.Warn("unsupported construct", "decl_kind", d.DeclKind, "reason", d.Err)
	case DiagnosticRedefinition:
		c.metrics.redefinition()
		c.log.Warn("redefinition", "decl_kind", d.DeclKind, "reason", d.Err)
	}
}

// contextSetter is the Go realisation of the original's context_setter:
// a guard that records the converter's current context pair and restores
// it when Close is called, regardless of how the enclosing call returns
// (normal, early return, or panic unwinding through a recovered error).
// Every recursive descent into a nested scope constructs one and defers
// Close, which is the single correctness lever spec §5 calls out.
type contextSetter struct {
	conv       *Converter
	oldCtx     model.Context
	oldDecl    frontend.Decl
	restored   bool
}

// with swaps in (ctx, declCtx) as current and returns a setter whose
// Close restores the previous pair.
func (c *Converter) with(ctx model.Context, declCtx frontend.Decl) *contextSetter {
	s := &contextSetter{conv: c, oldCtx: c.curCtx, oldDecl: c.curDecl}
	c.curCtx = ctx
	c.curDecl = declCtx
	return s
}

// Close restores the converter's previous current context. It is
// idempotent: calling it twice (e.g. once explicitly and once via a
// deferred call) only restores once.
func (s *contextSetter) Close() {
	if s.restored {
		return
	}
	s.conv.curCtx = s.oldCtx
	s.conv.curDecl = s.oldDecl
	s.restored = true
}

// lookup returns the model entity already converted from decl's canonical
// declaration, or nil if decl has not been visited yet.
func (c *Converter) lookup(decl frontend.Decl) model.Entity {
	if decl == nil {
		return nil
	}
	return c.decls[decl.Canonical()]
}

// register associates decl's canonical declaration with entity, so a
// later redeclaration resolves to the same entity (spec §4.6).
func (c *Converter) register(decl frontend.Decl, entity model.Entity, kind string) {
	c.decls[decl.Canonical()] = entity
	c.metrics.entityCreated(kind)
	if c.Source != nil {
		c.Source.Record(entity, decl)
	}
}

// Convert walks every top-level declaration of tu into c.Model, starting
// from the global namespace. It is safe to call Convert more than once on
// the same Converter with different translation units to build up one
// combined model; the decl-map and interning tables are shared across
// calls.
func (c *Converter) Convert(tu frontend.TranslationUnit) error {
	for _, d := range tu.Decls() {
		if err := c.convertDecl(d); err != nil {
			return err
		}
	}
	return nil
}
