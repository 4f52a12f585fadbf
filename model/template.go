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

// TemplateName is implemented by everything a TemplateSubstitution can
// bind to: a concrete Template or a dependent template name encountered
// through a template parameter (`T::template foo`). Splitting this out as
// its own interface, rather than requiring every substitution to point
// straight at a *Template, mirrors the original's template_name base
// class, introduced for exactly the dependent-name case.
type TemplateName interface {
	NamedEntity
}

// DependentTemplateName stands for a template name that cannot be resolved
// to a concrete Template because it is reached through a template
// parameter (`T::template foo<...>`). It satisfies TemplateName so a
// TemplateSubstitution's Template-typed fields still have somewhere to
// point, but FindSubstitution/CreateInstantiation are only ever driven off
// a concrete *Template: converting a specialisation of a dependent name
// produces a SubstitutionDependentInstantiation directly rather than
// calling CreateInstantiation.
type DependentTemplateName struct {
	base
	Named
	Qualifier QualType
}

// NewDependentTemplateName creates a dependent template name parented on
// parent, qualified by qualifier (the dependent scope, e.g. `T`).
func NewDependentTemplateName(cm *CodeModel, parent Context, name string, qualifier QualType) *DependentTemplateName {
	d := &DependentTemplateName{Named: Named(name), Qualifier: qualifier}
	d.id = cm.nextID()
	adoptAnonymous(parent, d)
	use(d, qualifier.Base)
	return d
}

// TemplateParameter is a parameter declared by a Template or
// PartialSpecialization: either a TypeTemplateParameter or a
// ValueTemplateParameter.
type TemplateParameter interface {
	NamedEntity
	isTemplateParameter()
}

// TypeTemplateParameter is a template parameter that stands for a type
// (`template <typename T>`). It is itself a Type, so converted code can
// use it anywhere a type is expected; substituting the template replaces
// every reference to it with the bound argument's type.
type TypeTemplateParameter struct {
	typeBase
	Named
}

func (*TypeTemplateParameter) isTemplateParameter() {}

// TypeName implements Type.
func (p *TypeTemplateParameter) TypeName() string { return p.Name() }

// ValueTemplateParameter is a non-type template parameter
// (`template <int N>`), carrying the type of the value it stands for.
type ValueTemplateParameter struct {
	base
	Named
	Type QualType
}

func (*ValueTemplateParameter) isTemplateParameter() {}

// templatedEntity is embedded by Template and PartialSpecialization: both
// are contexts that additionally carry an ordered parameter list and a
// variadic flag, mirroring the original's templated_entity mixin.
type templatedEntity struct {
	contextBase
	selfCtx  Context
	params   []TemplateParameter
	variadic bool
}

// TemplateParams returns the declared parameters in order.
func (t *templatedEntity) TemplateParams() []TemplateParameter { return t.params }

// TemplateParam returns the parameter at idx.
func (t *templatedEntity) TemplateParam(idx int) TemplateParameter { return t.params[idx] }

// Variadic reports whether the last parameter is a parameter pack.
func (t *templatedEntity) Variadic() bool { return t.variadic }

// SetVariadic sets the variadic flag.
func (t *templatedEntity) SetVariadic(v bool) { t.variadic = v }

// AddTypeParam declares a new type template parameter named name.
func (t *templatedEntity) AddTypeParam(cm *CodeModel, name string) *TypeTemplateParameter {
	p := &TypeTemplateParameter{Named: Named(name)}
	p.id = cm.nextID()
	adopt(t.self(), p)
	t.params = append(t.params, p)
	return p
}

// AddValueParam declares a new value template parameter named name with
// type typ.
func (t *templatedEntity) AddValueParam(cm *CodeModel, name string, typ QualType) *ValueTemplateParameter {
	p := &ValueTemplateParameter{Named: Named(name), Type: typ}
	p.id = cm.nextID()
	adopt(t.self(), p)
	use(p, typ.Base)
	t.params = append(t.params, p)
	return p
}

// self exists so templatedEntity's helper methods can adopt the parameter
// into the embedding type's own Context identity rather than into
// templatedEntity itself (adopt needs the outer *Template/*PartialSpecialization
// as the parent, since that is the Context value other code compares
// against and looks children up through). It is set by the embedding
// type's constructor immediately after allocation.
func (t *templatedEntity) self() Context {
	return t.selfCtx
}

// Template is a class template or function template: a named context that
// is also a templated entity and a template name. Instantiations and full
// specialisations are kept in Substitutions, partial specialisations in
// PartialSpecializations; each of them registers a use edge to the
// Template, so they also appear among its Users. Dependent instantiations
// are kept in neither list.
type Template struct {
	templatedEntity
	Named

	// IsFunctionTemplate distinguishes a function template (produces
	// Functions on substitution) from a class template (produces
	// Records).
	IsFunctionTemplate bool

	// PrimaryRecord and PrimaryFunction are the uninstantiated body the
	// converter built while visiting the template's own definition (a
	// class template's member list, or a function template's signature).
	// CreateInstantiation's caller substitutes template parameters found
	// here with the bound arguments to materialise each instantiation's
	// own Record/Function; exactly one of the two is set, matching
	// IsFunctionTemplate.
	PrimaryRecord   *Record
	PrimaryFunction *Function

	substitutions []*TemplateSubstitution
	partials      []*PartialSpecialization
}

// NewTemplate creates and declares a template named name under parent.
func NewTemplate(cm *CodeModel, parent Context, name string, isFunctionTemplate bool) *Template {
	t := &Template{Named: Named(name), IsFunctionTemplate: isFunctionTemplate}
	t.id = cm.nextID()
	t.selfCtx = t
	adopt(parent, t)
	return t
}

// argsEqual reports whether args matches the arguments already bound in
// subst, under the §4.2 equality rules (type identity for type arguments,
// string equality for value arguments).
func argsEqual(subst *TemplateSubstitution, args []TemplateArgument) bool {
	if len(subst.Args) != len(args) {
		return false
	}
	for i, a := range args {
		if !a.Equal(subst.Args[i]) {
			return false
		}
	}
	return true
}

// FindSubstitution scans t's substitutions (instantiations and full
// specialisations created by CreateInstantiation) for one whose argument
// list is element-wise equal to args, returning nil if none matches.
// Partial specialisations and dependent instantiations are not scanned. The scan is linear: spec §4.3
// observes that real templates carry at most tens of specialisations, so a
// secondary index is unwarranted.
func (t *Template) FindSubstitution(args []TemplateArgument) *TemplateSubstitution {
	for _, s := range t.substitutions {
		if argsEqual(s, args) {
			return s
		}
	}
	return nil
}

// Substitutions returns every substitution registered against t, in
// creation order.
func (t *Template) Substitutions() []*TemplateSubstitution { return t.substitutions }

// PartialSpecializations returns every partial specialisation declared
// under t, in declaration order.
func (t *Template) PartialSpecializations() []*PartialSpecialization { return t.partials }

// CreateInstantiation creates a new instantiation substitution binding t to
// args. It requires FindSubstitution(args) to already be nil; calling it
// when a matching substitution exists is a programming error (invariant 4:
// at most one non-partial substitution per argument list), mirroring the
// original's assert in create_substitution_impl.
func (cm *CodeModel) CreateInstantiation(t *Template, args []TemplateArgument, kind SubstitutionKind) *TemplateSubstitution {
	if existing := t.FindSubstitution(args); existing != nil {
		panic("model: template substitution with same arguments already exists")
	}
	s := &TemplateSubstitution{Args: args, Kind: kind}
	s.id = cm.nextID()
	adoptAnonymous(t.Parent(), s)
	use(s, t)
	t.substitutions = append(t.substitutions, s)
	for _, a := range args {
		a.registerUse(s)
	}
	return s
}

// AddPartialSpecialization creates and registers a partial specialisation
// of t. Unlike an instantiation, a partial specialisation is itself a
// templated entity with its own parameter list; matching it against a
// later instantiation is left to the front-end (spec §4.3).
//
// The argument list is set separately via SetArgs once the caller has
// declared the partial specialisation's own parameters: `template <class
// X> struct P<X, int>` needs X in scope as a Context member before the
// argument list naming it can be converted, so AddPartialSpecialization
// cannot take the arguments up front the way CreateInstantiation does.
func (cm *CodeModel) AddPartialSpecialization(t *Template) *PartialSpecialization {
	p := &PartialSpecialization{}
	p.id = cm.nextID()
	p.selfCtx = p
	adoptAnonymous(t.Parent(), p)
	use(p, t)
	t.partials = append(t.partials, p)
	return p
}

// SetArgs binds the partial specialisation's argument list, registering
// each type argument's use edge. Called once, after the specialisation's
// own parameters have been declared.
func (p *PartialSpecialization) SetArgs(args []TemplateArgument) {
	p.Args = args
	for _, a := range args {
		a.registerUse(p)
	}
}

// CreateDependentInstantiation creates a dependent-instantiation
// substitution bound to a template name that cannot be resolved to a
// concrete Template (spec §4.5's dependent-argument/dependent-name case):
// either the name itself is reached through a template parameter, or at
// least one argument is. Unlike CreateInstantiation, no FindSubstitution
// dedup applies here: each occurrence the converter encounters inside a
// dependent context gets its own substitution, since nothing is known yet
// about what it will ultimately bind to once the enclosing template
// parameter is itself substituted.
func (cm *CodeModel) CreateDependentInstantiation(parent Context, name TemplateName, args []TemplateArgument) *TemplateSubstitution {
	s := &TemplateSubstitution{Args: args, Kind: SubstitutionDependentInstantiation}
	s.id = cm.nextID()
	adoptAnonymous(parent, s)
	use(s, name)
	for _, a := range args {
		a.registerUse(s)
	}
	return s
}

// SubstitutionKind distinguishes the three non-partial substitution
// shapes the spec enumerates.
type SubstitutionKind int

const (
	// SubstitutionInstantiation is an explicit or implicit
	// instantiation with concrete arguments.
	SubstitutionInstantiation SubstitutionKind = iota
	// SubstitutionFullSpecialization behaves like an instantiation but
	// was authored as a separate explicit specialisation.
	SubstitutionFullSpecialization
	// SubstitutionDependentInstantiation has at least one argument that
	// mentions a template parameter from an enclosing scope.
	SubstitutionDependentInstantiation
)

// TemplateSubstitution binds a Template to a concrete argument list. For a
// class template this entity owns the Record it produces; for a function
// template it owns the Function it produces. Record/Function is nil for a
// dependent instantiation, which cannot materialise a concrete entity
// until the enclosing template parameter is itself substituted.
//
// The original makes the produced record/function double as the
// substitution itself (via virtual inheritance from both
// template_substitution and record/function). Go has no equivalent, so
// TemplateSubstitution instead owns the produced entity; see the "template
// substitution merge" design note.
type TemplateSubstitution struct {
	base
	Args []TemplateArgument
	Kind SubstitutionKind

	Record   *Record
	Function *Function
}

// Template returns the template this substitution binds, recovered from
// the use edge registered at construction.
func (s *TemplateSubstitution) Template() *Template {
	for _, u := range s.Uses() {
		if t, ok := u.(*Template); ok {
			return t
		}
	}
	return nil
}

// templateName returns whichever TemplateName (a concrete *Template or a
// *DependentTemplateName) this substitution was created against, recovered
// from its use edges. Used only for TypeName's human-readable spelling;
// Template() is the identity accessor callers use to find a substitution's
// siblings.
func (s *TemplateSubstitution) templateName() TemplateName {
	for _, u := range s.Uses() {
		if n, ok := u.(TemplateName); ok {
			return n
		}
	}
	return nil
}

// isType and TypeName let a TemplateSubstitution stand in directly as the
// spec's "template specialisation type" when it is dependent: a dependent
// instantiation has no concrete Record/Function to point at yet, so a
// QualType referring to it names the substitution itself. A concrete
// instantiation's QualType instead names its produced Record/Function
// directly, the same way the original's template_instantiation *is* a
// record through virtual inheritance; this method exists so the dependent
// case still satisfies Type without a third entity kind.
func (*TemplateSubstitution) isType() {}

// TypeName implements Type.
func (s *TemplateSubstitution) TypeName() string {
	name := ""
	if n := s.templateName(); n != nil {
		name = n.Name()
	}
	name += "<"
	for i, a := range s.Args {
		if i > 0 {
			name += ", "
		}
		if a.IsType() {
			name += a.Type().TypeName()
		} else {
			name += a.Value().String()
		}
	}
	return name + ">"
}

// PartialSpecialization is a templated entity nested under its primary
// template: it owns its own parameter list plus an argument list that may
// reference those parameters.
type PartialSpecialization struct {
	templatedEntity
	Args []TemplateArgument
}

// Template returns the primary template this specialises.
func (p *PartialSpecialization) Template() *Template {
	for _, u := range p.Uses() {
		if t, ok := u.(*Template); ok {
			return t
		}
	}
	return nil
}

// TemplateArgument is either a type argument or a value argument bound to
// a template parameter in a substitution.
type TemplateArgument struct {
	typeArg  *QualType
	valueArg *Value
}

// TypeArgument builds a type template argument.
func TypeArgument(t QualType) TemplateArgument { return TemplateArgument{typeArg: &t} }

// ValueArgument builds a value (non-type) template argument.
func ValueArgument(v Value) TemplateArgument { return TemplateArgument{valueArg: &v} }

// IsType reports whether this argument binds a type parameter.
func (a TemplateArgument) IsType() bool { return a.typeArg != nil }

// IsValue reports whether this argument binds a value parameter.
func (a TemplateArgument) IsValue() bool { return a.valueArg != nil }

// Type returns the bound type. It panics if IsType is false; callers are
// expected to check IsType first, the Go equivalent of the original's
// debug-assert-guarded accessor.
func (a TemplateArgument) Type() QualType {
	if a.typeArg == nil {
		panic("model: template argument is not a type argument")
	}
	return *a.typeArg
}

// Value returns the bound value. It panics if IsValue is false.
func (a TemplateArgument) Value() Value {
	if a.valueArg == nil {
		panic("model: template argument is not a value argument")
	}
	return *a.valueArg
}

// Equal reports whether a and other denote the same argument: for type
// arguments, identity of the underlying type plus cv-qualifiers; for value
// arguments, string equality of their canonical rendering.
func (a TemplateArgument) Equal(other TemplateArgument) bool {
	if a.IsValue() != other.IsValue() {
		return false
	}
	if a.IsValue() {
		return a.Value().Equal(other.Value())
	}
	return qualEqual(a.Type(), other.Type())
}

// registerUse wires a use edge from the owning substitution to the
// argument's underlying type, so that a type argument's target shows the
// substitution among its Users.
func (a TemplateArgument) registerUse(owner Entity) {
	if a.IsType() {
		use(owner, a.Type().Base)
	}
}
