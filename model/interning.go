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

// qualEqual reports whether two QualTypes denote the same type: same
// underlying Type identity (types are reference-deduplicated, so pointer
// identity is the correct comparison) and the same cv-qualifiers.
func qualEqual(a, b QualType) bool {
	return a.Base == b.Base && a.Quals == b.Quals
}

// GetPointerType returns the unique Pointer entity for (pointee), creating
// it on first request. Repeated requests for the same pointee return the
// same *Pointer, which is what lets two separately-converted uses of `T *`
// compare equal by identity. The scan is linear, mirroring the original's
// own getPointerType/getSliceType family: composite-type tables are
// expected to stay small relative to a translation unit's total type
// count.
func (cm *CodeModel) GetPointerType(pointee QualType) *Pointer {
	for _, p := range cm.pointers {
		if qualEqual(p.Pointee, pointee) {
			return p
		}
	}
	p := &Pointer{Pointee: pointee}
	p.id = cm.nextID()
	cm.pointers = append(cm.pointers, p)
	use(p, pointee.Base)
	return p
}

// GetLValueReferenceType returns the unique LValueReference entity for
// referee.
func (cm *CodeModel) GetLValueReferenceType(referee QualType) *LValueReference {
	for _, r := range cm.lvalueRefs {
		if qualEqual(r.Referee, referee) {
			return r
		}
	}
	r := &LValueReference{Referee: referee}
	r.id = cm.nextID()
	cm.lvalueRefs = append(cm.lvalueRefs, r)
	use(r, referee.Base)
	return r
}

// GetRValueReferenceType returns the unique RValueReference entity for
// referee.
func (cm *CodeModel) GetRValueReferenceType(referee QualType) *RValueReference {
	for _, r := range cm.rvalueRefs {
		if qualEqual(r.Referee, referee) {
			return r
		}
	}
	r := &RValueReference{Referee: referee}
	r.id = cm.nextID()
	cm.rvalueRefs = append(cm.rvalueRefs, r)
	use(r, referee.Base)
	return r
}

// GetArrayType returns the unique Array entity of element with the given
// size (-1 for an incomplete bound).
func (cm *CodeModel) GetArrayType(element QualType, size int64) *Array {
	for _, a := range cm.arrays {
		if qualEqual(a.Element, element) && a.Size == size {
			return a
		}
	}
	a := &Array{Element: element, Size: size}
	a.id = cm.nextID()
	cm.arrays = append(cm.arrays, a)
	use(a, element.Base)
	return a
}

// GetFunctionType returns the unique FunctionType entity for the given
// return type, parameter types and variadic flag.
func (cm *CodeModel) GetFunctionType(ret QualType, params []QualType, variadic bool) *FunctionType {
	for _, f := range cm.functionTypes {
		if functionTypeEqual(f, ret, params, variadic) {
			return f
		}
	}
	f := &FunctionType{Return: ret, Params: append([]QualType(nil), params...), Variadic: variadic}
	f.id = cm.nextID()
	cm.functionTypes = append(cm.functionTypes, f)
	use(f, ret.Base)
	for _, p := range params {
		use(f, p.Base)
	}
	return f
}

func functionTypeEqual(f *FunctionType, ret QualType, params []QualType, variadic bool) bool {
	if !qualEqual(f.Return, ret) || f.Variadic != variadic || len(f.Params) != len(params) {
		return false
	}
	for i, p := range params {
		if !qualEqual(f.Params[i], p) {
			return false
		}
	}
	return true
}
