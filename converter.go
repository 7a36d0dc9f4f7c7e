// Copyright 2026 nekitdev
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package versions

// SpecifierToVersionSet converts a specifier into the canonical set of
// versions it accepts.
func SpecifierToVersionSet(specifier Specifier) VersionSet {
	switch concrete := specifier.(type) {
	case SpecifierNever:
		return EmptyVersionSet()
	case SpecifierAlways:
		return UniversalVersionSet()
	case SpecifierOne:
		return concrete.operator.translate()
	case SpecifierAll:
		result := UniversalVersionSet()
		for _, child := range concrete.specifiers {
			result = result.Intersection(SpecifierToVersionSet(child))
		}
		return result
	case SpecifierAny:
		result := EmptyVersionSet()
		for _, child := range concrete.specifiers {
			result = result.Union(SpecifierToVersionSet(child))
		}
		return result
	default:
		panic("unsupported Specifier implementation")
	}
}

// VersionSetToSpecifier converts a canonical version set into the
// specifier accepting exactly its versions.
func VersionSetToSpecifier(set VersionSet) Specifier {
	switch concrete := set.(type) {
	case VersionEmpty:
		return NeverSpecifier()
	case VersionPoint:
		return NewSpecifierOne(Operator{
			kind:    OperatorDoubleEqual,
			version: concrete.version,
		})
	case VersionRange:
		return rangeToSpecifier(concrete)
	case VersionUnion:
		if version, ok := concrete.excludeVersion(); ok {
			return NewSpecifierOne(Operator{
				kind:    OperatorNotEqual,
				version: version,
			})
		}
		specifiers := make([]Specifier, 0, len(concrete.items))
		for _, item := range concrete.items {
			specifiers = append(specifiers, VersionSetToSpecifier(item))
		}
		return NewSpecifierAny(specifiers...)
	default:
		panic("unsupported VersionSet implementation")
	}
}

// rangeToSpecifier builds the bound requirements of a range,
// one for each finite bound present.
func rangeToSpecifier(set VersionRange) Specifier {
	if set.IsUniversal() {
		return AlwaysSpecifier()
	}

	atoms := make([]Specifier, 0, 2)

	if min, ok := set.Min(); ok {
		kind := OperatorGreater
		if set.IncludesMin() {
			kind = OperatorGreaterOrEqual
		}
		atoms = append(atoms, NewSpecifierOne(Operator{kind: kind, version: min}))
	}

	if max, ok := set.Max(); ok {
		kind := OperatorLess
		if set.IncludesMax() {
			kind = OperatorLessOrEqual
		}
		atoms = append(atoms, NewSpecifierOne(Operator{kind: kind, version: max}))
	}

	return NewSpecifierAll(atoms...)
}

// Simplify collapses redundant requirements by round-tripping the
// specifier through its canonical version set. Overlapping conjunctions
// tighten to their intersected bounds, overlapping disjunctions merge,
// and wildcard requirements resolve to their plain equivalents.
func Simplify(specifier Specifier) Specifier {
	return VersionSetToSpecifier(SpecifierToVersionSet(specifier))
}
