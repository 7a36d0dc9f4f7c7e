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

import (
	"iter"
	"strings"
)

// Specifier represents version requirements as a boolean combination
// of operators. Specifiers are immutable values.
//
// The only implementations are SpecifierNever, SpecifierAlways,
// SpecifierOne, SpecifierAll and SpecifierAny.
type Specifier interface {
	Accepts(version Version) bool
	String() string
	ShortString() string

	specifier()
}

// NeverSpecifier returns the specifier accepting no versions.
func NeverSpecifier() Specifier {
	return SpecifierNever{}
}

// AlwaysSpecifier returns the specifier accepting every version.
func AlwaysSpecifier() Specifier {
	return SpecifierAlways{}
}

// NewSpecifierOne wraps a single operator requirement into a specifier.
func NewSpecifierOne(operator Operator) Specifier {
	return SpecifierOne{operator: operator}
}

// NewSpecifierAll combines specifiers into their conjunction.
// No specifiers yield the always specifier, and a single specifier
// is returned directly.
func NewSpecifierAll(specifiers ...Specifier) Specifier {
	switch len(specifiers) {
	case 0:
		return SpecifierAlways{}
	case 1:
		return specifiers[0]
	default:
		cloned := make([]Specifier, len(specifiers))
		copy(cloned, specifiers)
		return SpecifierAll{specifiers: cloned}
	}
}

// NewSpecifierAny combines specifiers into their disjunction.
// No specifiers yield the never specifier, and a single specifier
// is returned directly.
func NewSpecifierAny(specifiers ...Specifier) Specifier {
	switch len(specifiers) {
	case 0:
		return SpecifierNever{}
	case 1:
		return specifiers[0]
	default:
		cloned := make([]Specifier, len(specifiers))
		copy(cloned, specifiers)
		return SpecifierAny{specifiers: cloned}
	}
}

// SpecifierNever is the specifier accepting no versions.
type SpecifierNever struct{}

func (SpecifierNever) specifier() {}

// Accepts always returns false.
func (SpecifierNever) Accepts(version Version) bool {
	return false
}

// String returns `∅`.
func (SpecifierNever) String() string {
	return "∅"
}

// ShortString returns `∅`.
func (SpecifierNever) ShortString() string {
	return "∅"
}

// SpecifierAlways is the specifier accepting every version.
type SpecifierAlways struct{}

func (SpecifierAlways) specifier() {}

// Accepts always returns true.
func (SpecifierAlways) Accepts(version Version) bool {
	return true
}

// String returns `*`.
func (SpecifierAlways) String() string {
	return "*"
}

// ShortString returns `*`.
func (SpecifierAlways) ShortString() string {
	return "*"
}

// SpecifierOne is the specifier accepting versions matching
// a single operator requirement.
type SpecifierOne struct {
	operator Operator
}

func (SpecifierOne) specifier() {}

// Operator returns the requirement of the specifier.
func (s SpecifierOne) Operator() Operator {
	return s.operator
}

// Accepts reports whether the given version matches the requirement.
func (s SpecifierOne) Accepts(version Version) bool {
	return s.operator.Matches(version)
}

// String returns the representation of the requirement, such as `>=1.0.0`.
func (s SpecifierOne) String() string {
	return s.operator.String()
}

// ShortString returns the compact representation of the requirement.
func (s SpecifierOne) ShortString() string {
	return s.operator.ShortString()
}

// SpecifierAll is the conjunction of two or more specifiers.
type SpecifierAll struct {
	specifiers []Specifier
}

func (SpecifierAll) specifier() {}

// Specifiers returns an iterator over the combined specifiers.
func (s SpecifierAll) Specifiers() iter.Seq[Specifier] {
	return func(yield func(Specifier) bool) {
		for _, specifier := range s.specifiers {
			if !yield(specifier) {
				return
			}
		}
	}
}

// Accepts reports whether every combined specifier accepts the version.
func (s SpecifierAll) Accepts(version Version) bool {
	for _, specifier := range s.specifiers {
		if !specifier.Accepts(version) {
			return false
		}
	}
	return true
}

// String joins the combined specifiers with `, `.
func (s SpecifierAll) String() string {
	parts := make([]string, len(s.specifiers))
	for index, specifier := range s.specifiers {
		parts[index] = specifier.String()
	}
	return strings.Join(parts, ", ")
}

// ShortString joins the compact representations with `,`.
func (s SpecifierAll) ShortString() string {
	parts := make([]string, len(s.specifiers))
	for index, specifier := range s.specifiers {
		parts[index] = specifier.ShortString()
	}
	return strings.Join(parts, ",")
}

// SpecifierAny is the disjunction of two or more specifiers.
type SpecifierAny struct {
	specifiers []Specifier
}

func (SpecifierAny) specifier() {}

// Specifiers returns an iterator over the combined specifiers.
func (s SpecifierAny) Specifiers() iter.Seq[Specifier] {
	return func(yield func(Specifier) bool) {
		for _, specifier := range s.specifiers {
			if !yield(specifier) {
				return
			}
		}
	}
}

// Accepts reports whether any combined specifier accepts the version.
func (s SpecifierAny) Accepts(version Version) bool {
	for _, specifier := range s.specifiers {
		if specifier.Accepts(version) {
			return true
		}
	}
	return false
}

// String joins the combined specifiers with ` || `.
func (s SpecifierAny) String() string {
	parts := make([]string, len(s.specifiers))
	for index, specifier := range s.specifiers {
		parts[index] = specifier.String()
	}
	return strings.Join(parts, " || ")
}

// ShortString joins the compact representations with `||`.
func (s SpecifierAny) ShortString() string {
	parts := make([]string, len(s.specifiers))
	for index, specifier := range s.specifiers {
		parts[index] = specifier.ShortString()
	}
	return strings.Join(parts, "||")
}

// Ensure interface compliance.
var (
	_ Specifier = SpecifierNever{}
	_ Specifier = SpecifierAlways{}
	_ Specifier = SpecifierOne{}
	_ Specifier = SpecifierAll{}
	_ Specifier = SpecifierAny{}
)
