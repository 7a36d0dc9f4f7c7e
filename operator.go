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

import "strings"

// OperatorKind enumerates the comparison operators of specifiers.
// The value is the exact glyph of the operator, with wildcard variants
// carrying a trailing `*`.
type OperatorKind string

const (
	OperatorTildeEqual     OperatorKind = "~="
	OperatorDoubleEqual    OperatorKind = "=="
	OperatorNotEqual       OperatorKind = "!="
	OperatorLess           OperatorKind = "<"
	OperatorLessOrEqual    OperatorKind = "<="
	OperatorGreater        OperatorKind = ">"
	OperatorGreaterOrEqual OperatorKind = ">="
	OperatorCaret          OperatorKind = "^"
	OperatorEqual          OperatorKind = "="
	OperatorTilde          OperatorKind = "~"

	OperatorWildcardDoubleEqual OperatorKind = "==*"
	OperatorWildcardEqual       OperatorKind = "=*"
	OperatorWildcardNotEqual    OperatorKind = "!=*"
)

// IsUnary reports whether the operator never carries partial versions,
// which is the case for `^` and `~`.
func (k OperatorKind) IsUnary() bool {
	return k == OperatorCaret || k == OperatorTilde
}

// IsWildcard reports whether the operator applies to wildcard versions.
func (k OperatorKind) IsWildcard() bool {
	switch k {
	case OperatorWildcardDoubleEqual, OperatorWildcardEqual, OperatorWildcardNotEqual:
		return true
	default:
		return false
	}
}

// String returns the glyph of the operator without the wildcard star.
func (k OperatorKind) String() string {
	return strings.TrimSuffix(string(k), "*")
}

// NextCaretBreaking returns the version excluded by caret requirements,
// which is the next breaking version.
func NextCaretBreaking(version Version) Version {
	return version.NextBreaking()
}

// NextTildeBreaking returns the version excluded by tilde requirements.
// Tilde allows patch-level changes when the minor part is given,
// and minor-level changes otherwise.
func NextTildeBreaking(version Version) Version {
	if version.HasMinor() {
		return version.NextMinor()
	}
	return version.NextMajor()
}

// NextTildeEqualBreaking returns the version excluded by `~=`
// requirements, which bump the release part before the last one.
// Returns ErrSingleSegment for single-segment releases.
func NextTildeEqualBreaking(version Version) (Version, error) {
	index := version.LastIndex()
	if index == 0 {
		return Version{}, ErrSingleSegment
	}
	return version.ToStable().NextAt(index - 1), nil
}

// NextWildcardBreaking returns the version excluded by wildcard
// requirements, bumping the part the wildcard replaced. The second
// result is false for the bare wildcard, which excludes nothing.
func NextWildcardBreaking(version Version) (Version, bool) {
	index := version.LastIndex()
	if version.IsStable() && !version.IsPostRelease() {
		if index == 0 {
			return Version{}, false
		}
		index--
	}
	return version.NextAt(index), true
}

// restoreWildcard puts the wildcard back in place of the trailing part
// it replaced during parsing.
func restoreWildcard(rendered string) string {
	return strings.TrimRight(rendered, "0123456789") + "*"
}

// Operator pairs an operator kind with the version it applies to,
// forming a single version requirement.
type Operator struct {
	kind    OperatorKind
	version Version
}

// NewOperator creates an Operator from a kind and a version.
// Returns ErrSingleSegment for `~=` applied to single-segment releases.
func NewOperator(kind OperatorKind, version Version) (Operator, error) {
	if kind == OperatorTildeEqual && version.LastIndex() == 0 {
		return Operator{}, ErrSingleSegment
	}
	return Operator{kind: kind, version: version}, nil
}

// Kind returns the kind of the operator.
func (o Operator) Kind() OperatorKind {
	return o.kind
}

// Version returns the version the operator applies to.
func (o Operator) Version() Version {
	return o.version
}

// IsUnary reports whether the kind of the operator is unary.
func (o Operator) IsUnary() bool {
	return o.kind.IsUnary()
}

// IsWildcard reports whether the kind of the operator is a wildcard one.
func (o Operator) IsWildcard() bool {
	return o.kind.IsWildcard()
}

// Matches reports whether the given version satisfies the requirement.
func (o Operator) Matches(version Version) bool {
	switch o.kind {
	case OperatorTildeEqual:
		next, err := NextTildeEqualBreaking(o.version)
		if err != nil {
			panic(err)
		}
		return version.Compare(o.version) >= 0 && version.Compare(next) < 0
	case OperatorDoubleEqual, OperatorEqual:
		return version.Equal(o.version)
	case OperatorNotEqual:
		return !version.Equal(o.version)
	case OperatorLess:
		return version.Compare(o.version) < 0
	case OperatorLessOrEqual:
		return version.Compare(o.version) <= 0
	case OperatorGreater:
		return version.Compare(o.version) > 0
	case OperatorGreaterOrEqual:
		return version.Compare(o.version) >= 0
	case OperatorCaret:
		next := NextCaretBreaking(o.version)
		return version.Compare(o.version) >= 0 && version.Compare(next) < 0
	case OperatorTilde:
		next := NextTildeBreaking(o.version)
		return version.Compare(o.version) >= 0 && version.Compare(next) < 0
	case OperatorWildcardDoubleEqual, OperatorWildcardEqual:
		next, ok := NextWildcardBreaking(o.version)
		if !ok {
			return true
		}
		return version.Compare(o.version) >= 0 && version.Compare(next) < 0
	case OperatorWildcardNotEqual:
		next, ok := NextWildcardBreaking(o.version)
		if !ok {
			return false
		}
		return version.Compare(o.version) < 0 || version.Compare(next) >= 0
	default:
		panic("unknown operator kind")
	}
}

// translate converts the requirement into the set of versions it accepts.
func (o Operator) translate() VersionSet {
	switch o.kind {
	case OperatorTildeEqual:
		next, err := NextTildeEqualBreaking(o.version)
		if err != nil {
			panic(err)
		}
		return fromBounds(finiteBound(o.version, true), finiteBound(next, false))
	case OperatorDoubleEqual, OperatorEqual:
		return NewVersionPoint(o.version)
	case OperatorNotEqual:
		return NewVersionPoint(o.version).Complement()
	case OperatorLess:
		return NewVersionRangeUpTo(o.version, false)
	case OperatorLessOrEqual:
		return NewVersionRangeUpTo(o.version, true)
	case OperatorGreater:
		return NewVersionRangeFrom(o.version, false)
	case OperatorGreaterOrEqual:
		return NewVersionRangeFrom(o.version, true)
	case OperatorCaret:
		next := NextCaretBreaking(o.version)
		return fromBounds(finiteBound(o.version, true), finiteBound(next, false))
	case OperatorTilde:
		next := NextTildeBreaking(o.version)
		return fromBounds(finiteBound(o.version, true), finiteBound(next, false))
	case OperatorWildcardDoubleEqual, OperatorWildcardEqual:
		next, ok := NextWildcardBreaking(o.version)
		if !ok {
			return UniversalVersionSet()
		}
		return fromBounds(finiteBound(o.version, true), finiteBound(next, false))
	case OperatorWildcardNotEqual:
		next, ok := NextWildcardBreaking(o.version)
		if !ok {
			return EmptyVersionSet()
		}
		return fromBounds(finiteBound(o.version, true), finiteBound(next, false)).Complement()
	default:
		panic("unknown operator kind")
	}
}

// String returns the operator glyph followed by the version,
// with wildcard versions rendered with their star.
func (o Operator) String() string {
	if o.kind.IsWildcard() {
		return o.kind.String() + restoreWildcard(o.version.String())
	}
	return o.kind.String() + o.version.String()
}

// ShortString returns the operator glyph followed by the compact
// representation of the version.
func (o Operator) ShortString() string {
	if o.kind.IsWildcard() {
		return o.kind.String() + restoreWildcard(o.version.ShortString())
	}
	return o.kind.String() + o.version.ShortString()
}
