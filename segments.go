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
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Indexes of the named release parts.
const (
	majorIndex = 0
	minorIndex = 1
	microIndex = 2

	semanticParts = 3
)

// Release represents the release segment of a version: one or more dot-separated
// numeric parts, such as `1`, `1.2` or `1.2.3`.
//
// Releases are immutable; every operation returns a new value. Comparison strips
// trailing zero parts, so `1.2` and `1.2.0` are equal while remaining distinct
// in their string representations.
type Release struct {
	parts []int
}

// NewRelease creates a Release from parts.
// Returns ErrEmptyRelease if no parts are given.
func NewRelease(parts ...int) (Release, error) {
	if len(parts) == 0 {
		return Release{}, ErrEmptyRelease
	}
	return Release{parts: slices.Clone(parts)}, nil
}

// newRelease creates a Release from parts known to be non-empty.
// The slice is owned by the new release.
func newRelease(parts []int) Release {
	return Release{parts: parts}
}

// Parts returns a copy of the release parts.
func (r Release) Parts() []int {
	return slices.Clone(r.parts)
}

// Precision returns the number of parts in the release.
func (r Release) Precision() int {
	return len(r.parts)
}

// LastIndex returns the index of the last part of the release.
func (r Release) LastIndex() int {
	return len(r.parts) - 1
}

// Major returns the major part of the release, or zero if absent.
func (r Release) Major() int {
	return r.At(majorIndex)
}

// Minor returns the minor part of the release, or zero if absent.
func (r Release) Minor() int {
	return r.At(minorIndex)
}

// Micro returns the micro part of the release, or zero if absent.
func (r Release) Micro() int {
	return r.At(microIndex)
}

// Patch returns the patch part of the release, or zero if absent.
// This is an alias for Micro.
func (r Release) Patch() int {
	return r.Micro()
}

// Extra returns a copy of the parts beyond the micro part.
func (r Release) Extra() []int {
	if len(r.parts) <= semanticParts {
		return nil
	}
	return slices.Clone(r.parts[semanticParts:])
}

// At returns the part at the index, or zero if the index is out of range.
func (r Release) At(index int) int {
	if index < 0 || index >= len(r.parts) {
		return 0
	}
	return r.parts[index]
}

// HasAt reports whether the release has a part at the index.
func (r Release) HasAt(index int) bool {
	return index >= 0 && len(r.parts) > index
}

// HasMajor reports whether the release has the major part.
func (r Release) HasMajor() bool {
	return r.HasAt(majorIndex)
}

// HasMinor reports whether the release has the minor part.
func (r Release) HasMinor() bool {
	return r.HasAt(minorIndex)
}

// HasMicro reports whether the release has the micro part.
func (r Release) HasMicro() bool {
	return r.HasAt(microIndex)
}

// HasPatch reports whether the release has the patch part.
func (r Release) HasPatch() bool {
	return r.HasMicro()
}

// HasExtra reports whether the release has parts beyond the micro part.
func (r Release) HasExtra() bool {
	return r.HasAt(semanticParts)
}

// SetAt returns the release with the part at the index set to the value,
// padding with zeros as needed to reach the index.
func (r Release) SetAt(index, value int) Release {
	padded := r.PadToIndex(index)
	parts := slices.Clone(padded.parts)
	parts[index] = value
	return newRelease(parts)
}

// SetMajor returns the release with the major part set to the value.
func (r Release) SetMajor(value int) Release {
	return r.SetAt(majorIndex, value)
}

// SetMinor returns the release with the minor part set to the value.
func (r Release) SetMinor(value int) Release {
	return r.SetAt(minorIndex, value)
}

// SetMicro returns the release with the micro part set to the value.
func (r Release) SetMicro(value int) Release {
	return r.SetAt(microIndex, value)
}

// SetPatch returns the release with the patch part set to the value.
func (r Release) SetPatch(value int) Release {
	return r.SetMicro(value)
}

// NextAt returns the release with the part at the index bumped.
// The parts after the index are zeroed while the precision is kept,
// so (1, 2, 3) bumped at the major index yields (2, 0, 0).
func (r Release) NextAt(index int) Release {
	updated := r.SetAt(index, r.At(index)+1)
	return updated.slice(index + 1).PadTo(updated.Precision())
}

// NextMajor returns the release with the major part bumped.
func (r Release) NextMajor() Release {
	return r.NextAt(majorIndex)
}

// NextMinor returns the release with the minor part bumped.
func (r Release) NextMinor() Release {
	return r.NextAt(minorIndex)
}

// NextMicro returns the release with the micro part bumped.
func (r Release) NextMicro() Release {
	return r.NextAt(microIndex)
}

// NextPatch returns the release with the patch part bumped.
func (r Release) NextPatch() Release {
	return r.NextMicro()
}

// PadTo returns the release padded with zeros to the length.
// Releases are never truncated; shorter lengths return the release unchanged.
func (r Release) PadTo(length int) Release {
	if len(r.parts) >= length {
		return r
	}
	parts := make([]int, length)
	copy(parts, r.parts)
	return newRelease(parts)
}

// PadToIndex returns the release padded with zeros to contain the index.
func (r Release) PadToIndex(index int) Release {
	return r.PadTo(index + 1)
}

// PadToNext returns the release padded with zeros to the next index.
func (r Release) PadToNext() Release {
	return r.PadTo(len(r.parts) + 1)
}

// slice returns the release truncated to the first stop parts.
func (r Release) slice(stop int) Release {
	if stop >= len(r.parts) {
		return r
	}
	return newRelease(r.parts[:stop])
}

// IsSemantic reports whether the release has exactly three parts.
func (r Release) IsSemantic() bool {
	return len(r.parts) == semanticParts
}

// ToSemantic converts the release to its three-part form. Shorter releases are
// padded with zeros; longer releases are bumped at the patch part and truncated,
// so (1, 2, 3, 4) becomes (1, 2, 4).
func (r Release) ToSemantic() Release {
	if r.HasExtra() {
		return r.NextPatch().slice(semanticParts)
	}
	if r.IsSemantic() {
		return r
	}
	return r.PadTo(semanticParts)
}

// compareKey returns the parts with trailing zeros stripped,
// always keeping at least one part.
func (r Release) compareKey() []int {
	parts := r.parts
	end := len(parts)
	for end > 1 && parts[end-1] == 0 {
		end--
	}
	return parts[:end]
}

// Compare returns a negative value if r orders before other,
// zero if they are equal and a positive value otherwise.
func (r Release) Compare(other Release) int {
	return slices.Compare(r.compareKey(), other.compareKey())
}

// Equal reports whether two releases are equal, ignoring trailing zeros.
func (r Release) Equal(other Release) bool {
	return r.Compare(other) == 0
}

// String returns the dot-separated representation of the release.
func (r Release) String() string {
	parts := make([]string, len(r.parts))
	for i, part := range r.parts {
		parts[i] = strconv.Itoa(part)
	}
	return strings.Join(parts, ".")
}

// LocalPart is a single part of a local segment, either numeric or textual.
// Numeric parts order after textual ones; textual parts order lexicographically.
type LocalPart struct {
	number  int
	text    string
	numeric bool
}

// LocalNumber creates a numeric local part.
func LocalNumber(value int) LocalPart {
	return LocalPart{number: value, numeric: true}
}

// LocalText creates a textual local part.
func LocalText(value string) LocalPart {
	return LocalPart{text: value}
}

// IsNumeric reports whether the part is numeric.
func (p LocalPart) IsNumeric() bool {
	return p.numeric
}

// Number returns the numeric value of the part, or zero for textual parts.
func (p LocalPart) Number() int {
	return p.number
}

// Text returns the textual value of the part, or the empty string for numeric parts.
func (p LocalPart) Text() string {
	return p.text
}

// Compare returns a negative value if p orders before other,
// zero if they are equal and a positive value otherwise.
func (p LocalPart) Compare(other LocalPart) int {
	if p.numeric && other.numeric {
		return cmp.Compare(p.number, other.number)
	}
	if p.numeric {
		return 1
	}
	if other.numeric {
		return -1
	}
	return strings.Compare(p.text, other.text)
}

// String returns the string representation of the part.
func (p LocalPart) String() string {
	if p.numeric {
		return strconv.Itoa(p.number)
	}
	return p.text
}

// Local represents the local segment of a version, such as `build.1`.
// Local segments order elementwise by part, with shorter segments
// ordering before their extensions.
type Local struct {
	parts []LocalPart
}

// NewLocal creates a Local from parts.
// Returns ErrEmptyLocal if no parts are given.
func NewLocal(parts ...LocalPart) (Local, error) {
	if len(parts) == 0 {
		return Local{}, ErrEmptyLocal
	}
	return Local{parts: slices.Clone(parts)}, nil
}

// newLocal creates a Local from parts known to be non-empty.
func newLocal(parts []LocalPart) Local {
	return Local{parts: parts}
}

// Parts returns a copy of the local parts.
func (l Local) Parts() []LocalPart {
	return slices.Clone(l.parts)
}

// Compare returns a negative value if l orders before other,
// zero if they are equal and a positive value otherwise.
func (l Local) Compare(other Local) int {
	return slices.CompareFunc(l.parts, other.parts, LocalPart.Compare)
}

// String returns the dot-separated representation of the local segment.
func (l Local) String() string {
	parts := make([]string, len(l.parts))
	for i, part := range l.parts {
		parts[i] = part.String()
	}
	return strings.Join(parts, ".")
}
