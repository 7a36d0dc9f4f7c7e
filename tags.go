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
	"strconv"
	"strings"
)

// Tag kind names used in error messages.
const (
	preTagKind  = "pre"
	postTagKind = "post"
	devTagKind  = "dev"
)

// checkPhase folds and validates a phase spelling against the allowed set,
// returning its expanded form.
func checkPhase(phase string, allowed map[string]bool, kind string) (string, error) {
	folded := strings.ToLower(phase)
	if !allowed[folded] {
		return "", &PhaseError{Phase: phase, Kind: kind}
	}
	return expandPhase(folded), nil
}

// comparePhaseValue orders tags by phase spelling, then by value.
func comparePhaseValue(phase string, value int, otherPhase string, otherValue int) int {
	if compared := strings.Compare(phase, otherPhase); compared != 0 {
		return compared
	}
	return cmp.Compare(value, otherValue)
}

// tagString renders the long form of a tag, such as `alpha.1`.
func tagString(phase string, value int) string {
	return phase + "." + strconv.Itoa(value)
}

// tagShortString renders the short form of a tag, such as `a1`.
func tagShortString(phase string, value int) string {
	return shortenPhase(phase) + strconv.Itoa(value)
}

// PreTag represents the pre-release tag of a version, such as `alpha.1` or `rc.0`.
//
// The phase may be spelled `alpha`, `beta`, `candidate`, `rc`, `preview`, `pre`
// or one of the short forms `a`, `b`, `c`. Short spellings expand on construction.
// Tags order by phase spelling first, then by value.
type PreTag struct {
	phase string
	value int
}

// NewPreTag creates a PreTag from a phase spelling and a value.
// Returns a PhaseError if the spelling is not a pre-release phase.
func NewPreTag(phase string, value int) (PreTag, error) {
	expanded, err := checkPhase(phase, prePhaseSet, preTagKind)
	if err != nil {
		return PreTag{}, err
	}
	return PreTag{phase: expanded, value: value}, nil
}

// defaultPreTag returns the `alpha.0` tag.
func defaultPreTag() PreTag {
	return PreTag{phase: defaultPrePhase}
}

// Phase returns the expanded phase of the tag.
func (t PreTag) Phase() string {
	return t.phase
}

// Value returns the value of the tag.
func (t PreTag) Value() int {
	return t.value
}

// Next returns the tag with the value bumped.
func (t PreTag) Next() PreTag {
	t.value++
	return t
}

// NextPhase returns the tag advanced to the following phase with the value
// reset to zero. The second result is false when the phase is final.
func (t PreTag) NextPhase() (PreTag, bool) {
	phase, ok := nextPhases[t.phase]
	if !ok {
		return PreTag{}, false
	}
	return PreTag{phase: phase}, true
}

// Normalize returns the tag with its phase in preferred form,
// for example `candidate` becomes `rc`.
func (t PreTag) Normalize() PreTag {
	t.phase = normalizePhase(t.phase)
	return t
}

// Compare returns a negative value if t orders before other,
// zero if they are equal and a positive value otherwise.
func (t PreTag) Compare(other PreTag) int {
	return comparePhaseValue(t.phase, t.value, other.phase, other.value)
}

// String returns the long representation of the tag, such as `alpha.1`.
func (t PreTag) String() string {
	return tagString(t.phase, t.value)
}

// ShortString returns the short representation of the tag, such as `a1`.
func (t PreTag) ShortString() string {
	return tagShortString(t.phase, t.value)
}

// PostTag represents the post-release tag of a version, such as `post.1`.
// The phase may be spelled `post`, `rev` or `r`.
type PostTag struct {
	phase string
	value int
}

// NewPostTag creates a PostTag from a phase spelling and a value.
// Returns a PhaseError if the spelling is not a post-release phase.
func NewPostTag(phase string, value int) (PostTag, error) {
	expanded, err := checkPhase(phase, postPhaseSet, postTagKind)
	if err != nil {
		return PostTag{}, err
	}
	return PostTag{phase: expanded, value: value}, nil
}

// defaultPostTag returns the `post.0` tag.
func defaultPostTag() PostTag {
	return PostTag{phase: defaultPostPhase}
}

// postTagWithValue returns the `post.value` tag, used for implicit post releases.
func postTagWithValue(value int) PostTag {
	return PostTag{phase: defaultPostPhase, value: value}
}

// Phase returns the expanded phase of the tag.
func (t PostTag) Phase() string {
	return t.phase
}

// Value returns the value of the tag.
func (t PostTag) Value() int {
	return t.value
}

// Next returns the tag with the value bumped.
func (t PostTag) Next() PostTag {
	t.value++
	return t
}

// Normalize returns the tag with its phase in preferred form,
// for example `rev` becomes `post`.
func (t PostTag) Normalize() PostTag {
	t.phase = normalizePhase(t.phase)
	return t
}

// Compare returns a negative value if t orders before other,
// zero if they are equal and a positive value otherwise.
func (t PostTag) Compare(other PostTag) int {
	return comparePhaseValue(t.phase, t.value, other.phase, other.value)
}

// String returns the long representation of the tag, such as `post.1`.
func (t PostTag) String() string {
	return tagString(t.phase, t.value)
}

// ShortString returns the short representation of the tag, such as `post1`.
func (t PostTag) ShortString() string {
	return tagShortString(t.phase, t.value)
}

// DevTag represents the dev-release tag of a version, such as `dev.1`.
// Its phase is always `dev`.
type DevTag struct {
	value int
}

// NewDevTag creates a DevTag from a value.
func NewDevTag(value int) DevTag {
	return DevTag{value: value}
}

// Phase returns the phase of the tag, which is always `dev`.
func (t DevTag) Phase() string {
	return phaseDev
}

// Value returns the value of the tag.
func (t DevTag) Value() int {
	return t.value
}

// Next returns the tag with the value bumped.
func (t DevTag) Next() DevTag {
	t.value++
	return t
}

// Compare returns a negative value if t orders before other,
// zero if they are equal and a positive value otherwise.
func (t DevTag) Compare(other DevTag) int {
	return cmp.Compare(t.value, other.value)
}

// String returns the long representation of the tag, such as `dev.1`.
func (t DevTag) String() string {
	return tagString(phaseDev, t.value)
}

// ShortString returns the short representation of the tag, such as `dev1`.
func (t DevTag) ShortString() string {
	return tagShortString(phaseDev, t.value)
}
