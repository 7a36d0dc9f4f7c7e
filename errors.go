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
	"errors"
	"fmt"
)

// ErrEmptyRelease is returned when a release is constructed without any parts.
var ErrEmptyRelease = errors.New("release can not be empty")

// ErrEmptyLocal is returned when a local segment is constructed without any parts.
var ErrEmptyLocal = errors.New("local can not be empty")

// ErrSingleSegment is returned when `~=` is applied to a version whose release
// consists of a single part, since there is no second-to-last part to bump.
var ErrSingleSegment = errors.New("`~=` can not be used with a single release segment")

// ParseVersionError is returned when a string can not be parsed into a Version.
type ParseVersionError struct {
	Input string
}

// Error implements the error interface.
func (e *ParseVersionError) Error() string {
	return fmt.Sprintf("can not parse %q to version", e.Input)
}

// ParseTagError is returned when a string can not be parsed into a release tag.
type ParseTagError struct {
	Input string
	Kind  string
}

// Error implements the error interface.
func (e *ParseTagError) Error() string {
	return fmt.Sprintf("can not parse %q to %s tag", e.Input, e.Kind)
}

// ParseSpecifierError is returned when a string can not be parsed into a Specifier.
type ParseSpecifierError struct {
	Input string
}

// Error implements the error interface.
func (e *ParseSpecifierError) Error() string {
	return fmt.Sprintf("can not parse %q to specifier", e.Input)
}

// PhaseError is returned when a tag is constructed with a phase that the tag
// kind does not allow, for example `alpha` within a post-release tag.
type PhaseError struct {
	Phase string
	Kind  string
}

// Error implements the error interface.
func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase %q is not allowed in %s tag", e.Phase, e.Kind)
}

// BoundsError is returned when a range is constructed with its lower bound
// above its upper bound.
type BoundsError struct {
	Min Version
	Max Version
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("range lower bound %s is above upper bound %s", e.Min, e.Max)
}

var (
	_ error = (*ParseVersionError)(nil)
	_ error = (*ParseTagError)(nil)
	_ error = (*ParseSpecifierError)(nil)
	_ error = (*PhaseError)(nil)
	_ error = (*BoundsError)(nil)
)
