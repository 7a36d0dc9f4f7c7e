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
	"fmt"
	"iter"
	"slices"
	"strings"
)

// VersionSet represents a set of versions. Sets are immutable, all
// operations return new instances.
//
// The only implementations are VersionEmpty, VersionPoint, VersionRange
// and VersionUnion, each always in canonical form: ranges are never
// empty and never contain a single version only, and unions hold at
// least two sorted items that neither intersect nor touch each other.
type VersionSet interface {
	Contains(version Version) bool
	IsEmpty() bool
	IsUniversal() bool
	Includes(other VersionSet) bool
	Intersects(other VersionSet) bool
	Equal(other VersionSet) bool
	Union(other VersionSet) VersionSet
	Intersection(other VersionSet) VersionSet
	Difference(other VersionSet) VersionSet
	SymmetricDifference(other VersionSet) VersionSet
	Complement() VersionSet
	String() string
	ShortString() string

	versionSet()
}

// versionItem is a non-empty contiguous set, either a single version
// or a range. Items are the building blocks of unions.
type versionItem interface {
	VersionSet

	itemBounds() (lower, upper versionBound)
}

// EmptyVersionSet returns the set containing no versions.
func EmptyVersionSet() VersionSet {
	return VersionEmpty{}
}

// UniversalVersionSet returns the set containing every version.
func UniversalVersionSet() VersionSet {
	return VersionRange{
		lower: negativeInfinityBound(),
		upper: positiveInfinityBound(),
	}
}

// NewVersionPoint returns the set containing solely the given version.
func NewVersionPoint(version Version) VersionSet {
	return VersionPoint{version: version}
}

// NewVersionRange returns the set of versions between min and max.
// Returns a BoundsError if min orders above max.
func NewVersionRange(min, max Version, includeMin, includeMax bool) (VersionSet, error) {
	if min.Compare(max) > 0 {
		return nil, &BoundsError{Min: min, Max: max}
	}
	return fromBounds(finiteBound(min, includeMin), finiteBound(max, includeMax)), nil
}

// NewVersionRangeFrom returns the set of versions above min,
// unbounded from above.
func NewVersionRangeFrom(min Version, includeMin bool) VersionSet {
	return fromBounds(finiteBound(min, includeMin), positiveInfinityBound())
}

// NewVersionRangeUpTo returns the set of versions below max,
// unbounded from below.
func NewVersionRangeUpTo(max Version, includeMax bool) VersionSet {
	return fromBounds(negativeInfinityBound(), finiteBound(max, includeMax))
}

// NewVersionUnion returns the normalized union of the given sets.
func NewVersionUnion(sets ...VersionSet) VersionSet {
	return unionOf(sets...)
}

// fromBounds builds the canonical set delimited by the given bounds,
// degenerating to VersionEmpty or VersionPoint where needed.
func fromBounds(lower, upper versionBound) VersionSet {
	if lower.isPosInfinity() || upper.isNegInfinity() || strictlyBelow(upper, lower) {
		return VersionEmpty{}
	}
	if lower.isFinite() && upper.isFinite() && lower.version.Compare(upper.version) == 0 {
		return VersionPoint{version: lower.version}
	}
	return VersionRange{lower: lower, upper: upper}
}

// minBy returns the minimum of two values using a comparison function.
func minBy[T any](a, b T, compare func(T, T) int) T {
	if compare(a, b) <= 0 {
		return a
	}
	return b
}

// maxBy returns the maximum of two values using a comparison function.
func maxBy[T any](a, b T, compare func(T, T) int) T {
	if compare(a, b) >= 0 {
		return a
	}
	return b
}

func equalBounds(a, b versionBound) bool {
	if a.infinite != b.infinite {
		return false
	}
	if a.infinite != boundFinite {
		return true
	}
	return a.inclusive == b.inclusive && a.version.Compare(b.version) == 0
}

// complementUpper flips a lower bound into the upper bound of
// everything below it.
func complementUpper(lower versionBound) versionBound {
	switch lower.infinite {
	case boundNegativeInfinity:
		return negativeInfinityBound()
	case boundPositiveInfinity:
		return positiveInfinityBound()
	default:
		return versionBound{version: lower.version, inclusive: !lower.inclusive}
	}
}

// complementLower flips an upper bound into the lower bound of
// everything above it.
func complementLower(upper versionBound) versionBound {
	switch upper.infinite {
	case boundPositiveInfinity:
		return positiveInfinityBound()
	case boundNegativeInfinity:
		return negativeInfinityBound()
	default:
		return versionBound{version: upper.version, inclusive: !upper.inclusive}
	}
}

// compareItems orders items by their lower bound, then by their upper one.
func compareItems(a, b versionItem) int {
	aLower, aUpper := a.itemBounds()
	bLower, bUpper := b.itemBounds()
	if compared := compareLower(aLower, bLower); compared != 0 {
		return compared
	}
	return compareUpper(aUpper, bUpper)
}

// mergeItems joins two intersecting or touching items into one.
func mergeItems(a, b versionItem) versionItem {
	aLower, aUpper := a.itemBounds()
	bLower, bUpper := b.itemBounds()
	merged := fromBounds(
		minBy(aLower, bLower, compareLower),
		maxBy(aUpper, bUpper, compareUpper),
	)
	item, ok := merged.(versionItem)
	if !ok {
		panic("union of touching items must be an item")
	}
	return item
}

// setFromItems wraps sorted disjoint items into the canonical set.
func setFromItems(items []versionItem) VersionSet {
	switch len(items) {
	case 0:
		return VersionEmpty{}
	case 1:
		return items[0]
	default:
		cloned := make([]versionItem, len(items))
		copy(cloned, items)
		return VersionUnion{items: cloned}
	}
}

// unionOf normalizes the union of arbitrary sets: empty sets are
// dropped, nested unions are flattened, and the remaining items are
// sorted and merged wherever they intersect or touch.
func unionOf(sets ...VersionSet) VersionSet {
	var items []versionItem
	for _, set := range sets {
		switch concrete := set.(type) {
		case VersionEmpty:
		case VersionPoint:
			items = append(items, concrete)
		case VersionRange:
			if concrete.IsUniversal() {
				return concrete
			}
			items = append(items, concrete)
		case VersionUnion:
			items = append(items, concrete.items...)
		default:
			panic("unsupported VersionSet implementation")
		}
	}

	if len(items) == 0 {
		return VersionEmpty{}
	}

	slices.SortFunc(items, compareItems)

	merged := items[:1]
	for _, item := range items[1:] {
		last := merged[len(merged)-1]
		_, lastUpper := last.itemBounds()
		lower, _ := item.itemBounds()
		if gapBetween(lastUpper, lower) {
			merged = append(merged, item)
		} else {
			merged[len(merged)-1] = mergeItems(last, item)
		}
	}

	return setFromItems(merged)
}

// itemDifference returns the part of item not covered by other.
// The result holds at most two pieces, on both sides of other.
func itemDifference(item, other versionItem) VersionSet {
	lower, upper := item.itemBounds()
	otherLower, otherUpper := other.itemBounds()

	if strictlyBelow(upper, otherLower) || strictlyBelow(otherUpper, lower) {
		return item
	}

	pieces := make([]versionItem, 0, 2)
	if before, ok := fromBounds(lower, complementUpper(otherLower)).(versionItem); ok {
		pieces = append(pieces, before)
	}
	if after, ok := fromBounds(complementLower(otherUpper), upper).(versionItem); ok {
		pieces = append(pieces, after)
	}
	return setFromItems(pieces)
}

// differenceItems removes the sorted disjoint others from the sorted
// disjoint items, walking both sequences with a single pass.
func differenceItems(items, others []versionItem) VersionSet {
	result := make([]versionItem, 0, len(items))
	index, otherIndex := 0, 0
	current := items[index]

	for {
		if otherIndex == len(others) {
			result = append(result, current)
			result = append(result, items[index+1:]...)
			return setFromItems(result)
		}

		other := others[otherIndex]
		currentLower, currentUpper := current.itemBounds()
		otherLower, otherUpper := other.itemBounds()

		// Other lies entirely below the current item and can not
		// affect it nor any of the following ones.
		if strictlyBelow(otherUpper, currentLower) {
			otherIndex++
			continue
		}

		// Other lies entirely above the current item, so the current
		// item survives as is.
		if strictlyBelow(currentUpper, otherLower) {
			result = append(result, current)
			index++
			if index == len(items) {
				return setFromItems(result)
			}
			current = items[index]
			continue
		}

		switch diff := itemDifference(current, other).(type) {
		case VersionEmpty:
			// Other covers the current item entirely.
			index++
			if index == len(items) {
				return setFromItems(result)
			}
			current = items[index]
		case VersionUnion:
			// Other splits the current item in two. The left piece is
			// final, while the right one may reach into further others.
			result = append(result, diff.items[0])
			current = diff.items[1]
			otherIndex++
		default:
			trimmed := diff.(versionItem)
			current = trimmed
			_, trimmedUpper := trimmed.itemBounds()
			if compareUpper(trimmedUpper, otherUpper) > 0 {
				otherIndex++
			} else {
				result = append(result, current)
				index++
				if index == len(items) {
					return setFromItems(result)
				}
				current = items[index]
			}
		}
	}
}

// includesItems reports whether every other item is covered by some item.
func includesItems(items, others []versionItem) bool {
	index, otherIndex := 0, 0
	for index < len(items) && otherIndex < len(others) {
		if items[index].Includes(others[otherIndex]) {
			otherIndex++
		} else {
			index++
		}
	}
	return otherIndex == len(others)
}

// intersectsItems reports whether any item intersects any other item.
func intersectsItems(items, others []versionItem) bool {
	index, otherIndex := 0, 0
	for index < len(items) && otherIndex < len(others) {
		item := items[index]
		other := others[otherIndex]
		if item.Intersects(other) {
			return true
		}
		_, itemUpper := item.itemBounds()
		_, otherUpper := other.itemBounds()
		if compareUpper(otherUpper, itemUpper) > 0 {
			index++
		} else {
			otherIndex++
		}
	}
	return false
}

// intersectionItems collects pairwise intersections of two sorted
// disjoint item sequences.
func intersectionItems(items, others []versionItem) VersionSet {
	result := make([]versionItem, 0, len(items))
	index, otherIndex := 0, 0
	for index < len(items) && otherIndex < len(others) {
		item := items[index]
		other := others[otherIndex]
		if intersection, ok := item.Intersection(other).(versionItem); ok {
			result = append(result, intersection)
		}
		_, itemUpper := item.itemBounds()
		_, otherUpper := other.itemBounds()
		if compareUpper(itemUpper, otherUpper) < 0 {
			index++
		} else {
			otherIndex++
		}
	}
	return setFromItems(result)
}

// symmetricDifference returns versions contained in exactly one of the sets.
func symmetricDifference(set, other VersionSet) VersionSet {
	return set.Union(other).Difference(set.Intersection(other))
}

// complementSet returns all versions outside of the given set.
func complementSet(set VersionSet) VersionSet {
	return UniversalVersionSet().Difference(set)
}

// VersionEmpty is the set containing no versions.
type VersionEmpty struct{}

func (VersionEmpty) versionSet() {}

// Contains always returns false.
func (VersionEmpty) Contains(version Version) bool {
	return false
}

// IsEmpty always returns true.
func (VersionEmpty) IsEmpty() bool {
	return true
}

// IsUniversal always returns false.
func (VersionEmpty) IsUniversal() bool {
	return false
}

// Includes reports whether other is empty as well.
func (VersionEmpty) Includes(other VersionSet) bool {
	return other.IsEmpty()
}

// Intersects always returns false.
func (VersionEmpty) Intersects(other VersionSet) bool {
	return false
}

// Equal reports whether other is empty as well.
func (VersionEmpty) Equal(other VersionSet) bool {
	_, ok := other.(VersionEmpty)
	return ok
}

// Union returns other.
func (VersionEmpty) Union(other VersionSet) VersionSet {
	return other
}

// Intersection returns the empty set.
func (empty VersionEmpty) Intersection(other VersionSet) VersionSet {
	return empty
}

// Difference returns the empty set.
func (empty VersionEmpty) Difference(other VersionSet) VersionSet {
	return empty
}

// SymmetricDifference returns other.
func (VersionEmpty) SymmetricDifference(other VersionSet) VersionSet {
	return other
}

// Complement returns the universal set.
func (VersionEmpty) Complement() VersionSet {
	return UniversalVersionSet()
}

// String returns `∅`.
func (VersionEmpty) String() string {
	return "∅"
}

// ShortString returns `∅`.
func (VersionEmpty) ShortString() string {
	return "∅"
}

// VersionPoint is the set containing exactly one version.
type VersionPoint struct {
	version Version
}

func (VersionPoint) versionSet() {}

func (p VersionPoint) itemBounds() (lower, upper versionBound) {
	bound := finiteBound(p.version, true)
	return bound, bound
}

// Version returns the sole version of the set.
func (p VersionPoint) Version() Version {
	return p.version
}

// Contains reports whether the given version is the one of the set.
func (p VersionPoint) Contains(version Version) bool {
	return p.version.Equal(version)
}

// IsEmpty always returns false.
func (VersionPoint) IsEmpty() bool {
	return false
}

// IsUniversal always returns false.
func (VersionPoint) IsUniversal() bool {
	return false
}

// Includes reports whether other is empty or the same single version.
func (p VersionPoint) Includes(other VersionSet) bool {
	switch concrete := other.(type) {
	case VersionEmpty:
		return true
	case VersionPoint:
		return p.version.Equal(concrete.version)
	default:
		return false
	}
}

// Intersects reports whether other contains the version of the set.
func (p VersionPoint) Intersects(other VersionSet) bool {
	return other.Contains(p.version)
}

// Equal reports whether other is the same single version.
func (p VersionPoint) Equal(other VersionSet) bool {
	concrete, ok := other.(VersionPoint)
	return ok && p.version.Equal(concrete.version)
}

// Union returns the normalized union of the set and other.
func (p VersionPoint) Union(other VersionSet) VersionSet {
	return unionOf(p, other)
}

// Intersection returns the set itself when other contains its version,
// and the empty set otherwise.
func (p VersionPoint) Intersection(other VersionSet) VersionSet {
	if other.Contains(p.version) {
		return p
	}
	return VersionEmpty{}
}

// Difference returns the empty set when other contains the version,
// and the set itself otherwise.
func (p VersionPoint) Difference(other VersionSet) VersionSet {
	if other.Contains(p.version) {
		return VersionEmpty{}
	}
	return p
}

// SymmetricDifference returns versions contained in exactly one of the sets.
func (p VersionPoint) SymmetricDifference(other VersionSet) VersionSet {
	return symmetricDifference(p, other)
}

// Complement returns all versions except the one of the set.
func (p VersionPoint) Complement() VersionSet {
	return complementSet(p)
}

// String returns the `==version` representation.
func (p VersionPoint) String() string {
	return fmt.Sprintf("==%s", p.version)
}

// ShortString returns the compact `==version` representation.
func (p VersionPoint) ShortString() string {
	return fmt.Sprintf("==%s", p.version.ShortString())
}

// VersionRange is the set of versions between two bounds, either of
// which may be missing. Canonical ranges contain at least two versions.
type VersionRange struct {
	lower versionBound
	upper versionBound
}

func (VersionRange) versionSet() {}

func (r VersionRange) itemBounds() (lower, upper versionBound) {
	return r.lower, r.upper
}

// Min returns the lower bound version of the range.
// The second result is false when the range is unbounded from below.
func (r VersionRange) Min() (Version, bool) {
	if !r.lower.isFinite() {
		return Version{}, false
	}
	return r.lower.version, true
}

// Max returns the upper bound version of the range.
// The second result is false when the range is unbounded from above.
func (r VersionRange) Max() (Version, bool) {
	if !r.upper.isFinite() {
		return Version{}, false
	}
	return r.upper.version, true
}

// IncludesMin reports whether the lower bound version is in the range.
func (r VersionRange) IncludesMin() bool {
	return r.lower.isFinite() && r.lower.inclusive
}

// IncludesMax reports whether the upper bound version is in the range.
func (r VersionRange) IncludesMax() bool {
	return r.upper.isFinite() && r.upper.inclusive
}

// Contains reports whether the given version lies within the bounds.
func (r VersionRange) Contains(version Version) bool {
	if r.lower.isFinite() {
		if compared := version.Compare(r.lower.version); compared < 0 {
			return false
		} else if compared == 0 && !r.lower.inclusive {
			return false
		}
	}
	if r.upper.isFinite() {
		if compared := version.Compare(r.upper.version); compared > 0 {
			return false
		} else if compared == 0 && !r.upper.inclusive {
			return false
		}
	}
	return true
}

// IsEmpty always returns false.
func (VersionRange) IsEmpty() bool {
	return false
}

// IsUniversal reports whether the range is unbounded on both sides.
func (r VersionRange) IsUniversal() bool {
	return r.lower.isNegInfinity() && r.upper.isPosInfinity()
}

// Includes reports whether other lies entirely within the bounds.
func (r VersionRange) Includes(other VersionSet) bool {
	switch concrete := other.(type) {
	case VersionEmpty:
		return true
	case VersionPoint:
		return r.Contains(concrete.version)
	case VersionRange:
		return compareLower(r.lower, concrete.lower) <= 0 &&
			compareUpper(r.upper, concrete.upper) >= 0
	case VersionUnion:
		for _, item := range concrete.items {
			if !r.Includes(item) {
				return false
			}
		}
		return true
	default:
		panic("unsupported VersionSet implementation")
	}
}

// Intersects reports whether the range and other share any version.
func (r VersionRange) Intersects(other VersionSet) bool {
	switch concrete := other.(type) {
	case VersionEmpty:
		return false
	case VersionPoint:
		return r.Contains(concrete.version)
	case VersionRange:
		return !strictlyBelow(r.upper, concrete.lower) &&
			!strictlyBelow(concrete.upper, r.lower)
	case VersionUnion:
		return concrete.Intersects(r)
	default:
		panic("unsupported VersionSet implementation")
	}
}

// Equal reports whether other is a range with the same bounds.
func (r VersionRange) Equal(other VersionSet) bool {
	concrete, ok := other.(VersionRange)
	return ok && equalBounds(r.lower, concrete.lower) && equalBounds(r.upper, concrete.upper)
}

// Union returns the normalized union of the range and other.
func (r VersionRange) Union(other VersionSet) VersionSet {
	return unionOf(r, other)
}

// Intersection returns versions contained in both the range and other.
func (r VersionRange) Intersection(other VersionSet) VersionSet {
	switch concrete := other.(type) {
	case VersionEmpty:
		return concrete
	case VersionPoint:
		return concrete.Intersection(r)
	case VersionRange:
		return fromBounds(
			maxBy(r.lower, concrete.lower, compareLower),
			minBy(r.upper, concrete.upper, compareUpper),
		)
	case VersionUnion:
		return concrete.Intersection(r)
	default:
		panic("unsupported VersionSet implementation")
	}
}

// Difference returns the part of the range not covered by other.
func (r VersionRange) Difference(other VersionSet) VersionSet {
	switch concrete := other.(type) {
	case VersionEmpty:
		return r
	case VersionPoint:
		return itemDifference(r, concrete)
	case VersionRange:
		return itemDifference(r, concrete)
	case VersionUnion:
		return differenceItems([]versionItem{r}, concrete.items)
	default:
		panic("unsupported VersionSet implementation")
	}
}

// SymmetricDifference returns versions contained in exactly one of the sets.
func (r VersionRange) SymmetricDifference(other VersionSet) VersionSet {
	return symmetricDifference(r, other)
}

// Complement returns all versions outside of the bounds.
func (r VersionRange) Complement() VersionSet {
	return complementSet(r)
}

// String returns the `>=min, <max` style representation,
// with `*` for the universal range.
func (r VersionRange) String() string {
	var parts []string

	if r.lower.isFinite() {
		if r.lower.inclusive {
			parts = append(parts, fmt.Sprintf(">=%s", r.lower.version))
		} else {
			parts = append(parts, fmt.Sprintf(">%s", r.lower.version))
		}
	}

	if r.upper.isFinite() {
		if r.upper.inclusive {
			parts = append(parts, fmt.Sprintf("<=%s", r.upper.version))
		} else {
			parts = append(parts, fmt.Sprintf("<%s", r.upper.version))
		}
	}

	if len(parts) == 0 {
		return "*"
	}

	return strings.Join(parts, ", ")
}

// ShortString returns the compact `>=min,<max` style representation,
// with `*` for the universal range.
func (r VersionRange) ShortString() string {
	var parts []string

	if r.lower.isFinite() {
		if r.lower.inclusive {
			parts = append(parts, fmt.Sprintf(">=%s", r.lower.version.ShortString()))
		} else {
			parts = append(parts, fmt.Sprintf(">%s", r.lower.version.ShortString()))
		}
	}

	if r.upper.isFinite() {
		if r.upper.inclusive {
			parts = append(parts, fmt.Sprintf("<=%s", r.upper.version.ShortString()))
		} else {
			parts = append(parts, fmt.Sprintf("<%s", r.upper.version.ShortString()))
		}
	}

	if len(parts) == 0 {
		return "*"
	}

	return strings.Join(parts, ",")
}

// VersionUnion is the set of versions covered by two or more disjoint
// items, kept sorted and never touching each other.
type VersionUnion struct {
	items []versionItem
}

func (VersionUnion) versionSet() {}

// Items returns an iterator over the items of the union.
// This enables using range-over-function syntax:
//
//	for item := range union.Items() {
//	    fmt.Println(item)
//	}
func (u VersionUnion) Items() iter.Seq[VersionSet] {
	return func(yield func(VersionSet) bool) {
		for _, item := range u.items {
			if !yield(item) {
				return
			}
		}
	}
}

// excludeVersion detects the complement of a single version, that is,
// unions of the form `<version || >version`.
func (u VersionUnion) excludeVersion() (Version, bool) {
	if len(u.items) != 2 {
		return Version{}, false
	}
	before, ok := u.items[0].(VersionRange)
	if !ok {
		return Version{}, false
	}
	after, ok := u.items[1].(VersionRange)
	if !ok {
		return Version{}, false
	}
	if !before.lower.isNegInfinity() || !after.upper.isPosInfinity() {
		return Version{}, false
	}
	if !before.upper.isFinite() || before.upper.inclusive {
		return Version{}, false
	}
	if !after.lower.isFinite() || after.lower.inclusive {
		return Version{}, false
	}
	if before.upper.version.Compare(after.lower.version) != 0 {
		return Version{}, false
	}
	return before.upper.version, true
}

// Contains reports whether any item contains the given version.
func (u VersionUnion) Contains(version Version) bool {
	for _, item := range u.items {
		if item.Contains(version) {
			return true
		}
	}
	return false
}

// IsEmpty always returns false.
func (VersionUnion) IsEmpty() bool {
	return false
}

// IsUniversal always returns false.
func (VersionUnion) IsUniversal() bool {
	return false
}

// Includes reports whether other lies entirely within the items.
func (u VersionUnion) Includes(other VersionSet) bool {
	switch concrete := other.(type) {
	case VersionEmpty:
		return true
	case VersionPoint:
		return u.Contains(concrete.version)
	case VersionRange:
		return includesItems(u.items, []versionItem{concrete})
	case VersionUnion:
		return includesItems(u.items, concrete.items)
	default:
		panic("unsupported VersionSet implementation")
	}
}

// Intersects reports whether the union and other share any version.
func (u VersionUnion) Intersects(other VersionSet) bool {
	switch concrete := other.(type) {
	case VersionEmpty:
		return false
	case VersionPoint:
		return u.Contains(concrete.version)
	case VersionRange:
		return intersectsItems(u.items, []versionItem{concrete})
	case VersionUnion:
		return intersectsItems(u.items, concrete.items)
	default:
		panic("unsupported VersionSet implementation")
	}
}

// Equal reports whether other is a union of the same items.
func (u VersionUnion) Equal(other VersionSet) bool {
	concrete, ok := other.(VersionUnion)
	if !ok || len(u.items) != len(concrete.items) {
		return false
	}
	for index, item := range u.items {
		if !item.Equal(concrete.items[index]) {
			return false
		}
	}
	return true
}

// Union returns the normalized union of the items and other.
func (u VersionUnion) Union(other VersionSet) VersionSet {
	return unionOf(u, other)
}

// Intersection returns versions contained in both the union and other.
func (u VersionUnion) Intersection(other VersionSet) VersionSet {
	switch concrete := other.(type) {
	case VersionEmpty:
		return concrete
	case VersionPoint:
		return concrete.Intersection(u)
	case VersionRange:
		return intersectionItems(u.items, []versionItem{concrete})
	case VersionUnion:
		return intersectionItems(u.items, concrete.items)
	default:
		panic("unsupported VersionSet implementation")
	}
}

// Difference returns the part of the union not covered by other.
func (u VersionUnion) Difference(other VersionSet) VersionSet {
	switch concrete := other.(type) {
	case VersionEmpty:
		return u
	case VersionPoint:
		return differenceItems(u.items, []versionItem{concrete})
	case VersionRange:
		return differenceItems(u.items, []versionItem{concrete})
	case VersionUnion:
		return differenceItems(u.items, concrete.items)
	default:
		panic("unsupported VersionSet implementation")
	}
}

// SymmetricDifference returns versions contained in exactly one of the sets.
func (u VersionUnion) SymmetricDifference(other VersionSet) VersionSet {
	return symmetricDifference(u, other)
}

// Complement returns all versions outside of the items.
func (u VersionUnion) Complement() VersionSet {
	return complementSet(u)
}

// String joins the items with ` || `, rendering complements of single
// versions as `!=version`.
func (u VersionUnion) String() string {
	if version, ok := u.excludeVersion(); ok {
		return fmt.Sprintf("!=%s", version)
	}

	parts := make([]string, len(u.items))
	for index, item := range u.items {
		parts[index] = item.String()
	}
	return strings.Join(parts, " || ")
}

// ShortString joins the compact representations with `||`, rendering
// complements of single versions as `!=version`.
func (u VersionUnion) ShortString() string {
	if version, ok := u.excludeVersion(); ok {
		return fmt.Sprintf("!=%s", version.ShortString())
	}

	parts := make([]string, len(u.items))
	for index, item := range u.items {
		parts[index] = item.ShortString()
	}
	return strings.Join(parts, "||")
}

// Ensure interface compliance.
var (
	_ VersionSet  = VersionEmpty{}
	_ versionItem = VersionPoint{}
	_ versionItem = VersionRange{}
	_ VersionSet  = VersionUnion{}
)
