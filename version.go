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

// Version represents a single version, consisting of the epoch, the release
// and the optional pre-release, post-release, dev-release and local segments.
//
// Versions are immutable values. Methods never modify the receiver and
// instead return updated copies.
type Version struct {
	epoch   int
	release Release
	pre     *PreTag
	post    *PostTag
	dev     *DevTag
	local   *Local
}

// NewVersion creates a stable Version from the given release parts.
// Returns ErrEmptyRelease if no parts are given.
func NewVersion(parts ...int) (Version, error) {
	release, err := NewRelease(parts...)
	if err != nil {
		return Version{}, err
	}
	return Version{release: release}, nil
}

// Epoch returns the epoch of the version.
func (v Version) Epoch() int {
	return v.epoch
}

// Release returns the release of the version.
func (v Version) Release() Release {
	return v.release
}

// Pre returns the pre-release tag of the version, if present.
func (v Version) Pre() (PreTag, bool) {
	if v.pre == nil {
		return PreTag{}, false
	}
	return *v.pre, true
}

// Post returns the post-release tag of the version, if present.
func (v Version) Post() (PostTag, bool) {
	if v.post == nil {
		return PostTag{}, false
	}
	return *v.post, true
}

// Dev returns the dev-release tag of the version, if present.
func (v Version) Dev() (DevTag, bool) {
	if v.dev == nil {
		return DevTag{}, false
	}
	return *v.dev, true
}

// Local returns the local segment of the version, if present.
func (v Version) Local() (Local, bool) {
	if v.local == nil {
		return Local{}, false
	}
	return *v.local, true
}

// WithEpoch returns the version with the epoch replaced.
func (v Version) WithEpoch(epoch int) Version {
	v.epoch = epoch
	return v
}

// WithRelease returns the version with the release replaced.
func (v Version) WithRelease(release Release) Version {
	v.release = release
	return v
}

// WithPre returns the version with the pre-release tag replaced.
func (v Version) WithPre(pre PreTag) Version {
	v.pre = &pre
	return v
}

// WithoutPre returns the version with the pre-release tag removed.
func (v Version) WithoutPre() Version {
	v.pre = nil
	return v
}

// WithPost returns the version with the post-release tag replaced.
func (v Version) WithPost(post PostTag) Version {
	v.post = &post
	return v
}

// WithoutPost returns the version with the post-release tag removed.
func (v Version) WithoutPost() Version {
	v.post = nil
	return v
}

// WithDev returns the version with the dev-release tag replaced.
func (v Version) WithDev(dev DevTag) Version {
	v.dev = &dev
	return v
}

// WithoutDev returns the version with the dev-release tag removed.
func (v Version) WithoutDev() Version {
	v.dev = nil
	return v
}

// WithLocal returns the version with the local segment replaced.
func (v Version) WithLocal(local Local) Version {
	v.local = &local
	return v
}

// WithoutLocal returns the version with the local segment removed.
func (v Version) WithoutLocal() Version {
	v.local = nil
	return v
}

// IsPreRelease reports whether the version has a pre-release tag.
func (v Version) IsPreRelease() bool {
	return v.pre != nil
}

// IsPostRelease reports whether the version has a post-release tag.
func (v Version) IsPostRelease() bool {
	return v.post != nil
}

// IsDevRelease reports whether the version has a dev-release tag.
func (v Version) IsDevRelease() bool {
	return v.dev != nil
}

// IsLocal reports whether the version has a local segment.
func (v Version) IsLocal() bool {
	return v.local != nil
}

// IsUnstable reports whether the version is a pre-release or a dev-release.
func (v Version) IsUnstable() bool {
	return v.pre != nil || v.dev != nil
}

// IsStable reports whether the version is stable, that is,
// neither a pre-release nor a dev-release.
func (v Version) IsStable() bool {
	return !v.IsUnstable()
}

// Precision returns the amount of parts in the release of the version.
func (v Version) Precision() int {
	return v.release.Precision()
}

// LastIndex returns the index of the last release part of the version.
func (v Version) LastIndex() int {
	return v.release.LastIndex()
}

// Major returns the major part of the release, defaulting to zero.
func (v Version) Major() int {
	return v.release.Major()
}

// Minor returns the minor part of the release, defaulting to zero.
func (v Version) Minor() int {
	return v.release.Minor()
}

// Micro returns the micro part of the release, defaulting to zero.
func (v Version) Micro() int {
	return v.release.Micro()
}

// Patch returns the patch part of the release, defaulting to zero.
// This is an alias for Micro.
func (v Version) Patch() int {
	return v.release.Patch()
}

// Extra returns a copy of the release parts beyond the micro part.
func (v Version) Extra() []int {
	return v.release.Extra()
}

// At returns the release part at the index, or zero if the index is out of range.
func (v Version) At(index int) int {
	return v.release.At(index)
}

// HasAt reports whether the release has a part at the index.
func (v Version) HasAt(index int) bool {
	return v.release.HasAt(index)
}

// HasMajor reports whether the release has the major part.
func (v Version) HasMajor() bool {
	return v.release.HasMajor()
}

// HasMinor reports whether the release has the minor part.
func (v Version) HasMinor() bool {
	return v.release.HasMinor()
}

// HasMicro reports whether the release has the micro part.
func (v Version) HasMicro() bool {
	return v.release.HasMicro()
}

// HasPatch reports whether the release has the patch part.
// This is an alias for HasMicro.
func (v Version) HasPatch() bool {
	return v.release.HasPatch()
}

// HasExtra reports whether the release has parts beyond the patch one.
func (v Version) HasExtra() bool {
	return v.release.HasExtra()
}

// IsSemantic reports whether the release consists of exactly
// the major, minor and patch parts.
func (v Version) IsSemantic() bool {
	return v.release.IsSemantic()
}

// ToSemantic returns the version with its release converted to
// the semantic form, keeping all other segments.
func (v Version) ToSemantic() Version {
	return v.WithRelease(v.release.ToSemantic())
}

// SetAt returns the version with the release part at the index set
// to the value, padding the release with zeros as needed.
func (v Version) SetAt(index, value int) Version {
	return v.WithRelease(v.release.SetAt(index, value))
}

// SetMajor returns the version with the major part set to the value.
func (v Version) SetMajor(value int) Version {
	return v.SetAt(majorIndex, value)
}

// SetMinor returns the version with the minor part set to the value.
func (v Version) SetMinor(value int) Version {
	return v.SetAt(minorIndex, value)
}

// SetMicro returns the version with the micro part set to the value.
func (v Version) SetMicro(value int) Version {
	return v.SetAt(microIndex, value)
}

// SetPatch returns the version with the patch part set to the value.
// This is an alias for SetMicro.
func (v Version) SetPatch(value int) Version {
	return v.SetMicro(value)
}

// PadTo returns the version with the release padded with zeros to the length.
func (v Version) PadTo(length int) Version {
	return v.WithRelease(v.release.PadTo(length))
}

// PadToIndex returns the version with the release padded with zeros
// to contain the index.
func (v Version) PadToIndex(index int) Version {
	return v.WithRelease(v.release.PadToIndex(index))
}

// PadToNext returns the version with the release padded with zeros
// to the next index.
func (v Version) PadToNext() Version {
	return v.WithRelease(v.release.PadToNext())
}

// NextAt returns the next stable version with the release part
// at the given index bumped and all parts after it reset.
//
// For unstable versions the release is kept as is, since the upcoming
// stable version is the one the unstable version leads to.
// All tags and the local segment are dropped.
func (v Version) NextAt(index int) Version {
	release := v.release
	if v.IsStable() {
		release = release.NextAt(index)
	}
	return Version{epoch: v.epoch, release: release}
}

// NextMajor returns the next stable version with the major part bumped.
func (v Version) NextMajor() Version {
	return v.NextAt(majorIndex)
}

// NextMinor returns the next stable version with the minor part bumped.
func (v Version) NextMinor() Version {
	return v.NextAt(minorIndex)
}

// NextMicro returns the next stable version with the micro part bumped.
func (v Version) NextMicro() Version {
	return v.NextAt(microIndex)
}

// NextPatch returns the next stable version with the patch part bumped.
// This is an alias for NextMicro.
func (v Version) NextPatch() Version {
	return v.NextAt(microIndex)
}

// NextPre returns the next pre-release of the version.
//
// Versions without the pre-release tag receive the `alpha.0` one.
// The post-release, dev-release and local segments are dropped.
func (v Version) NextPre() Version {
	pre := defaultPreTag()
	if v.pre != nil {
		pre = v.pre.Next()
	}
	return Version{epoch: v.epoch, release: v.release, pre: &pre}
}

// NextPrePhase returns the next pre-release phase of the version,
// such as `beta.0` after `alpha.1`.
//
// Versions without the pre-release tag receive the `alpha.0` one.
// The second result is false when the current phase is final.
func (v Version) NextPrePhase() (Version, bool) {
	pre := defaultPreTag()
	if v.pre != nil {
		next, ok := v.pre.NextPhase()
		if !ok {
			return Version{}, false
		}
		pre = next
	}
	return Version{epoch: v.epoch, release: v.release, pre: &pre}, true
}

// NextPost returns the next post-release of the version.
//
// Versions without the post-release tag receive the `post.0` one.
// The local segment is dropped.
func (v Version) NextPost() Version {
	post := defaultPostTag()
	if v.post != nil {
		post = v.post.Next()
	}
	return Version{epoch: v.epoch, release: v.release, pre: v.pre, post: &post, dev: v.dev}
}

// NextDev returns the next dev-release of the version.
//
// Versions without the dev-release tag receive the `dev.0` one.
// The local segment is dropped.
func (v Version) NextDev() Version {
	dev := NewDevTag(0)
	if v.dev != nil {
		dev = v.dev.Next()
	}
	return Version{epoch: v.epoch, release: v.release, pre: v.pre, post: v.post, dev: &dev}
}

// NextBreaking returns the minimal version that is considered
// incompatible with the given one.
//
// For versions above `1.0.0` this is the next major version.
// Before `1.0.0` bumping the minor part is breaking, and before `0.1.0`
// bumping the micro part is.
func (v Version) NextBreaking() Version {
	if v.Major() == 0 {
		if v.Minor() != 0 {
			return v.NextMinor()
		}
		if v.HasMicro() {
			return v.NextMicro()
		}
		if v.HasMinor() {
			return v.NextMinor()
		}
		return v.NextMajor()
	}
	return v.ToStable().NextMajor()
}

// ToStable returns the stable variant of the version, dropping
// the pre-release, dev-release and local segments of unstable versions.
func (v Version) ToStable() Version {
	if v.IsStable() {
		return v
	}
	return Version{epoch: v.epoch, release: v.release}
}

// Normalize returns the version with the pre-release and post-release
// phases in preferred form, for example `candidate` becomes `rc`
// and `rev` becomes `post`.
func (v Version) Normalize() Version {
	if v.pre != nil {
		pre := v.pre.Normalize()
		v.pre = &pre
	}
	if v.post != nil {
		post := v.post.Normalize()
		v.post = &post
	}
	return v
}

// Tags of equal kind compare among themselves, and missing tags order
// against present ones via the orders below. Missing pre-release tags
// order after present ones, except on dev-releases without post-release
// tags, where the dev-release must come first. Missing post-release and
// local segments order before present ones, while missing dev-release
// tags order after, as dev-releases precede their final versions.

func (v Version) preOrder() int {
	if v.pre != nil {
		return 0
	}
	if v.post == nil && v.dev != nil {
		return -1
	}
	return 1
}

func (v Version) postOrder() int {
	if v.post != nil {
		return 0
	}
	return -1
}

func (v Version) devOrder() int {
	if v.dev != nil {
		return 0
	}
	return 1
}

func (v Version) localOrder() int {
	if v.local != nil {
		return 0
	}
	return -1
}

func (v Version) comparePre(other Version) int {
	if compared := cmp.Compare(v.preOrder(), other.preOrder()); compared != 0 {
		return compared
	}
	if v.pre == nil {
		return 0
	}
	return v.pre.Compare(*other.pre)
}

func (v Version) comparePost(other Version) int {
	if compared := cmp.Compare(v.postOrder(), other.postOrder()); compared != 0 {
		return compared
	}
	if v.post == nil {
		return 0
	}
	return v.post.Compare(*other.post)
}

func (v Version) compareDev(other Version) int {
	if compared := cmp.Compare(v.devOrder(), other.devOrder()); compared != 0 {
		return compared
	}
	if v.dev == nil {
		return 0
	}
	return v.dev.Compare(*other.dev)
}

func (v Version) compareLocal(other Version) int {
	if compared := cmp.Compare(v.localOrder(), other.localOrder()); compared != 0 {
		return compared
	}
	if v.local == nil {
		return 0
	}
	return v.local.Compare(*other.local)
}

// Compare returns a negative value if v orders before other,
// zero if they are equal and a positive value otherwise.
func (v Version) Compare(other Version) int {
	if compared := cmp.Compare(v.epoch, other.epoch); compared != 0 {
		return compared
	}
	if compared := v.release.Compare(other.release); compared != 0 {
		return compared
	}
	if compared := v.comparePre(other); compared != 0 {
		return compared
	}
	if compared := v.comparePost(other); compared != 0 {
		return compared
	}
	if compared := v.compareDev(other); compared != 0 {
		return compared
	}
	return v.compareLocal(other)
}

// Equal reports whether the versions are equal. Releases that differ
// only in trailing zeros are considered equal, so `1.0.0` equals `1.0`.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Matches reports whether the version satisfies the specifier.
// Equivalent to specifier.Accepts(v).
func (v Version) Matches(specifier Specifier) bool {
	return specifier.Accepts(v)
}

// String returns the canonical representation of the version,
// such as `1!1.0.0-alpha.1-post.2-dev.3+build.4`.
func (v Version) String() string {
	var builder strings.Builder
	if v.epoch != 0 {
		builder.WriteString(strconv.Itoa(v.epoch))
		builder.WriteByte('!')
	}
	builder.WriteString(v.release.String())
	if v.pre != nil {
		builder.WriteByte('-')
		builder.WriteString(v.pre.String())
	}
	if v.post != nil {
		builder.WriteByte('-')
		builder.WriteString(v.post.String())
	}
	if v.dev != nil {
		builder.WriteByte('-')
		builder.WriteString(v.dev.String())
	}
	if v.local != nil {
		builder.WriteByte('+')
		builder.WriteString(v.local.String())
	}
	return builder.String()
}

// ShortString returns the compact representation of the version,
// such as `1!1.0.0a1.post2.dev3+build.4`.
func (v Version) ShortString() string {
	var builder strings.Builder
	if v.epoch != 0 {
		builder.WriteString(strconv.Itoa(v.epoch))
		builder.WriteByte('!')
	}
	builder.WriteString(v.release.String())
	if v.pre != nil {
		builder.WriteString(v.pre.ShortString())
	}
	if v.post != nil {
		builder.WriteByte('.')
		builder.WriteString(v.post.ShortString())
	}
	if v.dev != nil {
		builder.WriteByte('.')
		builder.WriteString(v.dev.ShortString())
	}
	if v.local != nil {
		builder.WriteByte('+')
		builder.WriteString(v.local.String())
	}
	return builder.String()
}
