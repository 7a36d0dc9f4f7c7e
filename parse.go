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
	"regexp"
	"strconv"
	"strings"
)

const (
	alphaPattern      = `[a-z]`
	digitPattern      = `[0-9]`
	alphaDigitPattern = `[a-z0-9]`
	separatorPattern  = `[.\-_]`
	wildcardPattern   = `(?:x|\*)`
)

var (
	prePhasesPattern  = strings.Join(prePhases, "|")
	postPhasesPattern = strings.Join(postPhases, "|")
	devPhasesPattern  = strings.Join(devPhases, "|")

	tagPattern = `(?P<phase>` + alphaPattern + `+)` +
		`(?:` + separatorPattern + `?(?P<value>` + digitPattern + `+))?`

	epochPattern   = `(?:(?P<epoch>` + digitPattern + `+)!)?`
	releasePattern = `(?P<release>` + digitPattern + `+(?:\.` + digitPattern + `+)*)`

	prePattern = `(?:` + separatorPattern + `?` +
		`(?P<pre>(?P<pre_phase>` + prePhasesPattern + `)` +
		`(?:` + separatorPattern + `?(?P<pre_value>` + digitPattern + `+))?))?`

	postPattern = `(?:` +
		`(?:-(?P<post_implicit>` + digitPattern + `+))` +
		`|(?:` + separatorPattern + `?` +
		`(?P<post>(?P<post_phase>` + postPhasesPattern + `)` +
		`(?:` + separatorPattern + `?(?P<post_value>` + digitPattern + `+))?)))?`

	devPattern = `(?:` + separatorPattern + `?` +
		`(?P<dev>(?P<dev_phase>` + devPhasesPattern + `)` +
		`(?:` + separatorPattern + `?(?P<dev_value>` + digitPattern + `+))?))?`

	localPattern = `(?:\+(?P<local>` + alphaDigitPattern + `+` +
		`(?:` + separatorPattern + alphaDigitPattern + `+)*))?`

	publicVersionPattern = `v?` + epochPattern + releasePattern +
		prePattern + postPattern + devPattern

	versionPattern = publicVersionPattern + localPattern

	wildcardPrePattern = `(?:` + separatorPattern + `?` +
		`(?:(?:` + prePhasesPattern + `)` + separatorPattern + `?` + wildcardPattern + `))`

	plainPrePattern = `(?:` + separatorPattern + `?` +
		`(?:(?:` + prePhasesPattern + `)(?:` + separatorPattern + `?(?:` + digitPattern + `+))?))?`

	wildcardPostPattern = `(?:` +
		`(?:-` + wildcardPattern + `)` +
		`|(?:` + separatorPattern + `?` +
		`(?:(?:` + postPhasesPattern + `)` + separatorPattern + `?` + wildcardPattern + `)))`

	plainPostPattern = `(?:` +
		`(?:-(?:` + digitPattern + `+))` +
		`|(?:` + separatorPattern + `?` +
		`(?:(?:` + postPhasesPattern + `)(?:` + separatorPattern + `?(?:` + digitPattern + `+))?)))?`

	wildcardDevPattern = `(?:` + separatorPattern + `?` +
		`(?:(?:` + devPhasesPattern + `)` + separatorPattern + `?` + wildcardPattern + `))`

	// The wildcard may replace the whole version, a release part, or
	// the value of exactly one tag. Local segments are not allowed.
	wildcardVersionPattern = `v?` +
		`(?:(?:` + digitPattern + `+)!)?` +
		`(?:` + wildcardPattern +
		`|(?:(?:` + digitPattern + `+(?:\.` + digitPattern + `+)*)` +
		`(?:(?:\.` + wildcardPattern + `)` +
		`|(?:` + wildcardPrePattern +
		`|(?:` + plainPrePattern +
		`(?:` + wildcardPostPattern +
		`|(?:` + plainPostPattern + wildcardDevPattern + `)))))))`
)

var (
	tagRegex     = regexp.MustCompile(`(?i)\A(?:` + tagPattern + `)\z`)
	versionRegex = regexp.MustCompile(`(?i)\A(?:` + versionPattern + `)\z`)

	wildcardSpecifierRegex = regexp.MustCompile(
		`(?i)\A(?:(?P<operator>==|=|!=)?(?P<version>` + wildcardVersionPattern + `))\z`,
	)
	orderSpecifierRegex = regexp.MustCompile(
		`(?i)\A(?:(?P<operator><=|>=|<|>)(?P<version>` + publicVersionPattern + `))\z`,
	)
	equalSpecifierRegex = regexp.MustCompile(
		`(?i)\A(?:(?P<operator>==|=|!=)?(?P<version>` + versionPattern + `))\z`,
	)
	caretSpecifierRegex = regexp.MustCompile(
		`(?i)\A(?:(?P<operator>\^)(?P<version>` + publicVersionPattern + `))\z`,
	)
	tildeSpecifierRegex = regexp.MustCompile(
		`(?i)\A(?:(?P<operator>~=|~)(?P<version>` + publicVersionPattern + `))\z`,
	)
)

// wildcardReplacer substitutes wildcards with zeros, allowing wildcard
// versions to be parsed with the regular version grammar.
var wildcardReplacer = strings.NewReplacer("*", "0", "x", "0", "X", "0")

// ParseVersion parses a version from its string representation,
// such as `1.0.0`, `v2!1.2-rc.1` or `1.0.0a1.dev0+build.1`.
func ParseVersion(input string) (Version, error) {
	match := versionRegex.FindStringSubmatch(input)
	if match == nil {
		return Version{}, &ParseVersionError{Input: input}
	}

	group := func(name string) string {
		return match[versionRegex.SubexpIndex(name)]
	}

	var version Version

	if epoch := group("epoch"); epoch != "" {
		parsed, err := strconv.Atoi(epoch)
		if err != nil {
			return Version{}, &ParseVersionError{Input: input}
		}
		version.epoch = parsed
	}

	release, err := parseRelease(group("release"))
	if err != nil {
		return Version{}, &ParseVersionError{Input: input}
	}
	version.release = release

	if pre := group("pre"); pre != "" {
		tag, err := ParsePreTag(pre)
		if err != nil {
			return Version{}, err
		}
		version.pre = &tag
	}

	if implicit := group("post_implicit"); implicit != "" {
		value, err := strconv.Atoi(implicit)
		if err != nil {
			return Version{}, &ParseVersionError{Input: input}
		}
		tag := postTagWithValue(value)
		version.post = &tag
	} else if post := group("post"); post != "" {
		tag, err := ParsePostTag(post)
		if err != nil {
			return Version{}, err
		}
		version.post = &tag
	}

	if dev := group("dev"); dev != "" {
		tag, err := ParseDevTag(dev)
		if err != nil {
			return Version{}, err
		}
		version.dev = &tag
	}

	if local := group("local"); local != "" {
		parsed, err := ParseLocal(local)
		if err != nil {
			return Version{}, err
		}
		version.local = &parsed
	}

	return version, nil
}

// MustParseVersion is like ParseVersion but panics on errors.
// It simplifies safe initialization of version variables.
func MustParseVersion(input string) Version {
	version, err := ParseVersion(input)
	if err != nil {
		panic(err)
	}
	return version
}

func parseRelease(input string) (Release, error) {
	fields := strings.Split(input, ".")
	parts := make([]int, len(fields))
	for index, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return Release{}, err
		}
		parts[index] = value
	}
	return NewRelease(parts...)
}

// ParseLocal parses a local segment from its string representation,
// such as `build.1`. Parts are split on `.`, `-` and `_` separators,
// and textual parts are folded to lower case.
func ParseLocal(input string) (Local, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == '.' || r == '-' || r == '_'
	})
	parts := make([]LocalPart, 0, len(fields))
	for _, field := range fields {
		if value, err := strconv.Atoi(field); err == nil {
			parts = append(parts, LocalNumber(value))
		} else {
			parts = append(parts, LocalText(strings.ToLower(field)))
		}
	}
	return NewLocal(parts...)
}

func parseTag(input, kind string) (phase string, value int, err error) {
	match := tagRegex.FindStringSubmatch(input)
	if match == nil {
		return "", 0, &ParseTagError{Input: input, Kind: kind}
	}
	phase = match[tagRegex.SubexpIndex("phase")]
	if text := match[tagRegex.SubexpIndex("value")]; text != "" {
		value, err = strconv.Atoi(text)
		if err != nil {
			return "", 0, &ParseTagError{Input: input, Kind: kind}
		}
	}
	return phase, value, nil
}

// ParsePreTag parses a pre-release tag such as `alpha.1` or `rc1`.
func ParsePreTag(input string) (PreTag, error) {
	phase, value, err := parseTag(input, preTagKind)
	if err != nil {
		return PreTag{}, err
	}
	return NewPreTag(phase, value)
}

// ParsePostTag parses a post-release tag such as `post.1` or `rev1`.
func ParsePostTag(input string) (PostTag, error) {
	phase, value, err := parseTag(input, postTagKind)
	if err != nil {
		return PostTag{}, err
	}
	return NewPostTag(phase, value)
}

// ParseDevTag parses a dev-release tag such as `dev.1`.
func ParseDevTag(input string) (DevTag, error) {
	phase, value, err := parseTag(input, devTagKind)
	if err != nil {
		return DevTag{}, err
	}
	if strings.ToLower(phase) != phaseDev {
		return DevTag{}, &PhaseError{Phase: phase, Kind: devTagKind}
	}
	return NewDevTag(value), nil
}

// ParseSpecifier parses a specifier such as `>=1.0.0, <2.0.0 || ==3.*`.
// Whitespace is insignificant, `||` combines alternatives and `,`
// combines requirements within an alternative.
func ParseSpecifier(input string) (Specifier, error) {
	return parseSpecifierAny(clearWhitespace(input))
}

// MustParseSpecifier is like ParseSpecifier but panics on errors.
// It simplifies safe initialization of specifier variables.
func MustParseSpecifier(input string) Specifier {
	specifier, err := ParseSpecifier(input)
	if err != nil {
		panic(err)
	}
	return specifier
}

// ParseVersionSet parses a specifier and converts it into the canonical
// set of versions it accepts.
func ParseVersionSet(input string) (VersionSet, error) {
	specifier, err := ParseSpecifier(input)
	if err != nil {
		return nil, err
	}
	return SpecifierToVersionSet(specifier), nil
}

// MustParseVersionSet is like ParseVersionSet but panics on errors.
func MustParseVersionSet(input string) VersionSet {
	set, err := ParseVersionSet(input)
	if err != nil {
		panic(err)
	}
	return set
}

func clearWhitespace(input string) string {
	return strings.Join(strings.Fields(input), "")
}

func parseSpecifierAny(input string) (Specifier, error) {
	parts := strings.Split(input, "||")
	specifiers := make([]Specifier, 0, len(parts))
	for _, part := range parts {
		specifier, err := parseSpecifierAll(part)
		if err != nil {
			return nil, err
		}
		specifiers = append(specifiers, specifier)
	}
	return NewSpecifierAny(specifiers...), nil
}

func parseSpecifierAll(input string) (Specifier, error) {
	parts := strings.Split(input, ",")
	specifiers := make([]Specifier, 0, len(parts))
	for _, part := range parts {
		specifier, err := parseSpecifierSingle(part)
		if err != nil {
			return nil, err
		}
		specifiers = append(specifiers, specifier)
	}
	return NewSpecifierAll(specifiers...), nil
}

func parseSpecifierSingle(input string) (Specifier, error) {
	for _, tryParse := range []func(string) (Specifier, bool, error){
		tryParseWildcard,
		tryParseOrder,
		tryParseEqual,
		tryParseCaret,
		tryParseTilde,
	} {
		specifier, ok, err := tryParse(input)
		if err != nil {
			return nil, err
		}
		if ok {
			return specifier, nil
		}
	}
	return nil, &ParseSpecifierError{Input: input}
}

func tryParseWildcard(input string) (Specifier, bool, error) {
	match := wildcardSpecifierRegex.FindStringSubmatch(input)
	if match == nil {
		return nil, false, nil
	}

	kind := OperatorWildcardDoubleEqual
	if operator := match[wildcardSpecifierRegex.SubexpIndex("operator")]; operator != "" {
		kind = OperatorKind(operator + "*")
	}

	substituted := wildcardReplacer.Replace(match[wildcardSpecifierRegex.SubexpIndex("version")])

	version, err := ParseVersion(substituted)
	if err != nil {
		return nil, false, err
	}

	operator, err := NewOperator(kind, version)
	if err != nil {
		return nil, false, err
	}

	return NewSpecifierOne(operator), true, nil
}

func tryParseOrder(input string) (Specifier, bool, error) {
	return tryParseOperator(orderSpecifierRegex, input)
}

func tryParseCaret(input string) (Specifier, bool, error) {
	return tryParseOperator(caretSpecifierRegex, input)
}

func tryParseTilde(input string) (Specifier, bool, error) {
	return tryParseOperator(tildeSpecifierRegex, input)
}

func tryParseOperator(pattern *regexp.Regexp, input string) (Specifier, bool, error) {
	match := pattern.FindStringSubmatch(input)
	if match == nil {
		return nil, false, nil
	}

	kind := OperatorKind(match[pattern.SubexpIndex("operator")])

	version, err := ParseVersion(match[pattern.SubexpIndex("version")])
	if err != nil {
		return nil, false, err
	}

	operator, err := NewOperator(kind, version)
	if err != nil {
		return nil, false, err
	}

	return NewSpecifierOne(operator), true, nil
}

func tryParseEqual(input string) (Specifier, bool, error) {
	match := equalSpecifierRegex.FindStringSubmatch(input)
	if match == nil {
		return nil, false, nil
	}

	kind := OperatorDoubleEqual
	if operator := match[equalSpecifierRegex.SubexpIndex("operator")]; operator != "" {
		kind = OperatorKind(operator)
	}

	version, err := ParseVersion(match[equalSpecifierRegex.SubexpIndex("version")])
	if err != nil {
		return nil, false, err
	}

	operator, err := NewOperator(kind, version)
	if err != nil {
		return nil, false, err
	}

	return NewSpecifierOne(operator), true, nil
}
