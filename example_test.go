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

package versions_test

import (
	"fmt"

	"github.com/nekitdev/versions"
)

// ExampleParseVersion demonstrates parsing the compact version form
func ExampleParseVersion() {
	version, _ := versions.ParseVersion("1.0.0a1.dev0+build.1")

	fmt.Println(version)
	fmt.Println(version.ShortString())
	fmt.Println(version.IsPreRelease())

	// Output:
	// 1.0.0-alpha.1-dev.0+build.1
	// 1.0.0a1.dev0+build.1
	// true
}

// ExampleVersion_NextBreaking demonstrates how breaking changes depend
// on the leading zero parts of the release
func ExampleVersion_NextBreaking() {
	for _, text := range []string{"1.2.3", "0.2.3", "0.0.3"} {
		version := versions.MustParseVersion(text)
		fmt.Printf("%s -> %s\n", version, version.NextBreaking())
	}

	// Output:
	// 1.2.3 -> 2.0.0
	// 0.2.3 -> 0.3.0
	// 0.0.3 -> 0.0.4
}

// ExampleSortVersions demonstrates the ordering of tagged versions
func ExampleSortVersions() {
	list := []versions.Version{
		versions.MustParseVersion("1.0.0"),
		versions.MustParseVersion("1.0.0-alpha.1"),
		versions.MustParseVersion("1.0.0-post.1"),
		versions.MustParseVersion("1.0.0-dev.0"),
	}

	versions.SortVersions(list)

	for _, version := range list {
		fmt.Println(version)
	}

	// Output:
	// 1.0.0-dev.0
	// 1.0.0-alpha.1
	// 1.0.0
	// 1.0.0-post.1
}

// ExampleParseSpecifier demonstrates combining requirements with `,` and `||`
func ExampleParseSpecifier() {
	specifier, _ := versions.ParseSpecifier(">=1.0.0, <2.0.0 || ==3.0.0")

	fmt.Println(specifier)
	fmt.Println(specifier.Accepts(versions.MustParseVersion("1.5.0")))
	fmt.Println(specifier.Accepts(versions.MustParseVersion("2.5.0")))
	fmt.Println(specifier.Accepts(versions.MustParseVersion("3.0.0")))

	// Output:
	// >=1.0.0, <2.0.0 || ==3.0.0
	// true
	// false
	// true
}

// ExampleParseVersionSet demonstrates converting a wildcard requirement
// into its canonical set of versions
func ExampleParseVersionSet() {
	set, _ := versions.ParseVersionSet("==1.*")

	fmt.Println(set)
	fmt.Println(set.Contains(versions.MustParseVersion("1.5.0")))
	fmt.Println(set.Contains(versions.MustParseVersion("2.0.0")))

	// Output:
	// >=1.0, <2.0
	// true
	// false
}

// ExampleSimplify demonstrates collapsing redundant requirements
func ExampleSimplify() {
	merged := versions.MustParseSpecifier(">=1.0.0, <2.0.0 || >=2.0.0, <3.0.0")
	fmt.Println(versions.Simplify(merged))

	excluded := versions.MustParseSpecifier("<1.0.0 || >1.0.0")
	fmt.Println(versions.Simplify(excluded))

	// Output:
	// >=1.0.0, <3.0.0
	// !=1.0.0
}

// ExampleCache demonstrates caching repeated parses
func ExampleCache() {
	cache := versions.NewCache()

	first, _ := cache.ParseVersion("1.2.3")
	second, _ := cache.ParseVersion("1.2.3")

	fmt.Println(first.Equal(second))
	fmt.Println(cache.Stats().VersionHits)

	// Output:
	// true
	// 1
}
