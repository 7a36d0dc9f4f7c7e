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

// Package versions provides parsing, comparison and manipulation of
// versions and version specifiers.
//
// A version has the `epoch!release-pre-post-dev+local` shape, where
// only the release is required, for example `1.0.0`, `2!1.2`,
// `1.0.0-rc.1` or `1.0.0a1.dev0+build.1`. Specifiers such as
// `>=1.0.0, <2.0.0` or `^1.2.3 || ==2.*` describe version requirements
// and translate into canonical version sets that support the usual
// set algebra.
package versions

import "slices"

// SortVersions sorts the versions in ascending order, in place.
func SortVersions(versions []Version) {
	slices.SortFunc(versions, Version.Compare)
}
