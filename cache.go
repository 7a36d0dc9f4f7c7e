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
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache wraps the parsing functions and caches successful results so
// that repeated inputs are only parsed once.
//
// Parsing is regex-driven and allocates on every call, so caching pays
// off when the same version and specifier strings are seen repeatedly,
// for example when scanning dependency manifests or lockfiles.
//
// Failed parses are not cached and are retried on every call.
//
// The underlying storage is safe for concurrent use, while the
// statistics counters are not synchronized.
type Cache struct {
	versions   *gocache.Cache
	specifiers *gocache.Cache
	sets       *gocache.Cache

	versionCalls int
	versionHits  int

	specifierCalls int
	specifierHits  int

	setCalls int
	setHits  int
}

// NewCache creates a cache that holds entries indefinitely.
func NewCache() *Cache {
	return NewCacheWithTTL(gocache.NoExpiration, 0)
}

// NewCacheWithTTL creates a cache that drops entries after the given
// time to live. The cleanup interval controls how often expired
// entries are removed; zero disables the background cleanup.
func NewCacheWithTTL(ttl, cleanup time.Duration) *Cache {
	return &Cache{
		versions:   gocache.New(ttl, cleanup),
		specifiers: gocache.New(ttl, cleanup),
		sets:       gocache.New(ttl, cleanup),
	}
}

// ParseVersion is like the package-level ParseVersion, caching the result.
func (c *Cache) ParseVersion(input string) (Version, error) {
	c.versionCalls++

	if cached, ok := c.versions.Get(input); ok {
		c.versionHits++
		return cached.(Version), nil
	}

	version, err := ParseVersion(input)
	if err != nil {
		return Version{}, err
	}

	c.versions.SetDefault(input, version)
	return version, nil
}

// ParseSpecifier is like the package-level ParseSpecifier, caching the result.
func (c *Cache) ParseSpecifier(input string) (Specifier, error) {
	c.specifierCalls++

	if cached, ok := c.specifiers.Get(input); ok {
		c.specifierHits++
		return cached.(Specifier), nil
	}

	specifier, err := ParseSpecifier(input)
	if err != nil {
		return nil, err
	}

	c.specifiers.SetDefault(input, specifier)
	return specifier, nil
}

// ParseVersionSet is like the package-level ParseVersionSet, caching the result.
func (c *Cache) ParseVersionSet(input string) (VersionSet, error) {
	c.setCalls++

	if cached, ok := c.sets.Get(input); ok {
		c.setHits++
		return cached.(VersionSet), nil
	}

	set, err := ParseVersionSet(input)
	if err != nil {
		return nil, err
	}

	c.sets.SetDefault(input, set)
	return set, nil
}

// CacheStats reports statistics about cache performance.
type CacheStats struct {
	VersionCalls   int
	VersionHits    int
	VersionHitRate float64

	SpecifierCalls   int
	SpecifierHits    int
	SpecifierHitRate float64

	SetCalls   int
	SetHits    int
	SetHitRate float64

	TotalCalls     int
	TotalHits      int
	OverallHitRate float64
}

// Stats returns statistics describing how effective the cache has been.
func (c *Cache) Stats() CacheStats {
	stats := CacheStats{
		VersionCalls:   c.versionCalls,
		VersionHits:    c.versionHits,
		SpecifierCalls: c.specifierCalls,
		SpecifierHits:  c.specifierHits,
		SetCalls:       c.setCalls,
		SetHits:        c.setHits,
		TotalCalls:     c.versionCalls + c.specifierCalls + c.setCalls,
		TotalHits:      c.versionHits + c.specifierHits + c.setHits,
	}

	if stats.VersionCalls > 0 {
		stats.VersionHitRate = float64(stats.VersionHits) / float64(stats.VersionCalls)
	}

	if stats.SpecifierCalls > 0 {
		stats.SpecifierHitRate = float64(stats.SpecifierHits) / float64(stats.SpecifierCalls)
	}

	if stats.SetCalls > 0 {
		stats.SetHitRate = float64(stats.SetHits) / float64(stats.SetCalls)
	}

	if stats.TotalCalls > 0 {
		stats.OverallHitRate = float64(stats.TotalHits) / float64(stats.TotalCalls)
	}

	return stats
}

// Clear drops all cached entries and resets the statistics.
func (c *Cache) Clear() {
	c.versions.Flush()
	c.specifiers.Flush()
	c.sets.Flush()

	c.versionCalls = 0
	c.versionHits = 0
	c.specifierCalls = 0
	c.specifierHits = 0
	c.setCalls = 0
	c.setHits = 0
}
