package versions

import "testing"

// Benchmark scenarios for parsing, ordering and set algebra performance testing

// BenchmarkParseVersion tests parsing across the common version shapes
func BenchmarkParseVersion(b *testing.B) {
	inputs := []string{
		"1",
		"1.2.3",
		"1.0.0-alpha.1",
		"2!1.0.0-rc.1-post.2-dev.3+build.4",
		"1.2.3.4.5.post1",
	}

	b.ResetTimer()
	for b.Loop() {
		for _, input := range inputs {
			if _, err := ParseVersion(input); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
		}
	}
}

// BenchmarkParseSpecifier tests parsing a specifier that exercises
// every operator grammar
func BenchmarkParseSpecifier(b *testing.B) {
	input := ">=1.0.0, <2.0.0, !=1.5.0 || ^3.2.1 || ~=4.2 || ==5.*"

	b.ResetTimer()
	for b.Loop() {
		if _, err := ParseSpecifier(input); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

// BenchmarkVersionCompare tests comparison of fully tagged versions
func BenchmarkVersionCompare(b *testing.B) {
	left := MustParseVersion("1!1.2.3-rc.1-post.2-dev.3+build.4")
	right := MustParseVersion("1!1.2.3-rc.1-post.2-dev.3+build.5")

	b.ResetTimer()
	for b.Loop() {
		left.Compare(right)
	}
}

// BenchmarkSortVersions tests sorting a mixed stable and tagged list
func BenchmarkSortVersions(b *testing.B) {
	inputs := []string{
		"1.0.0-post.1",
		"0.9.0",
		"1.0.0-alpha.2",
		"2!0.1.0",
		"1.0.0-dev.0",
		"1.0.0-rc.1",
		"1.0.0+build.5",
		"0.9.0-beta.1",
		"1.0.1",
		"1.0.0",
	}

	list := make([]Version, len(inputs))
	for index, input := range inputs {
		list[index] = MustParseVersion(input)
	}

	scratch := make([]Version, len(list))

	b.ResetTimer()
	for b.Loop() {
		copy(scratch, list)
		SortVersions(scratch)
	}
}

// BenchmarkSetContains tests membership against a multi-item union
func BenchmarkSetContains(b *testing.B) {
	set := MustParseVersionSet(">=1.0.0, <2.0.0 || >=3.0.0, <4.0.0 || ==5.0.0")
	probe := MustParseVersion("3.5.0")

	b.ResetTimer()
	for b.Loop() {
		set.Contains(probe)
	}
}

// BenchmarkSetOperations tests the algebra on overlapping unions
func BenchmarkSetOperations(b *testing.B) {
	first := MustParseVersionSet(">=1.0.0, <2.0.0 || >=3.0.0, <4.0.0")
	second := MustParseVersionSet(">=1.5.0, <3.5.0")

	b.ResetTimer()
	for b.Loop() {
		first.Union(second)
		first.Intersection(second)
		first.Difference(second)
		first.Complement()
	}
}

// BenchmarkSimplify tests canonicalizing a specifier with mergeable clauses
func BenchmarkSimplify(b *testing.B) {
	specifier := MustParseSpecifier(">=1.0.0, <2.0.0 || >=2.0.0, <3.0.0 || ==2.5.0")

	b.ResetTimer()
	for b.Loop() {
		Simplify(specifier)
	}
}

// BenchmarkCacheReuse tests cache benefits across repeated parses
// This demonstrates the real-world benefit of caching when the same
// requirement strings come back on every resolution pass
func BenchmarkCacheReuse(b *testing.B) {
	inputs := []string{
		"1.2.3",
		"1.0.0-alpha.1",
		"2!1.0.0-rc.1+build.4",
		"1.2.3.4.5.post1",
	}

	b.Run("WithCache", func(b *testing.B) {
		cache := NewCache()

		b.ResetTimer()
		for b.Loop() {
			for _, input := range inputs {
				if _, err := cache.ParseVersion(input); err != nil {
					b.Fatalf("unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("WithoutCache", func(b *testing.B) {
		b.ResetTimer()
		for b.Loop() {
			for _, input := range inputs {
				if _, err := ParseVersion(input); err != nil {
					b.Fatalf("unexpected error: %v", err)
				}
			}
		}
	})
}
