package versions

import "testing"

func TestSpecifierToVersionSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		specifier string
		want      string
	}{
		{">=1.0.0", ">=1.0.0"},
		{"<=2.0.0", "<=2.0.0"},
		{">1.0.0", ">1.0.0"},
		{"<2.0.0", "<2.0.0"},
		{"==1.0.0", "==1.0.0"},
		{"!=1.0.0", "!=1.0.0"},
		{"^1.2.3", ">=1.2.3, <2.0.0"},
		{"^0.2.3", ">=0.2.3, <0.3.0"},
		{"~1.2.3", ">=1.2.3, <1.3.0"},
		{"~=1.2.3", ">=1.2.3, <1.3.0"},
		{"~=1.2", ">=1.2, <2.0"},
		{"==1.*", ">=1.0, <2.0"},
		{"==*", "*"},
		{"!=*", "∅"},
		{"!=1.*", "<1.0 || >=2.0"},
		{">=1.0.0, <2.0.0", ">=1.0.0, <2.0.0"},
		{">=1.0.0, <2.0.0 || >=3.0.0", ">=1.0.0, <2.0.0 || >=3.0.0"},
		{">=2.0.0, <3.0.0, >=1.0.0", ">=2.0.0, <3.0.0"},
		{">=1.0.0, <1.0.0", "∅"},
	}

	for _, tt := range tests {
		t.Run(tt.specifier, func(t *testing.T) {
			set := SpecifierToVersionSet(mustSpecifier(t, tt.specifier))

			if got := set.String(); got != tt.want {
				t.Fatalf("SpecifierToVersionSet(%q) = %q, want %q", tt.specifier, got, tt.want)
			}
		})
	}
}

func TestVersionSetToSpecifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  VersionSet
		want string
	}{
		{"empty", EmptyVersionSet(), "∅"},
		{"universal", UniversalVersionSet(), "*"},
		{"point", NewVersionPoint(MustParseVersion("1.0.0")), "==1.0.0"},
		{"from", NewVersionRangeFrom(MustParseVersion("1.0.0"), true), ">=1.0.0"},
		{"from exclusive", NewVersionRangeFrom(MustParseVersion("1.0.0"), false), ">1.0.0"},
		{"up to", NewVersionRangeUpTo(MustParseVersion("2.0.0"), false), "<2.0.0"},
		{"up to inclusive", NewVersionRangeUpTo(MustParseVersion("2.0.0"), true), "<=2.0.0"},
		{
			"bounded",
			MustParseVersionSet(">=1.0.0, <2.0.0"),
			">=1.0.0, <2.0.0",
		},
		{
			"union",
			MustParseVersionSet(">=1.0.0, <2.0.0 || >=3.0.0"),
			">=1.0.0, <2.0.0 || >=3.0.0",
		},
		{
			"excluded point",
			NewVersionPoint(MustParseVersion("1.0.0")).Complement(),
			"!=1.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specifier := VersionSetToSpecifier(tt.set)

			if got := specifier.String(); got != tt.want {
				t.Fatalf("VersionSetToSpecifier = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimplify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"^1.0.0", ">=1.0.0, <2.0.0"},
		{"~1.0.0", ">=1.0.0, <1.1.0"},
		{">=2.0.0, <3.0.0, >=1.0.0", ">=2.0.0, <3.0.0"},
		{">=1.0.0, <2.0.0 || >=2.0.0, <4.0.0", ">=1.0.0, <4.0.0"},
		{"==1.0.0 || ==2.0.0", "==1.0.0 || ==2.0.0"},
		{"<1.0.0 || >1.0.0", "!=1.0.0"},
		{"==*", "*"},
		{"!=*", "∅"},
		{">=1.0.0, <1.0.0", "∅"},
		{">=1.0.0 || <2.0.0", "*"},
		{"==1.5.0 || >=1.0.0, <2.0.0", ">=1.0.0, <2.0.0"},
		{"~=1.2.3 || ~1.2.3", ">=1.2.3, <1.3.0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			simplified := Simplify(mustSpecifier(t, tt.input))

			if got := simplified.String(); got != tt.want {
				t.Fatalf("Simplify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConversionRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"!=*",
		"==*",
		"==1.0.0",
		"!=1.0.0",
		">=1.0.0",
		">1.0.0",
		"<2.0.0",
		"<=2.0.0",
		">=1.0.0, <2.0.0",
		">=1.0.0, <2.0.0 || >=3.0.0",
		">=1.0.0, <2.0.0 || ==3.0.0 || >=4.0.0, <5.0.0",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			set := mustParseVersionSet(t, input)
			back := SpecifierToVersionSet(VersionSetToSpecifier(set))

			if !back.Equal(set) {
				t.Fatalf("round trip changed %q to %q", set, back)
			}
		})
	}
}
