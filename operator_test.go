package versions

import (
	"errors"
	"testing"
)

func mustOperator(t *testing.T, kind OperatorKind, version string) Operator {
	t.Helper()

	operator, err := NewOperator(kind, mustVersion(t, version))
	if err != nil {
		t.Fatalf("NewOperator(%s, %s): %v", kind, version, err)
	}
	return operator
}

func TestNextCaretBreaking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"1.2.3", "2.0.0"},
		{"0.2.3", "0.3.0"},
		{"0.0.3", "0.0.4"},
		{"0", "1"},
	}

	for _, tt := range tests {
		if got := NextCaretBreaking(mustVersion(t, tt.input)).String(); got != tt.want {
			t.Errorf("NextCaretBreaking(%s) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestNextTildeBreaking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"1.2.3", "1.3.0"},
		{"1.2", "1.3"},
		{"1", "2"},
		{"0.2.3", "0.3.0"},
	}

	for _, tt := range tests {
		if got := NextTildeBreaking(mustVersion(t, tt.input)).String(); got != tt.want {
			t.Errorf("NextTildeBreaking(%s) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestNextTildeEqualBreaking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"1.2.3", "1.3.0"},
		{"1.2", "2.0"},
		{"1.2.3.4", "1.2.4.0"},
		{"1.2.3-alpha.1", "1.3.0"},
	}

	for _, tt := range tests {
		next, err := NextTildeEqualBreaking(mustVersion(t, tt.input))
		if err != nil {
			t.Fatalf("NextTildeEqualBreaking(%s): %v", tt.input, err)
		}

		if got := next.String(); got != tt.want {
			t.Errorf("NextTildeEqualBreaking(%s) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if _, err := NextTildeEqualBreaking(mustVersion(t, "1")); !errors.Is(err, ErrSingleSegment) {
		t.Fatalf("NextTildeEqualBreaking(1) error = %v, want %v", err, ErrSingleSegment)
	}
}

func TestNextWildcardBreaking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"1.0", "2.0", true},
		{"1.2.0", "1.3.0", true},
		{"0", "", false},
		{"1.0.0-alpha.0", "1.0.0", true},
		{"1.0.0-dev.0", "1.0.0", true},
		{"1.0.0-post.0", "1.0.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			next, ok := NextWildcardBreaking(mustVersion(t, tt.input))
			if ok != tt.ok {
				t.Fatalf("NextWildcardBreaking(%s) ok = %v, want %v", tt.input, ok, tt.ok)
			}

			if ok && next.String() != tt.want {
				t.Errorf("NextWildcardBreaking(%s) = %s, want %s", tt.input, next, tt.want)
			}
		})
	}
}

func TestOperatorKind(t *testing.T) {
	t.Parallel()

	if !OperatorCaret.IsUnary() || !OperatorTilde.IsUnary() {
		t.Error("caret and tilde should be unary")
	}

	if OperatorTildeEqual.IsUnary() {
		t.Error("tilde-equal should not be unary")
	}

	for _, kind := range []OperatorKind{
		OperatorWildcardDoubleEqual, OperatorWildcardEqual, OperatorWildcardNotEqual,
	} {
		if !kind.IsWildcard() {
			t.Errorf("%s should be wildcard", string(kind))
		}
	}

	if OperatorDoubleEqual.IsWildcard() {
		t.Error("double-equal should not be wildcard")
	}

	if OperatorWildcardDoubleEqual.String() != "==" {
		t.Errorf("wildcard kind string = %s, want ==", OperatorWildcardDoubleEqual.String())
	}
}

func TestNewOperatorSingleSegment(t *testing.T) {
	t.Parallel()

	if _, err := NewOperator(OperatorTildeEqual, mustVersion(t, "1")); !errors.Is(err, ErrSingleSegment) {
		t.Fatalf("NewOperator(~=, 1) error = %v, want %v", err, ErrSingleSegment)
	}

	if _, err := NewOperator(OperatorTildeEqual, mustVersion(t, "1.2")); err != nil {
		t.Fatalf("NewOperator(~=, 1.2): %v", err)
	}
}

func TestOperatorMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    OperatorKind
		version string
		checked string
		expect  bool
	}{
		{OperatorDoubleEqual, "1.0.0", "1.0.0", true},
		{OperatorDoubleEqual, "1.0.0", "1.0", true},
		{OperatorDoubleEqual, "1.0.0", "1.0.1", false},
		{OperatorEqual, "1.0.0", "1.0.0", true},
		{OperatorNotEqual, "1.0.0", "1.0.0", false},
		{OperatorNotEqual, "1.0.0", "1.0.1", true},
		{OperatorLess, "1.0.0", "0.9.0", true},
		{OperatorLess, "1.0.0", "1.0.0", false},
		{OperatorLessOrEqual, "1.0.0", "1.0.0", true},
		{OperatorGreater, "1.0.0", "1.0.1", true},
		{OperatorGreater, "1.0.0", "1.0.0", false},
		{OperatorGreater, "1.0.0", "2.0.0-alpha.1", true},
		{OperatorGreaterOrEqual, "1.0.0", "1.0.0", true},
		{OperatorCaret, "1.2.3", "1.5.0", true},
		{OperatorCaret, "1.2.3", "2.0.0", false},
		{OperatorCaret, "1.2.3", "1.2.2", false},
		{OperatorCaret, "0.2.3", "0.2.9", true},
		{OperatorCaret, "0.2.3", "0.3.0", false},
		{OperatorTilde, "1.2.3", "1.2.9", true},
		{OperatorTilde, "1.2.3", "1.3.0", false},
		{OperatorTilde, "1", "1.9.0", true},
		{OperatorTilde, "1", "2.0.0", false},
		{OperatorTildeEqual, "1.2.3", "1.2.9", true},
		{OperatorTildeEqual, "1.2.3", "1.3.0", false},
		{OperatorTildeEqual, "1.2", "1.9.0", true},
		{OperatorTildeEqual, "1.2", "2.0.0", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+" "+tt.version+" vs "+tt.checked, func(t *testing.T) {
			operator := mustOperator(t, tt.kind, tt.version)

			if got := operator.Matches(mustVersion(t, tt.checked)); got != tt.expect {
				t.Fatalf("Matches(%s) = %v, want %v", tt.checked, got, tt.expect)
			}
		})
	}
}

func TestOperatorStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    OperatorKind
		version string
		long    string
		short   string
	}{
		{OperatorDoubleEqual, "1.0.0", "==1.0.0", "==1.0.0"},
		{OperatorCaret, "1.2.3", "^1.2.3", "^1.2.3"},
		{OperatorTildeEqual, "1.2", "~=1.2", "~=1.2"},
		{OperatorGreaterOrEqual, "1.0.0-alpha.1", ">=1.0.0-alpha.1", ">=1.0.0a1"},
	}

	for _, tt := range tests {
		operator := mustOperator(t, tt.kind, tt.version)

		if got := operator.String(); got != tt.long {
			t.Errorf("String() = %s, want %s", got, tt.long)
		}

		if got := operator.ShortString(); got != tt.short {
			t.Errorf("ShortString() = %s, want %s", got, tt.short)
		}
	}
}

func TestWildcardOperators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		checked string
		expect  bool
	}{
		{"==1.*", "1.0.0", true},
		{"==1.*", "1.9.9", true},
		{"==1.*", "2.0.0", false},
		{"==1.*", "0.9.0", false},
		{"==1.0.*", "1.0.5", true},
		{"==1.0.*", "1.1.0", false},
		{"==*", "1.0.0", true},
		{"==*", "999.0.0", true},
		{"=*", "1.0.0", true},
		{"!=1.*", "1.5.0", false},
		{"!=1.*", "2.0.0", true},
		{"!=*", "1.0.0", false},
		{"==1.0.0.dev.*", "1.0.0-dev.5", true},
		{"==1.0.0.dev.*", "1.0.0", false},
		{"==1.0.0.post.*", "1.0.0-post.3", true},
		{"==1.0.0.post.*", "1.0.0", false},
		{"==1.x", "1.5.0", true},
		{"==1.X", "1.5.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.input+" vs "+tt.checked, func(t *testing.T) {
			specifier, err := ParseSpecifier(tt.input)
			if err != nil {
				t.Fatalf("ParseSpecifier(%q): %v", tt.input, err)
			}

			if got := specifier.Accepts(mustVersion(t, tt.checked)); got != tt.expect {
				t.Fatalf("Accepts(%s) = %v, want %v", tt.checked, got, tt.expect)
			}
		})
	}
}

func TestWildcardOperatorStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"==1.*", "==1.*"},
		{"1.*", "==1.*"},
		{"==*", "==*"},
		{"*", "==*"},
		{"!=1.0.*", "!=1.0.*"},
		{"==1.x", "==1.*"},
		{"==1.0.0.dev.*", "==1.0.0-dev.*"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			specifier, err := ParseSpecifier(tt.input)
			if err != nil {
				t.Fatalf("ParseSpecifier(%q): %v", tt.input, err)
			}

			if got := specifier.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
