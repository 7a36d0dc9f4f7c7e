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

package main

import (
	"bytes"
	"strings"
	"testing"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCommand()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "canonical",
			args: []string{"parse", "1.0.0a1"},
			want: "1.0.0-alpha.1\n",
		},
		{
			name: "short",
			args: []string{"parse", "--short", "1.0.0-alpha.1"},
			want: "1.0.0a1\n",
		},
		{
			name: "multiple",
			args: []string{"parse", "1.0.0.post1", "2!1.0"},
			want: "1.0.0-post.1\n2!1.0\n",
		},
		{
			name: "normalized",
			args: []string{"parse", "--normalize", "1.0.0-preview.1-rev.2"},
			want: "1.0.0-rc.1-post.2\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := executeCommand(t, test.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestParseCommandError(t *testing.T) {
	t.Parallel()

	if _, err := executeCommand(t, "parse", "not-a-version"); err == nil {
		t.Error("expected an error")
	}
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	got, err := executeCommand(t, "check", ">=1.0.0, <2.0.0", "1.5.0", "1.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "true\ntrue\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCheckCommandMiss(t *testing.T) {
	t.Parallel()

	got, err := executeCommand(t, "check", ">=1.0.0, <2.0.0", "1.5.0", "2.5.0")
	if err == nil {
		t.Fatal("expected an error when a version does not match")
	}

	want := "true\nfalse\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSimplifyCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "merge",
			args: []string{"simplify", ">=1.0.0, <2.0.0 || >=2.0.0, <3.0.0"},
			want: ">=1.0.0, <3.0.0\n",
		},
		{
			name: "caret",
			args: []string{"simplify", "^1.0.0"},
			want: ">=1.0.0, <2.0.0\n",
		},
		{
			name: "short",
			args: []string{"simplify", "--short", "^1.0.0"},
			want: ">=1.0.0,<2.0.0\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := executeCommand(t, test.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestSortCommand(t *testing.T) {
	t.Parallel()

	got, err := executeCommand(t, "sort", "1.0.1", "1.0.0-rc.1", "1.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "1.0.0-rc.1\n1.0.0\n1.0.1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSortCommandReverse(t *testing.T) {
	t.Parallel()

	got, err := executeCommand(t, "sort", "--reverse", "1.0.1", "1.0.0-rc.1", "1.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "1.0.1\n1.0.0\n1.0.0-rc.1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNextCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    string
		version string
		want    string
	}{
		{kind: "major", version: "1.2.3", want: "2.0.0\n"},
		{kind: "minor", version: "1.2.3", want: "1.3.0\n"},
		{kind: "micro", version: "1.2.3", want: "1.2.4\n"},
		{kind: "patch", version: "1.2.3", want: "1.2.4\n"},
		{kind: "pre", version: "1.0.0-alpha.1", want: "1.0.0-alpha.2\n"},
		{kind: "post", version: "1.0.0", want: "1.0.0-post.0\n"},
		{kind: "dev", version: "1.0.0-dev.3", want: "1.0.0-dev.4\n"},
		{kind: "breaking", version: "0.2.3", want: "0.3.0\n"},
	}

	for _, test := range tests {
		t.Run(test.kind, func(t *testing.T) {
			t.Parallel()

			got, err := executeCommand(t, "next", test.kind, test.version)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestNextCommandUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := executeCommand(t, "next", "nightly", "1.0.0")
	if err == nil {
		t.Fatal("expected an error")
	}

	if !strings.Contains(err.Error(), `unknown kind "nightly"`) {
		t.Errorf("got %q, want the unknown kind message", err)
	}
}

func TestSetCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "caret",
			args: []string{"set", "^1.2.3"},
			want: ">=1.2.3, <2.0.0\n",
		},
		{
			name: "wildcard",
			args: []string{"set", "==1.*"},
			want: ">=1.0, <2.0\n",
		},
		{
			name: "union",
			args: []string{"set", ">=1.0.0, <2.0.0 || >=3.0.0"},
			want: ">=1.0.0, <2.0.0 || >=3.0.0\n",
		},
		{
			name: "exclude",
			args: []string{"set", "<1.0.0 || >1.0.0"},
			want: "!=1.0.0\n",
		},
		{
			name: "short",
			args: []string{"set", "--short", "^1.2.3"},
			want: ">=1.2.3,<2.0.0\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := executeCommand(t, test.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	got, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.TrimSpace(got) == "" {
		t.Error("expected the version to be printed")
	}
}
