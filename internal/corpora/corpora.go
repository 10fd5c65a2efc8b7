// Copyright 2021-2026 ShadeKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corpora runs golden-file test corpora: table-driven tests
// whose table lives in the filesystem.
//
// A corpus is a directory of case files. For each case file the test
// callback produces one output string, which is compared against the
// golden file sitting next to the case (same name plus the output
// extension). Setting the refresh environment variable to a glob
// rewrites the goldens for the matching cases instead of comparing.
package corpora

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes one golden-file corpus.
type Corpus struct {
	// Root of the corpus directory, relative to the test file that
	// calls [Corpus.Run].
	Root string

	// Extension (without the dot) of the case files under Root.
	Extension string

	// OutExtension is appended to a case file's name to find its
	// golden, e.g. "dump" turns "blur.fxtree" into "blur.fxtree.dump".
	OutExtension string

	// Refresh names an environment variable. When it is set to a glob,
	// goldens of the matching cases are rewritten from the test output
	// and the run fails, so refreshed goldens cannot land unnoticed.
	Refresh string

	// Test produces the output for one case file.
	Test func(t *testing.T, path, text string) string
}

// Run discovers and executes every case in the corpus as a subtest.
func (c Corpus) Run(t *testing.T) {
	root := filepath.Join(callerDir(), c.Root)

	var cases []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: cannot enumerate %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no .%s cases under %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s contains an invalid glob: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing goldens because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range cases {
		name, _ := filepath.Rel(root, path)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: cannot read case %q: %v", path, err)
			}

			got := c.Test(t, name, string(text))
			golden := path + "." + c.OutExtension

			if ok, _ := doublestar.Match(refresh, name); ok {
				if err := os.WriteFile(golden, []byte(got), 0o666); err != nil {
					t.Fatalf("corpora: cannot refresh golden %q: %v", golden, err)
				}
				return
			}

			want, err := os.ReadFile(golden)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				t.Fatalf("corpora: cannot read golden %q: %v", golden, err)
			}
			if d := unifiedDiff(got, string(want)); d != "" {
				t.Errorf("output mismatch for %q:\n%s", golden, d)
			}
		})
	}
}

// unifiedDiff returns "" when got and want match, and a unified diff
// otherwise.
func unifiedDiff(got, want string) string {
	if got == want {
		return ""
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return text
}

// callerDir returns the directory of the test file two frames up, so
// that Root can be spelled relative to the test source.
func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
