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

// Package source defines source code locations for diagnostics.
//
// Every AST node is stamped with the [Location] of the token that
// introduced it; the lexer produces locations, and everything downstream
// only ever copies them around.
package source

import "fmt"

// Location is a position within an effect file.
//
// Line and Column are one-indexed; the zero value means "location
// unknown", such as for nodes synthesized by the compiler rather than
// parsed from a file.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsZero reports whether this is the unknown location.
func (l Location) IsZero() bool {
	return l == Location{}
}

// String implements [fmt.Stringer].
func (l Location) String() string {
	if l.IsZero() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
