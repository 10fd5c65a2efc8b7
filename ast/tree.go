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

package ast

import (
	"github.com/shadekit/fxc/internal/arena"
	"github.com/shadekit/fxc/source"
)

// Tree is the syntax tree of one compilation unit.
//
// It is the sole owner of every node's storage: all nodes come out of
// [New], and [Tree.Release] tears the whole unit down at once. Pointers
// between nodes, and the pointers held in the four top-level
// collections, are non-owning; they must not be retained past Release.
//
// A zero Tree is empty and ready to use. A Tree must not be shared
// across goroutines while it is being built.
type Tree struct {
	// The top-level declarations of the unit, in source order. The
	// parser appends to these as it recognizes each declaration;
	// insertion order is load-bearing, since it drives both name
	// resolution and code-generation order downstream.
	Structs    []*Struct
	Uniforms   []*Variable
	Functions  []*Function
	Techniques []*Technique

	pool arena.Arena
}

// nodePtr constrains PT to be a pointer to a concrete node shape.
type nodePtr[T any] interface {
	*T
	Node
}

// New allocates a node of shape T on the tree and stamps it with loc.
//
// The node comes back with its shape's documented defaults applied: for
// example, a fresh [Pass] already holds the disabled/opaque pipeline
// state, and a fresh [Swizzle] has all mask slots unused. The returned
// pointer is stable until [Tree.Release].
//
//	cond := ast.New[ast.Conditional](tree, tok.Pos)
func New[T any, PT nodePtr[T]](t *Tree, loc source.Location) PT {
	n := PT(arena.Alloc[T](&t.pool))
	n.defaults()
	n.setPos(loc)
	return n
}

// Len returns the number of nodes allocated on this tree.
func (t *Tree) Len() int {
	return t.pool.Len()
}

// Release frees every node owned by this tree in bulk.
//
// There is no partial teardown: after Release, every node pointer
// obtained from this tree dangles, including those in the top-level
// collections, which are reset to nil.
func (t *Tree) Release() {
	t.Structs = nil
	t.Uniforms = nil
	t.Functions = nil
	t.Techniques = nil
	t.pool.Release()
}
