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

// Package printer renders an effect syntax tree as indented text.
//
// The output is deterministic and line-oriented, which makes it
// suitable for golden-file tests; it is a structural dump, not a
// source-code pretty-printer.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/shadekit/fxc/ast"
	"github.com/shadekit/fxc/walk"
)

// Print renders tree to w: the four top-level sections in their fixed
// order, each declaration as one line per node, children indented two
// spaces below their parent.
func Print(w io.Writer, tree *ast.Tree) error {
	p := &printer{w: w}

	section := func(name string, walkSection func() error) {
		if p.err != nil {
			return
		}
		p.line("%s:", name)
		p.depth++
		if err := walkSection(); err != nil && p.err == nil {
			p.err = err
		}
		p.depth--
	}

	enter := func(n ast.Node) error {
		p.line("%s", describe(n))
		p.depth++
		return p.err
	}
	exit := func(n ast.Node) error {
		p.depth--
		return p.err
	}

	section("structs", func() error {
		return eachDecl(tree.Structs, enter, exit)
	})
	section("uniforms", func() error {
		return eachDecl(tree.Uniforms, enter, exit)
	})
	section("functions", func() error {
		return eachDecl(tree.Functions, enter, exit)
	})
	section("techniques", func() error {
		return eachDecl(tree.Techniques, enter, exit)
	})
	return p.err
}

// Sprint renders tree to a string, as by [Print].
func Sprint(tree *ast.Tree) string {
	var b strings.Builder
	// Writes to a strings.Builder cannot fail, so neither can Print.
	if err := Print(&b, tree); err != nil {
		panic(fmt.Sprintf("fxc/printer: %v", err))
	}
	return b.String()
}

func eachDecl[D ast.Decl](decls []D, enter, exit func(ast.Node) error) error {
	for _, d := range decls {
		if err := walk.NodesEnterAndExit(d, enter, exit); err != nil {
			return err
		}
	}
	return nil
}

type printer struct {
	w     io.Writer
	depth int
	err   error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	indent := strings.Repeat("  ", p.depth)
	_, p.err = fmt.Fprintf(p.w, indent+format+"\n", args...)
}

// describe renders one node as a single line. The switch is exhaustive
// over every concrete shape; a shape missing here is a bug.
func describe(n ast.Node) string {
	var b strings.Builder
	b.WriteString(n.Kind().String())

	switch n := n.(type) {
	case *ast.LValue:
		if n.Reference != nil {
			fmt.Fprintf(&b, " ref=%q", n.Reference.FullName())
		}
	case *ast.Literal:
		if n.StringValue != "" {
			fmt.Fprintf(&b, " string=%q", n.StringValue)
		} else {
			fmt.Fprintf(&b, " bits=0x%08x", n.Value.Uint(0))
		}
	case *ast.Unary:
		fmt.Fprintf(&b, " op=%q", n.Op)
	case *ast.Binary:
		fmt.Fprintf(&b, " op=%q", n.Op)
	case *ast.Intrinsic:
		fmt.Fprintf(&b, " op=%q", n.Op)
	case *ast.Assignment:
		fmt.Fprintf(&b, " op=%q", n.Op)
	case *ast.Call:
		fmt.Fprintf(&b, " callee=%q", n.CalleeName)
	case *ast.Swizzle:
		fmt.Fprintf(&b, " mask=%v", n.Mask[:n.Components()])
	case *ast.FieldSelection:
		if n.Field != nil {
			fmt.Fprintf(&b, " field=%q", n.Field.Name)
		}
	case *ast.Conditional, *ast.Sequence, *ast.Constructor, *ast.InitializerList:
		// Nothing beyond the kind.

	case *ast.Compound, *ast.DeclaratorList, *ast.ExpressionStatement,
		*ast.If, *ast.Switch, *ast.Case, *ast.For:
		// Nothing beyond the kind and attributes.
	case *ast.While:
		if n.DoWhile {
			b.WriteString(" do")
		}
	case *ast.Return:
		if n.Discard {
			b.WriteString(" discard")
		}
	case *ast.Jump:
		fmt.Fprintf(&b, " %s", n.Mode)

	case *ast.Annotation:
		fmt.Fprintf(&b, " name=%q", n.Name)
	case *ast.Variable:
		fmt.Fprintf(&b, " name=%q type=%q", n.FullName(), n.Type)
		if n.Semantic != "" {
			fmt.Fprintf(&b, " semantic=%q", n.Semantic)
		}
	case *ast.Struct:
		fmt.Fprintf(&b, " name=%q", n.FullName())
	case *ast.Function:
		fmt.Fprintf(&b, " name=%q return=%q", n.FullName(), n.ReturnType)
		if n.ReturnSemantic != "" {
			fmt.Fprintf(&b, " semantic=%q", n.ReturnSemantic)
		}
		if n.Definition == nil {
			b.WriteString(" forward")
		}
	case *ast.Pass:
		fmt.Fprintf(&b, " name=%q%s", n.FullName(), describeStates(&n.States))
	case *ast.Technique:
		fmt.Fprintf(&b, " name=%q", n.FullName())

	default:
		panic(fmt.Sprintf("fxc/printer: unknown node kind %v", n.Kind()))
	}

	if s, ok := n.(ast.Stmt); ok {
		if attrs := s.Attrs(); len(attrs) > 0 {
			fmt.Fprintf(&b, " attrs=%v", attrs)
		}
	}
	return b.String()
}

// describeStates renders the parts of a pass state snapshot that differ
// from the reset state, so an untouched pass renders as nothing at all.
func describeStates(s *ast.PassStates) string {
	def := ast.DefaultPassStates()
	var b strings.Builder

	if s.VertexShader != nil {
		fmt.Fprintf(&b, " vertex=%q", s.VertexShader.FullName())
	}
	if s.PixelShader != nil {
		fmt.Fprintf(&b, " pixel=%q", s.PixelShader.FullName())
	}
	for i, rt := range s.RenderTargets {
		if rt != nil {
			fmt.Fprintf(&b, " target%d=%q", i, rt.FullName())
		}
	}
	if s.SRGBWriteEnable {
		b.WriteString(" srgb")
	}
	if s.BlendEnable {
		fmt.Fprintf(&b, " blend=%d/%d", s.SrcBlend, s.DestBlend)
	}
	if s.DepthEnable {
		b.WriteString(" depth")
	}
	if s.DepthFunc != def.DepthFunc {
		fmt.Fprintf(&b, " depthfunc=%d", s.DepthFunc)
	}
	if s.StencilEnable {
		fmt.Fprintf(&b, " stencil ref=%d", s.StencilRef)
	}
	if s.RenderTargetWriteMask != def.RenderTargetWriteMask {
		fmt.Fprintf(&b, " writemask=0x%x", s.RenderTargetWriteMask)
	}
	return b.String()
}
