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

// Package walk provides traversal over effect syntax trees.
//
// Traversal follows ownership edges only: a node's operands, bodies,
// fields, and annotations are visited, while resolved cross-references
// (an [ast.LValue]'s variable, an [ast.Call]'s callee, the render
// targets of a pass) are not, since following them would revisit
// nodes and could cycle.
package walk

import (
	"fmt"

	"github.com/shadekit/fxc/ast"
)

// Nodes walks the subtree rooted at root in pre-order, calling fn for
// every node. If fn returns an error, the walk stops and returns it.
func Nodes(root ast.Node, fn func(ast.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit walks the subtree rooted at root, calling enter
// before a node's children and exit (if not nil) after them. An error
// from either callback stops the walk.
func NodesEnterAndExit(root ast.Node, enter, exit func(ast.Node) error) error {
	if root == nil {
		return nil
	}
	if err := enter(root); err != nil {
		return err
	}
	if err := children(root, enter, exit); err != nil {
		return err
	}
	if exit != nil {
		return exit(root)
	}
	return nil
}

// Tree walks every top-level declaration of t in source order, as if
// by [Nodes].
func Tree(t *ast.Tree, fn func(ast.Node) error) error {
	return TreeEnterAndExit(t, fn, nil)
}

// TreeEnterAndExit walks every top-level declaration of t in source
// order, as if by [NodesEnterAndExit].
func TreeEnterAndExit(t *ast.Tree, enter, exit func(ast.Node) error) error {
	for _, d := range t.Structs {
		if err := NodesEnterAndExit(d, enter, exit); err != nil {
			return err
		}
	}
	for _, d := range t.Uniforms {
		if err := NodesEnterAndExit(d, enter, exit); err != nil {
			return err
		}
	}
	for _, d := range t.Functions {
		if err := NodesEnterAndExit(d, enter, exit); err != nil {
			return err
		}
	}
	for _, d := range t.Techniques {
		if err := NodesEnterAndExit(d, enter, exit); err != nil {
			return err
		}
	}
	return nil
}

// children recurses into the owned children of n. The switch is
// exhaustive over every concrete shape; a shape missing here is a bug.
func children(n ast.Node, enter, exit func(ast.Node) error) error {
	switch n := n.(type) {
	case *ast.LValue, *ast.Literal, *ast.Jump:
		// Leaves.
		return nil

	case *ast.Unary:
		return each(enter, exit, n.Operand)
	case *ast.Binary:
		return each(enter, exit, n.Operands[0], n.Operands[1])
	case *ast.Intrinsic:
		return each(enter, exit, n.Arguments[0], n.Arguments[1], n.Arguments[2], n.Arguments[3])
	case *ast.Conditional:
		return each(enter, exit, n.Condition, n.OnTrue, n.OnFalse)
	case *ast.Assignment:
		return each(enter, exit, n.Left, n.Right)
	case *ast.Sequence:
		return eachOf(enter, exit, n.Expressions)
	case *ast.Call:
		return eachOf(enter, exit, n.Arguments)
	case *ast.Constructor:
		return eachOf(enter, exit, n.Arguments)
	case *ast.Swizzle:
		return each(enter, exit, n.Operand)
	case *ast.FieldSelection:
		return each(enter, exit, n.Operand)
	case *ast.InitializerList:
		return eachOf(enter, exit, n.Values)

	case *ast.Compound:
		return eachOf(enter, exit, n.Statements)
	case *ast.DeclaratorList:
		return eachOf(enter, exit, n.Declarators)
	case *ast.ExpressionStatement:
		return each(enter, exit, n.Expression)
	case *ast.If:
		return each(enter, exit, n.Condition, n.OnTrue, n.OnFalse)
	case *ast.Switch:
		if err := each(enter, exit, n.Test); err != nil {
			return err
		}
		return eachOf(enter, exit, n.Cases)
	case *ast.Case:
		if err := eachOf(enter, exit, n.Labels); err != nil {
			return err
		}
		return each(enter, exit, n.Body)
	case *ast.For:
		return each(enter, exit, n.Init, n.Condition, n.Increment, n.Body)
	case *ast.While:
		return each(enter, exit, n.Condition, n.Body)
	case *ast.Return:
		return each(enter, exit, n.Value)

	case *ast.Annotation:
		if n.Value == nil {
			return nil
		}
		return each(enter, exit, n.Value)
	case *ast.Variable:
		if err := annotations(enter, exit, n.Annotations); err != nil {
			return err
		}
		return each(enter, exit, n.Initializer)
	case *ast.Struct:
		return eachOf(enter, exit, n.Fields)
	case *ast.Function:
		if err := eachOf(enter, exit, n.Parameters); err != nil {
			return err
		}
		if n.Definition == nil {
			return nil
		}
		return each(enter, exit, n.Definition)
	case *ast.Pass:
		return annotations(enter, exit, n.Annotations)
	case *ast.Technique:
		if err := annotations(enter, exit, n.Annotations); err != nil {
			return err
		}
		return eachOf(enter, exit, n.Passes)

	default:
		panic(fmt.Sprintf("fxc/walk: unknown node kind %v", n.Kind()))
	}
}

// each visits a handful of child nodes, any of which may be nil.
func each(enter, exit func(ast.Node) error, nodes ...ast.Node) error {
	for _, n := range nodes {
		if err := NodesEnterAndExit(n, enter, exit); err != nil {
			return err
		}
	}
	return nil
}

// eachOf visits a slice of child nodes.
func eachOf[N ast.Node](enter, exit func(ast.Node) error, nodes []N) error {
	for _, n := range nodes {
		if err := NodesEnterAndExit(n, enter, exit); err != nil {
			return err
		}
	}
	return nil
}

// annotations visits a value-held annotation list.
func annotations(enter, exit func(ast.Node) error, list []ast.Annotation) error {
	for i := range list {
		if err := NodesEnterAndExit(&list[i], enter, exit); err != nil {
			return err
		}
	}
	return nil
}
