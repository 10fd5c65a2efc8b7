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

// Package ast defines the syntax tree for the FX effect language, an
// HLSL-like shading language extended with technique/pass declarations,
// texture and sampler resources, and annotations.
//
// The taxonomy is closed: there is one [Kind] per concrete node shape,
// and the shape a node was created with never changes. Passes that
// consume a tree dispatch on [Node.Kind] (or type-switch, which is
// equivalent) and are expected to be exhaustive over all kinds.
//
// All nodes live in a [Tree], which owns their storage through one
// arena; see [New]. Pointers between nodes are non-owning and dangle
// the moment the tree is released.
package ast

import (
	"github.com/shadekit/fxc/source"
)

const (
	KindInvalid Kind = iota

	// Expressions.
	KindLValue
	KindLiteral
	KindUnary
	KindBinary
	KindIntrinsic
	KindConditional
	KindAssignment
	KindSequence
	KindCall
	KindConstructor
	KindSwizzle
	KindFieldSelection
	KindInitializerList

	// Statements.
	KindCompound
	KindDeclaratorList
	KindExpressionStatement
	KindIf
	KindSwitch
	KindCase
	KindFor
	KindWhile
	KindReturn
	KindJump

	// Declarations.
	KindAnnotation
	KindVariable
	KindStruct
	KindFunction
	KindPass
	KindTechnique

	totalKinds int = iota
)

// Kind identifies the concrete shape of a [Node].
//
// A node's kind is fixed by its Go type: each shape's Kind method
// returns a constant, so the discriminant can never disagree with the
// memory it describes.
type Kind byte

var kindNames = [totalKinds]string{
	KindInvalid:             "Invalid",
	KindLValue:              "LValue",
	KindLiteral:             "Literal",
	KindUnary:               "Unary",
	KindBinary:              "Binary",
	KindIntrinsic:           "Intrinsic",
	KindConditional:         "Conditional",
	KindAssignment:          "Assignment",
	KindSequence:            "Sequence",
	KindCall:                "Call",
	KindConstructor:         "Constructor",
	KindSwizzle:             "Swizzle",
	KindFieldSelection:      "FieldSelection",
	KindInitializerList:     "InitializerList",
	KindCompound:            "Compound",
	KindDeclaratorList:      "DeclaratorList",
	KindExpressionStatement: "ExpressionStatement",
	KindIf:                  "If",
	KindSwitch:              "Switch",
	KindCase:                "Case",
	KindFor:                 "For",
	KindWhile:               "While",
	KindReturn:              "Return",
	KindJump:                "Jump",
	KindAnnotation:          "Annotation",
	KindVariable:            "Variable",
	KindStruct:              "Struct",
	KindFunction:            "Function",
	KindPass:                "Pass",
	KindTechnique:           "Technique",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) >= totalKinds {
		return "Invalid"
	}
	return kindNames[k]
}

// Node is implemented by every syntax node in this package, and by
// nothing else.
type Node interface {
	// Kind returns the discriminant for this node's concrete shape.
	Kind() Kind
	// Pos returns the source location stamped on this node by [New].
	Pos() source.Location

	setPos(source.Location)
	defaults()
}

// Expr is a [Node] that produces a value and carries a result [Type].
//
// Implemented by [LValue], [Literal], [Unary], [Binary], [Intrinsic],
// [Conditional], [Assignment], [Sequence], [Call], [Constructor],
// [Swizzle], [FieldSelection], and [InitializerList].
type Expr interface {
	Node
	// ResultType returns a pointer to the expression's result type, so
	// that the type-checking pass can fill it in through the interface.
	ResultType() *Type
	exprNode()
}

// Stmt is an executable [Node]. Statements carry attribute strings,
// such as the "unroll" and "flatten" loop attributes.
//
// Implemented by [Compound], [DeclaratorList], [ExpressionStatement],
// [If], [Switch], [Case], [For], [While], [Return], and [Jump].
type Stmt interface {
	Node
	// Attrs returns the statement's attribute strings in source order.
	Attrs() []string
	stmtNode()
}

// Decl is a named, optionally namespaced [Node].
//
// Implemented by [Variable], [Struct], [Function], [Pass], and
// [Technique].
type Decl interface {
	Node
	// FullName returns the namespace-qualified declared name.
	FullName() string
	declNode()
}

// node is the header embedded in every concrete shape.
type node struct {
	pos source.Location
}

func (n *node) Pos() source.Location       { return n.pos }
func (n *node) setPos(pos source.Location) { n.pos = pos }
func (n *node) defaults()                  {}

// expr is the header shared by all expression shapes.
type expr struct {
	node

	// Type is the expression's result type. The parser leaves it zero;
	// the type-checking pass fills it in.
	Type Type
}

func (e *expr) ResultType() *Type { return &e.Type }

func (*expr) exprNode() {}

// stmt is the header shared by all statement shapes.
type stmt struct {
	node

	// Attributes holds the bracketed attributes written before the
	// statement, in source order.
	Attributes []string
}

func (s *stmt) Attrs() []string { return s.Attributes }

func (*stmt) stmtNode() {}

// decl is the header shared by all declaration shapes.
type decl struct {
	node

	// Name is the declared name. Namespace qualifies it for scope and
	// overload disambiguation; name resolution is the business of the
	// semantic pass, not of this package, so neither field is validated
	// here.
	Name      string
	Namespace string
}

// FullName returns the namespace-qualified declared name, using the
// source-level "ns::name" spelling.
func (d *decl) FullName() string {
	if d.Namespace == "" {
		return d.Name
	}
	return d.Namespace + "::" + d.Name
}

func (*decl) declNode() {}

