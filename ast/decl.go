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

var (
	_ Node = (*Annotation)(nil)
	_ Decl = (*Variable)(nil)
	_ Decl = (*Struct)(nil)
	_ Decl = (*Function)(nil)
	_ Decl = (*Pass)(nil)
	_ Decl = (*Technique)(nil)
)

// Annotation is a name/value metadata pair attached to a variable,
// pass, or technique, like "<string ui_label = ...>". Annotations carry
// no language semantics; they exist for tooling and runtime UIs.
//
// Annotation is a [Node] in its own right, but unlike every other
// shape it is held by value in its owner's annotation list rather than
// allocated through the tree factory.
type Annotation struct {
	node

	Name  string
	Value *Literal
}

// Kind implements [Node].
func (*Annotation) Kind() Kind { return KindAnnotation }

// Variable declares a named value: a uniform, a local, a function
// parameter, a struct field, or a texture/sampler resource.
type Variable struct {
	decl

	Type        Type
	Annotations []Annotation

	// Semantic is the API binding name ("SV_Target0", "TEXCOORD0", ...)
	// attached with a colon, or "" when absent.
	Semantic string

	// Properties describes the texture/sampler resource behind this
	// variable; it only means anything when Type is a texture or
	// sampler class.
	Properties TextureProperties

	// Initializer is nil when the declaration has no initializer.
	Initializer Expr
}

// Kind implements [Node].
func (*Variable) Kind() Kind { return KindVariable }

func (v *Variable) defaults() {
	v.Properties = DefaultTextureProperties()
}

// Struct declares an aggregate type.
type Struct struct {
	decl

	// Fields in declaration order. The order is load-bearing: it is the
	// memory and binding layout later stages emit.
	Fields []*Variable
}

// Kind implements [Node].
func (*Struct) Kind() Kind { return KindStruct }

// Function declares a function.
type Function struct {
	decl

	ReturnType Type

	// Parameters in declaration order; each is a [Variable] so that
	// parameters can carry semantics and qualifiers like any other
	// declaration.
	Parameters []*Variable

	// ReturnSemantic is the semantic attached to the return value, or
	// "".
	ReturnSemantic string

	// Definition is the body, or nil for a forward declaration or an
	// intrinsic stub.
	Definition *Compound
}

// Kind implements [Node].
func (*Function) Kind() Kind { return KindFunction }

// Pass is one pipeline configuration inside a [Technique]: which
// shaders run, where they render to, and the fixed-function state to
// apply.
type Pass struct {
	decl

	Annotations []Annotation
	States      PassStates
}

// Kind implements [Node].
func (*Pass) Kind() Kind { return KindPass }

func (p *Pass) defaults() {
	p.States = DefaultPassStates()
}

// Technique is a named, ordered sequence of passes forming one
// selectable rendering effect.
type Technique struct {
	decl

	Annotations []Annotation

	// Passes in declaration order; they execute in this order.
	Passes []*Pass
}

// Kind implements [Node].
func (*Technique) Kind() Kind { return KindTechnique }
