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

import "math"

var (
	_ Expr = (*LValue)(nil)
	_ Expr = (*Literal)(nil)
	_ Expr = (*Unary)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Intrinsic)(nil)
	_ Expr = (*Conditional)(nil)
	_ Expr = (*Assignment)(nil)
	_ Expr = (*Sequence)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Constructor)(nil)
	_ Expr = (*Swizzle)(nil)
	_ Expr = (*FieldSelection)(nil)
	_ Expr = (*InitializerList)(nil)
)

// LValue is a reference to a previously declared variable in value
// position.
type LValue struct {
	expr

	// Reference is the resolved [Variable] declaration; the parser
	// wires it from its symbol table.
	Reference *Variable
}

// Kind implements [Node].
func (*LValue) Kind() Kind { return KindLValue }

// LiteralValue is the immediate payload of a [Literal]: sixteen 32-bit
// slots, enough for a full 4x4 matrix constant, each readable as int,
// uint, or float. The slot is raw bits; the accessors reinterpret
// rather than convert, mirroring how the code generator emits the
// constant for whatever result type the literal ends up with.
type LiteralValue [16]uint32

// Int returns slot i reinterpreted as a signed integer.
func (v *LiteralValue) Int(i int) int32 { return int32(v[i]) }

// SetInt stores x into slot i.
func (v *LiteralValue) SetInt(i int, x int32) { v[i] = uint32(x) }

// Uint returns slot i as an unsigned integer.
func (v *LiteralValue) Uint(i int) uint32 { return v[i] }

// SetUint stores x into slot i.
func (v *LiteralValue) SetUint(i int, x uint32) { v[i] = x }

// Float returns slot i reinterpreted as a float.
func (v *LiteralValue) Float(i int) float32 { return math.Float32frombits(v[i]) }

// SetFloat stores x into slot i.
func (v *LiteralValue) SetFloat(i int, x float32) { v[i] = math.Float32bits(x) }

// Literal is an immediate constant: a scalar, a small vector or matrix
// constant, or a string.
type Literal struct {
	expr

	Value LiteralValue

	// StringValue is set instead of Value when the literal is a string,
	// which the FX language only permits in annotation values and
	// uniform initializers.
	StringValue string
}

// Kind implements [Node].
func (*Literal) Kind() Kind { return KindLiteral }

const (
	UnaryNone UnaryOp = iota
	UnaryNegate
	UnaryBitwiseNot
	UnaryLogicalNot
	UnaryIncrease
	UnaryDecrease
	UnaryPostIncrease
	UnaryPostDecrease
	UnaryCast
)

// UnaryOp is the operator of a [Unary] expression.
type UnaryOp byte

var unaryOpNames = [...]string{
	UnaryNone:         "<none>",
	UnaryNegate:       "-",
	UnaryBitwiseNot:   "~",
	UnaryLogicalNot:   "!",
	UnaryIncrease:     "++",
	UnaryDecrease:     "--",
	UnaryPostIncrease: "++ (post)",
	UnaryPostDecrease: "-- (post)",
	UnaryCast:         "(cast)",
}

// String implements [fmt.Stringer].
func (op UnaryOp) String() string {
	if int(op) >= len(unaryOpNames) {
		return "<none>"
	}
	return unaryOpNames[op]
}

// Unary is a one-operand expression, including the increment/decrement
// forms and explicit casts (the target type of a cast is the node's
// result type).
type Unary struct {
	expr

	Op      UnaryOp
	Operand Expr
}

// Kind implements [Node].
func (*Unary) Kind() Kind { return KindUnary }

const (
	BinaryNone BinaryOp = iota
	BinaryAdd
	BinarySubtract
	BinaryMultiply
	BinaryDivide
	BinaryModulo
	BinaryLess
	BinaryGreater
	BinaryLessOrEqual
	BinaryGreaterOrEqual
	BinaryEqual
	BinaryNotEqual
	BinaryLeftShift
	BinaryRightShift
	BinaryBitwiseOr
	BinaryBitwiseXor
	BinaryBitwiseAnd
	BinaryLogicalOr
	BinaryLogicalAnd

	// BinaryElementExtract is the indexing form a[i]; it survives as a
	// binary operator so that constant folding can treat it uniformly.
	BinaryElementExtract
)

// BinaryOp is the operator of a [Binary] expression.
type BinaryOp byte

var binaryOpNames = [...]string{
	BinaryNone:           "<none>",
	BinaryAdd:            "+",
	BinarySubtract:       "-",
	BinaryMultiply:       "*",
	BinaryDivide:         "/",
	BinaryModulo:         "%",
	BinaryLess:           "<",
	BinaryGreater:        ">",
	BinaryLessOrEqual:    "<=",
	BinaryGreaterOrEqual: ">=",
	BinaryEqual:          "==",
	BinaryNotEqual:       "!=",
	BinaryLeftShift:      "<<",
	BinaryRightShift:     ">>",
	BinaryBitwiseOr:      "|",
	BinaryBitwiseXor:     "^",
	BinaryBitwiseAnd:     "&",
	BinaryLogicalOr:      "||",
	BinaryLogicalAnd:     "&&",
	BinaryElementExtract: "[]",
}

// String implements [fmt.Stringer].
func (op BinaryOp) String() string {
	if int(op) >= len(binaryOpNames) {
		return "<none>"
	}
	return binaryOpNames[op]
}

// Binary is a two-operand expression.
type Binary struct {
	expr

	Op       BinaryOp
	Operands [2]Expr
}

// Kind implements [Node].
func (*Binary) Kind() Kind { return KindBinary }

// Intrinsic is a call to one of the built-in functions of the language;
// see [IntrinsicOp] for the catalog. Unlike [Call] there is no callee
// declaration to resolve, and the argument count is bounded by the
// widest intrinsic signature.
type Intrinsic struct {
	expr

	Op        IntrinsicOp
	Arguments [4]Expr
}

// Kind implements [Node].
func (*Intrinsic) Kind() Kind { return KindIntrinsic }

// Conditional is the ternary c ? a : b.
type Conditional struct {
	expr

	Condition Expr
	OnTrue    Expr
	OnFalse   Expr
}

// Kind implements [Node].
func (*Conditional) Kind() Kind { return KindConditional }

const (
	// AssignNone is plain assignment; every other value is the compound
	// form that applies the named operation first.
	AssignNone AssignOp = iota
	AssignAdd
	AssignSubtract
	AssignMultiply
	AssignDivide
	AssignModulo
	AssignBitwiseAnd
	AssignBitwiseOr
	AssignBitwiseXor
	AssignLeftShift
	AssignRightShift
)

// AssignOp is the operator of an [Assignment] expression.
type AssignOp byte

var assignOpNames = [...]string{
	AssignNone:       "=",
	AssignAdd:        "+=",
	AssignSubtract:   "-=",
	AssignMultiply:   "*=",
	AssignDivide:     "/=",
	AssignModulo:     "%=",
	AssignBitwiseAnd: "&=",
	AssignBitwiseOr:  "|=",
	AssignBitwiseXor: "^=",
	AssignLeftShift:  "<<=",
	AssignRightShift: ">>=",
}

// String implements [fmt.Stringer].
func (op AssignOp) String() string {
	if int(op) >= len(assignOpNames) {
		return "="
	}
	return assignOpNames[op]
}

// Assignment stores Right into the location named by Left; assignment
// is an expression in this language, so it has a result type.
type Assignment struct {
	expr

	Op    AssignOp
	Left  Expr
	Right Expr
}

// Kind implements [Node].
func (*Assignment) Kind() Kind { return KindAssignment }

// Sequence is the comma operator: the expressions evaluate in order and
// the value of the whole is the value of the last one.
type Sequence struct {
	expr

	Expressions []Expr
}

// Kind implements [Node].
func (*Sequence) Kind() Kind { return KindSequence }

// Call is a call to a user-defined function.
type Call struct {
	expr

	// CalleeName is the spelled name; Callee is the overload the
	// semantic pass resolved it to, nil until then.
	CalleeName string
	Callee     *Function

	Arguments []Expr
}

// Kind implements [Node].
func (*Call) Kind() Kind { return KindCall }

// Constructor builds a value of the node's result type from an ordered
// argument list, like float4(a, b, 0, 1).
type Constructor struct {
	expr

	Arguments []Expr
}

// Kind implements [Node].
func (*Constructor) Kind() Kind { return KindConstructor }

// SwizzleMaskUnused marks an unused slot in a [Swizzle] mask.
const SwizzleMaskUnused int8 = -1

// Swizzle selects and reorders up to four components of its operand,
// like v.xyz or m._11_22.
type Swizzle struct {
	expr

	Operand Expr

	// Mask holds the selected component indices in order; trailing
	// slots are [SwizzleMaskUnused].
	Mask [4]int8
}

// Kind implements [Node].
func (*Swizzle) Kind() Kind { return KindSwizzle }

func (s *Swizzle) defaults() {
	s.Mask = [4]int8{SwizzleMaskUnused, SwizzleMaskUnused, SwizzleMaskUnused, SwizzleMaskUnused}
}

// Components returns how many slots of the mask are in use.
func (s *Swizzle) Components() int {
	for i, m := range s.Mask {
		if m == SwizzleMaskUnused {
			return i
		}
	}
	return len(s.Mask)
}

// FieldSelection accesses a field of a struct-typed operand.
type FieldSelection struct {
	expr

	Operand Expr

	// Field is the resolved field inside the operand type's struct
	// definition.
	Field *Variable
}

// Kind implements [Node].
func (*FieldSelection) Kind() Kind { return KindFieldSelection }

// InitializerList is a braced, ordered list of values used to
// initialize an array or aggregate.
type InitializerList struct {
	expr

	Values []Expr
}

// Kind implements [Node].
func (*InitializerList) Kind() Kind { return KindInitializerList }
