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
	"fmt"
	"strings"
)

const (
	ClassVoid Class = iota
	ClassBool
	ClassInt
	ClassUint
	ClassFloat
	ClassSampler1D
	ClassSampler2D
	ClassSampler3D
	ClassTexture1D
	ClassTexture2D
	ClassTexture3D
	ClassStruct
	ClassString
)

// Class is the base class of a [Type]: what category of value it is
// before dimensions, array length, and qualifiers are applied.
type Class byte

var classNames = [...]string{
	ClassVoid:      "void",
	ClassBool:      "bool",
	ClassInt:       "int",
	ClassUint:      "uint",
	ClassFloat:     "float",
	ClassSampler1D: "sampler1D",
	ClassSampler2D: "sampler2D",
	ClassSampler3D: "sampler3D",
	ClassTexture1D: "texture1D",
	ClassTexture2D: "texture2D",
	ClassTexture3D: "texture3D",
	ClassStruct:    "struct",
	ClassString:    "string",
}

// String implements [fmt.Stringer].
func (c Class) String() string {
	if int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", byte(c))
	}
	return classNames[c]
}

// Qualifier is a bitmask of storage, modifier, and interpolation
// qualifiers attached to a [Type].
type Qualifier uint32

const (
	// Storage.
	QualifierExtern   Qualifier = 1 << 0
	QualifierStatic   Qualifier = 1 << 1
	QualifierUniform  Qualifier = 1 << 2
	QualifierVolatile Qualifier = 1 << 3
	QualifierPrecise  Qualifier = 1 << 4
	QualifierIn       Qualifier = 1 << 5
	QualifierOut      Qualifier = 1 << 6

	// QualifierInOut is a combined flag, not a distinct bit: a type is
	// inout exactly when it is both in and out.
	QualifierInOut Qualifier = QualifierIn | QualifierOut

	// Modifier.
	QualifierConst Qualifier = 1 << 8

	// Interpolation.
	QualifierLinear          Qualifier = 1 << 10
	QualifierNoPerspective   Qualifier = 1 << 11
	QualifierCentroid        Qualifier = 1 << 12
	QualifierNoInterpolation Qualifier = 1 << 13
)

var qualifierNames = []struct {
	bit  Qualifier
	name string
}{
	{QualifierExtern, "extern"},
	{QualifierStatic, "static"},
	{QualifierUniform, "uniform"},
	{QualifierVolatile, "volatile"},
	{QualifierPrecise, "precise"},
	{QualifierInOut, "inout"},
	{QualifierIn, "in"},
	{QualifierOut, "out"},
	{QualifierConst, "const"},
	{QualifierLinear, "linear"},
	{QualifierNoPerspective, "noperspective"},
	{QualifierCentroid, "centroid"},
	{QualifierNoInterpolation, "nointerpolation"},
}

// String implements [fmt.Stringer].
//
// Set bits are rendered as the source-level keywords, space-separated;
// in and out collapse to inout when both are present.
func (q Qualifier) String() string {
	var parts []string
	for _, entry := range qualifierNames {
		if q&entry.bit == entry.bit {
			parts = append(parts, entry.name)
			q &^= entry.bit
		}
	}
	return strings.Join(parts, " ")
}

/// Type describes the semantic type of a shader value: a scalar, vector,
// matrix, or array of some base [Class], a texture or sampler resource,
// a struct, or a string.
//
// Type is a plain value; it holds whatever it is given. Consistency of
// the fields (say, a sampler with Rows=3) is the caller's
// responsibility, because overload resolution and type checking happen
// in the semantic pass, not here.
type Type struct {
	Base       Class
	Qualifiers Qualifier

	// Rows and Cols are the vector/matrix dimensions, each in 0..15.
	// A scalar is 1x1, a vector Nx1, a matrix NxM with M > 1.
	Rows, Cols uint8

	// ArrayLength is the number of array elements, or 0 when the type
	// is not an array.
	ArrayLength int

	// Definition points at the declaring [Struct] node; it is only
	// meaningful when Base is [ClassStruct].
	Definition *Struct
}

// IsArray reports whether this is an array type.
func (t Type) IsArray() bool {
	return t.ArrayLength != 0
}

// IsMatrix reports whether this is a matrix type, i.e. it has more than
// one column.
func (t Type) IsMatrix() bool {
	return t.Rows >= 1 && t.Cols > 1
}

// IsVector reports whether this is a (non-matrix) vector type.
func (t Type) IsVector() bool {
	return t.Rows > 1 && !t.IsMatrix()
}

// IsScalar reports whether this is a single numeric value.
func (t Type) IsScalar() bool {
	return !t.IsArray() && !t.IsMatrix() && !t.IsVector() && t.IsNumeric()
}

// IsNumeric reports whether the base class is boolean, integral, or
// floating-point.
func (t Type) IsNumeric() bool {
	return t.IsBoolean() || t.IsIntegral() || t.IsFloatingPoint()
}

// IsVoid reports whether this is the void type.
func (t Type) IsVoid() bool {
	return t.Base == ClassVoid
}

// IsBoolean reports whether the base class is bool.
func (t Type) IsBoolean() bool {
	return t.Base == ClassBool
}

// IsIntegral reports whether the base class is int or uint.
func (t Type) IsIntegral() bool {
	return t.Base == ClassInt || t.Base == ClassUint
}

// IsFloatingPoint reports whether the base class is float.
func (t Type) IsFloatingPoint() bool {
	return t.Base == ClassFloat
}

// IsTexture reports whether this is a 1D or 2D texture type.
//
// Note that this deliberately excludes [ClassTexture3D]: 3D textures
// are enumerable as a base class but are not classified as textures by
// this predicate, and the semantic pass is expected to handle them on
// its own terms. Do not widen the range here without auditing every
// caller.
func (t Type) IsTexture() bool {
	return t.Base >= ClassTexture1D && t.Base <= ClassTexture2D
}

// IsSampler reports whether this is a sampler type of any
// dimensionality.
func (t Type) IsSampler() bool {
	return t.Base >= ClassSampler1D && t.Base <= ClassSampler3D
}

// IsStruct reports whether this is a struct type.
func (t Type) IsStruct() bool {
	return t.Base == ClassStruct
}

// HasQualifier reports whether every bit of q is set on this type.
//
// Combined flags follow from the all-bits rule: HasQualifier
// ([QualifierInOut]) holds only when both the in and the out bits are
// set individually.
func (t Type) HasQualifier(q Qualifier) bool {
	return t.Qualifiers&q == q
}

// String implements [fmt.Stringer].
//
// The rendering follows source spelling: "float3", "float4x4",
// "int[7]", or the struct's declared name for struct types.
func (t Type) String() string {
	var b strings.Builder
	if q := t.Qualifiers.String(); q != "" {
		b.WriteString(q)
		b.WriteRune(' ')
	}

	switch {
	case t.IsStruct() && t.Definition != nil:
		b.WriteString(t.Definition.Name)
	default:
		b.WriteString(t.Base.String())
	}
	if t.IsMatrix() {
		fmt.Fprintf(&b, "%dx%d", t.Rows, t.Cols)
	} else if t.IsVector() {
		fmt.Fprintf(&b, "%d", t.Rows)
	}
	if t.IsArray() {
		fmt.Fprintf(&b, "[%d]", t.ArrayLength)
	}
	return b.String()
}
