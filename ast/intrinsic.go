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

// IntrinsicOp enumerates the built-in functions of the FX language:
// the HLSL math library, the bit-cast family, screen-space derivatives,
// and the 2D texture sampling family.
type IntrinsicOp byte

const (
	IntrinsicNone IntrinsicOp = iota

	IntrinsicAbs
	IntrinsicAcos
	IntrinsicAll
	IntrinsicAny
	IntrinsicBitCastInt2Float
	IntrinsicBitCastUint2Float
	IntrinsicAsin
	IntrinsicBitCastFloat2Int
	IntrinsicBitCastFloat2Uint
	IntrinsicAtan
	IntrinsicAtan2
	IntrinsicCeil
	IntrinsicClamp
	IntrinsicCos
	IntrinsicCosh
	IntrinsicCross
	IntrinsicPartialDerivativeX
	IntrinsicPartialDerivativeY
	IntrinsicDegrees
	IntrinsicDeterminant
	IntrinsicDistance
	IntrinsicDot
	IntrinsicExp
	IntrinsicExp2
	IntrinsicFaceForward
	IntrinsicFloor
	IntrinsicFrac
	IntrinsicFrexp
	IntrinsicFwidth
	IntrinsicLdexp
	IntrinsicLength
	IntrinsicLerp
	IntrinsicLog
	IntrinsicLog10
	IntrinsicLog2
	IntrinsicMad
	IntrinsicMax
	IntrinsicMin
	IntrinsicModf
	IntrinsicMul
	IntrinsicNormalize
	IntrinsicPow
	IntrinsicRadians
	IntrinsicRcp
	IntrinsicReflect
	IntrinsicRefract
	IntrinsicRound
	IntrinsicRsqrt
	IntrinsicSaturate
	IntrinsicSign
	IntrinsicSin
	IntrinsicSinCos
	IntrinsicSinh
	IntrinsicSmoothStep
	IntrinsicSqrt
	IntrinsicStep
	IntrinsicTan
	IntrinsicTanh
	IntrinsicTex2D
	IntrinsicTex2DFetch
	IntrinsicTex2DGather
	IntrinsicTex2DGatherOffset
	IntrinsicTex2DGrad
	IntrinsicTex2DLevel
	IntrinsicTex2DLevelOffset
	IntrinsicTex2DOffset
	IntrinsicTex2DProj
	IntrinsicTex2DSize
	IntrinsicTranspose
	IntrinsicTrunc

	totalIntrinsics int = iota
)

var intrinsicNames = [totalIntrinsics]string{
	IntrinsicNone:              "<none>",
	IntrinsicAbs:               "abs",
	IntrinsicAcos:              "acos",
	IntrinsicAll:               "all",
	IntrinsicAny:               "any",
	IntrinsicBitCastInt2Float:  "asfloat",
	IntrinsicBitCastUint2Float: "asfloat",
	IntrinsicAsin:              "asin",
	IntrinsicBitCastFloat2Int:  "asint",
	IntrinsicBitCastFloat2Uint: "asuint",
	IntrinsicAtan:              "atan",
	IntrinsicAtan2:             "atan2",
	IntrinsicCeil:              "ceil",
	IntrinsicClamp:             "clamp",
	IntrinsicCos:               "cos",
	IntrinsicCosh:              "cosh",
	IntrinsicCross:             "cross",
	IntrinsicPartialDerivativeX: "ddx",
	IntrinsicPartialDerivativeY: "ddy",
	IntrinsicDegrees:            "degrees",
	IntrinsicDeterminant:       "determinant",
	IntrinsicDistance:          "distance",
	IntrinsicDot:               "dot",
	IntrinsicExp:               "exp",
	IntrinsicExp2:              "exp2",
	IntrinsicFaceForward:       "faceforward",
	IntrinsicFloor:             "floor",
	IntrinsicFrac:              "frac",
	IntrinsicFrexp:             "frexp",
	IntrinsicFwidth:            "fwidth",
	IntrinsicLdexp:             "ldexp",
	IntrinsicLength:            "length",
	IntrinsicLerp:              "lerp",
	IntrinsicLog:               "log",
	IntrinsicLog10:             "log10",
	IntrinsicLog2:              "log2",
	IntrinsicMad:               "mad",
	IntrinsicMax:               "max",
	IntrinsicMin:               "min",
	IntrinsicModf:              "modf",
	IntrinsicMul:               "mul",
	IntrinsicNormalize:         "normalize",
	IntrinsicPow:               "pow",
	IntrinsicRadians:           "radians",
	IntrinsicRcp:               "rcp",
	IntrinsicReflect:           "reflect",
	IntrinsicRefract:           "refract",
	IntrinsicRound:             "round",
	IntrinsicRsqrt:             "rsqrt",
	IntrinsicSaturate:          "saturate",
	IntrinsicSign:              "sign",
	IntrinsicSin:               "sin",
	IntrinsicSinCos:            "sincos",
	IntrinsicSinh:              "sinh",
	IntrinsicSmoothStep:        "smoothstep",
	IntrinsicSqrt:              "sqrt",
	IntrinsicStep:              "step",
	IntrinsicTan:               "tan",
	IntrinsicTanh:              "tanh",
	IntrinsicTex2D:             "tex2D",
	IntrinsicTex2DFetch:        "tex2Dfetch",
	IntrinsicTex2DGather:       "tex2Dgather",
	IntrinsicTex2DGatherOffset: "tex2Dgatheroffset",
	IntrinsicTex2DGrad:         "tex2Dgrad",
	IntrinsicTex2DLevel:        "tex2Dlod",
	IntrinsicTex2DLevelOffset:  "tex2Dlodoffset",
	IntrinsicTex2DOffset:       "tex2Doffset",
	IntrinsicTex2DProj:         "tex2Dproj",
	IntrinsicTex2DSize:         "tex2Dsize",
	IntrinsicTranspose:         "transpose",
	IntrinsicTrunc:             "trunc",
}

// String implements [fmt.Stringer].
//
// The string is the source-level function name. The bit-cast ops are
// spelled by their HLSL names, so the two asfloat forms render the
// same.
func (op IntrinsicOp) String() string {
	if int(op) >= totalIntrinsics {
		return "<none>"
	}
	return intrinsicNames[op]
}
