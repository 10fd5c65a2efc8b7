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

// The state payloads below are plain configuration snapshots: they
// store what the source program spelled out and default everything
// else to the conventional fixed-function reset state. They have no
// behavior; the code generator interprets them. The enum values are
// contractual — they are what downstream consumers of a compiled
// effect expect to find — so they must not be renumbered.

// TexFormat is a texture pixel format. The uncompressed formats use
// their D3D format numbers; the block-compressed ones are FourCC codes.
type TexFormat uint32

const (
	FormatNone TexFormat = 0

	FormatR8      TexFormat = 50
	FormatR16F    TexFormat = 111
	FormatR32F    TexFormat = 114
	FormatRG8     TexFormat = 51
	FormatRG16    TexFormat = 34
	FormatRG16F   TexFormat = 112
	FormatRG32F   TexFormat = 115
	FormatRGBA8   TexFormat = 32
	FormatRGBA16  TexFormat = 36
	FormatRGBA16F TexFormat = 113
	FormatRGBA32F TexFormat = 116

	FormatDXT1  TexFormat = 827611204 // FourCC "DXT1"
	FormatDXT3  TexFormat = 861165636 // FourCC "DXT3"
	FormatDXT5  TexFormat = 894720068 // FourCC "DXT5"
	FormatLATC1 TexFormat = 826889281 // FourCC "ATI1"
	FormatLATC2 TexFormat = 843666497 // FourCC "ATI2"
)

// TexFilter selects how a sampler filters between texels and mip
// levels.
type TexFilter uint32

const (
	FilterPoint TexFilter = iota + 1
	FilterLinear
	FilterAnisotropic
)

// TexAddress selects how a sampler resolves coordinates outside [0,1].
type TexAddress uint32

const (
	// AddressWrap and AddressRepeat are the same mode under its D3D and
	// GL names; the parser accepts both spellings.
	AddressWrap   TexAddress = 1
	AddressRepeat TexAddress = 1

	AddressMirror TexAddress = iota
	AddressClamp
	AddressBorder
)

// TextureProperties is the resource description carried by a texture or
// sampler [Variable]: the backing image's dimensions and format, and
// the sampling state.
type TextureProperties struct {
	// Texture points at the texture variable a sampler samples from;
	// nil on the texture declaration itself.
	Texture *Variable

	Width, Height, Depth uint32
	MipLevels            uint32
	Format               TexFormat
	SRGBTexture          bool

	AddressU, AddressV, AddressW    TexAddress
	MinFilter, MagFilter, MipFilter TexFilter
	MaxAnisotropy                   uint32
	MinLOD, MaxLOD                  float32
	MipLODBias                      float32
}

// DefaultTextureProperties returns the documented defaults: a 1x1x1
// RGBA8 image with linear filtering, clamp addressing, and the full
// LOD range. [New] applies these to every fresh [Variable].
func DefaultTextureProperties() TextureProperties {
	return TextureProperties{
		Width:         1,
		Height:        1,
		Depth:         1,
		MipLevels:     1,
		Format:        FormatRGBA8,
		AddressU:      AddressClamp,
		AddressV:      AddressClamp,
		AddressW:      AddressClamp,
		MinFilter:     FilterLinear,
		MagFilter:     FilterLinear,
		MipFilter:     FilterLinear,
		MaxAnisotropy: 1,
		MaxLOD:        math.MaxFloat32,
	}
}

// BlendFactor is a source or destination blend multiplier.
type BlendFactor uint32

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendInvSrcColor
	BlendSrcAlpha
	BlendInvSrcAlpha
	BlendDestAlpha
	BlendInvDestAlpha
	BlendDestColor
	BlendInvDestColor
)

// BlendOp combines the blended source and destination terms.
type BlendOp uint32

const (
	BlendOpAdd BlendOp = iota + 1
	BlendOpSubtract
	BlendOpRevSubtract
	BlendOpMin
	BlendOpMax
)

// StencilOp is the action applied to the stencil buffer when a test
// passes or fails.
type StencilOp uint32

const (
	StencilKeep StencilOp = 1

	StencilReplace StencilOp = iota + 2
	StencilInvert
	StencilIncrSat
	StencilDecrSat
	StencilIncr
	StencilDecr
)

// CmpFunc is a depth or stencil comparison function.
type CmpFunc uint32

const (
	CmpNever CmpFunc = iota + 1
	CmpLess
	CmpEqual
	CmpLessEqual
	CmpGreater
	CmpNotEqual
	CmpGreaterEqual
	CmpAlways
)

// PassStates is the fixed-function pipeline snapshot of a [Pass].
type PassStates struct {
	// RenderTargets holds up to eight target textures; an all-nil array
	// means "render to the back buffer".
	RenderTargets [8]*Variable

	VertexShader *Function
	PixelShader  *Function

	SRGBWriteEnable bool
	BlendEnable     bool
	DepthEnable     bool
	StencilEnable   bool

	RenderTargetWriteMask uint8
	DepthWriteMask        uint8
	StencilReadMask       uint8
	StencilWriteMask      uint8

	BlendOp      BlendOp
	BlendOpAlpha BlendOp
	SrcBlend     BlendFactor
	DestBlend    BlendFactor

	DepthFunc   CmpFunc
	StencilFunc CmpFunc
	StencilRef  uint32

	StencilOpPass      StencilOp
	StencilOpFail      StencilOp
	StencilOpDepthFail StencilOp
}

// DefaultPassStates returns the documented defaults: everything
// disabled, opaque One/Zero pass-through blending, Less depth testing
// with writes enabled, and all color channels writable. A pass whose
// source program sets nothing must compile to exactly this state.
// [New] applies these to every fresh [Pass].
func DefaultPassStates() PassStates {
	return PassStates{
		RenderTargetWriteMask: 0xF,
		DepthWriteMask:        1,
		StencilReadMask:       0xFF,
		StencilWriteMask:      0xFF,
		BlendOp:               BlendOpAdd,
		BlendOpAlpha:          BlendOpAdd,
		SrcBlend:              BlendOne,
		DestBlend:             BlendZero,
		DepthFunc:             CmpLess,
		StencilFunc:           CmpAlways,
		StencilOpPass:         StencilKeep,
		StencilOpFail:         StencilKeep,
		StencilOpDepthFail:    StencilKeep,
	}
}
