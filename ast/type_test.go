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

package ast_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shadekit/fxc/ast"
)

// predicates names every classification predicate of [ast.Type], keyed
// the way the yaml cases spell them.
var predicates = []struct {
	name string
	fn   func(ast.Type) bool
}{
	{"array", ast.Type.IsArray},
	{"matrix", ast.Type.IsMatrix},
	{"vector", ast.Type.IsVector},
	{"scalar", ast.Type.IsScalar},
	{"numeric", ast.Type.IsNumeric},
	{"void", ast.Type.IsVoid},
	{"boolean", ast.Type.IsBoolean},
	{"integral", ast.Type.IsIntegral},
	{"float", ast.Type.IsFloatingPoint},
	{"texture", ast.Type.IsTexture},
	{"sampler", ast.Type.IsSampler},
	{"struct", ast.Type.IsStruct},
}

func TestClassification(t *testing.T) {
	t.Parallel()

	type typeCase struct {
		Name string `yaml:"name"`
		Type struct {
			Base  string `yaml:"base"`
			Rows  uint8  `yaml:"rows"`
			Cols  uint8  `yaml:"cols"`
			Array int    `yaml:"array"`
		} `yaml:"type"`
		Expect map[string]bool `yaml:"expect"`
	}

	text, err := os.ReadFile("testdata/types.yaml")
	require.NoError(t, err)

	var cases []typeCase
	require.NoError(t, yaml.Unmarshal(text, &cases))
	require.NotEmpty(t, cases)

	classByName := make(map[string]ast.Class)
	for c := ast.ClassVoid; c <= ast.ClassString; c++ {
		classByName[c.String()] = c
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)

			class, ok := classByName[tc.Type.Base]
			require.True(t, ok, "unknown base class %q", tc.Type.Base)

			ty := ast.Type{
				Base:        class,
				Rows:        tc.Type.Rows,
				Cols:        tc.Type.Cols,
				ArrayLength: tc.Type.Array,
			}
			for _, p := range predicates {
				assert.Equal(tc.Expect[p.name], p.fn(ty), "predicate %q on %s", p.name, ty)
			}
		})
	}
}

func TestMatrixExcludesVectorAndScalar(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	ty := ast.Type{Base: ast.ClassFloat, Rows: 4, Cols: 4}
	assert.True(ty.IsMatrix())
	assert.False(ty.IsVector())
	assert.False(ty.IsScalar())
}

func TestHasQualifier(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var ty ast.Type
	assert.False(ty.HasQualifier(ast.QualifierIn))

	ty.Qualifiers = ast.QualifierIn
	assert.True(ty.HasQualifier(ast.QualifierIn))
	assert.False(ty.HasQualifier(ast.QualifierOut))
	// The combined flag requires both bits.
	assert.False(ty.HasQualifier(ast.QualifierInOut))

	ty.Qualifiers |= ast.QualifierOut
	assert.True(ty.HasQualifier(ast.QualifierInOut))

	ty.Qualifiers = ast.QualifierUniform | ast.QualifierConst
	assert.True(ty.HasQualifier(ast.QualifierUniform))
	assert.True(ty.HasQualifier(ast.QualifierUniform | ast.QualifierConst))
	assert.False(ty.HasQualifier(ast.QualifierUniform | ast.QualifierStatic))
}

func TestTypeString(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("float", ast.Type{Base: ast.ClassFloat, Rows: 1, Cols: 1}.String())
	assert.Equal("float3", ast.Type{Base: ast.ClassFloat, Rows: 3, Cols: 1}.String())
	assert.Equal("float4x4", ast.Type{Base: ast.ClassFloat, Rows: 4, Cols: 4}.String())
	assert.Equal("int[7]", ast.Type{Base: ast.ClassInt, Rows: 1, Cols: 1, ArrayLength: 7}.String())
	assert.Equal("texture2D", ast.Type{Base: ast.ClassTexture2D}.String())
	assert.Equal(
		"uniform const float",
		ast.Type{
			Base: ast.ClassFloat, Rows: 1, Cols: 1,
			Qualifiers: ast.QualifierUniform | ast.QualifierConst,
		}.String(),
	)
	assert.Equal(
		"inout float",
		ast.Type{
			Base: ast.ClassFloat, Rows: 1, Cols: 1,
			Qualifiers: ast.QualifierInOut,
		}.String(),
	)
}
