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

package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shadekit/fxc/ast"
	"github.com/shadekit/fxc/internal/corpora"
	"github.com/shadekit/fxc/printer"
	"github.com/shadekit/fxc/source"
)

func TestSprintSmallTree(t *testing.T) {
	t.Parallel()

	tree := new(ast.Tree)
	defer tree.Release()
	var loc source.Location

	v := ast.New[ast.Variable](tree, loc)
	v.Name = "gIntensity"
	v.Type = ast.Type{
		Base: ast.ClassFloat, Rows: 1, Cols: 1,
		Qualifiers: ast.QualifierUniform,
	}
	init := ast.New[ast.Literal](tree, loc)
	init.Value.SetFloat(0, 1)
	v.Initializer = init
	tree.Uniforms = append(tree.Uniforms, v)

	want := "" +
		"structs:\n" +
		"uniforms:\n" +
		"  Variable name=\"gIntensity\" type=\"uniform float\"\n" +
		"    Literal bits=0x3f800000\n" +
		"functions:\n" +
		"techniques:\n"
	assert.Equal(t, want, printer.Sprint(tree))
}

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpora.Corpus{
		Root:         "testdata",
		Extension:    "fxtree",
		OutExtension: "dump",
		Refresh:      "FXC_REFRESH",
		Test: func(t *testing.T, path, text string) string {
			tree := buildTree(t, text)
			defer tree.Release()
			return printer.Sprint(tree)
		},
	}.Run(t)
}

// The types below describe a tree in yaml, so that corpus cases can be
// written as data. This is a test convenience, not a parser: it covers
// declarations only, which is what the printer's section layout cares
// about.

type typeSpec struct {
	Base       string   `yaml:"base"`
	Rows       uint8    `yaml:"rows"`
	Cols       uint8    `yaml:"cols"`
	Array      int      `yaml:"array"`
	Qualifiers []string `yaml:"qualifiers"`
}

type annSpec struct {
	Name   string `yaml:"name"`
	String string `yaml:"string"`
}

type varSpec struct {
	Name        string    `yaml:"name"`
	Type        typeSpec  `yaml:"type"`
	Semantic    string    `yaml:"semantic"`
	Annotations []annSpec `yaml:"annotations"`
}

type structSpec struct {
	Name   string    `yaml:"name"`
	Fields []varSpec `yaml:"fields"`
}

type funcSpec struct {
	Name           string    `yaml:"name"`
	Return         typeSpec  `yaml:"return"`
	ReturnSemantic string    `yaml:"return_semantic"`
	Params         []varSpec `yaml:"params"`
	Body           bool      `yaml:"body"`
}

type passSpec struct {
	Name   string `yaml:"name"`
	Vertex string `yaml:"vertex"`
	Pixel  string `yaml:"pixel"`
	Blend  bool   `yaml:"blend"`
	Depth  bool   `yaml:"depth"`
	SRGB   bool   `yaml:"srgb"`
}

type techSpec struct {
	Name        string     `yaml:"name"`
	Annotations []annSpec  `yaml:"annotations"`
	Passes      []passSpec `yaml:"passes"`
}

type fileSpec struct {
	Structs    []structSpec `yaml:"structs"`
	Uniforms   []varSpec    `yaml:"uniforms"`
	Functions  []funcSpec   `yaml:"functions"`
	Techniques []techSpec   `yaml:"techniques"`
}

var classByName = map[string]ast.Class{
	"void":      ast.ClassVoid,
	"bool":      ast.ClassBool,
	"int":       ast.ClassInt,
	"uint":      ast.ClassUint,
	"float":     ast.ClassFloat,
	"sampler1D": ast.ClassSampler1D,
	"sampler2D": ast.ClassSampler2D,
	"sampler3D": ast.ClassSampler3D,
	"texture1D": ast.ClassTexture1D,
	"texture2D": ast.ClassTexture2D,
	"texture3D": ast.ClassTexture3D,
	"struct":    ast.ClassStruct,
	"string":    ast.ClassString,
}

var qualifierByName = map[string]ast.Qualifier{
	"extern":          ast.QualifierExtern,
	"static":          ast.QualifierStatic,
	"uniform":         ast.QualifierUniform,
	"volatile":        ast.QualifierVolatile,
	"precise":         ast.QualifierPrecise,
	"in":              ast.QualifierIn,
	"out":             ast.QualifierOut,
	"inout":           ast.QualifierInOut,
	"const":           ast.QualifierConst,
	"linear":          ast.QualifierLinear,
	"noperspective":   ast.QualifierNoPerspective,
	"centroid":        ast.QualifierCentroid,
	"nointerpolation": ast.QualifierNoInterpolation,
}

func buildTree(t *testing.T, text string) *ast.Tree {
	t.Helper()

	var spec fileSpec
	require.NoError(t, yaml.Unmarshal([]byte(text), &spec))

	tree := new(ast.Tree)
	var loc source.Location

	makeType := func(s typeSpec) ast.Type {
		class, ok := classByName[s.Base]
		require.True(t, ok, "unknown base class %q", s.Base)
		ty := ast.Type{Base: class, Rows: s.Rows, Cols: s.Cols, ArrayLength: s.Array}
		for _, q := range s.Qualifiers {
			bit, ok := qualifierByName[q]
			require.True(t, ok, "unknown qualifier %q", q)
			ty.Qualifiers |= bit
		}
		return ty
	}
	makeAnnotations := func(specs []annSpec) []ast.Annotation {
		var list []ast.Annotation
		for _, a := range specs {
			lit := ast.New[ast.Literal](tree, loc)
			lit.StringValue = a.String
			list = append(list, ast.Annotation{Name: a.Name, Value: lit})
		}
		return list
	}
	makeVar := func(s varSpec) *ast.Variable {
		v := ast.New[ast.Variable](tree, loc)
		v.Name = s.Name
		v.Type = makeType(s.Type)
		v.Semantic = s.Semantic
		v.Annotations = makeAnnotations(s.Annotations)
		return v
	}

	for _, s := range spec.Structs {
		st := ast.New[ast.Struct](tree, loc)
		st.Name = s.Name
		for _, f := range s.Fields {
			st.Fields = append(st.Fields, makeVar(f))
		}
		tree.Structs = append(tree.Structs, st)
	}
	for _, u := range spec.Uniforms {
		tree.Uniforms = append(tree.Uniforms, makeVar(u))
	}

	funcs := make(map[string]*ast.Function)
	for _, f := range spec.Functions {
		fn := ast.New[ast.Function](tree, loc)
		fn.Name = f.Name
		fn.ReturnType = makeType(f.Return)
		fn.ReturnSemantic = f.ReturnSemantic
		for _, p := range f.Params {
			fn.Parameters = append(fn.Parameters, makeVar(p))
		}
		if f.Body {
			fn.Definition = ast.New[ast.Compound](tree, loc)
		}
		funcs[f.Name] = fn
		tree.Functions = append(tree.Functions, fn)
	}

	for _, te := range spec.Techniques {
		tech := ast.New[ast.Technique](tree, loc)
		tech.Name = te.Name
		tech.Annotations = makeAnnotations(te.Annotations)
		for _, p := range te.Passes {
			pass := ast.New[ast.Pass](tree, loc)
			pass.Name = p.Name
			if p.Vertex != "" {
				pass.States.VertexShader = funcs[p.Vertex]
				require.NotNil(t, pass.States.VertexShader, "unknown function %q", p.Vertex)
			}
			if p.Pixel != "" {
				pass.States.PixelShader = funcs[p.Pixel]
				require.NotNil(t, pass.States.PixelShader, "unknown function %q", p.Pixel)
			}
			pass.States.BlendEnable = p.Blend
			pass.States.DepthEnable = p.Depth
			pass.States.SRGBWriteEnable = p.SRGB
			tech.Passes = append(tech.Passes, pass)
		}
		tree.Techniques = append(tree.Techniques, tech)
	}

	return tree
}
