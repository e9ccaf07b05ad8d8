// This file is part of Tessellate.
//
// Tessellate is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tessellate is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tessellate.  If not, see <https://www.gnu.org/licenses/>.

package glsl_test

import (
	"strings"
	"testing"

	"github.com/glsandbox/tessellate/curated"
	"github.com/glsandbox/tessellate/glsl"
	"github.com/glsandbox/tessellate/glsl/glsltest"
	"github.com/glsandbox/tessellate/scene"
	"github.com/glsandbox/tessellate/shaders"
	"github.com/glsandbox/tessellate/test"
)

func TestBuild(t *testing.T) {
	b := glsltest.NewBackend()

	prg, err := glsl.Build(b, shaders.Sphere(scene.VariantA.Levels(), false))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prg.Name, shaders.SphereProgram)
	test.ExpectInequality(t, prg.Handle, 0)
	test.ExpectEquality(t, prg.Position, 0)
	test.ExpectEquality(t, prg.Color, 1)

	test.ExpectEquality(t, b.Count("CreateShader"), 4)
	test.ExpectEquality(t, b.Count("CompileShader"), 4)
	test.ExpectEquality(t, b.Count("AttachShader"), 4)
	test.ExpectEquality(t, b.Count("LinkProgram"), 1)

	// stage objects are released after a successful link
	test.ExpectEquality(t, b.Count("DeleteShader"), 4)

	// the program and two buffers remain
	test.ExpectEquality(t, len(b.Live), 3)

	prg.Destroy(b)
	test.ExpectEquality(t, len(b.Live), 0)
	test.ExpectEquality(t, prg.Handle, 0)
}

func TestBuildStageOrder(t *testing.T) {
	b := glsltest.NewBackend()

	_, err := glsl.Build(b, shaders.Sphere(scene.VariantA.Levels(), false))
	test.DemandSuccess(t, err)

	var stages []string
	for _, c := range b.Calls {
		if strings.HasPrefix(c, "CreateShader ") {
			stages = append(stages, strings.TrimPrefix(c, "CreateShader "))
		}
	}
	test.DemandEquality(t, len(stages), 4)
	test.ExpectSuccess(t, strings.HasPrefix(stages[0], "vertex"))
	test.ExpectSuccess(t, strings.HasPrefix(stages[1], "tessellation control"))
	test.ExpectSuccess(t, strings.HasPrefix(stages[2], "tessellation evaluation"))
	test.ExpectSuccess(t, strings.HasPrefix(stages[3], "fragment"))
}

func TestCompileError(t *testing.T) {
	b := glsltest.NewBackend()

	prg, err := glsl.Build(b, glsltest.Malformed())
	test.ExpectSuccess(t, prg == nil)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, glsl.ShaderCompileError))
	test.ExpectEquality(t, err.Error(),
		"glsl: broken program: fragment stage: 0(99) : error C0000: syntax error, unexpected end of file")

	// nothing is linked and nothing is left behind
	test.ExpectEquality(t, b.Count("LinkProgram"), 0)
	test.ExpectEquality(t, len(b.Live), 0)
}

func TestEmptyDiagnostic(t *testing.T) {
	b := glsltest.NewBackend()
	b.EmptyLog = true

	_, err := glsl.Build(b, glsltest.Malformed())
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, glsl.ShaderCompileError))
	test.ExpectSuccess(t, strings.HasSuffix(err.Error(), "fragment stage: no diagnostic available"))

	b = glsltest.NewBackend()
	b.EmptyLog = true
	b.FailLink = true

	_, err = glsl.Build(b, shaders.Flat())
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, glsl.ProgramLinkError))
	test.ExpectEquality(t, err.Error(), "glsl: flat program: link: no diagnostic available")
}

func TestLinkError(t *testing.T) {
	b := glsltest.NewBackend()
	b.FailLink = true

	_, err := glsl.Build(b, shaders.Sphere(scene.VariantB.Levels(), true))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, glsl.ProgramLinkError))
	test.ExpectFailure(t, curated.Is(err, glsl.ShaderCompileError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "no input primitive"))
	test.ExpectEquality(t, len(b.Live), 0)
}

func TestMissingVariables(t *testing.T) {
	b := glsltest.NewBackend()
	b.Missing["MVP"] = true

	_, err := glsl.Build(b, shaders.Flat())
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, glsl.MissingUniform))
	test.ExpectEquality(t, len(b.Live), 0)

	b = glsltest.NewBackend()
	b.Missing["in_color"] = true

	_, err = glsl.Build(b, shaders.Flat())
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, glsl.MissingAttribute))
	test.ExpectEquality(t, err.Error(), "glsl: flat program: missing attribute: in_color")
	test.ExpectEquality(t, len(b.Live), 0)
}
