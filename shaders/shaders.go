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

package shaders

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/glsandbox/tessellate/scene"
	"github.com/glsandbox/tessellate/tessellation"
)

//go:embed sphere.vert
var sphereVertex string

//go:embed sphere.tesc
var sphereControl string

//go:embed sphere.tese
var sphereEvaluation string

//go:embed sphere.frag
var sphereFragment string

//go:embed flat.vert
var flatVertex string

//go:embed flat.frag
var flatFragment string

// Stage identifies a programmable stage of the pipeline.
type Stage int

// List of valid Stage values.
const (
	StageVertex Stage = iota
	StageTessControl
	StageTessEvaluation
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageTessControl:
		return "tessellation control"
	case StageTessEvaluation:
		return "tessellation evaluation"
	case StageFragment:
		return "fragment"
	}
	return "unknown"
}

// Source is the GLSL text for a single stage.
type Source struct {
	Stage Stage
	Text  string
}

// Program is a named list of stage sources that are linked together.
type Program struct {
	Name    string
	Sources []Source
}

// Names of the programs.
const (
	SphereProgram = "sphere"
	FlatProgram   = "flat"
)

// Sphere returns the tessellated sphere program for the levels. Only the base
// level is used by the control stage, the others are derived from it.
func Sphere(levels tessellation.Levels, corrected bool) Program {
	evaluation := sphereEvaluation
	if corrected {
		evaluation = define(evaluation, "CORRECTED_SPHERE", "")
	}

	return Program{
		Name: SphereProgram,
		Sources: []Source{
			{Stage: StageVertex, Text: sphereVertex},
			{Stage: StageTessControl, Text: define(sphereControl, "TESS_LEVEL", fmt.Sprintf("%d.0", levels.Base()))},
			{Stage: StageTessEvaluation, Text: evaluation},
			{Stage: StageFragment, Text: sphereFragment},
		},
	}
}

// Flat returns the program used to draw the untessellated triangles.
func Flat() Program {
	return Program{
		Name: FlatProgram,
		Sources: []Source{
			{Stage: StageVertex, Text: flatVertex},
			{Stage: StageFragment, Text: flatFragment},
		},
	}
}

// ForVariant returns the programs required to draw a frame of the variant, in
// the order they are drawn.
func ForVariant(v scene.Variant, corrected bool) []Program {
	return []Program{
		Sphere(v.Levels(), corrected),
		Flat(),
	}
}

// define inserts a #define directive on the line after the #version
// directive. If there is no #version directive the definition is placed at
// the start of the source.
func define(src string, name string, value string) string {
	d := fmt.Sprintf("#define %s", name)
	if value != "" {
		d = fmt.Sprintf("%s %s", d, value)
	}

	if !strings.HasPrefix(src, "#version") {
		return fmt.Sprintf("%s\n%s", d, src)
	}

	version, rest, _ := strings.Cut(src, "\n")
	return fmt.Sprintf("%s\n%s\n%s", version, d, rest)
}
