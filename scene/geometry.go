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

package scene

import (
	"github.com/glsandbox/tessellate/tessellation"
)

// TriangleVertex is a vertex of the flat shaded triangle pipeline.
type TriangleVertex struct {
	X, Y, Z float32
	Color   tessellation.Color
}

// TriangleVertexSize is the number of floats used by the position of a
// TriangleVertex in the vertex buffer.
const TriangleVertexSize = 3

var (
	red   = tessellation.Color{R: 1.0, G: 0.0, B: 0.0}
	green = tessellation.Color{R: 0.0, G: 1.0, B: 0.0}
	blue  = tessellation.Color{R: 0.0, G: 0.0, B: 1.0}
)

// Triangles returns the two triangles of the flat pipeline, a small quad to
// the right of the spheres.
func Triangles() []TriangleVertex {
	return []TriangleVertex{
		{X: 0.3, Y: 0.05, Z: -1.0, Color: red},
		{X: 0.3, Y: -0.05, Z: -1.0, Color: green},
		{X: 0.4, Y: -0.05, Z: -1.0, Color: blue},

		{X: 0.3, Y: 0.05, Z: -1.0, Color: green},
		{X: 0.4, Y: 0.05, Z: -1.0, Color: red},
		{X: 0.4, Y: -0.05, Z: -1.0, Color: blue},
	}
}

// Sphere is a patch and the color it is drawn with.
type Sphere struct {
	tessellation.Patch
	Color tessellation.Color
}

// Spheres returns the spheres drawn by the tessellation pipeline.
func Spheres() []Sphere {
	return []Sphere{
		{Patch: tessellation.Patch{X: 0.1, Y: 0.0, Z: -1.0, Radius: 0.1}, Color: red},
		{Patch: tessellation.Patch{X: -0.2, Y: 0.0, Z: -1.0, Radius: 0.2}, Color: green},
		{Patch: tessellation.Patch{X: 0.5, Y: 0.5, Z: -1.5, Radius: 0.1}, Color: blue},
	}
}

// PatchData flattens the patches of the spheres for the position buffer.
func PatchData(spheres []Sphere) []float32 {
	d := make([]float32, 0, len(spheres)*tessellation.PatchSize)
	for _, s := range spheres {
		d = append(d, s.X, s.Y, s.Z, s.Radius)
	}
	return d
}

// SphereColorData flattens the colors of the spheres for the color buffer.
func SphereColorData(spheres []Sphere) []float32 {
	d := make([]float32, 0, len(spheres)*tessellation.ColorSize)
	for _, s := range spheres {
		d = append(d, s.Color.R, s.Color.G, s.Color.B)
	}
	return d
}

// TrianglePositionData flattens the positions of the triangle vertices.
func TrianglePositionData(vertices []TriangleVertex) []float32 {
	d := make([]float32, 0, len(vertices)*TriangleVertexSize)
	for _, v := range vertices {
		d = append(d, v.X, v.Y, v.Z)
	}
	return d
}

// TriangleColorData flattens the colors of the triangle vertices.
func TriangleColorData(vertices []TriangleVertex) []float32 {
	d := make([]float32, 0, len(vertices)*tessellation.ColorSize)
	for _, v := range vertices {
		d = append(d, v.Color.R, v.Color.G, v.Color.B)
	}
	return d
}
