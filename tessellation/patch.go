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

package tessellation

import (
	"github.com/chewxy/math32"
	"github.com/glsandbox/tessellate/curated"
	"github.com/go-gl/mathgl/mgl32"
)

// Sentinal error patterns.
const (
	InvalidPatch = "tessellation: invalid patch: %s"
)

// Patch is the single vertex that the tessellation stages expand into the
// surface of a sphere. In the vertex buffer a Patch is four floats with the
// radius in the W component.
type Patch struct {
	X, Y, Z float32
	Radius  float32
}

// PatchSize is the number of floats used by a Patch in a vertex buffer.
const PatchSize = 4

// Centre returns the centre of the sphere as a vector.
func (p Patch) Centre() mgl32.Vec3 {
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// Validate returns an error if the patch cannot describe a sphere.
func (p Patch) Validate() error {
	if math32.IsNaN(p.Radius) {
		return curated.Errorf(InvalidPatch, "radius is not a number")
	}
	if p.Radius < 0 {
		return curated.Errorf(InvalidPatch, "radius is negative")
	}
	if math32.IsNaN(p.X) || math32.IsNaN(p.Y) || math32.IsNaN(p.Z) {
		return curated.Errorf(InvalidPatch, "centre is not a number")
	}
	return nil
}

// Color is the flat color of a sphere. Only the color of the first vertex of
// a patch is used by the control stage.
type Color struct {
	R, G, B float32
}

// ColorSize is the number of floats used by a Color in a vertex buffer.
const ColorSize = 3
