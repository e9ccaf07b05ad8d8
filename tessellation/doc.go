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

// Package tessellation is the CPU reference for the sphere tessellation
// pipeline. The functions in this package perform the same maths as the
// tessellation control and evaluation shaders, in float32, so that the
// behaviour of the shaders can be tested and inspected without a GPU.
//
// A sphere is described by a single Patch: a centre and a radius. The
// tessellator produces a grid of tess-coordinates (u, v) in the unit square
// and each coordinate is mapped to a point on the sphere:
//
//	longitude = u * 2π
//	latitude  = v * π
//	dy        = cos(latitude) * radius
//	h         = sqrt(max(radius² - dy², 0))
//	point     = centre + (sin(longitude) * h, dy, cos(longitude) * h)
//
// In the Normalised mode the point is then normalised to unit length. This
// discards the radius and the centre of the patch and every sphere is drawn
// as the unit sphere. The Corrected mode uses the point as it is.
package tessellation
