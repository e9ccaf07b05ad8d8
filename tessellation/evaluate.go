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
	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects how the evaluated point on the sphere is used.
type Mode int

// List of valid Mode values.
const (
	// Normalised is the behaviour of the original shader. The point is
	// normalised to unit length before projection, which places every vertex
	// on the unit sphere regardless of the radius and centre of the patch.
	Normalised Mode = iota

	// Corrected uses the point on the sphere directly.
	Corrected
)

func (m Mode) String() string {
	switch m {
	case Normalised:
		return "normalised"
	case Corrected:
		return "corrected"
	}
	return "unknown"
}

// HorizontalRadiusSquared returns the square of the radius of the circle of
// latitude at height dy on a sphere of radius r. Floating point error near the
// poles can make r² - dy² slightly negative so the result is clamped to zero,
// which means the square root of the result is never NaN.
func HorizontalRadiusSquared(r, dy float32) float32 {
	return math32.Max(r*r-dy*dy, 0)
}

// Angles returns the longitude and latitude for a tess-coordinate.
func Angles(c TessCoord) (longitude, latitude float32) {
	return c.U * 2 * math32.Pi, c.V * math32.Pi
}

// SpherePoint returns the point on the sphere described by the patch for the
// tess-coordinate. This is the point before any normalisation.
func SpherePoint(p Patch, c TessCoord) mgl32.Vec3 {
	psi, phi := Angles(c)

	dy := math32.Cos(phi) * p.Radius
	h := math32.Sqrt(HorizontalRadiusSquared(p.Radius, dy))
	dx := math32.Sin(psi) * h
	dz := math32.Cos(psi) * h

	return p.Centre().Add(mgl32.Vec3{dx, dy, dz})
}

// Evaluate returns the position of the generated vertex for the
// tess-coordinate, as it is given to the projection matrix.
func Evaluate(p Patch, c TessCoord, mode Mode) mgl32.Vec3 {
	pt := SpherePoint(p, c)
	if mode == Normalised {
		return pt.Normalize()
	}
	return pt
}

// Vertices returns the positions of all vertices generated for the patch with
// the given levels. The order of the vertices is the order of Levels.Coords().
func Vertices(p Patch, l Levels, mode Mode) []mgl32.Vec3 {
	coords := l.Coords()
	v := make([]mgl32.Vec3, len(coords))
	for i, c := range coords {
		v[i] = Evaluate(p, c, mode)
	}
	return v
}
