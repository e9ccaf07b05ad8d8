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

package tessellation_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/glsandbox/tessellate/curated"
	"github.com/glsandbox/tessellate/tessellation"
	"github.com/glsandbox/tessellate/test"
)

const tolerance = 1e-6

func TestLevels(t *testing.T) {
	l := tessellation.NewLevels(10)
	test.ExpectEquality(t, l.Outer, [4]float32{20, 10, 20, 10})
	test.ExpectEquality(t, l.Inner, [2]float32{20, 10})
	test.ExpectEquality(t, l.Base(), 10)

	l = tessellation.NewLevels(100)
	test.ExpectEquality(t, l.Outer, [4]float32{200, 100, 200, 100})
	test.ExpectEquality(t, l.Inner, [2]float32{200, 100})
	test.ExpectEquality(t, l.Base(), 100)
}

func TestCoords(t *testing.T) {
	coords := tessellation.NewLevels(10).Coords()

	// 19x9 interior coordinates. the edges u == 0 and u == 1 have 21
	// coordinates each and the edges v == 0 and v == 1 have 11, sharing the
	// four corners
	test.ExpectEquality(t, len(coords), 231)

	// an edge has exactly the coordinates of its outer level
	var top, left int
	for _, c := range coords {
		if c.V == 0 {
			top++
		}
		if c.U == 0 {
			left++
		}
	}
	test.ExpectEquality(t, top, 11)
	test.ExpectEquality(t, left, 21)

	seen := make(map[tessellation.TessCoord]bool)
	for _, c := range coords {
		test.ExpectFailure(t, seen[c], "duplicate coordinate", c)
		seen[c] = true
		test.ExpectSuccess(t, c.U >= 0 && c.U <= 1, c)
		test.ExpectSuccess(t, c.V >= 0 && c.V <= 1, c)
	}

	// corners are always present
	test.ExpectSuccess(t, seen[tessellation.TessCoord{U: 0, V: 0}])
	test.ExpectSuccess(t, seen[tessellation.TessCoord{U: 1, V: 1}])
}

func TestCoordsBase100(t *testing.T) {
	// 199x99 interior plus 201+101+201+101-4 on the edges
	coords := tessellation.NewLevels(100).Coords()
	test.ExpectEquality(t, len(coords), 199*99+600)
}

func TestHorizontalRadiusIsNeverNegative(t *testing.T) {
	radii := []float32{0, 1e-7, 0.1, 0.2, 1, 1000}
	for _, base := range []int{10, 100} {
		for _, c := range tessellation.NewLevels(base).Coords() {
			_, phi := tessellation.Angles(c)
			for _, r := range radii {
				dy := math32.Cos(phi) * r
				h2 := tessellation.HorizontalRadiusSquared(r, dy)
				if h2 < 0 {
					t.Fatalf("negative value under square root for r=%v at %v", r, c)
				}

				pt := tessellation.SpherePoint(tessellation.Patch{Radius: r}, c)
				for i := range pt {
					if math32.IsNaN(pt[i]) {
						t.Fatalf("NaN in sphere point for r=%v at %v", r, c)
					}
				}
			}
		}
	}

	// dy larger than r can only be the result of floating point error but it
	// must still be clamped
	test.ExpectEquality(t, tessellation.HorizontalRadiusSquared(0.1, 0.1000001), 0)
}

func TestSpherePointAtEquator(t *testing.T) {
	p := tessellation.Patch{X: 0.1, Y: 0.0, Z: -1.0, Radius: 0.1}
	pt := tessellation.SpherePoint(p, tessellation.TessCoord{U: 0, V: 0.5})

	test.ExpectApproximate(t, pt.X(), 0.1, tolerance)
	test.ExpectApproximate(t, pt.Y(), 0.0, tolerance)
	test.ExpectApproximate(t, pt.Z(), -0.9, tolerance)
}

func TestSpherePointAtPoles(t *testing.T) {
	p := tessellation.Patch{X: -0.2, Y: 0.0, Z: -1.0, Radius: 0.2}

	north := tessellation.SpherePoint(p, tessellation.TessCoord{U: 0.3, V: 0})
	test.ExpectApproximate(t, north.X(), -0.2, tolerance)
	test.ExpectApproximate(t, north.Y(), 0.2, tolerance)
	test.ExpectApproximate(t, north.Z(), -1.0, tolerance)

	south := tessellation.SpherePoint(p, tessellation.TessCoord{U: 0.7, V: 1})
	test.ExpectApproximate(t, south.X(), -0.2, tolerance)
	test.ExpectApproximate(t, south.Y(), -0.2, tolerance)
	test.ExpectApproximate(t, south.Z(), -1.0, tolerance)
}

func TestSpherePointDistance(t *testing.T) {
	p := tessellation.Patch{X: 0.5, Y: 0.5, Z: -1.5, Radius: 0.1}
	for _, c := range tessellation.NewLevels(10).Coords() {
		pt := tessellation.SpherePoint(p, c)
		d := pt.Sub(p.Centre()).Len()
		test.ExpectApproximate(t, d, p.Radius, 1e-5, c)
	}
}

func TestEvaluate(t *testing.T) {
	p := tessellation.Patch{X: 0.1, Y: 0.0, Z: -1.0, Radius: 0.1}
	c := tessellation.TessCoord{U: 0, V: 0.5}
	pt := tessellation.SpherePoint(p, c)

	// the normalised vertex is on the unit sphere, in the direction of the
	// point on the patch's sphere
	n := tessellation.Evaluate(p, c, tessellation.Normalised)
	test.ExpectApproximate(t, n.Len(), 1.0, tolerance)
	test.ExpectApproximate(t, n.Dot(pt.Normalize()), 1.0, tolerance)

	// the corrected vertex is the point itself
	v := tessellation.Evaluate(p, c, tessellation.Corrected)
	test.ExpectEquality(t, v, pt)

	test.ExpectEquality(t, tessellation.Normalised.String(), "normalised")
	test.ExpectEquality(t, tessellation.Corrected.String(), "corrected")
}

func TestVertices(t *testing.T) {
	p := tessellation.Patch{X: 0.1, Y: 0.0, Z: -1.0, Radius: 0.1}
	l := tessellation.NewLevels(10)

	v := tessellation.Vertices(p, l, tessellation.Normalised)
	test.ExpectEquality(t, len(v), len(l.Coords()))
	for i := range v {
		test.ExpectApproximate(t, v[i].Len(), 1.0, tolerance, i)
	}
}

func TestValidate(t *testing.T) {
	test.ExpectSuccess(t, tessellation.Patch{Radius: 0}.Validate())
	test.ExpectSuccess(t, tessellation.Patch{X: 0.1, Z: -1, Radius: 0.1}.Validate())

	err := tessellation.Patch{Radius: -0.1}.Validate()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, tessellation.InvalidPatch))

	err = tessellation.Patch{Radius: math32.NaN()}.Validate()
	test.ExpectSuccess(t, curated.Is(err, tessellation.InvalidPatch))
}
