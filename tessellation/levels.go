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

// Levels are the tessellation levels written by the control stage for a quad
// patch. Outer levels subdivide the four edges of the quad and the inner
// levels subdivide the interior in the u and v directions.
type Levels struct {
	Outer [4]float32
	Inner [2]float32
}

// NewLevels returns the levels for a base subdivision. Edges 1 and 3 and the
// v direction of the interior use the base value. Edges 0 and 2 and the u
// direction of the interior use twice the base value. Longitude covers twice
// the angle of latitude and so needs twice the subdivisions.
func NewLevels(base int) Levels {
	b := float32(base)
	return Levels{
		Outer: [4]float32{b * 2, b, b * 2, b},
		Inner: [2]float32{b * 2, b},
	}
}

// Base returns the base subdivision used to create the levels.
func (l Levels) Base() int {
	return int(l.Outer[1])
}

// TessCoord is a normalised coordinate in the quad domain produced by the
// tessellator for every generated vertex.
type TessCoord struct {
	U, V float32
}

// Coords returns the tess-coordinates generated with equal spacing for the
// levels. The interior of the quad is a grid subdivided by the inner levels
// but the outer ring of that grid is replaced by the edges, each of which is
// subdivided by its own outer level. Corners are only returned once.
func (l Levels) Coords() []TessCoord {
	nu := segments(l.Inner[0])
	nv := segments(l.Inner[1])

	seen := make(map[TessCoord]bool)
	coords := make([]TessCoord, 0, (nu+1)*(nv+1))

	add := func(c TessCoord) {
		if !seen[c] {
			seen[c] = true
			coords = append(coords, c)
		}
	}

	for j := 1; j < nv; j++ {
		for i := 1; i < nu; i++ {
			add(TessCoord{U: float32(i) / float32(nu), V: float32(j) / float32(nv)})
		}
	}

	// edge 0 is u == 0, edge 1 is v == 0, edge 2 is u == 1 and edge 3 is v == 1
	for e, lvl := range l.Outer {
		n := segments(lvl)
		for k := 0; k <= n; k++ {
			t := float32(k) / float32(n)
			switch e {
			case 0:
				add(TessCoord{U: 0, V: t})
			case 1:
				add(TessCoord{U: t, V: 0})
			case 2:
				add(TessCoord{U: 1, V: t})
			case 3:
				add(TessCoord{U: t, V: 1})
			}
		}
	}

	return coords
}

// segments converts a tessellation level to a number of segments. with equal
// spacing the level is rounded up to the nearest integer and a level of less
// than one is clamped to one.
func segments(level float32) int {
	n := int(level)
	if float32(n) < level {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}
