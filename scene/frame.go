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
	"github.com/go-gl/mathgl/mgl32"
)

// AnimationPeriod is the number of frames in one cycle of the animation.
const AnimationPeriod = 10000

// AnimationAmplitude is the largest vertical offset applied to an animated
// sphere.
const AnimationAmplitude = 0.05

// OffsetAt returns the vertical offset for an animation counter. The offset
// is a triangle wave with a period of AnimationPeriod frames. It is zero at
// counter zero and at half the period, reaches AnimationAmplitude at a quarter
// of the period and -AnimationAmplitude at three quarters. The offset is an
// odd function of the counter: OffsetAt(-c) == -OffsetAt(c).
func OffsetAt(counter int) float32 {
	c := counter % AnimationPeriod
	if c < 0 {
		c += AnimationPeriod
	}

	const quarter = AnimationPeriod / 4
	const slope = AnimationAmplitude / float32(quarter)

	switch {
	case c <= quarter:
		return slope * float32(c)
	case c <= 3*quarter:
		return slope * float32(AnimationPeriod/2-c)
	default:
		return slope * float32(c-AnimationPeriod)
	}
}

// Frame is the state of the scene for the frame being drawn. It is owned by
// the render loop and passed to the renderer every frame.
type Frame struct {
	counter int

	base      []Sphere
	Spheres   []Sphere
	Triangles []TriangleVertex

	// the projection-view-model matrix uploaded to both programs
	MVP mgl32.Mat4
}

// NewFrame is the preferred method of initialisation for the Frame type.
func NewFrame() *Frame {
	f := &Frame{
		base:      Spheres(),
		Triangles: Triangles(),
		MVP:       Projection(),
	}
	f.Spheres = make([]Sphere, len(f.base))
	copy(f.Spheres, f.base)
	return f
}

// Counter returns the current value of the animation counter.
func (f *Frame) Counter() int {
	return f.counter
}

// Offset returns the vertical offset for the current value of the animation
// counter.
func (f *Frame) Offset() float32 {
	return OffsetAt(f.counter)
}

// Advance the animation counter by one frame and update the spheres. The
// first sphere is moved up by the offset and the second sphere is moved down
// by the same amount.
func (f *Frame) Advance() {
	f.counter = (f.counter + 1) % AnimationPeriod

	off := f.Offset()
	if len(f.Spheres) > 0 {
		f.Spheres[0].Y = f.base[0].Y + off
	}
	if len(f.Spheres) > 1 {
		f.Spheres[1].Y = f.base[1].Y - off
	}
}

// Validate checks every sphere of the frame.
func (f *Frame) Validate() error {
	for _, s := range f.Spheres {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Patches returns the patches of the spheres in the order they are drawn.
func (f *Frame) Patches() []tessellation.Patch {
	p := make([]tessellation.Patch, len(f.Spheres))
	for i := range f.Spheres {
		p[i] = f.Spheres[i].Patch
	}
	return p
}
