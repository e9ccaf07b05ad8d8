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

import "github.com/go-gl/mathgl/mgl32"

// Projection returns the perspective projection used for both pipelines. The
// aspect ratio is fixed at 1.0 and so the scene is stretched horizontally in
// the 1280x960 window.
func Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(45.0), 1.0, 0.1, 20.0)
}
