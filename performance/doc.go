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

// Package performance contains helper functions relating to performance.
//
// FPSCounter measures frames-per-second while the render loop is running. It
// produces a new measurement no more than once a second.
//
// CalcFPS() calculates frames-per-second in aggregate. It is suitable for
// summarising a completed run but not for "live" FPS monitoring.
//
// RunProfiler() can be used to generate the various profile types while the
// render loop is running.
//
// The limiter sub-package can be used to cap the number of frames drawn each
// second.
package performance
