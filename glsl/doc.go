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

// Package glsl builds the shader programs used by Tessellate and draws a
// scene.Frame with them.
//
// All graphics calls are made through the Backend interface. The native
// sub-package implements Backend with OpenGL. The interface is small enough
// to be faked in tests, which means the order of calls made by Build() and
// Renderer.Render() can be checked without a GPU.
//
// Errors are fatal. A shader that fails to compile, a program that fails to
// link and an error reported by the backend during a frame all result in an
// error being returned. The patterns of those errors are in errors.go.
//
// As with all graphics APIs, the functions in this package must be called
// from the thread that owns the graphics context.
package glsl
