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

package glsl

import (
	"github.com/glsandbox/tessellate/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

// Primitive is the type of primitive passed to DrawArrays.
type Primitive int

// List of valid Primitive values.
const (
	Patches Primitive = iota
	Triangles
)

func (p Primitive) String() string {
	switch p {
	case Patches:
		return "patches"
	case Triangles:
		return "triangles"
	}
	return "unknown"
}

// Backend is the subset of the graphics API required to build and draw the
// programs. Handles are the object names allocated by the graphics API. Zero
// is never a valid handle.
//
// Functions that can fail do not return an error. Errors are queried with
// GetError() after every call.
type Backend interface {
	CreateProgram() uint32
	DeleteProgram(program uint32)

	CreateShader(stage shaders.Stage) uint32
	DeleteShader(shader uint32)
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)

	// ShaderStatus returns true if the most recent compilation of the shader
	// was successful. The string is the information log for the shader.
	ShaderStatus(shader uint32) (bool, string)

	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)

	// ProgramStatus returns true if the most recent link of the program was
	// successful. The string is the information log for the program.
	ProgramStatus(program uint32) (bool, string)

	// UniformLocation and AttribLocation return -1 if the name is not an
	// active variable in the program.
	UniformLocation(program uint32, name string) int32
	AttribLocation(program uint32, name string) int32

	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	// Clear the color and depth buffers.
	Clear()

	// PolygonMode selects between filled and outlined polygons.
	PolygonMode(wireframe bool)

	UseProgram(program uint32)
	PatchVertices(n int32)
	UniformMatrix4(location int32, m mgl32.Mat4)

	EnableAttrib(index uint32)
	DisableAttrib(index uint32)
	BindArrayBuffer(buffer uint32)

	// AttribPointer describes the attribute at index as tightly packed
	// float32 values of the given size, starting at the beginning of the
	// bound buffer.
	AttribPointer(index uint32, size int32)

	// BufferData replaces the contents of the bound buffer.
	BufferData(data []float32)

	DrawArrays(p Primitive, count int32)

	// GetError returns and clears the oldest error recorded by the graphics
	// API. Zero indicates no error.
	GetError() uint32

	// Info returns the vendor, renderer and version strings of the graphics
	// API.
	Info() (vendor string, renderer string, version string)
}
