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

// Package native implements the glsl.Backend interface with OpenGL 4.1 core
// profile bindings. The context must be current on the calling thread before
// New() is called and every method must be called from that thread.
package native

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/glsandbox/tessellate/glsl"
	"github.com/glsandbox/tessellate/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Backend is the OpenGL implementation of glsl.Backend.
type Backend struct{}

// New initialises the OpenGL function pointers for the current context.
func New() (*Backend, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("glsl: %w", err)
	}
	return &Backend{}, nil
}

var _ glsl.Backend = (*Backend)(nil)

func (b *Backend) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (b *Backend) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (b *Backend) CreateShader(stage shaders.Stage) uint32 {
	switch stage {
	case shaders.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case shaders.StageTessControl:
		return gl.CreateShader(gl.TESS_CONTROL_SHADER)
	case shaders.StageTessEvaluation:
		return gl.CreateShader(gl.TESS_EVALUATION_SHADER)
	case shaders.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return 0
}

func (b *Backend) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (b *Backend) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
}

func (b *Backend) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (b *Backend) ShaderStatus(shader uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return status == gl.TRUE, ""
	}

	// the length includes the NULL character
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

	return status == gl.TRUE, strings.TrimRight(log, "\x00")
}

func (b *Backend) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (b *Backend) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (b *Backend) ProgramStatus(program uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return status == gl.TRUE, ""
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

	return status == gl.TRUE, strings.TrimRight(log, "\x00")
}

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (b *Backend) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (b *Backend) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (b *Backend) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (b *Backend) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (b *Backend) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (b *Backend) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (b *Backend) Clear() {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *Backend) PolygonMode(wireframe bool) {
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (b *Backend) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (b *Backend) PatchVertices(n int32) {
	gl.PatchParameteri(gl.PATCH_VERTICES, n)
}

func (b *Backend) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (b *Backend) EnableAttrib(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (b *Backend) DisableAttrib(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (b *Backend) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

func (b *Backend) AttribPointer(index uint32, size int32) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, 0, 0)
}

func (b *Backend) BufferData(data []float32) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STREAM_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*int(unsafe.Sizeof(data[0])), gl.Ptr(data), gl.STREAM_DRAW)
}

func (b *Backend) DrawArrays(p glsl.Primitive, count int32) {
	switch p {
	case glsl.Patches:
		gl.DrawArrays(gl.PATCHES, 0, count)
	case glsl.Triangles:
		gl.DrawArrays(gl.TRIANGLES, 0, count)
	}
}

func (b *Backend) GetError() uint32 {
	return gl.GetError()
}

func (b *Backend) Info() (string, string, string) {
	return gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VERSION))
}
