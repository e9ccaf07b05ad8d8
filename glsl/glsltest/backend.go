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

package glsltest

import (
	"fmt"
	"strings"

	"github.com/glsandbox/tessellate/glsl"
	"github.com/glsandbox/tessellate/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

// Backend implements glsl.Backend without a GL context. It records every call
// made to it. Shader sources are "compiled" by checking that they begin with a
// version directive and that their braces balance.
type Backend struct {
	Calls []string

	next    uint32
	Sources map[uint32]string
	Live    map[uint32]bool

	// the information log returned for a failed compilation. if empty then a
	// description of the fault is used
	CompileLog string

	// suppress the information log completely
	EmptyLog bool

	// link will fail if true
	FailLink bool

	// names missing from the linked program
	Missing map[string]bool

	// error returned by GetError() after the call with the prefix
	FailOn   string
	FailCode uint32
	pending  uint32

	Uploads [][]float32
	MVP     []mgl32.Mat4
}

var _ glsl.Backend = (*Backend)(nil)

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend() *Backend {
	return &Backend{
		Sources: make(map[uint32]string),
		Live:    make(map[uint32]bool),
		Missing: make(map[string]bool),
	}
}

func (b *Backend) record(s string, args ...any) {
	c := fmt.Sprintf(s, args...)
	b.Calls = append(b.Calls, c)
	if b.FailOn != "" && strings.HasPrefix(c, b.FailOn) {
		b.pending = b.FailCode
	}
}

func (b *Backend) handle() uint32 {
	b.next++
	b.Live[b.next] = true
	return b.next
}

func (b *Backend) release(h uint32) {
	delete(b.Live, h)
}

// Count returns the number of calls that begin with the prefix.
func (b *Backend) Count(prefix string) int {
	var n int
	for _, c := range b.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (b *Backend) CreateProgram() uint32 {
	h := b.handle()
	b.record("CreateProgram %d", h)
	return h
}

func (b *Backend) DeleteProgram(program uint32) {
	b.record("DeleteProgram %d", program)
	b.release(program)
}

func (b *Backend) CreateShader(stage shaders.Stage) uint32 {
	h := b.handle()
	b.record("CreateShader %s %d", stage, h)
	return h
}

func (b *Backend) DeleteShader(shader uint32) {
	b.record("DeleteShader %d", shader)
	b.release(shader)
}

func (b *Backend) ShaderSource(shader uint32, source string) {
	b.record("ShaderSource %d", shader)
	b.Sources[shader] = source
}

func (b *Backend) CompileShader(shader uint32) {
	b.record("CompileShader %d", shader)
}

func (b *Backend) ShaderStatus(shader uint32) (bool, string) {
	b.record("ShaderStatus %d", shader)

	src := b.Sources[shader]
	var fault string
	if !strings.HasPrefix(src, "#version") {
		fault = "0(1) : error C0204: version directive must be first statement"
	} else if strings.Count(src, "{") != strings.Count(src, "}") {
		fault = "0(99) : error C0000: syntax error, unexpected end of file"
	}

	if fault == "" {
		return true, ""
	}
	if b.EmptyLog {
		return false, "\x00"
	}
	if b.CompileLog != "" {
		return false, b.CompileLog
	}
	return false, fault + "\n\x00"
}

func (b *Backend) AttachShader(program uint32, shader uint32) {
	b.record("AttachShader %d %d", program, shader)
}

func (b *Backend) LinkProgram(program uint32) {
	b.record("LinkProgram %d", program)
}

func (b *Backend) ProgramStatus(program uint32) (bool, string) {
	b.record("ProgramStatus %d", program)
	if b.FailLink {
		if b.EmptyLog {
			return false, ""
		}
		return false, "error: tessellation evaluation shader has no input primitive"
	}
	return true, ""
}

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	b.record("UniformLocation %d %s", program, name)
	if b.Missing[name] {
		return -1
	}
	return 0
}

func (b *Backend) AttribLocation(program uint32, name string) int32 {
	b.record("AttribLocation %d %s", program, name)
	if b.Missing[name] {
		return -1
	}
	switch name {
	case "in_position":
		return 0
	case "in_color":
		return 1
	}
	return -1
}

func (b *Backend) GenBuffer() uint32 {
	h := b.handle()
	b.record("GenBuffer %d", h)
	return h
}

func (b *Backend) DeleteBuffer(buffer uint32) {
	b.record("DeleteBuffer %d", buffer)
	b.release(buffer)
}

func (b *Backend) GenVertexArray() uint32 {
	h := b.handle()
	b.record("GenVertexArray %d", h)
	return h
}

func (b *Backend) BindVertexArray(vao uint32) {
	b.record("BindVertexArray %d", vao)
}

func (b *Backend) DeleteVertexArray(vao uint32) {
	b.record("DeleteVertexArray %d", vao)
	b.release(vao)
}

func (b *Backend) Clear() {
	b.record("Clear")
}

func (b *Backend) PolygonMode(wireframe bool) {
	b.record("PolygonMode %v", wireframe)
}

func (b *Backend) UseProgram(program uint32) {
	b.record("UseProgram %d", program)
}

func (b *Backend) PatchVertices(n int32) {
	b.record("PatchVertices %d", n)
}

func (b *Backend) UniformMatrix4(location int32, m mgl32.Mat4) {
	b.record("UniformMatrix4 %d", location)
	b.MVP = append(b.MVP, m)
}

func (b *Backend) EnableAttrib(index uint32) {
	b.record("EnableAttrib %d", index)
}

func (b *Backend) DisableAttrib(index uint32) {
	b.record("DisableAttrib %d", index)
}

func (b *Backend) BindArrayBuffer(buffer uint32) {
	b.record("BindArrayBuffer %d", buffer)
}

func (b *Backend) AttribPointer(index uint32, size int32) {
	b.record("AttribPointer %d %d", index, size)
}

func (b *Backend) BufferData(data []float32) {
	b.record("BufferData %d", len(data))
	d := make([]float32, len(data))
	copy(d, data)
	b.Uploads = append(b.Uploads, d)
}

func (b *Backend) DrawArrays(p glsl.Primitive, count int32) {
	b.record("DrawArrays %s %d", p, count)
}

func (b *Backend) GetError() uint32 {
	code := b.pending
	b.pending = 0
	return code
}

func (b *Backend) Info() (string, string, string) {
	return "fake vendor", "fake renderer", "4.0 fake"
}

// Malformed returns a program with a fragment stage that does not compile.
func Malformed() shaders.Program {
	return shaders.Program{
		Name: "broken",
		Sources: []shaders.Source{
			{Stage: shaders.StageVertex, Text: "#version 400\nvoid main() {}\n"},
			{Stage: shaders.StageFragment, Text: "#version 400\nvoid main() {\n"},
		},
	}
}
