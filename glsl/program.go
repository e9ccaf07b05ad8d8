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
	"strings"

	"github.com/glsandbox/tessellate/curated"
	"github.com/glsandbox/tessellate/logger"
	"github.com/glsandbox/tessellate/shaders"
)

// names of the variables shared by all programs.
const (
	uniformMVP        = "MVP"
	attributePosition = "in_position"
	attributeColor    = "in_color"
)

// Program is a linked shader program along with the locations of its
// variables and the buffers that feed its attributes.
type Program struct {
	Name   string
	Handle uint32

	// uniform
	MVP int32

	// attributes
	Position uint32
	Color    uint32

	PositionBuffer uint32
	ColorBuffer    uint32
}

// diagnostic tidies the information log of a shader or program.
func diagnostic(log string) string {
	log = strings.TrimRight(log, "\x00")
	log = strings.TrimSpace(log)
	if log == "" {
		return noDiagnostic
	}
	return log
}

// Build compiles every stage of the program and links them. If any stage fails
// to compile or if the program fails to link then an error is returned and any
// objects created by the backend are released.
func Build(b Backend, p shaders.Program) (*Program, error) {
	handle := b.CreateProgram()

	// shader objects attached to the program
	var attached []uint32

	release := func() {
		for _, sh := range attached {
			b.DeleteShader(sh)
		}
		b.DeleteProgram(handle)
	}

	for _, src := range p.Sources {
		sh := b.CreateShader(src.Stage)
		b.ShaderSource(sh, src.Text)
		b.CompileShader(sh)

		ok, log := b.ShaderStatus(sh)
		if !ok {
			b.DeleteShader(sh)
			release()
			return nil, curated.Errorf(ShaderCompileError, p.Name, src.Stage, diagnostic(log))
		}
		logger.Logf(logger.Allow, "glsl", "%s program: %s stage: compiled", p.Name, src.Stage)

		b.AttachShader(handle, sh)
		attached = append(attached, sh)
	}

	b.LinkProgram(handle)
	ok, log := b.ProgramStatus(handle)
	if !ok {
		release()
		return nil, curated.Errorf(ProgramLinkError, p.Name, diagnostic(log))
	}
	logger.Logf(logger.Allow, "glsl", "%s program: linked", p.Name)

	// now that the program has linked we no longer need the individual shader
	// objects
	for _, sh := range attached {
		b.DeleteShader(sh)
	}
	attached = attached[:0]

	prg := &Program{
		Name:   p.Name,
		Handle: handle,
		MVP:    b.UniformLocation(handle, uniformMVP),
	}
	if prg.MVP < 0 {
		release()
		return nil, curated.Errorf(MissingUniform, p.Name, uniformMVP)
	}

	pos := b.AttribLocation(handle, attributePosition)
	if pos < 0 {
		release()
		return nil, curated.Errorf(MissingAttribute, p.Name, attributePosition)
	}
	prg.Position = uint32(pos)

	col := b.AttribLocation(handle, attributeColor)
	if col < 0 {
		release()
		return nil, curated.Errorf(MissingAttribute, p.Name, attributeColor)
	}
	prg.Color = uint32(col)

	prg.PositionBuffer = b.GenBuffer()
	prg.ColorBuffer = b.GenBuffer()

	return prg, nil
}

// Destroy releases the buffers and the program object.
func (prg *Program) Destroy(b Backend) {
	if prg.PositionBuffer != 0 {
		b.DeleteBuffer(prg.PositionBuffer)
		prg.PositionBuffer = 0
	}
	if prg.ColorBuffer != 0 {
		b.DeleteBuffer(prg.ColorBuffer)
		prg.ColorBuffer = 0
	}
	if prg.Handle != 0 {
		b.DeleteProgram(prg.Handle)
		prg.Handle = 0
	}
}
