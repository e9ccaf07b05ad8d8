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
	"github.com/glsandbox/tessellate/curated"
	"github.com/glsandbox/tessellate/logger"
	"github.com/glsandbox/tessellate/scene"
	"github.com/glsandbox/tessellate/shaders"
	"github.com/glsandbox/tessellate/tessellation"
)

// Options changes how the scene is drawn.
type Options struct {
	// draw the sphere at the centre and radius of the patch rather than the
	// normalised position
	Corrected bool

	// draw polygons as outlines
	Wireframe bool
}

// Renderer draws every frame of a scene.Variant.
type Renderer struct {
	b       Backend
	variant scene.Variant
	opts    Options

	vao    uint32
	sphere *Program
	flat   *Program

	// the first error reported by the backend during the current frame. no
	// backend calls are made once err is not nil
	err error
}

// NewRenderer builds the programs for the variant. Errors from Build() are
// returned unchanged.
func NewRenderer(b Backend, variant scene.Variant, opts Options) (*Renderer, error) {
	r := &Renderer{
		b:       b,
		variant: variant,
		opts:    opts,
	}

	vendor, renderer, version := b.Info()
	logger.Logf(logger.Allow, "glsl", "vendor: %s", vendor)
	logger.Logf(logger.Allow, "glsl", "renderer: %s", renderer)
	logger.Logf(logger.Allow, "glsl", "driver: %s", version)

	prgs := shaders.ForVariant(variant, opts.Corrected)

	var err error
	r.sphere, err = Build(b, prgs[0])
	if err != nil {
		return nil, err
	}
	r.flat, err = Build(b, prgs[1])
	if err != nil {
		r.sphere.Destroy(b)
		return nil, err
	}

	// a core profile context requires a vertex array object to be bound
	// before any draw
	r.step("generate vertex array", func() {
		r.vao = b.GenVertexArray()
	})
	r.step("bind vertex array", func() {
		b.BindVertexArray(r.vao)
	})

	if opts.Wireframe {
		r.step("polygon mode", func() {
			b.PolygonMode(true)
		})
	}

	if !variant.PatchVerticesEveryFrame() {
		r.step("patch vertices", func() {
			b.PatchVertices(1)
		})
	}

	if r.err != nil {
		err := r.err
		r.Destroy()
		return nil, err
	}

	logger.Logf(logger.Allow, "glsl", "renderer: variant %s: corrected %v: wireframe %v", variant, opts.Corrected, opts.Wireframe)

	return r, nil
}

// Destroy releases all objects created by the renderer.
func (r *Renderer) Destroy() {
	if r.sphere != nil {
		r.sphere.Destroy(r.b)
		r.sphere = nil
	}
	if r.flat != nil {
		r.flat.Destroy(r.b)
		r.flat = nil
	}
	if r.vao != 0 {
		r.b.DeleteVertexArray(r.vao)
		r.vao = 0
	}
}

// Variant returns the variant the renderer was created for.
func (r *Renderer) Variant() scene.Variant {
	return r.variant
}

// step calls fn and checks the backend for an error. If an earlier step has
// failed fn is not called.
func (r *Renderer) step(op string, fn func()) {
	if r.err != nil {
		return
	}
	fn()
	if code := r.b.GetError(); code != errNone {
		r.err = curated.Errorf(BackendError, code, errorName(code), op)
	}
}

// Render advances the frame by one step of the animation and draws it. The
// first backend error ends the frame early and is returned.
func (r *Renderer) Render(f *scene.Frame) error {
	r.err = nil

	r.step("clear", func() {
		r.b.Clear()
	})
	if r.err != nil {
		return r.err
	}

	f.Advance()
	if err := f.Validate(); err != nil {
		return err
	}

	r.drawSpheres(f)
	r.drawTriangles(f)

	return r.err
}

func (r *Renderer) drawSpheres(f *scene.Frame) {
	prg := r.sphere

	r.step("use sphere program", func() {
		r.b.UseProgram(prg.Handle)
	})

	if r.variant.PatchVerticesEveryFrame() {
		r.step("patch vertices", func() {
			r.b.PatchVertices(1)
		})
	}

	r.step("sphere MVP", func() {
		r.b.UniformMatrix4(prg.MVP, f.MVP)
	})

	r.attribute("sphere position", prg.Position, prg.PositionBuffer, tessellation.PatchSize, scene.PatchData(f.Spheres))
	r.attribute("sphere color", prg.Color, prg.ColorBuffer, tessellation.ColorSize, scene.SphereColorData(f.Spheres))

	r.step("draw patches", func() {
		r.b.DrawArrays(Patches, int32(len(f.Spheres)))
	})

	r.step("disable sphere color", func() {
		r.b.DisableAttrib(prg.Color)
	})
	r.step("disable sphere position", func() {
		r.b.DisableAttrib(prg.Position)
	})
}

func (r *Renderer) drawTriangles(f *scene.Frame) {
	prg := r.flat

	r.step("use flat program", func() {
		r.b.UseProgram(prg.Handle)
	})

	r.step("flat MVP", func() {
		r.b.UniformMatrix4(prg.MVP, f.MVP)
	})

	r.attribute("triangle position", prg.Position, prg.PositionBuffer, scene.TriangleVertexSize, scene.TrianglePositionData(f.Triangles))
	r.attribute("triangle color", prg.Color, prg.ColorBuffer, tessellation.ColorSize, scene.TriangleColorData(f.Triangles))

	r.step("draw triangles", func() {
		r.b.DrawArrays(Triangles, int32(len(f.Triangles)))
	})

	r.step("disable triangle color", func() {
		r.b.DisableAttrib(prg.Color)
	})
	r.step("disable triangle position", func() {
		r.b.DisableAttrib(prg.Position)
	})
}

// attribute enables the attribute and uploads the data to the buffer that
// feeds it.
func (r *Renderer) attribute(name string, index uint32, buffer uint32, size int32, data []float32) {
	r.step(name+": enable", func() {
		r.b.EnableAttrib(index)
	})
	r.step(name+": bind", func() {
		r.b.BindArrayBuffer(buffer)
	})
	r.step(name+": pointer", func() {
		r.b.AttribPointer(index, size)
	})
	r.step(name+": upload", func() {
		r.b.BufferData(data)
	})
}
