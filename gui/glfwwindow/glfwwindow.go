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

// Package glfwwindow opens a window with an OpenGL context using GLFW. It
// implements the gui.Window interface and is an alternative to the sdlwindow
// package.
package glfwwindow

import (
	"fmt"
	"runtime"

	"github.com/glsandbox/tessellate/gui"
	"github.com/glsandbox/tessellate/logger"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the GLFW implementation of gui.Window.
type Window struct {
	window *glfw.Window
}

var _ gui.Window = (*Window)(nil)

// NewWindow is the preferred method of initialisation for the Window type.
// The OpenGL context is current on the calling thread when the function
// returns.
func NewWindow(cfg gui.Config) (*Window, error) {
	// GLFW must be called from the main thread
	runtime.LockOSThread()

	err := glfw.Init()
	if err != nil {
		return nil, fmt.Errorf("glfw: %w", err)
	}
	logger.Logf(logger.Allow, "glfw", "version %s", glfw.GetVersionString())

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win := &Window{}

	win.window, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw: %w", err)
	}
	win.window.MakeContextCurrent()

	logger.Logf(logger.Allow, "glfw", "using GL version %d.%d core",
		win.window.GetAttrib(glfw.ContextVersionMajor),
		win.window.GetAttrib(glfw.ContextVersionMinor))

	glfw.SwapInterval(cfg.SwapInterval)

	return win, nil
}

// Poll implements the gui.Window interface.
func (win *Window) Poll() {
	glfw.PollEvents()
}

// ShouldClose implements the gui.Window interface.
func (win *Window) ShouldClose() bool {
	return win.window.ShouldClose()
}

// Swap implements the gui.Window interface.
func (win *Window) Swap() {
	win.window.SwapBuffers()
}

// FramebufferSize implements the gui.Window interface.
func (win *Window) FramebufferSize() (int, int) {
	return win.window.GetFramebufferSize()
}

// Destroy implements the gui.Window interface.
func (win *Window) Destroy() error {
	if win.window != nil {
		win.window.Destroy()
		win.window = nil
	}
	glfw.Terminate()
	return nil
}
