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

// Package sdlwindow opens a window with an OpenGL context using SDL. It
// implements the gui.Window interface.
package sdlwindow

import (
	"fmt"
	"runtime"

	"github.com/glsandbox/tessellate/gui"
	"github.com/glsandbox/tessellate/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Window is the SDL implementation of gui.Window.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext
	close     bool
}

var _ gui.Window = (*Window)(nil)

// NewWindow is the preferred method of initialisation for the Window type.
// The OpenGL context is current on the calling thread when the function
// returns.
func NewWindow(cfg gui.Config) (*Window, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, cfg.GLMajor},
		{sdl.GL_CONTEXT_MINOR_VERSION, cfg.GLMinor},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attrs {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	win := &Window{}

	win.window, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	win.glContext, err = win.window.GLCreateContext()
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = win.window.GLMakeCurrent(win.glContext)
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	major, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	minor, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core", major, minor)

	err = sdl.GLSetSwapInterval(cfg.SwapInterval)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %s", cfg.SwapInterval, err.Error())
	}

	return win, nil
}

// Poll implements the gui.Window interface.
func (win *Window) Poll() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			win.close = true
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_CLOSE {
				win.close = true
			}
		}
	}
}

// ShouldClose implements the gui.Window interface.
func (win *Window) ShouldClose() bool {
	return win.close
}

// Swap implements the gui.Window interface.
func (win *Window) Swap() {
	win.window.GLSwap()
}

// FramebufferSize implements the gui.Window interface.
func (win *Window) FramebufferSize() (int, int) {
	w, h := win.window.GLGetDrawableSize()
	return int(w), int(h)
}

// Destroy implements the gui.Window interface.
func (win *Window) Destroy() error {
	if win.glContext != nil {
		sdl.GLDeleteContext(win.glContext)
		win.glContext = nil
	}

	if win.window != nil {
		err := win.window.Destroy()
		if err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
		win.window = nil
	}
	sdl.Quit()

	return nil
}
