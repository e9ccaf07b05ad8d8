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

package gui

import (
	"strings"

	"github.com/glsandbox/tessellate/curated"
)

// Window defines the operations required by the render loop of a window with
// an OpenGL context.
type Window interface {
	// Poll services the event queue of the window. It must be called once
	// per frame.
	Poll()

	// ShouldClose returns true once the user has asked for the window to be
	// closed.
	ShouldClose() bool

	// Swap the front and back buffers.
	Swap()

	// FramebufferSize returns the size of the drawable area in pixels.
	FramebufferSize() (int, int)

	// Destroy the context and the window.
	Destroy() error
}

// Config describes the window to be opened.
type Config struct {
	Width  int
	Height int
	Title  string

	// version of the OpenGL core profile requested for the context
	GLMajor int
	GLMinor int

	// zero swaps immediately, one waits for the vertical retrace
	SwapInterval int
}

// DefaultConfig returns the configuration of the window used by Tessellate.
func DefaultConfig() Config {
	return Config{
		Width:        1280,
		Height:       960,
		Title:        "HELLO",
		GLMajor:      4,
		GLMinor:      0,
		SwapInterval: 0,
	}
}

// Sentinal error patterns.
const (
	UnknownProvider = "gui: unknown window provider: %s"
)

// Provider is the library used to create the window and its context.
type Provider int

// List of valid Provider values.
const (
	ProviderSDL Provider = iota
	ProviderGLFW
)

func (p Provider) String() string {
	switch p {
	case ProviderSDL:
		return "sdl"
	case ProviderGLFW:
		return "glfw"
	}
	return "unknown"
}

// ParseProvider converts a string to a Provider. The comparison is case
// insensitive.
func ParseProvider(s string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sdl":
		return ProviderSDL, nil
	case "glfw":
		return ProviderGLFW, nil
	}
	return ProviderSDL, curated.Errorf(UnknownProvider, s)
}
