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

package gui_test

import (
	"testing"

	"github.com/glsandbox/tessellate/curated"
	"github.com/glsandbox/tessellate/gui"
	"github.com/glsandbox/tessellate/test"
)

func TestDefaultConfig(t *testing.T) {
	c := gui.DefaultConfig()
	test.ExpectEquality(t, c.Width, 1280)
	test.ExpectEquality(t, c.Height, 960)
	test.ExpectEquality(t, c.Title, "HELLO")
	test.ExpectEquality(t, c.GLMajor, 4)
	test.ExpectEquality(t, c.GLMinor, 0)
	test.ExpectEquality(t, c.SwapInterval, 0)
}

func TestParseProvider(t *testing.T) {
	p, err := gui.ParseProvider("SDL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, gui.ProviderSDL)

	p, err = gui.ParseProvider(" glfw ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, gui.ProviderGLFW)
	test.ExpectEquality(t, p.String(), "glfw")

	_, err = gui.ParseProvider("wayland")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gui.UnknownProvider))
	test.ExpectEquality(t, err.Error(), "gui: unknown window provider: wayland")
}
