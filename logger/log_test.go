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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/glsandbox/tessellate/logger"
	"github.com/glsandbox/tessellate/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "glsl", "sphere program linked")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "glsl: sphere program linked\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "fps", "60")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "glsl: sphere program linked\nfps: 60\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "glsl: sphere program linked\nfps: 60\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "glsl: sphere program linked\nfps: 60\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "fps: 60\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "fps", "60")
	log.Log(logger.Allow, "fps", "60")
	log.Log(logger.Allow, "fps", "60")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "fps: 60 (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestMultilineDetail(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "glsl", "0(3) : error C0000: syntax error\n0(4) : error C0001: unexpected token\n")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "glsl: 0(3) : error C0000: syntax error 0(4) : error C0001: unexpected token\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	echo := &test.CompareWriter{}

	log.SetEcho(echo)
	log.Log(logger.Allow, "tessellate", "variant A")
	test.ExpectSuccess(t, echo.Compare("tessellate: variant A\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "tessellate", "variant B")
	test.ExpectSuccess(t, echo.Compare("tessellate: variant A\n"))
}

type fpsGate struct {
	frames int
}

// only allow logging on every tenth frame
func (g fpsGate) AllowLogging() bool {
	return g.frames%10 == 0
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var g fpsGate
	for g.frames = 0; g.frames < 35; g.frames++ {
		log.Logf(g, "fps", "frame %d", g.frames)
	}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "fps: frame 0\nfps: frame 10\nfps: frame 20\nfps: frame 30\n")
}

type variantName struct{}

func (variantName) String() string {
	return "variant C"
}

func TestDetailTypes(t *testing.T) {
	err := errors.New("link failed")

	for _, c := range []struct {
		detail   any
		expected string
	}{
		{detail: err, expected: "tag: link failed\n"},
		{detail: variantName{}, expected: "tag: variant C\n"},
		{detail: 100, expected: "tag: 100\n"},
		{detail: 0.5, expected: "tag: 0.5\n"},
	} {
		log := logger.NewLogger(10)
		w := &strings.Builder{}
		log.Log(logger.Allow, "tag", c.detail)
		log.Write(w)
		test.ExpectEquality(t, w.String(), c.expected)
	}

	// errors can be wrapped with the %v verb
	log := logger.NewLogger(10)
	w := &strings.Builder{}
	log.Logf(logger.Allow, "glsl", "sphere program: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "glsl: sphere program: link failed\n")
}
