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

package main

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/glsandbox/tessellate/curated"
	"github.com/glsandbox/tessellate/glsl"
	"github.com/glsandbox/tessellate/glsl/glsltest"
	"github.com/glsandbox/tessellate/performance/limiter"
	"github.com/glsandbox/tessellate/prefs"
	"github.com/glsandbox/tessellate/scene"
	"github.com/glsandbox/tessellate/test"
)

func TestVersionMode(t *testing.T) {
	var stdout, stderr strings.Builder
	test.ExpectEquality(t, launch(&stdout, &stderr, []string{"VERSION"}), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(stdout.String(), "Tessellate "))
	test.ExpectEquality(t, stderr.String(), "")
}

func TestHelp(t *testing.T) {
	var stdout, stderr strings.Builder
	test.ExpectEquality(t, launch(&stdout, &stderr, []string{"EVAL", "-help"}), exitOK)
	test.ExpectSuccess(t, strings.Contains(stdout.String(), "-variant"))
}

func TestArgumentErrors(t *testing.T) {
	var stdout, stderr strings.Builder

	test.ExpectEquality(t, launch(&stdout, &stderr, []string{"SHADERS", "-variant", "D"}), exitParseError)
	test.ExpectSuccess(t, strings.Contains(stderr.String(), "unknown variant: D"))

	stderr.Reset()
	test.ExpectEquality(t, launch(&stdout, &stderr, []string{"EVAL", "-nonsense"}), exitParseError)
	test.ExpectSuccess(t, strings.HasPrefix(stderr.String(), "* error in EVAL mode"))

	stderr.Reset()
	test.ExpectEquality(t, launch(&stdout, &stderr, []string{"VERSION", "extra"}), exitParseError)
	test.ExpectSuccess(t, strings.Contains(stderr.String(), "unexpected argument: extra"))
}

func TestExitStatus(t *testing.T) {
	test.ExpectEquality(t, exitStatus(nil), exitOK)
	test.ExpectEquality(t, exitStatus(errors.New("plain")), exitModeError)
	test.ExpectEquality(t, exitStatus(curated.Errorf("glsl: %s program: link: %s", "sphere", "failed")), exitModeError)
	test.ExpectEquality(t, exitStatus(curated.Errorf(argumentError, "bad flag")), exitParseError)
	test.ExpectEquality(t, exitStatus(curated.Errorf("run: %v", curated.Errorf(argumentError, "bad flag"))), exitParseError)
}

func TestMalformedShaderExitStatus(t *testing.T) {
	prg, err := glsl.Build(glsltest.NewBackend(), glsltest.Malformed())
	test.ExpectSuccess(t, prg == nil)
	test.DemandFailure(t, err)
	test.ExpectEquality(t, exitStatus(err), exitModeError)

	b := glsltest.NewBackend()
	b.FailLink = true
	_, err = glsl.NewRenderer(b, scene.VariantA, glsl.Options{})
	test.DemandFailure(t, err)
	test.ExpectEquality(t, exitStatus(err), exitModeError)
}

func TestShadersMode(t *testing.T) {
	var stdout, stderr strings.Builder
	test.DemandEquality(t, launch(&stdout, &stderr, []string{"SHADERS", "-variant", "B", "-corrected"}), exitOK)

	s := stdout.String()
	test.ExpectSuccess(t, strings.Contains(s, "// sphere program: tessellation control stage\n#version 400\n#define TESS_LEVEL 100.0\n"))
	test.ExpectSuccess(t, strings.Contains(s, "// sphere program: tessellation evaluation stage\n#version 400\n#define CORRECTED_SPHERE\n"))
	test.ExpectSuccess(t, strings.Contains(s, "// flat program: fragment stage\n"))
	test.ExpectEquality(t, strings.Count(s, "#version 400"), 6)
}

func TestEvalMode(t *testing.T) {
	var stdout, stderr strings.Builder
	test.DemandEquality(t, launch(&stdout, &stderr, []string{"EVAL", "-corrected"}), exitOK)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	test.DemandSuccess(t, len(lines) > 1)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "variant A: corrected: "))

	// the pre-normalisation point at u=0, v=0.5 on the default patch
	var found bool
	for _, l := range lines[1:] {
		if strings.HasPrefix(l, "0.0000 0.5000 -> ") {
			found = true
			test.ExpectSuccess(t, strings.HasPrefix(l, "0.0000 0.5000 -> 0.100000 "), l)
			test.ExpectSuccess(t, strings.HasSuffix(l, " -0.900000"), l)
		}
	}
	test.ExpectSuccess(t, found)

	// negative radius is not a sphere
	stdout.Reset()
	test.ExpectEquality(t, launch(&stdout, &stderr, []string{"EVAL", "-r", "-1"}), exitModeError)
}

func TestPreferences(t *testing.T) {
	prefs.PushCommandLineStack("tessellate.corrected::true; tessellate.fpscap::30")
	defer prefs.PopCommandLineStack()

	p, err := newPreferences(false, true, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.corrected.Get().(bool), true)
	test.ExpectEquality(t, p.wireframe.Get().(bool), true)
	test.ExpectEquality(t, p.fpsCap.Get().(int), 30)

	_, err = newPreferences(false, false, -1)
	test.ExpectFailure(t, err)
}

// fakeWindow closes after a fixed number of frames.
type fakeWindow struct {
	frames int
	polls  int
	swaps  int
}

func (win *fakeWindow) Poll()                       { win.polls++ }
func (win *fakeWindow) ShouldClose() bool           { return win.polls >= win.frames }
func (win *fakeWindow) Swap()                       { win.swaps++ }
func (win *fakeWindow) FramebufferSize() (int, int) { return 1280, 960 }
func (win *fakeWindow) Destroy() error              { return nil }

type fakeRenderer struct {
	frames int
	failAt int
}

func (rnd *fakeRenderer) Render(f *scene.Frame) error {
	rnd.frames++
	if rnd.failAt > 0 && rnd.frames == rnd.failAt {
		return errors.New("render failed")
	}
	f.Advance()
	return nil
}

// fakeClock advances by a fixed step every time it is read.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestLoop(t *testing.T) {
	win := &fakeWindow{frames: 150}
	rnd := &fakeRenderer{}
	clk := &fakeClock{t: time.Unix(0, 0), step: time.Second / 60}
	out := &test.CompareWriter{}

	lim := limiter.NewFPSLimiter(0)
	lp := newLoop(win, rnd, lim, out, clk.now)
	test.DemandSuccess(t, lp.run())

	test.ExpectEquality(t, rnd.frames, 150)
	test.ExpectEquality(t, win.swaps, 150)
	test.ExpectEquality(t, lp.frame.Counter(), 150)

	// sixty frames every second for two and a half seconds
	test.ExpectSuccess(t, out.Compare("FPS: 60\nFPS: 60\n"), out.String())
	test.ExpectEquality(t, len(out.Lines()), 2)
}

func TestLoopRenderError(t *testing.T) {
	win := &fakeWindow{frames: 100}
	rnd := &fakeRenderer{failAt: 10}
	clk := &fakeClock{t: time.Unix(0, 0), step: time.Millisecond}

	lp := newLoop(win, rnd, limiter.NewFPSLimiter(0), &test.CompareWriter{}, clk.now)
	err := lp.run()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, rnd.frames, 10)
	test.ExpectEquality(t, win.swaps, 9)
}

func TestLoopInterrupt(t *testing.T) {
	win := &fakeWindow{frames: 100}
	rnd := &fakeRenderer{}
	clk := &fakeClock{t: time.Unix(0, 0), step: time.Millisecond}

	lp := newLoop(win, rnd, limiter.NewFPSLimiter(0), &test.CompareWriter{}, clk.now)
	lp.intChan = make(chan os.Signal, 1)
	lp.intChan <- os.Interrupt

	test.ExpectSuccess(t, lp.run())
	test.ExpectEquality(t, rnd.frames, 0)
}

func TestLoopDuration(t *testing.T) {
	win := &fakeWindow{frames: 1000}
	rnd := &fakeRenderer{}
	clk := &fakeClock{t: time.Unix(0, 0), step: 10 * time.Millisecond}

	lp := newLoop(win, rnd, limiter.NewFPSLimiter(0), &test.CompareWriter{}, clk.now)
	lp.duration = 500 * time.Millisecond
	test.ExpectSuccess(t, lp.run())
	test.ExpectEquality(t, rnd.frames, 50)
}
