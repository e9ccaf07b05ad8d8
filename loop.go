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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/glsandbox/tessellate/gui"
	"github.com/glsandbox/tessellate/logger"
	"github.com/glsandbox/tessellate/performance"
	"github.com/glsandbox/tessellate/performance/limiter"
	"github.com/glsandbox/tessellate/scene"
)

// renderer is satisfied by glsl.Renderer.
type renderer interface {
	Render(*scene.Frame) error
}

// loop is the render loop for the RUN mode. It owns the frame state and the
// FPS counter.
type loop struct {
	win    gui.Window
	rnd    renderer
	lim    *limiter.FpsLimiter
	output io.Writer
	now    func() time.Time

	frame *scene.Frame
	fps   *performance.FPSCounter

	// the loop ends when a value is received. can be nil
	intChan chan os.Signal

	// the loop ends when the duration has elapsed. zero means no limit
	duration time.Duration
}

func newLoop(win gui.Window, rnd renderer, lim *limiter.FpsLimiter, output io.Writer, now func() time.Time) *loop {
	return &loop{
		win:    win,
		rnd:    rnd,
		lim:    lim,
		output: output,
		now:    now,
		frame:  scene.NewFrame(),
	}
}

// run draws frames until the window is closed, an interrupt is received or
// the duration has elapsed. A render error ends the loop immediately and is
// returned.
func (lp *loop) run() error {
	start := lp.now()
	lp.fps = performance.NewFPSCounter(start)

	defer func() {
		elapsed := lp.now().Sub(start).Seconds()
		logger.Logf(logger.Allow, "tessellate", "%d frames in %.2f seconds (%.2f fps)",
			lp.fps.Total(), elapsed, performance.CalcFPS(lp.fps.Total(), elapsed))
	}()

	for !lp.win.ShouldClose() {
		select {
		case <-lp.intChan:
			logger.Log(logger.Allow, "tessellate", "interrupted")
			return nil
		default:
		}

		err := lp.rnd.Render(lp.frame)
		if err != nil {
			return err
		}

		lp.lim.Wait()
		lp.win.Swap()
		lp.win.Poll()

		now := lp.now()
		if fps, ok := lp.fps.Tick(now); ok {
			fmt.Fprintf(lp.output, "FPS: %d\n", fps)
			logger.Logf(logger.Allow, "fps", "%d", fps)
		}

		if lp.duration > 0 && now.Sub(start) >= lp.duration {
			logger.Logf(logger.Allow, "tessellate", "duration of %v elapsed", lp.duration)
			return nil
		}
	}

	return nil
}
