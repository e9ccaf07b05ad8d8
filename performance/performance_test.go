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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glsandbox/tessellate/curated"
	"github.com/glsandbox/tessellate/performance"
	"github.com/glsandbox/tessellate/test"
)

func TestFPSCounter(t *testing.T) {
	start := time.Unix(0, 0)
	c := performance.NewFPSCounter(start)

	// sixty frames over exactly one second
	for i := 1; i < 60; i++ {
		fps, ok := c.Tick(start.Add(time.Duration(i) * time.Second / 60))
		test.DemandFailure(t, ok, i)
		test.ExpectEquality(t, fps, 0)
	}
	fps, ok := c.Tick(start.Add(time.Second))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, fps, 60)

	// the frame count is reset after a measurement
	test.ExpectEquality(t, c.Frames(), 0)
	test.ExpectEquality(t, c.Total(), 60)
}

func TestFPSCounterNoSample(t *testing.T) {
	start := time.Unix(0, 0)
	c := performance.NewFPSCounter(start)

	// thirty frames over half a second is not enough for a measurement. only
	// the tally changes
	for i := 1; i <= 30; i++ {
		_, ok := c.Tick(start.Add(time.Duration(i) * 500 * time.Millisecond / 30))
		test.ExpectFailure(t, ok, i)
	}
	test.ExpectEquality(t, c.Frames(), 30)
	test.ExpectEquality(t, c.Total(), 30)

	// a late frame completes the measurement. 31 frames in 1500ms
	fps, ok := c.Tick(start.Add(1500 * time.Millisecond))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, fps, 21)
}

func TestCalcFPS(t *testing.T) {
	test.ExpectApproximate(t, performance.CalcFPS(600, 10.0), 60.0, 0.0001)
	test.ExpectEquality(t, performance.CalcFPS(600, 0), 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("cpu, TRACE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,trace")

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfile("cpu,gpu")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestRunProfiler(t *testing.T) {
	sentinal := errors.New("sentinal")

	err := performance.RunProfiler(performance.ProfileNone, "", func() error {
		return sentinal
	})
	test.ExpectSuccess(t, errors.Is(err, sentinal))

	header := filepath.Join(t.TempDir(), "tessellate")

	var ran bool
	err = performance.RunProfiler(performance.ProfileMem, header, func() error {
		ran = true
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(header + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_cpu.profile")
	test.ExpectFailure(t, err)
}
