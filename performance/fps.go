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

package performance

import (
	"math"
	"time"
)

// the minimum period between measurements.
const samplePeriod = time.Second

// FPSCounter counts frames and periodically converts the count to a
// frames-per-second value.
type FPSCounter struct {
	// time of the most recent measurement
	last time.Time

	// frames since the most recent measurement
	frames int

	// frames since the counter was created
	total int
}

// NewFPSCounter is the preferred method of initialisation for the FPSCounter
// type. The first measurement period begins at the time given.
func NewFPSCounter(now time.Time) *FPSCounter {
	return &FPSCounter{
		last: now,
	}
}

// Tick should be called once per frame. If at least one second has passed
// since the previous measurement then the frames-per-second value is returned
// along with a true value. Otherwise the frame is counted and false is
// returned.
func (c *FPSCounter) Tick(now time.Time) (int, bool) {
	c.frames++
	c.total++

	elapsed := now.Sub(c.last)
	if elapsed < samplePeriod {
		return 0, false
	}

	fps := int(math.Round(float64(c.frames) * 1000 / float64(elapsed.Milliseconds())))
	c.frames = 0
	c.last = now

	return fps, true
}

// Frames returns the number of frames counted since the most recent
// measurement.
func (c *FPSCounter) Frames() int {
	return c.frames
}

// Total returns the number of frames counted since the counter was created.
func (c *FPSCounter) Total() int {
	return c.total
}

// CalcFPS takes the the number of frames and duration (in seconds) and returns
// the frames-per-second.
func CalcFPS(numFrames int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numFrames) / duration
}
