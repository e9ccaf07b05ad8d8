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

// Package limiter caps the rate at which frames are drawn.
//
// The render loop calls Wait() once per frame. Wait() blocks until the next
// tick of the limiter, which is produced by a goroutine that corrects itself
// for the time lost to scheduling.
package limiter

import (
	"time"
)

// FpsLimiter will trigger every frames-per-second.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type. A limit of zero or less means that frames are not limited and that
// Wait() will never block.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.setLimit(framesPerSecond)

	if lim.framesPerSecond <= 0 {
		return lim
	}

	// run ticker concurrently
	go func() {
		adjustedSecondPerFrame := lim.secondsPerFrame
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(adjustedSecondPerFrame)
			nt := time.Now()
			adjustedSecondPerFrame -= nt.Sub(t) - lim.secondsPerFrame
			if adjustedSecondPerFrame < 0 {
				adjustedSecondPerFrame = 0
			}
			t = nt
		}
	}()

	return lim
}

func (lim *FpsLimiter) setLimit(framesPerSecond int) {
	lim.framesPerSecond = framesPerSecond
	if framesPerSecond > 0 {
		lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
	}
}

// Limit returns the frames-per-second value used by the limiter. Zero means
// no limit.
func (lim *FpsLimiter) Limit() int {
	if lim.framesPerSecond <= 0 {
		return 0
	}
	return lim.framesPerSecond
}

// Wait until the next tick.
func (lim *FpsLimiter) Wait() {
	if lim.framesPerSecond <= 0 {
		return
	}
	<-lim.tick
}

// HasWaited returns true if the limiter has ticked since the last call to
// Wait() or HasWaited(). It never blocks.
func (lim *FpsLimiter) HasWaited() bool {
	if lim.framesPerSecond <= 0 {
		return true
	}

	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the ticker goroutine. The limiter should not be used after Stop() has
// been called.
func (lim *FpsLimiter) Stop() {
	if lim.framesPerSecond <= 0 {
		return
	}
	close(lim.quit)
}
