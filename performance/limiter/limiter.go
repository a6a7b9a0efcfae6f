// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. The play window uses it to hold frame updates to the NTSC
// refresh rate.
//
//	lmtr := limiter.NewFPSLimiter(clocks.FramesPerSecond)
//	for {
//		lmtr.Wait()
//		renderImage()
//	}
package limiter

import (
	"time"
)

// FpsLimiter will trigger at the given rate.
type FpsLimiter struct {
	framesPerSecond float64
	secondsPerFrame time.Duration

	tick chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type. Only any good if base performance of the machine is well above the
// required rate.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{}
	lim.SetLimit(framesPerSecond)

	lim.tick = make(chan bool)

	// run ticker concurrently, adjusting the sleep period to absorb
	// scheduling drift
	go func() {
		adjustedSecondsPerFrame := lim.secondsPerFrame
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjustedSecondsPerFrame)
			nt := time.Now()
			adjustedSecondsPerFrame -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the rate at which the FpsLimiter triggers.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Duration(float64(time.Second) / framesPerSecond)
}

// Wait blocks until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if time has already elapsed and false if it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
