// This file is part of Gopher6809.
//
// Gopher6809 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6809 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6809.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(100)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		runBatchOfCycles()
//	}
package limiter

import (
	"time"
)

// Limiter will trigger a fixed number of times every second.
type Limiter struct {
	ticksPerSecond int
	ticker         *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// Stop() should be called when the limiter is no longer required.
func NewLimiter(ticksPerSecond int) *Limiter {
	lim := &Limiter{}
	lim.ticker = time.NewTicker(period(ticksPerSecond))
	lim.ticksPerSecond = max(1, ticksPerSecond)
	return lim
}

func period(ticksPerSecond int) time.Duration {
	return time.Second / time.Duration(max(1, ticksPerSecond))
}

// TicksPerSecond returns the current rate of the limiter.
func (lim *Limiter) TicksPerSecond() int {
	return lim.ticksPerSecond
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(ticksPerSecond int) {
	lim.ticksPerSecond = max(1, ticksPerSecond)
	lim.ticker.Reset(period(ticksPerSecond))
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if the trigger has already happened and false if
// it is still yet to happen. The trigger is consumed if it has happened.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
