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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher6809/debugger/govern"
	"github.com/jetsetilly/gopher6809/hardware"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the emulation is given time to settle before the measurement period begins
var leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied machine. The
// machine should be ready to run, with a program loaded and the CPU reset.
//
// Emulation will run of specificed duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	startCycle := m.CPU.Cycles

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(leadTime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check for end of measurement period every PerformanceBrake CPU
		// instructions. checking the timerChan is relatively expensive
		performanceBrake := 0

		return m.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					// measurement period has finished
					if v {
						return govern.Ending, timedOut
					}

					// leadtime has concluded and the measurement has begun
					startCycle = m.CPU.Cycles
				default:
				}
			}

			return govern.Running, nil
		})
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	numCycles := m.CPU.Cycles - startCycle
	mhz, accuracy := CalcMHz(numCycles, dur.Seconds(), m.Config.Clock)
	output.Write([]byte(fmt.Sprintf("%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, numCycles, dur.Seconds(), accuracy)))

	return nil
}
