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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher6809/debugger/govern"
	"github.com/jetsetilly/gopher6809/performance/limiter"
)

// While the continueCheck() function only runs at the end of a CPU instruction
// it can still be expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// the number of times per second the run loop synchronises with the wall
// clock when speed limiting is enabled
const limiterRate = 100

// Run sets the emulation running. If the Limit field of the configuration is
// true then the emulation runs at the speed of the configured clock, otherwise
// it runs as quickly as possible.
//
// The continueCheck() function is called at the end of every instruction. A
// nil continueCheck() function means that Run() never returns except on
// error.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var lim *limiter.Limiter
	var budget uint64
	var mark uint64
	if m.Config.Limit {
		lim = limiter.NewLimiter(limiterRate)
		defer lim.Stop()
		budget = uint64(max(1, m.CyclesPerSecond()/limiterRate))
		mark = m.CPU.Cycles
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running, govern.Stepping:
			if err := m.StepInstruction(); err != nil {
				return err
			}

			if lim != nil && m.CPU.Cycles-mark >= budget {
				lim.Wait()
				mark = m.CPU.Cycles
			}
		case govern.Paused:
		default:
			return fmt.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
