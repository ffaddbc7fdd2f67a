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

package cpu

// microOp is a single step in the execution of an instruction. instantaneous
// operations do not consume a cycle
type microOp struct {
	fn      func(mc *CPU) error
	instant bool
}

// capacity of the microcode queue. the longest sequences are the full
// register stacking sequences, which are well within this limit even with the
// additional operations inserted by indexed addressing
const microcodeCapacity = 64

// microcode is a ring buffer of micro-operations
type microcode struct {
	ops  [microcodeCapacity]microOp
	head int
	n    int
}

func (q *microcode) empty() bool {
	return q.n == 0
}

func (q *microcode) clear() {
	q.head = 0
	q.n = 0
}

// push adds operation to the back of the queue
func (q *microcode) push(op microOp) {
	if q.n >= microcodeCapacity {
		panic("cpu: microcode overflow")
	}
	q.ops[(q.head+q.n)%microcodeCapacity] = op
	q.n++
}

// insert adds operations to the front of the queue. the operations will be
// performed in the order they are supplied
func (q *microcode) insert(ops ...microOp) {
	if q.n+len(ops) > microcodeCapacity {
		panic("cpu: microcode overflow")
	}
	for i := len(ops) - 1; i >= 0; i-- {
		q.head = (q.head + microcodeCapacity - 1) % microcodeCapacity
		q.ops[q.head] = ops[i]
		q.n++
	}
}

func (q *microcode) pop() (microOp, bool) {
	if q.n == 0 {
		return microOp{}, false
	}
	op := q.ops[q.head]
	q.head = (q.head + 1) % microcodeCapacity
	q.n--
	return op, true
}

// peek returns the operation at the front of the queue without removing it
func (q *microcode) peek() (microOp, bool) {
	if q.n == 0 {
		return microOp{}, false
	}
	return q.ops[q.head], true
}

// helpers for creating micro-operations

func cycle(fn func(mc *CPU) error) microOp {
	return microOp{fn: fn}
}

func instant(fn func(mc *CPU) error) microOp {
	return microOp{fn: fn, instant: true}
}

// idle is a cycle in which the CPU does nothing on the bus
func idle(_ *CPU) error {
	return nil
}

var idleCycle = cycle(idle)

// convenience functions for adding operations to the queue

func (mc *CPU) cycle(fn ...func(mc *CPU) error) {
	for _, f := range fn {
		mc.queue.push(cycle(f))
	}
}

func (mc *CPU) instant(fn func(mc *CPU) error) {
	mc.queue.push(instant(fn))
}

func (mc *CPU) idle(n int) {
	for range n {
		mc.queue.push(idleCycle)
	}
}
