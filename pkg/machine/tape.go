// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package machine

// The tape is circular in both directions: moving off either end lands on
// the opposite one.

func (tp *Tape) ShiftRight() {
	tp.Cursor++

	if tp.Cursor > TAPE_SIZE-1 {
		tp.Cursor = 0
	}
}

func (tp *Tape) ShiftLeft() {
	tp.Cursor--

	if tp.Cursor < 0 {
		tp.Cursor = TAPE_SIZE - 1
	}
}

func (tp *Tape) Increment() {
	tp.Cells[tp.Cursor]++
}

func (tp *Tape) Decrement() {
	tp.Cells[tp.Cursor]--
}

func (tp *Tape) Current() byte {
	return tp.Cells[tp.Cursor]
}

func (tp *Tape) SetCurrent(value byte) {
	tp.Cells[tp.Cursor] = value
}

func (tp *Tape) Clear() {
	for i := range tp.Cells {
		tp.Cells[i] = 0
	}

	tp.Cursor = 0
}

// Snapshot returns count cells centred on the cursor, wrapping around the
// ends of the tape. The cursor sits at index count/2 of the result.
func (tp *Tape) Snapshot(count int) []Cell {
	if count <= 0 {
		return nil
	}

	if count > TAPE_SIZE {
		count = TAPE_SIZE
	}

	begin := tp.Cursor - count/2
	if begin < 0 {
		begin += TAPE_SIZE
	}

	cells := make([]Cell, 0, count)

	for i, addr := 0, begin; i < count; i, addr = i+1, addr+1 {
		if addr == TAPE_SIZE {
			addr = 0
		}

		cells = append(cells, Cell{Index: addr, Value: tp.Cells[addr]})
	}

	return cells
}
