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

import (
	"bufio"
)

type DeviceHandler struct {
	Keyboard *bufio.Reader
	Display  *bufio.Writer
}

type Tape struct {
	Cells  [TAPE_SIZE]byte
	Cursor int
}

type Input struct {
	Text string

	set bool
	pos int
}

type MachineState struct {
	Tape  Tape
	Input Input

	// Interactive makes ',' read from the keyboard device instead of Input
	Interactive bool

	Program string
	Counter int
}

// MachineDebugger observes a run. While a debugger is attached, output bytes
// are handed to Emit instead of being written to the display.
type MachineDebugger interface {
	Begin(program string, mc *Machine)
	Step(op byte, addr int, mc *Machine)
	Emit(value byte)
	End(err error, mc *Machine)
}

type Machine struct {
	Devices  *DeviceHandler
	State    MachineState
	Debugger MachineDebugger

	jumps map[int]int
}

type Cell struct {
	Index int
	Value byte
}
