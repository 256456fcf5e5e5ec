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
	"errors"
	"fmt"
	"io"
)

func (mc *MachineState) Reset() {
	mc.Tape.Clear()
	mc.Input.Clear()
	mc.Interactive = false
	mc.Program = ""
	mc.Counter = 0
}

// Clear zeroes the tape and drops any loaded program. The input string is
// left alone.
func (mc *MachineState) Clear() {
	mc.Tape.Clear()
	mc.Program = ""
	mc.Counter = 0
}

// Current returns the value under the cursor and the cursor position.
func (mc *Machine) Current() (byte, int) {
	return mc.State.Tape.Current(), mc.State.Tape.Cursor
}

// Load prepares program for execution from its first command. Programs
// longer than PROGRAM_SIZE-1 bytes are truncated.
func (mc *Machine) Load(program string) {
	if len(program) > PROGRAM_SIZE-1 {
		program = program[:PROGRAM_SIZE-1]
	}

	mc.State.Program = program
	mc.State.Counter = 0
	mc.State.Input.Rewind()
	mc.jumps = make(map[int]int)
}

// Done reports whether the loaded program has run to its end.
func (mc *Machine) Done() bool {
	return mc.State.Counter >= len(mc.State.Program)
}

// Run executes program against the current tape. The tape carries over from
// previous runs; only the program, the instruction counter and the input
// read position are reset, whatever the outcome.
func (mc *Machine) Run(program string) (err error) {
	mc.Load(program)

	defer mc.endProgram()

	if mc.Debugger != nil {
		mc.Debugger.Begin(mc.State.Program, mc)
		defer func() {
			mc.Debugger.End(err, mc)
		}()
	}

	defer func() {
		if ferr := mc.flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	for !mc.Done() {
		if err = mc.Step(); err != nil {
			return err
		}
	}

	return nil
}

func (mc *Machine) endProgram() {
	mc.State.Program = ""
	mc.State.Counter = 0
	mc.State.Input.Rewind()
	mc.jumps = nil
}

func (mc *Machine) flush() error {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return nil
	}

	if err := mc.Devices.Display.Flush(); err != nil {
		return fmt.Errorf("flushing display: %w", err)
	}

	return nil
}

func (mc *Machine) emit(value byte) error {
	if mc.Debugger != nil {
		mc.Debugger.Emit(value)
		return nil
	}

	if mc.Devices == nil || mc.Devices.Display == nil {
		return nil
	}

	if err := mc.Devices.Display.WriteByte(value); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}

	return nil
}

func (mc *Machine) read() (byte, error) {
	if mc.State.Interactive && mc.Devices != nil && mc.Devices.Keyboard != nil {
		// Whatever was printed so far has to be visible before blocking
		if err := mc.flush(); err != nil {
			return 0, err
		}

		key, err := mc.Devices.Keyboard.ReadByte()

		if errors.Is(err, io.EOF) {
			return 0, nil
		} else if err != nil {
			return 0, fmt.Errorf("reading keyboard: %w", err)
		}

		return key, nil
	}

	return mc.State.Input.Next(), nil
}

func (mc *Machine) match(addr int) (int, bool) {
	if target, ok := mc.jumps[addr]; ok {
		return target, true
	}

	var target int
	var ok bool

	if mc.State.Program[addr] == OP_LBRACKET {
		target, ok = FindRBracket(mc.State.Program, addr)
	} else {
		target, ok = FindLBracket(mc.State.Program, addr)
	}

	if ok && mc.jumps != nil {
		mc.jumps[addr] = target
		mc.jumps[target] = addr
	}

	return target, ok
}

// Step executes the command under the instruction counter and moves the
// counter past it. A bracket that jumps leaves the counter just after its
// partner.
func (mc *Machine) Step() error {
	if mc.Done() {
		return nil
	}

	addr := mc.State.Counter
	op := mc.State.Program[addr]
	tape := &mc.State.Tape

	switch op {
	case OP_RIGHT:
		tape.ShiftRight()

	case OP_LEFT:
		tape.ShiftLeft()

	case OP_INC:
		tape.Increment()

	case OP_DEC:
		tape.Decrement()

	case OP_GETC:
		value, err := mc.read()

		if err != nil {
			return err
		}

		tape.SetCurrent(value)

	case OP_PUTC:
		if err := mc.emit(tape.Current()); err != nil {
			return err
		}

	case OP_LBRACKET:
		if tape.Current() == 0 {
			target, ok := mc.match(addr)

			if !ok {
				return &SyntaxError{mc.State.Program, addr, op}
			}

			mc.State.Counter = target
		}

	case OP_RBRACKET:
		if tape.Current() != 0 {
			target, ok := mc.match(addr)

			if !ok {
				return &SyntaxError{mc.State.Program, addr, op}
			}

			mc.State.Counter = target
		}

	default:
		// Not a command
	}

	if mc.Debugger != nil {
		mc.Debugger.Step(op, addr, mc)
	}

	mc.State.Counter++

	return nil
}
