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

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/containerd/errdefs"
	"github.com/containerd/log"

	"github.com/lassandro/gorib/pkg/debugger"
	"github.com/lassandro/gorib/pkg/encoding"
	"github.com/lassandro/gorib/pkg/machine"
)

const Prompt = "(rib) "

const help = `
RIB help
===================================================

p - View pointer position
v - View complete memory status
m [#] - View # cells around the pointer
set [value] - Write a value (0x41, #65, 65, 'A') to the current cell
c - Clear all memory buffers
i - Set input string
f - Load program from file
d - Toggle debugging (trace) mode
k - Toggle keyboard input for ','
h - Show this help
q - Quit the program

Any other line is run as a program.
`

type Shell struct {
	Machine *machine.Machine
	Lines   LineReader
	Out     io.Writer

	// RawTerm prepares the terminal for single-key reads while a program
	// runs in keyboard input mode. The returned function undoes it.
	RawTerm func() (func(), error)
}

func (sh *Shell) Trace() bool {
	return sh.Machine.Debugger != nil
}

func (sh *Shell) SetTrace(enabled bool) {
	if enabled {
		sh.Machine.Debugger = debugger.NewTracer(sh.Out)
	} else {
		sh.Machine.Debugger = nil
	}
}

// Run prompts for lines until the operator quits or input ends.
func (sh *Shell) Run(ctx context.Context) error {
	for {
		line, err := sh.Lines.Prompt(Prompt)

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(sh.Out)
			return nil
		} else if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}

		quit, err := sh.Exec(ctx, line)

		if err != nil {
			return err
		}

		if quit {
			return nil
		}
	}
}

// Exec handles one line: either a meta-command or a program. A meta-command
// must be the whole line, byte for byte. Only failures the shell cannot report
// and carry on from are returned.
func (sh *Shell) Exec(ctx context.Context, line string) (bool, error) {
	switch line {
	case "":
		return false, nil

	case "q":
		return true, nil

	case "h":
		fmt.Fprint(sh.Out, help)

	case "c":
		sh.Machine.State.Clear()
		log.G(ctx).Debug("tape cleared")

	case "v":
		debugger.PrintTape(sh.Out, sh.Machine, debugger.MEMVIEW_COUNT)
		debugger.PrintStats(sh.Out, sh.Machine)

	case "p":
		debugger.PrintStats(sh.Out, sh.Machine)

	case "i":
		return false, sh.setInput(ctx)

	case "f":
		err := errdefs.ErrNotImplemented.WithMessage("load program from file")
		fmt.Fprintf(sh.Out, "error: %v\n", err)

	case "d":
		sh.SetTrace(!sh.Trace())

		if sh.Trace() {
			fmt.Fprintln(sh.Out, "Debugging ON.")
		} else {
			fmt.Fprintln(sh.Out, "Debugging OFF.")
		}

	case "k":
		sh.Machine.State.Interactive = !sh.Machine.State.Interactive

		if sh.Machine.State.Interactive {
			fmt.Fprintln(sh.Out, "Keyboard input ON.")
		} else {
			fmt.Fprintln(sh.Out, "Keyboard input OFF.")
		}

	case "m":
		sh.memory("")

	case "set":
		sh.set("")

	default:
		// "m #" and "set value" take exactly one space and one argument
		cmd, arg, ok := strings.Cut(line, " ")

		if ok && arg != "" && !strings.ContainsAny(arg, " \t") {
			switch cmd {
			case "m":
				sh.memory(arg)
				return false, nil
			case "set":
				sh.set(arg)
				return false, nil
			}
		}

		return false, sh.run(ctx, line)
	}

	return false, nil
}

func (sh *Shell) memory(arg string) {
	const usage = "m [#]"

	count := debugger.MEMVIEW_COUNT

	if arg != "" {
		value, err := encoding.DecodeInt(arg)

		if err != nil {
			fmt.Fprintln(sh.Out, err)
			return
		}

		if value < 1 || value > machine.TAPE_SIZE {
			fmt.Fprintln(sh.Out, usage)
			return
		}

		count = value
	}

	debugger.PrintTape(sh.Out, sh.Machine, count)
}

func (sh *Shell) set(arg string) {
	const usage = "set [0x##|#|'c']"

	if arg == "" {
		fmt.Fprintln(sh.Out, usage)
		return
	}

	value, err := encoding.DecodeCell(arg)

	if err != nil {
		fmt.Fprintln(sh.Out, err)
		return
	}

	sh.Machine.State.Tape.SetCurrent(value)
	debugger.PrintStats(sh.Out, sh.Machine)
}

func (sh *Shell) setInput(ctx context.Context) error {
	input := &sh.Machine.State.Input

	fmt.Fprintf(sh.Out, "\nCurrent input string is:\n'%s'", encoding.Escape(input.Text))
	fmt.Fprint(
		sh.Out,
		"\nSet new input string (leave current by pressing ENTER, Ctrl+D to clear):\n",
	)

	text, err := sh.Lines.Prompt("")

	switch {
	case errors.Is(err, io.EOF):
		input.Clear()
		fmt.Fprintln(sh.Out, "\nInput string cleared.")

	case err != nil:
		return fmt.Errorf("reading input string: %w", err)

	case text != "":
		if len(text) > machine.INPUT_SIZE-1 {
			log.G(ctx).WithField("length", len(text)).Warnf(
				"input string truncated to %d bytes", machine.INPUT_SIZE-1,
			)
		}

		input.Set(text)
		fmt.Fprintln(sh.Out, "\nNew input string set.")

	default:
		input.Rewind()
		fmt.Fprintln(sh.Out, "\nInput string remains.")
	}

	return nil
}

func (sh *Shell) run(ctx context.Context, program string) error {
	logger := log.G(ctx).WithField("bytes", len(program))

	if len(program) > machine.PROGRAM_SIZE-1 {
		logger.Warnf("program truncated to %d bytes", machine.PROGRAM_SIZE-1)
	}

	if sh.Machine.State.Interactive && sh.RawTerm != nil {
		restore, err := sh.RawTerm()

		if err != nil {
			logger.WithError(err).Warn("keyboard input without raw terminal")
		} else {
			defer restore()
		}
	}

	commands := 0
	for i := 0; i < len(program); i++ {
		if machine.IsOp(program[i]) {
			commands++
		}
	}

	logger.WithField("commands", commands).Debug("running program")

	err := sh.Machine.Run(program)

	var syntaxErr *machine.SyntaxError

	if errors.As(err, &syntaxErr) {
		logger.WithError(err).Debug("program failed")

		fmt.Fprintf(
			sh.Out,
			"\nSyntax error:\n%s\n at position %d\n",
			syntaxErr.Program,
			syntaxErr.Position,
		)

		return nil
	}

	return err
}
