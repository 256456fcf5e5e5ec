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

package debugger

import (
	"fmt"
	"io"

	"github.com/lassandro/gorib/pkg/machine"
)

func NewTracer(w io.Writer) *Tracer {
	return &Tracer{Out: w}
}

func (dbg *Tracer) Begin(program string, mc *machine.Machine) {
	dbg.Count = 0
	dbg.Transcript.Reset()

	fmt.Fprintf(dbg.Out, "\nProgram loaded (%d bytes)\n", len(program))
}

func (dbg *Tracer) Step(op byte, addr int, mc *machine.Machine) {
	value, pos := mc.Current()

	fmt.Fprintf(
		dbg.Out,
		"\t[%04d] Command: %c retcode %d\tp = %d\tpos = %d\n",
		addr,
		op,
		machine.RETCODE_OK,
		value,
		pos,
	)

	dbg.Count++
}

func (dbg *Tracer) Emit(value byte) {
	dbg.Transcript.WriteByte(value)
}

func (dbg *Tracer) End(err error, mc *machine.Machine) {
	fmt.Fprintf(dbg.Out, "\nOutput:\n-------------------\n%s\n", dbg.Transcript.Bytes())
	fmt.Fprintf(dbg.Out, "\nTotal %d instructions.\n", dbg.Count)
}
