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
	"strings"

	"github.com/lassandro/gorib/pkg/machine"
)

const MEMVIEW_COUNT = 8

const cellWidth = 8

// PrintTape draws the cells around the cursor as a two-row table: indices
// on top, values below. Printable values are shown as characters.
func PrintTape(w io.Writer, mc *machine.Machine, count int) {
	cells := mc.State.Tape.Snapshot(count)

	if len(cells) == 0 {
		return
	}

	fmt.Fprintf(w, "%sVV PTR VV\n", strings.Repeat(" ", cellWidth*(len(cells)/2)))

	for _, cell := range cells {
		fmt.Fprintf(w, "| %-5d ", cell.Index)
	}

	fmt.Fprintln(w, "|")
	fmt.Fprintln(w, strings.Repeat("-", cellWidth*len(cells)+1))

	for _, cell := range cells {
		if cell.Value >= 0x20 && cell.Value < 0x7F {
			fmt.Fprintf(w, "| %-5c ", cell.Value)
		} else {
			fmt.Fprintf(w, "| %-5d ", cell.Value)
		}
	}

	fmt.Fprintln(w, "|")
}

func PrintStats(w io.Writer, mc *machine.Machine) {
	value, pos := mc.Current()

	fmt.Fprintf(w, "\nCurrent cell = '%d'\tPosition = %d\n", value, pos)
}
