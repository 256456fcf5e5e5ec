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

const (
	TAPE_SIZE    = 30000
	PROGRAM_SIZE = 8192
	INPUT_SIZE   = 512
)

const (
	OP_RIGHT    byte = '>'
	OP_LEFT     byte = '<'
	OP_INC      byte = '+'
	OP_DEC      byte = '-'
	OP_GETC     byte = ','
	OP_PUTC     byte = '.'
	OP_LBRACKET byte = '['
	OP_RBRACKET byte = ']'
)

// Return code reported for each executed command in trace mode
const RETCODE_OK = 0

// IsOp reports whether c is one of the eight commands. Everything else is
// skipped when a program runs.
func IsOp(c byte) bool {
	switch c {
	case OP_RIGHT, OP_LEFT, OP_INC, OP_DEC, OP_GETC, OP_PUTC, OP_LBRACKET,
		OP_RBRACKET:
		return true
	}

	return false
}
