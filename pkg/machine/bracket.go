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

// FindRBracket returns the offset of the ']' closing the '[' at addr. The
// scan starts on the opening bracket itself so that it counts as the first
// level of nesting.
func FindRBracket(program string, addr int) (int, bool) {
	depth := 0

	for i := addr; i < len(program); i++ {
		switch program[i] {
		case OP_LBRACKET:
			depth++
		case OP_RBRACKET:
			depth--

			if depth == 0 {
				return i, true
			}
		}
	}

	return -1, false
}

// FindLBracket returns the offset of the '[' opening the ']' at addr,
// scanning backwards towards the start of the program.
func FindLBracket(program string, addr int) (int, bool) {
	depth := 0

	if addr >= len(program) {
		return -1, false
	}

	for i := addr; i >= 0; i-- {
		switch program[i] {
		case OP_RBRACKET:
			depth++
		case OP_LBRACKET:
			depth--

			if depth == 0 {
				return i, true
			}
		}
	}

	return -1, false
}
