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

// Set replaces the input string and rewinds the read position. Strings
// longer than INPUT_SIZE-1 bytes are truncated.
func (in *Input) Set(text string) {
	if len(text) > INPUT_SIZE-1 {
		text = text[:INPUT_SIZE-1]
	}

	in.Text = text
	in.set = true
	in.Rewind()
}

// Clear removes the input string altogether; reads then yield zero bytes.
func (in *Input) Clear() {
	in.Text = ""
	in.set = false
	in.Rewind()
}

func (in *Input) Configured() bool {
	return in.set
}

// Rewind forgets the read position so that the next read starts again at
// the first byte.
func (in *Input) Rewind() {
	in.pos = -1
}

// Next returns the next byte of the input string. Once the end of the
// string is reached every further read returns zero.
func (in *Input) Next() byte {
	if !in.set {
		return 0
	}

	if in.pos < 0 {
		in.pos = 0
	} else if in.pos < len(in.Text) {
		in.pos++
	}

	if in.pos < len(in.Text) {
		return in.Text[in.pos]
	}

	return 0
}
