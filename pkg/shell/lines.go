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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineReader supplies one line of operator text per call. Implementations
// return io.EOF once no more lines will arrive.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

type reader struct {
	r   *bufio.Reader
	out io.Writer
}

// NewReader reads lines from r, echoing prompts to out. It is used when
// input does not come from a terminal. Nothing past the current line is
// consumed, so r can be shared with the machine keyboard.
func NewReader(r *bufio.Reader, out io.Writer) LineReader {
	return &reader{r: r, out: out}
}

func (rd *reader) Prompt(prompt string) (string, error) {
	fmt.Fprint(rd.out, prompt)

	line, err := rd.r.ReadString('\n')

	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", io.EOF
		}
	} else if err != nil {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}
