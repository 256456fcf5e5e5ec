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

package shell_test

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lassandro/gorib/pkg/machine"
	"github.com/lassandro/gorib/pkg/shell"
)

func newShell(input string) (*shell.Shell, *bytes.Buffer) {
	var mc machine.Machine
	var out bytes.Buffer

	mc.Devices = &machine.DeviceHandler{
		Keyboard: bufio.NewReader(strings.NewReader("kb")),
		Display:  bufio.NewWriter(&out),
	}
	mc.State.Reset()

	sh := &shell.Shell{
		Machine: &mc,
		Lines:   shell.NewReader(bufio.NewReader(strings.NewReader(input)), &out),
		Out:     &out,
	}

	return sh, &out
}

func runShell(t *testing.T, input string) (*shell.Shell, string) {
	sh, out := newShell(input)

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Unexpected error\nwant:<nil>\nhave:%v", err)
	}

	return sh, out.String()
}

func assertContains(t *testing.T, have string, want ...string) {
	t.Helper()

	for _, w := range want {
		if !strings.Contains(have, w) {
			t.Errorf("Output mismatch\nwant:%q\nhave:%q", w, have)
		}
	}
}

func TestProgram(t *testing.T) {
	sh, have := runShell(t, "+++.\np\nq\n+++\n")

	assertContains(t, have, "(rib) \x03(rib) ", "\nCurrent cell = '3'\tPosition = 0\n")

	if value, _ := sh.Machine.Current(); value != 3 {
		t.Errorf("Lines after quit were executed\nwant:3\nhave:%d", value)
	}
}

func TestHelloWorld(t *testing.T) {
	_, have := runShell(
		t,
		"++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]"+
			">>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.\n",
	)

	assertContains(t, have, "(rib) Hello World!\n(rib) ")
}

func TestSyntaxError(t *testing.T) {
	sh, have := runShell(t, "[+\n+]\n")

	assertContains(
		t,
		have,
		"\nSyntax error:\n[+\n at position 0\n",
		"\nSyntax error:\n+]\n at position 1\n",
	)

	if sh.Machine.State.Program != "" {
		t.Errorf("Program buffer not cleared\nhave:%q", sh.Machine.State.Program)
	}
}

func TestPersistence(t *testing.T) {
	_, have := runShell(t, "+\n.\nc\n.\n")

	assertContains(t, have, "(rib) \x01(rib) (rib) \x00(rib) ")
}

func TestInput(t *testing.T) {
	sh, have := runShell(t, "i\nA\n,>,>,\np\ni\n\n")

	assertContains(
		t,
		have,
		"\nCurrent input string is:\n''",
		"\nNew input string set.\n",
		"\nCurrent input string is:\n'A'",
		"\nInput string remains.\n",
	)

	cells := sh.Machine.State.Tape.Cells

	if cells[0] != 'A' || cells[1] != 0 || cells[2] != 0 {
		t.Errorf("Tape mismatch\nwant:[65 0 0]\nhave:%v", cells[:3])
	}
}

func TestInputClear(t *testing.T) {
	sh, have := runShell(t, "i\nxyz\ni\n")

	assertContains(t, have, "\nInput string cleared.\n")

	if sh.Machine.State.Input.Configured() {
		t.Error("Input string still configured")
	}
}

func TestTrace(t *testing.T) {
	sh, have := runShell(t, "d\n+.\nd\n")

	assertContains(
		t,
		have,
		"Debugging ON.\n",
		"\nProgram loaded (2 bytes)\n",
		"\nOutput:\n-------------------\n\x01\n",
		"\nTotal 2 instructions.\n",
		"Debugging OFF.\n",
	)

	if sh.Trace() {
		t.Error("Trace mode still enabled")
	}
}

func TestMemory(t *testing.T) {
	_, have := runShell(t, "set 'A'\nv\nm 2\nm x\nset\nset 300\n")

	assertContains(
		t,
		have,
		"\nCurrent cell = '65'\tPosition = 0\n",
		"| 29996 | 29997 | 29998 | 29999 | 0     | 1     | 2     | 3     |\n",
		"| 0     | 0     | 0     | 0     | A     | 0     | 0     | 0     |\n",
		"| 29999 | 0     |\n",
		"set [0x##|#|'c']\n",
		"out of range",
	)
}

func TestNotImplemented(t *testing.T) {
	_, have := runShell(t, "f\n")

	assertContains(t, have, "error: load program from file")
}

func TestMetaWithArguments(t *testing.T) {
	sh, _ := runShell(t, "q now\n+\n")

	if value, _ := sh.Machine.Current(); value != 1 {
		t.Errorf("Program after 'q now' not executed\nwant:1\nhave:%d", value)
	}
}

func TestMetaExactMatch(t *testing.T) {
	sh, have := runShell(t, "+++\n q\nc\t\nm  2\nset  'A'\np\n")

	if value, _ := sh.Machine.Current(); value != 3 {
		t.Errorf("Padded meta-command was not run as a program\nwant:3\nhave:%d", value)
	}

	assertContains(t, have, "\nCurrent cell = '3'\tPosition = 0\n")

	if strings.Contains(have, "| 29999 | 0     |") {
		t.Errorf("'m  2' was treated as a meta-command\nhave:%q", have)
	}
}

func TestKeyboard(t *testing.T) {
	sh, out := newShell("k\n,.,.,.\nk\n")

	entered, restored := 0, 0
	sh.RawTerm = func() (func(), error) {
		entered++
		return func() { restored++ }, nil
	}

	if err := sh.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	assertContains(t, out.String(), "Keyboard input ON.\n", "kb\x00", "Keyboard input OFF.\n")

	if entered != 1 || restored != 1 {
		t.Errorf("Raw terminal mismatch\nwant:1 1\nhave:%d %d", entered, restored)
	}
}

func TestSharedKeyboard(t *testing.T) {
	var mc machine.Machine
	var out bytes.Buffer

	stdin := bufio.NewReader(strings.NewReader("k\n,.\nZ\n.\n"))

	mc.Devices = &machine.DeviceHandler{
		Keyboard: stdin,
		Display:  bufio.NewWriter(&out),
	}
	mc.State.Reset()

	sh := &shell.Shell{
		Machine: &mc,
		Lines:   shell.NewReader(stdin, &out),
		Out:     &out,
	}

	if err := sh.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	assertContains(t, out.String(), "(rib) Z(rib) (rib) Z")

	if value, _ := mc.Current(); value != 'Z' {
		t.Errorf("Cell mismatch\nwant:%q\nhave:%q", 'Z', value)
	}
}

func TestCRLFLines(t *testing.T) {
	sh, _ := runShell(t, "+++\r\nq\r\n+\r\n")

	if value, _ := sh.Machine.Current(); value != 3 {
		t.Errorf("Cell mismatch\nwant:3\nhave:%d", value)
	}
}
