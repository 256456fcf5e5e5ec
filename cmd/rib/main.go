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

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/containerd/log"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/lassandro/gorib/pkg/machine"
	"github.com/lassandro/gorib/pkg/shell"
)

const version = "0.3.0"

var cli struct {
	Trace    bool     `help:"Start with debugging (trace) mode enabled." env:"RIB_TRACE"`
	Keyboard bool     `short:"k" help:"Read ',' from the keyboard instead of the input string."`
	Input    string   `help:"Initial input string." env:"RIB_INPUT"`
	Quiet    bool     `short:"q" help:"Do not print the startup banner."`
	History  string   `help:"Line editor history file, empty to disable." env:"RIB_HISTORY" default:"${history}"`
	LogLevel string   `help:"Diagnostic log level." env:"RIB_LOG_LEVEL" default:"warn" enum:"trace,debug,info,warn,error"`
	Exit     bool     `help:"Exit after running the given lines instead of prompting."`
	Lines    []string `arg:"" optional:"" help:"Programs or commands to run before the prompt."`
}

// lineEditor adapts liner to the shell. Ctrl+C discards the current line.
type lineEditor struct {
	*liner.State
}

func (le lineEditor) Prompt(prompt string) (string, error) {
	line, err := le.State.Prompt(prompt)

	if errors.Is(err, liner.ErrPromptAborted) {
		return "", nil
	}

	if err == nil && line != "" {
		le.AppendHistory(line)
	}

	return line, err
}

func defaultHistory() string {
	home, err := os.UserHomeDir()

	if err != nil {
		return ""
	}

	return filepath.Join(home, ".rib_history")
}

func printBanner() {
	fmt.Printf("Ronen's Interactive Brainfuck (rib %s)", version)
	fmt.Printf("\n==================================================")
	fmt.Printf(
		"\n%d bytes memory\t\tOK\n%d bytes input buffer\t\tOK",
		machine.TAPE_SIZE,
		machine.INPUT_SIZE,
	)
	fmt.Printf("\n%d bytes program buffer\tOK", machine.PROGRAM_SIZE)
	fmt.Printf("\n==================================================\n")
}

func readHistory(ctx context.Context, line *liner.State, path string) {
	file, err := os.Open(path)

	if errors.Is(err, os.ErrNotExist) {
		return
	} else if err != nil {
		log.G(ctx).WithError(err).Warn("opening history file")
		return
	}

	defer file.Close()

	if _, err := line.ReadHistory(file); err != nil {
		log.G(ctx).WithError(err).Warn("reading history file")
	}
}

func writeHistory(ctx context.Context, line *liner.State, path string) {
	file, err := os.Create(path)

	if err != nil {
		log.G(ctx).WithError(err).Warn("creating history file")
		return
	}

	defer file.Close()

	if _, err := line.WriteHistory(file); err != nil {
		log.G(ctx).WithError(err).Warn("writing history file")
	}
}

func rib() int {
	kong.Parse(
		&cli,
		kong.Name("rib"),
		kong.Description("An interactive brainfuck interpreter."),
		kong.UsageOnError(),
		kong.Vars{"history": defaultHistory()},
	)

	log.L.Logger.SetOutput(os.Stderr)

	if err := log.SetLevel(cli.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx := log.WithLogger(context.Background(), log.L.WithField("cmd", "rib"))

	var mc machine.Machine
	var dh machine.DeviceHandler
	// Commands and ',' share one buffer so neither swallows the other's bytes
	dh.Keyboard = bufio.NewReader(os.Stdin)
	dh.Display = bufio.NewWriter(os.Stdout)
	mc.Devices = &dh
	mc.State.Reset()
	mc.State.Interactive = cli.Keyboard

	if cli.Input != "" {
		mc.State.Input.Set(cli.Input)
	}

	sh := shell.Shell{
		Machine: &mc,
		Out:     os.Stdout,
	}
	sh.SetTrace(cli.Trace)

	stdin := int(os.Stdin.Fd())
	interactive := term.IsTerminal(stdin)

	if !cli.Quiet {
		printBanner()
	}

	for _, line := range cli.Lines {
		quit, err := sh.Exec(ctx, line)

		if err != nil {
			log.G(ctx).WithError(err).Error("running command line program")
			return 1
		}

		if quit {
			return 0
		}
	}

	if cli.Exit {
		return 0
	}

	if interactive {
		line := liner.NewLiner()
		defer line.Close()

		line.SetCtrlCAborts(true)

		if cli.History != "" {
			readHistory(ctx, line, cli.History)
			defer writeHistory(ctx, line, cli.History)
		}

		sh.Lines = lineEditor{line}
		sh.RawTerm = func() (func(), error) {
			restore, err := enterRawTerm(ctx, stdin)

			if err != nil {
				return nil, err
			}

			return func() {
				restore()
				// Keys typed past the last ',' belong to the line editor
				dh.Keyboard.Reset(os.Stdin)
			}, nil
		}
	} else {
		log.G(ctx).Debug("stdin is not a terminal, reading commands line by line")
		sh.Lines = shell.NewReader(dh.Keyboard, os.Stdout)
	}

	if err := sh.Run(ctx); err != nil {
		log.G(ctx).WithError(err).Error("shell stopped")
		return 1
	}

	return 0
}

func main() {
	os.Exit(rib())
}
