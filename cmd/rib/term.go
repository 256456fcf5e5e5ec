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

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"context"
	"os"

	"github.com/containerd/log"
	"golang.org/x/sys/unix"
)

// enterRawTerm switches off line buffering and echo so that ',' receives
// single key presses. Signals stay enabled so Ctrl+C still stops a program,
// and the terminal is put back before the process exits on one.
func enterRawTerm(ctx context.Context, fd int) (func(), error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)

	if err != nil {
		return nil, err
	}

	termRestore := *termios
	termstate := *termios

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	termstate.Cflag &^= unix.CSIZE | unix.PARENB
	termstate.Cflag |= unix.CS8

	termstate.Cc[unix.VMIN] = 1
	termstate.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &termstate); err != nil {
		return nil, err
	}

	restore := func() {
		if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &termRestore); err != nil {
			log.G(ctx).WithError(err).Error("restoring terminal")
		}
	}

	stop := onInterrupt(restore, os.Exit)

	return func() {
		stop()
		restore()
	}, nil
}
