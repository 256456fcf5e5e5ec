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
	"syscall"
	"testing"
	"time"
)

func TestInterruptRestores(t *testing.T) {
	restored := make(chan struct{}, 1)
	exited := make(chan int, 1)

	stop := onInterrupt(
		func() { restored <- struct{}{} },
		func(code int) { exited <- code },
	)
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGINT); err != nil {
		t.Fatal(err)
	}

	select {
	case code := <-exited:
		select {
		case <-restored:
		default:
			t.Error("Exited without restoring the terminal")
		}

		if code != 130 {
			t.Errorf("Exit code mismatch\nwant:130\nhave:%d", code)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Interrupt not handled")
	}
}

func TestInterruptStop(t *testing.T) {
	calls := 0

	stop := onInterrupt(func() { calls++ }, func(int) { calls++ })
	stop()
	stop()

	if calls != 0 {
		t.Errorf("Handler ran after stop\nwant:0\nhave:%d", calls)
	}
}
