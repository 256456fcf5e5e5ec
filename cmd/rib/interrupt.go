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
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// onInterrupt runs restore and then exit when SIGINT or SIGTERM arrives
// before stop is called. A program stuck in a loop in raw mode is only
// ever left through here, so the terminal must come back first.
func onInterrupt(restore func(), exit func(int)) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})

	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigs:
			restore()

			code := 1
			if num, ok := sig.(syscall.Signal); ok {
				code = 128 + int(num)
			}

			exit(code)
		case <-done:
		}
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
		})
	}
}
