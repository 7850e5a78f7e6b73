// This file is part of Gamepads.
//
// Gamepads is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gamepads is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gamepads.  If not, see <https://www.gnu.org/licenses/>.

// Package assert contains checks that should never fail in a correctly
// written program. A failed check is a programming error and results in a
// panic.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It is undoubtedly useful for but it should only ever be used for
// debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine records the goroutine that created it.
type Goroutine struct {
	id uint64
}

// ThisGoroutine returns a Goroutine for the calling goroutine.
func ThisGoroutine() Goroutine {
	return Goroutine{id: GetGoRoutineID()}
}

// Is returns true if the calling goroutine is the recorded goroutine.
func (g Goroutine) Is() bool {
	return g.id == GetGoRoutineID()
}

// Check panics if the calling goroutine is not the recorded goroutine. The
// name of the function being checked is included in the panic message.
func (g Goroutine) Check(function string) {
	if !g.Is() {
		panic(fmt.Sprintf("%s called from goroutine %d. expected goroutine %d", function, GetGoRoutineID(), g.id))
	}
}
