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

package frame_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gamepads/frame"
	"github.com/jetsetilly/gamepads/gamepad"
	"github.com/jetsetilly/gamepads/test"
)

func TestPumpOrder(t *testing.T) {
	var pump frame.Pump
	var order []int

	pump.RequestFrame(func() { order = append(order, 1) })
	h := pump.RequestFrame(func() { order = append(order, 2) })
	pump.RequestFrame(func() { order = append(order, 3) })
	test.ExpectInequality(t, h, 0)
	test.ExpectEquality(t, pump.Pending(), 3)

	pump.CancelFrame(h)
	test.ExpectEquality(t, pump.Frame(), 2)
	test.ExpectEquality(t, len(order), 2)
	test.ExpectEquality(t, order[0], 1)
	test.ExpectEquality(t, order[1], 3)
	test.ExpectEquality(t, pump.Frames(), 1)
}

func TestPumpRequestDuringFrame(t *testing.T) {
	var pump frame.Pump
	var n int

	var f func()
	f = func() {
		n++
		pump.RequestFrame(f)
	}
	pump.RequestFrame(f)

	// a function requested during a frame waits for the next frame
	test.ExpectEquality(t, pump.Frame(), 1)
	test.ExpectEquality(t, pump.Pending(), 1)
	test.ExpectEquality(t, pump.Frame(), 1)
	test.ExpectEquality(t, n, 2)
}

func TestPumpCancelDuringFrame(t *testing.T) {
	var pump frame.Pump
	var ran bool

	var h gamepad.FrameHandle
	pump.RequestFrame(func() { pump.CancelFrame(h) })
	h = pump.RequestFrame(func() { ran = true })

	test.ExpectEquality(t, pump.Frame(), 1)
	test.ExpectFailure(t, ran)

	// cancelling a handle that has already gone does nothing
	pump.CancelFrame(h)
	pump.CancelFrame(0)
	test.ExpectEquality(t, pump.Pending(), 0)
}

func TestTicker(t *testing.T) {
	tck := frame.NewTicker(0)
	defer tck.Close()

	done := make(chan bool)
	tck.RequestFrame(func() { close(done) })

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("requested function was not run")
	}
}

func TestTickerClose(t *testing.T) {
	tck := frame.NewTicker(1)
	tck.Close()

	// closing twice is safe
	tck.Close()
}
