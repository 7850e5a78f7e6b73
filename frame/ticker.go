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

package frame

import (
	"sync"
	"time"

	"github.com/jetsetilly/gamepads/gamepad"
	"github.com/jetsetilly/gamepads/logger"
)

// DefaultRefreshRate is used when the refresh rate given to NewTicker() is not
// usable.
const DefaultRefreshRate = 60

// Ticker is a gamepad.Scheduler that runs requested functions on a goroutine
// at the display refresh rate. Functions are run one at a time.
type Ticker struct {
	pump   Pump
	ticker *time.Ticker
	quit   chan bool
	done   chan bool
	close  sync.Once
}

// NewTicker is the preferred method of initialisation for the Ticker type.
// The Ticker must be closed with Close() when it is no longer required.
func NewTicker(refreshRate int) *Ticker {
	if refreshRate <= 0 {
		logger.Logf(logger.Allow, "frame", "unusable refresh rate (%d). using %dHz", refreshRate, DefaultRefreshRate)
		refreshRate = DefaultRefreshRate
	}

	d := time.Duration(1000000000/int64(refreshRate)) * time.Nanosecond

	t := &Ticker{
		ticker: time.NewTicker(d),
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	go func() {
		defer close(t.done)
		for {
			select {
			case <-t.ticker.C:
				t.pump.Frame()
			case <-t.quit:
				return
			}
		}
	}()

	return t
}

// RequestFrame implements the gamepad.Scheduler interface.
func (t *Ticker) RequestFrame(f func()) gamepad.FrameHandle {
	return t.pump.RequestFrame(f)
}

// CancelFrame implements the gamepad.Scheduler interface.
func (t *Ticker) CancelFrame(h gamepad.FrameHandle) {
	t.pump.CancelFrame(h)
}

// Close stops the ticker. Functions still waiting for a frame will never be
// run. Close() waits for any frame in progress to complete and so must not be
// called from a requested function.
func (t *Ticker) Close() {
	t.close.Do(func() {
		t.ticker.Stop()
		close(t.quit)
	})
	<-t.done
}
