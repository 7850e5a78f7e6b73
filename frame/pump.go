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
	"sort"
	"sync"

	"github.com/jetsetilly/gamepads/gamepad"
)

// Pump is a gamepad.Scheduler that runs requested functions when Frame() is
// called. The zero value is ready to use.
type Pump struct {
	crit    sync.Mutex
	next    gamepad.FrameHandle
	pending map[gamepad.FrameHandle]func()
	frames  int
}

// RequestFrame implements the gamepad.Scheduler interface.
func (p *Pump) RequestFrame(f func()) gamepad.FrameHandle {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.pending == nil {
		p.pending = make(map[gamepad.FrameHandle]func())
	}

	// handle zero is never issued so that the zero value of FrameHandle never
	// cancels anything
	p.next++
	p.pending[p.next] = f
	return p.next
}

// CancelFrame implements the gamepad.Scheduler interface.
func (p *Pump) CancelFrame(h gamepad.FrameHandle) {
	p.crit.Lock()
	defer p.crit.Unlock()
	delete(p.pending, h)
}

// Frame runs every function that was requested before the call, in the order
// they were requested. Functions requested while Frame() is running will be
// run on the next call to Frame(). Returns the number of functions run.
func (p *Pump) Frame() int {
	p.crit.Lock()
	p.frames++
	handles := make([]gamepad.FrameHandle, 0, len(p.pending))
	for h := range p.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	p.crit.Unlock()

	var n int
	for _, h := range handles {
		// the function may have been cancelled by an earlier function in this
		// frame
		p.crit.Lock()
		f, ok := p.pending[h]
		delete(p.pending, h)
		p.crit.Unlock()

		if ok {
			f()
			n++
		}
	}

	return n
}

// Pending returns the number of functions waiting for the next frame.
func (p *Pump) Pending() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return len(p.pending)
}

// Frames returns the number of times Frame() has been called.
func (p *Pump) Frames() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.frames
}
