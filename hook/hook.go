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

// Package hook delivers the gamepad Registry to a single callback function.
//
// A Hook is created with Use() and lives until it is closed or until the
// context it was created with is done. The callback is called with every new
// Registry. The most recent Registry can also be read at any time with
// Gamepads().
//
//	h, err := hook.Use(ctx, host, func(r gamepad.Registry) {
//		fmt.Println(r)
//	})
//	if err != nil {
//		return err
//	}
//	defer h.Close()
package hook

import (
	"context"
	"sync"

	"github.com/jetsetilly/gamepads/gamepad"
	"github.com/jetsetilly/gamepads/logger"
)

// Hook calls a function whenever the gamepad Registry changes.
type Hook struct {
	loop *gamepad.Loop

	crit     sync.Mutex
	reg      gamepad.Registry
	callback func(gamepad.Registry)

	close sync.Once
	done  chan bool
}

// Use starts watching the host. The callback will be called from whichever
// goroutine the host and scheduler use to deliver events and frames. It must
// not call Close().
//
// The Hook is closed automatically when the context is done.
func Use(ctx context.Context, host gamepad.Host, callback func(gamepad.Registry)) (*Hook, error) {
	h := &Hook{
		callback: callback,
		done:     make(chan bool),
	}
	h.loop = gamepad.NewLoop(host, h)

	if err := h.loop.Start(); err != nil {
		return nil, err
	}

	go func() {
		select {
		case <-ctx.Done():
			logger.Log(logger.Allow, "hook", "context done")
			h.Close()
		case <-h.done:
		}
	}()

	return h, nil
}

// Gamepads returns the most recent Registry.
func (h *Hook) Gamepads() gamepad.Registry {
	return h.Registry()
}

// SetCallback replaces the callback function. The Registry is not reset and
// the new callback is not called until the next change.
func (h *Hook) SetCallback(callback func(gamepad.Registry)) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.callback = callback
}

// Close stops watching the host. The callback will not be called once Close()
// has returned. It is safe to call Close() more than once.
func (h *Hook) Close() {
	h.close.Do(func() {
		h.loop.Stop()
		close(h.done)
	})
}

// Done returns a channel that is closed when the Hook has been closed.
func (h *Hook) Done() <-chan bool {
	return h.done
}

// Registry implements the gamepad.Store interface.
func (h *Hook) Registry() gamepad.Registry {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.reg
}

// SetRegistry implements the gamepad.Store interface.
func (h *Hook) SetRegistry(r gamepad.Registry) {
	h.crit.Lock()
	h.reg = r
	callback := h.callback
	h.crit.Unlock()

	if callback != nil {
		callback(r)
	}
}
