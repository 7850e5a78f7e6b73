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

package sdlhost

import (
	"runtime"
	"sort"
	"sync"

	"github.com/jetsetilly/gamepads/assert"
	"github.com/jetsetilly/gamepads/curated"
	"github.com/jetsetilly/gamepads/gamepad"
	"github.com/jetsetilly/gamepads/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns returned by the sdlhost package.
const (
	InitError = "sdl: %v"
	Destroyed = "sdl: host has been destroyed"
)

// an open SDL game controller
type pad struct {
	gc   *sdl.GameController
	slot int
	name string
}

// queued event. sent to subscribers at the end of Service()
type event struct {
	attached bool
	snapshot gamepad.Snapshot
	slot     int
}

// Host implements the gamepad.Poller and gamepad.Notifier interfaces using
// SDL game controllers.
type Host struct {
	deadZone float64

	// the goroutine that called New()
	mainThread assert.Goroutine

	// pads are only ever accessed by the main thread
	pads map[sdl.JoystickID]*pad

	// events waiting to be sent to subscribers. only accessed by the main
	// thread
	queue []event

	// quit is set when SDL receives a quit event. only accessed by the main
	// thread
	quit bool

	// the remaining fields are shared with the goroutines that poll and
	// subscribe
	crit      sync.Mutex
	snapshots []*gamepad.Snapshot
	subs      map[int]gamepad.Events
	nextSub   int
	destroyed bool
}

// New initialises SDL and opens every game controller that is already
// attached. Must be called from the main thread.
//
// Axis values with a magnitude smaller than deadZone are reported as zero.
func New(deadZone float64) (*Host, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	h := &Host{
		deadZone:   deadZone,
		mainThread: assert.ThisGoroutine(),
		pads:       make(map[sdl.JoystickID]*pad),
		subs:       make(map[int]gamepad.Events),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		h.open(i)
	}

	if len(h.pads) == 0 {
		logger.Log(logger.Allow, "sdl", "no gamepads found")
	}

	// controllers opened by New() are reported by polling. there can't be
	// any subscribers yet
	h.queue = h.queue[:0]
	h.refresh()

	return h, nil
}

// Destroy closes every controller and shuts down SDL. Must be called from the
// main thread.
func (h *Host) Destroy() {
	h.mainThread.Check("sdlhost.Destroy")

	h.crit.Lock()
	h.destroyed = true
	h.snapshots = nil
	h.subs = make(map[int]gamepad.Events)
	h.crit.Unlock()

	for _, p := range h.pads {
		p.gc.Close()
	}
	h.pads = nil

	sdl.Quit()
}

// Quit returns true if SDL has received a quit event (for example, the
// interrupt signal).
func (h *Host) Quit() bool {
	return h.quit
}

// Gamepad returns a gamepad.Host using this Host for polling and events and
// the Scheduler for frames.
func (h *Host) Gamepad(sched gamepad.Scheduler) gamepad.Host {
	return gamepad.Host{
		Poller:    h,
		Notifier:  h,
		Scheduler: sched,
	}
}

// open the game controller with the device index. does nothing if the device
// is not a game controller or is already open
func (h *Host) open(deviceIndex int) {
	if !sdl.IsGameController(deviceIndex) {
		logger.Logf(logger.Allow, "sdl", "device %d is not a game controller", deviceIndex)
		return
	}

	gc := sdl.GameControllerOpen(deviceIndex)
	if gc == nil || !gc.Attached() {
		logger.Logf(logger.Allow, "sdl", "cannot open device %d: %s", deviceIndex, sdl.GetError())
		return
	}

	id := gc.Joystick().InstanceID()
	if _, ok := h.pads[id]; ok {
		// opening a controller that is already open increases the SDL
		// reference count. close it again to balance
		gc.Close()
		return
	}

	h.track(id, gc, gc, gc.Name())
}

// track a newly opened controller. it is given the lowest free slot and an
// attach event is queued. rd is normally the same as gc
func (h *Host) track(id sdl.JoystickID, gc *sdl.GameController, rd reader, name string) {
	p := &pad{
		gc:   gc,
		slot: h.freeSlot(),
		name: name,
	}
	h.pads[id] = p

	logger.Logf(logger.Allow, "sdl", "gamepad: %s (slot %d)", p.name, p.slot)

	h.queue = append(h.queue, event{
		attached: true,
		snapshot: snapshot(rd, p.slot, p.name, h.deadZone),
	})
}

// close the game controller with the instance ID
func (h *Host) close(id sdl.JoystickID) {
	p, ok := h.pads[id]
	if !ok {
		return
	}
	delete(h.pads, id)
	if p.gc != nil {
		p.gc.Close()
	}

	logger.Logf(logger.Allow, "sdl", "detached: %s (slot %d)", p.name, p.slot)

	h.queue = append(h.queue, event{
		slot: p.slot,
	})
}

// the lowest slot not used by an open controller
func (h *Host) freeSlot() int {
	used := make(map[int]bool, len(h.pads))
	for _, p := range h.pads {
		used[p.slot] = true
	}
	slot := 0
	for used[slot] {
		slot++
	}
	return slot
}

// refresh takes a new snapshot of every open controller
func (h *Host) refresh() {
	var size int
	for _, p := range h.pads {
		if p.slot+1 > size {
			size = p.slot + 1
		}
	}

	snapshots := make([]*gamepad.Snapshot, size)
	for _, p := range h.pads {
		s := snapshot(p.gc, p.slot, p.name, h.deadZone)
		snapshots[p.slot] = &s
	}

	h.crit.Lock()
	defer h.crit.Unlock()
	h.snapshots = snapshots
}

// Service handles pending SDL events and takes a new snapshot of every open
// controller. Attach and detach events are sent to subscribers before
// Service() returns. Must be called from the main thread, usually once per
// frame.
func (h *Host) Service() {
	h.mainThread.Check("sdlhost.Service")

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				// for added events the Which field is the device index
				h.open(int(ev.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				// for removed events the Which field is the instance ID
				h.close(ev.Which)
			}
		case *sdl.QuitEvent:
			h.quit = true
		}
	}

	h.refresh()
	h.dispatch()
}

// dispatch queued events to subscribers. the critical section is not held
// while the subscriber functions are called
func (h *Host) dispatch() {
	if len(h.queue) == 0 {
		return
	}

	h.crit.Lock()
	keys := make([]int, 0, len(h.subs))
	for k := range h.subs {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	subs := make([]gamepad.Events, 0, len(keys))
	for _, k := range keys {
		subs = append(subs, h.subs[k])
	}
	h.crit.Unlock()

	for _, e := range h.queue {
		for _, s := range subs {
			if e.attached {
				if s.Attached != nil {
					s.Attached(e.snapshot)
				}
			} else if s.Detached != nil {
				s.Detached(e.slot)
			}
		}
	}

	h.queue = h.queue[:0]
}

// Poll implements the gamepad.Poller interface.
func (h *Host) Poll() ([]*gamepad.Snapshot, error) {
	h.crit.Lock()
	defer h.crit.Unlock()

	if h.destroyed {
		return nil, curated.Errorf(Destroyed)
	}

	// the slice is replaced rather than changed by refresh() so it's safe to
	// return it without copying
	return h.snapshots, nil
}

// Subscribe implements the gamepad.Notifier interface.
func (h *Host) Subscribe(ev gamepad.Events) func() {
	h.crit.Lock()
	defer h.crit.Unlock()

	id := h.nextSub
	h.nextSub++
	h.subs[id] = ev

	var once sync.Once
	return func() {
		once.Do(func() {
			h.crit.Lock()
			defer h.crit.Unlock()
			delete(h.subs, id)
		})
	}
}
