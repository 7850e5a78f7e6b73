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

package gamepad

import (
	"sync"

	"github.com/jetsetilly/gamepads/curated"
	"github.com/jetsetilly/gamepads/logger"
)

// Sentinal error patterns returned by Loop.
const (
	NoScheduler = "gamepad: host has no frame scheduler"
)

// Loop keeps a Store up to date with the controllers reported by the Host.
//
// Host driven updates (frames and events) are delivered to the Store only
// while the Loop is running. The AddOrUpdate(), Remove(), Replace() and
// ReconcileAll() functions can be called directly at any time.
type Loop struct {
	host  Host
	store Store

	// critical section covers all fields below and every call to
	// Store.SetRegistry()
	crit sync.Mutex

	running bool

	// result of the capability probe made by Start()
	haveEvents bool

	// the most recent frame request
	frame FrameHandle

	// cancels the Notifier subscription. nil if there is no subscription
	unsubscribe func()

	// incremented on every Start() and Stop(). frame and event callbacks
	// carry the generation they were created in and are ignored if it no
	// longer matches
	generation uint64
}

// NewLoop is the preferred method of initialisation for the Loop type. The
// Loop does nothing until Start() is called.
func NewLoop(host Host, store Store) *Loop {
	return &Loop{
		host:  host,
		store: store,
	}
}

// Start subscribes to host events and begins the per-frame reconciliation.
// If the Loop is already running, the existing subscription and frame request
// are released and replaced.
func (l *Loop) Start() error {
	if l.host.Scheduler == nil {
		return curated.Errorf(NoScheduler)
	}

	l.crit.Lock()

	// the previous subscription and frame are taken and replaced in the same
	// critical section. concurrent calls to Start() or Stop() will find the
	// new values and release those instead
	frame, unsubscribe := l.release()

	l.generation++
	gen := l.generation

	l.running = true
	l.haveEvents = l.host.Notifier != nil

	if l.haveEvents {
		l.unsubscribe = l.host.Notifier.Subscribe(Events{
			Attached: func(s Snapshot) {
				l.crit.Lock()
				defer l.crit.Unlock()
				if l.current(gen) {
					l.addOrUpdate(s)
				}
			},
			Detached: func(index int) {
				l.crit.Lock()
				defer l.crit.Unlock()
				if l.current(gen) {
					l.remove(index)
				}
			},
		})
		logger.Log(logger.Allow, "gamepad", "host supports attach events")
	} else {
		logger.Log(logger.Allow, "gamepad", "host does not support attach events. polling only")
	}

	// controllers attached before the subscription won't produce an event.
	// one scan picks them up
	l.reconcileAll()

	l.frame = l.host.Scheduler.RequestFrame(func() { l.tick(gen) })

	l.crit.Unlock()

	l.cancel(frame, unsubscribe)

	return nil
}

// Stop releases the frame request and the event subscription. Once Stop()
// returns no host driven update will reach the Store. It is safe to call Stop()
// more than once.
func (l *Loop) Stop() {
	l.crit.Lock()
	frame, unsubscribe := l.release()
	l.running = false
	l.generation++
	l.crit.Unlock()

	l.cancel(frame, unsubscribe)
}

// release takes the current frame request and subscription from the Loop.
// must be called with the critical section held
func (l *Loop) release() (FrameHandle, func()) {
	frame := l.frame
	unsubscribe := l.unsubscribe
	l.frame = 0
	l.unsubscribe = nil
	return frame, unsubscribe
}

// cancel a frame request and subscription taken by release(). called outside
// of the critical section because the host may be waiting on it while
// delivering an event
func (l *Loop) cancel(frame FrameHandle, unsubscribe func()) {
	if frame != 0 {
		l.host.Scheduler.CancelFrame(frame)
	}
	if unsubscribe != nil {
		unsubscribe()
	}
}

// Running returns true if the Loop has been started and not stopped.
func (l *Loop) Running() bool {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.running
}

// current must be called with the critical section held.
func (l *Loop) current(gen uint64) bool {
	return l.running && l.generation == gen
}

func (l *Loop) tick(gen uint64) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if !l.current(gen) {
		return
	}

	// button and axis values have no change events of their own so the host
	// must be scanned every frame. the exception is when the host supports
	// attach events and there is nothing attached yet
	if !l.haveEvents || l.store.Registry().Len() > 0 {
		l.reconcileAll()
	}

	l.frame = l.host.Scheduler.RequestFrame(func() { l.tick(gen) })
}

// AddOrUpdate puts the Snapshot into the Registry, replacing any previous
// Snapshot in the same slot, and passes the new Registry to the Store.
func (l *Loop) AddOrUpdate(s Snapshot) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.addOrUpdate(s)
}

func (l *Loop) addOrUpdate(s Snapshot) {
	l.store.SetRegistry(l.store.Registry().With(s))
}

// Remove takes the slot out of the Registry and passes the new Registry to
// the Store. Nothing happens if the slot is not occupied.
func (l *Loop) Remove(index int) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.remove(index)
}

func (l *Loop) remove(index int) {
	r := l.store.Registry()
	if _, ok := r.Get(index); !ok {
		return
	}
	l.store.SetRegistry(r.Without(index))
	logger.Logf(logger.Allow, "gamepad", "slot %d detached", index)
}

// Replace passes the Registry to the Store in place of the current Registry.
// Later updates build on the new value.
func (l *Loop) Replace(r Registry) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.store.SetRegistry(r)
}

// ReconcileAll polls the host and updates the Registry with every controller
// it reports. The Store is updated once if the host reported at least one
// controller.
//
// If the host can't be polled, or the poll fails, the Registry is left
// unchanged.
func (l *Loop) ReconcileAll() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.reconcileAll()
}

func (l *Loop) reconcileAll() {
	list, ok := l.poll()
	if !ok {
		return
	}

	r := l.store.Registry()
	var changed bool
	for _, s := range list {
		if s == nil {
			continue
		}
		r = r.With(*s)
		changed = true
	}

	if changed {
		l.store.SetRegistry(r)
	}
}

// poll the host. panics in the Poller are recovered and treated the same as a
// returned error.
func (l *Loop) poll() (list []*Snapshot, ok bool) {
	if l.host.Poller == nil {
		return nil, false
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Logf(logger.Allow, "gamepad", "poll: %v", r)
			list = nil
			ok = false
		}
	}()

	list, err := l.host.Poller.Poll()
	if err != nil {
		logger.Logf(logger.Allow, "gamepad", "poll: %v", err)
		return nil, false
	}

	return list, true
}
