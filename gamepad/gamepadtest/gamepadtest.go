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

// Package gamepadtest provides host and store implementations for testing
// code that uses the gamepad package.
package gamepadtest

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/gamepads/gamepad"
)

// Pad creates a Snapshot with the number of buttons and axes. Buttons listed
// in pressed are pressed with a value of 1.0.
func Pad(index int, id string, buttons int, axes []float64, pressed ...int) gamepad.Snapshot {
	s := gamepad.Snapshot{
		Index:   index,
		ID:      id,
		Buttons: make([]gamepad.Button, buttons),
		Axes:    axes,
	}
	for _, p := range pressed {
		s.Buttons[p] = gamepad.Button{Pressed: true, Value: 1.0}
	}
	return s
}

// Poller is a gamepad.Poller returning a list that can be changed at any
// time.
type Poller struct {
	crit  sync.Mutex
	list  []*gamepad.Snapshot
	err   error
	panic bool
	polls int
}

// Set the list returned by Poll(). Use nil entries for empty slots.
func (p *Poller) Set(list ...*gamepad.Snapshot) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.list = list
}

// Fail causes Poll() to return the error. A nil error clears the failure.
func (p *Poller) Fail(err error) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.err = err
}

// Panic causes Poll() to panic.
func (p *Poller) Panic(v bool) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.panic = v
}

// Polls returns the number of times Poll() has been called.
func (p *Poller) Polls() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.polls
}

// Poll implements the gamepad.Poller interface.
func (p *Poller) Poll() ([]*gamepad.Snapshot, error) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.polls++
	if p.panic {
		panic(fmt.Sprintf("poll %d", p.polls))
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.list, nil
}

// Notifier is a gamepad.Notifier whose events are triggered by the test.
type Notifier struct {
	crit   sync.Mutex
	nextID int
	subs   map[int]gamepad.Events
}

// Subscribe implements the gamepad.Notifier interface.
func (n *Notifier) Subscribe(ev gamepad.Events) func() {
	n.crit.Lock()
	defer n.crit.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]gamepad.Events)
	}
	id := n.nextID
	n.nextID++
	n.subs[id] = ev
	return func() {
		n.crit.Lock()
		defer n.crit.Unlock()
		delete(n.subs, id)
	}
}

// Subscribers returns the number of active subscriptions.
func (n *Notifier) Subscribers() int {
	n.crit.Lock()
	defer n.crit.Unlock()
	return len(n.subs)
}

func (n *Notifier) events() []gamepad.Events {
	n.crit.Lock()
	defer n.crit.Unlock()
	ev := make([]gamepad.Events, 0, len(n.subs))
	for _, e := range n.subs {
		ev = append(ev, e)
	}
	return ev
}

// Attach sends an attach event to every subscriber.
func (n *Notifier) Attach(s gamepad.Snapshot) {
	for _, e := range n.events() {
		if e.Attached != nil {
			e.Attached(s)
		}
	}
}

// Detach sends a detach event to every subscriber.
func (n *Notifier) Detach(index int) {
	for _, e := range n.events() {
		if e.Detached != nil {
			e.Detached(index)
		}
	}
}

// Store is a gamepad.Store that records how many times it has been updated.
type Store struct {
	crit    sync.Mutex
	reg     gamepad.Registry
	updates int
}

// Registry implements the gamepad.Store interface.
func (s *Store) Registry() gamepad.Registry {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.reg
}

// SetRegistry implements the gamepad.Store interface.
func (s *Store) SetRegistry(r gamepad.Registry) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.reg = r
	s.updates++
}

// Updates returns the number of calls to SetRegistry().
func (s *Store) Updates() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.updates
}
