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

package provider

import (
	"context"
	"sync"

	"github.com/jetsetilly/gamepads/gamepad"
	"github.com/jetsetilly/gamepads/logger"
)

// Provider broadcasts the gamepad Registry to subscribers.
type Provider struct {
	loop *gamepad.Loop

	crit sync.Mutex
	reg  gamepad.Registry
	subs map[*Subscription]bool

	close sync.Once
	done  chan bool
}

// Subscription receives the Registry from a Provider. The current Registry is
// available to read from C as soon as the Subscription is created.
type Subscription struct {
	C <-chan gamepad.Registry

	ch  chan gamepad.Registry
	prv *Provider
}

// New is the preferred method of initialisation for the Provider type. The
// Provider does not watch the host until Start() is called.
func New(host gamepad.Host) *Provider {
	p := &Provider{
		subs: make(map[*Subscription]bool),
		done: make(chan bool),
	}
	p.loop = gamepad.NewLoop(host, p)
	return p
}

// Start watching the host. The Provider is closed automatically when the
// context is done.
func (p *Provider) Start(ctx context.Context) error {
	if err := p.loop.Start(); err != nil {
		return err
	}

	go func() {
		select {
		case <-ctx.Done():
			logger.Log(logger.Allow, "provider", "context done")
			p.Close()
		case <-p.done:
		}
	}()

	return nil
}

// Close stops watching the host and closes every Subscription channel. It is
// safe to call Close() more than once.
func (p *Provider) Close() {
	p.close.Do(func() {
		p.loop.Stop()

		p.crit.Lock()
		defer p.crit.Unlock()
		for s := range p.subs {
			close(s.ch)
		}
		p.subs = make(map[*Subscription]bool)

		close(p.done)
	})
}

// Done returns a channel that is closed when the Provider has been closed.
func (p *Provider) Done() <-chan bool {
	return p.done
}

// Gamepads returns the current Registry.
func (p *Provider) Gamepads() gamepad.Registry {
	return p.Registry()
}

// SetGamepads replaces the shared Registry and broadcasts it to every
// subscriber. It is serialised with the updates made by the host so an update
// in progress can't overwrite the new value.
func (p *Provider) SetGamepads(r gamepad.Registry) {
	p.loop.Replace(r)
}

// Registry implements the gamepad.Store interface.
func (p *Provider) Registry() gamepad.Registry {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.reg
}

// SetRegistry implements the gamepad.Store interface.
func (p *Provider) SetRegistry(r gamepad.Registry) {
	p.crit.Lock()
	defer p.crit.Unlock()

	p.reg = r
	for s := range p.subs {
		s.send(r)
	}
}

// Subscribe to changes of the Registry. If the Provider has already been
// closed the channel in the returned Subscription is closed.
func (p *Provider) Subscribe() *Subscription {
	ch := make(chan gamepad.Registry, 1)
	s := &Subscription{
		C:   ch,
		ch:  ch,
		prv: p,
	}

	p.crit.Lock()
	defer p.crit.Unlock()

	select {
	case <-p.done:
		close(ch)
		return s
	default:
	}

	p.subs[s] = true
	s.send(p.reg)

	return s
}

// send must be called with the Provider's critical section held. the channel
// has a buffer of one and only ever holds the most recent value
func (s *Subscription) send(r gamepad.Registry) {
	select {
	case s.ch <- r:
	default:
		select {
		case <-s.ch:
		default:
		}
		s.ch <- r
	}
}

// Cancel the Subscription. The channel is closed and will receive nothing
// further. It is safe to call Cancel() more than once.
func (s *Subscription) Cancel() {
	s.prv.crit.Lock()
	defer s.prv.crit.Unlock()
	if s.prv.subs[s] {
		delete(s.prv.subs, s)
		close(s.ch)
	}
}

type contextKey struct{}

// NewContext returns a copy of the parent context carrying the Provider.
func NewContext(parent context.Context, p *Provider) context.Context {
	return context.WithValue(parent, contextKey{}, p)
}

// FromContext returns the Provider carried by the context. The second return
// value is false if there is no Provider.
func FromContext(ctx context.Context) (*Provider, bool) {
	p, ok := ctx.Value(contextKey{}).(*Provider)
	return p, ok
}
