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

package gamepad_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/gamepads/curated"
	"github.com/jetsetilly/gamepads/frame"
	"github.com/jetsetilly/gamepads/gamepad"
	"github.com/jetsetilly/gamepads/gamepad/gamepadtest"
	"github.com/jetsetilly/gamepads/test"
)

func TestLoopRequiresScheduler(t *testing.T) {
	l := gamepad.NewLoop(gamepad.Host{}, &gamepadtest.Store{})
	err := l.Start()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gamepad.NoScheduler))
	test.ExpectFailure(t, l.Running())
}

func TestSparseScan(t *testing.T) {
	a := gamepadtest.Pad(0, "pad A", 4, []float64{0.1, 0.2}, 0)
	c := gamepadtest.Pad(2, "pad C", 6, []float64{-1, 1, 0, 0}, 3, 5)

	var poller gamepadtest.Poller
	poller.Set(&a, nil, &c)

	var pump frame.Pump
	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Poller: &poller, Scheduler: &pump}, store)
	test.DemandSuccess(t, l.Start())
	defer l.Stop()

	pump.Frame()

	r := store.Registry()
	test.ExpectEquality(t, r.Len(), 2)

	s, ok := r.Get(0)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, s.Equal(a))

	_, ok = r.Get(1)
	test.ExpectFailure(t, ok)

	s, ok = r.Get(2)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, s.Equal(c))
}

func TestLastWriteWins(t *testing.T) {
	var poller gamepadtest.Poller
	var pump frame.Pump
	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Poller: &poller, Scheduler: &pump}, store)
	test.DemandSuccess(t, l.Start())
	defer l.Stop()

	a1 := gamepadtest.Pad(0, "pad A", 2, []float64{0})
	b1 := gamepadtest.Pad(1, "pad B", 2, []float64{0})
	poller.Set(&a1, &b1)
	pump.Frame()

	// slot 1 is not in the second scan and so keeps the snapshot from the
	// first scan
	a2 := gamepadtest.Pad(0, "pad A", 2, []float64{0.75}, 1)
	poller.Set(&a2)
	pump.Frame()

	r := store.Registry()
	test.ExpectEquality(t, r.Len(), 2)
	s, _ := r.Get(0)
	test.ExpectSuccess(t, s.Equal(a2))
	s, _ = r.Get(1)
	test.ExpectSuccess(t, s.Equal(b1))
}

func TestReconcileIdempotent(t *testing.T) {
	a := gamepadtest.Pad(0, "pad A", 2, []float64{0.5}, 1)

	var poller gamepadtest.Poller
	poller.Set(&a)

	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Poller: &poller, Scheduler: &frame.Pump{}}, store)

	l.ReconcileAll()
	first := store.Registry()
	l.ReconcileAll()
	second := store.Registry()

	test.ExpectSuccess(t, first.Equal(second))
	test.ExpectEquality(t, store.Updates(), 2)
}

func TestMissingCapability(t *testing.T) {
	var pump frame.Pump
	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Scheduler: &pump}, store)
	test.DemandSuccess(t, l.Start())
	defer l.Stop()

	for _i := 0; _i < 100; _i++ {
		pump.Frame()
	}

	test.ExpectEquality(t, store.Registry().Len(), 0)
	test.ExpectEquality(t, store.Updates(), 0)

	// the loop is still running
	test.ExpectEquality(t, pump.Pending(), 1)
}

func TestPollFailure(t *testing.T) {
	a := gamepadtest.Pad(0, "pad A", 2, []float64{0})

	var poller gamepadtest.Poller
	poller.Set(&a)

	var pump frame.Pump
	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Poller: &poller, Scheduler: &pump}, store)
	test.DemandSuccess(t, l.Start())
	defer l.Stop()

	pump.Frame()
	before := store.Registry()
	updates := store.Updates()

	poller.Fail(errors.New("host unavailable"))
	pump.Frame()
	test.ExpectSuccess(t, store.Registry().Equal(before))
	test.ExpectEquality(t, store.Updates(), updates)

	poller.Fail(nil)
	poller.Panic(true)
	pump.Frame()
	test.ExpectSuccess(t, store.Registry().Equal(before))
	test.ExpectEquality(t, store.Updates(), updates)

	// the loop survives the panic and continues
	poller.Panic(false)
	pump.Frame()
	test.ExpectEquality(t, store.Updates(), updates+1)
}

func TestAttachBetweenFrames(t *testing.T) {
	var notifier gamepadtest.Notifier
	var pump frame.Pump
	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Notifier: &notifier, Scheduler: &pump}, store)
	test.DemandSuccess(t, l.Start())
	defer l.Stop()

	notifier.Attach(gamepadtest.Pad(3, "pad D", 4, nil))

	// no frame has been run
	test.ExpectEquality(t, pump.Frames(), 0)
	s, ok := store.Registry().Get(3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s.ID, "pad D")
}

func TestDetach(t *testing.T) {
	var notifier gamepadtest.Notifier
	var pump frame.Pump
	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Notifier: &notifier, Scheduler: &pump}, store)
	test.DemandSuccess(t, l.Start())
	defer l.Stop()

	notifier.Attach(gamepadtest.Pad(0, "pad A", 4, nil))
	notifier.Attach(gamepadtest.Pad(1, "pad B", 4, nil))
	test.ExpectEquality(t, store.Registry().Len(), 2)

	notifier.Detach(0)
	test.ExpectEquality(t, store.Registry().Len(), 1)
	_, ok := store.Registry().Get(0)
	test.ExpectFailure(t, ok)

	// detaching an empty slot does not notify the store
	updates := store.Updates()
	notifier.Detach(7)
	test.ExpectEquality(t, store.Updates(), updates)
}

func TestScanSkippedWhenNothingAttached(t *testing.T) {
	var poller gamepadtest.Poller
	var notifier gamepadtest.Notifier
	var pump frame.Pump
	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Poller: &poller, Notifier: &notifier, Scheduler: &pump}, store)
	test.DemandSuccess(t, l.Start())
	defer l.Stop()

	// one scan is made by Start()
	test.ExpectEquality(t, poller.Polls(), 1)

	pump.Frame()
	pump.Frame()
	test.ExpectEquality(t, poller.Polls(), 1)

	// once a controller is attached the host is scanned every frame
	a := gamepadtest.Pad(0, "pad A", 2, []float64{0})
	notifier.Attach(a)
	a.Axes = []float64{0.5}
	poller.Set(&a)

	pump.Frame()
	pump.Frame()
	test.ExpectEquality(t, poller.Polls(), 3)

	s, _ := store.Registry().Get(0)
	test.ExpectEquality(t, s.Axes[0], 0.5)
}

func TestTeardown(t *testing.T) {
	var poller gamepadtest.Poller
	var notifier gamepadtest.Notifier
	var pump frame.Pump
	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Poller: &poller, Notifier: &notifier, Scheduler: &pump}, store)
	test.DemandSuccess(t, l.Start())

	a := gamepadtest.Pad(0, "pad A", 2, []float64{0})
	poller.Set(&a)
	notifier.Attach(a)
	pump.Frame()

	l.Stop()
	test.ExpectFailure(t, l.Running())
	test.ExpectEquality(t, notifier.Subscribers(), 0)
	test.ExpectEquality(t, pump.Pending(), 0)

	updates := store.Updates()
	polls := poller.Polls()

	notifier.Attach(gamepadtest.Pad(1, "pad B", 2, nil))
	for _i := 0; _i < 10; _i++ {
		pump.Frame()
	}

	test.ExpectEquality(t, store.Updates(), updates)
	test.ExpectEquality(t, poller.Polls(), polls)

	// stopping twice is harmless
	l.Stop()
}

func TestRestartDoesNotLeak(t *testing.T) {
	var notifier gamepadtest.Notifier
	var pump frame.Pump
	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Notifier: &notifier, Scheduler: &pump}, store)

	for _i := 0; _i < 5; _i++ {
		test.DemandSuccess(t, l.Start())
	}
	defer l.Stop()

	test.ExpectEquality(t, notifier.Subscribers(), 1)
	test.ExpectEquality(t, pump.Pending(), 1)

	// one attach event produces one update
	updates := store.Updates()
	notifier.Attach(gamepadtest.Pad(0, "pad A", 2, nil))
	test.ExpectEquality(t, store.Updates(), updates+1)
}

func TestDirectUpdates(t *testing.T) {
	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Scheduler: &frame.Pump{}}, store)

	l.AddOrUpdate(gamepadtest.Pad(4, "pad E", 2, nil))
	test.ExpectEquality(t, store.Registry().Len(), 1)

	l.Remove(4)
	test.ExpectEquality(t, store.Registry().Len(), 0)
	test.ExpectEquality(t, store.Updates(), 2)
}

// slowNotifier widens the window between a Start() deciding what to release
// and installing its own subscription
type slowNotifier struct {
	gamepadtest.Notifier
}

func (n *slowNotifier) Subscribe(ev gamepad.Events) func() {
	time.Sleep(time.Millisecond)
	return n.Notifier.Subscribe(ev)
}

func TestConcurrentStart(t *testing.T) {
	for i := 0; i < 20; i++ {
		var notifier slowNotifier
		var pump frame.Pump
		l := gamepad.NewLoop(gamepad.Host{Notifier: &notifier, Scheduler: &pump}, &gamepadtest.Store{})

		var wg sync.WaitGroup
		for _i := 0; _i < 4; _i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				test.ExpectSuccess(t, l.Start())
			}()
		}
		wg.Wait()

		test.ExpectEquality(t, notifier.Subscribers(), 1, i)
		test.ExpectEquality(t, pump.Pending(), 1, i)

		l.Stop()
		test.ExpectEquality(t, notifier.Subscribers(), 0, i)
		test.ExpectEquality(t, pump.Pending(), 0, i)
	}
}

func TestReplace(t *testing.T) {
	var notifier gamepadtest.Notifier
	var pump frame.Pump
	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Notifier: &notifier, Scheduler: &pump}, store)
	test.DemandSuccess(t, l.Start())
	defer l.Stop()

	notifier.Attach(gamepadtest.Pad(0, "pad A", 2, nil))
	l.Replace(gamepad.NewRegistry(gamepadtest.Pad(5, "pad F", 2, nil)))

	r := store.Registry()
	test.ExpectEquality(t, r.Len(), 1)
	_, ok := r.Get(5)
	test.ExpectSuccess(t, ok)

	// events build on the replacement
	notifier.Attach(gamepadtest.Pad(1, "pad B", 2, nil))
	test.ExpectEquality(t, store.Registry().Len(), 2)
}

func TestReplaceDuringEvents(t *testing.T) {
	var notifier gamepadtest.Notifier
	var pump frame.Pump
	store := &gamepadtest.Store{}
	l := gamepad.NewLoop(gamepad.Host{Notifier: &notifier, Scheduler: &pump}, store)
	test.DemandSuccess(t, l.Start())
	defer l.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			notifier.Attach(gamepadtest.Pad(i, "pad", 2, nil))
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Replace(gamepad.NewRegistry(gamepadtest.Pad(100, "replacement", 2, nil)))
	}()
	wg.Wait()

	// attach events made before the replacement are lost but the replacement
	// itself is never overwritten
	_, ok := store.Registry().Get(100)
	test.ExpectSuccess(t, ok)
}
