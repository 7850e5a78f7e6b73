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
	"testing"

	"github.com/jetsetilly/gamepads/gamepad"
	"github.com/jetsetilly/gamepads/gamepad/gamepadtest"
	"github.com/jetsetilly/gamepads/test"
)

func TestEmptyRegistry(t *testing.T) {
	var r gamepad.Registry
	test.ExpectEquality(t, r.Len(), 0)
	test.ExpectEquality(t, len(r.Indexes()), 0)
	test.ExpectEquality(t, r.String(), "no controllers")

	_, ok := r.Get(0)
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, r.Equal(gamepad.NewRegistry()))
}

func TestRegistryCopyOnWrite(t *testing.T) {
	a := gamepadtest.Pad(0, "pad A", 4, []float64{0, 0})
	b := gamepadtest.Pad(0, "pad B", 4, []float64{0.5, -0.5}, 1)

	r1 := gamepad.NewRegistry().With(a)
	r2 := r1.With(b)
	r3 := r2.Without(0)

	// earlier values are unaffected by later changes
	s, ok := r1.Get(0)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s.ID, "pad A")

	s, ok = r2.Get(0)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s.ID, "pad B")
	test.ExpectEquality(t, s.Pressed(), 1)

	test.ExpectEquality(t, r1.Len(), 1)
	test.ExpectEquality(t, r2.Len(), 1)
	test.ExpectEquality(t, r3.Len(), 0)
}

func TestRegistryReplacesWholeSnapshot(t *testing.T) {
	a := gamepadtest.Pad(1, "pad", 4, []float64{0.1, 0.2, 0.3, 0.4}, 0, 1)
	b := gamepadtest.Pad(1, "pad", 2, []float64{0.9})

	r := gamepad.NewRegistry(a).With(b)
	s, _ := r.Get(1)
	test.ExpectEquality(t, len(s.Buttons), 2)
	test.ExpectEquality(t, len(s.Axes), 1)
	test.ExpectEquality(t, s.Pressed(), 0)
}

func TestRegistryWithoutMissingSlot(t *testing.T) {
	r := gamepad.NewRegistry(gamepadtest.Pad(2, "pad", 1, nil))
	n := r.Without(5)
	test.ExpectEquality(t, n.Len(), 1)
	test.ExpectSuccess(t, n.Equal(r))
}

func TestRegistryIndexes(t *testing.T) {
	r := gamepad.NewRegistry(
		gamepadtest.Pad(3, "d", 1, nil),
		gamepadtest.Pad(0, "a", 1, nil),
		gamepadtest.Pad(2, "c", 1, nil),
	)
	idx := r.Indexes()
	test.DemandEquality(t, len(idx), 3)
	test.ExpectEquality(t, idx[0], 0)
	test.ExpectEquality(t, idx[1], 2)
	test.ExpectEquality(t, idx[2], 3)

	snaps := r.Snapshots()
	test.DemandEquality(t, len(snaps), 3)
	test.ExpectEquality(t, snaps[0].ID, "a")
	test.ExpectEquality(t, snaps[2].ID, "d")
}

func TestRegistryEqual(t *testing.T) {
	a := gamepadtest.Pad(0, "pad", 2, []float64{0.25}, 1)
	b := gamepadtest.Pad(0, "pad", 2, []float64{0.25}, 1)
	c := gamepadtest.Pad(0, "pad", 2, []float64{0.5}, 1)

	test.ExpectSuccess(t, gamepad.NewRegistry(a).Equal(gamepad.NewRegistry(b)))
	test.ExpectFailure(t, gamepad.NewRegistry(a).Equal(gamepad.NewRegistry(c)))
	test.ExpectFailure(t, gamepad.NewRegistry(a).Equal(gamepad.NewRegistry()))
	test.ExpectFailure(t, gamepad.NewRegistry(a).Equal(gamepad.NewRegistry(gamepadtest.Pad(1, "pad", 2, []float64{0.25}, 1))))
}

func TestSnapshotString(t *testing.T) {
	s := gamepadtest.Pad(2, "Xbox Controller", 3, []float64{0.5, -1}, 1)
	test.ExpectEquality(t, s.String(), "2: Xbox Controller [. * .] (+0.50 -1.00)")
}
