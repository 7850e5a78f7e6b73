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
	"sort"
	"strings"
)

// Registry maps slot indexes to the most recent Snapshot for that slot. The
// zero value is an empty Registry and is ready to use.
//
// A Registry is immutable. With() and Without() return a new Registry and do
// not affect the Registry they are called on.
type Registry struct {
	entries map[int]Snapshot
}

// NewRegistry creates a Registry containing the supplied snapshots. If more
// than one snapshot has the same index, the last one wins.
func NewRegistry(snapshots ...Snapshot) Registry {
	if len(snapshots) == 0 {
		return Registry{}
	}
	r := Registry{entries: make(map[int]Snapshot, len(snapshots))}
	for _, s := range snapshots {
		r.entries[s.Index] = s
	}
	return r
}

// Len returns the number of controllers in the Registry.
func (r Registry) Len() int {
	return len(r.entries)
}

// Get returns the Snapshot for the slot index. The second return value is
// false if there is no controller in that slot.
func (r Registry) Get(index int) (Snapshot, bool) {
	s, ok := r.entries[index]
	return s, ok
}

// Indexes returns the occupied slot indexes in ascending order.
func (r Registry) Indexes() []int {
	idx := make([]int, 0, len(r.entries))
	for i := range r.entries {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// Snapshots returns every Snapshot in the Registry ordered by slot index.
func (r Registry) Snapshots() []Snapshot {
	s := make([]Snapshot, 0, len(r.entries))
	for _, i := range r.Indexes() {
		s = append(s, r.entries[i])
	}
	return s
}

// With returns a new Registry with the Snapshot in its slot. Any previous
// Snapshot in that slot is replaced entirely.
func (r Registry) With(s Snapshot) Registry {
	n := r.clone(len(r.entries) + 1)
	n.entries[s.Index] = s
	return n
}

// Without returns a new Registry with the slot removed. If the slot is not
// occupied the Registry is returned unchanged.
func (r Registry) Without(index int) Registry {
	if _, ok := r.entries[index]; !ok {
		return r
	}
	n := r.clone(len(r.entries))
	delete(n.entries, index)
	return n
}

func (r Registry) clone(size int) Registry {
	n := Registry{entries: make(map[int]Snapshot, size)}
	for k, v := range r.entries {
		n.entries[k] = v
	}
	return n
}

// Equal returns true if both registries contain the same slots and every
// slot holds an equal Snapshot.
func (r Registry) Equal(o Registry) bool {
	if len(r.entries) != len(o.entries) {
		return false
	}
	for k, v := range r.entries {
		w, ok := o.entries[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

func (r Registry) String() string {
	if len(r.entries) == 0 {
		return "no controllers"
	}
	s := strings.Builder{}
	for i, v := range r.Snapshots() {
		if i > 0 {
			s.WriteRune('\n')
		}
		s.WriteString(v.String())
	}
	return s.String()
}
