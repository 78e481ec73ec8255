// Package guard provides ordered cleanup for staged resource
// acquisition.
//
// A decode attempt acquires resources one after another (file handle,
// pipeline, decoded frame) and any stage can fail. A Stack records a
// release function per acquired resource; Unwind runs the pending
// releases in reverse acquisition order, so a failure at any stage
// releases exactly what the earlier stages acquired, never more and
// never out of order. Resources whose ownership moves to the caller
// are detached from the stack instead of released.
package guard

import "log/slog"

// Guard is the handle for one acquired resource on a Stack.
type Guard struct {
	name    string
	release func()
	done    bool
}

// Release runs the release function now. A released guard is skipped
// by Unwind; calling Release again is a no-op.
func (g *Guard) Release() {
	if g.done {
		return
	}
	g.done = true
	g.release()
}

// Detach marks the resource as transferred to a new owner. Unwind
// will not release it.
func (g *Guard) Detach() {
	g.done = true
}

// Stack records resource acquisitions in order.
//
// The zero value is ready to use. A stack belongs to a single attempt
// and is not safe for concurrent use.
type Stack struct {
	guards []*Guard
}

// Push records an acquired resource and the function that releases it.
func (s *Stack) Push(name string, release func()) *Guard {
	g := &Guard{name: name, release: release}
	s.guards = append(s.guards, g)
	return g
}

// Unwind releases all pending resources in reverse acquisition order.
// Released and detached guards are skipped; calling Unwind again is a
// no-op.
func (s *Stack) Unwind() {
	for i := len(s.guards) - 1; i >= 0; i-- {
		g := s.guards[i]
		if g.done {
			continue
		}
		g.done = true
		slog.Debug("guard: releasing resource", "resource", g.name)
		g.release()
	}
}
