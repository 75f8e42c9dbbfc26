// Package reactive provides a small dependency graph of observable values.
//
// A State holds a mutable value. A Derived memoizes a pure computation over
// other nodes and recomputes lazily after any upstream write. An Effect runs a
// side effect whenever one of its sources is written.
//
// None of the types are safe for concurrent use. All reads and writes are
// expected on a single goroutine (the UI thread or a CLI run).
package reactive

import "slices"

// Source is a node other nodes can depend on.
type Source interface {
	// Version increases every time the node's value may have changed.
	Version() uint64
	addDependent(n node)
	removeDependent(n node)
}

// node is anything invalidated by an upstream write. Effects reached during
// the walk are appended to pending and run once the walk is complete.
type node interface {
	invalidate(pending *[]*Effect)
}

// State is an observable mutable value.
type State[T any] struct {
	value      T
	equal      func(a, b T) bool
	version    uint64
	dependents []node
}

// NewState returns a State holding initial. Writes that equal reports as
// unchanged are dropped. A nil equal treats every write as a change.
func NewState[T any](initial T, equal func(a, b T) bool) *State[T] {
	return &State[T]{value: initial, equal: equal}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	if s == nil {
		var zero T
		return zero
	}
	return s.value
}

// Set stores v, invalidates every dependent and runs the effects reached.
// It reports whether a write happened.
func (s *State[T]) Set(v T) bool {
	if s == nil {
		return false
	}
	if s.equal != nil && s.equal(s.value, v) { // no change
		return false
	}
	s.value = v
	s.version++
	var pending []*Effect
	for _, d := range s.dependents {
		d.invalidate(&pending)
	}
	flush(pending)
	return true
}

// Update applies fn to the current value and stores the result.
func (s *State[T]) Update(fn func(T) T) bool {
	if s == nil || fn == nil {
		return false
	}
	return s.Set(fn(s.value))
}

// Version returns the write counter.
func (s *State[T]) Version() uint64 {
	if s == nil {
		return 0
	}
	return s.version
}

func (s *State[T]) addDependent(n node) { s.dependents = append(s.dependents, n) }

func (s *State[T]) removeDependent(n node) { s.dependents = without(s.dependents, n) }

func without(nodes []node, n node) []node {
	return slices.DeleteFunc(nodes, func(d node) bool { return d == n })
}

// flush runs each pending effect once, in the order first reached.
func flush(pending []*Effect) {
	for i, e := range pending {
		seen := false
		for _, prev := range pending[:i] {
			if prev == e {
				seen = true
				break
			}
		}
		if !seen {
			e.trigger()
		}
	}
}
