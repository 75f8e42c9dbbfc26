package reactive

// Derived is a read-only value computed from other nodes. The result is
// memoized until an upstream write marks it dirty; the next Get recomputes.
type Derived[T any] struct {
	compute    func() T
	value      T
	dirty      bool
	version    uint64
	computes   uint64
	dependents []node
}

// NewDerived registers compute as a derivation over deps. compute must be pure
// and must only read the nodes listed in deps.
func NewDerived[T any](compute func() T, deps ...Source) *Derived[T] {
	d := &Derived[T]{compute: compute, dirty: true}
	for _, dep := range deps {
		if dep != nil {
			dep.addDependent(d)
		}
	}
	return d
}

// Get returns the memoized value, recomputing it first when dirty.
func (d *Derived[T]) Get() T {
	if d == nil || d.compute == nil {
		var zero T
		return zero
	}
	if d.dirty {
		d.value = d.compute()
		d.dirty = false
		d.computes++
	}
	return d.value
}

// Version increases on every invalidation.
func (d *Derived[T]) Version() uint64 {
	if d == nil {
		return 0
	}
	return d.version
}

// Computes returns how many times the derivation ran.
func (d *Derived[T]) Computes() uint64 {
	if d == nil {
		return 0
	}
	return d.computes
}

func (d *Derived[T]) addDependent(n node) { d.dependents = append(d.dependents, n) }

func (d *Derived[T]) removeDependent(n node) { d.dependents = without(d.dependents, n) }

func (d *Derived[T]) invalidate(pending *[]*Effect) {
	d.dirty = true
	d.version++
	// Always walk downstream: an effect may have read this value since the
	// last invalidation.
	for _, n := range d.dependents {
		n.invalidate(pending)
	}
}
