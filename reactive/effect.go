package reactive

// Effect runs a side effect when any of its sources is written.
//
// The function may write to a source it depends on. Such a write does not
// recurse: the effect is marked for another pass and rerun after the current
// one returns. The loop ends once a pass performs no write that reaches the
// effect, so the function must skip writes that would not change anything.
type Effect struct {
	run     func()
	sources []Source
	runs    uint64
	running bool
	again   bool
	stopped bool
}

// NewEffect registers run over deps and runs it once immediately.
func NewEffect(run func(), deps ...Source) *Effect {
	e := &Effect{run: run}
	for _, dep := range deps {
		if dep != nil {
			dep.addDependent(e)
			e.sources = append(e.sources, dep)
		}
	}
	e.trigger()
	return e
}

// Runs returns how many times the effect function was called.
func (e *Effect) Runs() uint64 {
	if e == nil {
		return 0
	}
	return e.runs
}

// Stop detaches the effect from its sources; later writes no longer run it.
// Stopping inside the effect's own run ends the current pass loop.
func (e *Effect) Stop() {
	if e == nil || e.stopped {
		return
	}
	e.stopped = true
	for _, src := range e.sources {
		src.removeDependent(e)
	}
	e.sources = nil
}

func (e *Effect) invalidate(pending *[]*Effect) {
	if e.stopped {
		return
	}
	*pending = append(*pending, e)
}

func (e *Effect) trigger() {
	if e == nil || e.stopped || e.run == nil {
		return
	}
	if e.running { // re-entrant write from inside run
		e.again = true
		return
	}
	e.running = true
	defer func() { e.running = false }()
	for {
		e.again = false
		e.runs++
		e.run()
		if !e.again || e.stopped {
			return
		}
	}
}
