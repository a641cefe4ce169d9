package asyncimage

// transitionState is the view-local state driving the cross-fade: the phase
// currently shown, the phase shown immediately before it, and which of the
// two layers sits on top. All mutation happens on the event loop.
type transitionState struct {
	current  Phase
	previous Phase
	newOnTop bool

	// rev increments on every advance so the renderer can detect transitions
	// without comparing phase values.
	rev uint64
}

// advance applies one completed fetch result: the outgoing phase is retained
// for the cross-fade, the resolved phase becomes current, and the current
// layer moves on top. Never called while a fetch is still in flight.
func (ts *transitionState) advance(next Phase) {
	ts.previous = ts.current
	ts.current = next
	ts.newOnTop = true
	ts.rev++
}
