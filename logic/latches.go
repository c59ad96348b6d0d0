package logic

// srNorLatch is a set-reset latch built from cross-coupled NOR gates:
// 2 inputs (set, reset), 2 outputs (q, notQ). It carries state between
// Update calls, so unlike a pure gate its output depends on history,
// not just its current inputs.
type srNorLatch struct {
	q, notQ Voltage
}

// NewSrNorLatch returns an SR-NOR latch initialized to the reset
// state (q=Low, notQ=High), matching the original's power-on default.
func NewSrNorLatch() Component {
	return &srNorLatch{q: Low, notQ: High}
}

// Update applies the cross-coupled NOR latch's transition table
// directly rather than iterating the two NOR equations (q =
// NOR(reset, notQ), notQ = NOR(set, q)) to a fixed point: set=reset=0
// holds the previous state, set=reset=1 is the NOR latch's documented
// hazard (both outputs forced Low), and anything else decides q/notQ
// outright. A Floating or Error on either input makes the next state
// itself undefined.
func (l *srNorLatch) Update(iface *Interface) {
	set := iface.Input(0)
	reset := iface.Input(1)

	switch {
	case set == High && reset == High:
		l.q, l.notQ = Low, Low
	case set == High && reset == Low:
		l.q, l.notQ = High, Low
	case set == Low && reset == High:
		l.q, l.notQ = Low, High
	case set == Low && reset == Low:
		// hold previous state
	default:
		l.q, l.notQ = Error, Error
	}

	iface.Output(0, Driving(l.q))
	iface.Output(1, Driving(l.notQ))
}
