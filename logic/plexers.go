package logic

// multiplexer selects one of 2^S data inputs onto a single output
// using S select inputs: inputs are [select bits..., data bits...],
// 1 output. An undefined select drives the output Error.
type multiplexer struct {
	selectBits int
}

// NewMultiplexer returns a (S+2^S)-in/1-out multiplexer with the
// given number of select bits.
func NewMultiplexer(selectBits int) Component {
	return &multiplexer{selectBits: selectBits}
}

func (m *multiplexer) Update(iface *Interface) {
	index, ok := m.index(iface)
	if !ok {
		iface.Output(0, Driving(Error))
		return
	}
	iface.Output(0, Driving(iface.Input(m.selectBits+index)))
}

func (m *multiplexer) index(iface *Interface) (int, bool) {
	index := 0
	for i := 0; i < m.selectBits; i++ {
		switch iface.Input(i) {
		case Low:
		case High:
			index |= 1 << i
		default:
			return 0, false
		}
	}
	return index, true
}

// demultiplexer routes a single data input to one of 2^S outputs,
// selected by S select inputs: inputs are [select bits..., data],
// outputs are 2^S data lines. Every output not chosen by the select
// value floats (or drives Low, under ThreeState) rather than carrying
// stale data — this requires touching EVERY output on EVERY update,
// not just the selected one, which the original's array indexing
// missed (spec.md §9: every output(j, ...) must run for every j, not
// just output(index, ...)).
type demultiplexer struct {
	selectBits int
	threeState bool
	changed    bool
}

// NewDemultiplexer returns a (S+1)-in/2^S-out demultiplexer with the
// given number of select bits.
func NewDemultiplexer(selectBits int) *demultiplexer {
	return &demultiplexer{selectBits: selectBits}
}

// SetThreeState switches the unselected outputs between floating
// (false, the default) and actively driven Low (true). Marks the
// component changed only if the value actually differs, the same
// idempotence §4.3 requires of Output.
func (d *demultiplexer) SetThreeState(threeState bool) *demultiplexer {
	if threeState != d.threeState {
		d.threeState = threeState
		d.changed = true
	}
	return d
}

// Tick reports whether SetThreeState changed the mode since the last
// Update, so the next Circuit.Tick re-runs Update and a caller-driven
// reconfiguration reaches the outputs; a Propagate after that Tick
// settles it.
func (d *demultiplexer) Tick(uint64) bool {
	return d.changed
}

func (d *demultiplexer) Update(iface *Interface) {
	d.changed = false
	n := 1 << d.selectBits
	index := 0
	valid := true
	for i := 0; i < d.selectBits; i++ {
		switch iface.Input(i) {
		case Low:
		case High:
			index |= 1 << i
		default:
			valid = false
		}
	}

	data := iface.Input(d.selectBits)

	for j := 0; j < n; j++ {
		switch {
		case !valid:
			iface.Output(j, Driving(Error))
		case j == index:
			iface.Output(j, Driving(data))
		case d.threeState:
			iface.Output(j, Driving(Low))
		default:
			iface.Output(j, Driving(Floating))
		}
	}
}

// priorityEncoder is the inverse shape of a multiplexer: N data
// inputs, it outputs the (binary) index of the highest-priority
// asserted input, plus a valid flag. Outputs are [valid, index
// bits...]: output(0) is the valid flag, output(1+b) is address bit b,
// matching plexers.rs's `interface.output(0, valid)` /
// `interface.output(1+j, ...)` layout. Priority always scans from the
// highest input index down to the lowest; Inverted does not reverse
// that scan direction, it flips which voltage level counts as
// asserted (High normally, Low when inverted), per plexers.rs's
// `Voltage::Low => if self.inverted {...}` / `Voltage::High => if
// !self.inverted {...}` arms.
type priorityEncoder struct {
	indexBits int
	inverted  bool
	changed   bool
}

// NewPriorityEncoder returns an N-in/(indexBits+1)-out priority
// encoder for N = 2^indexBits data inputs.
func NewPriorityEncoder(indexBits int) *priorityEncoder {
	return &priorityEncoder{indexBits: indexBits}
}

// SetInverted flips which voltage level is treated as asserted (High
// normally, Low when inverted); the scan always still prefers the
// highest index. Marks the component changed only if the value
// actually differs.
func (p *priorityEncoder) SetInverted(inverted bool) *priorityEncoder {
	if inverted != p.inverted {
		p.inverted = inverted
		p.changed = true
	}
	return p
}

// Tick reports whether SetInverted changed the asserted level since
// the last Update.
func (p *priorityEncoder) Tick(uint64) bool {
	return p.changed
}

func (p *priorityEncoder) Update(iface *Interface) {
	p.changed = false
	n := 1 << p.indexBits

	asserted := High
	if p.inverted {
		asserted = Low
	}

	found := -1
	for idx := n - 1; idx >= 0; idx-- {
		if iface.Input(idx) == asserted {
			found = idx
			break
		}
	}

	if found < 0 {
		iface.Output(0, Driving(Low))
		for b := 0; b < p.indexBits; b++ {
			iface.Output(1+b, Driving(Floating))
		}
		return
	}

	iface.Output(0, Driving(High))
	for b := 0; b < p.indexBits; b++ {
		iface.Output(1+b, DrivingBool(found&(1<<b) != 0))
	}
}
