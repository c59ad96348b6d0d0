package logic

// Component is the contract every gate, latch, clock, and arithmetic
// block in this library implements. Update is called whenever at
// least one input wire has changed (and once at build time, and once
// per tick if Tick returns true). It is free to read every input and
// write every output on each call — writing the value a slot already
// holds is a no-op (§4.3), so components do not need to track what
// they last wrote.
type Component interface {
	Update(iface *Interface)
}

// Ticker is implemented by components whose internal state can change
// independently of their inputs — clocks, and any Constant whose value
// was just changed by the caller. Tick is invoked once per
// Circuit.Tick, before propagation; returning true tells the engine to
// invoke Update immediately so the new state reaches the component's
// outputs. Components with no time-dependent behavior simply don't
// implement this interface, which is equivalent to always returning
// false.
type Ticker interface {
	Tick(tick uint64) bool
}

// Interface is the view of the circuit a Component sees during Update:
// its own input and output ports, indexed positionally, with no
// visibility into the rest of the graph.
type Interface struct {
	circuit *Circuit
	inputs  []WireRef
	outputs []pin
}

// NumInputs returns how many input ports this component was wired
// with. Components that are polymorphic in port width (adders,
// comparators, negators, ...) compute their behavior from this rather
// than from a stored width, per spec §4.6. The plexers and the shifter
// take their select width from their constructor instead.
func (i *Interface) NumInputs() int {
	return len(i.inputs)
}

// NumOutputs returns how many output ports this component was wired
// with.
func (i *Interface) NumOutputs() int {
	return len(i.outputs)
}

// Input returns the resolved voltage of input port idx. An
// out-of-range idx is a programming error: the component was not
// wired the way its Update method assumes.
func (i *Interface) Input(idx int) Voltage {
	if idx < 0 || idx >= len(i.inputs) {
		fatalf("logic: Input(%d) out of range (%d inputs)", idx, len(i.inputs))
	}
	return i.circuit.wires[i.inputs[idx]].voltage
}

// Output drives output port idx with value. If that port's wire is
// NoWire (the output was left unconnected at build time) the write is
// silently discarded. If value equals what the slot already holds this
// is a no-op and the dirty-wire stack is left untouched (§8 invariant
// 4).
func (i *Interface) Output(idx int, value VoltageInput) {
	if idx < 0 || idx >= len(i.outputs) {
		fatalf("logic: Output(%d) out of range (%d outputs)", idx, len(i.outputs))
	}
	p := i.outputs[idx]
	if p.wire == NoWire {
		return
	}
	i.circuit.driveSlot(p, value)
}
