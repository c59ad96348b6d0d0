package logic

// wire is the addressable node between components: the net. Its
// voltage is always the resolution (§4.1) of its slots, except while
// it sits on the dirty-wire stack awaiting re-resolution.
type wire struct {
	voltage Voltage
	slots   []VoltageInput

	// invalidation is the id of the componentSet that reads this wire
	// as an input, or -1 if nothing reads it.
	invalidation int

	// next is this wire's link in the intrusive dirty-wire stack:
	// notLinked if the wire isn't dirty, listTail if it is dirty and
	// currently the bottom of the stack, otherwise the index of the
	// next dirty wire.
	next int
}

// WireState is a snapshot of one wire: its resolved voltage, and
// whether it was still on the dirty-wire stack when read (meaning the
// last propagate call did not settle it).
type WireState struct {
	Voltage  Voltage
	Unstable bool
}

func (w *wire) state() WireState {
	return WireState{
		Voltage:  w.voltage,
		Unstable: w.next != notLinked,
	}
}
