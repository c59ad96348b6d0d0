package logic

import (
	"fmt"
	"sort"
)

// preparedWire accumulates a wire's reader set and slot count while
// the builder is mutable; build() turns it into a frozen wire plus an
// interned componentSet id.
type preparedWire struct {
	readers  []ComponentRef
	numSlots int
}

func (p *preparedWire) addReader(ref ComponentRef) {
	for _, r := range p.readers {
		if r == ref {
			return
		}
	}
	p.readers = append(p.readers, ref)
}

func (p *preparedWire) addSlot() int {
	slot := p.numSlots
	p.numSlots++
	return slot
}

// preparedComponent accumulates one component's wiring while the
// builder is mutable.
type preparedComponent struct {
	impl    Component
	inputs  []WireRef
	outputs []pin
}

// CircuitBuilder accumulates wires and components. It is the only
// mutable phase of a circuit's life: once Build is called the
// resulting Circuit's topology is frozen (§2, §3).
type CircuitBuilder struct {
	wires      []preparedWire
	components []preparedComponent
	err        error
}

// NewCircuitBuilder returns an empty builder.
func NewCircuitBuilder() *CircuitBuilder {
	return &CircuitBuilder{}
}

// AddWire allocates a new, as yet unconnected wire and returns its
// handle.
func (b *CircuitBuilder) AddWire() WireRef {
	ref := WireRef(len(b.wires))
	b.wires = append(b.wires, preparedWire{})
	return ref
}

// AddComponent records a component with its ordered input and output
// wires. Every output wire gains a fresh driver slot (unless it is
// NoWire, in which case that output becomes a no-op); every input wire
// gains this component in its reader set (deduplicated).
//
// An input or output WireRef outside this builder's own range (for
// example one left over from a larger builder) does not panic here: it
// is recorded and turned into an error from Build, per the
// "recoverable build-time misuse" class in SPEC_FULL §10.2 — a caller
// can construct this mistake, unlike a bad downcast, so it gets a
// plain error rather than glog.Fatalf. A WireRef from another builder
// whose index happens to be in range is not detected.
func (b *CircuitBuilder) AddComponent(impl Component, inputs, outputs []WireRef) ComponentRef {
	ref := ComponentRef(len(b.components))

	comp := preparedComponent{
		impl:    impl,
		inputs:  append([]WireRef(nil), inputs...),
		outputs: make([]pin, len(outputs)),
	}

	for _, in := range inputs {
		if !b.validWire(in) {
			b.recordErr(fmt.Errorf("logic: component %d input references invalid wire %d", ref, in))
			continue
		}
		b.wires[in].addReader(ref)
	}

	for i, out := range outputs {
		if out == NoWire {
			comp.outputs[i] = pin{wire: NoWire, slot: 0}
			continue
		}
		if !b.validWire(out) {
			b.recordErr(fmt.Errorf("logic: component %d output references invalid wire %d", ref, out))
			comp.outputs[i] = pin{wire: NoWire, slot: 0}
			continue
		}
		slot := b.wires[out].addSlot()
		comp.outputs[i] = pin{wire: out, slot: slot}
	}

	b.components = append(b.components, comp)
	return ref
}

func (b *CircuitBuilder) validWire(ref WireRef) bool {
	return int(ref) >= 0 && int(ref) < len(b.wires)
}

func (b *CircuitBuilder) recordErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build interns each wire's sorted reader set into a shared
// componentSet, allocates the frozen Circuit, and runs init (every
// component's Update once) so the initial driver values reach their
// wires and the dirty stacks reflect whatever those first updates
// produced. The caller is expected to call Propagate next to settle.
// Build returns a non-nil error, and no Circuit, if any AddComponent
// call referenced a wire that was never allocated by this builder.
func (b *CircuitBuilder) Build() (*Circuit, error) {
	if b.err != nil {
		return nil, b.err
	}
	sets := map[string]int{}
	var componentSets []componentSet

	wires := make([]wire, len(b.wires))
	for i, pw := range b.wires {
		invalidation := notLinked
		if len(pw.readers) > 0 {
			sorted := append([]ComponentRef(nil), pw.readers...)
			sort.Slice(sorted, func(a, c int) bool { return sorted[a] < sorted[c] })

			key := fmt.Sprint(sorted)
			id, reused := sets[key]
			if !reused {
				id = len(componentSets)
				sets[key] = id
				componentSets = append(componentSets, componentSet{components: sorted, next: notLinked})
			}
			traceIntern(len(sorted), id, reused)
			invalidation = id
		}

		voltage := Floating
		if pw.numSlots > 0 {
			voltage = Low
		}
		slots := make([]VoltageInput, pw.numSlots)
		for s := range slots {
			slots[s] = VoltageInput{Voltage: Low}
		}

		wires[i] = wire{
			voltage:      voltage,
			slots:        slots,
			invalidation: invalidation,
			next:         notLinked,
		}
	}

	components := make([]componentWrapper, len(b.components))
	for i, pc := range b.components {
		components[i] = componentWrapper{
			impl:      pc.impl,
			inputs:    pc.inputs,
			outputs:   pc.outputs,
			iteration: notLinked,
		}
	}

	c := &Circuit{
		wires:             wires,
		components:        components,
		componentSets:     componentSets,
		firstWire:         listTail,
		firstComponentSet: listTail,
	}
	c.init()
	return c, nil
}

// init runs every component's Update once against the quiescent
// circuit, pushing initial driver values into wire slots and onto the
// dirty-wire stack.
func (c *Circuit) init() {
	for id := range c.components {
		comp := &c.components[id]
		comp.iteration = notLinked
		iface := Interface{circuit: c, inputs: comp.inputs, outputs: comp.outputs}
		comp.impl.Update(&iface)
	}
}
