package logic

import "fmt"

// componentWrapper pairs a user component with the wiring the builder
// recorded for it, plus the iteration tag used to dedupe updates
// within one propagation iteration (§3).
type componentWrapper struct {
	impl      Component
	inputs    []WireRef
	outputs   []pin
	iteration int // notLinked ("never updated") until first run
}

// Circuit is the frozen topology produced by CircuitBuilder.Build. Its
// wire and component vectors never change size after construction;
// only slot values, resolved voltages, and the two dirty-stack heads
// mutate during propagate/tick.
type Circuit struct {
	wires         []wire
	components    []componentWrapper
	componentSets []componentSet

	iterationCount int
	tickCount      uint64

	firstWire         int // head of the dirty-wire stack
	firstComponentSet int // head of the dirty-set stack
}

// driveSlot is the shared body of Interface.Output: compare-and-write
// the slot, then splice the wire onto the dirty-wire stack if it
// wasn't already there.
func (c *Circuit) driveSlot(p pin, value VoltageInput) {
	w := &c.wires[p.wire]
	if w.slots[p.slot] == value {
		return
	}
	w.slots[p.slot] = value
	if w.next == notLinked {
		w.next = c.firstWire
		c.firstWire = int(p.wire)
	}
}

// updateWire resolves one wire, dirties its componentSet if the
// resolved voltage changed, clears the wire's dirty link, and returns
// the next wire on the stack.
func (c *Circuit) updateWire(id int) int {
	w := &c.wires[id]
	newVoltage := resolve(w.slots)

	if w.voltage != newVoltage {
		w.voltage = newVoltage
		if w.invalidation != notLinked {
			cs := &c.componentSets[w.invalidation]
			if cs.next == notLinked {
				cs.next = c.firstComponentSet
				c.firstComponentSet = w.invalidation
			}
		}
	}

	next := w.next
	w.next = notLinked
	return next
}

func (c *Circuit) updateWires() {
	for c.firstWire != listTail {
		c.firstWire = c.updateWire(c.firstWire)
	}
}

func (c *Circuit) updateComponents(iteration int) {
	for c.firstComponentSet != listTail {
		cs := &c.componentSets[c.firstComponentSet]
		for _, id := range cs.components {
			comp := &c.components[id]
			if comp.iteration == iteration {
				continue
			}
			comp.iteration = iteration
			iface := Interface{circuit: c, inputs: comp.inputs, outputs: comp.outputs}
			comp.impl.Update(&iface)
		}
		c.firstComponentSet = cs.next
		cs.next = notLinked
	}
}

// Propagate settles the circuit: it runs update_wires then
// update_components, up to maxIters times, stopping as soon as both
// worklists are empty. It returns true if the circuit settled within
// the budget, false if it was still changing when the budget ran out
// (an oscillation, or simply not enough iterations) — never an error,
// per §7.
func (c *Circuit) Propagate(maxIters int) bool {
	for i := 0; i < maxIters; i++ {
		c.updateWires()
		c.updateComponents(c.iterationCount)
		c.iterationCount++

		if c.firstWire == listTail && c.firstComponentSet == listTail {
			return true
		}
	}
	return false
}

// Tick advances the global tick counter by one. Every component's
// Ticker.Tick hook (if it implements one) is invoked, in the order the
// components were added; a component that returns true has Update
// invoked immediately so its new state reaches its outputs before the
// caller next calls Propagate.
func (c *Circuit) Tick() {
	c.iterationCount = 0
	for id := range c.components {
		comp := &c.components[id]
		comp.iteration = notLinked

		ticker, ok := comp.impl.(Ticker)
		if !ok || !ticker.Tick(c.tickCount) {
			continue
		}
		iface := Interface{circuit: c, inputs: comp.inputs, outputs: comp.outputs}
		comp.impl.Update(&iface)
	}
	c.tickCount++
}

// TickCount returns the number of completed Tick calls.
func (c *Circuit) TickCount() uint64 {
	return c.tickCount
}

// Wire returns a snapshot of a wire's current state.
func (c *Circuit) Wire(ref WireRef) WireState {
	if int(ref) < 0 || int(ref) >= len(c.wires) {
		fatalf("logic: Wire(%d) out of range (%d wires)", ref, len(c.wires))
	}
	return c.wires[ref].state()
}

// ComponentAt returns the user-supplied component value stored at ref.
// The generic type parameter must match the concrete type passed to
// CircuitBuilder.AddComponent for this ref; a mismatch is a programming
// error and aborts, same as a bad downcast (§6, §7). Most components in
// this library are pointer types, so a caller holding the returned
// value can mutate it directly — one accessor covers both
// component_ref and component_mut from spec.md §6.
func ComponentAt[C Component](c *Circuit, ref ComponentRef) C {
	if int(ref) < 0 || int(ref) >= len(c.components) {
		fatalf("logic: ComponentAt(%d) out of range (%d components)", ref, len(c.components))
	}
	v, ok := c.components[ref].impl.(C)
	if !ok {
		fatalf("logic: ComponentAt(%d) is not a %T", ref, v)
	}
	return v
}

// DebugString is a non-interactive dump of the circuit's run-time
// state: component/wire counts, tick and iteration counters, and
// whether the worklists are currently empty. It is adapted from the
// teacher's debug_console.go basePrint, trimmed to the fields that
// still make sense outside a CPU/PPU pairing and with no command loop
// attached (a REPL is a CLI feature, out of scope here).
func (c *Circuit) DebugString() string {
	return fmt.Sprintf(
		"wires=%d components=%d componentSets=%d tick=%d iteration=%d settled=%t",
		len(c.wires), len(c.components), len(c.componentSets),
		c.tickCount, c.iterationCount,
		c.firstWire == listTail && c.firstComponentSet == listTail,
	)
}
