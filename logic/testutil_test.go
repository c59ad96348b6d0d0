package logic

import "testing"

// interestingValues are the voltages the pull-algebra and buffer tests
// try exhaustively, grounded in the original's INTERESTING_VALUES
// table: every definite level plus both kinds of undefined.
var interestingValues = []Voltage{Floating, Low, High, Error}

// simulateComponent wires newComponent's result between driven
// constants and bare output wires, settles the circuit, and returns
// the resolved output voltages. It is the one piece of machinery
// every component test in this package is built on, mirroring the
// original's simulate_component harness.
func simulateComponent(t *testing.T, numOutputs int, newComponent func(inputs, outputs []WireRef) Component, inputValues []VoltageInput) []Voltage {
	t.Helper()

	b := NewCircuitBuilder()

	inputs := make([]WireRef, len(inputValues))
	for i := range inputs {
		inputs[i] = b.AddWire()
	}
	outputs := make([]WireRef, numOutputs)
	for i := range outputs {
		outputs[i] = b.AddWire()
	}

	for i, v := range inputValues {
		b.AddComponent(NewConstant(v), nil, []WireRef{inputs[i]})
	}

	comp := newComponent(inputs, outputs)
	b.AddComponent(comp, inputs, outputs)

	c, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !c.Propagate(64) {
		t.Fatalf("circuit did not settle within budget")
	}

	result := make([]Voltage, numOutputs)
	for i, w := range outputs {
		result[i] = c.Wire(w).Voltage
	}
	return result
}

// bitsOf decodes an unsigned integer into width Low/High voltages,
// least-significant bit first.
func bitsOf(value uint64, width int) []VoltageInput {
	out := make([]VoltageInput, width)
	for i := 0; i < width; i++ {
		out[i] = DrivingBool(value&(1<<uint(i)) != 0)
	}
	return out
}

// valueOf encodes width Low/High voltages, least-significant bit
// first, back into an unsigned integer. It is the caller's job to
// ensure none of them are Floating/Error.
func valueOf(voltages []Voltage) uint64 {
	var v uint64
	for i, b := range voltages {
		if b == High {
			v |= 1 << uint(i)
		}
	}
	return v
}
