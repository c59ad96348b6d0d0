package logic

import (
	"math/rand"
	"testing"
)

var propertyBitWidths = []int{1, 8, 10, 32}

func TestAdderProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, bits := range propertyBitWidths {
		mod := uint64(1) << uint(bits)
		outMod := uint64(1) << uint(bits+1)
		for i := 0; i < 64; i++ {
			a := rng.Uint64() % mod
			bb := rng.Uint64() % mod
			carryIn := rng.Intn(2) == 1

			inputs := append(append(bitsOf(a, bits), bitsOf(bb, bits)...), DrivingBool(carryIn))
			out := simulateComponent(t, bits+1, func(_, _ []WireRef) Component { return NewAdder() }, inputs)

			want := (a + bb + boolToUint64(carryIn)) % outMod
			if got := valueOf(out); got != want {
				t.Errorf("bits=%d: %#x + %#x + carry(%t) = %#x, want %#x", bits, a, bb, carryIn, got, want)
			}
		}
	}
}

func TestSubtractorProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, bits := range propertyBitWidths {
		mod := uint64(1) << uint(bits)
		outMod := uint64(1) << uint(bits+1)
		for i := 0; i < 64; i++ {
			a := rng.Uint64() % mod
			bb := rng.Uint64() % mod
			borrowIn := rng.Intn(2) == 1

			inputs := append(append(bitsOf(a, bits), bitsOf(bb, bits)...), DrivingBool(borrowIn))
			out := simulateComponent(t, bits+1, func(_, _ []WireRef) Component { return NewSubtractor() }, inputs)

			want := (a - bb - boolToUint64(borrowIn) + outMod*2) % outMod
			if got := valueOf(out); got != want {
				t.Errorf("bits=%d: %#x - %#x - borrow(%t) = %#x, want %#x", bits, a, bb, borrowIn, got, want)
			}
		}
	}
}

func TestMultiplierProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, bits := range []int{1, 8, 10} { // 32-bit is left out: its 2N-bit modulus 1<<64 does not fit in a uint64
		mod := uint64(1) << uint(bits)
		outMod := uint64(1) << uint(bits*2)
		for i := 0; i < 64; i++ {
			a := rng.Uint64() % mod
			bb := rng.Uint64() % mod
			addend := rng.Uint64() % mod

			inputs := append(append(bitsOf(a, bits), bitsOf(bb, bits)...), bitsOf(addend, bits)...)
			out := simulateComponent(t, bits*2, func(_, _ []WireRef) Component { return NewMultiplier() }, inputs)

			want := (a*bb + addend) % outMod
			if got := valueOf(out); got != want {
				t.Errorf("bits=%d: %#x * %#x + %#x = %#x, want %#x", bits, a, bb, addend, got, want)
			}
		}
	}
}

func TestMultiplierUndefinedInputErrorsThenClears(t *testing.T) {
	// a = [Floating, Low] (a0 undefined), b = [High, Low], addend = 0.
	// a0 contributes as if it were High, so column 0 carries a real 1
	// into the product, but column 0 itself is marked Error; once that
	// carry drains to 0 after column 0, columns 1-3 must NOT inherit
	// the error.
	inputs := []VoltageInput{
		Driving(Floating), Driving(Low), // a
		Driving(High), Driving(Low), // b
		Driving(Low), Driving(Low), // addend
	}
	out := simulateComponent(t, 4, func(_, _ []WireRef) Component { return NewMultiplier() }, inputs)

	if out[0] != Error {
		t.Errorf("product bit 0 = %v, want Error (undefined a0 taints its own column)", out[0])
	}
	for i := 1; i < 4; i++ {
		if out[i] == Error {
			t.Errorf("product bit %d = Error, want the error to have cleared once its carry drained", i)
		}
	}
}

func TestNegatorProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, bits := range propertyBitWidths {
		mod := uint64(1) << uint(bits)
		for i := 0; i < 64; i++ {
			a := rng.Uint64() % mod
			out := simulateComponent(t, bits, func(_, _ []WireRef) Component { return NewNegator() }, bitsOf(a, bits))
			want := (mod - a) % mod
			if got := valueOf(out); got != want {
				t.Errorf("bits=%d: -%#x = %#x, want %#x", bits, a, got, want)
			}
		}
	}
}

func TestComparatorProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, bits := range propertyBitWidths {
		mod := uint64(1) << uint(bits)
		for i := 0; i < 64; i++ {
			a := rng.Uint64() % mod
			bb := rng.Uint64() % mod

			inputs := append(bitsOf(a, bits), bitsOf(bb, bits)...)
			out := simulateComponent(t, 3, func(_, _ []WireRef) Component { return NewComparator() }, inputs)

			wantLt, wantEq, wantGt := BoolVoltage(a < bb), BoolVoltage(a == bb), BoolVoltage(a > bb)
			if out[0] != wantLt || out[1] != wantEq || out[2] != wantGt {
				t.Errorf("bits=%d: compare(%#x,%#x) = (%v,%v,%v), want (%v,%v,%v)", bits, a, bb, out[0], out[1], out[2], wantLt, wantEq, wantGt)
			}
		}
	}
}

func TestComparatorUndefinedBitIsUndecidable(t *testing.T) {
	inputs := []VoltageInput{Driving(High), Driving(Floating), Driving(Low), Driving(Low)}
	out := simulateComponent(t, 3, func(_, _ []WireRef) Component { return NewComparator() }, inputs)
	for i, v := range out {
		if v != Error {
			t.Errorf("output[%d] = %v, want Error", i, v)
		}
	}
}

func TestHalfAdderTruthTable(t *testing.T) {
	cases := []struct {
		a, b     Voltage
		sum, cry Voltage
	}{
		{Low, Low, Low, Low},
		{Low, High, High, Low},
		{High, High, Low, High},
	}
	for _, tc := range cases {
		out := simulateComponent(t, 2, func(_, _ []WireRef) Component { return NewHalfAdder() }, []VoltageInput{Driving(tc.a), Driving(tc.b)})
		if out[0] != tc.sum || out[1] != tc.cry {
			t.Errorf("halfAdder(%v,%v) = (%v,%v), want (%v,%v)", tc.a, tc.b, out[0], out[1], tc.sum, tc.cry)
		}
	}
}

func TestShifterShiftsInZeros(t *testing.T) {
	// 4-bit data, 2 select bits, shift amount 1: 0b0101 -> 0b1010.
	inputs := append(bitsOf(0, 2), bitsOf(0b0101, 4)...)
	inputs[0] = DrivingBool(true) // select = 1
	out := simulateComponent(t, 4, func(_, _ []WireRef) Component { return NewShifter(2) }, inputs)
	if got := valueOf(out); got != 0b1010 {
		t.Errorf("shift(0b0101, 1) = %#b, want %#b", got, 0b1010)
	}
}

func TestBitAdderCountsHighInputs(t *testing.T) {
	out := simulateComponent(t, 3, func(_, _ []WireRef) Component { return NewBitAdder() },
		[]VoltageInput{Driving(High), Driving(High), Driving(Low), Driving(High)})
	if got := valueOf(out); got != 3 {
		t.Errorf("bitAdder(H,H,L,H) = %d, want 3", got)
	}
}
