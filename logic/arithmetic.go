package logic

// bitAdder is a population-count adder: N inputs in, K outputs carry
// the binary count of how many inputs are High. Any undefined input
// drives every output Error.
type bitAdder struct{}

// NewBitAdder returns an N-in/K-out population-count adder. K is
// determined by how many outputs it is wired with.
func NewBitAdder() Component { return &bitAdder{} }

func (a *bitAdder) Update(iface *Interface) {
	sum := 0
	for i := 0; i < iface.NumInputs(); i++ {
		switch iface.Input(i) {
		case Low:
		case High:
			sum++
		default:
			for j := 0; j < iface.NumOutputs(); j++ {
				iface.Output(j, Driving(Error))
			}
			return
		}
	}
	for j := 0; j < iface.NumOutputs(); j++ {
		iface.Output(j, DrivingBool(sum&1 == 1))
		sum >>= 1
	}
}

// halfAdder is the textbook 2-in/2-out building block: sum is XOR,
// carry is AND.
type halfAdder struct{}

// NewHalfAdder returns a 2-in/2-out half-adder (sum, carry).
func NewHalfAdder() Component { return &halfAdder{} }

func (a *halfAdder) Update(iface *Interface) {
	x := iface.Input(0)
	y := iface.Input(1)
	iface.Output(0, Driving(xorFn(x, y)))
	iface.Output(1, Driving(andFn(x, y)))
}

// fullAdder is the 3-in/2-out (a, b, carry-in) building block. Unlike
// halfAdder it must handle every combination of the three inputs
// including partially-undefined ones, producing a best-effort carry
// per spec.md §4.6.
type fullAdder struct{}

// NewFullAdder returns a 3-in/2-out full adder (sum, carry).
func NewFullAdder() Component { return &fullAdder{} }

func (a *fullAdder) Update(iface *Interface) {
	x := iface.Input(0)
	y := iface.Input(1)
	z := iface.Input(2)

	highCount, lowCount, unknown := 0, 0, 0
	for _, v := range [3]Voltage{x, y, z} {
		switch v {
		case High:
			highCount++
		case Low:
			lowCount++
		default:
			unknown++
		}
	}

	var sum, carry Voltage
	switch {
	case unknown == 0:
		sum = BoolVoltage(highCount%2 == 1)
		carry = BoolVoltage(highCount >= 2)
	case lowCount >= 2:
		// Two known Lows force carry Low regardless of the third input.
		sum, carry = Error, Low
	case highCount >= 2:
		// Two known Highs force carry High regardless of the third input.
		sum, carry = Error, High
	default:
		sum, carry = Error, Error
	}
	iface.Output(0, Driving(sum))
	iface.Output(1, Driving(carry))
}

// adder is a ripple-carry adder: 2N+1 inputs (A bits, B bits, carry
// in), N+1 outputs (sum bits, carry out). The first undefined input
// drives every remaining output Error (spec.md §4.6).
type adder struct{}

// NewAdder returns a ripple-carry adder; its bit width is inferred
// from NumInputs (2N+1).
func NewAdder() Component { return &adder{} }

func (a *adder) Update(iface *Interface) {
	bits := iface.NumInputs() / 2

	carryIn, ok := boolFromVoltage(iface.Input(bits * 2))
	if !ok {
		for j := 0; j <= bits; j++ {
			iface.Output(j, Driving(Error))
		}
		return
	}

	carry := carryIn
	for i := 0; i < bits; i++ {
		sum, newCarry, ok := fullAdderBits(iface.Input(i), iface.Input(bits+i), carry)
		if !ok {
			for j := i; j <= bits; j++ {
				iface.Output(j, Driving(Error))
			}
			return
		}
		iface.Output(i, DrivingBool(sum))
		carry = newCarry
	}
	iface.Output(bits, DrivingBool(carry))
}

// fullAdderBits computes one ripple-carry adder stage from two defined
// bits and a carry-in, returning (sum, carry-out, ok). ok is false if
// either a or b is not a definite Low/High.
func fullAdderBits(a, b Voltage, carryIn bool) (sum bool, carryOut bool, ok bool) {
	av, aok := boolFromVoltage(a)
	bv, bok := boolFromVoltage(b)
	if !aok || !bok {
		return false, false, false
	}
	sum = (av != bv) != carryIn
	carryOut = (av && bv) || (carryIn && (av != bv))
	return sum, carryOut, true
}

// subtractor is a ripple-borrow subtractor: 2N+1 inputs (A bits, B
// bits, borrow in), N+1 outputs (difference bits, borrow out).
type subtractor struct{}

// NewSubtractor returns a ripple-borrow subtractor.
func NewSubtractor() Component { return &subtractor{} }

func (s *subtractor) Update(iface *Interface) {
	bits := iface.NumInputs() / 2

	borrowIn, ok := boolFromVoltage(iface.Input(bits * 2))
	if !ok {
		for j := 0; j <= bits; j++ {
			iface.Output(j, Driving(Error))
		}
		return
	}

	borrow := borrowIn
	for i := 0; i < bits; i++ {
		av, aok := boolFromVoltage(iface.Input(i))
		bv, bok := boolFromVoltage(iface.Input(bits + i))
		if !aok || !bok {
			for j := i; j <= bits; j++ {
				iface.Output(j, Driving(Error))
			}
			return
		}
		diff := av != bv != borrow
		newBorrow := (!av && bv) || (!(av != bv) && borrow)
		iface.Output(i, DrivingBool(diff))
		borrow = newBorrow
	}
	iface.Output(bits, DrivingBool(borrow))
}

// multiplier is a schoolbook shift-and-add multiplier: 3N inputs (A
// bits, B bits, addend bits), 2N outputs. X/Error inputs are treated
// as High for the purposes of carry propagation while latching the
// affected output column to Error until the carry drains out of it,
// matching spec.md §4.6.
type multiplier struct{}

// NewMultiplier returns a schoolbook multiplier with addend input,
// producing a 2N-bit product.
func NewMultiplier() Component { return &multiplier{} }

// Update sums partial products a[j]*b[k] into their column j+k, adds
// the addend bit at each low column, then ripples the result through
// a binary carry chain. An undefined a/b/addend bit contributes as if
// it were High (so the carry it can cause is never under-counted) and
// marks its own column erroneous; that error propagates into higher
// columns only as long as it is still live in the carry, and clears
// once the carry draining that column reaches zero, matching the
// original's `has_error = false` reset on `carry == 0`.
func (m *multiplier) Update(iface *Interface) {
	bits := iface.NumInputs() / 3
	width := bits * 2

	colSum := make([]int, width)
	colLocalErr := make([]bool, width)

	for j := 0; j < bits; j++ {
		av := iface.Input(j)
		for k := 0; k < bits; k++ {
			bv := iface.Input(bits + k)
			col := j + k
			switch {
			case av == Low || bv == Low:
			case av == High && bv == High:
				colSum[col]++
			default:
				colSum[col]++
				colLocalErr[col] = true
			}
		}
	}

	for i := 0; i < bits; i++ {
		switch iface.Input(bits*2 + i) {
		case Low:
		case High:
			colSum[i]++
		default:
			colSum[i]++
			colLocalErr[i] = true
		}
	}

	carry := 0
	hasErrorCarry := false
	for col := 0; col < width; col++ {
		total := colSum[col] + carry
		hasError := hasErrorCarry || colLocalErr[col]
		if hasError {
			iface.Output(col, Driving(Error))
		} else {
			iface.Output(col, DrivingBool(total&1 == 1))
		}
		carry = total >> 1
		hasErrorCarry = hasError && carry != 0
	}
}

// negator computes the two's-complement negation of its input via
// ripple borrow from zero.
type negator struct{}

// NewNegator returns an N-in/N-out two's-complement negator.
func NewNegator() Component { return &negator{} }

func (n *negator) Update(iface *Interface) {
	bits := iface.NumInputs()
	borrow := false
	for i := 0; i < bits; i++ {
		bv, ok := boolFromVoltage(iface.Input(i))
		if !ok {
			for j := i; j < bits; j++ {
				iface.Output(j, Driving(Error))
			}
			return
		}
		var y, newBorrow bool
		if bv {
			y = !borrow
			newBorrow = true
		} else {
			y = borrow
			newBorrow = borrow
		}
		iface.Output(i, DrivingBool(y))
		borrow = newBorrow
	}
}

// comparator is a three-way comparator: 2N inputs (A bits, B bits),
// 3 outputs one-hot (A<B, A=B, A>B). Floating and Error bits are both
// treated as "unknown" symmetrically; an unknown bit only prevents a
// definite verdict if no higher bit already decided it (spec.md §9
// calls for symmetric treatment, fixing the original's asymmetry).
type comparator struct{}

// NewComparator returns a 2N-in/3-out three-way comparator.
func NewComparator() Component { return &comparator{} }

// Update compares from the most significant bit down. The first bit
// where both sides are definite and differ decides the result. The
// first bit where either side is not definite (Floating or Error,
// treated alike) makes the overall order undecidable, since a later
// bit cannot undo the uncertainty already introduced higher up.
func (c *comparator) Update(iface *Interface) {
	bits := iface.NumInputs() / 2

	for i := bits - 1; i >= 0; i-- {
		a := iface.Input(i)
		b := iface.Input(bits + i)

		aKnown := a == Low || a == High
		bKnown := b == Low || b == High

		if !aKnown || !bKnown {
			iface.Output(0, Driving(Error))
			iface.Output(1, Driving(Error))
			iface.Output(2, Driving(Error))
			return
		}
		if a == b {
			continue
		}
		if a == High {
			iface.Output(0, Driving(Low))
			iface.Output(1, Driving(Low))
			iface.Output(2, Driving(High))
		} else {
			iface.Output(0, Driving(High))
			iface.Output(1, Driving(Low))
			iface.Output(2, Driving(Low))
		}
		return
	}

	iface.Output(0, Driving(Low))
	iface.Output(1, Driving(High))
	iface.Output(2, Driving(Low))
}

// shifter is a barrel shifter: N data inputs plus S select inputs
// encoding an unsigned shift amount, N outputs. Bits shifted in from
// the vacated end are Low; an undefined select drives every output
// Error.
type shifter struct {
	selectBits int
}

// NewShifter returns an (N+S)-in/N-out barrel shifter with the given
// number of select bits.
func NewShifter(selectBits int) Component {
	return &shifter{selectBits: selectBits}
}

func (s *shifter) Update(iface *Interface) {
	index := 0
	for i := 0; i < s.selectBits; i++ {
		switch iface.Input(i) {
		case Low:
		case High:
			index |= 1 << i
		default:
			n := iface.NumOutputs()
			for j := 0; j < n; j++ {
				iface.Output(j, Driving(Error))
			}
			return
		}
	}
	n := iface.NumOutputs()
	for j := 0; j < n; j++ {
		if j >= index {
			iface.Output(j, Driving(iface.Input(s.selectBits+j-index)))
		} else {
			iface.Output(j, Driving(Low))
		}
	}
}

// boolFromVoltage maps a definite Low/High voltage to false/true. ok
// is false for Floating or Error.
func boolFromVoltage(v Voltage) (value bool, ok bool) {
	switch v {
	case Low:
		return false, true
	case High:
		return true, true
	default:
		return false, false
	}
}
