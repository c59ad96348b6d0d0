package logic

// Constant is a 0-input, 1-output driver holding a literal value. Set
// only changes the stored value; Tick reports whether it changed since
// the last Update, so the next Circuit.Tick re-runs Update and drives
// the new value onto the wire. A Propagate after that Tick settles it.
type Constant struct {
	value   VoltageInput
	changed bool
}

// NewConstant returns a Constant driving value.
func NewConstant(value VoltageInput) *Constant {
	return &Constant{value: value}
}

// Set changes the driven value, marking the constant for re-update on
// the next Tick if the value actually differs. It returns the receiver
// so call sites can chain NewConstant(...).Set(...), matching the
// original Rust's builder-style &mut Self (spec.md §9).
func (c *Constant) Set(value VoltageInput) *Constant {
	if value != c.value {
		c.value = value
		c.changed = true
	}
	return c
}

// Get returns the currently driven value.
func (c *Constant) Get() VoltageInput {
	return c.value
}

func (c *Constant) Update(iface *Interface) {
	c.changed = false
	iface.Output(0, c.value)
}

func (c *Constant) Tick(uint64) bool {
	return c.changed
}

// unaryFn is the shape of a 1-in/1-out gate's truth table.
type unaryFn func(a Voltage) Voltage

// unaryGate wraps a unaryFn as a Component, giving Buffer and Not a
// single implementation.
type unaryGate struct {
	fn unaryFn
}

func (g *unaryGate) Update(iface *Interface) {
	iface.Output(0, Driving(g.fn(iface.Input(0))))
}

func identityFn(a Voltage) Voltage { return a }

func notFn(a Voltage) Voltage {
	switch a {
	case Low:
		return High
	case High:
		return Low
	default:
		return Error
	}
}

// NewBuffer returns a 1-in/1-out buffer: output equals input, Error
// propagating through unchanged.
func NewBuffer() Component { return &unaryGate{fn: identityFn} }

// NewNot returns a 1-in/1-out inverter.
func NewNot() Component { return &unaryGate{fn: notFn} }

// binaryFn is the shape of a 2-in/1-out gate's truth table.
type binaryFn func(a, b Voltage) Voltage

type binaryGate struct {
	fn binaryFn
}

func (g *binaryGate) Update(iface *Interface) {
	iface.Output(0, Driving(g.fn(iface.Input(0), iface.Input(1))))
}

// andFn implements AND's dominant short-circuit: a Low on either input
// forces a Low output even if the other input is undefined.
func andFn(a, b Voltage) Voltage {
	switch {
	case a == Low || b == Low:
		return Low
	case a == High && b == High:
		return High
	default:
		return Error
	}
}

func orFn(a, b Voltage) Voltage {
	switch {
	case a == High || b == High:
		return High
	case a == Low && b == Low:
		return Low
	default:
		return Error
	}
}

func xorFn(a, b Voltage) Voltage {
	switch {
	case (a == Low && b == High) || (a == High && b == Low):
		return High
	case (a == Low && b == Low) || (a == High && b == High):
		return Low
	default:
		return Error
	}
}

func nandFn(a, b Voltage) Voltage {
	switch {
	case a == Low || b == Low:
		return High
	case a == High && b == High:
		return Low
	default:
		return Error
	}
}

func norFn(a, b Voltage) Voltage {
	switch {
	case a == High || b == High:
		return Low
	case a == Low && b == Low:
		return High
	default:
		return Error
	}
}

func xnorFn(a, b Voltage) Voltage {
	switch {
	case (a == Low && b == High) || (a == High && b == Low):
		return Low
	case (a == Low && b == Low) || (a == High && b == High):
		return High
	default:
		return Error
	}
}

func implyFn(a, b Voltage) Voltage {
	switch {
	case a == Low || b == High:
		return High
	case a == High && b == Low:
		return Low
	default:
		return Error
	}
}

// controlFn is the controlled buffer's truth table: data passes
// through only while ctl is High; ctl Low floats the output; an
// undefined ctl drives Error.
func controlFn(data, ctl Voltage) Voltage {
	switch ctl {
	case High:
		return data
	case Low:
		return Floating
	default:
		return Error
	}
}

func controlInvertFn(data, ctl Voltage) Voltage {
	switch {
	case ctl == High && data == Low:
		return High
	case ctl == High && data == High:
		return Low
	case ctl == Low:
		return Floating
	default:
		return Error
	}
}

// NewAnd, NewOr, NewXor, NewNand, NewNor, NewXnor, NewImply return the
// corresponding 2-in/1-out gate.
func NewAnd() Component  { return &binaryGate{fn: andFn} }
func NewOr() Component   { return &binaryGate{fn: orFn} }
func NewXor() Component  { return &binaryGate{fn: xorFn} }
func NewNand() Component { return &binaryGate{fn: nandFn} }
func NewNor() Component  { return &binaryGate{fn: norFn} }
func NewXnor() Component { return &binaryGate{fn: xnorFn} }
func NewImply() Component { return &binaryGate{fn: implyFn} }

// controlGate is the 2-in/1-out (data, ctl) shape shared by
// ControlledBuffer and ControlledInverter.
type controlGate struct {
	fn binaryFn
}

func (g *controlGate) Update(iface *Interface) {
	data := iface.Input(0)
	ctl := iface.Input(1)
	iface.Output(0, Driving(g.fn(data, ctl)))
}

// NewControlledBuffer returns a (data, ctl)->1 tri-state buffer.
func NewControlledBuffer() Component { return &controlGate{fn: controlFn} }

// NewControlledInverter returns a (data, ctl)->1 tri-state inverter.
func NewControlledInverter() Component { return &controlGate{fn: controlInvertFn} }

// nAryGate left-folds a binaryFn over all of its inputs, giving the
// N-AND / N-OR / N-XOR reductions (spec.md §4.6: "left fold of the
// binary op"). The fold's identity per operator is chosen so that a
// single-input gate is the identity function and an empty gate is the
// operator's own identity element.
type nAryGate struct {
	fn       binaryFn
	identity Voltage
}

func (g *nAryGate) Update(iface *Interface) {
	n := iface.NumInputs()
	if n == 0 {
		iface.Output(0, Driving(g.identity))
		return
	}
	acc := iface.Input(0)
	for i := 1; i < n; i++ {
		acc = g.fn(acc, iface.Input(i))
	}
	iface.Output(0, Driving(acc))
}

// NewNAryAnd returns an N-in/1-out AND reduction.
func NewNAryAnd() Component { return &nAryGate{fn: andFn, identity: High} }

// NewNAryOr returns an N-in/1-out OR reduction.
func NewNAryOr() Component { return &nAryGate{fn: orFn, identity: Low} }

// NewNAryXor returns an N-in/1-out parity (XOR reduction) gate: the
// output is High iff an odd number of inputs are High, Error if any
// input is undefined.
func NewNAryXor() Component { return &nAryGate{fn: xorFn, identity: Low} }
