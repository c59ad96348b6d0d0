// Package logic implements a discrete-event digital logic simulator:
// a netlist of wires and components is built once, then driven through
// combinational propagation and synchronous ticks.
package logic

// Voltage is the four-valued signal a wire can carry. The two bits of
// the encoding mean "has a low driver" and "has a high driver", which
// is what makes pull below a plain bitwise OR.
type Voltage uint8

const (
	Floating Voltage = 0
	Low      Voltage = 1
	High     Voltage = 2
	Error    Voltage = 3
)

func (v Voltage) String() string {
	switch v {
	case Floating:
		return "Floating"
	case Low:
		return "Low"
	case High:
		return "High"
	case Error:
		return "Error"
	default:
		return "Invalid"
	}
}

// BoolVoltage maps false/true to Low/High, the convention every
// component in this library uses to turn a definite boolean result
// into a driveable voltage.
func BoolVoltage(b bool) Voltage {
	if b {
		return High
	}
	return Low
}

// pull resolves two drivers on the same net. It is commutative,
// associative, and idempotent; Floating is the identity and Error is
// absorbing, which is what multi-driver bus resolution requires.
func pull(a, b Voltage) Voltage {
	return a | b
}

// VoltageInput is a single driver slot's value: the voltage it is
// driving, and whether it is a weak (resistor) driver such as a
// pull-up/pull-down rail.
type VoltageInput struct {
	Voltage  Voltage
	Resistor bool
}

// Driving builds a non-resistor VoltageInput for v — the common case
// for every gate and arithmetic component in this library.
func Driving(v Voltage) VoltageInput {
	return VoltageInput{Voltage: v}
}

// DrivingBool builds a non-resistor VoltageInput from a boolean.
func DrivingBool(b bool) VoltageInput {
	return VoltageInput{Voltage: BoolVoltage(b)}
}

// resolve implements the wire resolution rule (spec §4.1): strong
// drivers are folded first; resistors only contribute a value when no
// strong driver produced one.
func resolve(inputs []VoltageInput) Voltage {
	v := Floating
	for _, in := range inputs {
		if !in.Resistor {
			v = pull(v, in.Voltage)
		}
	}
	if v == Floating {
		for _, in := range inputs {
			if in.Resistor {
				v = pull(v, in.Voltage)
			}
		}
	}
	return v
}
