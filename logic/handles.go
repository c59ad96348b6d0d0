package logic

// Sentinels for the intrusive dirty-stack links carried on Wire and
// componentSet. notLinked means "not currently on the worklist";
// listTail marks the bottom of the stack. Using two distinct sentinel
// values (rather than one) is what lets a single int comparison tell
// "not queued" from "queued and this is the last entry" — see
// spec §4.3.
const (
	notLinked = -1
	listTail  = -2
)

// WireRef addresses a wire allocated by a CircuitBuilder. Handles are
// bare indices: they carry no lifetime and remain valid for as long as
// the Circuit they were built from exists.
type WireRef int

// NoWire is the sentinel WireRef. Passing it as a component's output
// wire makes that output slot a no-op: writes to it are silently
// discarded.
const NoWire WireRef = -1

// ComponentRef addresses a component allocated by a CircuitBuilder.
type ComponentRef int

// pin is a component's output endpoint: which wire it drives, and
// which of that wire's driver slots belongs to this output.
type pin struct {
	wire WireRef
	slot int
}
