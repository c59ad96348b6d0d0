package logic

import "testing"

func TestControlledClockOnlyTicksWhenEnabled(t *testing.T) {
	b := NewCircuitBuilder()
	enable := b.AddWire()
	out := b.AddWire()

	enableDrv := b.AddComponent(NewConstant(Driving(Low)), nil, []WireRef{enable})
	b.AddComponent(NewControlledClock(1, 1, 0), []WireRef{enable}, []WireRef{out})

	c, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	c.Propagate(8)

	if got := c.Wire(out).Voltage; got != Low {
		t.Fatalf("disabled clock = %v, want Low", got)
	}

	c.Tick()
	c.Propagate(8)
	if got := c.Wire(out).Voltage; got != Low {
		t.Errorf("disabled clock after tick = %v, want Low (no toggle while disabled)", got)
	}

	ConstantAt(c, enableDrv).Set(Driving(High))
	c.Tick()
	c.Propagate(8)
	c.Tick()
	c.Propagate(8)
	if got := c.Wire(out).Voltage; got != High {
		t.Errorf("enabled clock after tick = %v, want High", got)
	}
}

func TestControlledClockUndefinedEnableLatchesError(t *testing.T) {
	b := NewCircuitBuilder()
	enable := b.AddWire()
	out := b.AddWire()

	b.AddComponent(NewConstant(Driving(Floating)), nil, []WireRef{enable})
	b.AddComponent(NewControlledClock(1, 1, 0), []WireRef{enable}, []WireRef{out})

	c, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	c.Propagate(8)
	if got := c.Wire(out).Voltage; got != Low {
		t.Fatalf("clock before first tick = %v, want Low", got)
	}

	c.Tick()
	c.Propagate(8)
	if got := c.Wire(out).Voltage; got != Error {
		t.Errorf("clock with Floating enable = %v, want Error", got)
	}

	c.Tick()
	c.Propagate(8)
	if got := c.Wire(out).Voltage; got != Error {
		t.Errorf("clock with Floating enable after a further tick = %v, want to stay Error", got)
	}
}

func TestClockDutyCycle(t *testing.T) {
	// ticksLow=1, ticksHigh=2: an asymmetric duty cycle a single
	// halfPeriod parameter could never express.
	b := NewCircuitBuilder()
	out := b.AddWire()
	b.AddComponent(NewClock(1, 2, 0), nil, []WireRef{out})
	c, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	c.Propagate(8)

	want := []Voltage{Low, High, High, Low, High}
	for i, w := range want {
		if got := c.Wire(out).Voltage; got != w {
			t.Errorf("tick %d: clock = %v, want %v", i, got, w)
		}
		c.Tick()
		c.Propagate(8)
	}
}

func TestClockPhaseOffset(t *testing.T) {
	// ticksLow=1, ticksHigh=1, tickPhase=1: same duty cycle as
	// TestClockTogglesEveryOtherTick but shifted to start High.
	b := NewCircuitBuilder()
	out := b.AddWire()
	b.AddComponent(NewClock(1, 1, 1), nil, []WireRef{out})
	c, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	c.Propagate(8)

	want := []Voltage{High, Low, High, Low}
	for i, w := range want {
		if got := c.Wire(out).Voltage; got != w {
			t.Errorf("tick %d: clock = %v, want %v", i, got, w)
		}
		c.Tick()
		c.Propagate(8)
	}
}
