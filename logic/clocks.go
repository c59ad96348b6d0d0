package logic

// clockTiming is the shared duty-cycle/phase schedule behind both
// clock and controlledClock: ticksLow ticks of Low followed by
// ticksHigh ticks of High, every period = ticksLow+ticksHigh ticks,
// offset by tickPhase. Grounded in
// original_source/src/components/clocks.rs's (ticks_low, ticks_high,
// tick_phase) fields and its `(tick+phase) mod period >= ticks_low`
// formula.
type clockTiming struct {
	ticksLow, ticksHigh, tickPhase uint64
}

func newClockTiming(ticksLow, ticksHigh, tickPhase uint64) clockTiming {
	if ticksLow == 0 && ticksHigh == 0 {
		ticksLow, ticksHigh = 1, 1
	}
	return clockTiming{ticksLow: ticksLow, ticksHigh: ticksHigh, tickPhase: tickPhase}
}

func (t clockTiming) stateAt(tick uint64) Voltage {
	period := t.ticksLow + t.ticksHigh
	pos := (tick + t.tickPhase) % period
	return BoolVoltage(pos >= t.ticksLow)
}

// clock is a free-running 0-in/1-out square wave following timing.
type clock struct {
	timing clockTiming
	state  Voltage
}

// NewClock returns a free-running clock: ticksLow ticks Low, then
// ticksHigh ticks High, repeating, starting tickPhase ticks into the
// cycle.
func NewClock(ticksLow, ticksHigh, tickPhase uint64) Component {
	timing := newClockTiming(ticksLow, ticksHigh, tickPhase)
	return &clock{timing: timing, state: timing.stateAt(0)}
}

func (c *clock) Update(iface *Interface) {
	iface.Output(0, Driving(c.state))
}

// Tick recomputes the schedule's state for the tick Circuit.Tick is
// advancing into (tick+1, since tick is the completed-tick count
// passed in before it increments) and reports whether it changed, so
// Circuit.Tick re-runs Update immediately.
func (c *clock) Tick(tick uint64) bool {
	newState := c.timing.stateAt(tick + 1)
	if newState == c.state {
		return false
	}
	c.state = newState
	return true
}

// controlledClock is a gated clock: 1 input (enable), 1 output.
// enable=Low holds the current state; enable=High runs the same
// timing schedule as clock; enable=Floating or Error latches the
// output to Error until enable becomes a definite level again,
// matching clocks.rs's ControlledClock::tick match arms.
type controlledClock struct {
	timing clockTiming
	state  Voltage
	enable Voltage
}

// NewControlledClock returns a gated clock following timing while its
// enable input is High.
func NewControlledClock(ticksLow, ticksHigh, tickPhase uint64) Component {
	timing := newClockTiming(ticksLow, ticksHigh, tickPhase)
	return &controlledClock{timing: timing, state: timing.stateAt(0)}
}

func (c *controlledClock) Update(iface *Interface) {
	c.enable = iface.Input(0)
	iface.Output(0, Driving(c.state))
}

func (c *controlledClock) Tick(tick uint64) bool {
	switch c.enable {
	case Low:
		return false
	case High:
		newState := c.timing.stateAt(tick + 1)
		if newState == c.state {
			return false
		}
		c.state = newState
		return true
	default: // Floating or Error
		if c.state == Error {
			return false
		}
		c.state = Error
		return true
	}
}
