package movement

// JumpTimer tracks the two grace windows that decide whether a jump fires.
// Coyote is the time left to jump after leaving the ground, Buffer the time
// left to honour a press made before landing.
type JumpTimer struct {
	Coyote float64
	Buffer float64
}

// Step advances both windows by dt and reports whether a jump fires this
// frame. A jump consumes both windows.
func (t *JumpTimer) Step(grounded, pressed bool, dt, coyoteTime, bufferTime float64) bool {
	if dt < 0 {
		dt = 0
	}

	if grounded {
		t.Coyote = coyoteTime
	} else {
		t.Coyote = decay(t.Coyote, dt)
	}

	if pressed {
		t.Buffer = bufferTime
	} else if t.Buffer > 0 {
		t.Buffer = decay(t.Buffer, dt)
	}

	if t.Coyote > 0 && t.Buffer > 0 {
		t.Coyote = 0
		t.Buffer = 0
		return true
	}
	return false
}

func decay(v, dt float64) float64 {
	v -= dt
	if v < 0 {
		return 0
	}
	return v
}
