package movement

import (
	"math/rand"
	"testing"
)

const (
	testCoyote = 0.1
	testBuffer = 0.1
)

func TestJumpTimerCountersStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var timer JumpTimer

	for i := 0; i < 10000; i++ {
		grounded := rng.Intn(3) == 0
		pressed := rng.Intn(5) == 0
		dt := rng.Float64() * 0.05

		before := timer
		jumped := timer.Step(grounded, pressed, dt, testCoyote, testBuffer)

		if timer.Coyote < 0 || timer.Coyote > testCoyote {
			t.Fatalf("frame %d: coyote %v out of [0, %v]", i, timer.Coyote, testCoyote)
		}
		if timer.Buffer < 0 || timer.Buffer > testBuffer {
			t.Fatalf("frame %d: buffer %v out of [0, %v]", i, timer.Buffer, testBuffer)
		}

		// Recompute the pre-trigger windows to check the iff condition.
		coyote := testCoyote
		if !grounded {
			coyote = decay(before.Coyote, dt)
		}
		buffer := before.Buffer
		if pressed {
			buffer = testBuffer
		} else if buffer > 0 {
			buffer = decay(buffer, dt)
		}
		want := coyote > 0 && buffer > 0
		if jumped != want {
			t.Fatalf("frame %d: jumped=%v, want %v (coyote=%v buffer=%v)", i, jumped, want, coyote, buffer)
		}
		if jumped && (timer.Coyote != 0 || timer.Buffer != 0) {
			t.Fatalf("frame %d: counters not zeroed after jump: %+v", i, timer)
		}
	}
}

func TestJumpTimerScenarios(t *testing.T) {
	const dt = 0.02

	type frame struct {
		grounded bool
		pressed  bool
	}

	cases := []struct {
		name     string
		frames   []frame
		jumpedAt int // -1 = never
	}{
		{
			name:     "press_while_grounded",
			frames:   []frame{{true, true}},
			jumpedAt: 0,
		},
		{
			name:     "coyote_press_one_frame_after_leaving_ground",
			frames:   []frame{{true, false}, {false, true}},
			jumpedAt: 1,
		},
		{
			name:     "coyote_expired",
			frames:   []frame{{true, false}, {false, false}, {false, false}, {false, false}, {false, false}, {false, false}, {false, true}},
			jumpedAt: -1,
		},
		{
			name:     "buffered_press_before_landing",
			frames:   []frame{{false, true}, {false, false}, {false, false}, {false, false}, {true, false}},
			jumpedAt: 4,
		},
		{
			name:     "buffer_expired_before_landing",
			frames:   []frame{{false, true}, {false, false}, {false, false}, {false, false}, {false, false}, {false, false}, {true, false}},
			jumpedAt: -1,
		},
		{
			name:     "airborne_press_without_ground",
			frames:   []frame{{false, true}, {false, false}},
			jumpedAt: -1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var timer JumpTimer
			got := -1
			for i, f := range c.frames {
				if timer.Step(f.grounded, f.pressed, dt, testCoyote, testBuffer) && got == -1 {
					got = i
				}
			}
			if got != c.jumpedAt {
				t.Fatalf("expected jump at frame %d, got %d", c.jumpedAt, got)
			}
		})
	}
}

func TestJumpTimerNoDoubleTrigger(t *testing.T) {
	var timer JumpTimer
	if !timer.Step(true, true, 0.016, testCoyote, testBuffer) {
		t.Fatalf("expected jump on grounded press")
	}
	// Still touching the ground next frame but no new press.
	if timer.Step(true, false, 0.016, testCoyote, testBuffer) {
		t.Fatalf("a single press triggered two jumps")
	}
}

func TestJumpTimerNegativeDeltaIsIgnored(t *testing.T) {
	timer := JumpTimer{Coyote: 0.05, Buffer: 0}
	timer.Step(false, false, -1, testCoyote, testBuffer)
	if timer.Coyote != 0.05 {
		t.Fatalf("negative dt changed coyote to %v", timer.Coyote)
	}
}
