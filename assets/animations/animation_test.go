package animations

import (
	"testing"

	"github.com/automoto/coyote-run/config"
)

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 1)
	var frames []int
	for i := 0; i < 8; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}
	want := []int{0, 1, 1, 2, 2, 0, 0, 1}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("expected frames %v, got %v", want, frames)
		}
	}
	if !a.Looped {
		t.Fatalf("expected Looped after wrapping")
	}
}

func TestAnimationFreezeOnComplete(t *testing.T) {
	a := NewAnimation(0, 1, 1, 0.5)
	a.FreezeOnComplete = true
	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Frame() != 1 {
		t.Fatalf("expected frozen on last frame, got %d", a.Frame())
	}
}

func TestSingleFrameClipNeverMoves(t *testing.T) {
	a := NewAnimation(0, 0, 1, 0)
	for i := 0; i < 5; i++ {
		a.Update()
	}
	if a.Frame() != 0 || a.Looped {
		t.Fatalf("single frame clip advanced: frame=%d looped=%v", a.Frame(), a.Looped)
	}
}

func TestNewSetCoversEveryState(t *testing.T) {
	set := NewSet(config.PlayerAnimations)
	for state := range config.PlayerAnimations {
		if set[state] == nil {
			t.Fatalf("missing clip for %v", state)
		}
	}
	set[config.Running].Update()
	if fresh := NewSet(config.PlayerAnimations); fresh[config.Running] == set[config.Running] {
		t.Fatalf("sets must not share clips")
	}
}
