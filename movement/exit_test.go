package movement

import "testing"

func TestNextSceneIndex(t *testing.T) {
	cases := []struct {
		current, count, want int
	}{
		{current: 2, count: 3, want: 0},
		{current: 0, count: 3, want: 1},
		{current: 1, count: 3, want: 2},
		{current: 0, count: 1, want: 0},
		{current: 5, count: 3, want: 0},
		{current: 0, count: 0, want: 0},
		{current: -3, count: 3, want: 0},
	}

	for _, c := range cases {
		if got := NextSceneIndex(c.current, c.count); got != c.want {
			t.Errorf("NextSceneIndex(%d, %d) = %d, want %d", c.current, c.count, got, c.want)
		}
	}
}

func TestEnterExitLoadsNextScene(t *testing.T) {
	scenes := &fakeScenes{active: 2, count: 3}
	if got := EnterExit(scenes); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if len(scenes.loads) != 1 || scenes.loads[0] != 0 {
		t.Fatalf("expected one load of scene 0, got %v", scenes.loads)
	}
}
