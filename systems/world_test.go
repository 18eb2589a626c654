package systems

import (
	"testing"
	"time"

	"github.com/automoto/coyote-run/assets"
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/leveldata"
	"github.com/automoto/coyote-run/movement"
	"github.com/automoto/coyote-run/progress"
	"github.com/automoto/coyote-run/schedule"
	"github.com/automoto/coyote-run/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeScenes struct {
	active int
	count  int
	loads  []int
}

func (s *fakeScenes) ActiveScene() int    { return s.active }
func (s *fakeScenes) SceneCount() int     { return s.count }
func (s *fakeScenes) LoadScene(index int) { s.loads = append(s.loads, index) }

type testWorld struct {
	ecs     *ecs.ECS
	scenes  *fakeScenes
	clock   *schedule.MockClock
	sched   *schedule.Scheduler
	session *progress.Session
}

// newTestWorld builds a 320x180 level with a floor at y=160, a pool at
// x=200..232 and an exit at the right edge, as scene 1 of 3.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := &testWorld{
		ecs:     ecs.NewECS(donburi.NewWorld()),
		scenes:  &fakeScenes{active: 1, count: 3},
		clock:   schedule.NewMockClock(time.Unix(0, 0)),
		session: progress.NewSession(nil),
	}
	w.sched = schedule.NewScheduler(w.clock)

	level := &assets.Level{Level: leveldata.Level{
		Name:   "test",
		Width:  320,
		Height: 180,
		Ground: []leveldata.Rect{{X: 0, Y: 160, W: 320, H: 20}},
		Water:  []leveldata.Rect{{X: 200, Y: 144, W: 32, H: 16}},
		Exits:  []leveldata.Rect{{X: 288, Y: 128, W: 32, H: 32}},
	}}

	factory.CreateSession(w.ecs, w.session)
	factory.CreateInput(w.ecs)
	factory.CreateLevel(w.ecs, level, 1)
	factory.CreateCamera(w.ecs, 160, 90)
	SubscribeSessionEvents(w.ecs)
	return w
}

func (w *testWorld) spawnPlayer(t *testing.T, x, y float64) *donburi.Entry {
	t.Helper()
	player, err := factory.CreatePlayer(w.ecs, x, y, w.sched, w.scenes)
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	return player
}

func pendingSounds(w *testWorld) []cfg.SoundID {
	return GetOrCreateAudio(w.ecs).PendingSFX
}

func hasSound(sounds []cfg.SoundID, id cfg.SoundID) bool {
	for _, s := range sounds {
		if s == id {
			return true
		}
	}
	return false
}

func TestExitAdvancesOnce(t *testing.T) {
	w := newTestWorld(t)
	w.spawnPlayer(t, 296, 136)
	update := NewUpdateExits(w.scenes)

	for i := 0; i < 5; i++ {
		update(w.ecs)
	}
	ProcessEvents(w.ecs)

	if len(w.scenes.loads) != 1 || w.scenes.loads[0] != 2 {
		t.Fatalf("expected a single load of scene 2, got %v", w.scenes.loads)
	}
	if !hasSound(pendingSounds(w), cfg.SoundExit) {
		t.Fatalf("expected exit sound to be queued, got %v", pendingSounds(w))
	}
	if w.session.Stats.Clears != 0 {
		t.Fatalf("advancing to another level is not a clear")
	}
}

func TestExitIgnoresDeadPlayer(t *testing.T) {
	w := newTestWorld(t)
	player := w.spawnPlayer(t, 296, 136)
	components.Player.Get(player).Controller.Kill()

	NewUpdateExits(w.scenes)(w.ecs)

	if len(w.scenes.loads) != 0 {
		t.Fatalf("dead player used the exit: %v", w.scenes.loads)
	}
}

func TestLastExitRecordsClear(t *testing.T) {
	w := newTestWorld(t)
	w.scenes.active = 2
	w.session.RecordReached(2)
	w.spawnPlayer(t, 296, 136)

	NewUpdateExits(w.scenes)(w.ecs)
	ProcessEvents(w.ecs)

	if len(w.scenes.loads) != 1 || w.scenes.loads[0] != 0 {
		t.Fatalf("expected wrap to the menu, got %v", w.scenes.loads)
	}
	if w.session.Stats.Clears != 1 {
		t.Fatalf("expected one clear, got %d", w.session.Stats.Clears)
	}
}

func TestPlayerDiedUpdatesSession(t *testing.T) {
	w := newTestWorld(t)

	PlayerDiedEvent.Publish(w.ecs.World, PlayerDied{Scene: 1})
	ProcessEvents(w.ecs)

	stats := w.session.Stats
	if stats.TotalDeaths != 1 || stats.DeathsOn(1) != 1 {
		t.Fatalf("expected one death on level 1, got %+v", stats)
	}
	camera, _ := components.Camera.First(w.ecs.World)
	if shake := components.ScreenShake.Get(camera); shake.Duration == 0 {
		t.Fatalf("death did not shake the camera")
	}
	if !hasSound(pendingSounds(w), cfg.SoundDeath) {
		t.Fatalf("expected death sound to be queued, got %v", pendingSounds(w))
	}
}

func TestUpdateBoundsClampsAndKills(t *testing.T) {
	w := newTestWorld(t)
	player := w.spawnPlayer(t, -20, 40)
	components.Physics.Get(player).SpeedX = -100

	UpdateBounds(w.ecs)

	obj := components.Object.Get(player)
	if obj.X != 0 {
		t.Fatalf("expected player clamped to x=0, got %v", obj.X)
	}
	if components.Physics.Get(player).SpeedX != 0 {
		t.Fatalf("clamping should stop horizontal motion")
	}
	ctrl := components.Player.Get(player).Controller
	if !ctrl.Alive() {
		t.Fatalf("player inside the level should be alive")
	}

	obj.Y = 180 + cfg.Physics.FallMargin + 1
	obj.Update()
	UpdateBounds(w.ecs)
	if ctrl.Alive() {
		t.Fatalf("player below the level should be dead")
	}

	w.clock.Advance(cfg.Player.ReloadDelay)
	w.sched.Update()
	if len(w.scenes.loads) != 1 || w.scenes.loads[0] != 1 {
		t.Fatalf("expected reload of scene 1, got %v", w.scenes.loads)
	}
}

func TestMessageCountsDown(t *testing.T) {
	w := newTestWorld(t)
	ShowMessage(w.ecs, "1. test")

	state := getOrCreateMessageState(w.ecs)
	if state.Text != "1. test" || state.DisplayTimer != cfg.Message.DisplayFrames {
		t.Fatalf("unexpected banner state %+v", state)
	}

	GetOrCreatePause(w.ecs).IsPaused = true
	UpdateMessage(w.ecs)
	if state.DisplayTimer != cfg.Message.DisplayFrames {
		t.Fatalf("banner counted down while paused")
	}
	GetOrCreatePause(w.ecs).IsPaused = false

	for i := 0; i < cfg.Message.DisplayFrames; i++ {
		UpdateMessage(w.ecs)
	}
	if state.DisplayTimer != 0 || state.Text != "" {
		t.Fatalf("banner still showing after its duration: %+v", state)
	}
}

func TestUpdateAudioDrainsQueueWhenMuted(t *testing.T) {
	w := newTestWorld(t)
	volume := cfg.Audio.SFXVolume
	cfg.Audio.SFXVolume = 0
	defer func() { cfg.Audio.SFXVolume = volume }()

	PlaySFX(w.ecs, cfg.SoundJump)
	UpdateAudio(w.ecs)

	if n := len(pendingSounds(w)); n != 0 {
		t.Fatalf("expected queue drained, %d left", n)
	}
}

func TestJumpHeldThroughSceneLoadIsNotAPress(t *testing.T) {
	w := newTestWorld(t)
	player := w.spawnPlayer(t, 50, 136)

	// The button went down in the previous scene and is still held
	input := getOrCreateInput(w.ecs)
	input.Primed = true
	input.Previous[cfg.ActionJump] = true
	input.Current[cfg.ActionJump] = true

	UpdatePlayer(w.ecs)
	if vy := components.Physics.Get(player).SpeedY; vy != 0 {
		t.Fatalf("held button jumped on the first frame, vy=%v", vy)
	}

	input.Previous = input.Current
	input.Current[cfg.ActionJump] = false
	UpdatePlayer(w.ecs)

	input.Previous = input.Current
	input.Current[cfg.ActionJump] = true
	UpdatePlayer(w.ecs)
	if vy := components.Physics.Get(player).SpeedY; vy != -cfg.Player.JumpSpeed {
		t.Fatalf("fresh press should jump, vy=%v", vy)
	}
	if !hasSound(pendingSounds(w), cfg.SoundJump) {
		t.Fatalf("expected jump sound to be queued")
	}
}

func TestWaterKillsAndReloadsLevel(t *testing.T) {
	w := newTestWorld(t)
	player := w.spawnPlayer(t, 205, 136)
	PublishPlayerDeaths(w.ecs, player)
	ctrl := components.Player.Get(player).Controller

	UpdatePlayer(w.ecs)
	if ctrl.Alive() {
		t.Fatalf("player standing in water should be dead")
	}
	triggers := components.Animation.Get(player).Triggers
	if len(triggers) != 1 || triggers[0] != movement.TriggerDying {
		t.Fatalf("expected one Dying trigger, got %v", triggers)
	}

	// More frames in the water must not kill again
	UpdatePlayer(w.ecs)
	ProcessEvents(w.ecs)

	stats := w.session.Stats
	if stats.TotalDeaths != 1 || stats.DeathsOn(1) != 1 {
		t.Fatalf("expected one death on level 1, got %+v", stats)
	}
	if !hasSound(pendingSounds(w), cfg.SoundDeath) {
		t.Fatalf("expected death sound to be queued, got %v", pendingSounds(w))
	}

	w.clock.Advance(cfg.Player.ReloadDelay - time.Millisecond)
	w.sched.Update()
	if len(w.scenes.loads) != 0 {
		t.Fatalf("reload before the delay: %v", w.scenes.loads)
	}
	w.clock.Advance(time.Millisecond)
	w.sched.Update()
	if len(w.scenes.loads) != 1 || w.scenes.loads[0] != 1 {
		t.Fatalf("expected one reload of scene 1, got %v", w.scenes.loads)
	}
}
