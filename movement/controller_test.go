package movement

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/coyote-run/schedule"
	dmath "github.com/yohamta/donburi/features/math"
)

type fakeBody struct{ v dmath.Vec2 }

func (b *fakeBody) Velocity() dmath.Vec2     { return b.v }
func (b *fakeBody) SetVelocity(v dmath.Vec2) { b.v = v }

type fakeAnimator struct {
	bools    map[string]bool
	triggers []string
}

func (a *fakeAnimator) SetBool(name string, value bool) {
	if a.bools == nil {
		a.bools = map[string]bool{}
	}
	a.bools[name] = value
}

func (a *fakeAnimator) SetTrigger(name string) { a.triggers = append(a.triggers, name) }

type fakeFacing struct{ sign float64 }

func (f *fakeFacing) Facing() float64        { return f.sign }
func (f *fakeFacing) SetFacing(sign float64) { f.sign = sign }

type fakeContacts struct{ grounded, hazard bool }

func (c *fakeContacts) IsGrounded() bool       { return c.grounded }
func (c *fakeContacts) IsTouchingHazard() bool { return c.hazard }

type fakeScenes struct {
	active int
	count  int
	loads  []int
}

func (s *fakeScenes) ActiveScene() int    { return s.active }
func (s *fakeScenes) SceneCount() int     { return s.count }
func (s *fakeScenes) LoadScene(index int) { s.loads = append(s.loads, index) }

type rig struct {
	ctrl     *Controller
	body     *fakeBody
	anim     *fakeAnimator
	facing   *fakeFacing
	contacts *fakeContacts
	scenes   *fakeScenes
	clock    *schedule.MockClock
	sched    *schedule.Scheduler
}

func testParams() Params {
	return Params{
		RunSpeed:       160,
		JumpSpeed:      360,
		CoyoteTime:     0.1,
		JumpBufferTime: 0.1,
		ReloadDelay:    time.Second,
	}
}

func newRig(t *testing.T, p Params) *rig {
	t.Helper()
	r := &rig{
		body:     &fakeBody{},
		anim:     &fakeAnimator{},
		facing:   &fakeFacing{sign: 1},
		contacts: &fakeContacts{},
		scenes:   &fakeScenes{active: 1, count: 3},
		clock:    schedule.NewMockClock(time.Unix(0, 0)),
	}
	r.sched = schedule.NewScheduler(r.clock)
	ctrl, err := NewController(p, Deps{
		Body:      r.body,
		Animator:  r.anim,
		Facing:    r.facing,
		Contacts:  r.contacts,
		Scheduler: r.sched,
		Scenes:    r.scenes,
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	r.ctrl = ctrl
	return r
}

const frame = 1.0 / 60

func TestNewControllerRequiresDeps(t *testing.T) {
	_, err := NewController(testParams(), Deps{})
	if !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}
}

func TestGroundedJumpSameFrame(t *testing.T) {
	r := newRig(t, testParams())
	r.contacts.grounded = true
	r.body.v = dmath.Vec2{X: 0, Y: 0}

	r.ctrl.OnJump(true)
	r.ctrl.Update(frame)

	if r.body.v.Y != -360 {
		t.Fatalf("expected upward velocity -360, got %v", r.body.v.Y)
	}
	if timer := r.ctrl.Timer(); timer.Coyote != 0 || timer.Buffer != 0 {
		t.Fatalf("expected both windows consumed, got %+v", timer)
	}
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	r := newRig(t, testParams())
	r.contacts.grounded = true

	r.ctrl.OnJump(true)
	r.ctrl.Update(frame)
	r.body.v.Y = 0

	// Holding the button does not buffer another jump.
	r.ctrl.OnJump(true)
	r.ctrl.Update(frame)
	if r.body.v.Y != 0 {
		t.Fatalf("held button triggered a second jump")
	}

	r.ctrl.OnJump(false)
	r.ctrl.OnJump(true)
	r.ctrl.Update(frame)
	if r.body.v.Y != -360 {
		t.Fatalf("release and press should jump again, vy=%v", r.body.v.Y)
	}
}

func TestJumpPreservesHorizontalAndRunPreservesVertical(t *testing.T) {
	r := newRig(t, testParams())
	r.contacts.grounded = true

	r.ctrl.OnMove(1)
	r.ctrl.OnJump(true)
	r.ctrl.Update(frame)

	if r.body.v.X != 160 || r.body.v.Y != -360 {
		t.Fatalf("expected (160, -360), got %+v", r.body.v)
	}

	// Airborne frame: run must not clobber whatever vertical speed physics left.
	r.contacts.grounded = false
	r.body.v.Y = -200
	r.ctrl.OnMove(-0.5)
	r.ctrl.Update(frame)
	if r.body.v.X != -80 || r.body.v.Y != -200 {
		t.Fatalf("expected (-80, -200), got %+v", r.body.v)
	}
}

func TestCoyoteJumpAfterLeavingGround(t *testing.T) {
	r := newRig(t, testParams())
	r.contacts.grounded = true
	r.ctrl.Update(frame)

	r.contacts.grounded = false
	r.ctrl.OnJump(true)
	r.ctrl.Update(frame)

	if r.body.v.Y != -360 {
		t.Fatalf("coyote jump did not fire, vy=%v", r.body.v.Y)
	}
}

func TestBufferedJumpOnLanding(t *testing.T) {
	r := newRig(t, testParams())
	r.contacts.grounded = false

	r.ctrl.OnJump(true)
	r.ctrl.Update(0.02)
	r.ctrl.OnJump(false)
	for i := 0; i < 3; i++ {
		r.ctrl.Update(0.02)
	}
	if r.body.v.Y != 0 {
		t.Fatalf("jumped while airborne without coyote")
	}

	r.contacts.grounded = true
	r.ctrl.Update(0.02)
	if r.body.v.Y != -360 {
		t.Fatalf("buffered jump did not fire on landing, vy=%v", r.body.v.Y)
	}
}

func TestFacingAndRunningFlag(t *testing.T) {
	r := newRig(t, testParams())
	r.contacts.grounded = true

	cases := []struct {
		axis        float64
		wantFacing  float64
		wantRunning bool
	}{
		{axis: -1, wantFacing: -1, wantRunning: true},
		{axis: 0, wantFacing: -1, wantRunning: false},
		{axis: 0.3, wantFacing: 1, wantRunning: true},
		{axis: 0, wantFacing: 1, wantRunning: false},
	}

	for i, c := range cases {
		r.ctrl.OnMove(c.axis)
		r.ctrl.Update(frame)
		if r.facing.sign != c.wantFacing {
			t.Fatalf("step %d: facing %v, want %v", i, r.facing.sign, c.wantFacing)
		}
		if r.anim.bools[ParamRunning] != c.wantRunning {
			t.Fatalf("step %d: running %v, want %v", i, r.anim.bools[ParamRunning], c.wantRunning)
		}
	}
}

func TestMoveAxisIsClamped(t *testing.T) {
	r := newRig(t, testParams())
	r.ctrl.OnMove(3)
	r.ctrl.Update(frame)
	if r.body.v.X != 160 {
		t.Fatalf("expected clamped run speed 160, got %v", r.body.v.X)
	}
}

func TestHazardContactDiesOnceAndReloadsAfterDelay(t *testing.T) {
	r := newRig(t, testParams())
	deaths := 0
	var event DeathEvent
	r.ctrl.OnDeath(func(e DeathEvent) {
		deaths++
		event = e
	})

	r.contacts.hazard = true
	r.ctrl.Update(frame)
	r.ctrl.Update(frame)
	r.ctrl.Kill()

	if r.ctrl.Alive() || r.ctrl.State() != Dying {
		t.Fatalf("expected dying state, got %v", r.ctrl.State())
	}
	if len(r.anim.triggers) != 1 || r.anim.triggers[0] != TriggerDying {
		t.Fatalf("expected exactly one Dying trigger, got %v", r.anim.triggers)
	}
	if deaths != 1 || event.Scene != 1 {
		t.Fatalf("expected one death event for scene 1, got %d %+v", deaths, event)
	}

	r.clock.Advance(999 * time.Millisecond)
	r.sched.Update()
	if len(r.scenes.loads) != 0 {
		t.Fatalf("reload issued before delay: %v", r.scenes.loads)
	}

	r.clock.Advance(time.Millisecond)
	r.sched.Update()
	r.clock.Advance(5 * time.Second)
	r.sched.Update()
	if len(r.scenes.loads) != 1 || r.scenes.loads[0] != 1 {
		t.Fatalf("expected exactly one reload of scene 1, got %v", r.scenes.loads)
	}
	if r.ctrl.State() != Reset {
		t.Fatalf("expected reset state after reload, got %v", r.ctrl.State())
	}
}

func TestDeadControllerIgnoresInput(t *testing.T) {
	r := newRig(t, testParams())
	r.contacts.grounded = true
	r.ctrl.OnMove(-1)
	r.ctrl.Update(frame)

	r.contacts.hazard = true
	r.ctrl.Update(frame)
	if r.ctrl.Alive() {
		t.Fatalf("expected controller to be dead")
	}

	r.body.v = dmath.Vec2{X: 12, Y: 34}
	r.facing.sign = -1
	before := r.ctrl.Timer()

	r.contacts.hazard = false
	r.ctrl.OnMove(1)
	r.ctrl.OnJump(true)
	for i := 0; i < 10; i++ {
		r.ctrl.Update(frame)
	}

	if r.body.v != (dmath.Vec2{X: 12, Y: 34}) {
		t.Fatalf("dead controller wrote velocity: %+v", r.body.v)
	}
	if r.facing.sign != -1 {
		t.Fatalf("dead controller flipped facing")
	}
	if r.ctrl.Timer() != before {
		t.Fatalf("dead controller changed timers: %+v -> %+v", before, r.ctrl.Timer())
	}
}

func TestDeathKickIsAppliedOnlyWhenConfigured(t *testing.T) {
	r := newRig(t, testParams())
	r.body.v = dmath.Vec2{X: 5, Y: 5}
	r.ctrl.Kill()
	if r.body.v != (dmath.Vec2{X: 5, Y: 5}) {
		t.Fatalf("zero death kick changed velocity: %+v", r.body.v)
	}

	p := testParams()
	p.DeathKick = dmath.Vec2{X: 0, Y: -200}
	r = newRig(t, p)
	r.ctrl.Kill()
	if r.body.v != p.DeathKick {
		t.Fatalf("expected death kick %+v, got %+v", p.DeathKick, r.body.v)
	}
}

func TestCancelPendingReload(t *testing.T) {
	r := newRig(t, testParams())
	if r.ctrl.Cancel() {
		t.Fatalf("cancel with nothing pending should report false")
	}

	r.ctrl.Kill()
	if !r.ctrl.Cancel() {
		t.Fatalf("expected pending reload to be cancelled")
	}
	r.clock.Advance(time.Minute)
	r.sched.Update()
	if len(r.scenes.loads) != 0 {
		t.Fatalf("cancelled reload still loaded a scene")
	}
}
