package movement

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/coyote-run/schedule"
	dmath "github.com/yohamta/donburi/features/math"
)

// Body is the physics body the controller steers.
type Body interface {
	Velocity() dmath.Vec2
	SetVelocity(v dmath.Vec2)
}

// Animator receives animation parameters. Calls are fire-and-forget.
type Animator interface {
	SetBool(name string, value bool)
	SetTrigger(name string)
}

// Facing is the horizontal mirror of the rendered entity (+1 right, -1 left).
type Facing interface {
	Facing() float64
	SetFacing(sign float64)
}

// Contacts answers the per-frame collision questions.
type Contacts interface {
	IsGrounded() bool
	IsTouchingHazard() bool
}

// Scheduler runs a callback once after a real-time delay.
type Scheduler interface {
	After(d time.Duration, fn func()) schedule.CancelFunc
}

// SceneLoader is the scene manager. LoadScene tears down the current scene.
type SceneLoader interface {
	ActiveScene() int
	SceneCount() int
	LoadScene(index int)
}

// Deps bundles the collaborators a Controller needs.
type Deps struct {
	Body      Body
	Animator  Animator
	Facing    Facing
	Contacts  Contacts
	Scheduler Scheduler
	Scenes    SceneLoader
}

var ErrMissingDependency = errors.New("movement: missing dependency")

func (d Deps) validate() error {
	missing := func(name string) error {
		return fmt.Errorf("%w: %s", ErrMissingDependency, name)
	}
	switch {
	case d.Body == nil:
		return missing("body")
	case d.Animator == nil:
		return missing("animator")
	case d.Facing == nil:
		return missing("facing")
	case d.Contacts == nil:
		return missing("contacts")
	case d.Scheduler == nil:
		return missing("scheduler")
	case d.Scenes == nil:
		return missing("scenes")
	}
	return nil
}

// State is the liveness stage of a controller. It only moves forward.
type State int

const (
	Alive State = iota
	Dying
	Reset
)

func (s State) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dying:
		return "dying"
	case Reset:
		return "reset"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// DeathEvent is handed to death hooks when the controller leaves Alive.
type DeathEvent struct {
	Scene int
}

// Controller turns input events and contact queries into velocity, facing
// and animation writes, one Update per frame.
type Controller struct {
	params Params
	deps   Deps

	timer    JumpTimer
	axis     float64
	pressed  bool // press edge waiting for the next Update
	held     bool
	grounded bool

	state      State
	cancel     schedule.CancelFunc
	deathHooks []func(DeathEvent)
}

func NewController(params Params, deps Deps) (*Controller, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	return &Controller{
		params: params.Sanitized(),
		deps:   deps,
		state:  Alive,
	}, nil
}

// OnMove records the latest horizontal input axis.
func (c *Controller) OnMove(axis float64) {
	if c.state != Alive {
		return
	}
	c.axis = ClampAxis(axis)
}

// OnJump records the jump button state. Only the released->pressed edge
// buffers a jump.
func (c *Controller) OnJump(pressed bool) {
	if c.state != Alive {
		return
	}
	if pressed && !c.held {
		c.pressed = true
	}
	c.held = pressed
}

// OnDeath registers a hook called once when the controller dies.
func (c *Controller) OnDeath(fn func(DeathEvent)) {
	if fn != nil {
		c.deathHooks = append(c.deathHooks, fn)
	}
}

// Update runs one frame. dt is the elapsed game time in seconds.
func (c *Controller) Update(dt float64) {
	if c.state != Alive {
		return
	}

	if c.deps.Contacts.IsTouchingHazard() {
		c.Kill()
		return
	}

	c.grounded = c.deps.Contacts.IsGrounded()
	pressed := c.pressed
	c.pressed = false

	v := c.deps.Body.Velocity()
	if c.timer.Step(c.grounded, pressed, dt, c.params.CoyoteTime, c.params.JumpBufferTime) {
		v = JumpVelocity(v, c.params.JumpSpeed)
	}
	v = RunVelocity(v, c.axis, c.params.RunSpeed)
	c.deps.Body.SetVelocity(v)

	c.deps.Facing.SetFacing(FacingFor(v.X, c.deps.Facing.Facing()))
	c.deps.Animator.SetBool(ParamRunning, HasHorizontalSpeed(v.X))
}

// Kill moves the controller from Alive to Dying and schedules the reload of
// the active scene. Calls after the first are ignored.
func (c *Controller) Kill() {
	if c.state != Alive {
		return
	}
	c.state = Dying
	c.pressed = false
	c.deps.Animator.SetTrigger(TriggerDying)

	if c.params.DeathKick != (dmath.Vec2{}) {
		c.deps.Body.SetVelocity(c.params.DeathKick)
	}

	scene := c.deps.Scenes.ActiveScene()
	for _, hook := range c.deathHooks {
		hook(DeathEvent{Scene: scene})
	}

	c.cancel = c.deps.Scheduler.After(c.params.ReloadDelay, func() {
		c.state = Reset
		c.deps.Scenes.LoadScene(scene)
	})
}

// Cancel stops a pending reload. It reports whether a reload was stopped.
func (c *Controller) Cancel() bool {
	if c.cancel == nil {
		return false
	}
	return c.cancel()
}

func (c *Controller) Alive() bool       { return c.state == Alive }
func (c *Controller) State() State      { return c.state }
func (c *Controller) Grounded() bool    { return c.grounded }
func (c *Controller) Timer() JumpTimer  { return c.timer }
func (c *Controller) MoveAxis() float64 { return c.axis }
