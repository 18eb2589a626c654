package scenes

import (
	"log"

	"github.com/automoto/coyote-run/assets"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/progress"
	"github.com/automoto/coyote-run/schedule"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game. Dispose runs when the scene is replaced.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Dispose()
}

// SceneChanger receives the scene to show.
type SceneChanger interface {
	ChangeScene(scene Scene)
}

// Director owns the scene list: index 0 is the main menu, 1..N are the
// levels in file order. Loads requested during a frame are applied at the
// start of the next Update.
type Director struct {
	changer   SceneChanger
	levels    []*assets.Level
	session   *progress.Session
	scheduler *schedule.Scheduler
	watcher   *cfg.TuningWatcher

	active     int
	current    Scene
	pending    int
	hasPending bool
	quit       bool
}

func NewDirector(changer SceneChanger, levels []*assets.Level, session *progress.Session, scheduler *schedule.Scheduler) *Director {
	if scheduler == nil {
		scheduler = schedule.NewScheduler(schedule.RealClock{})
	}
	return &Director{
		changer:   changer,
		levels:    levels,
		session:   session,
		scheduler: scheduler,
	}
}

// WatchTuning applies tuning file changes from w. New values reach the
// player on the next scene load.
func (d *Director) WatchTuning(w *cfg.TuningWatcher) {
	d.watcher = w
}

func (d *Director) ActiveScene() int {
	return d.active
}

func (d *Director) SceneCount() int {
	return len(d.levels) + 1
}

// LoadScene requests a switch to index. Out-of-range indices fall back to
// the menu.
func (d *Director) LoadScene(index int) {
	if index < 0 || index >= d.SceneCount() {
		log.Printf("Warning: scene %d out of range [0, %d), loading menu", index, d.SceneCount())
		index = 0
	}
	d.pending = index
	d.hasPending = true
}

// Start shows scene index immediately. Use it once before the game loop.
func (d *Director) Start(index int) {
	d.LoadScene(index)
	d.applyPending()
}

func (d *Director) Quit()                          { d.quit = true }
func (d *Director) Quitting() bool                 { return d.quit }
func (d *Director) Scheduler() *schedule.Scheduler { return d.scheduler }

// Update drains tuning reloads, fires due timers and applies any pending
// scene load. Call it once per frame before the scene updates. Timers wait
// while a load is pending so they cannot overwrite it; the outgoing scene's
// Dispose cancels the ones it owns.
func (d *Director) Update() {
	d.drainTuning()
	if !d.hasPending {
		d.scheduler.Update()
	}
	d.applyPending()
}

func (d *Director) applyPending() {
	if !d.hasPending {
		return
	}
	d.hasPending = false
	index := d.pending

	if d.current != nil {
		d.current.Dispose()
	}
	previous := d.active
	d.active = index
	d.current = d.build(index, previous != index)
	if index > 0 && d.session != nil {
		d.session.RecordReached(index)
	}
	d.changer.ChangeScene(d.current)
}

func (d *Director) build(index int, entering bool) Scene {
	if index == 0 {
		return NewMenuScene(d, d.session, len(d.levels))
	}
	scene := NewPlatformerScene(d, d.levels[index-1], index, d.session)
	scene.showTitle = entering
	return scene
}

func (d *Director) drainTuning() {
	if d.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-d.watcher.Events:
			if !ok {
				d.watcher = nil
				return
			}
			if err := cfg.ApplyTuningFile(path); err != nil {
				log.Printf("Warning: Could not reload tuning: %v", err)
				continue
			}
			log.Printf("Reloaded tuning from %s", path)
		case err, ok := <-d.watcher.Errors:
			if !ok {
				d.watcher = nil
				return
			}
			log.Printf("Warning: tuning watcher: %v", err)
		default:
			return
		}
	}
}
