package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/automoto/coyote-run/assets"
	"github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/fonts"
	"github.com/automoto/coyote-run/progress"
	"github.com/automoto/coyote-run/scenes"
	"github.com/automoto/coyote-run/schedule"
	"github.com/automoto/coyote-run/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene    scenes.Scene
	director *scenes.Director
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(levels []*assets.Level, session *progress.Session) *Game {
	g := &Game{}
	g.director = scenes.NewDirector(g, levels, session, schedule.NewScheduler(schedule.RealClock{}))

	start := 0
	if config.Debug.SkipMenu {
		start = config.Debug.Level
	}
	g.director.Start(start)
	return g
}

func (g *Game) Update() error {
	g.director.Update()
	if g.director.Quitting() {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func parseFlags() error {
	level := flag.Int("level", 0, "start directly in this level (1-based), skipping the menu")
	flag.BoolVar(&config.Debug.Draw, "debug", false, "draw collision boxes and controller state")
	flag.Float64Var(&config.Debug.TimeScale, "timescale", 1, "game time multiplier")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "path to a tuning.yaml overriding movement values")
	flag.BoolVar(&config.Debug.Watch, "watch", false, "reload the -tuning file when it changes")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	if *mute {
		config.Audio.SFXVolume = 0
	}
	if *level > 0 {
		config.Debug.SkipMenu = true
		config.Debug.Level = *level
	}
	if config.Debug.TimeScale <= 0 {
		return fmt.Errorf("timescale must be positive, got %v", config.Debug.TimeScale)
	}
	if config.Debug.Watch && config.Debug.TuningPath == "" {
		return errors.New("-watch needs -tuning")
	}
	return nil
}

func main() {
	if err := parseFlags(); err != nil {
		log.Fatal(err)
	}

	if config.Debug.TuningPath != "" {
		if err := config.ApplyTuningFile(config.Debug.TuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal(err)
	}

	var store progress.Store
	if m, err := progress.Open("coyote-run"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		store = m
	}
	session := progress.NewSession(store)

	systems.PreloadAllSFX()

	levels := assets.NewLevelLoader().MustLoadLevels()
	game := NewGame(levels, session)

	if config.Debug.Watch {
		watcher, err := config.NewTuningWatcher(config.Debug.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer watcher.Close()
			game.director.WatchTuning(watcher)
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
