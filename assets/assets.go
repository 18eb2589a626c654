package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

//go:embed all:levels
var assetFS embed.FS

const levelsDir = "levels"

// Level is a parsed level plus its lazily rendered background.
type Level struct {
	leveldata.Level
	background *ebiten.Image
}

type LevelLoader struct {
	fsys fs.FS
}

func NewLevelLoader() *LevelLoader {
	return NewLevelLoaderFS(assetFS)
}

// NewLevelLoaderFS reads levels from fsys instead of the embedded assets.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// MustLoadLevels parses every level in file name order. It panics when the
// embedded levels are broken, since the game cannot start without them.
func (l *LevelLoader) MustLoadLevels() []*Level {
	parsed, err := leveldata.LoadAll(l.fsys, levelsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}

	levels := make([]*Level, 0, len(parsed))
	for _, p := range parsed {
		log.Printf("Loaded level %q (%dx%d, %d ground, %d water)", p.Name, p.Width, p.Height, len(p.Ground), len(p.Water))
		levels = append(levels, &Level{Level: *p})
	}
	return levels
}

// Background returns the static level image, rendering it on first use.
func (l *Level) Background() *ebiten.Image {
	if l.background == nil {
		l.background = renderBackground(&l.Level)
	}
	return l.background
}

func renderBackground(lvl *leveldata.Level) *ebiten.Image {
	w, h := lvl.Width, lvl.Height
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	img := ebiten.NewImage(w, h)
	img.Fill(config.Level.SkyColor)

	for _, r := range lvl.Water {
		vector.FillRect(img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), config.Level.WaterColor, false)
	}
	for _, r := range lvl.Ground {
		vector.FillRect(img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), config.Level.GroundColor, false)
		// Grass strip along the top edge
		edge := float32(3)
		if float32(r.H) < edge {
			edge = float32(r.H)
		}
		vector.FillRect(img, float32(r.X), float32(r.Y), float32(r.W), edge, config.Level.GroundEdge, false)
	}
	return img
}
