package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the map.
const (
	GroupGround      = "Ground"
	GroupWater       = "Water"
	GroupExit        = "Exit"
	GroupPlayerSpawn = "PlayerSpawn"

	// Optional tile layer whose non-empty tiles become ground.
	LayerSolidTiles = "wg-tiles"
)

var (
	ErrNoSpawn  = errors.New("leveldata: no PlayerSpawn object")
	ErrNoLevels = errors.New("leveldata: no .tmx files")
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   stem(tmxPath),
		File:   tmxPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			level.Ground = appendRects(level.Ground, og.Objects)
		case GroupWater:
			level.Water = appendRects(level.Water, og.Objects)
		case GroupExit:
			level.Exits = appendRects(level.Exits, og.Objects)
		case GroupPlayerSpawn:
			// The leftmost spawn wins when a map has several.
			for _, o := range og.Objects {
				if spawnFound && o.X >= level.Spawn.X {
					continue
				}
				level.Spawn = Point{X: o.X, Y: o.Y}
				if name := o.Properties.GetString("levelName"); name != "" {
					level.Name = name
				}
				spawnFound = true
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("%w in %s", ErrNoSpawn, tmxPath)
	}

	// Tile-based ground, for maps drawn with a collision tileset.
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerSolidTiles {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.Ground = append(level.Ground, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	return level, nil
}

// LoadAll discovers all .tmx files in dir within fsys and loads them in file
// name order.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("leveldata: glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, dir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		level, err := Load(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func appendRects(dst []Rect, objects []*tiled.Object) []Rect {
	for _, o := range objects {
		if o.Width <= 0 || o.Height <= 0 {
			continue
		}
		dst = append(dst, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
	}
	return dst
}

func stem(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}
