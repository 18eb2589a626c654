// Package leveldata parses TMX level files into plain collision data. It has
// no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Level holds everything the game needs from one TMX map.
type Level struct {
	Name   string // display name, from the spawn's levelName property or the file stem
	File   string // path inside the source filesystem
	Width  int    // pixels
	Height int    // pixels

	Ground []Rect // solid geometry
	Water  []Rect // hazards
	Exits  []Rect // level exit triggers
	Spawn  Point
}

// Rect is an axis-aligned box in level pixels, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// Point is a position in level pixels.
type Point struct {
	X, Y float64
}

// Contains reports whether p lies inside r (right and bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
