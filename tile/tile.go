package tile

import (
	"cmp"
	"image/color"
	"math"
)

const (
	// CellSize is the edge length of one grid cell in pixels.
	CellSize = 60
	// Unreached marks a cost that has not been computed yet.
	Unreached = math.MaxInt
)

// Tile is one cell of the pathfinding grid. It carries the A* costs, the
// obstacle flag, the backlink used to rebuild the path and the colors the
// renderer draws it with.
//
// A Tile is not safe for concurrent use.
type Tile struct {
	x, y          int
	width, height int

	// f is the total cost, g the cost from the start, h the estimate to the goal.
	f, g, h int

	obstacle bool
	prev     *Tile

	palette       Palette
	outline, fill color.Color
}

// New returns an unreached, passable tile at pixel position (x, y).
func New(x, y, width, height int) *Tile {
	t := &Tile{
		x:       x,
		y:       y,
		width:   width,
		height:  height,
		f:       Unreached,
		g:       Unreached,
		h:       Unreached,
		palette: DefaultPalette,
	}
	t.outline, t.fill = t.palette.base(false)
	return t
}

// Reset clears the costs and backlink before a new search. Obstacles keep
// their coloring; every other tile goes back to the default colors.
func (t *Tile) Reset() {
	t.f, t.g, t.h = Unreached, Unreached, Unreached
	t.prev = nil
	if !t.obstacle {
		t.outline, t.fill = t.palette.base(false)
	}
}

// Distance returns the Manhattan distance to other in cells.
func (t *Tile) Distance(other *Tile) int {
	return abs(t.x-other.x)/CellSize + abs(t.y-other.y)/CellSize
}

// RecomputeCost sets h to the distance to goal and f to g + h. g must already
// hold the accumulated cost.
func (t *Tile) RecomputeCost(goal *Tile) {
	t.h = t.Distance(goal)
	t.f = t.g + t.h
}

// ForceF overwrites f without touching g or h. f no longer equals g + h
// until the next RecomputeCost.
func (t *Tile) ForceF(f int) {
	t.f = f
}

// Visited reports whether a search has assigned the tile a total cost.
func (t *Tile) Visited() bool {
	return t.f != Unreached
}

// ToggleObstacle flips the obstacle flag and the matching colors together,
// dropping any color override.
func (t *Tile) ToggleObstacle() {
	t.obstacle = !t.obstacle
	t.outline, t.fill = t.palette.base(t.obstacle)
}

// SetPalette replaces the palette and recolors the tile from its obstacle
// flag.
func (t *Tile) SetPalette(p Palette) {
	t.palette = p
	t.outline, t.fill = p.base(t.obstacle)
}

// SetOutline overrides the outline color. The value is not checked against
// the obstacle state.
func (t *Tile) SetOutline(c color.Color) {
	t.outline = c
}

// SetFill overrides the fill color.
func (t *Tile) SetFill(c color.Color) {
	t.fill = c
}

// Compare orders tiles by f, lowest first. Tiles with equal f compare equal.
func (t *Tile) Compare(other *Tile) int {
	return cmp.Compare(t.f, other.f)
}

// Compare is the function form of (*Tile).Compare, for slices.SortFunc.
func Compare(a, b *Tile) int {
	return a.Compare(b)
}

func (t *Tile) X() int      { return t.x }
func (t *Tile) Y() int      { return t.y }
func (t *Tile) Width() int  { return t.width }
func (t *Tile) Height() int { return t.height }

func (t *Tile) F() int { return t.f }
func (t *Tile) G() int { return t.g }
func (t *Tile) H() int { return t.h }

func (t *Tile) SetG(g int) { t.g = g }
func (t *Tile) SetH(h int) { t.h = h }

func (t *Tile) Prev() *Tile     { return t.prev }
func (t *Tile) SetPrev(p *Tile) { t.prev = p }

func (t *Tile) IsObstacle() bool { return t.obstacle }

func (t *Tile) Outline() color.Color { return t.outline }
func (t *Tile) Fill() color.Color    { return t.fill }
func (t *Tile) Palette() Palette     { return t.palette }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
