// Package render draws tiles onto an ebiten surface. It only reads the tile
// model and never changes it.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pathviz/tile"
	"golang.org/x/image/font/basicfont"
)

// LabelStyle places the cost labels inside a tile. Offsets are measured from
// the tile's top-left corner to each label's baseline.
type LabelStyle struct {
	Color       color.Color
	OffsetX     float64
	FirstLineY  float64
	LineSpacing float64
}

// DefaultLabelStyle draws white labels 20px in from the left edge.
var DefaultLabelStyle = LabelStyle{
	Color:       color.White,
	OffsetX:     20,
	FirstLineY:  20,
	LineSpacing: 15,
}

// TileRenderer draws tiles and their cost labels.
type TileRenderer struct {
	face   text.Face
	labels LabelStyle
}

// NewTileRenderer returns a renderer using the basicfont 7x13 face.
func NewTileRenderer(style LabelStyle) *TileRenderer {
	if style.Color == nil {
		style.Color = DefaultLabelStyle.Color
	}
	return &TileRenderer{
		face:   text.NewGoXFace(basicfont.Face7x13),
		labels: style,
	}
}

// SetLabelStyle replaces the label layout, e.g. after a config reload.
func (r *TileRenderer) SetLabelStyle(style LabelStyle) {
	if style.Color == nil {
		style.Color = DefaultLabelStyle.Color
	}
	r.labels = style
}

// Draw renders t with its outline and fill, or with the palette's selected
// colors when selected is set. Cost labels appear once a search has reached
// the tile.
func (r *TileRenderer) Draw(screen *ebiten.Image, t *tile.Tile, selected bool) {
	if screen == nil || t == nil {
		return
	}

	outline, fill := tileColors(t, selected)
	o, f := tileRects(t)
	vector.StrokeRect(screen, o.x, o.y, o.w, o.h, 1, outline, false)
	vector.FillRect(screen, f.x, f.y, f.w, f.h, fill, false)

	ascent := r.face.Metrics().HAscent
	for i, line := range costLabels(t) {
		x, y := r.labelOrigin(t, i)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y-ascent)
		op.ColorScale.ScaleWithColor(r.labels.Color)
		text.Draw(screen, line, r.face, op)
	}
}

type rect struct {
	x, y, w, h float32
}

// tileRects returns the outline rectangle and the fill rectangle inset by
// one pixel on the top and left. The outline is shifted half a pixel so the
// 1px stroke covers pixels x..x+w and y..y+h.
func tileRects(t *tile.Tile) (outline, fill rect) {
	x, y := float32(t.X()), float32(t.Y())
	w, h := float32(t.Width()), float32(t.Height())
	return rect{x + 0.5, y + 0.5, w, h}, rect{x + 1, y + 1, w - 1, h - 1}
}

func tileColors(t *tile.Tile, selected bool) (outline, fill color.Color) {
	if selected {
		p := t.Palette()
		return p.SelectedOutline, p.SelectedFill
	}
	return t.Outline(), t.Fill()
}

func costLabels(t *tile.Tile) []string {
	if !t.Visited() {
		return nil
	}
	return []string{
		fmt.Sprintf("F: %d", t.F()),
		fmt.Sprintf("G: %d", t.G()),
		fmt.Sprintf("H: %d", t.H()),
	}
}

// labelOrigin returns the baseline origin of the i-th label.
func (r *TileRenderer) labelOrigin(t *tile.Tile, i int) (float64, float64) {
	x := float64(t.X()) + r.labels.OffsetX
	y := float64(t.Y()) + r.labels.FirstLineY + float64(i)*r.labels.LineSpacing
	return x, y
}
