package tile

import "image/color"

// Palette holds the colors a tile derives its outline and fill from.
type Palette struct {
	DefaultOutline  color.Color
	DefaultFill     color.Color
	ObstacleOutline color.Color
	ObstacleFill    color.Color
	SelectedOutline color.Color
	SelectedFill    color.Color
}

// DefaultPalette is the palette new tiles start with.
var DefaultPalette = Palette{
	DefaultOutline:  color.RGBA{R: 204, G: 0, B: 0, A: 255},
	DefaultFill:     color.RGBA{R: 240, G: 49, B: 49, A: 255},
	ObstacleOutline: color.RGBA{R: 153, G: 51, B: 204, A: 255},
	ObstacleFill:    color.RGBA{R: 186, G: 117, B: 220, A: 255},
	SelectedOutline: color.RGBA{R: 255, G: 138, B: 0, A: 255},
	SelectedFill:    color.RGBA{R: 255, G: 174, B: 24, A: 255},
}

func (p Palette) base(obstacle bool) (outline, fill color.Color) {
	if obstacle {
		return p.ObstacleOutline, p.ObstacleFill
	}
	return p.DefaultOutline, p.DefaultFill
}
