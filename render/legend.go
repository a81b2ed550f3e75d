package render

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pathviz/tile"
	"golang.org/x/image/font/basicfont"
)

type legendEntry struct {
	label string
	color color.Color
}

func legendEntries(p tile.Palette) []legendEntry {
	return []legendEntry{
		{"open", p.DefaultFill},
		{"obstacle", p.ObstacleFill},
		{"selected", p.SelectedFill},
	}
}

// NewLegendUI builds a static panel in the top-right corner listing what each
// fill color of p means.
func NewLegendUI(p tile.Palette) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Legend", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	))
	for _, e := range legendEntries(p) {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(e.label, &face, e.color),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
