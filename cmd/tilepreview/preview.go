package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/pathviz/config"
	"github.com/milk9111/pathviz/render"
	"github.com/milk9111/pathviz/tile"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 640
	baseHeight = 360
)

// pathHighlight marks tiles on the reconstructed path.
var pathHighlight = color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}

type scene struct {
	tiles    []*tile.Tile
	goal     *tile.Tile
	selected *tile.Tile
}

// newScene lays out one row of sample tiles: three on a solved path ending
// at the goal, an obstacle, an unreached tile and a selected tile.
func newScene(p tile.Palette) *scene {
	const top = 2 * tile.CellSize

	tiles := make([]*tile.Tile, 0, 6)
	for i := 0; i < 6; i++ {
		t := tile.New((i+1)*tile.CellSize, top, tile.CellSize, tile.CellSize)
		t.SetPalette(p)
		tiles = append(tiles, t)
	}

	goal := tiles[2]
	for i, t := range tiles[:3] {
		t.SetG(i)
		t.RecomputeCost(goal)
		if i > 0 {
			t.SetPrev(tiles[i-1])
		}
	}
	for _, t := range goal.Path() {
		t.SetFill(pathHighlight)
	}

	tiles[3].ToggleObstacle()

	selected := tiles[5]
	selected.SetG(4)
	selected.RecomputeCost(goal)

	return &scene{tiles: tiles, goal: goal, selected: selected}
}

type Preview struct {
	frames int

	configPath string
	watcher    *config.Watcher

	scene    *scene
	renderer *render.TileRenderer
	legend   *ebitenui.UI
}

func NewPreview(cfg config.Config, configPath string) *Preview {
	p := &Preview{configPath: configPath}
	p.apply(cfg)
	return p
}

func (p *Preview) apply(cfg config.Config) {
	palette := cfg.TilePalette()
	style := labelStyle(cfg.Labels)

	p.scene = newScene(palette)
	if p.renderer == nil {
		p.renderer = render.NewTileRenderer(style)
	} else {
		p.renderer.SetLabelStyle(style)
	}
	p.legend = render.NewLegendUI(palette)
}

func labelStyle(l config.LabelSpec) render.LabelStyle {
	return render.LabelStyle{
		Color:       l.Color.Color,
		OffsetX:     l.OffsetX,
		FirstLineY:  l.FirstLineY,
		LineSpacing: l.LineSpacing,
	}
}

func (p *Preview) pollConfig() {
	if p.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-p.watcher.Events:
			if !ok {
				p.watcher = nil
				return
			}
			if filepath.Clean(name) != filepath.Clean(p.configPath) {
				continue
			}
			cfg, err := config.Load(p.configPath)
			if err != nil {
				log.Printf("failed to reload config %s: %v", p.configPath, err)
				continue
			}
			p.apply(cfg)
		case err, ok := <-p.watcher.Errors:
			if !ok {
				p.watcher = nil
				return
			}
			log.Printf("config watcher: %v", err)
		default:
			return
		}
	}
}

func (p *Preview) Update() error {
	p.frames++

	p.pollConfig()
	p.legend.Update()

	return nil
}

func (p *Preview) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	for _, t := range p.scene.tiles {
		p.renderer.Draw(screen, t, t == p.scene.selected)
	}

	p.legend.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", p.frames, ebiten.ActualFPS()))
}

func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
