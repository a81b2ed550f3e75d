package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pathviz/config"
)

func main() {
	configPath := flag.String("config", "", "palette config file (yaml); embedded defaults when empty")
	watch := flag.Bool("watch", false, "reload the config file when it changes")
	dump := flag.Bool("dump", false, "print the sample path to stdout before starting")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	preview := NewPreview(cfg, *configPath)

	if *dump {
		if err := preview.scene.goal.Print(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

	if *watch && *configPath != "" {
		w, err := config.NewWatcher(filepath.Dir(*configPath))
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		preview.watcher = w
	}

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("tilepreview")

	if err := ebiten.RunGame(preview); err != nil {
		log.Fatal(err)
	}
}
