package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/vecanim/animpool"
	"github.com/milk9111/vecanim/library"
	"github.com/milk9111/vecanim/vector"
	"golang.design/x/clipboard"
)

func main() {
	configPath := flag.String("config", defaultConfigPath, "viewer config (embedded default when absent)")
	debug := flag.Bool("debug", false, "log pool diagnostics and show the track overlay")
	watch := flag.Bool("watch", false, "reload animations when files in the animation directory change")
	dir := flag.String("dir", "", "animation directory, overrides the config")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *dir != "" {
		cfg.Dir = *dir
	}

	if *debug {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		animpool.SetLogger(l)
		vector.SetLogger(l)
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		clipboardOK = false
	}

	lib := library.New(cfg.Dir)
	game := NewGame(cfg, lib, *debug, clipboardOK)
	defer game.Close()

	if *watch {
		w, err := lib.Watch()
		if err != nil {
			log.Printf("watch %s: %v", cfg.Dir, err)
		} else {
			defer w.Close()
			go func() {
				for {
					select {
					case path, ok := <-w.Events:
						if !ok {
							return
						}
						log.Printf("reload %s", path)
						game.Reload(path)
					case err, ok := <-w.Errors:
						if !ok {
							return
						}
						log.Printf("watch: %v", err)
					}
				}
			}()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
