package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"autopoiesis/internal/sims/autopoiesis"
)

func main() {
	width := flag.Int("w", 60, "seed region width")
	height := flag.Int("h", 30, "seed region height")
	seed := flag.Int64("seed", 0, "random seed (0 uses the default)")
	decay := flag.Float64("decay", 0.01, "link decay probability")
	catalysts := flag.Int("catalysts", 2, "number of catalysts")
	steps := flag.Int("steps", 100, "updates per frame")
	fps := flag.Int("fps", 20, "frames per second")
	flag.Parse()

	cfg := autopoiesis.DefaultConfig()
	cfg.Width, cfg.Height = *width, *height
	if *seed != 0 {
		cfg.Seed = *seed
	}
	cfg.Params.DecayRate = *decay
	cfg.Params.Catalysts = *catalysts
	if *steps > 0 {
		cfg.Params.StepsPerFrame = *steps
	}
	if *fps <= 0 {
		*fps = 20
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	v, err := newViewer(screen, cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}
	run(v, time.Second/time.Duration(*fps))
	screen.Fini()
}

func run(v *viewer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.handleKey(ev) {
					return
				}
				v.draw()
			case *tcell.EventResize:
				v.screen.Sync()
				v.draw()
			}
		case <-ticker.C:
			v.frame()
			v.draw()
		}
	}
}
