// Command pathviz animates a full gridpath run in the terminal: carve walls,
// pick the farthest open pair as endpoints, then watch a pathfinder walk.
//
// Usage:
//
//	pathviz [-width 30] [-height 24] [-seed N] [-algo greedy|dijkstra] [-delay 100ms]
//
// Quit with q, ESC or Ctrl-C.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/hull"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/wallgen"
)

// maxSelectRetries bounds how many times a run recarves walls after
// endpoint selection fails on a too-crowded board.
const maxSelectRetries = 16

func main() {
	var (
		width  = flag.Int("width", 30, "board width in cells")
		height = flag.Int("height", 24, "board height in cells")
		seed   = flag.Int64("seed", 0, "RNG seed; 0 derives one from the clock")
		algo   = flag.String("algo", "dijkstra", "pathfinder: greedy or dijkstra")
		delay  = flag.Duration("delay", 100*time.Millisecond, "pause between path steps")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g, finder, err := buildRun(*width, *height, *seed, *algo)
	if err != nil {
		log.Fatal(err)
	}
	if err := animate(g, finder, *delay); err != nil {
		log.Fatal(err)
	}
}

// buildRun assembles one run: grid, walls, endpoints, pathfinder. When the
// carved board leaves too few interior points for endpoint selection, it
// recarves a fresh grid from the next slice of the RNG stream.
func buildRun(width, height int, seed int64, algo string) (*grid.Grid, pathfind.Pathfinder, error) {
	rng := rand.New(rand.NewSource(seed))
	for attempt := 0; ; attempt++ {
		g, err := grid.New(width, height)
		if err != nil {
			return nil, nil, err
		}
		if err := wallgen.Carve(g, rng); err != nil {
			return nil, nil, err
		}
		if _, _, err := hull.SelectEndpoints(g); err != nil {
			if errors.Is(err, hull.ErrInsufficientPoints) && attempt < maxSelectRetries {
				continue
			}

			return nil, nil, err
		}

		var finder pathfind.Pathfinder
		switch algo {
		case "greedy":
			finder, err = pathfind.NewGreedy(g)
		case "dijkstra":
			finder, err = pathfind.NewUniformCost(g)
		default:
			return nil, nil, fmt.Errorf("pathviz: unknown algorithm %q", algo)
		}
		if err != nil {
			return nil, nil, err
		}

		return g, finder, nil
	}
}

// animate owns the screen: one Advance per tick, redraw, quit on key.
func animate(g *grid.Grid, finder pathfind.Pathfinder, delay time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)

					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	var path []grid.Position
	status := "searching"
	ticker := time.NewTicker(delay)
	defer ticker.Stop()
	for {
		draw(screen, g, path, status)
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			if status != "searching" {
				continue
			}
			switch res := finder.Advance(); res.Kind {
			case pathfind.StepContinue:
				path = append(path, res.Pos)
			case pathfind.StepDone:
				status = fmt.Sprintf("done in %d steps, q to quit", len(path))
			case pathfind.StepStuck:
				status = "stuck, q to quit"
			}
		}
	}
}

// draw paints the board: brown walls, blue path, green start, red end.
// Cells are double-width so the board reads roughly square.
func draw(screen tcell.Screen, g *grid.Grid, path []grid.Position, status string) {
	var (
		dotStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
		wallStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(139, 69, 19))
		pathStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
		startStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
		endStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	)

	screen.Clear()
	for y := 0; y <= g.Height; y++ {
		for x := 0; x <= g.Width; x++ {
			screen.SetContent(x*2, y, '·', nil, dotStyle)
		}
	}
	for _, w := range g.Walls() {
		screen.SetContent(w.X*2, w.Y, '█', nil, wallStyle)
	}
	for _, p := range path {
		screen.SetContent(p.X*2, p.Y, '•', nil, pathStyle)
	}
	if s, ok := g.Start(); ok {
		screen.SetContent(s.X*2, s.Y, 'S', nil, startStyle)
	}
	if e, ok := g.End(); ok {
		screen.SetContent(e.X*2, e.Y, 'E', nil, endStyle)
	}
	for i, r := range status {
		screen.SetContent(i, g.Height+2, r, nil, tcell.StyleDefault)
	}
	screen.Show()
}
