package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"sandlab/internal/core"
	"sandlab/internal/sims/sand"
)

func main() {
	rows := flag.Int("rows", 40, "grid rows")
	cols := flag.Int("cols", 60, "grid columns")
	speed := flag.Int("speed", 400, "steps per frame")
	seed := flag.Int64("seed", 0, "random seed (0 picks a fresh one)")
	frames := flag.Int("frames", 300, "frames to simulate")
	toolName := flag.String("tool", "sand", "particle poured at the top: empty, metal, sand or water")
	pourCol := flag.Int("col", -1, "column to pour into (-1 for the centre)")
	pourFrames := flag.Int("pour", 150, "number of frames to keep pouring")
	floor := flag.Bool("floor", true, "lay a metal floor along the bottom row")
	tps := flag.Int("tps", 0, "frames per second to pace at (0 runs flat out)")
	pause := flag.Bool("pause", false, "sleep for the per-frame pause interval")
	flag.Parse()

	tool, err := sand.ParseParticle(*toolName)
	if err != nil {
		log.Fatal(err)
	}

	cfg := sand.DefaultConfig()
	cfg.Rows = *rows
	cfg.Cols = *cols
	cfg.Speed = *speed
	cfg.Seed = *seed
	cfg.Tool = tool
	world := sand.NewWithConfig(cfg)
	if *pause {
		world.SetPause(time.Sleep)
	}

	if *floor {
		for col := 0; col < world.NumCols(); col++ {
			world.SetValue(world.NumRows()-1, col, sand.Metal)
		}
	}
	col := *pourCol
	if col < 0 {
		col = world.NumCols() / 2
	}

	logParameters(world.Parameters())

	var pacer *core.FixedStep
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}

	start := time.Now()
	for frame := 0; frame < *frames; frame++ {
		if frame < *pourFrames {
			world.Click(0, col)
		}
		if pacer != nil {
			pacer.Wait()
		}
		world.Step()
	}
	elapsed := time.Since(start)

	fmt.Print(sand.Format(world))
	counts := world.Counts()
	log.Printf("%d frames (%d steps) in %v: metal=%d sand=%d water=%d",
		world.Frames(), world.Frames()*world.Speed(), elapsed.Round(time.Millisecond), counts.Metal, counts.Sand, counts.Water)
}

func logParameters(snap core.ParameterSnapshot) {
	for _, group := range snap.Groups {
		line := group.Name + ":"
		for _, p := range group.Params {
			line += fmt.Sprintf(" %s=%s", p.Key, p.Value)
		}
		log.Print(line)
	}
}
