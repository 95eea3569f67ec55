package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"sandlab/internal/sims/sand"
)

type scenario struct {
	speed int
	seed  int64
}

type scenarioResult struct {
	scenario
	settledFrame int
	settled      bool
	poured       int
	final        sand.Counts
	conserved    bool
}

func main() {
	rows := flag.Int("rows", 60, "grid rows")
	cols := flag.Int("cols", 40, "grid columns")
	speedList := flag.String("speeds", "100,400,1600", "comma-separated steps-per-frame values to sweep")
	seeds := flag.Int("seeds", 8, "seeds per speed")
	pourFrames := flag.Int("pour", 120, "frames spent pouring sand and water")
	maxFrames := flag.Int("frames", 5000, "frame budget per scenario")
	quiet := flag.Int("quiet", 20, "consecutive unchanged frames that count as settled")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	speeds, err := parseInts(*speedList)
	if err != nil {
		log.Fatalf("bad -speeds: %v", err)
	}

	var jobs []scenario
	for _, speed := range speeds {
		for s := 1; s <= *seeds; s++ {
			jobs = append(jobs, scenario{speed: speed, seed: int64(s)})
		}
	}
	log.Printf("Sweeping %d scenarios on a %dx%d grid (%d workers)", len(jobs), *rows, *cols, *workers)

	run := func(sc scenario) scenarioResult {
		return runScenario(sc, *rows, *cols, *pourFrames, *maxFrames, *quiet)
	}
	results := sweep(jobs, *workers, run)

	sort.Slice(results, func(i, j int) bool {
		if results[i].speed != results[j].speed {
			return results[i].speed < results[j].speed
		}
		return results[i].seed < results[j].seed
	})

	fmt.Printf("%8s %6s %9s %8s %6s %6s %6s\n", "speed", "seed", "settled", "frame", "metal", "sand", "water")
	violations := 0
	for _, r := range results {
		settled := "no"
		if r.settled {
			settled = "yes"
		}
		fmt.Printf("%8d %6d %9s %8d %6d %6d %6d\n", r.speed, r.seed, settled, r.settledFrame, r.final.Metal, r.final.Sand, r.final.Water)
		if !r.conserved {
			violations++
			log.Printf("speed=%d seed=%d: poured %d particles but %d remain", r.speed, r.seed, r.poured, r.final.Sand+r.final.Water)
		}
	}
	for _, speed := range speeds {
		total, n := 0, 0
		for _, r := range results {
			if r.speed == speed && r.settled {
				total += r.settledFrame
				n++
			}
		}
		if n > 0 {
			fmt.Printf("speed %d: mean settle frame %.1f over %d runs\n", speed, float64(total)/float64(n), n)
		}
	}
	if violations > 0 {
		log.Fatalf("%d scenarios lost or gained particles", violations)
	}
}

func sweep(jobs []scenario, workers int, run func(scenario) scenarioResult) []scenarioResult {
	if workers <= 0 {
		workers = 1
	}
	in := make(chan scenario)
	out := make(chan scenarioResult)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range in {
				out <- run(sc)
			}
		}()
	}
	go func() {
		for _, sc := range jobs {
			in <- sc
		}
		close(in)
	}()
	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]scenarioResult, 0, len(jobs))
	for r := range out {
		results = append(results, r)
	}
	return results
}

// runScenario pours alternating sand and water into the top centre of a
// metal-floored world, then steps until the grid stops changing. Pours go
// straight through the lab so only empty cells are painted.
func runScenario(sc scenario, rows, cols, pourFrames, maxFrames, quiet int) scenarioResult {
	cfg := sand.DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	cfg.Speed = sc.speed
	cfg.Seed = sc.seed
	w := sand.NewWithConfig(cfg)
	for col := 0; col < w.NumCols(); col++ {
		w.SetValue(w.NumRows()-1, col, sand.Metal)
	}

	mid := w.NumCols() / 2

	res := scenarioResult{scenario: sc}
	prev := slices.Clone(w.Cells())
	still := 0
	for frame := 0; frame < maxFrames; frame++ {
		if frame < pourFrames {
			tool := sand.Sand
			if frame%2 == 1 {
				tool = sand.Water
			}
			if w.Value(0, mid) == sand.Empty {
				w.Lab().LocationClicked(0, mid, tool)
				res.poured++
			}
		}
		w.Step()

		if frame < pourFrames {
			copy(prev, w.Cells())
			continue
		}
		if slices.Equal(prev, w.Cells()) {
			still++
			if still >= quiet {
				res.settled = true
				res.settledFrame = frame
				break
			}
		} else {
			still = 0
			copy(prev, w.Cells())
		}
	}
	res.final = w.Counts()
	res.conserved = res.final.Sand+res.final.Water == res.poured
	return res
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
