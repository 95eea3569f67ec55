package app

import (
	"flag"
	"fmt"
	"image/color"
	"strconv"

	"sandlab/internal/core"
	"sandlab/internal/sims/sand"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int

	Rows  int
	Cols  int
	Speed int
	Tool  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := sand.DefaultConfig()
	return &Config{
		Sim:      "sand",
		Scale:    6,
		TPS:      60,
		HUDWidth: 180,
		Rows:     def.Rows,
		Cols:     def.Cols,
		Speed:    def.Speed,
		Tool:     def.Tool.String(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks a fresh one)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Speed, "speed", c.Speed, "steps per frame")
	fs.StringVar(&c.Tool, "tool", c.Tool, "initial tool: empty, metal, sand or water")
}

// Validate reports flag values that cannot start a run.
func (c *Config) Validate() error {
	if _, ok := core.Sims()[c.Sim]; !ok {
		return fmt.Errorf("unknown sim %q (have %v)", c.Sim, core.Names())
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if _, err := sand.ParseParticle(c.Tool); err != nil {
		return err
	}
	return nil
}

// SimOptions renders the sim-level flags into the map form accepted by
// core.Factory.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"rows":  strconv.Itoa(c.Rows),
		"cols":  strconv.Itoa(c.Cols),
		"speed": strconv.Itoa(c.Speed),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"tool":  c.Tool,
	}
}

// Canvas is a simulation the GUI can paint into and draw from.
type Canvas interface {
	core.Sim
	Colors() []color.RGBA
	Click(row, col int)
	Tool() sand.Particle
	SetTool(p sand.Particle)
	Speed() int
	SetSpeed(n int)
}
