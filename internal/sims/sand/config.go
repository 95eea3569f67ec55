package sand

import "strconv"

const (
	// DefaultRows and DefaultCols size the board when no override is given.
	DefaultRows = 120
	DefaultCols = 80
)

// Config controls the sand world dimensions and its initial knobs.
type Config struct {
	Rows int
	Cols int

	// Speed is the number of steps per frame.
	Speed int
	// Seed of zero draws a fresh random seed on every reset.
	Seed int64
	Tool Particle
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:  DefaultRows,
		Cols:  DefaultCols,
		Speed: 500,
		Tool:  Sand,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Invalid entries keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Speed = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tool"]; ok {
		if parsed, err := ParseParticle(v); err == nil {
			c.Tool = parsed
		}
	}
	return c
}
