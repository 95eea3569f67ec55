package sand

import (
	"errors"
	"fmt"
	"strings"
)

// Particle is the substance held by a single cell. The zero value is Empty,
// so a freshly allocated grid holds no particles.
type Particle uint8

const (
	Empty Particle = iota
	Metal
	Sand
	Water
)

// ErrUnknownParticle is returned by ParseParticle for names it does not know.
var ErrUnknownParticle = errors.New("unknown particle")

// Particles lists every paintable kind, erase first.
var Particles = []Particle{Empty, Metal, Sand, Water}

func (p Particle) String() string {
	switch p {
	case Empty:
		return "empty"
	case Metal:
		return "metal"
	case Sand:
		return "sand"
	case Water:
		return "water"
	default:
		return fmt.Sprintf("particle(%d)", uint8(p))
	}
}

// ParseParticle maps a tool name to its particle. "erase" and "none" are
// accepted as aliases for Empty.
func ParseParticle(name string) (Particle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "empty", "erase", "none":
		return Empty, nil
	case "metal":
		return Metal, nil
	case "sand":
		return Sand, nil
	case "water":
		return Water, nil
	}
	return Empty, fmt.Errorf("sand: %w %q", ErrUnknownParticle, name)
}
