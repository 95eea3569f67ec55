package sand

import (
	"context"
	"time"
)

// PauseInterval is how long each frame yields to the display for drawing and
// input.
const PauseInterval = time.Millisecond

// Frame runs one iteration of the driving loop: Speed() steps, a full
// repaint, a pause, then at most one pending paint edit. Speed is re-read
// every frame so the host may change it between calls.
func Frame(lab *Lab, d Display) {
	for i := 0; i < d.Speed(); i++ {
		lab.Step()
	}
	lab.UpdateDisplay(d)
	d.Repaint()
	d.Pause(PauseInterval)
	if row, col, ok := d.MouseLocation(); ok {
		lab.LocationClicked(row, col, d.Tool())
	}
}

// Run calls Frame until ctx is done and returns the context's error.
func Run(ctx context.Context, lab *Lab, d Display) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		Frame(lab, d)
	}
}
