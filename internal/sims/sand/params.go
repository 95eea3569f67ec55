package sand

import (
	"strconv"

	"sandlab/internal/core"
)

// Parameters reports the world's dimensions, knobs and particle tallies.
func (w *World) Parameters() core.ParameterSnapshot {
	counts := w.Counts()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("rows", "Rows", w.cfg.Rows),
				intParam("cols", "Columns", w.cfg.Cols),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(w.cfg.Seed, 10)},
			},
		},
		{
			Name: "Controls",
			Params: []core.Parameter{
				intParam("speed", "Speed", w.speed),
				{Key: "tool", Label: "Tool", Type: core.ParamTypeString, Value: w.tool.String()},
			},
		},
		{
			Name: "Particles",
			Params: []core.Parameter{
				intParam("metal", "Metal", counts.Metal),
				intParam("sand", "Sand", counts.Sand),
				intParam("water", "Water", counts.Water),
			},
		},
	}}
}

// ParameterControls exposes the speed knob to the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "speed", Label: "Speed", Step: 100, Min: 0, Max: MaxSpeed, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an adjustable parameter by key.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "speed":
		w.SetSpeed(value)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
