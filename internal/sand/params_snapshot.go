package sand

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"sandcastle/internal/core"
)

// Parameters reports the world, tool and population state for the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	size := s.grid.Size()
	population := make([]core.Parameter, 0, kindCount-1)
	for _, k := range hotkeys {
		if k == Air {
			continue
		}
		population = append(population, stringParam("pop_"+k.String(), k.String(), humanize.Comma(int64(s.grid.Count(k)))))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				stringParam("seed", "Seed", strconv.FormatInt(s.seed, 10)),
				stringParam("tick", "Tick", humanize.Comma(int64(s.tick))),
			},
		},
		{
			Name: "Editor",
			Params: []core.Parameter{
				stringParam("tool", "Tool", s.editor.Tool().String()),
				intParam("brush_radius", "Brush radius", s.editor.BrushRadius()),
			},
		},
		{Name: "Population", Params: population},
	}}
}

// IntControls lists the parameters the HUD may adjust.
func (s *Simulation) IntControls() []core.IntControl {
	return []core.IntControl{
		{Key: "brush_radius", Label: "Brush radius", Step: 1, Min: 0, Max: 8},
	}
}

// SetIntParameter applies a HUD adjustment. Unknown keys report false.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	for _, ctrl := range s.IntControls() {
		if ctrl.Key != key {
			continue
		}
		switch key {
		case "brush_radius":
			s.editor.SetBrushRadius(ctrl.Clamp(value))
			return true
		}
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

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
