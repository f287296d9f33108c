package autopoiesis

import (
	"strconv"

	"autopoiesis/internal/core"
)

// Parameters reports the current configuration for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	params := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Reactions",
			Params: []core.Parameter{
				floatParam("decay_rate", "Decay rate", s.u.DecayRate()),
				intParam("catalysts", "Catalysts", params.Catalysts),
				intParam("bond_neighborhood", "Bond neighborhood", params.BondNeighborhood.Directions()),
				intParam("steps_per_frame", "Steps per frame", params.StepsPerFrame),
				boolParam("checks", "Invariant checks", params.Checks),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust while running.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "decay_rate",
			Label:  "Decay rate",
			Type:   core.ParamTypeFloat,
			Step:   0.005,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    "steps_per_frame",
			Label:  "Steps per frame",
			Type:   core.ParamTypeInt,
			Step:   50,
			Min:    1,
			Max:    100000,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetFloatParameter updates a floating point tunable.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "decay_rate":
		s.u.SetDecayRate(value)
		s.cfg.Params.DecayRate = s.u.DecayRate()
		return true
	}
	return false
}

// SetIntParameter updates an integer tunable.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "steps_per_frame":
		if value < 1 {
			value = 1
		}
		s.cfg.Params.StepsPerFrame = value
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

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
