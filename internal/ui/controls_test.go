package ui

import (
	"testing"

	"autopoiesis/internal/core"
)

type fakeSetter struct {
	ints   map[string]int
	floats map[string]float64
}

func (f *fakeSetter) SetIntParameter(key string, v int) bool {
	f.ints[key] = v
	return true
}

func (f *fakeSetter) SetFloatParameter(key string, v float64) bool {
	f.floats[key] = v
	return true
}

func snapshot(params ...core.Parameter) map[string]core.Parameter {
	return indexParameters(core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "g", Params: params}}})
}

func TestLayoutControlsStacksRows(t *testing.T) {
	states := layoutControls([]core.ParameterControl{{Key: "a"}, {Key: "b"}}, 200)
	if len(states) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(states))
	}
	if states[1].top-states[0].top != lineHeight {
		t.Fatalf("rows should be %d apart, got %d", lineHeight, states[1].top-states[0].top)
	}
	if states[0].plusRect.Max.X != 200-panelPadding {
		t.Fatalf("plus button should hug the right edge, got %v", states[0].plusRect)
	}
	if !pointInRect(states[0].minusRect.Min.X, states[0].minusRect.Min.Y, states[0].minusRect) {
		t.Fatalf("rect should contain its own corner")
	}
	if controlsBottom(2) != states[1].top+lineHeight {
		t.Fatalf("controlsBottom mismatch")
	}
}

func TestFloatControlClampsAndApplies(t *testing.T) {
	states := layoutControls([]core.ParameterControl{{
		Key: "decay_rate", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true,
	}}, 200)
	c := &states[0]
	c.refresh(snapshot(core.Parameter{Key: "decay_rate", Type: core.ParamTypeFloat, Value: "0.002"}))
	if !c.hasValue || c.value != "0.002" {
		t.Fatalf("unexpected refresh result: %+v", c)
	}

	setter := &fakeSetter{ints: map[string]int{}, floats: map[string]float64{}}
	if !c.adjust(-1, setter, setter) {
		t.Fatalf("expected adjustment down to the minimum")
	}
	if setter.floats["decay_rate"] != 0 {
		t.Fatalf("expected clamp to 0, got %v", setter.floats["decay_rate"])
	}
	if _, ok := c.target(-1); ok {
		t.Fatalf("control at its minimum should not step further down")
	}
}

func TestIntControlSteps(t *testing.T) {
	states := layoutControls([]core.ParameterControl{{
		Key: "steps_per_frame", Type: core.ParamTypeInt, Step: 50, Min: 1, Max: 120, HasMin: true, HasMax: true,
	}}, 200)
	c := &states[0]
	c.refresh(snapshot(core.Parameter{Key: "steps_per_frame", Type: core.ParamTypeInt, Value: "100"}))

	setter := &fakeSetter{ints: map[string]int{}, floats: map[string]float64{}}
	if !c.adjust(1, setter, nil) || setter.ints["steps_per_frame"] != 120 {
		t.Fatalf("expected clamp to 120, got %v", setter.ints)
	}
	if c.adjust(1, setter, nil) {
		t.Fatalf("control at its maximum should not step further up")
	}
	if c.adjust(-1, nil, nil) {
		t.Fatalf("missing setter must not apply")
	}
}

func TestRefreshMissingParameter(t *testing.T) {
	states := layoutControls([]core.ParameterControl{{Key: "gone", Type: core.ParamTypeInt}}, 200)
	states[0].refresh(snapshot())
	if states[0].hasValue || states[0].value != "--" {
		t.Fatalf("missing parameter should show placeholder, got %+v", states[0])
	}
}

func TestFormatFloatPrecision(t *testing.T) {
	cases := []struct {
		step float64
		v    float64
		want string
	}{
		{0.0005, 0.01234, "0.0123"},
		{0.005, 0.01234, "0.012"},
		{0.05, 0.5, "0.50"},
		{0.5, 2, "2.0"},
		{0, 0.5, "0.50"},
	}
	for _, tc := range cases {
		if got := formatFloat(tc.step, tc.v); got != tc.want {
			t.Fatalf("formatFloat(%v, %v) = %q, want %q", tc.step, tc.v, got, tc.want)
		}
	}
}
