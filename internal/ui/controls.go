package ui

import (
	"image"
	"math"
	"strconv"

	"autopoiesis/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statLineHeight = 16
	controlsTop    = panelPadding + headerBaseline + 14
)

// controlState is one adjustable parameter row in the HUD.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// layoutControls stacks one row per control in a panel of the given width.
func layoutControls(controls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i] = controlState{control: ctrl, value: "--", top: top, minusRect: minus, plusRect: plus}
	}
	return states
}

// controlsBottom is the first free row below n control rows.
func controlsBottom(n int) int {
	return controlsTop + n*lineHeight
}

func indexParameters(snap core.ParameterSnapshot) map[string]core.Parameter {
	out := map[string]core.Parameter{}
	for _, group := range snap.Groups {
		for _, param := range group.Params {
			out[param.Key] = param
		}
	}
	return out
}

// refresh reloads the displayed value from the latest parameters.
func (c *controlState) refresh(params map[string]core.Parameter) {
	c.hasValue = false
	c.value = "--"
	param, ok := params[c.control.Key]
	if !ok {
		return
	}
	switch c.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		c.intValue = parsed
		c.floatValue = float64(parsed)
		c.value = strconv.Itoa(parsed)
		c.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		c.floatValue = parsed
		c.value = formatFloat(c.control.Step, parsed)
		c.hasValue = true
	}
}

// target returns the value one step in direction, clamped to the control's
// range, and whether it differs from the current value.
func (c *controlState) target(direction int) (float64, bool) {
	if !c.hasValue || direction == 0 {
		return 0, false
	}
	ctrl := c.control
	var current, next float64
	switch ctrl.Type {
	case core.ParamTypeInt:
		step := int(math.Round(ctrl.Step))
		if step <= 0 {
			step = 1
		}
		current = float64(c.intValue)
		next = float64(c.intValue + direction*step)
		if ctrl.HasMin {
			next = math.Max(next, math.Round(ctrl.Min))
		}
		if ctrl.HasMax {
			next = math.Min(next, math.Round(ctrl.Max))
		}
	case core.ParamTypeFloat:
		step := ctrl.Step
		if step <= 0 {
			step = 0.05
		}
		current = c.floatValue
		next = c.floatValue + float64(direction)*step
		if ctrl.HasMin {
			next = math.Max(next, ctrl.Min)
		}
		if ctrl.HasMax {
			next = math.Min(next, ctrl.Max)
		}
	default:
		return 0, false
	}
	return next, math.Abs(next-current) >= 1e-9
}

// adjust moves the control one step through the matching setter.
func (c *controlState) adjust(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	next, ok := c.target(direction)
	if !ok {
		return false
	}
	switch c.control.Type {
	case core.ParamTypeInt:
		v := int(next)
		if ints == nil || !ints.SetIntParameter(c.control.Key, v) {
			return false
		}
		c.intValue = v
		c.floatValue = next
		c.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if floats == nil || !floats.SetFloatParameter(c.control.Key, next) {
			return false
		}
		c.floatValue = next
		c.value = formatFloat(c.control.Step, next)
	}
	return true
}

// formatFloat shows one more digit than the step needs.
func formatFloat(step, value float64) string {
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
