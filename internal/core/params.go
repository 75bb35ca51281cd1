package core

import "strconv"

// Parameter describes a single tunable value exposed by a scene.
type Parameter struct {
	Key         string
	Label       string
	Value       float64
	Description string
}

// FormatValue renders the value with the precision implied by step.
func (p Parameter) FormatValue(step float64) string {
	precision := 1
	switch {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(p.Value, 'f', precision, 64)
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Min and Max are only enforced when the matching Has flag is set.
type ParameterControl struct {
	Key   string
	Label string
	Step  float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Clamp bounds v to the control's limits.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// ParameterProvider exposes the current tunable values of a scene.
type ParameterProvider interface {
	Parameters() []Parameter
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// ParameterSetter allows HUD interactions to update parameters. It reports
// whether the key was recognized.
type ParameterSetter interface {
	SetParameter(key string, value float64) bool
}
