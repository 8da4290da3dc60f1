package core

// Parameter is a single labeled value a simulation exposes for display.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables and read-outs
// exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Control describes a parameter that may be nudged live from the HUD. Step is
// the per-keypress increment; values are clamped to [Min, Max]. Integer
// controls round the nudged value before it is applied.
type Control struct {
	Key     string
	Label   string
	Step    float64
	Min     float64
	Max     float64
	Integer bool
}

// ControlsProvider exposes the list of HUD-adjustable controls.
type ControlsProvider interface {
	Controls() []Control
}

// FloatParameterSetter applies HUD adjustments to floating point parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// IntParameterSetter applies HUD adjustments to integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
