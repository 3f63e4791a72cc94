package core

// Parameter describes a single value a sim reports for display.
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

// ParameterSnapshot captures the current values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that expose live statistics.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// MaskProvider is implemented by sims that can highlight a subset of cells.
// Values are in [0, 1] in row-major order.
type MaskProvider interface {
	Mask() []float32
}
