package eval

// Environment maps bound names to integer values. A single Environment is
// threaded by reference through one whole top-level evaluation: bindings
// introduced by a let stay visible for the rest of that evaluation, there
// is no scope-exit removal.
type Environment struct {
	vars map[string]int64
}

// NewEnvironment creates an empty Environment
func NewEnvironment() *Environment {
	return &Environment{
		vars: map[string]int64{},
	}
}

// Set binds name to v, overwriting any previous binding
func (e *Environment) Set(name string, v int64) {
	e.vars[name] = v
}

// Get returns the value bound to name
func (e *Environment) Get(name string) (int64, bool) {
	v, ok := e.vars[name]
	return v, ok
}
