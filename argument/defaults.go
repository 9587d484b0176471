package argument

// NewDefaultRegistry creates a [Registry] with all built-in strategies registered under their result types.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	Register(reg, String)
	Register(reg, Numbers)
	Register(reg, Int)
	Register(reg, Int32)
	Register(reg, Int64)
	Register(reg, Int8)
	Register(reg, Float32)
	Register(reg, Float64)
	Register(reg, Bool)
	Register(reg, TriStates)
	Register(reg, Ranges)
	Register(reg, Durations)
	Register(reg, UUIDs)
	Register(reg, NamespacedKeys)
	return reg
}
