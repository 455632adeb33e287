package bind_group_provider

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithIndexCount sets the number of indices drawn per call.
//
// Parameters:
//   - count: the index count
//
// Returns:
//   - BindGroupProviderOption: a function that sets the index count for this provider
func WithIndexCount(count int) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.indexCount = count
	}
}

// WithInstanceCount sets the number of instances drawn per call.
//
// Parameters:
//   - count: the instance count
//
// Returns:
//   - BindGroupProviderOption: a function that sets the instance count for this provider
func WithInstanceCount(count int) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.instanceCount = count
	}
}
