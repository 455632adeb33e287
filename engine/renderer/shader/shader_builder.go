package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithEntryPoint overrides the entry point found in the source.
//
// Parameters:
//   - name: the entry point function name
//
// Returns:
//   - ShaderBuilderOption: a function that sets the entry point
func WithEntryPoint(name string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = name
	}
}

// WithBindGroupLayout sets the layout of one bind group the shader declares.
//
// Parameters:
//   - group: the bind group index
//   - desc: the layout descriptor
//
// Returns:
//   - ShaderBuilderOption: a function that sets the layout
func WithBindGroupLayout(group int, desc wgpu.BindGroupLayoutDescriptor) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = desc
	}
}

// WithVertexLayouts sets the vertex buffer layouts in slot order.
//
// Parameters:
//   - layouts: one layout per vertex buffer slot
//
// Returns:
//   - ShaderBuilderOption: a function that sets the layouts
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts = layouts
	}
}
