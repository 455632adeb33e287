package shader

import (
	"embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/*.wgsl
var assets embed.FS

const (
	// GrassShaderKey is the key of the instanced grass blade shaders.
	GrassShaderKey = "grass"

	// SurfaceShaderKey is the key of the textured ground and sky dome shaders.
	SurfaceShaderKey = "surface"

	// OverlayShaderKey is the key of the full-screen fade and glare shaders.
	OverlayShaderKey = "overlay"
)

const (
	// grassVIndexStride is one f32 vertex index per blade vertex.
	grassVIndexStride = 4
	// grassInstanceStride is one vec4 per blade instance.
	grassInstanceStride = 16
	// surfaceVertexStride is a vec3 position followed by a vec2 uv.
	surfaceVertexStride = 20
)

// Source reads an embedded shader asset by file name. Shaders other than the overlay share the
// camera and fog declarations in common.wgsl, which is prepended to them since WGSL has no includes.
//
// Parameters:
//   - name: the asset file name without extension (e.g. "grass")
//
// Returns:
//   - string: the WGSL source ready for compilation
//   - error: error if the asset does not exist
func Source(name string) (string, error) {
	body, err := assets.ReadFile("assets/" + name + ".wgsl")
	if err != nil {
		return "", fmt.Errorf("failed to read shader asset %s: %w", name, err)
	}
	if name == OverlayShaderKey {
		return string(body), nil
	}

	common, err := assets.ReadFile("assets/common.wgsl")
	if err != nil {
		return "", fmt.Errorf("failed to read shader asset common: %w", err)
	}
	return string(common) + "\n" + string(body), nil
}

// GrassShaders builds the vertex and fragment stages of the grass pipeline.
// Slot 0 carries the per-vertex index, slots 1 and 2 carry the per-blade shape and offset.
//
// Returns:
//   - Shader: the vertex shader
//   - Shader: the fragment shader
//   - error: error if the source could not be loaded
func GrassShaders() (Shader, Shader, error) {
	return buildPair(GrassShaderKey, texturedGroups(),
		wgpu.VertexBufferLayout{
			ArrayStride: grassVIndexStride,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32, Offset: 0, ShaderLocation: 0},
			},
		},
		wgpu.VertexBufferLayout{
			ArrayStride: grassInstanceStride,
			StepMode:    wgpu.VertexStepModeInstance,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 1},
			},
		},
		wgpu.VertexBufferLayout{
			ArrayStride: grassInstanceStride,
			StepMode:    wgpu.VertexStepModeInstance,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 2},
			},
		},
	)
}

// SurfaceShaders builds the vertex and fragment stages shared by the ground and the sky dome.
//
// Returns:
//   - Shader: the vertex shader
//   - Shader: the fragment shader
//   - error: error if the source could not be loaded
func SurfaceShaders() (Shader, Shader, error) {
	return buildPair(SurfaceShaderKey, texturedGroups(), meshLayout())
}

// OverlayShaders builds the vertex and fragment stages of the full-screen overlays.
//
// Returns:
//   - Shader: the vertex shader
//   - Shader: the fragment shader
//   - error: error if the source could not be loaded
func OverlayShaders() (Shader, Shader, error) {
	groups := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
			Label: "overlay_params",
			Entries: []wgpu.BindGroupLayoutEntry{
				uniformEntry(0, wgpu.ShaderStageFragment),
			},
		},
	}
	return buildPair(OverlayShaderKey, groups, meshLayout())
}

func buildPair(key string, groups map[int]wgpu.BindGroupLayoutDescriptor, layouts ...wgpu.VertexBufferLayout) (Shader, Shader, error) {
	src, err := Source(key)
	if err != nil {
		return nil, nil, err
	}

	opts := make([]ShaderBuilderOption, 0, len(groups))
	for group, desc := range groups {
		opts = append(opts, WithBindGroupLayout(group, desc))
	}

	vs, err := NewShader(key+"_vs", ShaderTypeVertex, src, append(opts, WithVertexLayouts(layouts...))...)
	if err != nil {
		return nil, nil, err
	}
	fs, err := NewShader(key+"_fs", ShaderTypeFragment, src, opts...)
	if err != nil {
		return nil, nil, err
	}
	return vs, fs, nil
}

// texturedGroups is group 0 for the camera and group 1 for params, texture and sampler.
func texturedGroups() map[int]wgpu.BindGroupLayoutDescriptor {
	both := wgpu.ShaderStageVertex | wgpu.ShaderStageFragment
	return map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
			Label: "camera",
			Entries: []wgpu.BindGroupLayoutEntry{
				uniformEntry(0, both),
			},
		},
		1: {
			Label: "material",
			Entries: []wgpu.BindGroupLayoutEntry{
				uniformEntry(0, both),
				{
					Binding:    1,
					Visibility: wgpu.ShaderStageFragment,
					Texture: wgpu.TextureBindingLayout{
						SampleType:    wgpu.TextureSampleTypeFloat,
						ViewDimension: wgpu.TextureViewDimension2D,
					},
				},
				{
					Binding:    2,
					Visibility: wgpu.ShaderStageFragment,
					Sampler: wgpu.SamplerBindingLayout{
						Type: wgpu.SamplerBindingTypeFiltering,
					},
				},
			},
		},
	}
}

func uniformEntry(binding uint32, visibility wgpu.ShaderStage) wgpu.BindGroupLayoutEntry {
	entry := wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
	}
	entry.Buffer.Type = wgpu.BufferBindingTypeUniform
	return entry
}

func meshLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: surfaceVertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
		},
	}
}
