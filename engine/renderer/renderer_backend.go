package renderer

// RendererBackendType picks the GPU API behind a Renderer. Only WebGPU exists today.
type RendererBackendType int

const (
	// BackendTypeWGPU renders through cogentcore/webgpu.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode selects how finished frames reach the screen.
type PresentMode int

const (
	// PresentModeVSync holds each frame until the next vertical blank. The frame loop then
	// runs at the display rate and the world sees steady, small time steps.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped hands frames over as soon as they are ready. Used for profiling
	// the grass field, where the frame time is the number of interest.
	PresentModeUncapped
)

// MSAASampleCount is the per-pixel sample count of the main color and depth targets.
// WebGPU only guarantees 1 and 4 on every adapter, so those are the only values offered.
type MSAASampleCount uint32

const (
	// MSAAOff renders one sample per pixel straight into the swapchain.
	MSAAOff MSAASampleCount = 1

	// MSAA4x renders four samples per pixel and resolves into the swapchain. Default.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is what a Renderer drives. It is the WebGPU backend interface.
type RendererBackend interface {
	wgpuRendererBackend
}
