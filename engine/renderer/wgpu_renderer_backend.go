package renderer

import (
	"cmp"
	"errors"
	"fmt"
	"log"
	"maps"
	"runtime"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-grass/common"
	"github.com/Carmen-Shannon/oxy-grass/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-grass/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-grass/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        *wgpu.TextureFormat
	msaaTexture          *wgpu.Texture
	msaaTextureView      *wgpu.TextureView
	depthTexture         *wgpu.Texture
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	presentMode wgpu.PresentMode // defaults to PresentModeFifo (VSync)
	sampleCount MSAASampleCount  // MSAA sample count for the main render pass
	clearColor  wgpu.Color

	// Frame state for batched rendering across multiple draw calls
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

// wgpuRendererBackend is the WebGPU side of a Renderer. A frame is BeginFrame, any
// number of DrawCall, EndFrame and Present, in that order on the render thread.
type wgpuRendererBackend interface {
	// ConfigureSurface (re)creates the swapchain and the multisample and depth targets
	// for a width x height framebuffer. Call it after every resize.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode picks VSync or uncapped presentation for the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the sky-side clear color used by the next ConfigureSurface.
	//
	// Parameters:
	//   - rgba: the clear color components in [0, 1]
	SetClearColor(rgba [4]float64)

	// RegisterRenderPipeline compiles both shaders of p, builds the merged layout and stores
	// the resulting GPU pipeline back on p.
	//
	// Parameters:
	//   - p: a pipeline with vertex and fragment shaders set
	//
	// Returns:
	//   - error: error if a shader fails to compile or the pipeline is rejected
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// InitMeshBuffers uploads a static mesh (the blade strip or a terrain surface) and
	// records how many indices one instance draws.
	//
	// Parameters:
	//   - provider: receives the vertex and index buffers
	//   - vertexData: vertex bytes, may be empty
	//   - indexData: uint32 index bytes, may be empty
	//   - indexCount: number of indices per instance
	//
	// Returns:
	//   - error: error if a buffer cannot be created
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error

	// InitInstanceBuffer uploads per-instance attributes, such as blade offsets, into a
	// vertex buffer slot above 0.
	//
	// Parameters:
	//   - provider: receives the buffer
	//   - slot: the vertex buffer slot
	//   - data: the instance bytes, must not be empty
	//
	// Returns:
	//   - error: error if data is empty or the buffer cannot be created
	InitInstanceBuffer(provider bind_group_provider.BindGroupProvider, slot uint32, data []byte) error

	// InitBindGroup builds the bind group described by descriptor. Texture and sampler
	// entries must already be on the provider; buffer entries are created on demand.
	//
	// Parameters:
	//   - provider: supplies textures and samplers and receives buffers and the bind group
	//   - descriptor: the group layout
	//   - bufferUsageOverrides: extra usage flags by binding
	//   - bufferSizeOverrides: buffer sizes by binding, overriding MinBindingSize
	//
	// Returns:
	//   - error: error if an entry is missing or a GPU object cannot be created
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error

	// InitTextureView uploads an RGBA8 sRGB image and stores its texture and view.
	//
	// Parameters:
	//   - provider: receives the texture
	//   - bindingKey: the binding the view will be bound at
	//   - stagingData: pixels and size
	//
	// Returns:
	//   - error: error if the texture or view cannot be created
	InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error

	// InitSampler creates a sampler. Zero fields fall back to repeat addressing and
	// linear filtering.
	//
	// Parameters:
	//   - provider: receives the sampler
	//   - bindingKey: the binding the sampler will be bound at
	//   - samplerStagingData: the sampler settings
	//
	// Returns:
	//   - error: error if the sampler cannot be created
	InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error

	// WriteBuffers queues the per-frame uniform uploads. Writes that do not fit their
	// buffer are logged and skipped.
	//
	// Parameters:
	//   - writes: the uploads for this frame
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the swapchain image and opens the main render pass.
	//
	// Returns:
	//   - error: error if the previous frame was not presented or no image is available
	BeginFrame() error

	// DrawCall records one instanced, indexed draw into the open pass. Bind groups are set
	// in slice order; the mesh vertex buffer goes to slot 0 and instance buffers to their slots.
	//
	// Parameters:
	//   - p: the registered pipeline
	//   - meshProvider: holds the vertex, instance and index buffers
	//   - bindGroups: bind groups for groups 0..n-1
	DrawCall(p pipeline.Pipeline, meshProvider bind_group_provider.BindGroupProvider, bindGroups []bind_group_provider.BindGroupProvider)

	// EndFrame closes the pass and submits it. Present must follow.
	EndFrame()

	// Present shows the submitted image and drops the frame's swapchain references.
	Present()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount) (wgpuRendererBackend, error) {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		sampleCount: sampleCount,
		clearColor:  wgpu.Color{R: 1, G: 1, B: 1, A: 1},
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	w.device = d
	w.queue = d.GetQueue()
	log.Printf("[Renderer] device ready (msaa %dx, fallback adapter %t)", sampleCount, forceFallbackAdapter)

	return w, nil
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	b.releaseTargets()

	count := uint32(b.sampleCount)
	var err error
	if count > 1 {
		b.msaaTexture, b.msaaTextureView, err = b.createAttachment("Multisample Color", *b.surfaceFormat, width, height)
		if err != nil {
			panic(err)
		}
	}
	// depth must be sampled like the color target it pairs with
	b.depthTexture, b.depthTextureView, err = b.createAttachment("Depth", depthFormat, width, height)
	if err != nil {
		panic(err)
	}

	// multisampled color only lives until it is resolved into the swapchain image
	storeOp := wgpu.StoreOpStore
	if count > 1 {
		storeOp = wgpu.StoreOpDiscard
	}
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       b.msaaTextureView, // nil without MSAA, BeginFrame fills it
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    storeOp,
				ClearValue: b.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
}

// createAttachment makes a render target of the surface size at the backend's sample count.
func (b *wgpuRendererBackendImpl) createAttachment(label string, format wgpu.TextureFormat, width, height int) (*wgpu.Texture, *wgpu.TextureView, error) {
	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         label + " Target",
		Size:          wgpu.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   uint32(b.sampleCount),
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s target %dx%d: %w", label, width, height, err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, nil, fmt.Errorf("failed to create %s target view: %w", label, err)
	}
	return tex, view, nil
}

// releaseTargets frees the multisample and depth targets of the previous surface size.
func (b *wgpuRendererBackendImpl) releaseTargets() {
	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTextureView = nil
	}
	if b.msaaTexture != nil {
		b.msaaTexture.Release()
		b.msaaTexture = nil
	}
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTextureView = nil
	}
	if b.depthTexture != nil {
		b.depthTexture.Release()
		b.depthTexture = nil
	}
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) SetClearColor(rgba [4]float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearColor = wgpu.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}

func (b *wgpuRendererBackendImpl) RegisterRenderPipeline(p pipeline.Pipeline) error {
	if p.Shader(shader.ShaderTypeVertex) == nil || p.Shader(shader.ShaderTypeFragment) == nil {
		return errors.New("both vertex and fragment shaders must be set to create a render pipeline")
	}

	vertexShader := p.Shader(shader.ShaderTypeVertex)
	fragmentShader := p.Shader(shader.ShaderTypeFragment)

	vs, err := b.device.CreateShaderModule(vertexShader.Module())
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", vertexShader.Key(), err)
	}
	fs, err := b.device.CreateShaderModule(fragmentShader.Module())
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", fragmentShader.Key(), err)
	}

	merged := mergeBindGroupLayouts(vertexShader.BindGroupLayoutDescriptors(), fragmentShader.BindGroupLayoutDescriptors())
	bindGroupLayouts := make([]*wgpu.BindGroupLayout, len(merged))
	for g, desc := range merged {
		layout, layoutErr := b.device.CreateBindGroupLayout(&desc)
		if layoutErr != nil {
			return fmt.Errorf("failed to create layout for group %d of %s: %w", g, p.PipelineKey(), layoutErr)
		}
		bindGroupLayouts[g] = layout
	}

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            p.PipelineKey(),
		BindGroupLayouts: bindGroupLayouts,
	})
	if err != nil {
		return err
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey() + " Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: vertexShader.EntryPoint(),
			Buffers:    vertexShader.VertexLayouts(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: fragmentShader.EntryPoint(),
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
					Blend:     p.BlendState(),
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: p.FrontFace(),
			CullMode:  p.CullMode(),
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: depthState(p.DepthTestEnabled(), p.DepthWriteEnabled()),
	})
	if err != nil {
		return err
	}

	p.SetRenderPipeline(created)

	return nil
}

func (b *wgpuRendererBackendImpl) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(vertexData) > 0 {
		buf, err := b.upload(provider.Label()+" Vertices", wgpu.BufferUsageVertex, vertexData)
		if err != nil {
			return err
		}
		provider.SetVertexBuffer(buf)
	}
	if len(indexData) > 0 {
		buf, err := b.upload(provider.Label()+" Indices", wgpu.BufferUsageIndex, indexData)
		if err != nil {
			return err
		}
		provider.SetIndexBuffer(buf)
	}
	provider.SetIndexCount(indexCount)
	return nil
}

func (b *wgpuRendererBackendImpl) InitInstanceBuffer(provider bind_group_provider.BindGroupProvider, slot uint32, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(data) == 0 {
		return fmt.Errorf("instance buffer %d for %s is empty", slot, provider.Label())
	}
	buf, err := b.upload(fmt.Sprintf("%s Instances %d", provider.Label(), slot), wgpu.BufferUsageVertex, data)
	if err != nil {
		return err
	}
	provider.SetInstanceBuffer(slot, buf)
	return nil
}

// upload creates a buffer sized to data and queues the copy. Callers hold b.mu.
func (b *wgpuRendererBackendImpl) upload(label string, usage wgpu.BufferUsage, data []byte) (*wgpu.Buffer, error) {
	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s (%d bytes): %w", label, len(data), err)
	}
	b.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

func (b *wgpuRendererBackendImpl) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(descriptor.Entries) == 0 {
		return nil
	}

	layout, err := b.device.CreateBindGroupLayout(&descriptor)
	if err != nil {
		return err
	}
	defer layout.Release()

	bindGroupEntries := make([]wgpu.BindGroupEntry, len(descriptor.Entries))
	for i, entry := range descriptor.Entries {
		binding := int(entry.Binding)

		isTexture := entry.Texture.SampleType != wgpu.TextureSampleTypeUndefined
		isSampler := entry.Sampler.Type != wgpu.SamplerBindingTypeUndefined

		if isTexture {
			tv := provider.TextureView(binding)
			if tv == nil {
				return fmt.Errorf("texture binding %d has no texture view, call InitTextureView first", binding)
			}
			bindGroupEntries[i] = wgpu.BindGroupEntry{
				Binding:     entry.Binding,
				TextureView: tv,
			}
		} else if isSampler {
			samp := provider.Sampler(binding)
			if samp == nil {
				return fmt.Errorf("sampler binding %d has no sampler, call InitSampler first", binding)
			}
			bindGroupEntries[i] = wgpu.BindGroupEntry{
				Binding: entry.Binding,
				Sampler: samp,
			}
		} else {
			// buffer binding, created on first init
			buf := provider.Buffer(binding)
			if buf == nil {
				var bufErr error
				bufSize := entry.Buffer.MinBindingSize
				if overrideSize, ok := bufferSizeOverrides[binding]; ok {
					bufSize = overrideSize
				}
				buf, bufErr = b.device.CreateBuffer(&wgpu.BufferDescriptor{
					Label: fmt.Sprintf("%s Binding %d", provider.Label(), binding),
					Size:  bufSize,
					Usage: bufferUsage(entry.Buffer.Type) | bufferUsageOverrides[binding],
				})
				if bufErr != nil {
					return bufErr
				}
				provider.SetBuffer(binding, buf)
			}
			bindGroupEntries[i] = wgpu.BindGroupEntry{
				Binding: entry.Binding,
				Buffer:  buf,
				Offset:  0,
				Size:    wgpu.WholeSize,
			}
		}
	}

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   provider.Label() + " Bind Group",
		Layout:  layout,
		Entries: bindGroupEntries,
	})
	if err != nil {
		return err
	}
	provider.SetBindGroup(bindGroup)

	return nil
}

func (b *wgpuRendererBackendImpl) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     provider.Label() + " Texture",
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              stagingData.Width,
			Height:             stagingData.Height,
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return err
	}

	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		stagingData.Pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  stagingData.Width * 4,
			RowsPerImage: stagingData.Height,
		},
		&wgpu.Extent3D{
			Width:              stagingData.Width,
			Height:             stagingData.Height,
			DepthOrArrayLayers: 1,
		},
	)

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return err
	}
	provider.SetTexture(bindingKey, tex, view)

	return nil
}

func (b *wgpuRendererBackendImpl) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	samp, err := b.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         provider.Label() + " Sampler",
		AddressModeU:  cmp.Or(samplerStagingData.AddressModeU, wgpu.AddressModeRepeat),
		AddressModeV:  cmp.Or(samplerStagingData.AddressModeV, wgpu.AddressModeRepeat),
		AddressModeW:  cmp.Or(samplerStagingData.AddressModeW, wgpu.AddressModeRepeat),
		MagFilter:     cmp.Or(samplerStagingData.MagFilter, wgpu.FilterModeLinear),
		MinFilter:     cmp.Or(samplerStagingData.MinFilter, wgpu.FilterModeLinear),
		MipmapFilter:  cmp.Or(samplerStagingData.MipmapFilter, wgpu.MipmapFilterModeLinear),
		LodMinClamp:   cmp.Or(samplerStagingData.LodMinClamp, 0.0),
		LodMaxClamp:   cmp.Or(samplerStagingData.LodMaxClamp, 32.0),
		MaxAnisotropy: cmp.Or(samplerStagingData.MaxAnisotropy, 1),
	})
	if err != nil {
		return err
	}
	provider.SetSampler(bindingKey, samp)

	return nil
}

func (b *wgpuRendererBackendImpl) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, w := range writes {
		buf := w.Provider.Buffer(w.Binding)
		if buf == nil {
			continue
		}
		if size := buf.GetSize(); !w.Fits(size) {
			w.Reject(size)
			continue
		}
		b.queue.WriteBuffer(buf, w.Offset, w.Data)
	}
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// a surface image still held from the previous frame cannot be acquired twice
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	// multisampled passes resolve into the swapchain image, single-sampled ones draw into it
	if b.sampleCount > 1 {
		b.renderPassDescriptor.ColorAttachments[0].ResolveTarget = view
	} else {
		b.renderPassDescriptor.ColorAttachments[0].View = view
	}
	pass := encoder.BeginRenderPass(b.renderPassDescriptor)

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuRendererBackendImpl) DrawCall(
	p pipeline.Pipeline,
	meshProvider bind_group_provider.BindGroupProvider,
	bindGroups []bind_group_provider.BindGroupProvider,
) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return
	}

	b.framePass.SetPipeline(p.RenderPipeline())

	for i, bg := range bindGroups {
		b.framePass.SetBindGroup(uint32(i), bg.BindGroup(), nil)
	}

	b.framePass.SetVertexBuffer(0, meshProvider.VertexBuffer(), 0, wgpu.WholeSize)
	for slot, buf := range meshProvider.InstanceBuffers() {
		b.framePass.SetVertexBuffer(slot, buf, 0, wgpu.WholeSize)
	}
	b.framePass.SetIndexBuffer(meshProvider.IndexBuffer(), wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	b.framePass.DrawIndexed(uint32(meshProvider.IndexCount()), uint32(meshProvider.InstanceCount()), 0, 0, 0)
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return
	}
	b.framePass.End()
	b.framePass = nil

	commandBuffer, err := b.frameEncoder.Finish(nil)
	b.frameEncoder.Release()
	b.frameEncoder = nil
	if err != nil {
		log.Printf("[Renderer] dropping frame: %v", err)
		b.releaseFrame()
		return
	}
	b.queue.Submit(commandBuffer)
	commandBuffer.Release()
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}
	b.surface.Present()
	b.releaseFrame()
}

// releaseFrame drops the swapchain image and view held since BeginFrame.
func (b *wgpuRendererBackendImpl) releaseFrame() {
	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	if b.frameSurface != nil {
		b.frameSurface.Release()
		b.frameSurface = nil
	}
}

// depthFormat is the format of every depth target and depth-tested pipeline.
const depthFormat = wgpu.TextureFormatDepth24Plus

// depthState returns the depth configuration for a pipeline. Overlays such as the fade
// quad disable the test and always pass.
func depthState(test, write bool) *wgpu.DepthStencilState {
	compare := wgpu.CompareFunctionLess
	if !test {
		compare = wgpu.CompareFunctionAlways
	}
	always := wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways}
	return &wgpu.DepthStencilState{
		Format:            depthFormat,
		DepthWriteEnabled: write,
		DepthCompare:      compare,
		StencilFront:      always,
		StencilBack:       always,
	}
}

// bufferUsage maps a binding type to the usage of the buffer that backs it. Every
// bound buffer is written from the CPU, so all of them are copy destinations.
func bufferUsage(t wgpu.BufferBindingType) wgpu.BufferUsage {
	switch t {
	case wgpu.BufferBindingTypeStorage, wgpu.BufferBindingTypeReadOnlyStorage:
		return wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst
	default:
		return wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst
	}
}

// mergeBindGroupLayouts combines the per-stage layouts of a vertex and fragment shader
// into one layout per group, indexed by group number. A binding declared by both stages
// keeps the vertex entry with the union of both visibilities. Entries are sorted by
// binding and groups neither stage uses come back as empty layouts.
//
// Parameters:
//   - vertexLayouts: layouts declared by the vertex shader, by group
//   - fragmentLayouts: layouts declared by the fragment shader, by group
//
// Returns:
//   - []wgpu.BindGroupLayoutDescriptor: one descriptor per group from 0 to the highest used
func mergeBindGroupLayouts(vertexLayouts, fragmentLayouts map[int]wgpu.BindGroupLayoutDescriptor) []wgpu.BindGroupLayoutDescriptor {
	groups := 0
	for g := range vertexLayouts {
		groups = max(groups, g+1)
	}
	for g := range fragmentLayouts {
		groups = max(groups, g+1)
	}

	merged := make([]wgpu.BindGroupLayoutDescriptor, groups)
	for g := range merged {
		v, f := vertexLayouts[g], fragmentLayouts[g]
		merged[g].Label = cmp.Or(v.Label, f.Label)

		byBinding := make(map[uint32]wgpu.BindGroupLayoutEntry, len(v.Entries)+len(f.Entries))
		for _, e := range slices.Concat(v.Entries, f.Entries) {
			if prev, ok := byBinding[e.Binding]; ok {
				prev.Visibility |= e.Visibility
				e = prev
			}
			byBinding[e.Binding] = e
		}
		entries := slices.Collect(maps.Values(byBinding))
		slices.SortFunc(entries, func(a, b wgpu.BindGroupLayoutEntry) int {
			return cmp.Compare(a.Binding, b.Binding)
		})
		merged[g].Entries = entries
	}
	return merged
}
