package renderer

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-grass/common"
	"github.com/Carmen-Shannon/oxy-grass/engine/model"
	"github.com/Carmen-Shannon/oxy-grass/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-grass/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-grass/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-grass/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-grass/engine/scene"
	"github.com/Carmen-Shannon/oxy-grass/engine/terrain"
	"github.com/cogentcore/webgpu/wgpu"
)

const (
	// PipelineGrass draws the instanced grass blades.
	PipelineGrass = "grass"
	// PipelineSurface draws the ground and the sky dome.
	PipelineSurface = "surface"
	// PipelineOverlayAlpha draws alpha-blended full-screen overlays.
	PipelineOverlayAlpha = "overlay_alpha"
	// PipelineOverlayAdditive draws additive full-screen overlays.
	PipelineOverlayAdditive = "overlay_additive"
)

// drawStep is one draw call of a frame, resolved from the scene's draw list.
type drawStep struct {
	pipelineKey string
	entry       scene.Drawable
}

// planFrame resolves the scene's draw list into draw calls in order, dropping hidden overlays.
//
// Parameters:
//   - s: the scene to draw
//
// Returns:
//   - []drawStep: the draw calls of the frame
func planFrame(s scene.Scene) []drawStep {
	list := s.DrawList()
	steps := make([]drawStep, 0, len(list))
	for _, d := range list {
		var key string
		switch d.Kind {
		case scene.DrawGrass:
			key = PipelineGrass
		case scene.DrawGround, scene.DrawSky:
			key = PipelineSurface
		case scene.DrawOverlay:
			m := scene.Overlay(s, d)
			if m == nil || !m.Visible() {
				continue
			}
			key = overlayPipeline(m.Blend())
		default:
			continue
		}
		steps = append(steps, drawStep{pipelineKey: key, entry: d})
	}
	return steps
}

func overlayPipeline(blend material.BlendMode) string {
	if blend == material.BlendAdditive {
		return PipelineOverlayAdditive
	}
	return PipelineOverlayAlpha
}

// sceneRenderer draws a scene.Scene through a Renderer. GPU resources are created on the first
// Render call for a scene and reused until a different scene is rendered.
type sceneRenderer struct {
	gpu      Renderer
	prepared scene.Scene

	// camera is bind group 0 of the grass and surface pipelines
	camera bind_group_provider.BindGroupProvider

	grassMesh, grassMaterial   bind_group_provider.BindGroupProvider
	groundMesh, groundMaterial bind_group_provider.BindGroupProvider
	skyMesh, skyMaterial       bind_group_provider.BindGroupProvider

	quad         bind_group_provider.BindGroupProvider
	fade, glare  bind_group_provider.BindGroupProvider
	overlayGroup wgpu.BindGroupLayoutDescriptor
}

var _ scene.Renderer = &sceneRenderer{}

// NewSceneRenderer creates a scene.Renderer drawing through the given GPU renderer.
//
// Parameters:
//   - gpu: the renderer that owns the device and surface
//
// Returns:
//   - scene.Renderer: the scene renderer
func NewSceneRenderer(gpu Renderer) scene.Renderer {
	return &sceneRenderer{gpu: gpu}
}

func (r *sceneRenderer) Resize(width, height int) {
	r.gpu.Resize(width, height)
}

func (r *sceneRenderer) Render(s scene.Scene) error {
	if s != r.prepared {
		r.release()
		if err := r.prepare(s); err != nil {
			r.release()
			return fmt.Errorf("failed to prepare scene: %w", err)
		}
		r.prepared = s
	}

	r.gpu.WriteBuffers(r.uniformWrites(s))

	if err := r.gpu.BeginFrame(); err != nil {
		return err
	}
	var drawErr error
	for _, step := range planFrame(s) {
		mesh, groups := r.resources(s, step.entry)
		if mesh == nil {
			continue
		}
		if err := r.gpu.DrawCall(step.pipelineKey, mesh, groups); err != nil {
			drawErr = err
			break
		}
	}
	r.gpu.EndFrame()
	r.gpu.Present()
	return drawErr
}

// resources returns the mesh provider and bind groups of a draw list entry.
func (r *sceneRenderer) resources(s scene.Scene, d scene.Drawable) (bind_group_provider.BindGroupProvider, []bind_group_provider.BindGroupProvider) {
	switch d.Kind {
	case scene.DrawGrass:
		return r.grassMesh, []bind_group_provider.BindGroupProvider{r.camera, r.grassMaterial}
	case scene.DrawGround:
		return r.groundMesh, []bind_group_provider.BindGroupProvider{r.camera, r.groundMaterial}
	case scene.DrawSky:
		return r.skyMesh, []bind_group_provider.BindGroupProvider{r.camera, r.skyMaterial}
	case scene.DrawOverlay:
		switch scene.Overlay(s, d) {
		case s.Fade():
			return r.quad, []bind_group_provider.BindGroupProvider{r.fade}
		case s.Glare():
			return r.quad, []bind_group_provider.BindGroupProvider{r.glare}
		}
	}
	return nil, nil
}

func (r *sceneRenderer) uniformWrites(s scene.Scene) []bind_group_provider.BufferWrite {
	cam := s.Camera().Uniform()
	grass := s.Grass().Uniform()
	ground := s.Ground().Uniform()
	sky := s.Sky().Uniform()
	fade := s.Fade().Uniform()
	glare := s.Glare().Uniform()

	return []bind_group_provider.BufferWrite{
		{Provider: r.camera, Binding: 0, Data: cam.Marshal()},
		{Provider: r.grassMaterial, Binding: 0, Data: grass.Marshal()},
		{Provider: r.groundMaterial, Binding: 0, Data: ground.Marshal()},
		{Provider: r.skyMaterial, Binding: 0, Data: sky.Marshal()},
		{Provider: r.fade, Binding: 0, Data: fade.Marshal()},
		{Provider: r.glare, Binding: 0, Data: glare.Marshal()},
	}
}

func (r *sceneRenderer) prepare(s scene.Scene) error {
	grassVS, grassFS, err := shader.GrassShaders()
	if err != nil {
		return err
	}
	surfaceVS, surfaceFS, err := shader.SurfaceShaders()
	if err != nil {
		return err
	}
	overlayVS, overlayFS, err := shader.OverlayShaders()
	if err != nil {
		return err
	}

	err = r.gpu.RegisterPipelines(
		pipeline.NewPipeline(PipelineGrass,
			pipeline.WithVertexShader(grassVS),
			pipeline.WithFragmentShader(grassFS),
		),
		pipeline.NewPipeline(PipelineSurface,
			pipeline.WithVertexShader(surfaceVS),
			pipeline.WithFragmentShader(surfaceFS),
		),
		pipeline.NewPipeline(PipelineOverlayAlpha,
			pipeline.WithVertexShader(overlayVS),
			pipeline.WithFragmentShader(overlayFS),
			pipeline.WithDepthTestEnabled(false),
			pipeline.WithDepthWriteEnabled(false),
			pipeline.WithBlendState(pipeline.AlphaBlend),
		),
		pipeline.NewPipeline(PipelineOverlayAdditive,
			pipeline.WithVertexShader(overlayVS),
			pipeline.WithFragmentShader(overlayFS),
			pipeline.WithDepthTestEnabled(false),
			pipeline.WithDepthWriteEnabled(false),
			pipeline.WithBlendState(pipeline.AdditiveBlend),
		),
	)
	if err != nil {
		return err
	}

	camUniform := s.Camera().Uniform()
	r.camera = bind_group_provider.NewBindGroupProvider("camera")
	if err := r.gpu.InitBindGroup(r.camera, grassVS.BindGroupLayoutDescriptor(0), nil, map[int]uint64{0: uint64(camUniform.Size())}); err != nil {
		return err
	}

	field := s.Grass()
	grassUniform := field.Uniform()
	r.grassMesh = bind_group_provider.NewBindGroupProvider("grass", bind_group_provider.WithInstanceCount(field.NumBlades()))
	if err := r.gpu.InitMeshBuffers(r.grassMesh, common.SliceToBytes(field.VIndex()), common.SliceToBytes(field.Indices()), len(field.Indices())); err != nil {
		return err
	}
	if err := r.gpu.InitInstanceBuffer(r.grassMesh, 1, field.ShapeBuffer()); err != nil {
		return err
	}
	if err := r.gpu.InitInstanceBuffer(r.grassMesh, 2, field.OffsetBuffer()); err != nil {
		return err
	}
	r.grassMaterial, err = r.texturedMaterial("grass material", field.Texture(), samplerFor(scene.DrawGrass), grassFS.BindGroupLayoutDescriptor(1), grassUniform.Size())
	if err != nil {
		return err
	}

	r.groundMesh, r.groundMaterial, err = r.surface(s.Ground(), scene.DrawGround, surfaceFS.BindGroupLayoutDescriptor(1))
	if err != nil {
		return err
	}
	r.skyMesh, r.skyMaterial, err = r.surface(s.Sky(), scene.DrawSky, surfaceFS.BindGroupLayoutDescriptor(1))
	if err != nil {
		return err
	}

	quad := model.NewScreenQuad()
	r.quad = bind_group_provider.NewBindGroupProvider("overlay quad")
	if err := r.gpu.InitMeshBuffers(r.quad, quad.VertexData(), quad.IndexData(), quad.IndexCount()); err != nil {
		return err
	}
	r.overlayGroup = overlayFS.BindGroupLayoutDescriptor(0)
	if r.fade, err = r.overlay(s.Fade()); err != nil {
		return err
	}
	if r.glare, err = r.overlay(s.Glare()); err != nil {
		return err
	}

	log.Printf("[SceneRenderer] prepared scene: %d blades, %d draw entries", field.NumBlades(), len(s.DrawList()))
	return nil
}

func (r *sceneRenderer) surface(sf terrain.Surface, kind scene.DrawKind, group wgpu.BindGroupLayoutDescriptor) (bind_group_provider.BindGroupProvider, bind_group_provider.BindGroupProvider, error) {
	mesh := bind_group_provider.NewBindGroupProvider(sf.Name())
	m := sf.Model()
	if err := r.gpu.InitMeshBuffers(mesh, m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
		return mesh, nil, err
	}
	u := sf.Uniform()
	mat, err := r.texturedMaterial(sf.Name()+" material", sf.Texture(), samplerFor(kind), group, u.Size())
	return mesh, mat, err
}

// samplerFor returns the sampler of a textured draw kind, or nil for overlays. Blade UVs run past 1
// along the blade, so the grass texture repeats like the ground and sky.
func samplerFor(kind scene.DrawKind) *common.SamplerStagingData {
	switch kind {
	case scene.DrawGrass, scene.DrawGround, scene.DrawSky:
		return common.RepeatSampler()
	}
	return nil
}

func (r *sceneRenderer) texturedMaterial(label string, tex *common.Texture, sampler *common.SamplerStagingData, group wgpu.BindGroupLayoutDescriptor, uniformSize int) (bind_group_provider.BindGroupProvider, error) {
	p := bind_group_provider.NewBindGroupProvider(label)
	staging := tex.StagingData()
	if staging == nil {
		return p, fmt.Errorf("%s: texture not loaded", label)
	}
	if err := r.gpu.InitTextureView(p, 1, *staging); err != nil {
		return p, err
	}
	if err := r.gpu.InitSampler(p, 2, *sampler); err != nil {
		return p, err
	}
	if err := r.gpu.InitBindGroup(p, group, nil, map[int]uint64{0: uint64(uniformSize)}); err != nil {
		return p, err
	}
	return p, nil
}

func (r *sceneRenderer) overlay(m material.Material) (bind_group_provider.BindGroupProvider, error) {
	p := bind_group_provider.NewBindGroupProvider(m.Name())
	u := m.Uniform()
	if err := r.gpu.InitBindGroup(p, r.overlayGroup, nil, map[int]uint64{0: uint64(u.Size())}); err != nil {
		return p, err
	}
	return p, nil
}

// release frees the GPU resources of the previously prepared scene.
func (r *sceneRenderer) release() {
	for _, p := range []bind_group_provider.BindGroupProvider{
		r.camera, r.grassMesh, r.grassMaterial, r.groundMesh, r.groundMaterial,
		r.skyMesh, r.skyMaterial, r.quad, r.fade, r.glare,
	} {
		if p != nil {
			p.Release()
		}
	}
	r.camera, r.grassMesh, r.grassMaterial = nil, nil, nil
	r.groundMesh, r.groundMaterial, r.skyMesh, r.skyMaterial = nil, nil, nil, nil
	r.quad, r.fade, r.glare = nil, nil, nil
	r.prepared = nil
}
