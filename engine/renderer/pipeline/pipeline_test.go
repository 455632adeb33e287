package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-grass/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("ground")
	if p.PipelineKey() != "ground" {
		t.Errorf("key = %q", p.PipelineKey())
	}
	if !p.DepthTestEnabled() || !p.DepthWriteEnabled() {
		t.Error("depth test and write should default on")
	}
	if p.BlendEnabled() || p.BlendState() != nil {
		t.Error("blending should default off")
	}
	if p.CullMode() != wgpu.CullModeNone || p.FrontFace() != wgpu.FrontFaceCCW {
		t.Errorf("cull/front = %v/%v", p.CullMode(), p.FrontFace())
	}
	if p.RenderPipeline() != nil {
		t.Error("render pipeline should be nil before registration")
	}
}

func TestOverlayPipelineOptions(t *testing.T) {
	vs, fs, err := shader.OverlayShaders()
	if err != nil {
		t.Fatal(err)
	}
	p := NewPipeline("overlay_additive",
		WithVertexShader(vs),
		WithFragmentShader(fs),
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithBlendState(AdditiveBlend),
	)

	if p.Shader(shader.ShaderTypeVertex) != vs || p.Shader(shader.ShaderTypeFragment) != fs {
		t.Error("shaders not stored by stage")
	}
	if p.DepthTestEnabled() || p.DepthWriteEnabled() {
		t.Error("overlay pipeline should not touch depth")
	}
	if !p.BlendEnabled() {
		t.Fatal("WithBlendState should enable blending")
	}
	if got := p.BlendState().Color.DstFactor; got != wgpu.BlendFactorOne {
		t.Errorf("additive dst factor = %v, want One", got)
	}

	alpha := NewPipeline("overlay_alpha", WithBlendState(AlphaBlend))
	if got := alpha.BlendState().Color.DstFactor; got != wgpu.BlendFactorOneMinusSrcAlpha {
		t.Errorf("alpha dst factor = %v, want OneMinusSrcAlpha", got)
	}
	if NewPipeline("x", WithBlendEnabled(false), WithBlendState(AlphaBlend), WithBlendEnabled(false)).BlendState() != nil {
		t.Error("disabled blending should report no blend state")
	}
}
