package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestMergeBindGroupLayouts(t *testing.T) {
	camera := wgpu.BindGroupLayoutEntry{Binding: 0, Visibility: wgpu.ShaderStageVertex}
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {Label: "Camera", Entries: []wgpu.BindGroupLayoutEntry{camera}},
		1: {Label: "Grass", Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageVertex},
		}},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		1: {Label: "Grass", Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 2, Visibility: wgpu.ShaderStageFragment},
			{Binding: 0, Visibility: wgpu.ShaderStageFragment},
			{Binding: 1, Visibility: wgpu.ShaderStageFragment},
		}},
		3: {Label: "Fade", Entries: []wgpu.BindGroupLayoutEntry{
			{Binding: 0, Visibility: wgpu.ShaderStageFragment},
		}},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	if len(merged) != 4 {
		t.Fatalf("got %d groups, want 4", len(merged))
	}
	if len(merged[0].Entries) != 1 || merged[0].Entries[0] != camera {
		t.Errorf("vertex-only group changed: %+v", merged[0])
	}
	if len(merged[2].Entries) != 0 {
		t.Errorf("unused group 2 should be empty, got %+v", merged[2])
	}
	if merged[3].Label != "Fade" || len(merged[3].Entries) != 1 {
		t.Errorf("fragment-only group = %+v", merged[3])
	}

	grass := merged[1].Entries
	if len(grass) != 3 {
		t.Fatalf("grass group has %d entries, want 3", len(grass))
	}
	for i, e := range grass {
		if e.Binding != uint32(i) {
			t.Errorf("entry %d has binding %d, want sorted bindings", i, e.Binding)
		}
	}
	if want := wgpu.ShaderStageVertex | wgpu.ShaderStageFragment; grass[0].Visibility != want {
		t.Errorf("shared binding visibility = %v, want %v", grass[0].Visibility, want)
	}
	if grass[1].Visibility != wgpu.ShaderStageFragment {
		t.Errorf("fragment-only binding visibility = %v", grass[1].Visibility)
	}
}

func TestMergeBindGroupLayoutsEmpty(t *testing.T) {
	if got := mergeBindGroupLayouts(nil, nil); len(got) != 0 {
		t.Errorf("got %d groups for shaders without bindings", len(got))
	}
}

func TestBufferUsage(t *testing.T) {
	tests := []struct {
		t    wgpu.BufferBindingType
		want wgpu.BufferUsage
	}{
		{wgpu.BufferBindingTypeUniform, wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst},
		{wgpu.BufferBindingTypeStorage, wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst},
		{wgpu.BufferBindingTypeReadOnlyStorage, wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst},
	}
	for _, tc := range tests {
		if got := bufferUsage(tc.t); got != tc.want {
			t.Errorf("bufferUsage(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestDepthState(t *testing.T) {
	tested := depthState(true, true)
	if tested.DepthCompare != wgpu.CompareFunctionLess || !tested.DepthWriteEnabled {
		t.Errorf("depth-tested state = %+v", tested)
	}
	overlay := depthState(false, false)
	if overlay.DepthCompare != wgpu.CompareFunctionAlways || overlay.DepthWriteEnabled {
		t.Errorf("overlay state = %+v", overlay)
	}
	if tested.Format != depthFormat || overlay.Format != depthFormat {
		t.Error("pipelines must use the depth target format")
	}
}
