package renderer

import (
	"math/rand/v2"
	"testing"

	"github.com/Carmen-Shannon/oxy-grass/engine/camera"
	"github.com/Carmen-Shannon/oxy-grass/engine/grass"
	"github.com/Carmen-Shannon/oxy-grass/engine/scene"
	"github.com/Carmen-Shannon/oxy-grass/engine/terrain"
	"github.com/cogentcore/webgpu/wgpu"
)

func newTestScene(t *testing.T) scene.Scene {
	t.Helper()
	field, err := grass.NewField(grass.WithNumBlades(4), grass.WithRadius(10), grass.WithRand(rand.New(rand.NewPCG(7, 7))))
	if err != nil {
		t.Fatal(err)
	}
	s, err := scene.NewScene(
		scene.WithCamera(camera.NewCamera()),
		scene.WithGrass(field),
		scene.WithGround(terrain.NewGround()),
		scene.WithSky(terrain.NewSkyDome()),
	)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func stepKeys(steps []drawStep) []string {
	keys := make([]string, len(steps))
	for i, s := range steps {
		keys[i] = s.pipelineKey
	}
	return keys
}

func TestPlanFrameSkipsHiddenOverlays(t *testing.T) {
	s := newTestScene(t)

	// fresh scene: fade visible, glare hidden
	got := stepKeys(planFrame(s))
	want := []string{PipelineGrass, PipelineSurface, PipelineSurface, PipelineOverlayAlpha}
	if len(got) != len(want) {
		t.Fatalf("steps = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %s, want %s", i, got[i], want[i])
		}
	}

	s.Fade().SetVisible(false)
	s.Glare().SetVisible(true)
	got = stepKeys(planFrame(s))
	if len(got) != 4 || got[3] != PipelineOverlayAdditive {
		t.Errorf("steps = %v, want glare drawn additively last", got)
	}

	s.Glare().SetVisible(false)
	if n := len(planFrame(s)); n != 3 {
		t.Errorf("steps with no overlays = %d, want 3", n)
	}
}

func TestResourcesMatchDrawKind(t *testing.T) {
	s := newTestScene(t)
	r := &sceneRenderer{}
	for _, d := range s.DrawList() {
		mesh, groups := r.resources(s, d)
		if mesh != nil {
			t.Errorf("%s: unprepared renderer returned a mesh", d.Name)
		}
		wantGroups := 2
		if d.Kind == scene.DrawOverlay {
			wantGroups = 1
		}
		if len(groups) != wantGroups {
			t.Errorf("%s: %d bind groups, want %d", d.Name, len(groups), wantGroups)
		}
	}
}

func TestTexturedSurfacesRepeat(t *testing.T) {
	for _, kind := range []scene.DrawKind{scene.DrawGrass, scene.DrawGround, scene.DrawSky} {
		s := samplerFor(kind)
		if s == nil {
			t.Fatalf("kind %d has no sampler", kind)
		}
		if s.AddressModeU != wgpu.AddressModeRepeat || s.AddressModeV != wgpu.AddressModeRepeat {
			t.Errorf("kind %d address modes = %v/%v, want repeat", kind, s.AddressModeU, s.AddressModeV)
		}
	}
	if samplerFor(scene.DrawOverlay) != nil {
		t.Error("overlays are untextured")
	}
}
