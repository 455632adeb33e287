package material

import "testing"

func TestHexColor(t *testing.T) {
	c := HexColor(0xFFF844)
	if c[0] != 1 || c[1] != float32(0xF8)/255 || c[2] != float32(0x44)/255 {
		t.Errorf("HexColor(0xFFF844) = %v", c)
	}
}

func TestOpacityClamped(t *testing.T) {
	m := NewMaterial(WithName("glare"), WithBlend(BlendAdditive), WithVisible(false), WithOpacity(0))
	if m.Visible() || m.Opacity() != 0 || m.Blend() != BlendAdditive {
		t.Fatalf("material = %+v", m)
	}
	m.SetOpacity(1.5)
	if m.Opacity() != 1 {
		t.Errorf("Opacity = %v, want clamped to 1", m.Opacity())
	}
	m.SetOpacity(-1)
	if m.Opacity() != 0 {
		t.Errorf("Opacity = %v, want clamped to 0", m.Opacity())
	}
}

func TestUniformCarriesOpacity(t *testing.T) {
	m := NewMaterial(WithColor([3]float32{0.5, 0.25, 1}))
	m.SetOpacity(0.75)
	u := m.Uniform()
	if u.OverlayColor != [4]float32{0.5, 0.25, 1, 0.75} {
		t.Errorf("OverlayColor = %v", u.OverlayColor)
	}
	if u.Size() != 16 {
		t.Errorf("Size = %d, want 16", u.Size())
	}
}
