package model

import (
	"math"
	"testing"
)

func TestNewPlane(t *testing.T) {
	m := NewPlane("ground", 10000, 10000)
	if m.Name() != "ground" {
		t.Errorf("Name = %q, want ground", m.Name())
	}
	if m.IndexCount() != 6 || len(m.Vertices()) != 4 {
		t.Fatalf("plane has %d vertices and %d indices, want 4 and 6", len(m.Vertices()), m.IndexCount())
	}
	want := float32(math.Sqrt(2 * 5000 * 5000))
	if d := m.BoundingRadius() - want; d > 0.01 || d < -0.01 {
		t.Errorf("BoundingRadius = %v, want %v", m.BoundingRadius(), want)
	}
	if n := len(m.VertexData()); n != 4*20 {
		t.Errorf("len(VertexData) = %d, want 80", n)
	}
	if n := len(m.IndexData()); n != 6*4 {
		t.Errorf("len(IndexData) = %d, want 24", n)
	}
}

func TestNewHemisphere(t *testing.T) {
	const radius = 950
	m := NewHemisphere("sky", radius, 16, 8)
	verts := m.Vertices()
	if len(verts) != 17*9 {
		t.Fatalf("got %d vertices, want %d", len(verts), 17*9)
	}
	if m.IndexCount() != 16*8*6 {
		t.Fatalf("got %d indices, want %d", m.IndexCount(), 16*8*6)
	}
	for i, v := range verts {
		p := v.Position
		r := math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]))
		if math.Abs(r-radius) > 0.01 {
			t.Fatalf("vertex %d at distance %v, want %v", i, r, radius)
		}
		if p[2] < -1e-3 {
			t.Fatalf("vertex %d below the horizon: z = %v", i, p[2])
		}
	}
	for _, idx := range m.Indices() {
		if int(idx) >= len(verts) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestScreenQuadCoversNDC(t *testing.T) {
	m := NewScreenQuad()
	var minX, minY, maxX, maxY float32 = 1, 1, -1, -1
	for _, v := range m.Vertices() {
		minX, maxX = min(minX, v.Position[0]), max(maxX, v.Position[0])
		minY, maxY = min(minY, v.Position[1]), max(maxY, v.Position[1])
	}
	if minX != -1 || minY != -1 || maxX != 1 || maxY != 1 {
		t.Errorf("overlay spans (%v,%v)-(%v,%v), want (-1,-1)-(1,1)", minX, minY, maxX, maxY)
	}
}

func TestGPUVertexSize(t *testing.T) {
	v := GPUVertex{}
	if v.Size() != 20 {
		t.Errorf("GPUVertex size = %d, want 20", v.Size())
	}
}
