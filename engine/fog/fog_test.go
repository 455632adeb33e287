package fog

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestForRadius(t *testing.T) {
	f := ForRadius(50)
	if f.Far != 500 {
		t.Errorf("Far = %v, want 500", f.Far)
	}
	if f.GrassFar != 100 {
		t.Errorf("GrassFar = %v, want 100", f.GrassFar)
	}
	if f.Near != 1 {
		t.Errorf("Near = %v, want 1", f.Near)
	}
	if f.Color != DefaultColor || f.GrassColor != DefaultGrassColor {
		t.Error("fog colors do not match the defaults")
	}
}

func TestFactorStages(t *testing.T) {
	f := ForRadius(50)

	g, a := f.Factor(0.5)
	if g != 0 || a != 0 {
		t.Errorf("Factor before near = (%v, %v), want (0, 0)", g, a)
	}

	g, a = f.Factor(100)
	if g != 1 {
		t.Errorf("grass fog at GrassFar = %v, want 1", g)
	}
	if a <= 0 || a >= 1 {
		t.Errorf("atmosphere fog at GrassFar = %v, want strictly between 0 and 1", a)
	}

	_, a = f.Factor(1000)
	if a != 1 {
		t.Errorf("atmosphere fog beyond Far = %v, want 1", a)
	}
}

func TestGPUFogParamsLayout(t *testing.T) {
	g := ForRadius(10).GPU()
	if g.Size() != 48 {
		t.Fatalf("Size = %d, want 48", g.Size())
	}
	buf := g.Marshal()
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[28:])); got != 100 {
		t.Errorf("Far at offset 28 = %v, want 100", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[32:])); got != 20 {
		t.Errorf("GrassFar at offset 32 = %v, want 20", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[12:])); got != 1 {
		t.Errorf("Near at offset 12 = %v, want 1", got)
	}
}
