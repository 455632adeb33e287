package grass

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func newTestField(t *testing.T, n int, radius float64) Field {
	t.Helper()
	f, err := NewField(WithNumBlades(n), WithRadius(radius), WithRand(rand.New(rand.NewPCG(42, 42))))
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	return f
}

func TestNewFieldRejectsNonPositiveBlades(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := NewField(WithNumBlades(n))
		if !errors.Is(err, ErrNoBlades) {
			t.Errorf("NewField(%d blades) err = %v, want ErrNoBlades", n, err)
		}
	}
}

func TestBladeAttributeRanges(t *testing.T) {
	const radius = 50.0
	f := newTestField(t, 10000, radius)

	shapes, offsets := f.Shapes(), f.Offsets()
	if len(shapes) != 10000 || len(offsets) != 10000 {
		t.Fatalf("got %d shapes and %d offsets, want 10000", len(shapes), len(offsets))
	}
	for i := range shapes {
		s, o := shapes[i], offsets[i]
		if o.X < -radius || o.X > radius || o.Y < -radius || o.Y > radius {
			t.Fatalf("blade %d offset (%v, %v) outside [-%v, %v]", i, o.X, o.Y, radius, radius)
		}
		if s.Width < 0.15 || s.Width > 0.225 {
			t.Fatalf("blade %d width %v outside [0.15, 0.225]", i, s.Width)
		}
		if s.Height < 2 || s.Height > 4 {
			t.Fatalf("blade %d height %v outside [2, 4]", i, s.Height)
		}
		if s.Lean < 0 || s.Lean > 0.7 {
			t.Fatalf("blade %d lean %v outside [0, 0.7]", i, s.Lean)
		}
		if s.Curve < 0.2 || s.Curve > 1 {
			t.Fatalf("blade %d curve %v outside [0.2, 1]", i, s.Curve)
		}
		if o.Z != 0 {
			t.Fatalf("blade %d z offset %v, want 0", i, o.Z)
		}
		if o.Rotation < 0 || o.Rotation >= 2*math.Pi {
			t.Fatalf("blade %d rotation %v outside [0, 2π)", i, o.Rotation)
		}
	}
}

func TestHeightBiasedLow(t *testing.T) {
	f := newTestField(t, 10000, 50)
	below := 0
	for _, s := range f.Shapes() {
		if s.Height < 3 {
			below++
		}
	}
	// quartic draw: P(h < 3) = P(r^4 < 0.5) ≈ 0.84
	if below < 8000 {
		t.Errorf("%d of 10000 blades below height 3, want a strong low bias", below)
	}
}

func TestUpdateLeavesAttributesUntouched(t *testing.T) {
	f := newTestField(t, 1, 50)
	shapes, offsets := f.Shapes(), f.Offsets()

	f.Update(0, 0, 0)
	f.Update(1, 10, 0)

	if f.Time() != 1 {
		t.Errorf("Time = %v, want 1", f.Time())
	}
	if fc := f.Focus(); fc.X != 10 || fc.Y != 0 {
		t.Errorf("Focus = %+v, want (10, 0)", fc)
	}
	if f.NumBlades() != 1 {
		t.Errorf("NumBlades = %d, want 1", f.NumBlades())
	}

	gotS, gotO := f.Shapes()[0], f.Offsets()[0]
	same := func(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) }
	if !same(gotS.Width, shapes[0].Width) || !same(gotS.Height, shapes[0].Height) ||
		!same(gotS.Lean, shapes[0].Lean) || !same(gotS.Curve, shapes[0].Curve) {
		t.Errorf("shape changed after Update: %+v -> %+v", shapes[0], gotS)
	}
	if !same(gotO.X, offsets[0].X) || !same(gotO.Y, offsets[0].Y) ||
		!same(gotO.Z, offsets[0].Z) || !same(gotO.Rotation, offsets[0].Rotation) {
		t.Errorf("offset changed after Update: %+v -> %+v", offsets[0], gotO)
	}

	u := f.Uniform()
	if u.Time != 1 || u.DrawPos != [2]float32{10, 0} || u.PatchSize != 100 {
		t.Errorf("Uniform = %+v, want time 1, drawPos (10, 0), patch 100", u)
	}
}

func TestTopology(t *testing.T) {
	f := newTestField(t, 1, 10)

	vindex := f.VIndex()
	if len(vindex) != 20 {
		t.Fatalf("len(vindex) = %d, want 20", len(vindex))
	}
	for i, v := range vindex {
		if v != float32(i) {
			t.Errorf("vindex[%d] = %v, want %d", i, v, i)
		}
	}

	idx := f.Indices()
	if len(idx) != BladeIndices || BladeIndices != 48 {
		t.Fatalf("len(indices) = %d, want 48", len(idx))
	}
	wantHead := []uint32{0, 1, 2, 2, 1, 3, 2, 3, 4, 4, 3, 5}
	for i, w := range wantHead {
		if idx[i] != w {
			t.Errorf("front index %d = %d, want %d", i, idx[i], w)
		}
	}
	wantBack := []uint32{12, 11, 10, 13, 11, 12}
	for i, w := range wantBack {
		if idx[24+i] != w {
			t.Errorf("back index %d = %d, want %d", 24+i, idx[24+i], w)
		}
	}
	for i, v := range idx {
		if v >= 2*BladeVerts {
			t.Errorf("index %d = %d exceeds vertex count", i, v)
		}
	}
	if idx[23] != 9 || idx[47] != 18 {
		t.Errorf("last front/back index = %d/%d, want 9/18", idx[23], idx[47])
	}
}

func TestInstanceBuffers(t *testing.T) {
	f := newTestField(t, 3, 10)
	if n := len(f.ShapeBuffer()); n != 48 {
		t.Errorf("len(ShapeBuffer) = %d, want 48", n)
	}
	if n := len(f.OffsetBuffer()); n != 48 {
		t.Errorf("len(OffsetBuffer) = %d, want 48", n)
	}
	u := f.Uniform()
	if u.Size() != 64 || len(u.Marshal()) != 64 {
		t.Errorf("GPUGrassParams size = %d, want 64", u.Size())
	}
}

func TestTileOriginKeepsBladesNearFocus(t *testing.T) {
	const patch = 100.0
	rng := rand.New(rand.NewPCG(3, 9))
	for i := 0; i < 1000; i++ {
		focus := (rng.Float64()*2 - 1) * 10000
		offset := (rng.Float64()*2 - 1) * patch / 2
		p := TileOrigin(focus, offset, patch) + offset
		if p <= focus-patch/2-1e-6 || p > focus+patch/2+1e-6 {
			t.Fatalf("focus %v offset %v drawn at %v, more than half a patch away", focus, offset, p)
		}
		// origin is always a half-patch-shifted multiple of the patch size
		if r := math.Mod(math.Abs(TileOrigin(focus, offset, patch)-patch/2), patch); r > 1e-6 && patch-r > 1e-6 {
			t.Fatalf("tile origin %v is not on the patch grid", TileOrigin(focus, offset, patch))
		}
	}
}

func TestBladeVertexTaperAndHeight(t *testing.T) {
	shape := Shape{Width: 0.2, Height: 3, Lean: 0, Curve: 0}
	offset := Offset{}

	root0 := BladeVertex(0, shape, offset, 0, 0, 0, 100)
	root1 := BladeVertex(1, shape, offset, 0, 0, 0, 100)
	if w := root1[0] - root0[0]; math.Abs(w-0.2) > 1e-9 {
		t.Errorf("root width = %v, want 0.2", w)
	}
	tip0 := BladeVertex(8, shape, offset, 0, 0, 0, 100)
	tip1 := BladeVertex(9, shape, offset, 0, 0, 0, 100)
	if math.Abs(tip1[0]-tip0[0]) > 1e-9 {
		t.Errorf("tip width = %v, want 0", tip1[0]-tip0[0])
	}
	if math.Abs(tip0[2]-3) > 1e-9 {
		t.Errorf("tip height = %v, want 3", tip0[2])
	}
	if Taper(0.5) != 0.875 {
		t.Errorf("Taper(0.5) = %v, want 0.875", Taper(0.5))
	}
}
