package grass

const (
	// BladeSegs is the number of vertical segments in a blade.
	BladeSegs = 4

	// BladeDivs is the number of vertical divisions (segment boundaries) in a blade.
	BladeDivs = BladeSegs + 1

	// BladeVerts is the number of vertices on one side of a blade.
	BladeVerts = BladeDivs * 2

	// BladeIndices is the number of triangle indices for both sides of a blade.
	BladeIndices = BladeSegs * 12
)

// newVIndex builds the per-vertex index stream shared by every blade.
// Entries [0, BladeVerts) are the front side and [BladeVerts, 2*BladeVerts) the back side.
func newVIndex() []float32 {
	vindex := make([]float32, BladeVerts*2)
	for i := range vindex {
		vindex[i] = float32(i)
	}
	return vindex
}

// newIndices builds the triangle index list shared by every blade. The front side winds
// counter-clockwise, the back side reuses the same strip order reversed and offset by BladeVerts.
func newIndices() []uint32 {
	idx := make([]uint32, BladeIndices)
	i := 0
	for v := uint32(0); i < BladeIndices/2; v += 2 {
		idx[i] = v
		idx[i+1] = v + 1
		idx[i+2] = v + 2
		idx[i+3] = v + 2
		idx[i+4] = v + 1
		idx[i+5] = v + 3
		i += 6
	}
	for v := uint32(BladeVerts); i < BladeIndices; v += 2 {
		idx[i] = v + 2
		idx[i+1] = v + 1
		idx[i+2] = v
		idx[i+3] = v + 3
		idx[i+4] = v + 1
		idx[i+5] = v + 2
		i += 6
	}
	return idx
}
