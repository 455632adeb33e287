package model

import "math"

// NewPlane builds a flat quad on the z = 0 plane centred on the origin, facing +Z.
// UVs run 0..1 across the quad; surfaces that tile their texture scale them in the shader.
//
// Parameters:
//   - name: the model identifier
//   - width: extent along X
//   - height: extent along Y
//
// Returns:
//   - Model: the plane mesh
func NewPlane(name string, width, height float32) Model {
	hw, hh := width/2, height/2
	vertices := []GPUVertex{
		{Position: [3]float32{-hw, -hh, 0}, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{hw, -hh, 0}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{-hw, hh, 0}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{hw, hh, 0}, TexCoord: [2]float32{1, 0}},
	}
	indices := []uint32{0, 1, 2, 2, 1, 3}
	return NewModel(WithName(name), WithMesh(vertices, indices))
}

// NewHemisphere builds the upper half of a sphere (z >= 0) centred on the origin with its faces
// pointing inward, for use as a sky dome. U wraps once around the horizon and V runs from the
// zenith (0) to the horizon (1).
//
// Parameters:
//   - name: the model identifier
//   - radius: sphere radius
//   - segments: number of divisions around the horizon (at least 3)
//   - rings: number of divisions from horizon to zenith (at least 1)
//
// Returns:
//   - Model: the dome mesh
func NewHemisphere(name string, radius float32, segments, rings int) Model {
	segments = max(segments, 3)
	rings = max(rings, 1)

	vertices := make([]GPUVertex, 0, (segments+1)*(rings+1))
	for r := 0; r <= rings; r++ {
		v := float64(r) / float64(rings)
		elev := (1 - v) * math.Pi / 2
		ce, se := math.Cos(elev), math.Sin(elev)
		for s := 0; s <= segments; s++ {
			u := float64(s) / float64(segments)
			az := u * 2 * math.Pi
			vertices = append(vertices, GPUVertex{
				Position: [3]float32{
					radius * float32(ce*math.Cos(az)),
					radius * float32(ce*math.Sin(az)),
					radius * float32(se),
				},
				TexCoord: [2]float32{float32(u), float32(v)},
			})
		}
	}

	row := uint32(segments + 1)
	indices := make([]uint32, 0, segments*rings*6)
	for r := uint32(0); r < uint32(rings); r++ {
		for s := uint32(0); s < uint32(segments); s++ {
			a := r*row + s
			b := a + row
			// wound clockwise seen from outside so the inside faces the viewer
			indices = append(indices, a, a+1, b, b, a+1, b+1)
		}
	}
	return NewModel(WithName(name), WithMesh(vertices, indices))
}

// NewScreenQuad builds a quad covering normalized device coordinates, used for full-screen overlays.
//
// Returns:
//   - Model: the overlay quad
func NewScreenQuad() Model {
	vertices := []GPUVertex{
		{Position: [3]float32{-1, -1, 0}, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{1, -1, 0}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{-1, 1, 0}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{1, 1, 0}, TexCoord: [2]float32{1, 0}},
	}
	return NewModel(WithName("overlay"), WithMesh(vertices, []uint32{0, 1, 2, 2, 1, 3}))
}
