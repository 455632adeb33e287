package grass

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-grass/engine/fog"
)

// GPUBladeShape is the per-instance shape attribute of one blade.
// Matches the WGSL @location(1) vec4<f32> instance attribute.
// Size: 16 bytes.
type GPUBladeShape [4]float32

// GPUBladeOffset is the per-instance offset attribute of one blade (x, y, z, rotation).
// Matches the WGSL @location(2) vec4<f32> instance attribute.
// Size: 16 bytes.
type GPUBladeOffset [4]float32

// GPUGrassParams is the GPU-aligned uniform block for the grass pipeline.
// Matches the WGSL GrassParams struct layout exactly.
// Size: 64 bytes (std140 aligned).
type GPUGrassParams struct {
	DrawPos   [2]float32       // offset  0: focus point the tiles are centred on
	PatchSize float32          // offset  8: width of one repeating tile
	Time      float32          // offset 12: animation time in seconds
	Fog       fog.GPUFogParams // offset 16: shared two-stage fog (48 bytes)
}

// Size returns the size of the GPUGrassParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes (64)
func (g *GPUGrassParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUGrassParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPUGrassParams) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.DrawPos[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.DrawPos[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.PatchSize))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Time))
	g.Fog.MarshalTo(buf[16:])
	return buf
}

func marshalVec4s(v [][4]float32) []byte {
	buf := make([]byte, len(v)*16)
	for i, e := range v {
		for j := range 4 {
			binary.LittleEndian.PutUint32(buf[i*16+j*4:], math.Float32bits(e[j]))
		}
	}
	return buf
}
