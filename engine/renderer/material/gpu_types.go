package material

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUOverlayParams is the GPU-aligned uniform for the overlay fragment shader.
// Matches the WGSL OverlayParams struct layout exactly.
// Size: 16 bytes (one vec4<f32>, std140 aligned).
type GPUOverlayParams struct {
	OverlayColor [4]float32 // offset 0: RGB overlay color + opacity (16 bytes)
}

// Size returns the size of the GPUOverlayParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUOverlayParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUOverlayParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload.
func (g *GPUOverlayParams) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.OverlayColor[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.OverlayColor[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.OverlayColor[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.OverlayColor[3]))
	return buf
}
