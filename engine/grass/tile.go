package grass

import "math"

// TileOrigin returns the origin of the repeating tile a blade is drawn in along one axis.
// The blade at offset is redrawn at TileOrigin(focus, offset, patch) + offset, which keeps
// every blade within half a patch of the focus point without touching the instance buffers.
// The vertex shader performs the same computation per vertex.
//
// Parameters:
//   - focus: focus coordinate on this axis
//   - offset: the blade's stored offset on this axis
//   - patch: the patch size (twice the field radius)
//
// Returns:
//   - float64: the tile origin on this axis
func TileOrigin(focus, offset, patch float64) float64 {
	return math.Floor((focus-offset)/patch)*patch + patch/2
}

// Sway returns the animated curve amount for a blade at (x, y) at time t in seconds.
// Two phase-shifted terms keep neighbouring blades from moving in lockstep.
//
// Parameters:
//   - curve: the blade's static curve
//   - x, y: the blade's stored offset
//   - t: animation time in seconds
//
// Returns:
//   - float64: the curve amount applied at the tip
func Sway(curve, x, y, t float64) float64 {
	return curve + 0.4*(math.Sin(t*4+x*0.8)+math.Cos(t*4+y*0.8))
}

// Taper returns the fraction of the blade's full width kept at height fraction h.
// The silhouette narrows with the cube of the height so blades stay full near the root.
//
// Parameters:
//   - h: height fraction in [0, 1]
//
// Returns:
//   - float64: width multiplier in [0, 1]
func Taper(h float64) float64 {
	return 1 - h*h*h
}

// BladeVertex computes the world-space position of one vertex of a blade, mirroring the
// grass vertex shader. It is used by tests and debugging tools to reason about what the GPU draws.
//
// Parameters:
//   - vindex: the vertex index in [0, 2*BladeVerts)
//   - shape: the blade's shape attributes
//   - offset: the blade's offset attributes
//   - t: animation time in seconds
//   - focusX, focusY: the field focus
//   - patch: the patch size
//
// Returns:
//   - [3]float64: the vertex position
func BladeVertex(vindex int, shape Shape, offset Offset, t, focusX, focusY, patch float64) [3]float64 {
	vi := vindex % BladeVerts
	di := float64(vi / 2)
	hpct := di / BladeSegs
	xside := float64(vi % 2)

	x := shape.Width * (xside - 0.5) * Taper(hpct)
	curve := Sway(shape.Curve, offset.X, offset.Y, t)
	y := shape.Lean*hpct + curve*hpct*hpct

	c, s := math.Cos(offset.Rotation), math.Sin(offset.Rotation)
	return [3]float64{
		x*c - y*s + TileOrigin(focusX, offset.X, patch) + offset.X,
		x*s + y*c + TileOrigin(focusY, offset.Y, patch) + offset.Y,
		shape.Height*di/BladeSegs + offset.Z,
	}
}
