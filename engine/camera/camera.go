package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-grass/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ViewDepth is the default far plane distance.
const ViewDepth = 1000.0

// cameraLocal orients the lens inside its holder so it looks along the holder's +X axis with +Z up.
// Euler order ZXY: x = π/2, y = π/2, z = π.
var cameraLocal = mgl32.HomogRotate3DZ(math.Pi).
	Mul4(mgl32.HomogRotate3DX(math.Pi / 2)).
	Mul4(mgl32.HomogRotate3DY(math.Pi / 2))

type cameraImpl struct {
	mu *sync.Mutex

	fov    float32
	aspect float32
	near   float32
	far    float32

	position [3]float64
	rotation [3]float64 // holder Euler angles x, y, z applied in ZYX order

	worldMatrix          mgl32.Mat4
	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
}

// Camera is a perspective camera mounted in a holder transform. The holder is positioned and
// rotated like any scene object; the lens inside it looks along the holder's +X axis with +Z up,
// so yaw is a rotation about Z and pitch a rotation about Y.
type Camera interface {
	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// SetAspect sets the aspect ratio and recomputes the projection.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// Resize sets the aspect ratio from viewport dimensions. Non-positive dimensions are ignored.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	Resize(width, height int)

	// SetHolder positions and rotates the holder. Rotation is applied in ZYX order (z first in world space).
	//
	// Parameters:
	//   - pos: holder position
	//   - rotX, rotY, rotZ: Euler angles in radians
	SetHolder(pos [3]float64, rotX, rotY, rotZ float64)

	// Position returns the holder position.
	//
	// Returns:
	//   - [3]float64: the position
	Position() [3]float64

	// Rotation returns the holder Euler angles (x, y, z).
	//
	// Returns:
	//   - [3]float64: the rotation
	Rotation() [3]float64

	// Forward returns the unit view direction in world space.
	//
	// Returns:
	//   - [3]float32: the direction
	Forward() [3]float32

	// Up returns the unit up direction of the lens in world space.
	//
	// Returns:
	//   - [3]float32: the direction
	Up() [3]float32

	// ViewMatrix returns the current 4x4 view matrix (column-major).
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix (column-major).
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the combined view-projection matrix (column-major).
	ViewProjectionMatrix() [16]float32

	// Uniform returns the GPU uniform block for the current matrices.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform block
	Uniform() GPUCameraUniform
}

var _ Camera = &cameraImpl{}

// NewCamera creates a camera with a 45 degree field of view, near plane 1 and far plane ViewDepth.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		fov:    45.0 * (math.Pi / 180.0),
		aspect: 1.0,
		near:   1.0,
		far:    ViewDepth,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.SetAspect(float32(width) / float32(height))
}

func (c *cameraImpl) SetHolder(pos [3]float64, rotX, rotY, rotZ float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = pos
	c.rotation = [3]float64{rotX, rotY, rotZ}
	c.updateMatrices()
}

func (c *cameraImpl) Position() [3]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Rotation() [3]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation
}

func (c *cameraImpl) Forward() [3]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	// the lens looks down its local -Z
	return c.worldMatrix.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3().Normalize()
}

func (c *cameraImpl) Up() [3]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldMatrix.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3().Normalize()
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraUniform{
		ViewProj:       c.viewProjectionMatrix,
		CameraPosition: [3]float32{float32(c.position[0]), float32(c.position[1]), float32(c.position[2])},
	}
}

// updateMatrices recalculates the world, view, projection and view-projection matrices.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	holder := mgl32.Translate3D(float32(c.position[0]), float32(c.position[1]), float32(c.position[2])).
		Mul4(mgl32.HomogRotate3DZ(float32(c.rotation[2]))).
		Mul4(mgl32.HomogRotate3DY(float32(c.rotation[1]))).
		Mul4(mgl32.HomogRotate3DX(float32(c.rotation[0])))

	c.worldMatrix = holder.Mul4(cameraLocal)
	c.viewMatrix = c.worldMatrix.Inv()
	c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
