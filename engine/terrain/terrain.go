// Package terrain provides the two static surfaces around the grass: an oversized ground plane
// drawn with the same two-stage fog as the grass, and a sky dome that is re-centred on the viewer.
package terrain

import (
	"log"

	"github.com/Carmen-Shannon/oxy-grass/common"
	"github.com/Carmen-Shannon/oxy-grass/engine/fog"
	"github.com/Carmen-Shannon/oxy-grass/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// GroundSize is the width and depth of the ground plane, larger than the viewer will ever travel.
	GroundSize = 10000.0

	// GroundUVRepeat is how many times the ground texture repeats across the plane.
	GroundUVRepeat = 1200.0

	// SkyRadius is the sky dome radius, just inside the camera far plane.
	SkyRadius = 950.0

	// SkyElevation is the z position of the sky dome centre; sinking it hides the seam at the horizon.
	SkyElevation = -25.0

	skySegments = 32
	skyRings    = 12
)

// Surface is a static textured mesh placed in the world.
type Surface interface {
	// Name returns the surface identifier.
	Name() string

	// Model returns the surface mesh.
	//
	// Returns:
	//   - model.Model: the mesh
	Model() model.Model

	// Texture returns the surface texture.
	//
	// Returns:
	//   - *common.Texture: the texture
	Texture() *common.Texture

	// Position returns the world position of the mesh origin.
	//
	// Returns:
	//   - [3]float64: the position
	Position() [3]float64

	// Uniform returns the current GPU uniform block for the surface.
	//
	// Returns:
	//   - GPUSurfaceParams: the uniform block
	Uniform() GPUSurfaceParams
}

// surface holds the state shared by Ground and SkyDome.
type surface struct {
	name      string
	mesh      model.Model
	texture   *common.Texture
	fogParams *fog.Fog
	uvRepeat  float32
	position  [3]float64
}

func (s *surface) Name() string {
	return s.name
}

func (s *surface) Model() model.Model {
	return s.mesh
}

func (s *surface) Texture() *common.Texture {
	return s.texture
}

func (s *surface) Position() [3]float64 {
	return s.position
}

func (s *surface) Uniform() GPUSurfaceParams {
	u := GPUSurfaceParams{
		Model:    mgl32.Translate3D(float32(s.position[0]), float32(s.position[1]), float32(s.position[2])),
		UVRepeat: [2]float32{s.uvRepeat, s.uvRepeat},
	}
	if s.fogParams != nil {
		u.Fogged = 1
		u.Fog = s.fogParams.GPU()
	}
	return u
}

// Ground is the fogged, repeating-textured plane under the grass.
type Ground interface {
	Surface

	// Fog returns the fog the ground is drawn with.
	Fog() fog.Fog
}

type ground struct {
	surface
	size float32
}

var _ Ground = &ground{}

// NewGround creates the ground plane.
//
// Parameters:
//   - opts: variadic list of GroundBuilderOption functions to configure the ground
//
// Returns:
//   - Ground: the ground plane
func NewGround(opts ...GroundBuilderOption) Ground {
	g := &ground{
		surface: surface{name: "ground", uvRepeat: GroundUVRepeat},
		size:    GroundSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.fogParams == nil {
		fp := fog.ForRadius(65)
		g.fogParams = &fp
	}
	g.mesh = model.NewPlane(g.name, g.size, g.size)
	log.Printf("[Terrain] ground %.0fx%.0f, uv repeat %.0f", g.size, g.size, g.uvRepeat)
	return g
}

func (g *ground) Fog() fog.Fog {
	return *g.fogParams
}

// SkyDome is the textured hemisphere that surrounds the viewer. It has no motion of its own; the
// world moves it under the camera each tick so its fixed radius always encloses the viewer.
type SkyDome interface {
	Surface

	// SetPosition re-centres the dome horizontally; its elevation never changes.
	//
	// Parameters:
	//   - x, y: the new horizontal centre
	SetPosition(x, y float64)

	// Radius returns the dome radius.
	Radius() float32
}

type skyDome struct {
	surface
	radius float32
}

var _ SkyDome = &skyDome{}

// NewSkyDome creates the sky dome.
//
// Parameters:
//   - opts: variadic list of SkyDomeBuilderOption functions to configure the dome
//
// Returns:
//   - SkyDome: the sky dome
func NewSkyDome(opts ...SkyDomeBuilderOption) SkyDome {
	s := &skyDome{
		surface: surface{name: "sky", uvRepeat: 1, position: [3]float64{0, 0, SkyElevation}},
		radius:  SkyRadius,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mesh = model.NewHemisphere(s.name, s.radius, skySegments, skyRings)
	return s
}

func (s *skyDome) SetPosition(x, y float64) {
	s.position[0] = x
	s.position[1] = y
}

func (s *skyDome) Radius() float32 {
	return s.radius
}
