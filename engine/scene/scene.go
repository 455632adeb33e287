// Package scene holds the fixed composition that the world hands to the renderer once per tick:
// the camera, the grass field, the ground, the sky dome and the two camera-attached overlays.
// Nothing is added or removed after construction; only transforms and material scalars change.
package scene

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-grass/engine/camera"
	"github.com/Carmen-Shannon/oxy-grass/engine/grass"
	"github.com/Carmen-Shannon/oxy-grass/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-grass/engine/terrain"
)

// ErrIncomplete is returned by NewScene when a required member is missing.
var ErrIncomplete = errors.New("scene is missing a required member")

// DrawKind identifies which pipeline draws an entry of the draw list.
type DrawKind int

const (
	DrawGrass DrawKind = iota
	DrawGround
	DrawSky
	DrawOverlay
)

// Drawable is one entry of the draw list.
type Drawable struct {
	Kind DrawKind
	Name string
}

// ClearColor is the color the frame is cleared to before drawing; the fade overlay starts from it.
var ClearColor = [4]float64{1, 1, 1, 1}

// Scene is the fixed set of objects drawn each frame.
type Scene interface {
	// Camera returns the scene camera.
	Camera() camera.Camera

	// Grass returns the grass field.
	Grass() grass.Field

	// Ground returns the ground plane.
	Ground() terrain.Ground

	// Sky returns the sky dome.
	Sky() terrain.SkyDome

	// Fade returns the intro fade overlay.
	Fade() material.Material

	// Glare returns the sun glare overlay.
	Glare() material.Material

	// DrawList returns the draw order. Sorting is disabled: grass is always in front of everything,
	// ground in front of sky, and overlays go last with fade before glare.
	//
	// Returns:
	//   - []Drawable: the ordered draw list
	DrawList() []Drawable
}

// Renderer draws a Scene. Implementations live outside the core; the world only calls Render once
// per tick and Resize when the viewport changes.
type Renderer interface {
	// Render draws one frame of the scene.
	//
	// Parameters:
	//   - s: the scene to draw
	//
	// Returns:
	//   - error: error if the frame could not be drawn
	Render(s Scene) error

	// Resize resizes the render targets.
	//
	// Parameters:
	//   - width, height: the new viewport size in pixels
	Resize(width, height int)
}

type scene struct {
	camera camera.Camera
	grass  grass.Field
	ground terrain.Ground
	sky    terrain.SkyDome
	fade   material.Material
	glare  material.Material
	draws  []Drawable
}

var _ Scene = &scene{}

// NewScene creates the composition. Camera, grass, ground and sky are required; the overlays
// default to NewFade and NewGlare.
//
// Parameters:
//   - options: functional options supplying the members
//
// Returns:
//   - Scene: the composition
//   - error: ErrIncomplete if a required member is missing
func NewScene(options ...SceneBuilderOption) (Scene, error) {
	s := &scene{}
	for _, opt := range options {
		opt(s)
	}
	switch {
	case s.camera == nil:
		return nil, errors.Join(ErrIncomplete, errors.New("camera"))
	case s.grass == nil:
		return nil, errors.Join(ErrIncomplete, errors.New("grass"))
	case s.ground == nil:
		return nil, errors.Join(ErrIncomplete, errors.New("ground"))
	case s.sky == nil:
		return nil, errors.Join(ErrIncomplete, errors.New("sky"))
	}
	if s.fade == nil {
		s.fade = NewFade()
	}
	if s.glare == nil {
		s.glare = NewGlare()
	}

	s.draws = []Drawable{
		{Kind: DrawGrass, Name: "grass"},
		{Kind: DrawGround, Name: s.ground.Name()},
		{Kind: DrawSky, Name: s.sky.Name()},
		{Kind: DrawOverlay, Name: s.fade.Name()},
		{Kind: DrawOverlay, Name: s.glare.Name()},
	}
	return s, nil
}

// NewFade creates the intro overlay: opaque white, alpha blended, visible.
//
// Returns:
//   - material.Material: the fade overlay
func NewFade() material.Material {
	return material.NewMaterial(
		material.WithName("fade"),
		material.WithColor(material.HexColor(0xFFFFFF)),
		material.WithOpacity(1),
		material.WithVisible(true),
		material.WithBlend(material.BlendAlpha),
	)
}

// NewGlare creates the sun glare overlay: yellow, additive, hidden until the camera faces the sun.
//
// Returns:
//   - material.Material: the glare overlay
func NewGlare() material.Material {
	return material.NewMaterial(
		material.WithName("glare"),
		material.WithColor(material.HexColor(0xFFF844)),
		material.WithOpacity(0),
		material.WithVisible(false),
		material.WithBlend(material.BlendAdditive),
	)
}

func (s *scene) Camera() camera.Camera {
	return s.camera
}

func (s *scene) Grass() grass.Field {
	return s.grass
}

func (s *scene) Ground() terrain.Ground {
	return s.ground
}

func (s *scene) Sky() terrain.SkyDome {
	return s.sky
}

func (s *scene) Fade() material.Material {
	return s.fade
}

func (s *scene) Glare() material.Material {
	return s.glare
}

func (s *scene) DrawList() []Drawable {
	out := make([]Drawable, len(s.draws))
	copy(out, s.draws)
	return out
}

// Overlay returns the overlay material for a draw list entry, or nil if the entry is not an overlay.
//
// Parameters:
//   - s: the scene
//   - d: the draw list entry
//
// Returns:
//   - material.Material: the overlay, or nil
func Overlay(s Scene, d Drawable) material.Material {
	if d.Kind != DrawOverlay {
		return nil
	}
	switch d.Name {
	case s.Fade().Name():
		return s.Fade()
	case s.Glare().Name():
		return s.Glare()
	}
	return nil
}
