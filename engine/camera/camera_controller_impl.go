package camera

import (
	"log"
	"math"

	"github.com/Carmen-Shannon/oxy-grass/common"
	"github.com/Carmen-Shannon/oxy-grass/engine/input"
)

const (
	autoplayNotice = "Press ENTER to enable manual camera"
	manualNotice   = "ARROWS drive, W/S up/down. Press ENTER to return to auto camera."
)

type controllerImpl struct {
	mode     Mode
	curT     float64
	state    State
	onToggle []func(Mode)
}

var _ CameraController = &controllerImpl{}

// NewCameraController creates a controller in ModeAutoplay at InitialState.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the controller
func NewCameraController(options ...CameraControllerBuilderOption) CameraController {
	c := &controllerImpl{
		mode:  ModeAutoplay,
		state: InitialState(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *controllerImpl) State() State {
	return c.state
}

func (c *controllerImpl) Mode() Mode {
	return c.mode
}

func (c *controllerImpl) AutoPlay() bool {
	return c.mode == ModeAutoplay
}

func (c *controllerImpl) SetAutoPlay(autoplay bool) {
	if autoplay {
		c.mode = ModeAutoplay
	} else {
		c.mode = ModeManual
	}
}

func (c *controllerImpl) ToggleAutoPlay() bool {
	if c.mode == ModeAutoplay {
		c.mode = ModeManual
	} else {
		c.mode = ModeAutoplay
		c.state = ResetForAutoplay(c.state)
	}

	if c.mode == ModeAutoplay {
		log.Printf("[Camera] %s", autoplayNotice)
	} else {
		log.Printf("[Camera] %s", manualNotice)
	}
	for _, fn := range c.onToggle {
		fn(c.mode)
	}
	return c.mode == ModeAutoplay
}

func (c *controllerImpl) Update(dt float64, intent input.Intent) {
	c.curT += dt
	c.state = Advance(c.state, c.mode, c.curT, dt, intent)
}

func (c *controllerImpl) Time() float64 {
	return c.curT
}

// ResetForAutoplay returns s with roll, roll velocity, pitch velocity and yaw velocity zeroed.
//
// Parameters:
//   - s: the state to reset
//
// Returns:
//   - State: the reset state
func ResetForAutoplay(s State) State {
	s.Roll = 0
	s.RollVel = 0
	s.PitchVel = 0
	s.YawVel = 0
	return s
}

// Advance computes the next state for one tick. A non-positive dt returns s unchanged.
//
// Parameters:
//   - s: the previous state
//   - mode: the control mode
//   - t: accumulated controller time in milliseconds, including dt
//   - dt: the tick length in milliseconds
//   - in: the directional input, ignored in autoplay
//
// Returns:
//   - State: the next state
func Advance(s State, mode Mode, t, dt float64, in input.Intent) State {
	if dt <= 0 {
		return s
	}
	if mode == ModeAutoplay {
		return advanceAuto(s, t/1000.0, dt)
	}
	return advanceDrone(s, in, dt)
}

// AutoPose returns the scripted pose at time seconds.
//
// Parameters:
//   - time: controller time in seconds
//
// Returns:
//   - pos: the position
//   - yaw, pitch: the orientation
func AutoPose(time float64) (pos Vec3, yaw, pitch float64) {
	// looping curvy path
	r := time * 0.035
	pos.X = math.Cos(r)*MoveRange + math.Sin(r)*MoveRange*2.0
	pos.Y = math.Sin(r)*MoveRange + math.Cos(r)*MoveRange*2.0

	// bob up and down, looking down more when higher
	a := time * 0.3
	pos.Z = DefaultHeight + 4.5 + math.Cos(a)*7.0
	pitch = DefaultPitch - 0.25*math.Sin(a+math.Pi*0.5)

	yaw = math.Sin(time*0.04)*math.Pi*2.0 + math.Pi*0.5
	return pos, yaw, pitch
}

// advanceAuto moves to the scripted pose and reconstructs velocities from the previous pose.
// The velocities lag the pose by one tick.
func advanceAuto(s State, time, dt float64) State {
	prev := s
	s.Pos, s.Yaw, s.Pitch = AutoPose(time)

	ft := dt / 1000.0
	s.Vel = Vec3{
		X: (s.Pos.X - prev.Pos.X) / ft,
		Y: (s.Pos.Y - prev.Pos.Y) / ft,
		Z: (s.Pos.Z - prev.Pos.Z) / ft,
	}
	s.YawVel = (s.Yaw - prev.Yaw) / ft
	s.PitchVel = (s.Pitch - prev.Pitch) / ft
	return s
}

// advanceDrone integrates the spring-damper flight model with semi-implicit Euler.
func advanceDrone(s State, in input.Intent, dt float64) State {
	prev := s
	ft := dt / 1000.0

	// roll
	var ra float64
	if in.Left > 0 {
		ra = -RollAccel
	} else if in.Right > 0 {
		ra = RollAccel
	}
	ra += -s.Roll*RollResist - common.Sign(s.RollVel)*RollFric*math.Abs(s.RollVel)
	s.RollVel += ra * ft
	s.Roll += s.RollVel * ft

	// banking turns yaw; cubic drag limits the turn rate
	ya := -s.Roll * YawAccel
	yd := -common.Sign(s.YawVel) * math.Abs(math.Pow(s.YawVel, 3.0)) * YawDrag
	s.YawVel += (ya + yd) * ft
	s.Yaw += s.YawVel * ft

	// pitch; back pitches up at half the rate forward pitches down
	var pa float64
	if in.Forward > 0 {
		pa = -PitchAccel
	} else if in.Back > 0 {
		pa = PitchAccel * 0.5
	}
	pa += -s.Pitch*PitchResist - common.Sign(s.PitchVel)*PitchFric*math.Abs(s.PitchVel)
	s.PitchVel += pa * ft
	s.Pitch += s.PitchVel * ft

	// thrust follows pitch along the yaw heading, drag opposes horizontal speed
	a := Vec3{
		X: -s.Pitch * Accel * math.Cos(s.Yaw),
		Y: -s.Pitch * Accel * math.Sin(s.Yaw),
	}
	speed := common.Length2D(common.Vec2{X: s.Vel.X, Y: s.Vel.Y})
	hd := common.SetLength2D(common.Vec2{X: -s.Vel.X, Y: -s.Vel.Y}, speed*Drag)
	d := Vec3{X: hd.X, Y: hd.Y, Z: -s.Vel.Z * VDrag}

	if in.Up > 0 && s.Pos.Z < MaxHeight-2.0 {
		a.Z = VAccel
	} else if in.Down > 0 && s.Pos.Z > MinHeight {
		a.Z = -VAccel
	}

	s.Vel.X += (a.X + d.X) * ft
	s.Vel.Y += (a.Y + d.Y) * ft
	s.Vel.Z += (a.Z + d.Z) * ft
	s.Pos.X += s.Vel.X * ft
	s.Pos.Y += s.Vel.Y * ft
	s.Pos.Z += s.Vel.Z * ft
	s.Pos.Z = common.Clamp(s.Pos.Z, MinHeight, MaxHeight)

	if !s.finite() {
		// the integration blew up: hold the last pose and stop
		s = State{Pos: prev.Pos, Yaw: prev.Yaw, Pitch: prev.Pitch, Roll: prev.Roll}
		s.Pos.Z = common.Clamp(s.Pos.Z, MinHeight, MaxHeight)
	}
	return s
}

func (s State) finite() bool {
	for _, v := range [...]float64{
		s.Pos.X, s.Pos.Y, s.Pos.Z, s.Vel.X, s.Vel.Y, s.Vel.Z,
		s.Yaw, s.YawVel, s.Pitch, s.PitchVel, s.Roll, s.RollVel,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
