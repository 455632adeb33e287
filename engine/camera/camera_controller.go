package camera

import "github.com/Carmen-Shannon/oxy-grass/engine/input"

// Mode selects how the controller advances the camera state each tick.
type Mode int

const (
	// ModeAutoplay flies a scripted looping path. It is the initial mode.
	ModeAutoplay Mode = iota
	// ModeManual flies the spring-damper drone model from input intents.
	ModeManual
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAutoplay:
		return "autoplay"
	case ModeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Flight limits and drone tuning.
const (
	DefaultHeight = 4.0
	MinHeight     = 1.0
	MaxHeight     = 16.0
	DefaultPitch  = -0.15
	MoveRange     = 250.0

	Accel       = 60.0 // forward accel
	Drag        = 0.1
	VAccel      = 20.0 // vertical accel
	VDrag       = 5.0
	YawAccel    = 4.0
	YawDrag     = 2.0
	PitchAccel  = 2.0
	PitchResist = 8.0
	PitchFric   = 4.0
	RollAccel   = 1.0
	RollResist  = 5.0
	RollFric    = 4.0
)

// Vec3 is a position or velocity in world space (Z up).
type Vec3 struct {
	X, Y, Z float64
}

// State is the full pose and velocity of the camera. Both modes produce the same shape.
type State struct {
	Pos      Vec3    `json:"pos"`
	Vel      Vec3    `json:"vel"`
	Yaw      float64 `json:"yaw"`
	YawVel   float64 `json:"yawVel"`
	Pitch    float64 `json:"pitch"`
	PitchVel float64 `json:"pitchVel"`
	Roll     float64 `json:"roll"`
	RollVel  float64 `json:"rollVel"`
}

// InitialState returns the state the controller starts from: at the origin, DefaultHeight up.
//
// Returns:
//   - State: the initial state
func InitialState() State {
	return State{Pos: Vec3{Z: DefaultHeight}}
}

// CameraController owns the camera ("player") state and advances it once per tick.
type CameraController interface {
	// State returns a copy of the current state.
	//
	// Returns:
	//   - State: the camera state
	State() State

	// Mode returns the current control mode.
	//
	// Returns:
	//   - Mode: ModeAutoplay or ModeManual
	Mode() Mode

	// AutoPlay reports whether the controller is in ModeAutoplay.
	AutoPlay() bool

	// SetAutoPlay sets the mode without resetting any state.
	//
	// Parameters:
	//   - autoplay: true for ModeAutoplay
	SetAutoPlay(autoplay bool)

	// ToggleAutoPlay flips the mode. Entering autoplay zeroes roll, roll velocity, pitch velocity and
	// yaw velocity so manual momentum does not leak into the scripted path.
	//
	// Returns:
	//   - bool: true if the controller is now in autoplay
	ToggleAutoPlay() bool

	// Update advances the state by dt milliseconds.
	//
	// Parameters:
	//   - dt: elapsed time in milliseconds
	//   - intent: the directional input, ignored in autoplay
	Update(dt float64, intent input.Intent)

	// Time returns the accumulated update time in milliseconds.
	Time() float64
}
