package camera

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/Carmen-Shannon/oxy-grass/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestControllerStartsInAutoplay(t *testing.T) {
	c := NewCameraController()
	if !c.AutoPlay() || c.Mode() != ModeAutoplay {
		t.Fatalf("initial mode = %v, want autoplay", c.Mode())
	}
	if s := c.State(); s.Pos != (Vec3{0, 0, DefaultHeight}) {
		t.Errorf("initial position = %+v, want (0, 0, %v)", s.Pos, DefaultHeight)
	}
}

func TestToggleToAutoplayResetsMomentum(t *testing.T) {
	c := NewCameraController(WithMode(ModeManual))
	for i := 0; i < 60; i++ {
		c.Update(16, input.Intent{Left: 1, Forward: 1, Up: 1})
	}
	s := c.State()
	if s.Roll == 0 || s.RollVel == 0 || s.PitchVel == 0 || s.YawVel == 0 {
		t.Fatalf("manual flight did not build momentum: %+v", s)
	}

	if !c.ToggleAutoPlay() {
		t.Fatal("ToggleAutoPlay from manual should enter autoplay")
	}
	s = c.State()
	if s.Roll != 0 || s.RollVel != 0 || s.PitchVel != 0 || s.YawVel != 0 {
		t.Errorf("state after toggle = %+v, want roll and angular velocities zeroed", s)
	}
}

func TestToggleToManualKeepsState(t *testing.T) {
	var modes []Mode
	c := NewCameraController(WithToggleListener(func(m Mode) { modes = append(modes, m) }))
	c.Update(16, input.Intent{})
	before := c.State()
	if c.ToggleAutoPlay() {
		t.Fatal("ToggleAutoPlay from autoplay should enter manual")
	}
	if c.State() != before {
		t.Error("entering manual changed the state")
	}
	c.ToggleAutoPlay()
	if len(modes) != 2 || modes[0] != ModeManual || modes[1] != ModeAutoplay {
		t.Errorf("toggle listener saw %v, want [manual autoplay]", modes)
	}
}

func TestSetAutoPlayDoesNotReset(t *testing.T) {
	c := NewCameraController(WithMode(ModeManual), WithState(State{Roll: 0.3, RollVel: 1, Pos: Vec3{Z: 5}}))
	c.SetAutoPlay(true)
	if s := c.State(); s.Roll != 0.3 || s.RollVel != 1 {
		t.Errorf("SetAutoPlay reset the state: %+v", s)
	}
	if !c.AutoPlay() {
		t.Error("SetAutoPlay(true) did not select autoplay")
	}
}

func TestAltitudeAlwaysClamped(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	s := InitialState()
	check := func(step int, st State) {
		t.Helper()
		if math.IsNaN(st.Pos.Z) || st.Pos.Z < MinHeight || st.Pos.Z > MaxHeight {
			t.Fatalf("step %d: altitude %v outside [%v, %v]", step, st.Pos.Z, MinHeight, MaxHeight)
		}
	}
	for i := 0; i < 5000; i++ {
		in := input.Intent{}
		switch rng.IntN(3) {
		case 0:
			in.Up = rng.Float64() * 10
		case 1:
			in.Down = rng.Float64() * 10
		}
		in.Forward = float64(rng.IntN(2))
		s = Advance(s, ModeManual, 0, rng.Float64()*67, in)
		check(i, s)
		if i%97 == 0 {
			// one oversized step from the current state
			check(i, Advance(s, ModeManual, 0, 10000, in))
		}
	}
}

func TestRepeatedHugeStepsStayBounded(t *testing.T) {
	in := input.Intent{Up: 1, Left: 1, Forward: 1}
	for _, dt := range []float64{1e6, 1e8, 1e12} {
		s := InitialState()
		for i := 0; i < 200; i++ {
			s = Advance(s, ModeManual, 0, dt, in)
			if !(s.Pos.Z >= MinHeight && s.Pos.Z <= MaxHeight) {
				t.Fatalf("dt=%g tick %d: altitude %v outside [%v, %v]", dt, i, s.Pos.Z, MinHeight, MaxHeight)
			}
			if !s.finite() {
				t.Fatalf("dt=%g tick %d: non-finite state %+v", dt, i, s)
			}
		}
	}
}

func TestClimbStopsThrustNearCeiling(t *testing.T) {
	s := InitialState()
	for i := 0; i < 2000; i++ {
		s = Advance(s, ModeManual, 0, 16, input.Intent{Up: 1})
	}
	if s.Pos.Z < MaxHeight-3 || s.Pos.Z > MaxHeight {
		t.Errorf("altitude after long climb = %v, want close to %v", s.Pos.Z, MaxHeight-2)
	}
}

func TestPitchAsymmetry(t *testing.T) {
	fwd := Advance(InitialState(), ModeManual, 0, 100, input.Intent{Forward: 1})
	back := Advance(InitialState(), ModeManual, 0, 100, input.Intent{Back: 1})
	if !approx(fwd.PitchVel, -0.2, 1e-12) {
		t.Errorf("forward pitch velocity = %v, want -0.2", fwd.PitchVel)
	}
	if !approx(back.PitchVel, 0.1, 1e-12) {
		t.Errorf("back pitch velocity = %v, want 0.1", back.PitchVel)
	}
}

func TestForwardThrustFollowsYaw(t *testing.T) {
	s := InitialState()
	s.Yaw = math.Pi / 2
	for i := 0; i < 60; i++ {
		s = Advance(s, ModeManual, 0, 16, input.Intent{Forward: 1})
	}
	if s.Vel.Y <= 0 || math.Abs(s.Vel.X) > 1e-6 {
		t.Errorf("velocity = %+v, want motion along +Y only", s.Vel)
	}
}

func TestBankingTurnsYaw(t *testing.T) {
	s := InitialState()
	for i := 0; i < 60; i++ {
		s = Advance(s, ModeManual, 0, 16, input.Intent{Right: 1})
	}
	if s.Roll <= 0 {
		t.Fatalf("roll = %v, want positive when steering right", s.Roll)
	}
	if s.YawVel >= 0 {
		t.Errorf("yaw velocity = %v, want negative while rolled right", s.YawVel)
	}
}

func TestAutoplayVelocityByFiniteDifference(t *testing.T) {
	c := NewCameraController()
	c.Update(16, input.Intent{})
	first := c.State()
	c.Update(20, input.Intent{})
	second := c.State()

	pos, yaw, pitch := AutoPose(0.036)
	if !approx(second.Pos.X, pos.X, 1e-9) || !approx(second.Yaw, yaw, 1e-12) || !approx(second.Pitch, pitch, 1e-12) {
		t.Fatalf("pose at t=36ms = %+v, want %+v yaw %v pitch %v", second, pos, yaw, pitch)
	}
	ft := 0.020
	if !approx(second.Vel.X, (second.Pos.X-first.Pos.X)/ft, 1e-6) ||
		!approx(second.Vel.Z, (second.Pos.Z-first.Pos.Z)/ft, 1e-6) {
		t.Errorf("velocity = %+v, want finite difference over %vs", second.Vel, ft)
	}
	if !approx(second.YawVel, (second.Yaw-first.Yaw)/ft, 1e-6) ||
		!approx(second.PitchVel, (second.Pitch-first.Pitch)/ft, 1e-6) {
		t.Errorf("angular velocities = (%v, %v), want finite differences", second.YawVel, second.PitchVel)
	}
	if c.Time() != 36 {
		t.Errorf("Time = %v, want 36", c.Time())
	}
}

func TestAdvanceIgnoresNonPositiveDt(t *testing.T) {
	s := State{Pos: Vec3{1, 2, 3}, Yaw: 1}
	if got := Advance(s, ModeAutoplay, 100, 0, input.Intent{}); got != s {
		t.Errorf("Advance with dt 0 changed state to %+v", got)
	}
	if got := Advance(s, ModeManual, 100, -5, input.Intent{Forward: 1}); got != s {
		t.Errorf("Advance with negative dt changed state to %+v", got)
	}
}

func TestCameraLooksAlongHolderX(t *testing.T) {
	c := NewCamera(WithAspect(1.5))
	c.SetHolder([3]float64{0, 0, 4}, 0, 0, 0)

	f := c.Forward()
	if !approx(float64(f[0]), 1, 1e-5) || !approx(float64(f[1]), 0, 1e-5) || !approx(float64(f[2]), 0, 1e-5) {
		t.Errorf("forward at zero rotation = %v, want (1, 0, 0)", f)
	}
	u := c.Up()
	if !approx(float64(u[2]), 1, 1e-5) {
		t.Errorf("up at zero rotation = %v, want (0, 0, 1)", u)
	}

	c.SetHolder([3]float64{0, 0, 4}, 0, 0, math.Pi/2)
	f = c.Forward()
	if !approx(float64(f[1]), 1, 1e-5) {
		t.Errorf("forward at yaw π/2 = %v, want (0, 1, 0)", f)
	}

	// the holder's y rotation is the negated controller pitch, so a negative rotation looks up
	c.SetHolder([3]float64{0, 0, 4}, 0, -0.3, 0)
	if f = c.Forward(); f[2] <= 0 {
		t.Errorf("forward with rotY -0.3 = %v, want to look upward", f)
	}
}

func TestViewProjectionCentresTarget(t *testing.T) {
	c := NewCamera(WithAspect(16.0 / 9.0))
	c.SetHolder([3]float64{5, 5, 4}, 0, 0, 0)

	vp := mgl32.Mat4(c.ViewProjectionMatrix())
	clip := vp.Mul4x1(mgl32.Vec4{15, 5, 4, 1})
	ndcX, ndcY, depth := clip[0]/clip[3], clip[1]/clip[3], clip[2]/clip[3]
	if !approx(float64(ndcX), 0, 1e-4) || !approx(float64(ndcY), 0, 1e-4) {
		t.Errorf("target ahead projects to (%v, %v), want screen centre", ndcX, ndcY)
	}
	if depth < 0 || depth > 1 {
		t.Errorf("depth = %v, want within [0, 1]", depth)
	}
	// +Z appears above the centre of the screen
	above := vp.Mul4x1(mgl32.Vec4{15, 5, 6, 1})
	if above[1]/above[3] <= 0 {
		t.Error("a point above the target projected below the screen centre")
	}
}

func TestResizeUpdatesAspectOnly(t *testing.T) {
	c := NewCamera()
	c.SetHolder([3]float64{1, 2, 3}, 0.1, 0.2, 0.3)
	view := c.ViewMatrix()
	c.Resize(1920, 1080)
	if !approx(float64(c.Aspect()), 1920.0/1080.0, 1e-6) {
		t.Errorf("Aspect = %v", c.Aspect())
	}
	if c.ViewMatrix() != view {
		t.Error("Resize changed the view matrix")
	}
	c.Resize(0, 100)
	if !approx(float64(c.Aspect()), 1920.0/1080.0, 1e-6) {
		t.Error("Resize with zero width changed the aspect")
	}
	u := c.Uniform()
	if u.Size() != 80 || u.CameraPosition != [3]float32{1, 2, 3} {
		t.Errorf("uniform = %+v", u)
	}
}
