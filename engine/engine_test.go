package engine

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-grass/common"
	"github.com/Carmen-Shannon/oxy-grass/engine/input"
	"github.com/Carmen-Shannon/oxy-grass/engine/scene"
	"github.com/Carmen-Shannon/oxy-grass/engine/window"
	"github.com/Carmen-Shannon/oxy-grass/engine/world"
	"github.com/cogentcore/webgpu/wgpu"
)

type fakeWindow struct {
	update    func()
	resize    func(int, int)
	keyDown   func(int)
	keyUp     func(int)
	focusLost func()
	closed    int
}

var _ window.Window = &fakeWindow{}

func (w *fakeWindow) SetUpdateCallback(cb func())                { w.update = cb }
func (w *fakeWindow) SetResizeCallback(cb func(int, int))        { w.resize = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(int))            { w.keyDown = cb }
func (w *fakeWindow) SetKeyUpCallback(cb func(int))              { w.keyUp = cb }
func (w *fakeWindow) SetFocusLostCallback(cb func())             { w.focusLost = cb }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *fakeWindow) IsRunning() bool                            { return w.closed == 0 }
func (w *fakeWindow) Close() error                               { w.closed++; return nil }
func (w *fakeWindow) ProcessMessages()                           {}
func (w *fakeWindow) Width() int                                 { return 0 }
func (w *fakeWindow) Height() int                                { return 0 }

// fakeWorld overrides the methods the engine calls; the embedded interface is nil.
type fakeWorld struct {
	world.World
	kb     input.Keyboard
	frames int
	panics bool
	width  int
	height int
}

func (w *fakeWorld) DoFrame() {
	if w.panics {
		panic("boom")
	}
	w.frames++
}
func (w *fakeWorld) Keyboard() input.Keyboard { return w.kb }
func (w *fakeWorld) Resize(width, height int) { w.width, w.height = width, height }
func (w *fakeWorld) Stats() world.Stats       { return world.Stats{Frames: uint64(w.frames)} }

type fakeRenderer struct {
	width, height int
}

func (r *fakeRenderer) Render(scene.Scene) error { return nil }
func (r *fakeRenderer) Resize(width, height int) { r.width, r.height = width, height }

func newTestEngine(t *testing.T) (Engine, *fakeWindow, *fakeWorld, *fakeRenderer) {
	t.Helper()
	win := &fakeWindow{}
	wld := &fakeWorld{kb: input.NewKeyboard()}
	rnd := &fakeRenderer{}
	e, err := NewEngine(WithWindow(win), WithWorld(wld), WithRenderer(rnd))
	if err != nil {
		t.Fatal(err)
	}
	return e, win, wld, rnd
}

func TestNewEngineRequiresWorld(t *testing.T) {
	if _, err := NewEngine(WithWindow(&fakeWindow{})); !errors.Is(err, ErrMissingWorld) {
		t.Fatalf("err = %v, want ErrMissingWorld", err)
	}
}

func TestUpdateCallbackAdvancesWorld(t *testing.T) {
	e, win, wld, _ := newTestEngine(t)
	var seen int
	e.SetFrameCallback(func(world.World) { seen++ })

	win.update()
	win.update()
	if wld.frames != 2 || seen != 2 {
		t.Errorf("frames = %d, callbacks = %d, want 2 and 2", wld.frames, seen)
	}
}

func TestKeyEventsReachKeyboard(t *testing.T) {
	_, win, wld, _ := newTestEngine(t)

	win.keyDown(common.KeyW)
	if !wld.kb.Pressed(common.KeyW) {
		t.Fatal("key down not forwarded")
	}
	win.keyUp(common.KeyW)
	if wld.kb.Pressed(common.KeyW) {
		t.Fatal("key up not forwarded")
	}

	win.keyDown(common.KeyLeft)
	win.keyDown(common.KeyUp)
	win.focusLost()
	if wld.kb.Pressed(common.KeyLeft) || wld.kb.Pressed(common.KeyUp) {
		t.Error("losing focus should release held keys")
	}
}

func TestResizeReachesRendererAndWorld(t *testing.T) {
	_, win, wld, rnd := newTestEngine(t)

	win.resize(800, 600)
	if rnd.width != 800 || rnd.height != 600 || wld.width != 800 || wld.height != 600 {
		t.Errorf("renderer %dx%d, world %dx%d", rnd.width, rnd.height, wld.width, wld.height)
	}

	win.resize(0, 0)
	if rnd.width != 800 || wld.width != 800 {
		t.Error("minimised window should not resize")
	}
}

func TestPanickingFrameStopsEngine(t *testing.T) {
	e, win, wld, _ := newTestEngine(t)
	wld.panics = true
	e.Frame()
	if win.closed != 1 {
		t.Fatalf("closed = %d, want 1", win.closed)
	}

	wld.panics = false
	e.Frame()
	if wld.frames != 0 {
		t.Error("frames should not run after a panic")
	}
	e.Quit()
	if win.closed != 1 {
		t.Error("Quit should close the window only once")
	}
}
