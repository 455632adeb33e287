// Package input turns raw key events into the directional intents that drive the camera.
package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-grass/common"
)

// Intent is a snapshot of the six non-negative directional magnitudes read by the camera controller.
type Intent struct {
	Forward float64
	Back    float64
	Left    float64
	Right   float64
	Up      float64
	Down    float64
}

// IsZero reports whether no direction is requested.
func (i Intent) IsZero() bool {
	return i == Intent{}
}

// KeyListener is notified when a key goes down (repeats are not reported).
type KeyListener func(key int)

// Keyboard tracks which keys are held and maps them to an Intent.
// Arrow keys drive and pitch, W/S climb and descend.
type Keyboard interface {
	// KeyDown records a key press. Listeners fire only on the up-to-down transition.
	//
	// Parameters:
	//   - key: the key code (see common.Key*)
	KeyDown(key int)

	// KeyUp records a key release.
	//
	// Parameters:
	//   - key: the key code
	KeyUp(key int)

	// Pressed reports whether a key is currently held.
	Pressed(key int) bool

	// Intent returns the intent implied by the keys currently held.
	//
	// Returns:
	//   - Intent: the current intent
	Intent() Intent

	// OnKeyPress registers a listener for key presses.
	//
	// Parameters:
	//   - listener: called with the key code on each new press
	OnKeyPress(listener KeyListener)

	// Reset releases every held key.
	Reset()
}

type keyboard struct {
	mu        *sync.Mutex
	held      map[int]bool
	listeners []KeyListener
}

var _ Keyboard = &keyboard{}

// NewKeyboard creates an empty keyboard state.
//
// Returns:
//   - Keyboard: the keyboard
func NewKeyboard() Keyboard {
	return &keyboard{
		mu:   &sync.Mutex{},
		held: make(map[int]bool),
	}
}

func (k *keyboard) KeyDown(key int) {
	k.mu.Lock()
	was := k.held[key]
	k.held[key] = true
	listeners := k.listeners
	k.mu.Unlock()

	if was {
		return
	}
	for _, l := range listeners {
		l(key)
	}
}

func (k *keyboard) KeyUp(key int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, key)
}

func (k *keyboard) Pressed(key int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[key]
}

func (k *keyboard) Intent() Intent {
	k.mu.Lock()
	defer k.mu.Unlock()
	return Intent{
		Forward: k.value(common.KeyUp),
		Back:    k.value(common.KeyDown),
		Left:    k.value(common.KeyLeft),
		Right:   k.value(common.KeyRight),
		Up:      k.value(common.KeyW),
		Down:    k.value(common.KeyS),
	}
}

func (k *keyboard) value(key int) float64 {
	if k.held[key] {
		return 1
	}
	return 0
}

func (k *keyboard) OnKeyPress(listener KeyListener) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.listeners = append(k.listeners, listener)
}

func (k *keyboard) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.held)
}
