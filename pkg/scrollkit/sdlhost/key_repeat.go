package sdlhost

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// KeyRepeat tracks held arrow keys and produces repeat steps, so holding a
// key keeps the list scrolling.
type KeyRepeat struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewKeyRepeat creates a KeyRepeat with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewKeyRepeat() *KeyRepeat {
	return NewKeyRepeatWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewKeyRepeatWithTiming creates a KeyRepeat with custom timing.
func NewKeyRepeatWithTiming(delay, interval time.Duration) *KeyRepeat {
	return &KeyRepeat{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetHeld updates the held state for an arrow key.
// Returns the direction if the key was an arrow key.
func (k *KeyRepeat) SetHeld(key sdl.Keycode, held bool) Direction {
	var dir Direction
	switch key {
	case sdl.K_UP:
		k.held.up = held
		dir = DirectionUp
	case sdl.K_DOWN:
		k.held.down = held
		dir = DirectionDown
	case sdl.K_LEFT:
		k.held.left = held
		dir = DirectionLeft
	case sdl.K_RIGHT:
		k.held.right = held
		dir = DirectionRight
	default:
		return DirectionNone
	}

	if held {
		k.lastRepeatTime = k.now()
	} else {
		k.hasRepeated = false
	}
	return dir
}

// IsHeld returns true if any direction is currently held.
func (k *KeyRepeat) IsHeld() bool {
	return k.held.up || k.held.down || k.held.left || k.held.right
}

// HeldDirection returns the currently held direction.
// If multiple directions are held, priority is: up, down, left, right.
func (k *KeyRepeat) HeldDirection() Direction {
	switch {
	case k.held.up:
		return DirectionUp
	case k.held.down:
		return DirectionDown
	case k.held.left:
		return DirectionLeft
	case k.held.right:
		return DirectionRight
	}
	return DirectionNone
}

// Update checks if a repeat should fire. Call it every frame.
// The first repeat occurs after the delay, later ones after the interval.
func (k *KeyRepeat) Update() Direction {
	if !k.IsHeld() {
		k.lastRepeatTime = k.now()
		k.hasRepeated = false
		return DirectionNone
	}

	threshold := k.repeatInterval
	if !k.hasRepeated {
		threshold = k.repeatDelay
	}

	if k.now().Sub(k.lastRepeatTime) >= threshold {
		k.lastRepeatTime = k.now()
		k.hasRepeated = true
		return k.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (k *KeyRepeat) Reset() {
	k.held.up = false
	k.held.down = false
	k.held.left = false
	k.held.right = false
	k.hasRepeated = false
	k.lastRepeatTime = k.now()
}
