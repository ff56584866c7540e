package sdlhost

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit"
)

func TestRowRect(t *testing.T) {
	viewport := sdl.Rect{X: 10, Y: 20, W: 300, H: 200}

	tests := []struct {
		name     string
		movement scrollkit.Movement
		panel    scrollkit.Vector3
		view     scrollkit.Vector3
		want     sdl.Rect
	}{
		{"first row", scrollkit.MovementVertical, scrollkit.Vector3{}, scrollkit.Vector3{}, sdl.Rect{X: 10, Y: 20, W: 300, H: 50}},
		{"third row", scrollkit.MovementVertical, scrollkit.Vector3{}, scrollkit.Vector3{Y: -100}, sdl.Rect{X: 10, Y: 120, W: 300, H: 50}},
		{"scrolled", scrollkit.MovementVertical, scrollkit.Vector3{Y: 75}, scrollkit.Vector3{Y: -100}, sdl.Rect{X: 10, Y: 45, W: 300, H: 50}},
		{"horizontal", scrollkit.MovementHorizontal, scrollkit.Vector3{X: 20}, scrollkit.Vector3{X: -50}, sdl.Rect{X: 40, Y: 20, W: 50, H: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RowRect(viewport, tt.movement, 50, tt.panel, tt.view)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected rect (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHexToColor(t *testing.T) {
	got := HexToColor(0x008080)
	want := sdl.Color{R: 0, G: 0x80, B: 0x80, A: 255}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestWindowOptionsFlags(t *testing.T) {
	flags := WindowOptions{Resizable: true}.ToSDLFlags()
	if flags&sdl.WINDOW_SHOWN == 0 || flags&sdl.WINDOW_RESIZABLE == 0 {
		t.Errorf("expected shown and resizable flags, got %#x", flags)
	}
	hidden := WindowOptions{Hidden: true}
	if hidden.ToSDLFlags()&sdl.WINDOW_SHOWN != 0 {
		t.Errorf("expected hidden windows to omit the shown flag")
	}
}

func TestTextureCacheOrder(t *testing.T) {
	c := NewTextureCacheWithSize(2)
	c.Set("a", nil)
	c.Set("b", nil)
	c.Get("a")
	c.Set("c", nil)

	if diff := cmp.Diff([]string{"a", "c"}, c.Keys()); diff != "" {
		t.Errorf("unexpected keys (-want +got):\n%s", diff)
	}

	c.Destroy()
	if len(c.Keys()) != 0 {
		t.Errorf("expected an empty cache after Destroy")
	}
}

func TestKeyRepeat(t *testing.T) {
	now := time.Unix(0, 0)
	k := NewKeyRepeatWithTiming(300*time.Millisecond, 50*time.Millisecond)
	k.now = func() time.Time { return now }
	k.Reset()

	if dir := k.SetHeld(sdl.K_DOWN, true); dir != DirectionDown {
		t.Fatalf("expected down, got %v", dir)
	}
	if dir := k.SetHeld(sdl.K_a, true); dir != DirectionNone {
		t.Errorf("expected non-arrow keys to be ignored, got %v", dir)
	}

	now = now.Add(200 * time.Millisecond)
	if dir := k.Update(); dir != DirectionNone {
		t.Errorf("expected no repeat before the delay, got %v", dir)
	}

	now = now.Add(100 * time.Millisecond)
	if dir := k.Update(); dir != DirectionDown {
		t.Errorf("expected a repeat after the delay, got %v", dir)
	}

	now = now.Add(50 * time.Millisecond)
	if dir := k.Update(); dir != DirectionDown {
		t.Errorf("expected a repeat after the interval, got %v", dir)
	}

	k.SetHeld(sdl.K_DOWN, false)
	if k.IsHeld() || k.Update() != DirectionNone {
		t.Errorf("expected nothing held after release")
	}
}
