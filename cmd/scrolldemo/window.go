//go:build !nosdl

package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit"
	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit/sdlhost"
)

const windowMargin int32 = 20

func (d *demo) runWindow() error {
	if err := sdlhost.Init(); err != nil {
		return err
	}
	defer sdlhost.Quit()

	width := d.cfg.Viewport.Width + 2*windowMargin
	height := d.cfg.Viewport.Height + 2*windowMargin

	window, err := sdlhost.NewWindow(d.status(), width, height, sdlhost.WindowOptions{})
	if err != nil {
		return err
	}
	defer window.Close()

	theme := sdlhost.DefaultTheme()
	canvas := sdlhost.NewCanvas(sdl.Rect{
		X: windowMargin,
		Y: windowMargin,
		W: d.cfg.Viewport.Width,
		H: d.cfg.Viewport.Height,
	}, theme)
	canvas.IconName = d.cfg.Icon
	defer canvas.Destroy()

	keys := sdlhost.NewKeyRepeat()
	step := d.cfg.ItemSize / 2

	for running := true; running; {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				pressed := e.Type == sdl.KEYDOWN
				if dir := keys.SetHeld(e.Keysym.Sym, pressed); dir != sdlhost.DirectionNone {
					if pressed && e.Repeat == 0 {
						d.scroll(dragDelta(dir, d.scene.ScrollView.Movement(), step))
					}
					continue
				}
				if !pressed {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
				case sdl.K_r:
					d.helper.ResetScroll()
					d.helper.Refresh(d.count)
				case sdl.K_EQUALS, sdl.K_PLUS, sdl.K_KP_PLUS:
					d.setCount(d.count + 1)
				case sdl.K_MINUS, sdl.K_KP_MINUS:
					d.setCount(d.count - 1)
				}
			}
		}

		if dir := keys.Update(); dir != sdlhost.DirectionNone {
			d.scroll(dragDelta(dir, d.scene.ScrollView.Movement(), step))
		}

		if title := d.status(); title != window.Title {
			window.SetTitle(title)
		}

		bg := theme.BackgroundColor
		window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
		window.Renderer.Clear()

		if err := canvas.Draw(window.Renderer, d.scene, d.helper); err != nil {
			return err
		}

		window.Present()
	}

	return nil
}

// dragDelta turns an arrow key into a scroll distance along the list axis.
// Keys across the axis give 0.
func dragDelta(dir sdlhost.Direction, movement scrollkit.Movement, step float32) float32 {
	switch {
	case dir == sdlhost.DirectionDown && movement == scrollkit.MovementVertical,
		dir == sdlhost.DirectionRight && movement == scrollkit.MovementHorizontal:
		return step
	case dir == sdlhost.DirectionUp && movement == scrollkit.MovementVertical,
		dir == sdlhost.DirectionLeft && movement == scrollkit.MovementHorizontal:
		return -step
	}
	return 0
}
