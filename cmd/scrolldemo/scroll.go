package main

import "github.com/BrandonKowalski/scrollkit/pkg/scrollkit"

// scroll drags the list by delta toward higher indices, unless the scroll
// view currently forbids dragging.
func (d *demo) scroll(delta float32) {
	if delta == 0 || !d.scene.ScrollView.CanDrag() {
		return
	}
	d.scene.Container.Scroll(d.clampScroll(d.scene.ScrollView.Movement(), delta))
}

// clampScroll keeps the panel between the first item and the last page.
func (d *demo) clampScroll(movement scrollkit.Movement, delta float32) float32 {
	pos := d.scene.Panel.LocalPosition().Y
	viewport := float32(d.cfg.Viewport.Height)
	if movement == scrollkit.MovementHorizontal {
		pos = d.scene.Panel.LocalPosition().X
		viewport = float32(d.cfg.Viewport.Width)
	}

	limit := max(float32(d.count)*d.cfg.ItemSize-viewport, 0)
	target := min(max(pos+delta, 0), limit)
	return target - pos
}
