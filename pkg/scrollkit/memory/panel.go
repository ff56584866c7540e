package memory

import "github.com/BrandonKowalski/scrollkit/pkg/scrollkit"

// Panel is an in-memory clipped panel.
type Panel struct {
	clipOffset scrollkit.Vector2
	position   scrollkit.Vector3
	clipping   scrollkit.Clipping

	// Size is the clip region's width and height.
	Size scrollkit.Vector2

	dirty int
}

func NewPanel(clipping scrollkit.Clipping, size scrollkit.Vector2) *Panel {
	return &Panel{clipping: clipping, Size: size}
}

func (p *Panel) ClipOffset() scrollkit.Vector2 { return p.clipOffset }
func (p *Panel) SetClipOffset(o scrollkit.Vector2) { p.clipOffset = o }
func (p *Panel) LocalPosition() scrollkit.Vector3 { return p.position }
func (p *Panel) SetLocalPosition(v scrollkit.Vector3) { p.position = v }
func (p *Panel) Clipping() scrollkit.Clipping { return p.clipping }
func (p *Panel) SetDirty() { p.dirty++ }

// DirtyCount returns how many times SetDirty has been called.
func (p *Panel) DirtyCount() int {
	return p.dirty
}

// MoveRelative drags the panel by delta. The clip offset moves the opposite
// way so the content appears to scroll under a fixed clip region.
func (p *Panel) MoveRelative(delta scrollkit.Vector3) {
	p.position.X += delta.X
	p.position.Y += delta.Y
	p.position.Z += delta.Z
	p.clipOffset.X -= delta.X
	p.clipOffset.Y -= delta.Y
}

// ScrollView is an in-memory scroll view.
type ScrollView struct {
	movement            scrollkit.Movement
	restrictWithinPanel bool
	disableDragIfFits   bool
}

func NewScrollView(movement scrollkit.Movement) *ScrollView {
	return &ScrollView{movement: movement}
}

func (s *ScrollView) Movement() scrollkit.Movement { return s.movement }
func (s *ScrollView) SetRestrictWithinPanel(restrict bool) { s.restrictWithinPanel = restrict }
func (s *ScrollView) SetDisableDragIfFits(disable bool) { s.disableDragIfFits = disable }
func (s *ScrollView) RestrictWithinPanel() bool { return s.restrictWithinPanel }
func (s *ScrollView) DisableDragIfFits() bool { return s.disableDragIfFits }

// CanDrag reports whether a drag gesture would move the panel.
func (s *ScrollView) CanDrag() bool {
	return s.restrictWithinPanel && !s.disableDragIfFits
}
