package memory

import "github.com/BrandonKowalski/scrollkit/pkg/scrollkit"

// View is an in-memory pooled item view.
type View struct {
	Name string
	Text string

	active   bool
	position scrollkit.Vector3
}

// NewView returns an active view at the origin.
func NewView(name string) *View {
	return &View{Name: name, active: true}
}

func (v *View) Active() bool { return v.active }
func (v *View) SetActive(active bool) { v.active = active }
func (v *View) LocalPosition() scrollkit.Vector3 { return v.position }
func (v *View) SetLocalPosition(p scrollkit.Vector3) { v.position = p }

// SetText replaces the view's content. Render funcs call it.
func (v *View) SetText(text string) {
	v.Text = text
}
