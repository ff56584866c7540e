package scrollkit

// View is one pooled item view. Hosts implement it over whatever object
// they draw; scrollkit only toggles visibility and moves it.
type View interface {
	Active() bool
	SetActive(active bool)
	LocalPosition() Vector3
	SetLocalPosition(pos Vector3)
}

// Panel is a clipped, scrollable region. Dragging moves the panel and
// shifts its clip offset the opposite way.
type Panel interface {
	ClipOffset() Vector2
	SetClipOffset(offset Vector2)
	LocalPosition() Vector3
	SetLocalPosition(pos Vector3)
	Clipping() Clipping
	// SetDirty forces the panel to redraw its contents.
	SetDirty()
}

// ScrollView controls drag behavior for a panel.
type ScrollView interface {
	Movement() Movement
	SetRestrictWithinPanel(restrict bool)
	SetDisableDragIfFits(disable bool)
}

// InitItemFunc is called by a wrap container whenever it moves a pooled view
// to a new position. realIndex may be negative; its absolute value is the
// logical index.
type InitItemFunc func(view View, wrapIndex, realIndex int)

// WrapContainer owns the pooled views and recycles them while scrolling.
type WrapContainer interface {
	// Children returns the pooled views in their current sibling order.
	Children() []View
	ItemSize() float32
	// SetIndexRange limits the real indices views may wrap to.
	SetIndexRange(min, max int)
	SetInitItemFunc(fn InitItemFunc)
	// Node returns the node the container is attached to, or nil.
	Node() Node
}

// Node is a scene node that may carry a panel or scroll view. It is only
// consulted by the convenience constructors.
type Node interface {
	Panel() (Panel, bool)
	ScrollView() (ScrollView, bool)
	Parent() Node
}

// RenderFunc populates view with the content of the item at index.
type RenderFunc func(view View, index int)

// ActiveChildren returns the container's children that are currently active.
func ActiveChildren(container WrapContainer) []View {
	if container == nil {
		return nil
	}

	var active []View
	for _, child := range container.Children() {
		if child != nil && child.Active() {
			active = append(active, child)
		}
	}
	return active
}
