package memory

import (
	"math"

	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit"
)

// maxWrapPasses bounds Wrap when a single scroll jumps many item sizes.
const maxWrapPasses = 64

// Container is an in-memory wrap-content container. Its children are laid
// out one ItemSize apart toward the negative end of the movement axis, so
// child i sits at real index -i.
type Container struct {
	node     *Node
	panel    *Panel
	movement scrollkit.Movement
	itemSize float32

	children []*View
	minIndex int
	maxIndex int
	onInit   scrollkit.InitItemFunc
}

// NewContainer creates a container attached to node that scrolls inside panel.
func NewContainer(node *Node, panel *Panel, movement scrollkit.Movement, itemSize float32, children ...*View) *Container {
	return &Container{
		node:     node,
		panel:    panel,
		movement: movement,
		itemSize: itemSize,
		children: children,
	}
}

func (c *Container) Children() []scrollkit.View {
	views := make([]scrollkit.View, len(c.children))
	for i, child := range c.children {
		views[i] = child
	}
	return views
}

// Views returns the concrete children in sibling order.
func (c *Container) Views() []*View {
	return c.children
}

func (c *Container) ItemSize() float32 { return c.itemSize }

func (c *Container) SetIndexRange(min, max int) {
	c.minIndex = min
	c.maxIndex = max
}

// IndexRange returns the window set by SetIndexRange.
func (c *Container) IndexRange() (min, max int) {
	return c.minIndex, c.maxIndex
}

func (c *Container) SetInitItemFunc(fn scrollkit.InitItemFunc) {
	c.onInit = fn
}

func (c *Container) Node() scrollkit.Node {
	if c.node == nil {
		return nil
	}
	return c.node
}

// MoveChild moves a child to a new sibling position, as a host reparenting
// or sorting views would.
func (c *Container) MoveChild(from, to int) {
	if from < 0 || from >= len(c.children) || to < 0 || to >= len(c.children) {
		return
	}
	child := c.children[from]
	c.children = append(c.children[:from], c.children[from+1:]...)
	c.children = append(c.children[:to], append([]*View{child}, c.children[to:]...)...)
}

// Reposition lays every child out from real index 0 and reports each one
// through the init callback.
func (c *Container) Reposition() {
	for i, child := range c.children {
		child.SetLocalPosition(c.withAxis(child.LocalPosition(), -c.itemSize*float32(i)))
		c.updateItem(child, i)
	}
}

// Scroll drags the panel by delta along the movement axis and recycles the
// views that left the visible extent. Positive delta reveals higher indices.
func (c *Container) Scroll(delta float32) {
	if c.panel == nil {
		return
	}

	switch c.movement {
	case scrollkit.MovementVertical:
		c.panel.MoveRelative(scrollkit.Vector3{Y: delta})
	case scrollkit.MovementHorizontal:
		c.panel.MoveRelative(scrollkit.Vector3{X: delta})
	default:
		return
	}

	c.Wrap()
}

// Wrap moves every child further than half the pool extent from the panel
// center to the opposite end, as long as the new real index is inside the
// index range. It returns false if some child could not be moved.
func (c *Container) Wrap() bool {
	if c.panel == nil || c.itemSize <= 0 || len(c.children) == 0 {
		return true
	}

	extents := c.itemSize * float32(len(c.children)) * 0.5
	center := c.center()

	allWithinRange := true
	for pass := 0; pass < maxWrapPasses; pass++ {
		moved := false
		allWithinRange = true

		for i, child := range c.children {
			pos := c.axis(child.LocalPosition())
			distance := pos - center

			var next float32
			switch {
			case distance < -extents:
				next = pos + extents*2
			case distance > extents:
				next = pos - extents*2
			default:
				continue
			}

			if !c.inRange(c.realIndex(next)) {
				allWithinRange = false
				continue
			}

			child.SetLocalPosition(c.withAxis(child.LocalPosition(), next))
			c.updateItem(child, i)
			moved = true
		}

		if !moved {
			break
		}
	}

	return allWithinRange
}

// center is the middle of the panel's clip region along the movement axis,
// shifted by half an item because a view's position marks its leading edge.
func (c *Container) center() float32 {
	offset := c.panel.ClipOffset()
	if c.movement == scrollkit.MovementHorizontal {
		return offset.X - c.panel.Size.X/2 + c.itemSize/2
	}
	return offset.Y - c.panel.Size.Y/2 + c.itemSize/2
}

func (c *Container) inRange(realIndex int) bool {
	return c.minIndex == c.maxIndex || (c.minIndex <= realIndex && realIndex <= c.maxIndex)
}

func (c *Container) updateItem(child *View, wrapIndex int) {
	if c.onInit == nil {
		return
	}
	c.onInit(child, wrapIndex, c.realIndex(c.axis(child.LocalPosition())))
}

func (c *Container) realIndex(pos float32) int {
	return int(math.Round(float64(pos / c.itemSize)))
}

func (c *Container) axis(v scrollkit.Vector3) float32 {
	if c.movement == scrollkit.MovementHorizontal {
		return v.X
	}
	return v.Y
}

func (c *Container) withAxis(v scrollkit.Vector3, value float32) scrollkit.Vector3 {
	if c.movement == scrollkit.MovementHorizontal {
		return v.WithX(value)
	}
	return v.WithY(value)
}
