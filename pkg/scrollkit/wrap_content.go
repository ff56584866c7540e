package scrollkit

import "github.com/BrandonKowalski/scrollkit/pkg/scrollkit/internal"

// Options configures a WrapContentHelper.
// Container, Panel and Render are required. ScrollView is optional; without
// it drag control and ResetScroll's relayout are unavailable.
type Options struct {
	Container  WrapContainer
	Panel      Panel
	ScrollView ScrollView
	Render     RenderFunc
}

// WrapContentHelper maps a fixed pool of item views onto a logical list of
// any length. The expected call order is New, an optional ResetScroll when
// the screen opens, then Refresh whenever the list length changes.
//
// Views must be comparable (pointer types, typically); the pool is matched
// by identity.
//
// A nil *WrapContentHelper is valid and every method on it is a no-op.
type WrapContentHelper struct {
	container  WrapContainer
	panel      Panel
	scrollView ScrollView
	render     RenderFunc

	initialClipOffset    Vector2
	initialLocalPosition Vector3

	// One entry per pool slot. The pool never changes after New.
	views   []View
	indices []int
	tracked []bool

	count       int
	hasRendered bool

	stats counters
}

// New builds a helper from explicitly supplied capabilities and registers
// it as the container's init callback.
func New(opts Options) (*WrapContentHelper, error) {
	logger := internal.GetInternalLogger()

	if opts.Container == nil {
		logger.Error("WrapContentHelper needs a wrap container but got nil")
		return nil, newMissingDependencyError("new_wrap_content", "container")
	}
	if opts.Panel == nil {
		logger.Error("WrapContentHelper container has no panel on its node or parent")
		return nil, newMissingDependencyError("new_wrap_content", "panel")
	}
	if opts.Render == nil {
		logger.Error("WrapContentHelper needs a render func")
		return nil, newMissingDependencyError("new_wrap_content", "render func")
	}
	if opts.ScrollView == nil {
		logger.Warn("WrapContentHelper has no scroll view; drag control disabled")
	}

	pool := opts.Container.Children()

	h := &WrapContentHelper{
		container:            opts.Container,
		panel:                opts.Panel,
		scrollView:           opts.ScrollView,
		render:               opts.Render,
		initialClipOffset:    opts.Panel.ClipOffset(),
		initialLocalPosition: opts.Panel.LocalPosition(),
		views:                append([]View(nil), pool...),
		indices:              make([]int, len(pool)),
		tracked:              make([]bool, len(pool)),
	}

	h.container.SetInitItemFunc(h.OnInitItem)

	return h, nil
}

// NewFromContainer finds the panel on the container's node, falling back
// to the node's parent, and the scroll view next to the panel.
func NewFromContainer(container WrapContainer, render RenderFunc) (*WrapContentHelper, error) {
	if container == nil {
		internal.GetInternalLogger().Error("WrapContentHelper needs a wrap container but got nil")
		return nil, newMissingDependencyError("new_wrap_content", "container")
	}

	panel, scrollView := lookupPanel(container.Node())

	return New(Options{
		Container:  container,
		Panel:      panel,
		ScrollView: scrollView,
		Render:     render,
	})
}

func lookupPanel(node Node) (Panel, ScrollView) {
	for _, n := range []Node{node, parentOf(node)} {
		if n == nil {
			continue
		}
		panel, ok := n.Panel()
		if !ok || panel == nil {
			continue
		}
		scrollView, ok := n.ScrollView()
		if !ok {
			scrollView = nil
		}
		return panel, scrollView
	}
	return nil, nil
}

func parentOf(node Node) Node {
	if node == nil {
		return nil
	}
	return node.Parent()
}

// ResetScroll restores the panel to where it was at construction and lays
// the container's children out again from index 0, each one item size
// further along the scroll axis. Call it when a screen is (re)opened.
func (h *WrapContentHelper) ResetScroll() {
	if h == nil {
		internal.GetInternalLogger().Warn("ResetScroll skipped: helper is nil")
		return
	}
	if h.scrollView == nil {
		internal.GetInternalLogger().Warn("ResetScroll skipped: no scroll view")
		return
	}

	h.panel.SetClipOffset(h.initialClipOffset)
	h.panel.SetLocalPosition(h.initialLocalPosition)

	itemSize := h.container.ItemSize()
	movement := h.scrollView.Movement()

	for index, child := range h.container.Children() {
		offset := -itemSize * float32(index)

		switch movement {
		case MovementVertical:
			child.SetLocalPosition(child.LocalPosition().WithY(offset))
		case MovementHorizontal:
			child.SetLocalPosition(child.LocalPosition().WithX(offset))
		}

		slot := h.slotOf(child)
		if slot < 0 {
			internal.GetInternalLogger().Warn("ResetScroll found a child outside the pool", "index", index)
			continue
		}
		h.indices[slot] = index
		h.tracked[slot] = true
	}

	h.markDirty()
}

// RefreshOption adjusts a single Refresh call.
type RefreshOption func(*refreshOptions)

type refreshOptions struct {
	invertOrder bool
}

// WithInvertedOrder requests the index window for an inverted scrollbar.
// Not supported yet: the request is logged and the normal order is used.
func WithInvertedOrder() RefreshOption {
	return func(o *refreshOptions) {
		o.invertOrder = true
	}
}

// Refresh sets the logical item count, shows the pooled views whose index
// falls inside it, hides the rest, and renders every shown view.
func (h *WrapContentHelper) Refresh(count int, opts ...RefreshOption) {
	if h == nil {
		internal.GetInternalLogger().Warn("Refresh skipped: panel or container is nil")
		return
	}

	var options refreshOptions
	for _, opt := range opts {
		opt(&options)
	}

	h.setCount(count, options)

	for slot := range h.views {
		if !h.tracked[slot] {
			continue
		}
		if h.checkActive(slot) {
			h.doRender(slot)
		}
	}

	h.hasRendered = true
	h.stats.refreshes.Inc()
	h.markDirty()
}

func (h *WrapContentHelper) setCount(count int, options refreshOptions) {
	if count < 0 {
		internal.GetInternalLogger().Warn("Refresh got a negative count; using 0", "count", count)
		count = 0
	}
	if options.invertOrder {
		internal.GetInternalLogger().Warn("Inverted order is not supported; using normal order")
	}

	h.count = count
	h.container.SetIndexRange(-count+1, 0)

	if h.scrollView != nil {
		canDrag := count >= len(ActiveChildren(h.container))
		if count == 1 {
			canDrag = false
		}
		h.setDrag(canDrag)
	}
}

// OnInitItem is the container's init callback. It records the absolute
// value of realIndex for view and, once the first Refresh has happened,
// renders the view straight away so recycled views never show stale content.
func (h *WrapContentHelper) OnInitItem(view View, wrapIndex, realIndex int) {
	if h == nil {
		return
	}

	slot := h.slotOf(view)
	if slot < 0 {
		internal.GetInternalLogger().Warn("OnInitItem got a view outside the pool", "wrap_index", wrapIndex)
		return
	}

	index := realIndex
	if index < 0 {
		index = -index
	}
	h.indices[slot] = index
	h.tracked[slot] = true
	h.stats.wraps.Inc()

	if h.checkActive(slot) && h.hasRendered {
		h.doRender(slot)
	}
}

// CanDragScrollview overrides the drag behavior chosen by Refresh.
func (h *WrapContentHelper) CanDragScrollview(canDrag bool) {
	if h == nil || h.scrollView == nil {
		return
	}
	h.setDrag(canDrag)
}

func (h *WrapContentHelper) setDrag(canDrag bool) {
	h.scrollView.SetRestrictWithinPanel(canDrag)
	h.scrollView.SetDisableDragIfFits(!canDrag)
}

// checkActive shows the view in slot iff its index is inside the list.
func (h *WrapContentHelper) checkActive(slot int) bool {
	active := h.indices[slot] < h.count
	h.views[slot].SetActive(active)
	return active
}

func (h *WrapContentHelper) doRender(slot int) {
	h.render(h.views[slot], h.indices[slot])
	h.stats.renders.Inc()
}

func (h *WrapContentHelper) markDirty() {
	if h.panel.Clipping() == ClippingSoftClip {
		h.panel.SetDirty()
	}
}

func (h *WrapContentHelper) slotOf(view View) int {
	for slot, v := range h.views {
		if v == view {
			return slot
		}
	}
	return -1
}

// Count returns the logical item count set by the last Refresh.
func (h *WrapContentHelper) Count() int {
	if h == nil {
		return 0
	}
	return h.count
}

// HasRendered reports whether Refresh has been called at least once.
func (h *WrapContentHelper) HasRendered() bool {
	return h != nil && h.hasRendered
}

// IndexOf returns the logical index currently assigned to view.
// ok is false if view is not pooled or has not been assigned yet.
func (h *WrapContentHelper) IndexOf(view View) (index int, ok bool) {
	if h == nil {
		return 0, false
	}
	slot := h.slotOf(view)
	if slot < 0 || !h.tracked[slot] {
		return 0, false
	}
	return h.indices[slot], true
}

// Views returns the pooled views in pool order.
func (h *WrapContentHelper) Views() []View {
	if h == nil {
		return nil
	}
	return append([]View(nil), h.views...)
}

// Stats returns a snapshot of the refresh, render and wrap counters.
func (h *WrapContentHelper) Stats() Stats {
	if h == nil {
		return Stats{}
	}
	return h.stats.snapshot()
}
