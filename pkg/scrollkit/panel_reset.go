package scrollkit

import "github.com/BrandonKowalski/scrollkit/pkg/scrollkit/internal"

// PanelResetHelper snapshots a panel's scroll state when created and puts
// it back on ResetScroll. Call ResetScroll when a screen is reopened.
//
// A nil *PanelResetHelper is valid and does nothing.
type PanelResetHelper struct {
	panel                Panel
	initialClipOffset    Vector2
	initialLocalPosition Vector3
}

// NewPanelResetHelper captures the current clip offset and local position of panel.
func NewPanelResetHelper(panel Panel) (*PanelResetHelper, error) {
	if panel == nil {
		internal.GetInternalLogger().Warn("PanelResetHelper needs a panel but got nil")
		return nil, newMissingDependencyError("new_panel_reset", "panel")
	}

	return &PanelResetHelper{
		panel:                panel,
		initialClipOffset:    panel.ClipOffset(),
		initialLocalPosition: panel.LocalPosition(),
	}, nil
}

// NewPanelResetHelperFromNode looks up the panel on node and captures it.
func NewPanelResetHelperFromNode(node Node) (*PanelResetHelper, error) {
	if node == nil {
		internal.GetInternalLogger().Warn("PanelResetHelper needs a node but got nil")
		return nil, newMissingDependencyError("new_panel_reset", "node")
	}

	panel, ok := node.Panel()
	if !ok || panel == nil {
		internal.GetInternalLogger().Warn("PanelResetHelper node has no panel")
		return nil, newMissingDependencyError("new_panel_reset", "panel")
	}

	return NewPanelResetHelper(panel)
}

// ResetScroll restores the clip offset and local position captured at construction.
func (h *PanelResetHelper) ResetScroll() {
	if h == nil || h.panel == nil {
		return
	}
	h.panel.SetClipOffset(h.initialClipOffset)
	h.panel.SetLocalPosition(h.initialLocalPosition)
}

// Panel returns the panel the helper restores.
func (h *PanelResetHelper) Panel() Panel {
	if h == nil {
		return nil
	}
	return h.panel
}

// InitialClipOffset returns the clip offset captured at construction.
func (h *PanelResetHelper) InitialClipOffset() Vector2 {
	if h == nil {
		return Vector2{}
	}
	return h.initialClipOffset
}

// InitialLocalPosition returns the local position captured at construction.
func (h *PanelResetHelper) InitialLocalPosition() Vector3 {
	if h == nil {
		return Vector3{}
	}
	return h.initialLocalPosition
}
