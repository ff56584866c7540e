package scrollkit_test

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit"
	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit/memory"
)

func TestPanelResetHelper(t *testing.T) {
	panel := memory.NewPanel(scrollkit.ClippingSoftClip, scrollkit.Vector2{X: 100, Y: 100})
	panel.SetClipOffset(scrollkit.Vector2{X: 3, Y: -4})
	panel.SetLocalPosition(scrollkit.Vector3{X: 1, Y: 2, Z: 3})

	h, err := scrollkit.NewPanelResetHelper(panel)
	if err != nil {
		t.Fatalf("NewPanelResetHelper failed: %v", err)
	}

	moves := []scrollkit.Vector3{{Y: 40}, {X: -15, Y: 7}, {Y: -300}, {Z: 2}}
	for i := 0; i < 3; i++ {
		for _, delta := range moves {
			panel.MoveRelative(delta)
		}
		panel.SetClipOffset(scrollkit.Vector2{X: float32(i), Y: 99})

		h.ResetScroll()

		if got := panel.ClipOffset(); got != (scrollkit.Vector2{X: 3, Y: -4}) {
			t.Errorf("reset %d: expected clip offset {3 -4}, got %v", i, got)
		}
		if got := panel.LocalPosition(); got != (scrollkit.Vector3{X: 1, Y: 2, Z: 3}) {
			t.Errorf("reset %d: expected position {1 2 3}, got %v", i, got)
		}
	}

	if h.InitialClipOffset() != (scrollkit.Vector2{X: 3, Y: -4}) {
		t.Errorf("unexpected initial clip offset %v", h.InitialClipOffset())
	}
	if h.InitialLocalPosition() != (scrollkit.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("unexpected initial position %v", h.InitialLocalPosition())
	}
	if h.Panel() != panel {
		t.Errorf("expected the helper to keep the panel")
	}
	if panel.DirtyCount() != 0 {
		t.Errorf("expected ResetScroll to leave the panel clean, got %d", panel.DirtyCount())
	}
}

func TestPanelResetHelperNil(t *testing.T) {
	h, err := scrollkit.NewPanelResetHelper(nil)
	if !scrollkit.IsMissingDependency(err) {
		t.Fatalf("expected a missing dependency error, got %v", err)
	}
	if h != nil {
		t.Fatalf("expected a nil helper")
	}

	h.ResetScroll()
	if h.Panel() != nil {
		t.Errorf("expected no panel on a nil helper")
	}
}

func TestPanelResetHelperFromNode(t *testing.T) {
	t.Run("WithPanel", func(t *testing.T) {
		panel := memory.NewPanel(scrollkit.ClippingNone, scrollkit.Vector2{})
		node := memory.NewNode("panel", nil).Attach(panel, nil)

		h, err := scrollkit.NewPanelResetHelperFromNode(node)
		if err != nil {
			t.Fatalf("NewPanelResetHelperFromNode failed: %v", err)
		}

		panel.MoveRelative(scrollkit.Vector3{Y: 120})
		h.ResetScroll()
		if panel.LocalPosition() != (scrollkit.Vector3{}) || panel.ClipOffset() != (scrollkit.Vector2{}) {
			t.Errorf("expected the panel back at the origin, got %v %v", panel.LocalPosition(), panel.ClipOffset())
		}
	})

	t.Run("WithoutPanel", func(t *testing.T) {
		h, err := scrollkit.NewPanelResetHelperFromNode(memory.NewNode("bare", nil))
		if !scrollkit.IsMissingDependency(err) {
			t.Fatalf("expected a missing dependency error, got %v", err)
		}
		h.ResetScroll()
	})

	t.Run("NilNode", func(t *testing.T) {
		_, err := scrollkit.NewPanelResetHelperFromNode(nil)
		var missing *scrollkit.MissingDependencyError
		if !errors.As(err, &missing) || missing.Dependency != "node" {
			t.Fatalf("expected a missing node error, got %v", err)
		}
	})
}
