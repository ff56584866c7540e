package memory

import (
	"fmt"

	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit"
	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit/config"
)

// Scene is the usual arrangement: a root node carrying the panel and scroll
// view, with the wrap container on a child node.
type Scene struct {
	Root       *Node
	Panel      *Panel
	ScrollView *ScrollView
	Container  *Container
}

// Build creates a scene with cfg.PoolSize views laid out from index 0.
func Build(cfg config.List) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	movement, _ := cfg.MovementValue()
	clipping, _ := cfg.ClippingValue()

	panel := NewPanel(clipping, scrollkit.Vector2{X: float32(cfg.Viewport.Width), Y: float32(cfg.Viewport.Height)})
	scrollView := NewScrollView(movement)
	root := NewNode("panel", nil).Attach(panel, scrollView)
	node := NewNode("wrap", root)

	views := make([]*View, cfg.PoolSize)
	for i := range views {
		views[i] = NewView(fmt.Sprintf("item-%d", i))
	}

	container := NewContainer(node, panel, movement, cfg.ItemSize, views...)
	container.Reposition()

	return &Scene{
		Root:       root,
		Panel:      panel,
		ScrollView: scrollView,
		Container:  container,
	}, nil
}
