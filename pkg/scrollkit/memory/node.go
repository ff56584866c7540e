package memory

import "github.com/BrandonKowalski/scrollkit/pkg/scrollkit"

// Node is a scene node that may carry a panel and a scroll view.
type Node struct {
	Name string

	panel      *Panel
	scrollView *ScrollView
	parent     *Node
}

func NewNode(name string, parent *Node) *Node {
	return &Node{Name: name, parent: parent}
}

// Attach sets the capabilities carried by the node. Either may be nil.
func (n *Node) Attach(panel *Panel, scrollView *ScrollView) *Node {
	n.panel = panel
	n.scrollView = scrollView
	return n
}

func (n *Node) Panel() (scrollkit.Panel, bool) {
	if n.panel == nil {
		return nil, false
	}
	return n.panel, true
}

func (n *Node) ScrollView() (scrollkit.ScrollView, bool) {
	if n.scrollView == nil {
		return nil, false
	}
	return n.scrollView, true
}

func (n *Node) Parent() scrollkit.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}
