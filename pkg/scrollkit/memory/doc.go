// Package memory implements the scrollkit capabilities without a renderer.
//
// It is used by headless hosts and by tests, and as the model the sdlhost
// package draws from. The Container reproduces the wrap-around behavior of a
// wrap-content container: views that scroll more than half the pool's extent
// away from the panel center jump to the other end and report their new index
// through the init callback.
package memory
