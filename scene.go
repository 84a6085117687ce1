package skyworld

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 64

// Scene is the top-level object that owns the node tree, the tick
// callbacks, and the render buffers.
type Scene struct {
	root *Node

	// ClearColor fills the screen before the tree is drawn.
	ClearColor Color

	scheduled  []scheduledFunc
	updateFunc func() error
	ticks      uint64

	commands []drawCommand
	debug    bool
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:       NewContainer("root"),
		ClearColor: Color{A: 1},
		commands:   make([]drawCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc sets a function called at the end of every tick, after
// actions and scheduled callbacks. A non-nil error stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Ticks returns the number of ticks the scene has advanced.
func (s *Scene) Ticks() uint64 {
	return s.ticks
}

// Update advances the scene by one Ebitengine tick.
func (s *Scene) Update() error {
	return s.Step(1.0 / float64(ebiten.TPS()))
}

// Step advances the scene by dt seconds: node actions and OnUpdate hooks run
// depth-first in tree order, then scheduled callbacks in registration order,
// then the update func.
func (s *Scene) Step(dt float64) error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	stepNodes(s.root, dt)
	s.runScheduled(dt)
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.ticks++

	if s.debug {
		s.debugLogUpdate(time.Since(t0))
	}
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

func stepNodes(n *Node, dt float64) {
	n.stepActions(float32(dt))
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for i := 0; i < len(n.children); i++ {
		stepNodes(n.children[i], dt)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees are reported, and per-tick timing stats are
// written to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations, which lack a Scene pointer, can check it cheaply.
var globalDebug bool
