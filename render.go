package skyworld

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawCommand is a single DrawImage call emitted during traversal.
type drawCommand struct {
	image     *ebiten.Image
	transform [6]float64
	color     Color // alpha already multiplied by the node's world alpha
}

// Draw fills the screen with ClearColor, then draws the tree depth-first.
// Siblings are visited in ZIndex order, ties in insertion order.
func (s *Scene) Draw(screen *ebiten.Image) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(s.ClearColor.toRGBA())

	s.commands = s.commands[:0]
	s.traverse(s.root, identityTransform, 1.0, false)

	if s.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	s.submit(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		s.debugLog(stats)
	}
}

// traverse refreshes world transforms and emits draw commands for visible
// sprites and text.
func (s *Scene) traverse(n *Node, parent [6]float64, parentAlpha float64, parentRecomputed bool) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parent, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	switch n.Type {
	case NodeTypeSprite:
		if n.Image != nil {
			s.emit(n, n.Image)
		}
	case NodeTypeText:
		if img := n.TextBlock.render(n); img != nil {
			s.emit(n, img)
		}
	}

	if len(n.children) == 0 {
		return
	}
	for _, child := range n.orderedChildren() {
		s.traverse(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

func (s *Scene) emit(n *Node, img *ebiten.Image) {
	s.commands = append(s.commands, drawCommand{
		image:     img,
		transform: n.worldTransform,
		color:     Color{n.Color.R, n.Color.G, n.Color.B, n.Color.A * n.worldAlpha},
	})
}

func (s *Scene) submit(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		op.GeoM = commandGeoM(cmd.transform)
		op.ColorScale.Reset()
		a := float32(cmd.color.A)
		op.ColorScale.Scale(float32(cmd.color.R)*a, float32(cmd.color.G)*a, float32(cmd.color.B)*a, a)
		target.DrawImage(cmd.image, &op)
	}
}

func commandGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
