package skyworld

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func collect(s *Scene) []drawCommand {
	s.commands = s.commands[:0]
	s.traverse(s.root, identityTransform, 1.0, false)
	return s.commands
}

func TestTraverseEmitsSpritesOnly(t *testing.T) {
	s := NewScene()
	layer := NewContainer("layer")
	s.Root().AddChild(layer)
	layer.AddChild(NewSprite("a", ebiten.NewImage(8, 8)))
	layer.AddChild(NewSprite("empty", nil))
	layer.AddChild(NewSprite("b", ebiten.NewImage(8, 8)))
	layer.AddChild(NewText("no-font", "hello", nil))

	if got := len(collect(s)); got != 2 {
		t.Errorf("commands = %d, want 2", got)
	}
}

func TestTraverseSkipsInvisibleSubtree(t *testing.T) {
	s := NewScene()
	hidden := NewContainer("hidden")
	s.Root().AddChild(hidden)
	hidden.AddChild(NewSprite("inside", ebiten.NewImage(4, 4)))
	s.Root().AddChild(NewSprite("outside", ebiten.NewImage(4, 4)))

	hidden.Visible = false
	if got := len(collect(s)); got != 1 {
		t.Errorf("commands = %d, want 1", got)
	}
	hidden.Visible = true
	if got := len(collect(s)); got != 2 {
		t.Errorf("commands after show = %d, want 2", got)
	}
}

func TestTraverseZIndexOrder(t *testing.T) {
	s := NewScene()
	imgs := make([]*ebiten.Image, 3)
	for i := range imgs {
		imgs[i] = ebiten.NewImage(2, 2)
	}
	back := NewSprite("back", imgs[0])
	mid := NewSprite("mid", imgs[1])
	front := NewSprite("front", imgs[2])

	// Inserted front-first; ZIndex decides.
	s.Root().AddChild(front)
	s.Root().AddChild(back)
	s.Root().AddChild(mid)
	front.SetZIndex(10)
	mid.SetZIndex(1)

	cmds := collect(s)
	if len(cmds) != 3 {
		t.Fatalf("commands = %d, want 3", len(cmds))
	}
	for i, want := range imgs {
		if cmds[i].image != want {
			t.Errorf("command %d draws the wrong sprite", i)
		}
	}
}

func TestTraverseMultipliesAlpha(t *testing.T) {
	s := NewScene()
	parent := NewContainer("parent")
	parent.SetAlpha(0.5)
	child := NewSprite("child", ebiten.NewImage(2, 2))
	child.SetAlpha(0.5)
	child.Color = Color{R: 1, G: 0.5, B: 0, A: 1}
	s.Root().AddChild(parent)
	parent.AddChild(child)

	cmds := collect(s)
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
	want := Color{R: 1, G: 0.5, B: 0, A: 0.25}
	if cmds[0].color != want {
		t.Errorf("color = %v, want %v", cmds[0].color, want)
	}
}

func TestTraverseWorldTransform(t *testing.T) {
	s := NewScene()
	parent := NewContainer("parent")
	parent.SetPosition(100, 50)
	child := NewSprite("child", ebiten.NewImage(20, 10))
	child.SetPosition(10, 0)
	s.Root().AddChild(parent)
	parent.AddChild(child)

	cmds := collect(s)
	// Centered pivot: the image's top-left sits half a size up and left.
	assertMatrix(t, "transform", cmds[0].transform, [6]float64{1, 0, 0, 1, 100, 45})

	parent.SetPosition(0, 0)
	cmds = collect(s)
	assertMatrix(t, "after parent move", cmds[0].transform, [6]float64{1, 0, 0, 1, 0, -5})
}

func TestCommandGeoM(t *testing.T) {
	m := [6]float64{0, 1, -1, 0, 50, 40}
	g := commandGeoM(m)
	x, y := g.Apply(10, 0)
	assertNear(t, "x", x, 50)
	assertNear(t, "y", y, 50)
}

func TestDrawFillsAndSubmits(t *testing.T) {
	s := NewScene()
	s.ClearColor = RGB8(131, 168, 224)
	s.Root().AddChild(NewSprite("a", ebiten.NewImage(4, 4)))

	screen := ebiten.NewImage(16, 16)
	s.Draw(screen)
	if len(s.commands) != 1 {
		t.Errorf("commands = %d, want 1", len(s.commands))
	}
}
