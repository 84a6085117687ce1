package skyworld

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewSpriteCentersPivot(t *testing.T) {
	img := ebiten.NewImage(40, 20)
	n := NewSprite("spr", img)
	assertNodeDefaults(t, n, "spr", NodeTypeSprite)
	if n.Width != 40 || n.Height != 20 {
		t.Errorf("size = %vx%v, want 40x20", n.Width, n.Height)
	}
	if n.PivotX != 20 || n.PivotY != 10 {
		t.Errorf("pivot = (%v, %v), want (20, 10)", n.PivotX, n.PivotY)
	}
}

func TestNewSpriteNilImage(t *testing.T) {
	n := NewSprite("empty", nil)
	if n.Width != 0 || n.Height != 0 || n.Image != nil {
		t.Errorf("nil-image sprite = %vx%v image=%v", n.Width, n.Height, n.Image)
	}
}

func TestSetSizeAndBounds(t *testing.T) {
	n := NewSprite("cloud", nil)
	n.SetSize(100, 60)
	n.SetPosition(300, 200)
	want := Rect{X: 250, Y: 170, Width: 100, Height: 60}
	if got := n.Bounds(); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
}

func TestNodeIDsUnique(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both %d", a.ID)
	}
}

func TestAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Errorf("children = %v", parent.Children())
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")
	a.AddChild(child)
	b.AddChild(child)

	if a.NumChildren() != 0 {
		t.Errorf("old parent still has %d children", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child.Parent should be b")
	}
}

func TestAddChildPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil child", func() { NewContainer("p").AddChild(nil) }},
		{"self", func() {
			n := NewContainer("n")
			n.AddChild(n)
		}},
		{"cycle", func() {
			a := NewContainer("a")
			b := NewContainer("b")
			a.AddChild(b)
			b.AddChild(a)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChild(b)

	parent.RemoveChild(a)
	if a.Parent != nil {
		t.Error("removed child should have nil Parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != b {
		t.Errorf("children = %v, want [b]", parent.Children())
	}

	b.RemoveFromParent()
	if parent.NumChildren() != 0 {
		t.Errorf("children = %d, want 0", parent.NumChildren())
	}
	b.RemoveFromParent() // no parent: no-op
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewContainer("a").RemoveChild(NewContainer("b"))
}

func TestOrderedChildrenByZIndex(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	a.SetZIndex(10)
	got := parent.orderedChildren()
	want := []*Node{b, c, a}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order[%d] = %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
	// Insertion order is untouched.
	if parent.Children()[0] != a {
		t.Error("Children() should keep insertion order")
	}
}

func TestDispose(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)
	child.RunAction(MoveBy(10, 0, 1))
	child.OnUpdate = func(float64) {}

	child.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("child and grandchild should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed child should be removed from parent")
	}
	if child.NumActions() != 0 || child.OnUpdate != nil {
		t.Error("disposed node should drop actions and hooks")
	}
	child.Dispose() // idempotent
}
