package skyworld

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func loadRegular(t *testing.T, size float64) *TTFFont {
	t.Helper()
	f, err := LoadTTFFont(goregular.TTF, size)
	if err != nil {
		t.Fatalf("LoadTTFFont: %v", err)
	}
	return f
}

func TestLoadTTFFontInvalidData(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a TTF file"), 16); err == nil {
		t.Error("expected error for invalid TTF data")
	}
}

func TestTTFFontMetrics(t *testing.T) {
	f := loadRegular(t, 32)
	if f.Size() != 32 {
		t.Errorf("Size = %v, want 32", f.Size())
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v, want > 0", f.LineHeight())
	}

	w1, h1 := f.MeasureString("Day 1")
	w2, _ := f.MeasureString("Day 100")
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("MeasureString = %vx%v, want positive", w1, h1)
	}
	if w2 <= w1 {
		t.Errorf("longer label measured %v, not wider than %v", w2, w1)
	}
}

func TestNewText(t *testing.T) {
	f := loadRegular(t, 16)
	n := NewText("label", "Day 1", f)
	if n.Type != NodeTypeText {
		t.Errorf("Type = %v, want NodeTypeText", n.Type)
	}
	if n.Text() != "Day 1" {
		t.Errorf("Text = %q, want %q", n.Text(), "Day 1")
	}
	if n.PivotX != 0 || n.PivotY != 0 {
		t.Errorf("pivot = (%v, %v), want top-left", n.PivotX, n.PivotY)
	}
	if n.Width <= 0 || n.Height <= 0 {
		t.Errorf("size = %vx%v, want measured", n.Width, n.Height)
	}
}

func TestSetTextRemeasures(t *testing.T) {
	n := NewText("label", "Day 1", loadRegular(t, 16))
	w := n.Width
	n.TextBlock.dirty = false

	n.SetText("Day 1")
	if n.TextBlock.dirty {
		t.Error("same content should not dirty the block")
	}
	n.SetText("Day 12")
	if !n.TextBlock.dirty {
		t.Error("new content should dirty the block")
	}
	if n.Width <= w {
		t.Errorf("Width = %v, want wider than %v", n.Width, w)
	}
}

func TestTextOnNonTextNode(t *testing.T) {
	n := NewContainer("c")
	n.SetText("ignored")
	if n.Text() != "" {
		t.Errorf("Text = %q, want empty", n.Text())
	}
}

func TestTextNilFontDrawsNothing(t *testing.T) {
	n := NewText("label", "Day 1", nil)
	if n.Width != 0 || n.Height != 0 {
		t.Errorf("size = %vx%v, want 0x0", n.Width, n.Height)
	}
	if img := n.TextBlock.render(n); img != nil {
		t.Error("nil font should render nothing")
	}
	if n.Text() != "Day 1" {
		t.Errorf("content lost: %q", n.Text())
	}
}

func TestTextRenderCaches(t *testing.T) {
	n := NewText("label", "Day 1", loadRegular(t, 16))
	first := n.TextBlock.render(n)
	if first == nil {
		t.Fatal("render returned nil")
	}
	if again := n.TextBlock.render(n); again != first {
		t.Error("unchanged text should reuse the cached image")
	}
}

func TestTextNodeEmitsCommand(t *testing.T) {
	s := NewScene()
	n := NewText("label", "Day 1", loadRegular(t, 16))
	n.SetPosition(5, 5)
	s.Root().AddChild(n)

	cmds := collect(s)
	if len(cmds) != 1 {
		t.Fatalf("commands = %d, want 1", len(cmds))
	}
	assertMatrix(t, "transform", cmds[0].transform, [6]float64{1, 0, 0, 1, 5, 5})
}
