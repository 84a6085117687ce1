package skyworld

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	size float64
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("skyworld: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()

	return &TTFFont{
		face: face,
		size: size,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// TextBlock holds text content and its cached rendering.
type TextBlock struct {
	Content string
	Font    *TTFFont
	Color   Color

	image *ebiten.Image
	dirty bool
}

// NewText creates a text node. Text nodes are anchored at their top-left
// corner. A nil font is allowed; such a node keeps its content but draws
// nothing.
func NewText(name, content string, font *TTFFont) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		TextBlock: &TextBlock{
			Content: content,
			Font:    font,
			Color:   ColorWhite,
			dirty:   true,
		},
	}
	nodeDefaults(n)
	n.measureText()
	return n
}

// SetText replaces the content of a text node. No-op for other node types.
func (n *Node) SetText(content string) {
	tb := n.TextBlock
	if tb == nil || tb.Content == content {
		return
	}
	tb.Content = content
	tb.dirty = true
	n.measureText()
}

// Text returns the content of a text node, or "" for other node types.
func (n *Node) Text() string {
	if n.TextBlock == nil {
		return ""
	}
	return n.TextBlock.Content
}

func (n *Node) measureText() {
	tb := n.TextBlock
	if tb.Font == nil {
		n.Width, n.Height = 0, 0
		return
	}
	n.Width, n.Height = tb.Font.MeasureString(tb.Content)
}

// render returns the cached text image, redrawing it when the content
// changed. Returns nil when there is nothing to draw.
func (tb *TextBlock) render(n *Node) *ebiten.Image {
	if tb == nil || tb.Font == nil || n.Width == 0 || n.Height == 0 {
		return nil
	}
	if !tb.dirty && tb.image != nil {
		return tb.image
	}
	tb.dirty = false

	w := int(n.Width) + 1
	h := int(n.Height) + 1
	if tb.image != nil {
		b := tb.image.Bounds()
		if b.Dx() != w || b.Dy() != h {
			tb.image.Deallocate()
			tb.image = nil
		} else {
			tb.image.Clear()
		}
	}
	if tb.image == nil {
		tb.image = ebiten.NewImage(w, h)
	}

	op := &text.DrawOptions{}
	op.ColorScale.Scale(
		float32(tb.Color.R*tb.Color.A),
		float32(tb.Color.G*tb.Color.A),
		float32(tb.Color.B*tb.Color.A),
		float32(tb.Color.A),
	)
	op.LineSpacing = tb.Font.lh
	text.Draw(tb.image, tb.Content, tb.Font.face, op)
	return tb.image
}

func (tb *TextBlock) dispose() {
	if tb.image != nil {
		tb.image.Deallocate()
		tb.image = nil
	}
}
