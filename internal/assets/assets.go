// Package assets loads the demo's images from a file system.
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Loader reads images from a file system, usually os.DirFS("assets").
type Loader struct {
	fsys fs.FS
}

// NewLoader returns a Loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Decode reads and decodes the image at name without uploading it.
func (l *Loader) Decode(name string) (image.Image, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", name, err)
	}
	return img, nil
}

// Image loads name as an Ebitengine image.
func (l *Loader) Image(name string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", name, err)
	}
	return img, nil
}

// Images loads names in order. It stops at the first failure.
func (l *Loader) Images(names []string) ([]*ebiten.Image, error) {
	imgs := make([]*ebiten.Image, 0, len(names))
	for _, name := range names {
		img, err := l.Image(name)
		if err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}
