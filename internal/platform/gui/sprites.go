package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/assets"
)

// spriteSet holds GPU images converted from a resolved asset batch.
// Until the batch resolves every lookup misses and callers draw placeholders.
type spriteSet struct {
	resolved bool
	images   map[string]*ebiten.Image
}

func newSpriteSet() *spriteSet {
	return &spriteSet{images: make(map[string]*ebiten.Image)}
}

// resolve converts the loader's batch once it is ready. It never blocks.
func (s *spriteSet) resolve(l *assets.Loader) {
	if s.resolved || l == nil {
		return
	}
	batch, ok := l.Batch()
	if !ok {
		return
	}
	for name, img := range batch.Images {
		s.images[name] = ebiten.NewImageFromImage(img)
	}
	s.resolved = true
}

func (s *spriteSet) get(name string) (*ebiten.Image, bool) {
	img, ok := s.images[name]
	return img, ok
}

// frame returns one sprite of a horizontal sheet.
func (s *spriteSet) frame(name string, frames, index int) (*ebiten.Image, bool) {
	img, ok := s.images[name]
	if !ok {
		return nil, false
	}
	return img.SubImage(sheetFrame(img.Bounds(), frames, index)).(*ebiten.Image), true
}
