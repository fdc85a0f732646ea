// Package assets provides the images and animation clips the game draws:
// a named image library and a sprite-sheet clip builder.
package assets

import (
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

// Placeholder image names
const (
	ImagePlayerSheet = "player_sheet"
	ImageCoin        = "coin"
	ImageWall        = "wall"
)

// Library maps image names to decoded images
type Library struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewLibrary creates an empty image library
func NewLibrary() *Library {
	return &Library{images: make(map[string]image.Image)}
}

// NewPlaceholderLibrary creates a library with generated art sized for ents
func NewPlaceholderLibrary(ents *config.EntitiesConfig, tileSize int) *Library {
	lib := NewLibrary()

	sheet := ents.Player.Sprite
	cell := int(ents.Player.Width)
	if cell <= 0 {
		cell = 48
	}
	lib.Register(nameOr(sheet.Image, ImagePlayerSheet), PlayerSheet(cell, max(sheet.Columns, 1), max(sheet.Rows, 1)))

	cw, ch := int(ents.Coin.Width), int(ents.Coin.Height)
	if cw <= 0 || ch <= 0 {
		cw, ch = tileSize, tileSize
	}
	lib.Register(nameOr(ents.Coin.Image, ImageCoin), Coin(cw, ch))
	lib.Register(nameOr(ents.Wall.Image, ImageWall), Wall(tileSize, tileSize))

	return lib
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// Register stores img under name, replacing any previous image
func (l *Library) Register(name string, img image.Image) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.images[name] = img
}

// Image returns the named image
func (l *Library) Image(name string) (image.Image, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	img, ok := l.images[name]
	if !ok {
		return nil, fmt.Errorf("image %q not found", name)
	}
	return img, nil
}

// Names returns the registered image names, sorted
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.images))
	for name := range l.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SheetClip cuts img into a cols x rows grid and returns the clip made of
// the given cells (row-major indices).
func SheetClip(img entity.Image, cols, rows int, cells []int, frameDuration float64, mode entity.LoopMode) (*entity.Clip, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid sheet grid %dx%d", cols, rows)
	}
	b := img.Bounds()
	cw, ch := b.Dx()/cols, b.Dy()/rows
	if cw == 0 || ch == 0 {
		return nil, fmt.Errorf("sheet %dx%d too small for %dx%d grid", b.Dx(), b.Dy(), cols, rows)
	}

	frames := make([]entity.Region, 0, len(cells))
	for _, cell := range cells {
		if cell < 0 || cell >= cols*rows {
			return nil, fmt.Errorf("cell %d out of range [0,%d)", cell, cols*rows)
		}
		x := b.Min.X + (cell%cols)*cw
		y := b.Min.Y + (cell/cols)*ch
		frames = append(frames, entity.SubRegion(img, image.Rect(x, y, x+cw, y+ch)))
	}
	return entity.NewClip(frameDuration, mode, frames...), nil
}

// SheetClips builds every clip of a sprite sheet config
func (l *Library) SheetClips(sheet config.SheetConfig, clips map[string]config.ClipConfig) (map[string]*entity.Clip, error) {
	img, err := l.Image(sheet.Image)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*entity.Clip, len(clips))
	for name, cc := range clips {
		mode, err := entity.ParseLoopMode(cc.Mode)
		if err != nil {
			return nil, fmt.Errorf("clip %s: %w", name, err)
		}
		clip, err := SheetClip(img, sheet.Columns, sheet.Rows, cc.Cells, cc.FrameDuration, mode)
		if err != nil {
			return nil, fmt.Errorf("clip %s: %w", name, err)
		}
		out[name] = clip
	}
	return out, nil
}
