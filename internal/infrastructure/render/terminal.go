package render

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/domain/geom"
)

// TerminalRenderer implements entity.Renderer on a tcell screen. Each cell
// covers CellW x CellH world pixels; an actor fills the cells its
// axis-aligned box touches with the tinted color of its region's center.
type TerminalRenderer struct {
	screen  tcell.Screen
	CellW   float64
	CellH   float64
	topLeft geom.Vec2
}

var _ entity.Renderer = (*TerminalRenderer)(nil)

// NewTerminalRenderer creates a renderer onto screen
func NewTerminalRenderer(screen tcell.Screen, cellW, cellH float64) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, CellW: cellW, CellH: cellH}
}

// Begin clears the screen and fixes the world position of cell (0, 0)
func (r *TerminalRenderer) Begin(topLeft geom.Vec2) {
	r.topLeft = topLeft
	r.screen.Clear()
}

// ViewSize returns the screen size in world pixels
func (r *TerminalRenderer) ViewSize() (w, h float64) {
	cols, rows := r.screen.Size()
	return float64(cols) * r.CellW, float64(rows) * r.CellH
}

// DrawRegion paints the cells under the actor's box
func (r *TerminalRenderer) DrawRegion(region entity.Region, t entity.Transform, tint color.RGBA) {
	c := modulate(sampleCenter(region), tint)
	if c.A == 0 {
		return
	}
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))

	cols, rows := r.screen.Size()
	x0 := int(math.Floor((t.Position.X - r.topLeft.X) / r.CellW))
	y0 := int(math.Floor((t.Position.Y - r.topLeft.Y) / r.CellH))
	x1 := int(math.Ceil((t.Position.X + t.Width - r.topLeft.X) / r.CellW))
	y1 := int(math.Ceil((t.Position.Y + t.Height - r.topLeft.Y) / r.CellH))
	for y := max(y0, 0); y < min(y1, rows); y++ {
		for x := max(x0, 0); x < min(x1, cols); x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Text writes s starting at cell (x, y); each line of s takes one row
func (r *TerminalRenderer) Text(x, y int, s string, style tcell.Style) {
	for row, line := range strings.Split(s, "\n") {
		for i, ch := range []rune(line) {
			r.screen.SetContent(x+i, y+row, ch, nil, style)
		}
	}
}

// Show flushes the frame
func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

func sampleCenter(region entity.Region) color.RGBA {
	img, ok := region.Image.(image.Image)
	if !ok || region.Rect.Empty() {
		return color.RGBA{}
	}
	p := region.Rect.Min.Add(region.Rect.Size().Div(2))
	return color.RGBAModel.Convert(img.At(p.X, p.Y)).(color.RGBA)
}

func modulate(c, tint color.RGBA) color.RGBA {
	mul := func(a, b uint8) uint8 { return uint8(uint16(a) * uint16(b) / 255) }
	return color.RGBA{mul(c.R, tint.R), mul(c.G, tint.G), mul(c.B, tint.B), mul(c.A, tint.A)}
}
