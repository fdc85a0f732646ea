package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"
)

// Palette holds the colors of the generated placeholder art
var Palette = struct {
	Grass      color.RGBA
	Wall       color.RGBA
	WallEdge   color.RGBA
	Coin       color.RGBA
	CoinShine  color.RGBA
	PlayerBody color.RGBA
	PlayerFace color.RGBA
	PlayerEye  color.RGBA
}{
	Grass:      color.RGBA{45, 90, 39, 255},
	Wall:       color.RGBA{120, 100, 80, 255},
	WallEdge:   color.RGBA{80, 65, 50, 255},
	Coin:       color.RGBA{255, 200, 0, 255},
	CoinShine:  color.RGBA{255, 245, 160, 255},
	PlayerBody: color.RGBA{40, 90, 200, 255},
	PlayerFace: color.RGBA{250, 210, 170, 255},
	PlayerEye:  color.RGBA{20, 20, 30, 255},
}

// Facing rows of the player sheet, top to bottom
var sheetRows = []struct{ dx, dy int }{
	{0, 1},  // down
	{-1, 0}, // left
	{1, 0},  // right
	{0, -1}, // up
}

// PlayerSheet draws a cols x rows walk-cycle sheet of cell x cell frames.
// Row r faces sheetRows[r]; columns are the steps of the cycle.
func PlayerSheet(cell, cols, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cell*cols, cell*rows))
	for r := 0; r < rows; r++ {
		face := sheetRows[r%len(sheetRows)]
		for c := 0; c < cols; c++ {
			drawWalker(img, image.Rect(c*cell, r*cell, (c+1)*cell, (r+1)*cell), face.dx, face.dy, c)
		}
	}
	return img
}

func drawWalker(img *image.RGBA, cell image.Rectangle, dx, dy, step int) {
	w := cell.Dx()
	cx := cell.Min.X + w/2
	cy := cell.Min.Y + w/2
	fillEllipse(img, image.Rect(cell.Min.X+w/6, cell.Min.Y+w/6, cell.Max.X-w/6, cell.Max.Y-w/12), Palette.PlayerBody)
	fillEllipse(img, image.Rect(cx-w/4, cy-w/3, cx+w/4, cy+w/6), Palette.PlayerFace)

	// eyes look towards the facing direction, feet alternate per step
	if dy >= 0 {
		ex, ey := cx+dx*w/10, cy-w/10
		fillRect(img, image.Rect(ex-w/8, ey, ex-w/8+2, ey+3), Palette.PlayerEye)
		fillRect(img, image.Rect(ex+w/8-2, ey, ex+w/8, ey+3), Palette.PlayerEye)
	}
	foot := (step%2)*2 - 1
	fy := cell.Max.Y - w/8
	fillRect(img, image.Rect(cx-w/5+foot*2, fy, cx-w/5+foot*2+w/8, fy+w/12), Palette.PlayerEye)
	fillRect(img, image.Rect(cx+w/5-foot*2-w/8, fy, cx+w/5-foot*2, fy+w/12), Palette.PlayerEye)
}

// Coin draws a w x h coin
func Coin(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillEllipse(img, img.Bounds(), Palette.Coin)
	fillEllipse(img, image.Rect(w/4, h/5, w/2, h/2), Palette.CoinShine)
	return img
}

// Wall draws a bordered w x h wall tile
func Wall(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{Palette.WallEdge}, image.Point{}, draw.Src)
	fillRect(img, image.Rect(2, 2, w-2, h-2), Palette.Wall)
	return img
}

func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Src)
}

func fillEllipse(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	cx := float64(r.Min.X) + rx
	cy := float64(r.Min.Y) + ry
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			ny := (float64(y) + 0.5 - cy) / ry
			if nx*nx+ny*ny <= 1 {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}
