package icon

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// Preview renders an image as unicode half-blocks with 24-bit ANSI color,
// sized to fit cols x rows terminal cells. Each text row carries two pixel
// rows: foreground is the top pixel, background the bottom.
func Preview(img image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	resized := imaging.Fit(img, cols, rows*2, imaging.Lanczos)
	bounds := resized.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			tr, tg, tb := rgb8(resized.At(bounds.Min.X+x, bounds.Min.Y+y))

			var br, bg, bb uint8
			if y+1 < h {
				br, bg, bb = rgb8(resized.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀\033[0m",
				tr, tg, tb, br, bg, bb)
		}
	}

	return b.String()
}

func rgb8(c interface{ RGBA() (r, g, b, a uint32) }) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
