package model

import (
	"image"
	"image/color"
	"math"

	"github.com/sheikhrachel/go-predprey/rules"
)

// Colorize maps a cell to its display color; opacity encodes health
func Colorize(kind Kind, health int) color.NRGBA {
	switch kind {
	case Predator:
		return color.NRGBA{R: 255, A: healthAlpha(health)}
	case Prey:
		return color.NRGBA{G: 255, A: healthAlpha(health)}
	default:
		return color.NRGBA{}
	}
}

func healthAlpha(health int) uint8 {
	a := float64(health) * 255 / rules.MaxHealth
	return uint8(math.Round(min(max(a, 0), 255)))
}

// Premultiply writes src into dst as premultiplied RGBA bytes, the layout
// ebiten.Image.WritePixels expects. dst must hold 4 bytes per pixel of src.
func Premultiply(dst []byte, src *image.NRGBA) {
	b := src.Bounds()
	j := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			p := row[x*4 : x*4+4]
			a := uint16(p[3])
			dst[j] = uint8((uint16(p[0])*a + 127) / 255)
			dst[j+1] = uint8((uint16(p[1])*a + 127) / 255)
			dst[j+2] = uint8((uint16(p[2])*a + 127) / 255)
			dst[j+3] = p[3]
			j += 4
		}
	}
}
