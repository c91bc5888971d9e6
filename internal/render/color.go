package render

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL returns an opaque colour. Hue is in degrees and wraps; saturation and
// lightness are in [0,1].
func HSL(h, s, l float64) color.NRGBA {
	return HSLA(h, s, l, 1)
}

// HSLA is HSL with straight alpha.
func HSLA(h, s, l, a float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, Clamp01(s), Clamp01(l)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(a)}
}

// RGBA builds a straight-alpha colour from 8-bit channels and a [0,1] alpha.
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(a)}
}

// Hex parses "#rrggbb". Malformed input yields opaque black.
func Hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha replaces the alpha of c.
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = alpha8(a)
	return c
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(Clamp01(a) * 255))
}
