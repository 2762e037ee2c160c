// Package draw renders to ANSI terminals: a true-color half-block canvas,
// shape generators and a chunked writer for network-friendly output.
package draw

import (
	"image/color"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ANSI text attributes for UI overlays.
const (
	ColorReset      = "\033[0m"
	ColorBold       = "\033[1m"
	ColorDim        = "\033[2m"
	ColorRed        = "\033[31m"
	ColorGreen      = "\033[32m"
	ColorYellow     = "\033[33m"
	ColorBrightCyan = "\033[96m"
)

// Fade scales a color towards black by alpha in [0, 1]. The terminal
// background is assumed black, so this stands in for alpha blending.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	switch {
	case alpha <= 0:
		return color.RGBA{}
	case alpha >= 1:
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: 0xff,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
