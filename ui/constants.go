package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// ValueMinWidth keeps the result fields wide enough for a full float64.
const ValueMinWidth = 180

// Calculate button colors
var (
	CalculateBg  = color.NRGBA{R: 0x1f, G: 0x3a, B: 0x5f, A: 0xff}
	CalculateTxt = color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
)

// NewWindowSize returns the window size for the given configured dimensions.
func NewWindowSize(width, height int) fyne.Size {
	return fyne.NewSize(float32(width), float32(height))
}
