package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed assets/icon.svg
var iconSVG []byte

// AppIcon is the window and application icon.
var AppIcon = fyne.NewStaticResource("yplus.svg", iconSVG)
