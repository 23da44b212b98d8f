package common

import (
	"image/color"
)

// Mark colors
var (
	XColor = color.RGBA{200, 50, 50, 255}  // Red
	OColor = color.RGBA{50, 100, 200, 255} // Blue
)

// Board colors
var (
	CellColor      = color.RGBA{35, 35, 35, 255}
	GridLineColor  = color.RGBA{90, 90, 90, 255}
	HighlightColor = color.RGBA{60, 120, 60, 255}
)

// UI colors
var (
	BackgroundColor  = color.RGBA{50, 50, 50, 255}
	StatusTextColor  = color.White
	HistoryTextColor = color.Gray{200}
	HistoryItemColor = color.RGBA{70, 70, 70, 255}
)

// RGB builds an opaque color from a config triple.
func RGB(rgb [3]int) color.RGBA {
	return color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), 255}
}
