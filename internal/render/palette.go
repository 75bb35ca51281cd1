package render

import "image/color"

// Colors shared by scenes and overlays.
var (
	Black  = color.RGBA{A: 255}
	Green  = color.RGBA{R: 20, G: 255, B: 10, A: 255}
	Orange = color.RGBA{R: 255, G: 120, B: 40, A: 255}
)
