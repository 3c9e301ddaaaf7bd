package editor

import "github.com/Faultbox/triedit/internal/editor/scene"

// palette holds the colours bound to keys 1-9.
var palette = [9]scene.Color{
	{R: 0, G: 1, B: 0},
	{R: 1, G: 1, B: 0},
	{R: 0, G: 1, B: 1},
	{R: 0.5, G: 1, B: 0},
	{R: 0, G: 1, B: 0.5},
	{R: 1, G: 0.5, B: 0},
	{R: 1, G: 0, B: 1},
	{R: 0.5, G: 1, B: 0.5},
	{R: 0.5, G: 0.5, B: 0.5},
}

// PaletteColor returns palette entry n (1-9).
func PaletteColor(n int) (scene.Color, bool) {
	if n < 1 || n > len(palette) {
		return scene.Color{}, false
	}
	return palette[n-1], true
}
