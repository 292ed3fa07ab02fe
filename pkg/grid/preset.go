package grid

// GridPreset is one of the fixed grid sizes the editor can target.
type GridPreset struct {
	Label  string
	Width  int
	Height int
}

// Area returns the preset's tile count.
func (p GridPreset) Area() int {
	return p.Width * p.Height
}

// Presets is the fixed table of allowed grid sizes, ascending by area
// with ties broken by width. FitPreset depends on this ordering.
var Presets = []GridPreset{
	{Label: "Pocket", Width: 16, Height: 16},
	{Label: "Small", Width: 28, Height: 28},
	{Label: "Medium", Width: 36, Height: 36},
	{Label: "Large", Width: 48, Height: 48},
	{Label: "Capital", Width: 64, Height: 64},
}

// LargestPreset returns the last (largest-area) entry of the table.
func LargestPreset() GridPreset {
	return Presets[len(Presets)-1]
}

// FitPreset returns the smallest preset whose width and height both
// cover the requirement. If nothing is large enough it returns the
// largest preset; the caller surfaces the overflow separately.
// Non-positive dimensions are treated as 1.
func FitPreset(width, height int) GridPreset {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	for _, p := range Presets {
		if p.Width >= width && p.Height >= height {
			return p
		}
	}
	return LargestPreset()
}
