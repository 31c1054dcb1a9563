package chart

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/plotutil"
)

// Categorical returns the i-th color of the default categorical palette.
func Categorical(i int) color.Color {
	return plotutil.Color(i)
}

// Sequential returns n colors stepping evenly around the hue circle at fixed
// chroma and lightness, for legends longer than the categorical palette.
func Sequential(n int) []color.Color {
	out := make([]color.Color, n)
	for i := range out {
		h := 360 * float64(i) / float64(n)
		out[i] = colorful.Hcl(h, 0.6, 0.6).Clamped()
	}
	return out
}
