package strip

import (
	"github.com/Jon-Bright/neoctl/pixarray"
)

// scale multiplies each channel by f, clamped to [0,1], truncating to int.
func scale(p pixarray.Pixel, f float64) pixarray.Pixel {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return pixarray.Pixel{
		R: int(float64(p.R) * f),
		G: int(float64(p.G) * f),
		B: int(float64(p.B) * f),
	}
}

// brightnessScale maps a 0-255 brightness to a 0-1 output factor. Squaring
// approximates gamma, making low settings perceptibly dimmer.
func brightnessScale(b int) float64 {
	pct := float64(b) / 255.0
	return pct * pct
}

// fadeLuminance derives the HSL luminance for random fade targets. Zero
// brightness means a genuinely black target; anything else keeps a small
// floor so the fade never disappears entirely.
func fadeLuminance(b int) float64 {
	if b == 0 {
		return 0.0
	}
	l := brightnessScale(b) * 0.5
	if l < 0.002 {
		return 0.002
	}
	return l
}

func clampChan(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
