// Package keycolor derives a stable display color from a key hash.
package keycolor

import (
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"

	"notelsm/internal/keyhash"
	"notelsm/internal/types"
)

const (
	lightnessPercent = 80
	chromaPercent    = 90

	// hueDivisor spreads neighbouring hash values across the hue circle.
	hueDivisor = 3600.0

	// CSS Color 4 maps oklch chroma 100% to 0.4.
	chromaFullScale = 0.4
)

// Color is a point in the OKLCH perceptual color space.
type Color struct {
	Lightness float64 // percent
	Chroma    float64 // percent of chromaFullScale
	Hue       float64 // degrees in [0, 360)
}

// For returns the color of key.
func For(key types.Key) Color {
	return fromHash(keyhash.Sum(key))
}

// ForString returns the color of the single key text.
func ForString(text string) Color {
	return fromHash(keyhash.String(text))
}

func fromHash(hash uint64) Color {
	return Color{
		Lightness: lightnessPercent,
		Chroma:    chromaPercent,
		Hue:       math.Mod(float64(hash)/hueDivisor, 360),
	}
}

// String renders the CSS form, e.g. "oklch(80% 90% 135.05517578125deg)".
func (c Color) String() string {
	return "oklch(" + formatNumber(c.Lightness) + "% " + formatNumber(c.Chroma) + "% " + formatNumber(c.Hue) + "deg)"
}

// Hex returns the gamut-clamped sRGB approximation as "#rrggbb".
func (c Color) Hex() string {
	return c.sRGB().Hex()
}

func (c Color) sRGB() colorful.Color {
	return colorful.OkLch(c.Lightness/100, c.Chroma/100*chromaFullScale, c.Hue).Clamped()
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
