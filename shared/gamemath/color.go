package gamemath

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// HSVRange bounds a random HSV pick. All fields are in 0..1.
type HSVRange struct {
	HueMin, HueMax float64
	SatMin, SatMax float64
	ValMin, ValMax float64
}

// FullHSV picks from the whole HSV cube.
var FullHSV = HSVRange{HueMax: 1, SatMax: 1, ValMax: 1}

// RandomHSV returns an opaque color drawn uniformly from r.
func RandomHSV(rng *rand.Rand, r HSVRange) color.RGBA {
	h := lerp(r.HueMin, r.HueMax, rng.Float64())
	s := lerp(r.SatMin, r.SatMax, rng.Float64())
	v := lerp(r.ValMin, r.ValMax, rng.Float64())
	return HSVToRGBA(h, s, v)
}

// HSVToRGBA converts hue, saturation and value (each 0..1) to an opaque color.
// A hue of exactly 1 wraps to red.
func HSVToRGBA(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	h6 := h * 6
	i := math.Floor(h6)
	f := h6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{R: to8(r), G: to8(g), B: to8(b), A: 255}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func to8(c float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, c)) * 255))
}
