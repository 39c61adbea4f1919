// Package palette holds per-creature color sets and the hue/lightness jitter the
// variation layer applies to them. Conversions run in HSV on float32 so shifted
// colors stay in gamut.
package palette

import (
	"monsterforge/internal/variation"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Palette is one creature's material color set. Skin covers torso and limbs,
// Accent covers bellies/manes/membranes, Detail covers claws, teeth, and trim.
type Palette struct {
	Skin   rl.Color
	Accent rl.Color
	Eye    rl.Color
	Pupil  rl.Color
	Detail rl.Color
}

// hue/lightness jitter bounds for Vary: hue drifts up to ±18° (~5% of the wheel),
// value up to ±8%.
const (
	varyHueDegrees = 18
	varyValue      = 0.08
)

// toHSV converts c to hue [0,360), saturation and value [0,1]. Alpha is ignored.
func toHSV(c rl.Color) (h, s, v float32) {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	max := math32.Max(r, math32.Max(g, b))
	min := math32.Min(r, math32.Min(g, b))
	v = max
	d := max - min
	if max > 0 {
		s = d / max
	}
	if d == 0 {
		return 0, s, v
	}
	switch max {
	case r:
		h = 60 * math32.Mod((g-b)/d, 6)
	case g:
		h = 60 * ((b-r)/d + 2)
	default:
		h = 60 * ((r-g)/d + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// fromHSV converts hue [0,360), saturation and value [0,1] back to a color with
// the given alpha.
func fromHSV(h, s, v float32, a uint8) rl.Color {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float32
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	to8 := func(f float32) uint8 {
		f = math32.Round((f + m) * 255)
		if f < 0 {
			f = 0
		}
		if f > 255 {
			f = 255
		}
		return uint8(f)
	}
	return rl.Color{R: to8(r), G: to8(g), B: to8(b), A: a}
}

// HueShift rotates c's hue by degrees, preserving saturation, value, and alpha.
func HueShift(c rl.Color, degrees float32) rl.Color {
	h, s, v := toHSV(c)
	return fromHSV(h+degrees, s, v, c.A)
}

// Lighten scales c's value by 1+amount, clamped to [0,1]. Negative amount darkens.
func Lighten(c rl.Color, amount float32) rl.Color {
	h, s, v := toHSV(c)
	v *= 1 + amount
	if v > 1 {
		v = 1
	}
	if v < 0 {
		v = 0
	}
	return fromHSV(h, s, v, c.A)
}

// Vary applies the standard per-build color jitter: a small random hue rotation
// and lightness shift drawn from src.
func Vary(src variation.Source, c rl.Color) rl.Color {
	c = HueShift(c, variation.Range(src, -varyHueDegrees, varyHueDegrees))
	return Lighten(c, variation.Range(src, -varyValue, varyValue))
}

// VaryAll returns p with Skin and Accent jittered together so they stay in family.
// Eye, Pupil, and Detail are left exact; drifting those reads as dirt.
func VaryAll(src variation.Source, p Palette) Palette {
	hue := variation.Range(src, -varyHueDegrees, varyHueDegrees)
	light := variation.Range(src, -varyValue, varyValue)
	p.Skin = Lighten(HueShift(p.Skin, hue), light)
	p.Accent = Lighten(HueShift(p.Accent, hue), light)
	return p
}
