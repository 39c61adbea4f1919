package palette

import (
	"testing"

	"monsterforge/internal/variation"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestHSVRoundTrip(t *testing.T) {
	colors := []rl.Color{
		rl.NewColor(96, 160, 72, 255),  // goblin green
		rl.NewColor(255, 0, 0, 255),    // pure red
		rl.NewColor(0, 0, 0, 255),      // black
		rl.NewColor(255, 255, 255, 255),
		rl.NewColor(30, 28, 35, 200),   // near-grey with alpha
	}
	for _, c := range colors {
		h, s, v := toHSV(c)
		got := fromHSV(h, s, v, c.A)
		if absDiff(got.R, c.R) > 1 || absDiff(got.G, c.G) > 1 || absDiff(got.B, c.B) > 1 {
			t.Errorf("round trip %v -> %v drifted more than 1 step", c, got)
		}
		if got.A != c.A {
			t.Errorf("alpha changed: %d -> %d", c.A, got.A)
		}
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

func TestHueShiftFullTurn(t *testing.T) {
	c := rl.NewColor(96, 160, 72, 255)
	got := HueShift(c, 360)
	if absDiff(got.R, c.R) > 1 || absDiff(got.G, c.G) > 1 || absDiff(got.B, c.B) > 1 {
		t.Errorf("360 degree shift must be identity-ish, got %v from %v", got, c)
	}
}

func TestLightenClamps(t *testing.T) {
	white := rl.NewColor(255, 255, 255, 255)
	if got := Lighten(white, 0.5); got != white {
		t.Errorf("lightening white = %v, must stay white", got)
	}
	black := rl.NewColor(0, 0, 0, 255)
	if got := Lighten(black, -0.5); got != black {
		t.Errorf("darkening black = %v, must stay black", got)
	}
}

func TestVaryAllKeepsEyesExact(t *testing.T) {
	p := Palette{
		Skin:   rl.NewColor(96, 160, 72, 255),
		Accent: rl.NewColor(140, 110, 70, 255),
		Eye:    rl.NewColor(250, 240, 200, 255),
		Pupil:  rl.NewColor(30, 30, 30, 255),
		Detail: rl.NewColor(220, 210, 180, 255),
	}
	got := VaryAll(variation.NewSeeded(7), p)
	if got.Eye != p.Eye || got.Pupil != p.Pupil || got.Detail != p.Detail {
		t.Error("VaryAll must not touch eye, pupil, or detail colors")
	}
}

func TestVaryDeterministic(t *testing.T) {
	c := rl.NewColor(96, 160, 72, 255)
	a := Vary(variation.NewSeeded(42), c)
	b := Vary(variation.NewSeeded(42), c)
	if a != b {
		t.Errorf("same seed must give same jitter: %v vs %v", a, b)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    rl.Color
		wantErr bool
	}{
		{"#6fa352", rl.NewColor(0x6f, 0xa3, 0x52, 255), false},
		{"6fa352", rl.NewColor(0x6f, 0xa3, 0x52, 255), false},
		{"#6fa35280", rl.NewColor(0x6f, 0xa3, 0x52, 0x80), false},
		{"#abc", rl.Color{}, true},
		{"", rl.Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	base := Palette{
		Skin: rl.NewColor(1, 2, 3, 255),
		Eye:  rl.NewColor(4, 5, 6, 255),
	}
	got, err := Apply(base, Def{Skin: "#ff0000"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.Skin != rl.NewColor(255, 0, 0, 255) {
		t.Errorf("overridden skin = %v", got.Skin)
	}
	if got.Eye != base.Eye {
		t.Error("fields without overrides must keep base values")
	}
	if base.Skin != rl.NewColor(1, 2, 3, 255) {
		t.Error("Apply must not mutate the base palette")
	}

	if _, err := Apply(base, Def{Accent: "not-a-color"}); err == nil {
		t.Error("bad hex must surface an error")
	}

	got, err = Apply(base, Def{Size: 1.4})
	if err != nil {
		t.Fatalf("Apply size-only def: %v", err)
	}
	if got != base {
		t.Errorf("size-only def changed colors: %+v", got)
	}
}

func TestLoadDefMissingFile(t *testing.T) {
	d, err := LoadDef("no_such_creature_zzz")
	if err != nil {
		t.Fatalf("missing def must not error, got %v", err)
	}
	if d != (Def{}) {
		t.Errorf("missing def = %+v, want zero", d)
	}
}
