package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// DefsDir is where per-creature override files live, relative to the working
// directory (repo root when run via go run ./cmd/preview).
const DefsDir = "assets/creatures"

// Def is the YAML override for one creature (e.g. assets/creatures/goblin.yaml).
// Colors are "#RRGGBB" or "#RRGGBBAA" strings; empty fields keep the built-in value.
// A Size > 0 multiplies the creature's build scale.
type Def struct {
	Skin   string  `yaml:"skin,omitempty"`
	Accent string  `yaml:"accent,omitempty"`
	Eye    string  `yaml:"eye,omitempty"`
	Pupil  string  `yaml:"pupil,omitempty"`
	Detail string  `yaml:"detail,omitempty"`
	Size   float32 `yaml:"size,omitempty"`
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (leading # optional) into a color.
func ParseHex(s string) (rl.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return rl.Color{}, fmt.Errorf("palette: bad hex color %q", s)
	}
	var r, g, b uint8
	a := uint8(255)
	if _, err := fmt.Sscanf(s[:6], "%02x%02x%02x", &r, &g, &b); err != nil {
		return rl.Color{}, fmt.Errorf("palette: bad hex color %q: %w", s, err)
	}
	if len(s) == 8 {
		if _, err := fmt.Sscanf(s[6:], "%02x", &a); err != nil {
			return rl.Color{}, fmt.Errorf("palette: bad hex alpha %q: %w", s, err)
		}
	}
	return rl.Color{R: r, G: g, B: b, A: a}, nil
}

// LoadDef reads assets/creatures/<key>.yaml. A missing file returns a zero Def and
// no error, matching how the engine treats optional asset files.
func LoadDef(key string) (Def, error) {
	data, err := os.ReadFile(filepath.Join(DefsDir, key+".yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return Def{}, nil
		}
		return Def{}, err
	}
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Def{}, fmt.Errorf("palette: %s.yaml: %w", key, err)
	}
	return d, nil
}

// Apply returns base with d's non-empty colors substituted. The base palette is
// flattened to the hex form Def uses, d's set fields are merged over it, and the
// result is parsed back, so the built-in default palette is never mutated.
// Size is left for the caller; it scales geometry, not color.
func Apply(base Palette, d Def) (Palette, error) {
	merged := hexDef(base)
	if err := copier.CopyWithOption(&merged, &d, copier.Option{IgnoreEmpty: true}); err != nil {
		return base, err
	}
	out := base
	fields := []struct {
		dst *rl.Color
		hex string
	}{
		{&out.Skin, merged.Skin},
		{&out.Accent, merged.Accent},
		{&out.Eye, merged.Eye},
		{&out.Pupil, merged.Pupil},
		{&out.Detail, merged.Detail},
	}
	for _, f := range fields {
		c, err := ParseHex(f.hex)
		if err != nil {
			return base, err
		}
		*f.dst = c
	}
	return out, nil
}

// hexDef renders a palette in Def's hex form so overrides can merge over it.
func hexDef(p Palette) Def {
	h := func(c rl.Color) string {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return Def{Skin: h(p.Skin), Accent: h(p.Accent), Eye: h(p.Eye), Pupil: h(p.Pupil), Detail: h(p.Detail)}
}
