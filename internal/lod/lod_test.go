package lod

import "testing"

func TestOrdering(t *testing.T) {
	if !(Low < Medium && Medium < High) {
		t.Fatal("levels must order Low < Medium < High")
	}
	if !High.AtLeast(Medium) || !Medium.AtLeast(Medium) || Low.AtLeast(Medium) {
		t.Error("AtLeast(Medium) must hold for Medium and High only")
	}
	if !Low.AtLeast(Low) {
		t.Error("a level is at least itself")
	}
}

func TestValid(t *testing.T) {
	for _, l := range []Level{Low, Medium, High} {
		if !l.Valid() {
			t.Errorf("%v must be valid", l)
		}
	}
	if Level(-1).Valid() || Level(3).Valid() {
		t.Error("out-of-range levels must be invalid")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"low", Low},
		{"LOW", Low},
		{"  medium ", Medium},
		{"med", Medium},
		{"high", High},
		{"", High},
		{"ultra", High}, // unknown falls back to full detail
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTessellation(t *testing.T) {
	tests := []struct {
		level    Level
		segments int32
		rings    int32
	}{
		{High, 32, 16},
		{Medium, 16, 8},
		{Low, 8, 4},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := Segments(tt.level); got != tt.segments {
				t.Errorf("Segments = %d, want %d", got, tt.segments)
			}
			if got := Rings(tt.level); got != tt.rings {
				t.Errorf("Rings = %d, want %d", got, tt.rings)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, l := range []Level{Low, Medium, High} {
		if got := ParseLevel(l.String()); got != l {
			t.Errorf("ParseLevel(%q) = %v, want %v", l.String(), got, l)
		}
	}
}
