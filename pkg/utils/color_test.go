package utils

import (
	"image/color"
	"testing"
)

func TestHSLA(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		a       float64
		want    color.NRGBA
	}{
		{"red", 0, 1, 0.5, 1, color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{"white", 50, 1, 1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"blue half alpha", 240, 1, 0.5, 0.5, color.NRGBA{R: 0, G: 0, B: 255, A: 128}},
		{"lightness clamped", 120, 1, 2, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSLA(tt.h, tt.s, tt.l, tt.a)
			if got != tt.want {
				t.Errorf("HSLA(%v, %v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.l, tt.a, got, tt.want)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 255}

	if got := WithAlpha(c, 0); got.A != 0 || got.R != 10 {
		t.Errorf("WithAlpha(c, 0) = %+v", got)
	}
	if got := WithAlpha(c, -1); got.A != 0 {
		t.Errorf("WithAlpha(c, -1).A = %d, want 0", got.A)
	}
	if got := WithAlpha(c, 1.5); got.A != 255 {
		t.Errorf("WithAlpha(c, 1.5).A = %d, want 255", got.A)
	}
}
