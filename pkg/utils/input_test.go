package utils

import "testing"

func TestPointerSampleInViewport(t *testing.T) {
	tests := []struct {
		name   string
		sample PointerSample
		want   bool
	}{
		{"inside", PointerSample{X: 10, Y: 20, Active: true}, true},
		{"origin", PointerSample{X: 0, Y: 0, Active: true}, true},
		{"right edge excluded", PointerSample{X: 800, Y: 20, Active: true}, false},
		{"bottom edge excluded", PointerSample{X: 10, Y: 600, Active: true}, false},
		{"negative", PointerSample{X: -1, Y: 20, Active: true}, false},
		{"inactive touch", PointerSample{X: 10, Y: 20, Touch: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sample.InViewport(800, 600); got != tt.want {
				t.Errorf("InViewport() = %v, want %v", got, tt.want)
			}
		})
	}
}
