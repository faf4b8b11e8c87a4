package utils

import (
	"math"
	"testing"
)

func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"四分之一", 0.25, 0.0625}, // 4 * 0.25^3
		{"中点", 0.5, 0.5},
		{"四分之三", 0.75, 0.9375},
		{"终点", 1.0, 1.0},
		{"低于范围", -0.5, 0.0},
		{"超出范围", 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}
